package config

import (
	"fmt"

	"github.com/goliatone/go-htwidget/pkg/form"
	"github.com/goliatone/go-htwidget/pkg/widget"
	"github.com/goliatone/go-htwidget/pkg/widgets"
)

// Build constructs a form from doc using registry to resolve kinds. A nil
// registry uses widgets.NewDefaultRegistry. options apply to every widget.
func Build(doc Document, registry *widgets.Registry, options ...widget.Option) (*form.Form, error) {
	if registry == nil {
		registry = widgets.NewDefaultRegistry()
	}

	f, err := form.New()
	if err != nil {
		return nil, err
	}
	for _, cfg := range doc.Widgets {
		w, err := BuildWidget(cfg, registry, options...)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", doc.Source, err)
		}
		if err := f.Add(w); err != nil {
			return nil, fmt.Errorf("config: %s: %w", doc.Source, err)
		}
	}
	return f, nil
}

// BuildWidget constructs and configures a single widget.
func BuildWidget(cfg WidgetConfig, registry *widgets.Registry, options ...widget.Option) (*widget.Widget, error) {
	if registry == nil {
		registry = widgets.NewDefaultRegistry()
	}

	opts := append([]widget.Option(nil), options...)
	if cfg.ID != "" {
		opts = append(opts, widget.WithID(cfg.ID))
	}

	w, err := registry.Build(cfg.Kind, cfg.Name, cfg.Options, opts...)
	if err != nil {
		return nil, err
	}

	attrSet := w.Field().Attrs()
	for _, pair := range cfg.Attrs {
		attrSet.Set(pair.Key, pair.Value)
	}

	if cfg.Label != nil {
		w.Label(cfg.Label)
	}
	if cfg.Required {
		w.Required(cfg.RequiredMessage)
	}
	if cfg.Error != nil {
		w.Error(cfg.Error)
	}
	if cfg.HasFallback {
		w.Fallback(cfg.Fallback, cfg.FallbackWhen...)
	}
	return w.Readonly(cfg.Readonly).Inline(cfg.Inline), nil
}
