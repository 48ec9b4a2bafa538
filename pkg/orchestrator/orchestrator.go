package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-htwidget/pkg/config"
	"github.com/goliatone/go-htwidget/pkg/form"
	rendertemplate "github.com/goliatone/go-htwidget/pkg/render/template"
	"github.com/goliatone/go-htwidget/pkg/widget"
	"github.com/goliatone/go-htwidget/pkg/widgets"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithFS sets the filesystem Request.Path is read from.
func WithFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.fsys = fsys
	}
}

// WithRegistry injects a widget kind registry.
func WithRegistry(registry *widgets.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithLogger sets the logger handed to every widget.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithWidgetOptions registers options applied to every built widget.
func WithWidgetOptions(options ...widget.Option) Option {
	return func(o *Orchestrator) {
		o.widgetOptions = append(o.widgetOptions, options...)
	}
}

// WithTheme routes the template kind through a go-theme manifest. engine may
// be nil to keep the built-in templates as the lookup source.
func WithTheme(manifest *theme.Manifest, variant string, engine rendertemplate.TemplateRenderer) Option {
	return func(o *Orchestrator) {
		o.manifest = manifest
		o.variant = variant
		o.engine = engine
	}
}

// Orchestrator coordinates loading a widget document, building the form,
// applying values and server-side errors, and rendering markup.
type Orchestrator struct {
	fsys          fs.FS
	registry      *widgets.Registry
	logger        *slog.Logger
	widgetOptions []widget.Option

	manifest *theme.Manifest
	variant  string
	engine   rendertemplate.TemplateRenderer
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies default to the built-in registry and slog.Default().
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{logger: slog.Default()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.registry == nil {
		o.registry = widgets.NewDefaultRegistry()
	}
	if o.manifest != nil {
		o.registry = themedRegistry(o.registry, o.manifest, o.variant, o.engine)
	}
	return o
}

// Request describes a single render.
type Request struct {
	// Path names the document inside the configured filesystem. Optional when
	// Document is supplied.
	Path string

	// Document bypasses loading when the caller already parsed the file.
	Document *config.Document

	// Context supplies widget values.
	Context map[string]any

	// Errors carries server-side messages keyed by widget name or path.
	Errors map[string][]string

	// Readonly renders every widget in its read-only presentation.
	Readonly bool

	// Inner omits the per-widget wrapper.
	Inner bool
}

// Form loads and builds the form for req and applies its context and errors.
func (o *Orchestrator) Form(ctx context.Context, req Request) (*form.Form, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := o.resolveDocument(req)
	if err != nil {
		return nil, err
	}

	opts := append([]widget.Option{widget.WithLogger(o.logger)}, o.widgetOptions...)
	f, err := config.Build(doc, o.registry, opts...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: build form: %w", err)
	}

	if req.Context != nil {
		f.Context(req.Context)
	}
	if len(req.Errors) > 0 {
		f.ApplyErrors(req.Errors)
		if formErrors := f.FormErrors(); len(formErrors) > 0 {
			o.logger.Warn("orchestrator: errors not attributed to a widget", "source", doc.Source, "errors", formErrors)
		}
	}
	if req.Readonly {
		f.Readonly(true)
	}
	o.logger.Debug("orchestrator: form built", "source", doc.Source, "widgets", len(f.Names()))
	return f, nil
}

// Generate renders req and returns the markup.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	f, err := o.Form(ctx, req)
	if err != nil {
		return nil, err
	}

	var out string
	if req.Inner {
		out, err = f.RenderInner()
	} else {
		out, err = f.Render()
	}
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return []byte(out), nil
}

// Registry exposes the registry used to build widgets.
func (o *Orchestrator) Registry() *widgets.Registry {
	return o.registry
}

func (o *Orchestrator) resolveDocument(req Request) (config.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return config.Document{}, errors.New("orchestrator: path or document is required")
	}
	if o.fsys == nil {
		return config.Document{}, errors.New("orchestrator: filesystem is required to load a path")
	}
	doc, err := config.LoadFile(o.fsys, path)
	if err != nil {
		return config.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func themedRegistry(base *widgets.Registry, manifest *theme.Manifest, variant string, engine rendertemplate.TemplateRenderer) *widgets.Registry {
	registry := base.Clone()
	registry.MustRegister(widgets.KindTemplate, widgets.Descriptor{
		Description: fmt.Sprintf("pongo2 template body (theme %s)", manifest.Name),
		Factory: func(cfg map[string]any) (widget.Body, error) {
			kind, _ := cfg["template"].(string)
			inputType, _ := cfg["type"].(string)
			return widgets.NewTemplateBody(kind,
				widgets.WithTheme(manifest, variant),
				widgets.WithEngine(engine),
				widgets.WithInputType(inputType),
			), nil
		},
	})
	return registry
}
