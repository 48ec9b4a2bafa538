package prompt

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-htwidget/pkg/attrs"
	"github.com/goliatone/go-htwidget/pkg/field"
	"github.com/goliatone/go-htwidget/pkg/form"
	"github.com/goliatone/go-htwidget/pkg/widget"
	"github.com/goliatone/go-htwidget/pkg/widgets"
)

// Option configures Collect.
type Option func(*collector)

// WithLogger sets the logger used for per-widget diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

type collector struct {
	driver PromptDriver
	logger *slog.Logger
	strip  *bluemonday.Policy
}

// Collect asks one prompt per writable widget of f, in form order, and returns
// the answers as a context map keyed like the widget names ("user[email]"
// lands under ctx["user"]["email"]). Readonly widgets keep their current value.
// Current values are offered as defaults.
func Collect(ctx context.Context, driver PromptDriver, f *form.Form, options ...Option) (map[string]any, error) {
	if driver == nil {
		return nil, fmt.Errorf("prompt: driver is nil")
	}
	if f == nil {
		return nil, fmt.Errorf("prompt: form is nil")
	}

	c := &collector{
		driver: driver,
		logger: slog.Default(),
		strip:  bluemonday.StrictPolicy(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	values := make(map[string]any)
	for _, w := range f.Widgets() {
		var (
			answer any
			err    error
		)
		if w.IsReadonly() {
			raw, ok := w.Field().RawValue()
			if !ok {
				continue
			}
			answer = raw
		} else {
			c.logger.Debug("prompt: asking", "widget", w.Name(), "body", fmt.Sprintf("%T", w.Body()))
			answer, err = c.ask(ctx, w)
			if err != nil {
				return nil, fmt.Errorf("prompt: %s: %w", w.Name(), err)
			}
		}
		if err := field.Assign(values, w.Name(), answer); err != nil {
			return nil, fmt.Errorf("prompt: %w", err)
		}
	}
	return values, nil
}

func (c *collector) ask(ctx context.Context, w *widget.Widget) (any, error) {
	message := c.message(w)
	current := attrs.Stringify(w.Value())

	switch body := w.Body().(type) {
	case widgets.Input:
		cfg := InputConfig{Message: message, Default: current, Validator: validator(w)}
		if body.Masked {
			cfg.Default = ""
			return c.driver.Password(ctx, cfg)
		}
		return c.driver.Input(ctx, cfg)
	case widgets.Textarea:
		return c.driver.TextArea(ctx, TextAreaConfig{Message: message, Default: current})
	case widgets.Select:
		return c.choose(ctx, message, body, current)
	case widgets.Checkbox:
		checked, err := c.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: body.Checked(w.Value())})
		if err != nil || !checked {
			return "", err
		}
		return body.CheckedValue(), nil
	case *widgets.Template:
		if body.Kind() == widgets.TemplateKindTextarea {
			return c.driver.TextArea(ctx, TextAreaConfig{Message: message, Default: current})
		}
	}
	return c.driver.Input(ctx, InputConfig{Message: message, Default: current, Validator: validator(w)})
}

func (c *collector) choose(ctx context.Context, message string, body widgets.Select, current string) (any, error) {
	choices := body.Options
	if body.Placeholder != "" {
		choices = append([]widgets.Option{{Label: body.Placeholder}}, choices...)
	}

	labels := make([]string, len(choices))
	defaultIndex := 0
	for idx, opt := range choices {
		labels[idx] = opt.Label
		if labels[idx] == "" {
			labels[idx] = opt.Value
		}
		if opt.Value == current {
			defaultIndex = idx
		}
	}

	idx, err := c.driver.Select(ctx, SelectConfig{Message: message, Options: labels, DefaultIndex: defaultIndex})
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(choices) {
		return nil, fmt.Errorf("selection %d out of range", idx)
	}
	return choices[idx].Value, nil
}

// message renders the label as plain text, falling back to the widget name.
func (c *collector) message(w *widget.Widget) string {
	text := strings.TrimSpace(html.UnescapeString(c.strip.Sanitize(w.LabelText())))
	if text == "" {
		return w.Name()
	}
	return text
}

func validator(w *widget.Widget) func(string) error {
	if w.Field().Filters().Len() == 0 {
		return nil
	}
	return func(answer string) error {
		return w.Field().Filters().Check(answer)
	}
}
