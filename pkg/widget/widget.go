package widget

import (
	"bytes"
	"errors"
	"log/slog"

	"github.com/goliatone/go-htwidget/pkg/attrs"
	"github.com/goliatone/go-htwidget/pkg/field"
)

// ErrNoBody is returned when a widget is rendered without a body variant.
var ErrNoBody = errors.New("widget: body is required")

// Body renders the editable and read-only presentations of a widget kind.
// Both receive the widget's field, whose attributes and resolved value are the
// only state a body should depend on.
type Body interface {
	RenderWritable(buf *bytes.Buffer, f *field.Field) error
	RenderReadonly(buf *bytes.Buffer, f *field.Field) error
}

// Option configures a widget at construction time.
type Option func(*Widget)

// WithLogger sets the logger used for diagnostics. Nil keeps slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(w *Widget) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithID overrides the element id of the underlying field.
func WithID(id string) Option {
	return func(w *Widget) {
		w.field.SetID(id)
	}
}

// WithLabelSanitizer replaces the label text sanitizer. Nil disables
// sanitizing and emits the label text verbatim.
func WithLabelSanitizer(fn func(string) string) Option {
	return func(w *Widget) {
		w.sanitize = fn
	}
}

// Widget wraps a field with a label, an error region and a writable/readonly
// toggle. Setters mutate the widget and return it for chaining.
type Widget struct {
	field *field.Field
	body  Body

	labelText  string
	labelAttrs *attrs.Set

	errorDisplay bool
	errorAttrs   *attrs.Set

	readonly bool
	inline   bool

	fallback    any
	hasFallback bool

	logger   *slog.Logger
	sanitize func(string) string
}

// New constructs a widget for a new field named name.
func New(name string, body Body, options ...Option) *Widget {
	return Wrap(field.New(name), body, options...)
}

// Wrap constructs a widget around an existing field.
func Wrap(f *field.Field, body Body, options ...Option) *Widget {
	if f == nil {
		f = field.New("")
	}
	w := &Widget{
		field:      f,
		body:       body,
		labelAttrs: DefaultLabelAttrs(),
		errorAttrs: DefaultErrorAttrs(),
		logger:     slog.Default(),
		sanitize:   SanitizeLabel,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

// Readonly selects the read-only body presentation.
func (w *Widget) Readonly(readonly bool) *Widget {
	w.readonly = readonly
	return w
}

// Inline renders the wrapper inline-block instead of block.
func (w *Widget) Inline(inline bool) *Widget {
	w.inline = inline
	return w
}

// Required registers a non-empty rule on the field.
func (w *Widget) Required(msg string) *Widget {
	w.field.Filters().Required(msg)
	return w
}

// Fallback records value and registers it with the field as the substitute
// for resolved values equal to any of when (default: absent or nil).
func (w *Widget) Fallback(value any, when ...any) *Widget {
	w.fallback = value
	w.hasFallback = true
	w.field.Fallback(value, when...)
	return w
}

// Context supplies the data the field value is resolved from.
func (w *Widget) Context(ctx map[string]any) *Widget {
	w.field.Context(ctx)
	return w
}

func (w *Widget) Field() *field.Field { return w.field }
func (w *Widget) Body() Body          { return w.body }
func (w *Widget) Name() string        { return w.field.Name() }
func (w *Widget) ID() string          { return w.field.ID() }
func (w *Widget) Value() any          { return w.field.Value() }
func (w *Widget) Validate() string    { return w.field.Validate() }
func (w *Widget) SubmitFlag() string  { return w.field.SubmitFlag() }
func (w *Widget) LabelText() string   { return w.labelText }
func (w *Widget) ErrorDisplay() bool  { return w.errorDisplay }
func (w *Widget) IsReadonly() bool    { return w.readonly }
func (w *Widget) IsInline() bool      { return w.inline }

// LabelAttrs returns a copy of the accumulated label attributes.
func (w *Widget) LabelAttrs() *attrs.Set { return w.labelAttrs.Clone() }

// ErrorAttrs returns a copy of the accumulated error container attributes.
func (w *Widget) ErrorAttrs() *attrs.Set { return w.errorAttrs.Clone() }

// FallbackValue returns the value recorded by Fallback.
func (w *Widget) FallbackValue() (any, bool) {
	return w.fallback, w.hasFallback
}
