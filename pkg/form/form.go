package form

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-htwidget/pkg/widget"
)

// Form is an ordered collection of widgets sharing one value context.
type Form struct {
	widgets    []*widget.Widget
	byName     map[string]*widget.Widget
	context    map[string]any
	formErrors []string
}

// New creates a form holding widgets in the given order.
func New(widgets ...*widget.Widget) (*Form, error) {
	f := &Form{byName: make(map[string]*widget.Widget, len(widgets))}
	for _, w := range widgets {
		if err := f.Add(w); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Add appends w. Names must be unique within the form.
func (f *Form) Add(w *widget.Widget) error {
	if w == nil {
		return fmt.Errorf("form: widget is nil")
	}
	name := w.Name()
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("form: widget name is required")
	}
	if _, exists := f.byName[name]; exists {
		return fmt.Errorf("form: duplicate widget %q", name)
	}
	if f.context != nil {
		w.Context(f.context)
	}
	f.widgets = append(f.widgets, w)
	f.byName[name] = w
	return nil
}

// Widget returns the widget registered under name.
func (f *Form) Widget(name string) (*widget.Widget, bool) {
	w, ok := f.byName[name]
	return w, ok
}

// Widgets returns the widgets in insertion order.
func (f *Form) Widgets() []*widget.Widget {
	return append([]*widget.Widget(nil), f.widgets...)
}

// Names returns widget names in insertion order.
func (f *Form) Names() []string {
	names := make([]string, 0, len(f.widgets))
	for _, w := range f.widgets {
		names = append(names, w.Name())
	}
	return names
}

// Context supplies ctx to every current and future widget.
func (f *Form) Context(ctx map[string]any) *Form {
	f.context = ctx
	for _, w := range f.widgets {
		w.Context(ctx)
	}
	return f
}

// Readonly toggles the read-only presentation on every widget.
func (f *Form) Readonly(readonly bool) *Form {
	for _, w := range f.widgets {
		w.Readonly(readonly)
	}
	return f
}

// Errors returns the first validation message per widget. Widgets without a
// message are omitted.
func (f *Form) Errors() map[string]string {
	out := make(map[string]string)
	for _, w := range f.widgets {
		if msg := w.Validate(); msg != "" {
			out[w.Name()] = msg
		}
	}
	return out
}

// FormErrors returns messages that could not be attributed to a widget.
func (f *Form) FormErrors() []string {
	return append([]string(nil), f.formErrors...)
}

// Valid reports whether no widget and no form-level error is pending.
func (f *Form) Valid() bool {
	return len(f.formErrors) == 0 && len(f.Errors()) == 0
}

// ClearErrors drops external messages recorded by ApplyErrors.
func (f *Form) ClearErrors() *Form {
	f.formErrors = nil
	for _, w := range f.widgets {
		w.Field().ClearErrors()
	}
	return f
}

// Render concatenates the markup of every widget, newline separated.
func (f *Form) Render() (string, error) {
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderInner is Render without the per-widget wrapper.
func (f *Form) RenderInner() (string, error) {
	parts := make([]string, 0, len(f.widgets))
	for _, w := range f.widgets {
		out, err := w.RenderInner()
		if err != nil {
			return "", fmt.Errorf("form: %w", err)
		}
		parts = append(parts, out)
	}
	return strings.Join(parts, "\n"), nil
}

// WriteTo renders every widget into out.
func (f *Form) WriteTo(out io.Writer) (int64, error) {
	var buf bytes.Buffer
	for idx, w := range f.widgets {
		if idx > 0 {
			buf.WriteByte('\n')
		}
		rendered, err := w.Render()
		if err != nil {
			return 0, fmt.Errorf("form: %w", err)
		}
		buf.WriteString(rendered)
	}
	return buf.WriteTo(out)
}
