package widgets

import (
	"bytes"

	"github.com/goliatone/go-htwidget/pkg/attrs"
	"github.com/goliatone/go-htwidget/pkg/field"
	"github.com/goliatone/go-htwidget/pkg/widget"
)

// Checkbox renders a boolean control. The writable body also emits a hidden
// submit flag so an unchecked box can be told apart from a missing field.
type Checkbox struct {
	// Value is submitted when checked; empty means "1".
	Value string
	// OnLabel and OffLabel are shown in readonly mode.
	OnLabel  string
	OffLabel string
}

var _ widget.Body = Checkbox{}

// NewCheckbox builds a checkbox widget.
func NewCheckbox(name string, options ...widget.Option) *widget.Widget {
	return widget.New(name, Checkbox{}, options...)
}

func (b Checkbox) RenderWritable(buf *bytes.Buffer, f *field.Field) error {
	flag := attrs.New(
		attrs.Pair{Key: "type", Value: "hidden"},
		attrs.Pair{Key: "name", Value: f.SubmitFlag()},
		attrs.Pair{Key: "value", Value: "1"},
	)
	buf.WriteString("<input ")
	buf.WriteString(flag.String())
	buf.WriteString(" />")

	a := f.Attrs().Clone()
	a.Set("type", "checkbox")
	a.Set("value", b.CheckedValue())
	if b.Checked(f.Value()) {
		a.Set("checked", true)
	}
	buf.WriteString("<input ")
	buf.WriteString(a.String())
	buf.WriteString(" />")
	return nil
}

func (b Checkbox) RenderReadonly(buf *bytes.Buffer, f *field.Field) error {
	text := b.OffLabel
	if text == "" {
		text = "No"
	}
	if b.Checked(f.Value()) {
		text = b.OnLabel
		if text == "" {
			text = "Yes"
		}
	}
	writeSpan(buf, f, text)
	return nil
}

// CheckedValue returns the value submitted when the box is checked.
func (b Checkbox) CheckedValue() string {
	if b.Value == "" {
		return "1"
	}
	return b.Value
}

// Checked reports whether value marks the box as checked.
func (b Checkbox) Checked(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		s := valueString(value)
		return s == b.CheckedValue() || s == "true" || s == "on"
	}
}
