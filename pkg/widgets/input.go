package widgets

import (
	"bytes"
	"html"

	"github.com/goliatone/go-htwidget/pkg/attrs"
	"github.com/goliatone/go-htwidget/pkg/field"
	"github.com/goliatone/go-htwidget/pkg/widget"
)

// Input renders an <input> element in writable mode and a <span> holding the
// value in readonly mode.
type Input struct {
	// Type is the input type attribute; empty means "text".
	Type string
	// Masked hides the value in both modes (password inputs).
	Masked bool
}

var _ widget.Body = Input{}

// NewText builds a text input widget.
func NewText(name string, options ...widget.Option) *widget.Widget {
	return widget.New(name, Input{Type: "text"}, options...)
}

// NewInput builds an input widget with an arbitrary type (email, number, ...).
func NewInput(name, inputType string, options ...widget.Option) *widget.Widget {
	return widget.New(name, Input{Type: inputType}, options...)
}

// NewPassword builds a password input widget. The value is never echoed.
func NewPassword(name string, options ...widget.Option) *widget.Widget {
	return widget.New(name, Input{Type: "password", Masked: true}, options...)
}

func (b Input) RenderWritable(buf *bytes.Buffer, f *field.Field) error {
	a := f.Attrs().Clone()
	if !a.Has("type") {
		a.Set("type", b.inputType())
	}
	if !b.Masked {
		a.Set("value", valueString(f.Value()))
	}
	buf.WriteString("<input ")
	buf.WriteString(a.String())
	buf.WriteString(" />")
	return nil
}

func (b Input) RenderReadonly(buf *bytes.Buffer, f *field.Field) error {
	text := valueString(f.Value())
	if b.Masked && text != "" {
		text = maskedValue
	}
	writeSpan(buf, f, text)
	return nil
}

func (b Input) inputType() string {
	if b.Type == "" {
		return "text"
	}
	return b.Type
}

const maskedValue = "********"

func writeSpan(buf *bytes.Buffer, f *field.Field, text string) {
	buf.WriteString("<span ")
	buf.WriteString(f.Attrs().String())
	buf.WriteString(">")
	buf.WriteString(html.EscapeString(text))
	buf.WriteString("</span>")
}

func valueString(value any) string {
	return attrs.Stringify(value)
}
