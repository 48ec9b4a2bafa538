package widgets

import (
	"bytes"
	"html"

	"github.com/goliatone/go-htwidget/pkg/field"
	"github.com/goliatone/go-htwidget/pkg/widget"
)

// Textarea renders a multi-line text control.
type Textarea struct {
	Rows int
}

var _ widget.Body = Textarea{}

// NewTextarea builds a textarea widget.
func NewTextarea(name string, rows int, options ...widget.Option) *widget.Widget {
	return widget.New(name, Textarea{Rows: rows}, options...)
}

func (b Textarea) RenderWritable(buf *bytes.Buffer, f *field.Field) error {
	a := f.Attrs().Clone()
	if b.Rows > 0 && !a.Has("rows") {
		a.Set("rows", b.Rows)
	}
	buf.WriteString("<textarea ")
	buf.WriteString(a.String())
	buf.WriteString(">")
	buf.WriteString(html.EscapeString(valueString(f.Value())))
	buf.WriteString("</textarea>")
	return nil
}

func (b Textarea) RenderReadonly(buf *bytes.Buffer, f *field.Field) error {
	writeSpan(buf, f, valueString(f.Value()))
	return nil
}
