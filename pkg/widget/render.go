package widget

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/goliatone/go-htwidget/pkg/attrs"
)

// Render returns the full widget markup: the wrapper div around RenderInner.
// Only the body variant can fail; the returned error wraps its failure.
func (w *Widget) Render() (string, error) {
	var buf bytes.Buffer
	if err := w.writeWidget(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderInner returns the label, body and error fragments without the wrapper.
func (w *Widget) RenderInner() (string, error) {
	var buf bytes.Buffer
	if err := w.writeInner(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteTo renders the widget into out.
func (w *Widget) WriteTo(out io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := w.writeWidget(&buf); err != nil {
		return 0, err
	}
	return buf.WriteTo(out)
}

// String renders the widget, logging and returning an empty string when the
// body fails.
func (w *Widget) String() string {
	out, err := w.Render()
	if err != nil {
		w.logger.Error("widget: render failed", "widget", w.Name(), "error", err)
		return ""
	}
	return out
}

func (w *Widget) wrapperAttrs() *attrs.Set {
	display := displayBlock
	if w.inline {
		display = displayInlineBlock
	}
	wrapper := attrs.New(
		attrs.Pair{Key: "class", Value: WidgetClass + " " + w.ID()},
		attrs.Pair{Key: KeyStyle, Value: attrs.Pairs{{Key: "display", Value: display}}},
	)
	if w.inline {
		wrapper.SetNested(KeyStyle, "vertical-align", WrapperAlignment)
	}
	return wrapper
}

func (w *Widget) writeWidget(buf *bytes.Buffer) error {
	buf.WriteString("<div ")
	buf.WriteString(w.wrapperAttrs().String())
	buf.WriteString(">\n")
	if err := w.writeInner(buf); err != nil {
		return err
	}
	buf.WriteString("\n</div>")
	return nil
}

func (w *Widget) writeInner(buf *bytes.Buffer) error {
	if w.body == nil {
		return ErrNoBody
	}

	w.writeLabel(buf)
	buf.WriteByte('\n')

	var err error
	if w.readonly {
		err = w.body.RenderReadonly(buf, w.field)
	} else {
		err = w.body.RenderWritable(buf, w.field)
	}
	if err != nil {
		return fmt.Errorf("widget: render body for %q: %w", w.Name(), err)
	}
	buf.WriteByte('\n')

	w.writeError(buf)
	return nil
}

func (w *Widget) writeLabel(buf *bytes.Buffer) {
	if w.labelText == "" {
		return
	}
	label := w.labelAttrs.Clone()
	label.Set("for", w.ID())

	text := w.labelText
	if w.sanitize != nil {
		text = w.sanitize(text)
	}

	buf.WriteString("<label ")
	buf.WriteString(label.String())
	buf.WriteString(">")
	buf.WriteString(text)
	buf.WriteString("</label>")
}

func (w *Widget) writeError(buf *bytes.Buffer) {
	container := w.errorAttrs.Clone()
	if class, ok := container.Get("class"); !ok || class == nil {
		container.Set("class", DefaultErrorClass)
	}

	buf.WriteString("<div ")
	buf.WriteString(container.String())
	buf.WriteString(">\n")
	if w.errorDisplay {
		buf.WriteString(html.EscapeString(w.field.Validate()))
	}
	buf.WriteString("\n</div>")
}
