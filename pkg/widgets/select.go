package widgets

import (
	"bytes"
	"fmt"
	"html"
	"slices"

	"github.com/goliatone/go-htwidget/pkg/attrs"
	"github.com/goliatone/go-htwidget/pkg/field"
	"github.com/goliatone/go-htwidget/pkg/widget"
)

// Option is a single select choice.
type Option struct {
	Value string
	Label string
}

// Select renders a single-choice dropdown. Readonly mode shows the label of the
// selected option, or the raw value when it matches no option.
type Select struct {
	Options []Option
	// Placeholder, when set, is rendered as a leading option with an empty value.
	Placeholder string
}

var _ widget.Body = Select{}

// NewSelect builds a select widget.
func NewSelect(name string, options []Option, wopts ...widget.Option) *widget.Widget {
	return widget.New(name, Select{Options: slices.Clone(options)}, wopts...)
}

func (b Select) RenderWritable(buf *bytes.Buffer, f *field.Field) error {
	selected := valueString(f.Value())

	buf.WriteString("<select ")
	buf.WriteString(f.Attrs().String())
	buf.WriteString(">")
	if b.Placeholder != "" {
		buf.WriteString("\n")
		writeOption(buf, Option{Label: b.Placeholder}, selected == "")
	}
	for _, opt := range b.Options {
		buf.WriteString("\n")
		writeOption(buf, opt, opt.Value == selected)
	}
	buf.WriteString("\n</select>")
	return nil
}

func (b Select) RenderReadonly(buf *bytes.Buffer, f *field.Field) error {
	value := valueString(f.Value())
	text := value
	for _, opt := range b.Options {
		if opt.Value == value {
			text = opt.Label
			break
		}
	}
	writeSpan(buf, f, text)
	return nil
}

func writeOption(buf *bytes.Buffer, opt Option, selected bool) {
	a := attrs.New(attrs.Pair{Key: "value", Value: opt.Value})
	if selected {
		a.Set("selected", true)
	}
	label := opt.Label
	if label == "" {
		label = opt.Value
	}
	buf.WriteString("<option ")
	buf.WriteString(a.String())
	buf.WriteString(">")
	buf.WriteString(html.EscapeString(label))
	buf.WriteString("</option>")
}

// ParseOptions converts loosely typed configuration into select options. It
// accepts a list of strings, a list of {value,label} mappings, or a mapping of
// value to label (sorted by value).
func ParseOptions(raw any) ([]Option, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []Option:
		return slices.Clone(v), nil
	case []string:
		out := make([]Option, 0, len(v))
		for _, value := range v {
			out = append(out, Option{Value: value, Label: value})
		}
		return out, nil
	case []any:
		out := make([]Option, 0, len(v))
		for idx, item := range v {
			opt, err := parseOption(item)
			if err != nil {
				return nil, fmt.Errorf("widgets: option %d: %w", idx, err)
			}
			out = append(out, opt)
		}
		return out, nil
	default:
		entries, ok := attrs.Entries(raw)
		if !ok {
			return nil, fmt.Errorf("widgets: unsupported options type %T", raw)
		}
		out := make([]Option, 0, len(entries))
		for _, entry := range entries {
			out = append(out, Option{Value: entry.Key, Label: attrs.Stringify(entry.Value)})
		}
		return out, nil
	}
}

func parseOption(item any) (Option, error) {
	if entries, ok := attrs.Entries(item); ok {
		var opt Option
		for _, entry := range entries {
			switch entry.Key {
			case "value":
				opt.Value = attrs.Stringify(entry.Value)
			case "label":
				opt.Label = attrs.Stringify(entry.Value)
			}
		}
		if opt.Label == "" {
			opt.Label = opt.Value
		}
		return opt, nil
	}
	switch item.(type) {
	case string, int, int64, float64, bool:
		value := fmt.Sprint(item)
		return Option{Value: value, Label: value}, nil
	default:
		return Option{}, fmt.Errorf("unsupported option type %T", item)
	}
}
