package widget

import (
	"fmt"

	"github.com/goliatone/go-htwidget/pkg/attrs"
)

// Reserved configuration keys understood by Label and Error.
const (
	KeyText    = "text"
	KeyInline  = "inline"
	KeyStyle   = "style"
	KeyDisplay = "display"
)

// Label configures the label. A string replaces the label text. A mapping
// (map[string]any, map[string]string, attrs.Pairs or *attrs.Set) is applied
// entry by entry:
//
//   - "text" replaces the label text
//   - "inline" truthy sets style display:inline-block and margin-right:10px;
//     falsy sets only display:block, so an earlier margin-right survives
//   - "style" with a mapping value is merged one leaf at a time
//   - any other key overwrites that single attribute
//
// Plain maps are applied in sorted key order; use attrs.Pairs to control the
// order. Any other input type leaves the widget unchanged.
func (w *Widget) Label(label any) *Widget {
	if text, ok := label.(string); ok {
		w.labelText = text
		return w
	}
	entries, ok := attrs.Entries(label)
	if !ok {
		w.logger.Debug("widget: ignoring label configuration", "widget", w.Name(), "type", fmt.Sprintf("%T", label))
		return w
	}
	for _, entry := range entries {
		w.setLabelAttr(entry.Key, entry.Value)
	}
	return w
}

func (w *Widget) setLabelAttr(key string, value any) {
	switch key {
	case KeyInline:
		if truthy(value) {
			w.labelAttrs.SetNested(KeyStyle, "display", displayInlineBlock)
			w.labelAttrs.SetNested(KeyStyle, "margin-right", LabelInlineMargin)
		} else {
			w.labelAttrs.SetNested(KeyStyle, "display", displayBlock)
		}
	case KeyText:
		w.labelText = attrs.Stringify(value)
	case KeyStyle:
		mergeStyle(w.labelAttrs, value)
	default:
		w.labelAttrs.Set(key, value)
	}
}

// Error configures the error region. A boolean-like scalar (bool, number,
// string or nil) toggles whether the validation message is emitted and keeps
// the attributes. A mapping is applied entry by entry: "display" toggles the
// message, "style" mappings merge leaf by leaf and any other key overwrites
// that attribute. There is no "inline" shorthand; such a key is stored as a
// plain attribute. Other input types leave the widget unchanged.
func (w *Widget) Error(config any) *Widget {
	if entries, ok := attrs.Entries(config); ok {
		for _, entry := range entries {
			switch entry.Key {
			case KeyDisplay:
				w.errorDisplay = truthy(entry.Value)
			case KeyStyle:
				mergeStyle(w.errorAttrs, entry.Value)
			default:
				w.errorAttrs.Set(entry.Key, entry.Value)
			}
		}
		return w
	}
	if !isScalar(config) {
		w.logger.Debug("widget: ignoring error configuration", "widget", w.Name(), "type", fmt.Sprintf("%T", config))
		return w
	}
	w.errorDisplay = truthy(config)
	return w
}

func mergeStyle(target *attrs.Set, value any) {
	entries, ok := attrs.Entries(value)
	if !ok {
		target.Set(KeyStyle, value)
		return
	}
	for _, entry := range entries {
		target.SetNested(KeyStyle, entry.Key, entry.Value)
	}
}

func isScalar(value any) bool {
	switch value.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

// truthy casts a configuration value to a boolean: nil, false, zero numbers,
// "" and "0" are false, everything else is true.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "0"
	case int:
		return v != 0
	case int8:
		return v != 0
	case int16:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case uint:
		return v != 0
	case uint8:
		return v != 0
	case uint16:
		return v != 0
	case uint32:
		return v != 0
	case uint64:
		return v != 0
	case float32:
		return v != 0
	case float64:
		return v != 0
	default:
		if entries, ok := attrs.Entries(value); ok {
			return len(entries) > 0
		}
		return true
	}
}
