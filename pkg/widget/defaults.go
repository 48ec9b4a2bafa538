package widget

import "github.com/goliatone/go-htwidget/pkg/attrs"

// Class names and styles applied to every widget. They are exported so callers
// styling the markup do not need to copy literals.
const (
	WidgetClass       = "widget"
	DefaultErrorClass = "error"

	LabelInlineMargin = "10px"
	WrapperAlignment  = "text-top"

	displayBlock       = "block"
	displayInlineBlock = "inline-block"
)

// DefaultLabelAttrs returns the label attributes a new widget starts with:
// the label sits on its own line above the body.
func DefaultLabelAttrs() *attrs.Set {
	return attrs.New(attrs.Pair{Key: "style", Value: attrs.Pairs{
		{Key: "display", Value: displayBlock},
	}})
}

// DefaultErrorAttrs returns the error container attributes a new widget starts
// with.
func DefaultErrorAttrs() *attrs.Set {
	return attrs.New(attrs.Pair{Key: "style", Value: attrs.Pairs{
		{Key: "color", Value: "yellow"},
		{Key: "background", Value: "red"},
	}})
}
