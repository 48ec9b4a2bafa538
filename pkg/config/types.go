package config

import "github.com/goliatone/go-htwidget/pkg/attrs"

// Document is a parsed widget configuration file.
type Document struct {
	Source  string
	Widgets []WidgetConfig
}

// WidgetConfig describes one widget. Mapping values (Label, Error, Attrs and
// anything in Options) keep document key order as attrs.Pairs.
type WidgetConfig struct {
	Name string
	Kind string
	ID   string

	// Label is a string or attrs.Pairs, passed verbatim to widget.Label.
	Label any
	// Error is a scalar or attrs.Pairs, passed verbatim to widget.Error.
	Error any

	Readonly bool
	Inline   bool

	Required        bool
	RequiredMessage string

	Fallback     any
	FallbackWhen []any
	HasFallback  bool

	Attrs attrs.Pairs

	// Options holds the remaining keys, handed to the kind factory.
	Options map[string]any
}
