package field

import (
	"errors"
	"reflect"
	"strings"

	"github.com/goliatone/go-htwidget/pkg/attrs"
)

// IDPrefix prefixes generated element identifiers.
const IDPrefix = "fg-"

// Option configures a Field at construction time.
type Option func(*Field)

// WithID overrides the generated element id.
func WithID(id string) Option {
	return func(f *Field) {
		f.SetID(id)
	}
}

// WithAttrs seeds additional element attributes.
func WithAttrs(pairs ...attrs.Pair) Option {
	return func(f *Field) {
		for _, pair := range pairs {
			f.attrs.Set(pair.Key, pair.Value)
		}
	}
}

// Field holds a named value resolved from an ambient context, the element
// attributes used by widget bodies, and the validation chain.
type Field struct {
	name    string
	id      string
	attrs   *attrs.Set
	context map[string]any
	filters Filters
	errors  []string

	fallback     any
	fallbackWhen []any
	hasFallback  bool
}

// New constructs a field named name. The name is immutable.
func New(name string, options ...Option) *Field {
	f := &Field{
		name:  name,
		attrs: attrs.New(attrs.Pair{Key: "name", Value: name}),
	}
	f.SetID(DefaultID(name))
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// DefaultID derives the element id for name: bracket segments are joined with
// dashes and the result is prefixed with IDPrefix.
func DefaultID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	replacer := strings.NewReplacer("][", "-", "[", "-", "]", "", " ", "-")
	return IDPrefix + replacer.Replace(trimmed)
}

// Name returns the field name.
func (f *Field) Name() string {
	return f.name
}

// ID returns the element identifier.
func (f *Field) ID() string {
	return f.id
}

// SetID replaces the element identifier and keeps the id attribute in sync.
func (f *Field) SetID(id string) *Field {
	f.id = strings.TrimSpace(id)
	if f.id == "" {
		f.attrs.Delete("id")
		return f
	}
	f.attrs.Set("id", f.id)
	return f
}

// Attrs exposes the element attributes. Widget bodies clone before adding
// render-time attributes such as value.
func (f *Field) Attrs() *attrs.Set {
	return f.attrs
}

// Context supplies the data the field value is resolved from.
func (f *Field) Context(ctx map[string]any) *Field {
	f.context = ctx
	return f
}

// Filters exposes the validation chain.
func (f *Field) Filters() *Filters {
	return &f.filters
}

// Fallback registers value as the substitute for resolved values equal to any
// of when. Without when, the fallback replaces absent or nil values.
func (f *Field) Fallback(value any, when ...any) *Field {
	if len(when) == 0 {
		when = []any{nil}
	}
	f.fallback = value
	f.fallbackWhen = append([]any(nil), when...)
	f.hasFallback = true
	return f
}

// FallbackValue returns the registered fallback.
func (f *Field) FallbackValue() (any, bool) {
	return f.fallback, f.hasFallback
}

// AddError records an externally produced message (for example a server-side
// validation failure). External messages take precedence in Validate.
func (f *Field) AddError(msg string) *Field {
	if msg = strings.TrimSpace(msg); msg != "" {
		f.errors = append(f.errors, msg)
	}
	return f
}

// ClearErrors drops messages recorded through AddError.
func (f *Field) ClearErrors() *Field {
	f.errors = nil
	return f
}

// RawValue returns the value found in the context, before fallback
// substitution.
func (f *Field) RawValue() (any, bool) {
	return Resolve(f.context, f.name)
}

// Value returns the resolved value. The fallback is substituted when the raw
// value matches a when condition or fails validation.
func (f *Field) Value() any {
	raw, _ := f.RawValue()
	if !f.hasFallback {
		return raw
	}
	if f.matchesFallback(raw) || f.filters.Check(raw) != nil {
		return f.fallback
	}
	return raw
}

// Validate returns the first error message for the current context, or an
// empty string when the value is acceptable.
func (f *Field) Validate() string {
	if len(f.errors) > 0 {
		return f.errors[0]
	}
	raw, _ := f.RawValue()
	err := f.filters.Check(raw)
	if err == nil {
		return ""
	}
	var verr ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}

// SubmitFlag returns the name of the hidden input used to detect submission of
// this field, e.g. "user[email]" becomes "user_email_submit".
func (f *Field) SubmitFlag() string {
	return strings.NewReplacer("[", "_", "]", "").Replace(f.name) + "_submit"
}

func (f *Field) matchesFallback(raw any) bool {
	for _, cond := range f.fallbackWhen {
		if cond == nil {
			if raw == nil {
				return true
			}
			continue
		}
		if reflect.DeepEqual(cond, raw) {
			return true
		}
	}
	return false
}
