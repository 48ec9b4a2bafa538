package widgets

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-htwidget/pkg/attrs"
	"github.com/goliatone/go-htwidget/pkg/widget"
)

// Factory builds a body for a widget kind from loosely typed configuration
// (the kind-specific keys of a config document, e.g. "options" for select).
type Factory func(config map[string]any) (widget.Body, error)

// Descriptor bundles a kind name with its factory.
type Descriptor struct {
	Name        string
	Description string
	Factory     Factory
}

// Registry tracks widget kinds keyed by name. Callers can register new kinds or
// override defaults.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Descriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{kinds: make(map[string]Descriptor)}
}

// Clone returns a copy of the registry to allow isolated mutations.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := New()
	for name, descriptor := range r.kinds {
		cloned.kinds[name] = descriptor
	}
	return cloned
}

// Register associates a descriptor with name. Existing entries are replaced.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("widgets: kind name is required")
	}
	if descriptor.Factory == nil {
		return fmt.Errorf("widgets: factory for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = name
	r.kinds[name] = descriptor
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.kinds[normalize(name)]
	return descriptor, ok
}

// Names returns the registered kind names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Build constructs a widget of kind named name.
func (r *Registry) Build(kind, name string, config map[string]any, options ...widget.Option) (*widget.Widget, error) {
	descriptor, ok := r.Descriptor(kind)
	if !ok {
		return nil, fmt.Errorf("widgets: kind %q not registered (widget %q)", kind, name)
	}
	body, err := descriptor.Factory(config)
	if err != nil {
		return nil, fmt.Errorf("widgets: build %q widget %q: %w", descriptor.Name, name, err)
	}
	return widget.New(name, body, options...), nil
}

// NewDefaultRegistry constructs a registry holding the built-in kinds.
func NewDefaultRegistry() *Registry {
	registry := New()

	registry.MustRegister(KindText, Descriptor{
		Description: "single line text input",
		Factory: func(config map[string]any) (widget.Body, error) {
			return Input{Type: stringOr(config["type"], "text")}, nil
		},
	})
	registry.MustRegister(KindPassword, Descriptor{
		Description: "masked password input",
		Factory: func(map[string]any) (widget.Body, error) {
			return Input{Type: "password", Masked: true}, nil
		},
	})
	registry.MustRegister(KindTextarea, Descriptor{
		Description: "multi-line text",
		Factory: func(config map[string]any) (widget.Body, error) {
			return Textarea{Rows: intOr(config["rows"], 0)}, nil
		},
	})
	registry.MustRegister(KindSelect, Descriptor{
		Description: "single choice dropdown",
		Factory: func(config map[string]any) (widget.Body, error) {
			options, err := ParseOptions(config["options"])
			if err != nil {
				return nil, err
			}
			return Select{Options: options, Placeholder: stringOr(config["placeholder"], "")}, nil
		},
	})
	registry.MustRegister(KindCheckbox, Descriptor{
		Description: "boolean checkbox",
		Factory: func(config map[string]any) (widget.Body, error) {
			return Checkbox{
				Value:    stringOr(config["value"], ""),
				OnLabel:  stringOr(config["on"], ""),
				OffLabel: stringOr(config["off"], ""),
			}, nil
		},
	})
	registry.MustRegister(KindTemplate, Descriptor{
		Description: "pongo2 template body (template: input|textarea)",
		Factory: func(config map[string]any) (widget.Body, error) {
			return NewTemplateBody(
				stringOr(config["template"], TemplateKindInput),
				WithInputType(stringOr(config["type"], "")),
			), nil
		},
	})

	return registry
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func stringOr(value any, fallback string) string {
	if value == nil {
		return fallback
	}
	if s := strings.TrimSpace(attrs.Stringify(value)); s != "" {
		return s
	}
	return fallback
}

func intOr(value any, fallback int) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}
