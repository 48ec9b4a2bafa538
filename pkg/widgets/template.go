package widgets

import (
	"bytes"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-htwidget/pkg/field"
	rendertemplate "github.com/goliatone/go-htwidget/pkg/render/template"
	"github.com/goliatone/go-htwidget/pkg/widget"
)

// Template kinds shipped in TemplatesFS.
const (
	TemplateKindInput    = "input"
	TemplateKindTextarea = "textarea"
)

const themeKeyPrefix = "widgets."

// TemplateOption configures a Template body.
type TemplateOption func(*Template)

// WithEngine renders through the supplied engine instead of DefaultEngine.
func WithEngine(engine rendertemplate.TemplateRenderer) TemplateOption {
	return func(t *Template) {
		if engine != nil {
			t.engine = engine
		}
	}
}

// WithTheme resolves template names from a go-theme manifest. Keys take the
// form "widgets.<kind>.writable" and "widgets.<kind>.readonly"; the variant's
// templates are consulted before the manifest's own.
func WithTheme(manifest *theme.Manifest, variant string) TemplateOption {
	return func(t *Template) {
		t.manifest = manifest
		t.variant = strings.TrimSpace(variant)
	}
}

// WithInputType sets the type exposed to input templates.
func WithInputType(inputType string) TemplateOption {
	return func(t *Template) {
		t.inputType = strings.TrimSpace(inputType)
	}
}

// Template renders both presentations through pongo2 templates named
// "<kind>.writable" and "<kind>.readonly".
type Template struct {
	kind      string
	inputType string
	engine    rendertemplate.TemplateRenderer
	manifest  *theme.Manifest
	variant   string
}

var _ widget.Body = (*Template)(nil)

// NewTemplateBody constructs a template-backed body for kind.
func NewTemplateBody(kind string, options ...TemplateOption) *Template {
	t := &Template{kind: strings.TrimSpace(kind)}
	if t.kind == "" {
		t.kind = TemplateKindInput
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(t)
	}
	return t
}

// NewTemplate builds a widget whose body renders through the built-in
// templates for kind.
func NewTemplate(name, kind string, options ...widget.Option) *widget.Widget {
	return widget.New(name, NewTemplateBody(kind), options...)
}

func (t *Template) RenderWritable(buf *bytes.Buffer, f *field.Field) error {
	return t.render(buf, f, "writable")
}

func (t *Template) RenderReadonly(buf *bytes.Buffer, f *field.Field) error {
	return t.render(buf, f, "readonly")
}

// Kind returns the template kind (input or textarea).
func (t *Template) Kind() string {
	return t.kind
}

// TemplateName resolves the template used for mode ("writable" or "readonly").
func (t *Template) TemplateName(mode string) string {
	key := themeKeyPrefix + t.kind + "." + mode
	if name := themeTemplate(t.manifest, t.variant, key); name != "" {
		return name
	}
	return "templates/" + t.kind + "." + mode
}

func (t *Template) render(buf *bytes.Buffer, f *field.Field, mode string) error {
	engine := t.engine
	if engine == nil {
		defaults, err := DefaultEngine()
		if err != nil {
			return fmt.Errorf("widgets: default template engine: %w", err)
		}
		engine = defaults
	}

	a := f.Attrs().Clone()
	inputType := t.inputType
	if value, ok := a.Get("type"); ok && inputType == "" {
		inputType = valueString(value)
	}
	a.Delete("type")
	a.Delete("value")

	name := t.TemplateName(mode)
	rendered, err := engine.RenderTemplate(name, map[string]any{
		"attrs":    a.String(),
		"type":     inputType,
		"value":    valueString(f.Value()),
		"name":     f.Name(),
		"id":       f.ID(),
		"readonly": mode == "readonly",
	})
	if err != nil {
		return fmt.Errorf("widgets: render template %q: %w", name, err)
	}
	buf.WriteString(rendered)
	return nil
}

func themeTemplate(manifest *theme.Manifest, variant, key string) string {
	if manifest == nil {
		return ""
	}
	if variant != "" {
		if v, ok := manifest.Variants[variant]; ok {
			if name := strings.TrimSpace(v.Templates[key]); name != "" {
				return name
			}
		}
	}
	return strings.TrimSpace(manifest.Templates[key])
}
