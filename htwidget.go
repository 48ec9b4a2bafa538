// Package htwidget renders HTML form widgets: a label, a writable or
// read-only body and an error region inside a wrapper element. The root
// package re-exports the common entry points; see pkg/widget for the core
// type and pkg/config for declarative documents.
package htwidget

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-htwidget/pkg/orchestrator"
	rendertemplate "github.com/goliatone/go-htwidget/pkg/render/template"
	"github.com/goliatone/go-htwidget/pkg/widget"
	"github.com/goliatone/go-htwidget/pkg/widgets"
)

// Widget aliases widget.Widget.
type Widget = widget.Widget

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewRegistry returns a registry holding the built-in widget kinds.
func NewRegistry() *widgets.Registry {
	return widgets.NewDefaultRegistry()
}

// GenerateHTML loads the document at path from fsys, applies req's values and
// errors, and renders the form.
func GenerateHTML(ctx context.Context, fsys fs.FS, path string, req Request, options ...orchestrator.Option) ([]byte, error) {
	req.Path = path
	gen := orchestrator.New(append([]orchestrator.Option{orchestrator.WithFS(fsys)}, options...)...)
	return gen.Generate(ctx, req)
}

// WithTheme forwards a go-theme manifest and variant to the orchestrator so
// template widgets resolve themed templates.
func WithTheme(manifest *theme.Manifest, variant string, engine rendertemplate.TemplateRenderer) orchestrator.Option {
	return orchestrator.WithTheme(manifest, variant, engine)
}
