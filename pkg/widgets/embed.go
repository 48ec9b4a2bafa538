package widgets

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/goliatone/go-htwidget/pkg/render/template/pongo"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in body templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

var (
	defaultEngineOnce sync.Once
	defaultEngine     *pongo.Engine
	defaultEngineErr  error
)

// DefaultEngine returns the shared engine over TemplatesFS.
func DefaultEngine() (*pongo.Engine, error) {
	defaultEngineOnce.Do(func() {
		defaultEngine, defaultEngineErr = pongo.New(
			pongo.WithFS(TemplatesFS()),
			pongo.WithExtension(".tmpl"),
		)
	})
	return defaultEngine, defaultEngineErr
}
