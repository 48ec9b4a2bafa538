package htwidget

import (
	"io/fs"

	"github.com/goliatone/go-htwidget/pkg/widgets"
)

// EmbeddedTemplates exposes the built-in widget body templates so callers can
// reuse or extend them without importing the widgets package directly.
func EmbeddedTemplates() fs.FS {
	return widgets.TemplatesFS()
}
