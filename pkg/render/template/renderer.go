package template

import "io"

// TemplateRenderer is the seam widget bodies render through. Implementations
// return the rendered text and also copy it into every supplied writer.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
