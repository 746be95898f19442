package template

import (
	"io"
)

// TemplateRenderer is the engine contract writers program against. Renders
// return the produced markup and optionally tee it to the supplied writers.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data map[string]any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
}
