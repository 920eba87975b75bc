package generator

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/eugenenazirov/elm-build-config/internal/literal"
)

const moduleTemplatePath = "templates/module.elm.tmpl"

//go:embed templates/*.tmpl
var templateFS embed.FS

var moduleTemplate = template.Must(template.ParseFS(templateFS, moduleTemplatePath))

type moduleData struct {
	ModuleName string
	Fields     []literal.Field
}

func renderModule(moduleName string, fields []literal.Field) ([]byte, error) {
	var buf bytes.Buffer
	data := moduleData{ModuleName: moduleName, Fields: fields}
	if err := moduleTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render template '%s': %w", moduleTemplatePath, err)
	}
	return buf.Bytes(), nil
}
