// Package render convierte valores en texto estructurado e indentado.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifica la serialización de salida.
type Format string

// Formatos soportados.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"

	DefaultIndent = 2
)

// ErrUnknownFormat indica un formato de salida no soportado.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat normaliza el nombre de un formato ("json", "yaml", "yml").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Render serializa v con la indentación indicada. Un indent menor a 1 usa DefaultIndent.
func Render(v any, f Format, indent int) (string, error) {
	if indent < 1 {
		indent = DefaultIndent
	}

	switch f {
	case FormatJSON:
		raw, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("marshal json: %w", err)
		}
		return Reindent(raw, indent)
	case FormatYAML:
		return renderYAML(v, indent)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// renderYAML usa yaml.v3: los strings que se leerían como otro tipo
// (ej: "050822") salen entre comillas dobles.
func renderYAML(v any, indent int) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("marshal yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("marshal yaml: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// Reindent vuelve a formatear un documento JSON ya serializado.
func Reindent(raw []byte, indent int) (string, error) {
	if indent < 1 {
		indent = DefaultIndent
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), "", strings.Repeat(" ", indent)); err != nil {
		return "", fmt.Errorf("reindent json: %w", err)
	}
	return buf.String(), nil
}
