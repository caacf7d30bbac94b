package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the serialised shape of a bound form: field declarations plus
// the submitted values and errors to bind them with.
type Document struct {
	Prefix      string              `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Fields      []Field             `json:"fields" yaml:"fields"`
	Values      map[string]any      `json:"values,omitempty" yaml:"values,omitempty"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty" yaml:"fieldErrors,omitempty"`
	FormErrors  []string            `json:"formErrors,omitempty" yaml:"formErrors,omitempty"`
}

// Form binds the document.
func (d Document) Form() Form {
	form := Bind(d.Prefix, d.Fields, d.Values, d.FieldErrors)
	form.Errors = append([]string(nil), d.FormErrors...)
	return form
}

// ParseDocument decodes a JSON or YAML form document. source names the input
// in error messages.
func ParseDocument(data []byte, source string) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("model: form document %s is empty", source)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = Document{}
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil {
			return Document{}, fmt.Errorf("model: parse %s: invalid JSON or YAML: %w", source, yerr)
		}
	}
	if len(doc.Fields) == 0 {
		return Document{}, fmt.Errorf("model: form document %s declares no fields", source)
	}
	for idx, field := range doc.Fields {
		if strings.TrimSpace(field.Name) == "" {
			return Document{}, fmt.Errorf("model: form document %s: field %d has no name", source, idx)
		}
	}
	return doc, nil
}
