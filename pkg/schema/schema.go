// Package schema loads the contact form definition from the embedded OpenAPI
// document. The parsed Form drives the page renderer and stays the single
// description of the form's fields, labels, and constraints.
package schema

import (
	"embed"
	"sort"
)

//go:embed contact-form.yaml
var embeddedDocument embed.FS

// DocumentName is the embedded OpenAPI document describing the form.
const DocumentName = "contact-form.yaml"

// OperationID identifies the contact submission operation inside the
// document.
const OperationID = "submitContactForm"

// Control kinds a field can render as.
const (
	ControlText     = "text"
	ControlEmail    = "email"
	ControlTel      = "tel"
	ControlTextarea = "textarea"
)

// Field describes one form input derived from the request body schema.
type Field struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Format      string `json:"format,omitempty"`
	Control     string `json:"control"`
	Required    bool   `json:"required"`
	Label       string `json:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Pattern     string `json:"pattern,omitempty"`
	MinLength   *int   `json:"minLength,omitempty"`
}

// Form is the parsed contact form definition.
type Form struct {
	OperationID string  `json:"operationId"`
	Method      string  `json:"method"`
	Endpoint    string  `json:"endpoint"`
	Summary     string  `json:"summary,omitempty"`
	Fields      []Field `json:"fields"`
}

// Field looks up a field by name.
func (f Form) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// canonicalOrder pins the display order of the known contact fields; fields
// the document adds beyond these sort alphabetically after them.
var canonicalOrder = map[string]int{
	"name":        0,
	"email":       1,
	"phone":       2,
	"companyName": 3,
	"message":     4,
}

func orderFields(fields []Field) []Field {
	sort.SliceStable(fields, func(i, j int) bool {
		ri, iKnown := canonicalOrder[fields[i].Name]
		rj, jKnown := canonicalOrder[fields[j].Name]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return fields[i].Name < fields[j].Name
		}
	})
	return fields
}
