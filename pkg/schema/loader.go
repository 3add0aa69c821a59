package schema

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	placeholderExtensionKey = "x-placeholder"
	controlExtensionKey     = "x-control"
)

// Load parses the embedded OpenAPI document and returns the contact form
// definition for the canonical operation.
func Load(ctx context.Context) (Form, error) {
	raw, err := embeddedDocument.ReadFile(DocumentName)
	if err != nil {
		return Form{}, fmt.Errorf("schema: read embedded document: %w", err)
	}
	return Parse(ctx, raw, OperationID)
}

// Parse extracts the form definition for operationID from an OpenAPI 3
// document payload.
func Parse(ctx context.Context, raw []byte, operationID string) (Form, error) {
	if len(raw) == 0 {
		return Form{}, errors.New("schema: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return Form{}, fmt.Errorf("schema: load document: %w", err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return Form{}, errors.New("schema: document does not contain any paths")
	}

	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range map[string]*openapi3.Operation{
			"GET":    item.Get,
			"POST":   item.Post,
			"PUT":    item.Put,
			"PATCH":  item.Patch,
			"DELETE": item.Delete,
		} {
			if operation == nil || operation.OperationID != operationID {
				continue
			}
			form, err := buildForm(operationID, method, path, operation)
			if err != nil {
				return Form{}, err
			}
			return form, nil
		}
	}
	return Form{}, fmt.Errorf("schema: operation %q not found", operationID)
}

func buildForm(operationID, method, path string, operation *openapi3.Operation) (Form, error) {
	body := requestSchema(operation.RequestBody)
	if body == nil {
		return Form{}, fmt.Errorf("schema: operation %q has no request body schema", operationID)
	}

	required := make(map[string]bool, len(body.Required))
	for _, name := range body.Required {
		required[name] = true
	}

	fields := make([]Field, 0, len(body.Properties))
	for name, property := range body.Properties {
		if property == nil || property.Value == nil {
			continue
		}
		fields = append(fields, buildField(name, property.Value, required[name]))
	}
	if len(fields) == 0 {
		return Form{}, fmt.Errorf("schema: operation %q declares no properties", operationID)
	}

	return Form{
		OperationID: operationID,
		Method:      method,
		Endpoint:    path,
		Summary:     operation.Summary,
		Fields:      orderFields(fields),
	}, nil
}

func requestSchema(ref *openapi3.RequestBodyRef) *openapi3.Schema {
	if ref == nil || ref.Value == nil {
		return nil
	}
	mt, ok := ref.Value.Content["application/json"]
	if !ok || mt.Schema == nil {
		return nil
	}
	return mt.Schema.Value
}

func buildField(name string, src *openapi3.Schema, required bool) Field {
	field := Field{
		Name:     name,
		Type:     firstSchemaType(src.Type),
		Format:   src.Format,
		Required: required,
		Label:    src.Title,
		Pattern:  src.Pattern,
	}
	if src.MinLength != 0 {
		value := int(src.MinLength)
		field.MinLength = &value
	}
	field.Placeholder = stringExtension(src.Extensions, placeholderExtensionKey)
	field.Control = control(field, stringExtension(src.Extensions, controlExtensionKey))
	return field
}

func control(field Field, override string) string {
	if override != "" {
		return override
	}
	switch field.Format {
	case "email":
		return ControlEmail
	case "tel":
		return ControlTel
	}
	return ControlText
}

func stringExtension(extensions map[string]any, key string) string {
	if len(extensions) == 0 {
		return ""
	}
	value, ok := extensions[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
