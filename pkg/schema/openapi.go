package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const predictPath = "/predict"

// FromOpenAPI derives a catalog from the prediction service's published
// OpenAPI document (FastAPI serves it at /openapi.json). The request body
// schema of POST /predict supplies names, types, and the required list; enum
// values become options. Service documents generated from plain type
// annotations carry no enums, so fields whose names match the builtin catalog
// inherit its option lists, labels, and help text.
func FromOpenAPI(ctx context.Context, raw []byte) (Catalog, error) {
	if len(raw) == 0 {
		return nil, errors.New("schema: openapi document is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("schema: load openapi document: %w", err)
	}

	if doc.Paths == nil {
		return nil, errors.New("schema: openapi document has no paths")
	}
	item := doc.Paths.Find(predictPath)
	if item == nil || item.Post == nil {
		return nil, fmt.Errorf("schema: openapi document does not declare POST %s", predictPath)
	}

	body := requestBodySchema(item.Post.RequestBody)
	if body == nil {
		return nil, fmt.Errorf("schema: POST %s has no JSON request body schema", predictPath)
	}
	if len(body.Properties) == 0 {
		return nil, fmt.Errorf("schema: POST %s request body declares no properties", predictPath)
	}

	required := make(map[string]bool, len(body.Required))
	for _, name := range body.Required {
		required[name] = true
	}

	builtin := Default()
	catalog := make(Catalog, 0, len(body.Properties))
	for name, property := range body.Properties {
		field, err := fieldFromProperty(name, property, required[name], builtin)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, field)
	}

	sortLikeBuiltin(catalog, builtin)
	return catalog, nil
}

func requestBodySchema(ref *openapi3.RequestBodyRef) *openapi3.Schema {
	if ref == nil || ref.Value == nil {
		return nil
	}
	mt, ok := ref.Value.Content["application/json"]
	if !ok || mt.Schema == nil {
		return nil
	}
	return resolveSchema(mt.Schema)
}

func resolveSchema(ref *openapi3.SchemaRef) *openapi3.Schema {
	if ref == nil {
		return nil
	}
	return ref.Value
}

func fieldFromProperty(name string, ref *openapi3.SchemaRef, required bool, builtin Catalog) (Field, error) {
	property := resolveSchema(ref)
	if property == nil {
		return Field{}, fmt.Errorf("schema: property %q has no schema", name)
	}

	field := Field{
		Name:        name,
		Label:       labelFor(name, property.Title),
		Required:    required,
		Description: property.Description,
	}

	switch typ := schemaType(property); typ {
	case "integer":
		field.Type = FieldTypeInteger
	case "number":
		field.Type = FieldTypeNumber
	case "string", "":
		// Union annotations (for example str-or-int SeniorCitizen) surface as
		// anyOf with no top-level type; both arrive here as categorical.
		field.Type = FieldTypeCategorical
		for _, value := range property.Enum {
			if str, ok := value.(string); ok {
				field.Options = append(field.Options, str)
			}
		}
	default:
		return Field{}, fmt.Errorf("schema: property %q has unsupported type %q", name, typ)
	}

	if known, ok := builtin.Find(name); ok {
		if field.Label == "" || field.Label == labelFor(name, "") {
			field.Label = known.Label
		}
		if field.Description == "" {
			field.Description = known.Description
		}
		if field.Placeholder == "" {
			field.Placeholder = known.Placeholder
		}
		if field.Type == FieldTypeCategorical && len(field.Options) == 0 {
			field.Options = append([]string(nil), known.Options...)
		}
	}

	if field.Type == FieldTypeCategorical && len(field.Options) == 0 {
		return Field{}, fmt.Errorf("schema: categorical property %q has no options and no builtin fallback", name)
	}
	return field, nil
}

func schemaType(schema *openapi3.Schema) string {
	if schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// labelFor falls back to a title-cased rendition of the wire name when the
// document carries no explicit title.
func labelFor(name, title string) string {
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		return trimmed
	}
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// sortLikeBuiltin orders known fields as the builtin catalog presents them and
// appends unknown fields alphabetically after them.
func sortLikeBuiltin(catalog Catalog, builtin Catalog) {
	position := make(map[string]int, len(builtin))
	for i, field := range builtin {
		position[field.Name] = i
	}
	sort.SliceStable(catalog, func(i, j int) bool {
		pi, iKnown := position[catalog[i].Name]
		pj, jKnown := position[catalog[j].Name]
		switch {
		case iKnown && jKnown:
			return pi < pj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return catalog[i].Name < catalog[j].Name
		}
	})
}
