package jsonschema

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
)

// Schema represents the subset of JSON Schema used to describe tool arguments
// and responses. It is generated via reflection from Go types and surfaced to
// the agent runtime so the language model knows how to call each tool.
type Schema struct {
	// Type specifies the data type (e.g., "object", "array", "string", "number")
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of the arguments, each with its own schema
	Properties map[string]*Schema `json:"properties,omitempty"`
	// For array types, defines the schema of items in the array
	Items *Schema `json:"items,omitempty"`
	// AdditionalProperties controls the value schema for map types
	AdditionalProperties any `json:"additionalProperties,omitempty"`
	// Enum contains the list of allowed values for the parameter
	Enum []any `json:"enum,omitempty"`
}

// GenerateJSONSchema derives a JSON schema for the type T.
//
// Field names come from the json struct tag (fields tagged "-" are skipped);
// a field is required when it is a non-pointer without omitempty, or when its
// jsonschema tag carries "required". The jsonschema tag also supports
// "description=..." and repeated "enum=..." entries, with enum values
// converted to the field's Go type.
func GenerateJSONSchema[T any]() *Schema {
	return generate(reflect.TypeFor[T]())
}

func generate(t reflect.Type) *Schema {
	switch t.Kind() {
	case reflect.Ptr:
		return generate(t.Elem())

	case reflect.Struct:
		return generateStruct(t)

	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: generate(t.Elem())}

	case reflect.Map:
		return &Schema{Type: "object", AdditionalProperties: generate(t.Elem())}

	case reflect.String:
		return &Schema{Type: "string"}

	case reflect.Bool:
		return &Schema{Type: "boolean"}

	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}

	default:
		return &Schema{Type: "object"}
	}
}

func generateStruct(t reflect.Type) *Schema {
	schema := &Schema{
		Type:       "object",
		Properties: map[string]*Schema{},
	}

	required := make([]string, 0)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		fieldName := field.Name
		isOmitEmpty := false
		if jsonTag != "" {
			if commaIdx := strings.Index(jsonTag, ","); commaIdx != -1 {
				if commaIdx > 0 {
					fieldName = jsonTag[:commaIdx]
				}
				isOmitEmpty = strings.Contains(jsonTag[commaIdx:], "omitempty")
			} else {
				fieldName = jsonTag
			}
		}

		fieldSchema := generate(field.Type)
		schema.Properties[fieldName] = fieldSchema

		isRequiredByTag, err := applyJSONSchemaTag(field.Type, field.Tag, fieldSchema)
		if err != nil {
			slog.Error("jsonschema tag parse error", "field", fieldName, "error", err.Error())
		}

		if (field.Type.Kind() != reflect.Ptr && !isOmitEmpty) || isRequiredByTag {
			required = append(required, fieldName)
		}
	}

	if len(required) > 0 {
		schema.Required = required
	}
	return schema
}

// applyJSONSchemaTag parses the jsonschema struct tag and applies its settings
// to the schema. Supported entries:
//
//	jsonschema:"description=xxx"
//	jsonschema:"enum=xxx,enum=yyy"
//	jsonschema:"required"
//
// Enum values are converted to the field's underlying kind; unsupported kinds
// return an error. The description value cannot contain a comma.
func applyJSONSchemaTag(fieldType reflect.Type, tag reflect.StructTag, schema *Schema) (bool, error) {
	jsonSchemaTag := tag.Get("jsonschema")
	if len(jsonSchemaTag) == 0 {
		return false, nil
	}

	isRequiredByTag := false
	for _, tagItem := range strings.Split(jsonSchemaTag, ",") {
		kv := strings.SplitN(tagItem, "=", 2)
		if len(kv) == 1 {
			if kv[0] == "required" {
				isRequiredByTag = true
			}
			continue
		}

		key, value := kv[0], kv[1]
		switch key {
		case "description":
			schema.Description = value
		case "enum":
			enumValue, err := convertEnumValue(fieldType, value)
			if err != nil {
				return isRequiredByTag, err
			}
			schema.Enum = append(schema.Enum, enumValue)
		}
	}

	return isRequiredByTag, nil
}

func convertEnumValue(fieldType reflect.Type, value string) (any, error) {
	switch fieldType.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %v to int64 failed: %w", value, err)
		}
		return v, nil
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %v to float64 failed: %w", value, err)
		}
		return v, nil
	case reflect.Bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %v to bool failed: %w", value, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("enum tag unsupported for field type: %v", fieldType)
	}
}

// JsonString converts the Schema to its JSON representation.
// indent: optional bool parameter. If true, formats JSON with indentation.
func (s *Schema) JsonString(indent ...bool) (string, error) {
	shouldIndent := len(indent) > 0 && indent[0]

	var jsonBytes []byte
	var err error
	if shouldIndent {
		jsonBytes, err = json.MarshalIndent(s, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(s)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}
	return string(jsonBytes), nil
}

// String returns the compact JSON representation of the schema, or an error
// message if marshalling fails.
func (s *Schema) String() string {
	jsonStr, err := s.JsonString()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return jsonStr
}
