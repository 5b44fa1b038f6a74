package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/kaptinlin/jsonrepair"
)

// ParseStringAs attempts to parse a string into the specified type T.
// For primitive types (string, bool, int, uint, float), it performs direct
// conversion. For complex types (structs, maps, slices), it attempts JSON
// unmarshaling; if that fails the string is repaired with jsonrepair and the
// unmarshal is retried, and as a last resort schema-like {"type","value"}
// wrappers are unwrapped (a common mistake when language models confuse a
// JSON schema with the data it describes).
//
// Example usage:
//
//	// Parse a valid JSON string
//	input, err := ParseStringAs[SearchInput](`{"query":"CIO Acme Corp"}`)
//
//	// Parse an invalid JSON string (will be auto-repaired)
//	input, err := ParseStringAs[SearchInput](`{query: 'CIO Acme Corp'}`)
//
//	// Parse primitive types
//	num, err := ParseStringAs[int]("42")
func ParseStringAs[T any](content string) (T, error) {
	var result T

	target := reflect.ValueOf(&result).Elem()

	switch reflect.TypeFor[T]().Kind() {
	case reflect.String:
		// If content looks like JSON, try to unwrap a schema-wrapped value first
		if len(content) > 0 && content[0] == '{' {
			if unwrapped, err := tryUnwrapPrimitive(content); err == nil {
				target.SetString(unwrapped)
				return result, nil
			}
		}
		target.SetString(content)
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(primitiveContent(content))
		if err != nil {
			return result, fmt.Errorf("failed to parse content as bool: %w", err)
		}
		target.SetBool(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(primitiveContent(content), 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as float: %w", err)
		}
		target.SetFloat(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(primitiveContent(content), 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as int: %w", err)
		}
		target.SetInt(val)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(primitiveContent(content), 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as uint: %w", err)
		}
		target.SetUint(val)
		return result, nil

	default:
		return parseComplex[T](content)
	}
}

// parseComplex handles structs, slices, maps and other composite types.
func parseComplex[T any](content string) (T, error) {
	var result T

	err := json.Unmarshal([]byte(content), &result)
	if err == nil {
		return result, nil
	}

	// Attempt to repair the JSON and retry
	repairedJSON, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
	}

	err = json.Unmarshal([]byte(repairedJSON), &result)
	if err == nil {
		return result, nil
	}

	// Last resort: unwrap schema-like {type, value} structures
	if unwrapped, unwrapErr := unwrapSchemaValues(repairedJSON); unwrapErr == nil {
		if json.Unmarshal([]byte(unwrapped), &result) == nil {
			return result, nil
		}
	}

	return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w (original content: %s, repaired: %s)", result, err, content, repairedJSON)
}

// primitiveContent returns the raw content, or the unwrapped value when the
// content is a schema-wrapped primitive such as {"type":"integer","value":3}.
func primitiveContent(content string) string {
	if len(content) > 0 && content[0] == '{' {
		if unwrapped, err := tryUnwrapPrimitive(content); err == nil {
			return unwrapped
		}
	}
	return content
}

// tryUnwrapPrimitive attempts to unwrap a primitive value from a schema-like
// structure, returning its string representation.
func tryUnwrapPrimitive(content string) (string, error) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return "", err
	}

	if _, hasType := data["type"]; !hasType {
		return "", fmt.Errorf("not a schema-wrapped value")
	}
	value, hasValue := data["value"]
	if !hasValue || len(data) != 2 {
		return "", fmt.Errorf("not a schema-wrapped value")
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case float64, bool:
		return fmt.Sprintf("%v", v), nil
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}
}

// unwrapSchemaValues detects and unwraps values wrapped in a schema-like
// structure with "type" and "value" fields.
//
// Example input:
//
//	{"name": {"type": "string", "value": "John"}, "age": {"type": "integer", "value": 30}}
//
// Example output:
//
//	{"name": "John", "age": 30}
func unwrapSchemaValues(jsonStr string) (string, error) {
	var data interface{}
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return "", err
	}

	result, err := json.Marshal(recursiveUnwrap(data))
	if err != nil {
		return "", err
	}
	return string(result), nil
}

// recursiveUnwrap recursively processes data structures to unwrap schema-like values.
func recursiveUnwrap(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		if _, hasType := v["type"]; hasType {
			if value, hasValue := v["value"]; hasValue && len(v) == 2 {
				return recursiveUnwrap(value)
			}
		}

		result := make(map[string]interface{})
		for key, val := range v {
			result[key] = recursiveUnwrap(val)
		}
		return result

	case []interface{}:
		result := make([]interface{}, len(v))
		for i, val := range v {
			result[i] = recursiveUnwrap(val)
		}
		return result

	default:
		return data
	}
}
