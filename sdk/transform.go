package sdk

import (
	"encoding/json"
	"strings"
	"unicode"

	"github.com/etalab/catalogue-api/models"
)

// Form field names whose empty string means "not set". The API only accepts
// null for an unset optional, never "", so these are coerced on the way out.
var optionalFormKeys = map[string]struct{}{
	"producer_email":   {},
	"url":              {},
	"license":          {},
	"update_frequency": {},
	"last_updated_at":  {},
	"technical_source": {},
}

// ToPayload maps a dataset form's field map onto the API's snake_case wire
// shape. Keys are converted generically, one underscore before each upper
// case letter, so new form fields need no mapping table entry. The one
// structural exception is extraFieldValues, whose entries become
// {extra_field_id, value} objects. Empty strings for optional fields are
// emitted as null.
func ToPayload(formData map[string]interface{}) map[string]interface{} {
	payload := make(map[string]interface{}, len(formData))

	for key, value := range formData {
		snakeKey := toSnakeCase(key)

		if snakeKey == "extra_field_values" {
			payload[snakeKey] = toExtraFieldValuesPayload(value)
			continue
		}

		if _, optional := optionalFormKeys[snakeKey]; optional {
			if s, ok := value.(string); ok && s == "" {
				payload[snakeKey] = nil
				continue
			}
		}

		payload[snakeKey] = value
	}

	return payload
}

// ToDataset maps an API dataset item back onto the typed record. The catalog
// record is destructured from its nested object and date strings are parsed;
// an empty last_updated_at string counts as unset.
func ToDataset(item map[string]interface{}) (models.Dataset, error) {
	cleaned := make(map[string]interface{}, len(item))
	for key, value := range item {
		if key == "last_updated_at" {
			if s, ok := value.(string); ok && s == "" {
				continue
			}
		}
		cleaned[key] = value
	}

	var dataset models.Dataset
	b, err := json.Marshal(cleaned)
	if err != nil {
		return dataset, err
	}
	if err := json.Unmarshal(b, &dataset); err != nil {
		return dataset, err
	}

	return dataset, nil
}

// toExtraFieldValuesPayload normalizes the extra field entries of a form,
// whether they arrive typed or as raw form maps with camelCase keys.
func toExtraFieldValuesPayload(value interface{}) []map[string]interface{} {
	switch entries := value.(type) {
	case []models.ExtraFieldValue:
		payload := make([]map[string]interface{}, 0, len(entries))
		for _, entry := range entries {
			payload = append(payload, map[string]interface{}{
				"extra_field_id": entry.ExtraFieldID,
				"value":          entry.Value,
			})
		}
		return payload
	case []interface{}:
		payload := make([]map[string]interface{}, 0, len(entries))
		for _, entry := range entries {
			fields, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			converted := make(map[string]interface{}, len(fields))
			for key, fieldValue := range fields {
				converted[toSnakeCase(key)] = fieldValue
			}
			payload = append(payload, converted)
		}
		return payload
	default:
		return []map[string]interface{}{}
	}
}

// toSnakeCase converts a camelCase identifier to snake_case. Consecutive
// upper case letters each get their own underscore, matching the key table
// the search URLs were built with.
func toSnakeCase(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)

	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
