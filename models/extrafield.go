package models

import (
	"encoding/json"
	"fmt"
)

// ExtraFieldType is the discriminator tag for the extra field variants.
type ExtraFieldType string

// Valid extra field types
const (
	TextExtraField ExtraFieldType = "TEXT"
	BoolExtraField ExtraFieldType = "BOOL"
	EnumExtraField ExtraFieldType = "ENUM"
)

// BoolFieldData holds the display strings for a BOOL extra field.
type BoolFieldData struct {
	TrueValue  string `bson:"true_value"  json:"true_value"`
	FalseValue string `bson:"false_value" json:"false_value"`
}

// EnumFieldData holds the ordered list of allowed values for an ENUM extra field.
type EnumFieldData struct {
	Values []string `bson:"values" json:"values"`
}

// ExtraField represents an organization specific metadata field definition.
// The Type tag determines which data payload is populated: TEXT carries no
// data, BOOL carries Bool, ENUM carries Enum.
type ExtraField struct {
	ID       string         `bson:"_id"       json:"id"`
	Name     string         `bson:"name"      json:"name"`
	Title    string         `bson:"title"     json:"title"`
	HintText string         `bson:"hint_text" json:"hint_text"`
	Type     ExtraFieldType `bson:"type"      json:"type"`
	Bool     *BoolFieldData `bson:"bool_data,omitempty" json:"-"`
	Enum     *EnumFieldData `bson:"enum_data,omitempty" json:"-"`
}

// extraFieldEnvelope is the wire shape of an extra field, with the variant
// payload held under a single polymorphic "data" key.
type extraFieldEnvelope struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Title    string          `json:"title"`
	HintText string          `json:"hint_text"`
	Type     ExtraFieldType  `json:"type"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// UnmarshalJSON reads the wire shape, decoding the data payload according to
// the type tag. An unknown type tag is kept as-is with no payload so that
// new variants degrade rather than fail.
func (f *ExtraField) UnmarshalJSON(b []byte) error {
	var envelope extraFieldEnvelope
	if err := json.Unmarshal(b, &envelope); err != nil {
		return err
	}

	f.ID = envelope.ID
	f.Name = envelope.Name
	f.Title = envelope.Title
	f.HintText = envelope.HintText
	f.Type = envelope.Type
	f.Bool = nil
	f.Enum = nil

	if len(envelope.Data) == 0 {
		return nil
	}

	switch envelope.Type {
	case BoolExtraField:
		f.Bool = &BoolFieldData{}
		if err := json.Unmarshal(envelope.Data, f.Bool); err != nil {
			return fmt.Errorf("invalid BOOL extra field data: %w", err)
		}
	case EnumExtraField:
		f.Enum = &EnumFieldData{}
		if err := json.Unmarshal(envelope.Data, f.Enum); err != nil {
			return fmt.Errorf("invalid ENUM extra field data: %w", err)
		}
	}

	return nil
}

// MarshalJSON writes the wire shape. TEXT fields and unknown variants emit an
// empty data object, matching what the reference lists serve.
func (f ExtraField) MarshalJSON() ([]byte, error) {
	envelope := extraFieldEnvelope{
		ID:       f.ID,
		Name:     f.Name,
		Title:    f.Title,
		HintText: f.HintText,
		Type:     f.Type,
	}

	var payload interface{} = struct{}{}
	switch {
	case f.Type == BoolExtraField && f.Bool != nil:
		payload = f.Bool
	case f.Type == EnumExtraField && f.Enum != nil:
		payload = f.Enum
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	envelope.Data = data

	return json.Marshal(envelope)
}

// ExtraFieldValue pairs an extra field definition with the value a dataset
// holds for it. At most one value per extra field id is expected, although
// this is not enforced here.
type ExtraFieldValue struct {
	ExtraFieldID string `bson:"extra_field_id" json:"extra_field_id"`
	Value        string `bson:"value"          json:"value"`
}

// Catalog holds the extra field definitions belonging to one organization.
type Catalog struct {
	OrganizationSiret string       `bson:"_id"          json:"organization_siret"`
	ExtraFields       []ExtraField `bson:"extra_fields" json:"extra_fields"`
}
