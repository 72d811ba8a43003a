// Package filters implements the dataset search filters: the bidirectional
// mapping between the structured filter selection and URL query parameters,
// the reference data listing every selectable option, and the projection of
// the current selection into removable filter chips.
package filters

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/etalab/catalogue-api/models"
)

// Query string keys for each filter dimension. These are stable: renaming
// one breaks every bookmarked search URL.
const (
	ParamOrganizationSiret    = "organization_siret"
	ParamGeographicalCoverage = "geographical_coverage"
	ParamService              = "service"
	ParamFormatID             = "format_id"
	ParamTechnicalSource      = "technical_source"
	ParamTagID                = "tag_id"
	ParamLicense              = "license"
	ParamExtraFieldValues     = "extra_field_values"
)

// AllLicenses is the sentinel license value meaning "any license". It is
// carried through every transform as a plain value, never encoded specially.
const AllLicenses = "*"

// Value is the user's current filter selection: one optional scalar per
// dimension plus an optional list of extra field values. A nil pointer means
// the dimension is unset.
type Value struct {
	OrganizationSiret    *string
	GeographicalCoverage *string
	Service              *string
	FormatID             *int
	TechnicalSource      *string
	TagID                *string
	License              *string
	ExtraFieldValues     []models.ExtraFieldValue
}

// Param is a single (key, value) query string pair. A nil Value marks an
// unset dimension; such pairs contribute no token to the query string.
type Param struct {
	Key   string
	Value *string
}

// ToParams maps a filter selection to an ordered list of query parameters,
// one pair per dimension. Unset dimensions are emitted with a nil value so
// the output always lists every key; Query drops them.
func ToParams(value Value) []Param {
	var formatID *string
	if value.FormatID != nil {
		s := strconv.Itoa(*value.FormatID)
		formatID = &s
	}

	var extraFieldValues *string
	if value.ExtraFieldValues != nil {
		// Serialization of []ExtraFieldValue cannot fail.
		b, _ := json.Marshal(value.ExtraFieldValues)
		s := string(b)
		extraFieldValues = &s
	}

	return []Param{
		{ParamOrganizationSiret, value.OrganizationSiret},
		{ParamGeographicalCoverage, value.GeographicalCoverage},
		{ParamService, value.Service},
		{ParamFormatID, formatID},
		{ParamTechnicalSource, value.TechnicalSource},
		{ParamTagID, value.TagID},
		{ParamLicense, value.License},
		{ParamExtraFieldValues, extraFieldValues},
	}
}

// Query builds url.Values from a parameter list, dropping unset pairs.
func Query(params []Param) url.Values {
	query := url.Values{}
	for _, param := range params {
		if param.Value != nil {
			query.Set(param.Key, *param.Value)
		}
	}
	return query
}

// ParseValue is the inverse of ToParams: it reads a filter selection back
// out of query parameters. Unknown keys are ignored. An unparseable
// format_id or extra_field_values degrades to unset rather than erroring,
// so a mangled URL never breaks the search page.
func ParseValue(query url.Values) Value {
	value := Value{
		OrganizationSiret:    getParam(query, ParamOrganizationSiret),
		GeographicalCoverage: getParam(query, ParamGeographicalCoverage),
		Service:              getParam(query, ParamService),
		TechnicalSource:      getParam(query, ParamTechnicalSource),
		TagID:                getParam(query, ParamTagID),
		License:              getParam(query, ParamLicense),
	}

	if raw := getParam(query, ParamFormatID); raw != nil {
		if id, err := strconv.Atoi(*raw); err == nil {
			value.FormatID = &id
		}
	}

	if raw := getParam(query, ParamExtraFieldValues); raw != nil {
		var extraFieldValues []models.ExtraFieldValue
		if err := json.Unmarshal([]byte(*raw), &extraFieldValues); err == nil {
			value.ExtraFieldValues = extraFieldValues
		}
	}

	return value
}

func getParam(query url.Values, key string) *string {
	if !query.Has(key) {
		return nil
	}
	value := query.Get(key)
	return &value
}
