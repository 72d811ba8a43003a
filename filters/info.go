package filters

import (
	"encoding/json"
	"fmt"

	"github.com/etalab/catalogue-api/models"
)

// Info is the reference data enumerating every possible value for each
// filterable dimension, optionally scoped to one organization's catalog.
// The JSON shape is the one served by GET /datasets/filters.
type Info struct {
	OrganizationSiret    []models.Organization `json:"organization_siret"`
	GeographicalCoverage []string              `json:"geographical_coverage"`
	Service              []string              `json:"service"`
	FormatID             []models.DataFormat   `json:"format_id"`
	TechnicalSource      []string              `json:"technical_source"`
	TagID                []models.Tag          `json:"tag_id"`
	License              []string              `json:"license"`
	ExtraFields          []models.ExtraField   `json:"extra_fields"`
}

// ParseInfo reads the filters reference data from its wire form, checking
// that every dimension key is present before use. Extra field entries decode
// through the variant-aware models.ExtraField unmarshaller, which maps BOOL
// data onto its typed payload.
func ParseInfo(b []byte) (*Info, error) {
	var present map[string]json.RawMessage
	if err := json.Unmarshal(b, &present); err != nil {
		return nil, fmt.Errorf("invalid filters info payload: %w", err)
	}

	requiredKeys := []string{
		ParamOrganizationSiret,
		ParamGeographicalCoverage,
		ParamService,
		ParamFormatID,
		ParamTechnicalSource,
		ParamTagID,
		ParamLicense,
		"extra_fields",
	}
	for _, key := range requiredKeys {
		if _, ok := present[key]; !ok {
			return nil, fmt.Errorf("filters info payload is missing key %q", key)
		}
	}

	var info Info
	if err := json.Unmarshal(b, &info); err != nil {
		return nil, fmt.Errorf("invalid filters info payload: %w", err)
	}

	return &info, nil
}

// Option is a single selectable (label, value) pair for populating a filter
// control. The value type follows the dimension: format ids are integers,
// everything else is a string.
type Option[T any] struct {
	Label string `json:"label"`
	Value T      `json:"value"`
}

// Options lists the selectable options of every filter dimension.
type Options struct {
	OrganizationSiret    []Option[string] `json:"organization_siret"`
	GeographicalCoverage []Option[string] `json:"geographical_coverage"`
	Service              []Option[string] `json:"service"`
	FormatID             []Option[int]    `json:"format_id"`
	TechnicalSource      []Option[string] `json:"technical_source"`
	TagID                []Option[string] `json:"tag_id"`
	License              []Option[string] `json:"license"`
}

// ToOptions maps the reference data to per-dimension option lists. The
// license sentinel "*" is relabelled "Toutes les licences" while its value
// is preserved untouched.
func ToOptions(info *Info) Options {
	options := Options{}

	for _, organization := range info.OrganizationSiret {
		options.OrganizationSiret = append(options.OrganizationSiret, Option[string]{Label: organization.Name, Value: organization.Siret})
	}
	for _, coverage := range info.GeographicalCoverage {
		options.GeographicalCoverage = append(options.GeographicalCoverage, Option[string]{Label: coverage, Value: coverage})
	}
	for _, service := range info.Service {
		options.Service = append(options.Service, Option[string]{Label: service, Value: service})
	}
	for _, format := range info.FormatID {
		options.FormatID = append(options.FormatID, Option[int]{Label: format.Name, Value: format.ID})
	}
	for _, source := range info.TechnicalSource {
		options.TechnicalSource = append(options.TechnicalSource, Option[string]{Label: source, Value: source})
	}
	for _, tag := range info.TagID {
		options.TagID = append(options.TagID, Option[string]{Label: tag.Name, Value: tag.ID})
	}
	for _, license := range info.License {
		label := license
		if license == AllLicenses {
			label = "Toutes les licences"
		}
		options.License = append(options.License, Option[string]{Label: label, Value: license})
	}

	return options
}
