package filters

// Display labels for the filter chips. These match the search page copy
// exactly; changing one changes what users see on every chip.
const (
	LabelOrganizationSiret    = "Catalogue"
	LabelGeographicalCoverage = "Couverture géographique"
	LabelService              = "Service Producteur de la donnée"
	LabelFormatID             = "Format de mise à disposition"
	LabelTechnicalSource      = "Système d'information source"
	LabelTagID                = "Mot-clé"
	LabelLicense              = "Licence"
)

// ActiveFilter is one resolvable filter selection, rendered as a removable
// chip with a dimension label and a display value.
type ActiveFilter struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ActiveExtraFilter is an active selection on an organization defined extra
// field, carrying the field id so the chip can clear the right entry.
type ActiveExtraFilter struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ActiveMap is the display-only projection of the current selection. A
// dimension appears here if and only if it is set in the selection and, for
// lookup dimensions, a matching reference entry still exists.
type ActiveMap struct {
	OrganizationSiret    *ActiveFilter       `json:"organization_siret,omitempty"`
	GeographicalCoverage *ActiveFilter       `json:"geographical_coverage,omitempty"`
	Service              *ActiveFilter       `json:"service,omitempty"`
	FormatID             *ActiveFilter       `json:"format_id,omitempty"`
	TechnicalSource      *ActiveFilter       `json:"technical_source,omitempty"`
	TagID                *ActiveFilter       `json:"tag_id,omitempty"`
	License              *ActiveFilter       `json:"license,omitempty"`
	ExtraFieldValues     []ActiveExtraFilter `json:"extra_field_values,omitempty"`
}

// BuildActiveMap derives the filter chips for the given selection. Lookup
// dimensions (organization, format, tag, extra fields) resolve their display
// name against the reference data; a selection whose reference entry no
// longer exists is dropped silently, as if unset. Free text dimensions emit
// their raw value.
func BuildActiveMap(info *Info, value Value) ActiveMap {
	active := ActiveMap{}

	if value.OrganizationSiret != nil {
		for _, organization := range info.OrganizationSiret {
			if organization.Siret == *value.OrganizationSiret {
				active.OrganizationSiret = &ActiveFilter{Key: LabelOrganizationSiret, Value: organization.Name}
				break
			}
		}
	}

	if value.GeographicalCoverage != nil && *value.GeographicalCoverage != "" {
		active.GeographicalCoverage = &ActiveFilter{Key: LabelGeographicalCoverage, Value: *value.GeographicalCoverage}
	}

	if value.Service != nil && *value.Service != "" {
		active.Service = &ActiveFilter{Key: LabelService, Value: *value.Service}
	}

	if value.FormatID != nil {
		for _, format := range info.FormatID {
			if format.ID == *value.FormatID {
				active.FormatID = &ActiveFilter{Key: LabelFormatID, Value: format.Name}
				break
			}
		}
	}

	if value.TechnicalSource != nil && *value.TechnicalSource != "" {
		active.TechnicalSource = &ActiveFilter{Key: LabelTechnicalSource, Value: *value.TechnicalSource}
	}

	if value.TagID != nil {
		for _, tag := range info.TagID {
			if tag.ID == *value.TagID {
				active.TagID = &ActiveFilter{Key: LabelTagID, Value: tag.Name}
				break
			}
		}
	}

	if value.License != nil && *value.License != "" {
		active.License = &ActiveFilter{Key: LabelLicense, Value: *value.License}
	}

	for _, extraFieldValue := range value.ExtraFieldValues {
		for _, extraField := range info.ExtraFields {
			if extraField.ID == extraFieldValue.ExtraFieldID {
				active.ExtraFieldValues = append(active.ExtraFieldValues, ActiveExtraFilter{
					ID:    extraField.ID,
					Key:   extraField.Title,
					Value: extraFieldValue.Value,
				})
				break
			}
		}
	}

	return active
}

// ActiveCount counts the filled dimensions of an active map. The extra field
// list contributes its length rather than one.
func ActiveCount(active ActiveMap) int {
	count := len(active.ExtraFieldValues)

	for _, filter := range []*ActiveFilter{
		active.OrganizationSiret,
		active.GeographicalCoverage,
		active.Service,
		active.FormatID,
		active.TechnicalSource,
		active.TagID,
		active.License,
	} {
		if filter != nil {
			count++
		}
	}

	return count
}
