package mongo

import (
	"context"
	"sort"

	"github.com/etalab/catalogue-api/config"
	"github.com/etalab/catalogue-api/filters"
	"github.com/etalab/catalogue-api/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetFiltersInfo assembles the reference data enumerating every selectable
// value per filter dimension. When organizationSiret is provided the result
// is scoped to that organization's catalogue: its datasets, its extra field
// definitions, and only that organization in the catalogue list.
func (m *Mongo) GetFiltersInfo(ctx context.Context, organizationSiret *string) (*filters.Info, error) {
	info := &filters.Info{
		GeographicalCoverage: []string{},
		Service:              []string{},
		TechnicalSource:      []string{},
	}

	if organizationSiret != nil {
		organization, err := m.GetOrganization(ctx, *organizationSiret)
		if err != nil {
			return nil, err
		}
		info.OrganizationSiret = []models.Organization{*organization}
	} else {
		organizations, err := m.GetOrganizations(ctx)
		if err != nil {
			return nil, err
		}
		info.OrganizationSiret = organizations
	}

	formats, err := m.GetDataFormats(ctx)
	if err != nil {
		return nil, err
	}
	info.FormatID = formats

	tags, err := m.GetTags(ctx)
	if err != nil {
		return nil, err
	}
	info.TagID = tags

	datasetsSelector := bson.M{}
	if organizationSiret != nil {
		datasetsSelector["catalog_record.organization._id"] = *organizationSiret
	}
	datasets := []*models.Dataset{}
	if _, err := m.Connection.Collection(m.ActualCollectionName(config.DatasetsCollection)).Find(ctx, datasetsSelector, &datasets); err != nil {
		return nil, err
	}

	info.GeographicalCoverage = collectDistinct(datasets, func(d *models.Dataset) *string { return &d.GeographicalCoverage })
	info.Service = collectDistinct(datasets, func(d *models.Dataset) *string { return &d.Service })
	info.TechnicalSource = collectDistinct(datasets, func(d *models.Dataset) *string { return d.TechnicalSource })

	info.License = []string{filters.AllLicenses}
	info.License = append(info.License, collectDistinct(datasets, func(d *models.Dataset) *string { return d.License })...)

	extraFields, err := m.getExtraFields(ctx, organizationSiret)
	if err != nil {
		return nil, err
	}
	info.ExtraFields = extraFields

	return info, nil
}

// getExtraFields lists the extra field definitions in scope: the single
// organization's when scoped, otherwise those of every catalogue.
func (m *Mongo) getExtraFields(ctx context.Context, organizationSiret *string) ([]models.ExtraField, error) {
	if organizationSiret != nil {
		catalog, err := m.GetCatalog(ctx, *organizationSiret)
		if err != nil {
			return nil, err
		}
		return catalog.ExtraFields, nil
	}

	catalogs := []*models.Catalog{}
	if _, err := m.Connection.Collection(m.ActualCollectionName(config.CatalogsCollection)).Find(ctx, bson.M{}, &catalogs); err != nil {
		return nil, err
	}

	extraFields := []models.ExtraField{}
	for _, catalog := range catalogs {
		extraFields = append(extraFields, catalog.ExtraFields...)
	}

	return extraFields, nil
}

// collectDistinct gathers the sorted distinct non-empty values of one
// dataset field.
func collectDistinct(datasets []*models.Dataset, field func(*models.Dataset) *string) []string {
	seen := map[string]struct{}{}
	for _, dataset := range datasets {
		value := field(dataset)
		if value == nil || *value == "" {
			continue
		}
		seen[*value] = struct{}{}
	}

	values := make([]string, 0, len(seen))
	for value := range seen {
		values = append(values, value)
	}
	sort.Strings(values)

	return values
}
