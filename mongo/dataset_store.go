package mongo

import (
	"context"
	"errors"
	"regexp"

	errs "github.com/etalab/catalogue-api/apierrors"
	"github.com/etalab/catalogue-api/config"
	"github.com/etalab/catalogue-api/filters"
	"github.com/etalab/catalogue-api/models"

	"github.com/ONSdigital/log.go/v2/log"
	mongodriver "github.com/ONSdigital/dp-mongodb/v3/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetDatasets retrieves the page of dataset documents matching the free text
// query and filter selection, sorted by creation time, newest first.
func (m *Mongo) GetDatasets(ctx context.Context, q string, value filters.Value, offset, limit int) ([]*models.Dataset, int, error) {
	selector := buildDatasetsSelector(q, value)

	results := []*models.Dataset{}
	totalCount, err := m.Connection.Collection(m.ActualCollectionName(config.DatasetsCollection)).
		Find(ctx, selector, &results,
			mongodriver.Sort(bson.M{"catalog_record.created_at": -1}),
			mongodriver.Offset(offset),
			mongodriver.Limit(limit))
	if err != nil {
		log.Error(ctx, "error counting datasets", err, log.Data{"selector": selector})
		return nil, 0, err
	}

	return results, totalCount, nil
}

// buildDatasetsSelector creates a select query for mongoDB from the filter
// selection. Only set dimensions contribute clauses; an entirely unset
// selection matches every dataset.
func buildDatasetsSelector(q string, value filters.Value) bson.M {
	selector := bson.M{}

	if value.OrganizationSiret != nil {
		selector["catalog_record.organization._id"] = *value.OrganizationSiret
	}
	if value.GeographicalCoverage != nil {
		selector["geographical_coverage"] = *value.GeographicalCoverage
	}
	if value.Service != nil {
		selector["service"] = *value.Service
	}
	if value.FormatID != nil {
		selector["formats._id"] = *value.FormatID
	}
	if value.TechnicalSource != nil {
		selector["technical_source"] = *value.TechnicalSource
	}
	if value.TagID != nil {
		selector["tags._id"] = *value.TagID
	}
	if value.License != nil && *value.License != filters.AllLicenses {
		selector["license"] = *value.License
	}

	if len(value.ExtraFieldValues) > 0 {
		clauses := make([]bson.M, 0, len(value.ExtraFieldValues))
		for _, extraFieldValue := range value.ExtraFieldValues {
			clauses = append(clauses, bson.M{
				"extra_field_values": bson.M{
					"$elemMatch": bson.M{
						"extra_field_id": extraFieldValue.ExtraFieldID,
						"value":          extraFieldValue.Value,
					},
				},
			})
		}
		selector["$and"] = clauses
	}

	if q != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
		selector["$or"] = []bson.M{
			{"title": pattern},
			{"description": pattern},
		}
	}

	return selector
}

// GetDataset retrieves a dataset document by its id
func (m *Mongo) GetDataset(ctx context.Context, id string) (*models.Dataset, error) {
	var dataset models.Dataset
	err := m.Connection.Collection(m.ActualCollectionName(config.DatasetsCollection)).FindOne(ctx, bson.M{"_id": id}, &dataset)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocumentFound) {
			return nil, errs.ErrDatasetNotFound
		}
		return nil, err
	}

	return &dataset, nil
}

// UpsertDataset adds or overrides an existing dataset document
func (m *Mongo) UpsertDataset(ctx context.Context, id string, dataset *models.Dataset) error {
	update := bson.M{"$set": dataset}

	_, err := m.Connection.Collection(m.ActualCollectionName(config.DatasetsCollection)).UpsertById(ctx, id, update)

	return err
}

// DeleteDataset removes a dataset document by its id
func (m *Mongo) DeleteDataset(ctx context.Context, id string) error {
	result, err := m.Connection.Collection(m.ActualCollectionName(config.DatasetsCollection)).DeleteById(ctx, id)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errs.ErrDatasetNotFound
	}

	return nil
}

// GetLicenses retrieves the distinct license values across the catalogue,
// with the "any license" sentinel first.
func (m *Mongo) GetLicenses(ctx context.Context) ([]string, error) {
	datasets := []*models.Dataset{}
	if _, err := m.Connection.Collection(m.ActualCollectionName(config.DatasetsCollection)).Find(ctx, bson.M{"license": bson.M{"$ne": nil}}, &datasets); err != nil {
		return nil, err
	}

	licenses := []string{filters.AllLicenses}
	licenses = append(licenses, collectDistinct(datasets, func(d *models.Dataset) *string { return d.License })...)

	return licenses, nil
}
