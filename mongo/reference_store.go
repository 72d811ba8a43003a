package mongo

import (
	"context"
	"errors"

	errs "github.com/etalab/catalogue-api/apierrors"
	"github.com/etalab/catalogue-api/config"
	"github.com/etalab/catalogue-api/models"

	mongodriver "github.com/ONSdigital/dp-mongodb/v3/mongodb"
	"go.mongodb.org/mongo-driver/bson"
)

// GetCatalog retrieves an organization's catalogue document, holding its
// extra field definitions.
func (m *Mongo) GetCatalog(ctx context.Context, organizationSiret string) (*models.Catalog, error) {
	var catalog models.Catalog
	err := m.Connection.Collection(m.ActualCollectionName(config.CatalogsCollection)).FindOne(ctx, bson.M{"_id": organizationSiret}, &catalog)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocumentFound) {
			return nil, errs.ErrCatalogNotFound
		}
		return nil, err
	}

	return &catalog, nil
}

// GetOrganization retrieves an organization document by SIRET
func (m *Mongo) GetOrganization(ctx context.Context, siret string) (*models.Organization, error) {
	var organization models.Organization
	err := m.Connection.Collection(m.ActualCollectionName(config.OrganizationsCollection)).FindOne(ctx, bson.M{"_id": siret}, &organization)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocumentFound) {
			return nil, errs.ErrOrganizationNotFound
		}
		return nil, err
	}

	return &organization, nil
}

// GetOrganizations retrieves all organization documents, sorted by name
func (m *Mongo) GetOrganizations(ctx context.Context) ([]models.Organization, error) {
	organizations := []models.Organization{}
	if _, err := m.Connection.Collection(m.ActualCollectionName(config.OrganizationsCollection)).Find(ctx, bson.M{}, &organizations, mongodriver.Sort(bson.M{"name": 1})); err != nil {
		return nil, err
	}

	return organizations, nil
}

// GetTags retrieves all tag documents, sorted by name
func (m *Mongo) GetTags(ctx context.Context) ([]models.Tag, error) {
	tags := []models.Tag{}
	if _, err := m.Connection.Collection(m.ActualCollectionName(config.TagsCollection)).Find(ctx, bson.M{}, &tags, mongodriver.Sort(bson.M{"name": 1})); err != nil {
		return nil, err
	}

	return tags, nil
}

// GetTagsByID resolves tag ids to tag documents. A missing id yields
// ErrTagNotFound so submissions referencing deleted tags are rejected.
func (m *Mongo) GetTagsByID(ctx context.Context, ids []string) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}

	tags := []models.Tag{}
	if _, err := m.Connection.Collection(m.ActualCollectionName(config.TagsCollection)).Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, &tags); err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, errs.ErrTagNotFound
	}

	return tags, nil
}

// GetDataFormats retrieves all data format documents, sorted by name
func (m *Mongo) GetDataFormats(ctx context.Context) ([]models.DataFormat, error) {
	formats := []models.DataFormat{}
	if _, err := m.Connection.Collection(m.ActualCollectionName(config.DataFormatsCollection)).Find(ctx, bson.M{}, &formats, mongodriver.Sort(bson.M{"name": 1})); err != nil {
		return nil, err
	}

	return formats, nil
}

// GetDataFormatsByID resolves format ids to data format documents.
func (m *Mongo) GetDataFormatsByID(ctx context.Context, ids []int) ([]models.DataFormat, error) {
	if len(ids) == 0 {
		return []models.DataFormat{}, nil
	}

	formats := []models.DataFormat{}
	if _, err := m.Connection.Collection(m.ActualCollectionName(config.DataFormatsCollection)).Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, &formats); err != nil {
		return nil, err
	}
	if len(formats) != len(ids) {
		return nil, errs.ErrDataFormatNotFound
	}

	return formats, nil
}

// GetAccountByToken retrieves the account holding the provided API token
func (m *Mongo) GetAccountByToken(ctx context.Context, token string) (*models.Account, error) {
	var account models.Account
	err := m.Connection.Collection(m.ActualCollectionName(config.AccountsCollection)).FindOne(ctx, bson.M{"api_token": token}, &account)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocumentFound) {
			return nil, errs.ErrUnauthorised
		}
		return nil, err
	}

	return &account, nil
}
