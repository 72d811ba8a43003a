package store

import (
	"context"

	"github.com/etalab/catalogue-api/filters"
	"github.com/etalab/catalogue-api/models"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
)

// DataStore provides a Storer interface used to store, retrieve, remove or update catalogue resources
type DataStore struct {
	Backend Storer
}

//go:generate moq -out storetest/mongo.go -pkg storetest . MongoDB

// MongoDB represents the required methods to access data from mongoDB
type MongoDB interface {
	Storer
	Close(ctx context.Context) error
	Checker(ctx context.Context, state *healthcheck.CheckState) error
}

//go:generate moq -out storetest/datastore.go -pkg storetest . Storer

// Storer represents basic data access for the catalogue collections.
type Storer interface {
	GetDatasets(ctx context.Context, q string, value filters.Value, offset, limit int) ([]*models.Dataset, int, error)
	GetDataset(ctx context.Context, id string) (*models.Dataset, error)
	UpsertDataset(ctx context.Context, id string, dataset *models.Dataset) error
	DeleteDataset(ctx context.Context, id string) error
	GetFiltersInfo(ctx context.Context, organizationSiret *string) (*filters.Info, error)
	GetCatalog(ctx context.Context, organizationSiret string) (*models.Catalog, error)
	GetOrganization(ctx context.Context, siret string) (*models.Organization, error)
	GetOrganizations(ctx context.Context) ([]models.Organization, error)
	GetTags(ctx context.Context) ([]models.Tag, error)
	GetTagsByID(ctx context.Context, ids []string) ([]models.Tag, error)
	GetDataFormats(ctx context.Context) ([]models.DataFormat, error)
	GetDataFormatsByID(ctx context.Context, ids []int) ([]models.DataFormat, error)
	GetLicenses(ctx context.Context) ([]string, error)
	GetAccountByToken(ctx context.Context, token string) (*models.Account, error)
}
