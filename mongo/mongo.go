package mongo

import (
	"context"

	"github.com/etalab/catalogue-api/config"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	mongohealth "github.com/ONSdigital/dp-mongodb/v3/health"
	mongodriver "github.com/ONSdigital/dp-mongodb/v3/mongodb"
)

// Mongo represents a simplistic MongoDB configuration.
type Mongo struct {
	config.MongoConfig

	Connection   *mongodriver.MongoConnection
	healthClient *mongohealth.CheckMongoClient
}

// Init opens the mongo connection and initialises the mongo health client.
func (m *Mongo) Init(ctx context.Context) (err error) {
	m.Connection, err = mongodriver.Open(&m.MongoDriverConfig)
	if err != nil {
		return err
	}

	databaseCollectionBuilder := map[mongohealth.Database][]mongohealth.Collection{
		(mongohealth.Database)(m.Database): {
			(mongohealth.Collection)(m.ActualCollectionName(config.DatasetsCollection)),
			(mongohealth.Collection)(m.ActualCollectionName(config.CatalogsCollection)),
			(mongohealth.Collection)(m.ActualCollectionName(config.OrganizationsCollection)),
			(mongohealth.Collection)(m.ActualCollectionName(config.TagsCollection)),
			(mongohealth.Collection)(m.ActualCollectionName(config.DataFormatsCollection)),
			(mongohealth.Collection)(m.ActualCollectionName(config.AccountsCollection)),
		},
	}

	m.healthClient = mongohealth.NewClientWithCollections(m.Connection, databaseCollectionBuilder)

	return nil
}

// Close represents mongo session closing within the context deadline
func (m *Mongo) Close(ctx context.Context) error {
	return m.Connection.Close(ctx)
}

// Checker is called by the healthcheck library to check the health state of this mongoDB instance
func (m *Mongo) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	return m.healthClient.Checker(ctx, state)
}
