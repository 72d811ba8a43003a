package config

import (
	"encoding/json"
	"time"

	"github.com/kelseyhightower/envconfig"

	mongodriver "github.com/ONSdigital/dp-mongodb/v3/mongodb"
)

// MongoConfig holds the mongodb driver configuration
type MongoConfig struct {
	mongodriver.MongoDriverConfig
}

// Configuration structure which holds information for configuring the catalogue API
type Configuration struct {
	BindAddr                   string        `envconfig:"BIND_ADDR"`
	CatalogueAPIURL            string        `envconfig:"CATALOGUE_API_URL"`
	ServiceAuthToken           string        `envconfig:"SERVICE_AUTH_TOKEN"       json:"-"`
	GracefulShutdownTimeout    time.Duration `envconfig:"GRACEFUL_SHUTDOWN_TIMEOUT"`
	HealthCheckInterval        time.Duration `envconfig:"HEALTHCHECK_INTERVAL"`
	HealthCheckCriticalTimeout time.Duration `envconfig:"HEALTHCHECK_CRITICAL_TIMEOUT"`
	DefaultMaxPageSize         int           `envconfig:"DEFAULT_MAXIMUM_PAGE_SIZE"`
	DefaultPageSize            int           `envconfig:"DEFAULT_PAGE_SIZE"`
	MongoConfig
}

var cfg *Configuration

// Collection names used by the catalogue API
const (
	DatasetsCollection      = "DatasetsCollection"
	CatalogsCollection      = "CatalogsCollection"
	OrganizationsCollection = "OrganizationsCollection"
	TagsCollection          = "TagsCollection"
	DataFormatsCollection   = "DataFormatsCollection"
	AccountsCollection      = "AccountsCollection"
)

// Get the application and returns the configuration structure, and initialises with default values.
func Get() (*Configuration, error) {
	if cfg != nil {
		return cfg, nil
	}

	cfg = &Configuration{
		BindAddr:                   ":24500",
		CatalogueAPIURL:            "http://localhost:24500",
		ServiceAuthToken:           "",
		GracefulShutdownTimeout:    5 * time.Second,
		HealthCheckInterval:        30 * time.Second,
		HealthCheckCriticalTimeout: 90 * time.Second,
		DefaultMaxPageSize:         100,
		DefaultPageSize:            10,
		MongoConfig: MongoConfig{
			MongoDriverConfig: mongodriver.MongoDriverConfig{
				ClusterEndpoint: "localhost:27017",
				Username:        "",
				Password:        "",
				Database:        "catalogue",
				Collections: map[string]string{
					DatasetsCollection:      "datasets",
					CatalogsCollection:      "catalogs",
					OrganizationsCollection: "organizations",
					TagsCollection:          "tags",
					DataFormatsCollection:   "dataformats",
					AccountsCollection:      "accounts",
				},
				ReplicaSet:                    "",
				IsStrongReadConcernEnabled:    false,
				IsWriteConcernMajorityEnabled: true,
				ConnectTimeout:                5 * time.Second,
				QueryTimeout:                  15 * time.Second,
				TLSConnectionConfig: mongodriver.TLSConnectionConfig{
					IsSSL: false,
				},
			},
		},
	}

	return cfg, envconfig.Process("", cfg)
}

// String is implemented to prevent sensitive fields being logged.
// The config is returned as JSON with sensitive fields omitted.
func (config Configuration) String() string {
	b, _ := json.Marshal(config)
	return string(b)
}
