package config

import (
	"os"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
)

func TestSpec(t *testing.T) {
	convey.Convey("Given an environment with no environment variables set", t, func() {
		os.Clearenv()
		cfg, err := Get()

		convey.Convey("When the config values are retrieved", func() {
			convey.Convey("Then there should be no error returned", func() {
				convey.So(err, convey.ShouldBeNil)
			})

			convey.Convey("The values should be set to the expected defaults", func() {
				convey.So(cfg.BindAddr, convey.ShouldEqual, ":24500")
				convey.So(cfg.CatalogueAPIURL, convey.ShouldEqual, "http://localhost:24500")
				convey.So(cfg.ServiceAuthToken, convey.ShouldEqual, "")
				convey.So(cfg.GracefulShutdownTimeout, convey.ShouldEqual, 5*time.Second)
				convey.So(cfg.HealthCheckInterval, convey.ShouldEqual, 30*time.Second)
				convey.So(cfg.HealthCheckCriticalTimeout, convey.ShouldEqual, 90*time.Second)
				convey.So(cfg.DefaultMaxPageSize, convey.ShouldEqual, 100)
				convey.So(cfg.DefaultPageSize, convey.ShouldEqual, 10)
				convey.So(cfg.MongoConfig.ClusterEndpoint, convey.ShouldEqual, "localhost:27017")
				convey.So(cfg.MongoConfig.Database, convey.ShouldEqual, "catalogue")
				convey.So(cfg.MongoConfig.Collections, convey.ShouldResemble, map[string]string{
					"DatasetsCollection":      "datasets",
					"CatalogsCollection":      "catalogs",
					"OrganizationsCollection": "organizations",
					"TagsCollection":          "tags",
					"DataFormatsCollection":   "dataformats",
					"AccountsCollection":      "accounts",
				})
				convey.So(cfg.MongoConfig.Username, convey.ShouldEqual, "")
				convey.So(cfg.MongoConfig.Password, convey.ShouldEqual, "")
				convey.So(cfg.MongoConfig.IsSSL, convey.ShouldEqual, false)
				convey.So(cfg.MongoConfig.QueryTimeout, convey.ShouldEqual, 15*time.Second)
				convey.So(cfg.MongoConfig.ConnectTimeout, convey.ShouldEqual, 5*time.Second)
				convey.So(cfg.MongoConfig.IsStrongReadConcernEnabled, convey.ShouldEqual, false)
				convey.So(cfg.MongoConfig.IsWriteConcernMajorityEnabled, convey.ShouldEqual, true)
			})
		})
	})
}
