package service_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/etalab/catalogue-api/config"
	"github.com/etalab/catalogue-api/service"
	serviceMock "github.com/etalab/catalogue-api/service/mock"
	"github.com/etalab/catalogue-api/store"
	storeMock "github.com/etalab/catalogue-api/store/storetest"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

var (
	ctx           = context.Background()
	testBuildTime = "BuildTime"
	testGitCommit = "GitCommit"
	testVersion   = "Version"
)

var (
	errMongo       = errors.New("MongoDB error")
	errServer      = errors.New("HTTP Server error")
	errHealthcheck = errors.New("healthCheck error")
	errAddCheck    = errors.New("healthcheck add check error")
)

var funcDoGetHealthcheckErr = func(*config.Configuration, string, string, string) (service.HealthChecker, error) {
	return nil, errHealthcheck
}

var funcDoGetMongoDBErr = func(context.Context, *config.Configuration) (store.MongoDB, error) {
	return nil, errMongo
}

func TestRun(t *testing.T) {
	Convey("Having a set of mocked dependencies", t, func() {
		cfg, err := config.Get()
		So(err, ShouldBeNil)

		hcMock := &serviceMock.HealthCheckerMock{
			AddCheckFunc: func(string, healthcheck.Checker) error { return nil },
			StartFunc:    func(context.Context) {},
		}

		serverWg := &sync.WaitGroup{}
		serverMock := &serviceMock.HTTPServerMock{
			ListenAndServeFunc: func() error {
				serverWg.Done()
				return nil
			},
		}

		failingServerMock := &serviceMock.HTTPServerMock{
			ListenAndServeFunc: func() error {
				serverWg.Done()
				return errServer
			},
		}

		funcDoGetHealthcheckOk := func(*config.Configuration, string, string, string) (service.HealthChecker, error) {
			return hcMock, nil
		}

		funcDoGetHTTPServer := func(string, http.Handler) service.HTTPServer {
			return serverMock
		}

		funcDoGetFailingHTTPServer := func(string, http.Handler) service.HTTPServer {
			return failingServerMock
		}

		funcDoGetMongoDBOk := func(context.Context, *config.Configuration) (store.MongoDB, error) {
			return &storeMock.MongoDBMock{}, nil
		}

		Convey("Given that initialising MongoDB returns an error", func() {
			initMock := &serviceMock.InitialiserMock{
				DoGetMongoDBFunc: funcDoGetMongoDBErr,
			}
			svcErrors := make(chan error, 1)
			svcList := service.NewServiceList(initMock)
			_, err := service.Run(ctx, cfg, svcList, testBuildTime, testGitCommit, testVersion, svcErrors)

			Convey("Then service Run fails with the same error and the flag is not set. No further initialisations are attempted", func() {
				So(err, ShouldResemble, errMongo)
				So(svcList.MongoDB, ShouldBeFalse)
				So(svcList.HealthCheck, ShouldBeFalse)
			})
		})

		Convey("Given that initialising healthcheck returns an error", func() {
			initMock := &serviceMock.InitialiserMock{
				DoGetMongoDBFunc:     funcDoGetMongoDBOk,
				DoGetHealthCheckFunc: funcDoGetHealthcheckErr,
			}
			svcErrors := make(chan error, 1)
			svcList := service.NewServiceList(initMock)
			_, err := service.Run(ctx, cfg, svcList, testBuildTime, testGitCommit, testVersion, svcErrors)

			Convey("Then service Run fails with the same error and the flag is not set", func() {
				So(err, ShouldResemble, errHealthcheck)
				So(svcList.MongoDB, ShouldBeTrue)
				So(svcList.HealthCheck, ShouldBeFalse)
			})
		})

		Convey("Given that registering the mongo checker fails", func() {
			failingHcMock := &serviceMock.HealthCheckerMock{
				AddCheckFunc: func(string, healthcheck.Checker) error { return errAddCheck },
			}
			initMock := &serviceMock.InitialiserMock{
				DoGetMongoDBFunc: funcDoGetMongoDBOk,
				DoGetHealthCheckFunc: func(*config.Configuration, string, string, string) (service.HealthChecker, error) {
					return failingHcMock, nil
				},
			}
			svcErrors := make(chan error, 1)
			svcList := service.NewServiceList(initMock)
			_, err := service.Run(ctx, cfg, svcList, testBuildTime, testGitCommit, testVersion, svcErrors)

			Convey("Then service Run fails, but the mongo flag is already set", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "unable to register checkers")
				So(svcList.MongoDB, ShouldBeTrue)
				So(svcList.HealthCheck, ShouldBeTrue)
				So(failingHcMock.AddCheckCalls(), ShouldHaveLength, 1)
				So(failingHcMock.AddCheckCalls()[0].Name, ShouldEqual, "Mongo DB")
			})
		})

		Convey("Given that all dependencies are successfully initialised", func() {
			initMock := &serviceMock.InitialiserMock{
				DoGetMongoDBFunc:     funcDoGetMongoDBOk,
				DoGetHealthCheckFunc: funcDoGetHealthcheckOk,
				DoGetHTTPServerFunc:  funcDoGetHTTPServer,
			}
			svcErrors := make(chan error, 1)
			svcList := service.NewServiceList(initMock)
			serverWg.Add(1)
			svc, err := service.Run(ctx, cfg, svcList, testBuildTime, testGitCommit, testVersion, svcErrors)

			Convey("Then service Run succeeds and all the flags are set", func() {
				So(err, ShouldBeNil)
				So(svc, ShouldNotBeNil)
				So(svcList.MongoDB, ShouldBeTrue)
				So(svcList.HealthCheck, ShouldBeTrue)
			})

			Convey("The checkers are registered and the healthcheck and http server started", func() {
				So(hcMock.AddCheckCalls(), ShouldHaveLength, 1)
				So(hcMock.AddCheckCalls()[0].Name, ShouldEqual, "Mongo DB")
				So(hcMock.StartCalls(), ShouldHaveLength, 1)
				serverWg.Wait() // Wait for HTTP server go-routine to finish
				So(serverMock.ListenAndServeCalls(), ShouldHaveLength, 1)
			})
		})

		Convey("Given that the http server fails", func() {
			initMock := &serviceMock.InitialiserMock{
				DoGetMongoDBFunc:     funcDoGetMongoDBOk,
				DoGetHealthCheckFunc: funcDoGetHealthcheckOk,
				DoGetHTTPServerFunc:  funcDoGetFailingHTTPServer,
			}
			svcErrors := make(chan error, 1)
			svcList := service.NewServiceList(initMock)
			serverWg.Add(1)
			_, err := service.Run(ctx, cfg, svcList, testBuildTime, testGitCommit, testVersion, svcErrors)

			Convey("Then the error is reported to the service error channel", func() {
				So(err, ShouldBeNil)
				sErr := <-svcErrors
				So(sErr.Error(), ShouldContainSubstring, errServer.Error())
				So(failingServerMock.ListenAndServeCalls(), ShouldHaveLength, 1)
			})
		})
	})
}

func TestClose(t *testing.T) {
	Convey("Having a correctly initialised service", t, func() {
		cfg, err := config.Get()
		So(err, ShouldBeNil)

		hcStopped := false

		hcMock := &serviceMock.HealthCheckerMock{
			AddCheckFunc: func(string, healthcheck.Checker) error { return nil },
			StartFunc:    func(context.Context) {},
			StopFunc:     func() { hcStopped = true },
		}

		// server Shutdown will fail if healthcheck is not stopped before
		serverMock := &serviceMock.HTTPServerMock{
			ListenAndServeFunc: func() error { return nil },
			ShutdownFunc: func(ctx context.Context) error {
				if !hcStopped {
					return errors.New("server stopped before healthcheck")
				}
				return nil
			},
		}

		mongoMock := &storeMock.MongoDBMock{
			CheckerFunc: func(context.Context, *healthcheck.CheckState) error { return nil },
			CloseFunc:   func(context.Context) error { return nil },
		}

		initMock := &serviceMock.InitialiserMock{
			DoGetMongoDBFunc: func(context.Context, *config.Configuration) (store.MongoDB, error) {
				return mongoMock, nil
			},
			DoGetHealthCheckFunc: func(*config.Configuration, string, string, string) (service.HealthChecker, error) {
				return hcMock, nil
			},
			DoGetHTTPServerFunc: func(string, http.Handler) service.HTTPServer {
				return serverMock
			},
		}

		svcErrors := make(chan error, 1)
		svcList := service.NewServiceList(initMock)
		svc, err := service.Run(ctx, cfg, svcList, testBuildTime, testGitCommit, testVersion, svcErrors)
		So(err, ShouldBeNil)

		Convey("Closing the service results in all the dependencies being stopped in the expected order", func() {
			err := svc.Close(context.Background())
			So(err, ShouldBeNil)
			So(hcMock.StopCalls(), ShouldHaveLength, 1)
			So(serverMock.ShutdownCalls(), ShouldHaveLength, 1)
			So(mongoMock.CloseCalls(), ShouldHaveLength, 1)
		})

		Convey("If a dependency fails to stop, Close returns an error but the remaining dependencies are still stopped", func() {
			serverMock.ShutdownFunc = func(ctx context.Context) error {
				return errServer
			}

			err := svc.Close(context.Background())
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "failed to shutdown gracefully")
			So(hcMock.StopCalls(), ShouldHaveLength, 1)
			So(serverMock.ShutdownCalls(), ShouldHaveLength, 1)
			So(mongoMock.CloseCalls(), ShouldHaveLength, 1)
		})

		Convey("If the server takes longer to shutdown than the graceful timeout, Close times out", func() {
			cfg.GracefulShutdownTimeout = 50 * time.Millisecond
			serverMock.ShutdownFunc = func(shutdownCtx context.Context) error {
				<-shutdownCtx.Done()
				return shutdownCtx.Err()
			}

			err := svc.Close(context.Background())
			So(err, ShouldResemble, context.DeadlineExceeded)
		})
	})
}
