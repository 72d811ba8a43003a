package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	errs "github.com/etalab/catalogue-api/apierrors"
	"github.com/etalab/catalogue-api/config"
	"github.com/etalab/catalogue-api/filters"
	"github.com/etalab/catalogue-api/models"
	"github.com/etalab/catalogue-api/store"
	storetest "github.com/etalab/catalogue-api/store/storetest"

	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	host       = "http://localhost:24500"
	adminToken = "admin-token"
	userToken  = "user-token"
	userSiret  = "11004601800013"
	otherSiret = "88888888800011"
)

var testOrganization = models.Organization{Siret: userSiret, Name: "DINUM"}

func testAccounts() map[string]*models.Account {
	return map[string]*models.Account{
		adminToken: {Email: "admin@example.gouv.fr", Role: models.AdminRole},
		userToken:  {Email: "user@example.gouv.fr", Role: models.UserRole, OrganizationSiret: userSiret},
	}
}

// withAccounts sets a GetAccountByToken func resolving the test tokens
func withAccounts(mockedDataStore *storetest.StorerMock) *storetest.StorerMock {
	accounts := testAccounts()
	mockedDataStore.GetAccountByTokenFunc = func(ctx context.Context, token string) (*models.Account, error) {
		if account, ok := accounts[token]; ok {
			return account, nil
		}
		return nil, errs.ErrUnauthorised
	}
	return mockedDataStore
}

// getAPIWithMockedDatastore also used in other tests, so exported
func getAPIWithMockedDatastore(mockedDataStore store.Storer) *CatalogueAPI {
	cfg, err := config.Get()
	So(err, ShouldBeNil)
	cfg.CatalogueAPIURL = host

	return Setup(context.Background(), cfg, mux.NewRouter(), store.DataStore{Backend: mockedDataStore})
}

func createRequestWithAuth(method, target string, body *bytes.Buffer) *http.Request {
	var r *http.Request
	if body == nil {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, body)
	}
	r.Header.Set("Authorization", "Bearer "+userToken)
	return r
}

func createAdminRequest(method, target string, body *bytes.Buffer) *http.Request {
	r := createRequestWithAuth(method, target, body)
	r.Header.Set("Authorization", "Bearer "+adminToken)
	return r
}

func testDataset() *models.Dataset {
	return &models.Dataset{
		ID: "dataset-1",
		CatalogRecord: models.CatalogRecord{
			Organization: testOrganization,
		},
		Title:                  "Marchés publics conclus",
		Description:            "Liste des marchés publics conclus",
		Service:                "Service des achats",
		GeographicalCoverage:   "france",
		Formats:                []models.DataFormat{{ID: 1, Name: "CSV"}},
		ContactEmails:          []string{"contact@example.gouv.fr"},
		Tags:                   []models.Tag{},
		ExtraFieldValues:       []models.ExtraFieldValue{},
		PublicationRestriction: models.NoRestriction,
	}
}

func submissionBody() *bytes.Buffer {
	submission := models.DatasetSubmission{
		OrganizationSiret:    userSiret,
		Title:                "Marchés publics conclus",
		Description:          "Liste des marchés publics conclus",
		Service:              "Service des achats",
		GeographicalCoverage: "france",
		FormatIDs:            []int{1},
		TagIDs:               []string{},
		ContactEmails:        []string{"contact@example.gouv.fr"},
	}
	b, err := json.Marshal(submission)
	So(err, ShouldBeNil)
	return bytes.NewBuffer(b)
}

func TestGetDatasetsReturnsOK(t *testing.T) {
	t.Parallel()
	Convey("A successful request to get datasets returns a 200 OK response with a page envelope", t, func() {
		r := createRequestWithAuth("GET", host+"/datasets", nil)
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetDatasetsFunc: func(ctx context.Context, q string, value filters.Value, offset, limit int) ([]*models.Dataset, int, error) {
				return []*models.Dataset{testDataset()}, 1, nil
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(len(mockedDataStore.GetDatasetsCalls()), ShouldEqual, 1)
		So(w.Body.String(), ShouldContainSubstring, `"total_count":1`)
		So(w.Body.String(), ShouldContainSubstring, `"page_number":1`)
	})
}

func TestGetDatasetsPassesQueryAndFiltersToDatastore(t *testing.T) {
	t.Parallel()
	Convey("Filter and free text parameters are parsed and passed to the datastore", t, func() {
		r := createRequestWithAuth("GET", host+"/datasets?q=marches&service=Achats&format_id=2&page_number=3&page_size=5", nil)
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetDatasetsFunc: func(ctx context.Context, q string, value filters.Value, offset, limit int) ([]*models.Dataset, int, error) {
				return []*models.Dataset{}, 0, nil
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusOK)
		calls := mockedDataStore.GetDatasetsCalls()
		So(len(calls), ShouldEqual, 1)
		So(calls[0].Q, ShouldEqual, "marches")
		So(*calls[0].Value.Service, ShouldEqual, "Achats")
		So(*calls[0].Value.FormatID, ShouldEqual, 2)
		So(calls[0].Value.TagID, ShouldBeNil)
		So(calls[0].Offset, ShouldEqual, 10)
		So(calls[0].Limit, ShouldEqual, 5)
	})
}

func TestGetDatasetsReturnsUnauthorised(t *testing.T) {
	t.Parallel()
	Convey("A request without an authorization header is rejected with 401", t, func() {
		r := httptest.NewRequest("GET", host+"/datasets", http.NoBody)
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusUnauthorized)
		So(len(mockedDataStore.GetAccountByTokenCalls()), ShouldEqual, 0)
	})

	Convey("A request with an unknown token is rejected with 401", t, func() {
		r := httptest.NewRequest("GET", host+"/datasets", http.NoBody)
		r.Header.Set("Authorization", "Bearer unknown-token")
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusUnauthorized)
		So(len(mockedDataStore.GetAccountByTokenCalls()), ShouldEqual, 1)
	})

	Convey("A request whose authorization header does not use the Bearer scheme is rejected with 401", t, func() {
		for _, header := range []string{userToken, "Bearer" + userToken, "Basic " + userToken} {
			r := httptest.NewRequest("GET", host+"/datasets", http.NoBody)
			r.Header.Set("Authorization", header)
			w := httptest.NewRecorder()
			mockedDataStore := withAccounts(&storetest.StorerMock{})

			api := getAPIWithMockedDatastore(mockedDataStore)
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusUnauthorized)
			So(len(mockedDataStore.GetAccountByTokenCalls()), ShouldEqual, 0)
		}
	})
}

func TestGetDatasetsReturnsInternalError(t *testing.T) {
	t.Parallel()
	Convey("A datastore failure on the dataset list is surfaced as a 500 response", t, func() {
		r := createRequestWithAuth("GET", host+"/datasets", nil)
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetDatasetsFunc: func(ctx context.Context, q string, value filters.Value, offset, limit int) ([]*models.Dataset, int, error) {
				return nil, 0, errors.New("datastore connection dropped")
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusInternalServerError)
		So(w.Body.String(), ShouldContainSubstring, errs.ErrInternalServer.Error())
	})
}

func TestGetDatasetReturnsOK(t *testing.T) {
	t.Parallel()
	Convey("A successful request to get a dataset returns a 200 OK response", t, func() {
		r := createRequestWithAuth("GET", host+"/datasets/dataset-1", nil)
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetDatasetFunc: func(ctx context.Context, id string) (*models.Dataset, error) {
				return testDataset(), nil
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(len(mockedDataStore.GetDatasetCalls()), ShouldEqual, 1)
		So(mockedDataStore.GetDatasetCalls()[0].ID, ShouldEqual, "dataset-1")
		So(w.Body.String(), ShouldContainSubstring, `"title":"Marchés publics conclus"`)
	})
}

func TestGetDatasetReturnsNotFound(t *testing.T) {
	t.Parallel()
	Convey("Requesting an unknown dataset returns a 404 response", t, func() {
		r := createRequestWithAuth("GET", host+"/datasets/missing", nil)
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetDatasetFunc: func(ctx context.Context, id string) (*models.Dataset, error) {
				return nil, errs.ErrDatasetNotFound
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusNotFound)
	})
}

func TestAddDatasetReturnsCreated(t *testing.T) {
	t.Parallel()
	Convey("A valid submission from a member of the owning organization returns 201", t, func() {
		r := createRequestWithAuth("POST", host+"/datasets", submissionBody())
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetOrganizationFunc: func(ctx context.Context, siret string) (*models.Organization, error) {
				return &testOrganization, nil
			},
			GetDataFormatsByIDFunc: func(ctx context.Context, ids []int) ([]models.DataFormat, error) {
				return []models.DataFormat{{ID: 1, Name: "CSV"}}, nil
			},
			GetTagsByIDFunc: func(ctx context.Context, ids []string) ([]models.Tag, error) {
				return []models.Tag{}, nil
			},
			UpsertDatasetFunc: func(ctx context.Context, id string, dataset *models.Dataset) error {
				return nil
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusCreated)
		So(len(mockedDataStore.UpsertDatasetCalls()), ShouldEqual, 1)
		created := mockedDataStore.UpsertDatasetCalls()[0].Dataset
		So(created.ID, ShouldNotBeEmpty)
		So(created.CatalogRecord.Organization, ShouldResemble, testOrganization)
		So(created.Formats, ShouldResemble, []models.DataFormat{{ID: 1, Name: "CSV"}})
	})
}

func TestAddDatasetReturnsBadRequestForInvalidSubmission(t *testing.T) {
	t.Parallel()
	Convey("A submission missing mandatory fields returns 400", t, func() {
		r := createRequestWithAuth("POST", host+"/datasets", bytes.NewBufferString(`{"title": "only a title"}`))
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Body.String(), ShouldContainSubstring, "missing mandatory fields")
	})

	Convey("An unparseable body returns 400", t, func() {
		r := createRequestWithAuth("POST", host+"/datasets", bytes.NewBufferString("{broken"))
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})
}

func TestAddDatasetReturnsForbiddenForOtherOrganization(t *testing.T) {
	t.Parallel()
	Convey("A non admin creating a dataset for another organization returns 403", t, func() {
		submission := models.DatasetSubmission{
			OrganizationSiret:    otherSiret,
			Title:                "t",
			Description:          "d",
			Service:              "s",
			GeographicalCoverage: "france",
			FormatIDs:            []int{1},
		}
		b, err := json.Marshal(submission)
		So(err, ShouldBeNil)

		r := createRequestWithAuth("POST", host+"/datasets", bytes.NewBuffer(b))
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusForbidden)
		So(len(mockedDataStore.UpsertDatasetCalls()), ShouldEqual, 0)
	})
}

func TestAddDatasetReturnsNotFoundForUnknownReferences(t *testing.T) {
	t.Parallel()
	Convey("A submission referencing an unknown tag returns 404", t, func() {
		r := createRequestWithAuth("POST", host+"/datasets", submissionBody())
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetOrganizationFunc: func(ctx context.Context, siret string) (*models.Organization, error) {
				return &testOrganization, nil
			},
			GetDataFormatsByIDFunc: func(ctx context.Context, ids []int) ([]models.DataFormat, error) {
				return []models.DataFormat{{ID: 1, Name: "CSV"}}, nil
			},
			GetTagsByIDFunc: func(ctx context.Context, ids []string) ([]models.Tag, error) {
				return nil, errs.ErrTagNotFound
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusNotFound)
		So(len(mockedDataStore.UpsertDatasetCalls()), ShouldEqual, 0)
	})
}

func TestPutDatasetReturnsOK(t *testing.T) {
	t.Parallel()
	Convey("A full replace by a member of the owning organization returns 200", t, func() {
		r := createRequestWithAuth("PUT", host+"/datasets/dataset-1", submissionBody())
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetDatasetFunc: func(ctx context.Context, id string) (*models.Dataset, error) {
				return testDataset(), nil
			},
			GetDataFormatsByIDFunc: func(ctx context.Context, ids []int) ([]models.DataFormat, error) {
				return []models.DataFormat{{ID: 1, Name: "CSV"}}, nil
			},
			GetTagsByIDFunc: func(ctx context.Context, ids []string) ([]models.Tag, error) {
				return []models.Tag{}, nil
			},
			UpsertDatasetFunc: func(ctx context.Context, id string, dataset *models.Dataset) error {
				return nil
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(len(mockedDataStore.UpsertDatasetCalls()), ShouldEqual, 1)
		updated := mockedDataStore.UpsertDatasetCalls()[0].Dataset
		So(updated.ID, ShouldEqual, "dataset-1")
		So(updated.CatalogRecord.Organization, ShouldResemble, testOrganization)
	})
}

func TestPutDatasetReturnsForbiddenForOtherOrganization(t *testing.T) {
	t.Parallel()
	Convey("A non admin editing another organization's dataset returns 403", t, func() {
		dataset := testDataset()
		dataset.CatalogRecord.Organization = models.Organization{Siret: otherSiret, Name: "Autre"}

		r := createRequestWithAuth("PUT", host+"/datasets/dataset-1", submissionBody())
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetDatasetFunc: func(ctx context.Context, id string) (*models.Dataset, error) {
				return dataset, nil
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusForbidden)
		So(len(mockedDataStore.UpsertDatasetCalls()), ShouldEqual, 0)
	})

	Convey("An admin editing any dataset is allowed", t, func() {
		dataset := testDataset()
		dataset.CatalogRecord.Organization = models.Organization{Siret: otherSiret, Name: "Autre"}

		r := createAdminRequest("PUT", host+"/datasets/dataset-1", submissionBody())
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetDatasetFunc: func(ctx context.Context, id string) (*models.Dataset, error) {
				return dataset, nil
			},
			GetDataFormatsByIDFunc: func(ctx context.Context, ids []int) ([]models.DataFormat, error) {
				return []models.DataFormat{{ID: 1, Name: "CSV"}}, nil
			},
			GetTagsByIDFunc: func(ctx context.Context, ids []string) ([]models.Tag, error) {
				return []models.Tag{}, nil
			},
			UpsertDatasetFunc: func(ctx context.Context, id string, dataset *models.Dataset) error {
				return nil
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusOK)
	})
}

func TestPutDatasetReturnsNotFound(t *testing.T) {
	t.Parallel()
	Convey("Replacing an unknown dataset returns 404", t, func() {
		r := createRequestWithAuth("PUT", host+"/datasets/missing", submissionBody())
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetDatasetFunc: func(ctx context.Context, id string) (*models.Dataset, error) {
				return nil, errs.ErrDatasetNotFound
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusNotFound)
	})
}

func TestDeleteDatasetReturnsNoContent(t *testing.T) {
	t.Parallel()
	Convey("An admin deleting a dataset returns 204", t, func() {
		r := createAdminRequest("DELETE", host+"/datasets/dataset-1", nil)
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			DeleteDatasetFunc: func(ctx context.Context, id string) error {
				return nil
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusNoContent)
		So(len(mockedDataStore.DeleteDatasetCalls()), ShouldEqual, 1)
	})
}

func TestDeleteDatasetReturnsForbiddenForNonAdmins(t *testing.T) {
	t.Parallel()
	Convey("A non admin deleting a dataset returns 403", t, func() {
		r := createRequestWithAuth("DELETE", host+"/datasets/dataset-1", nil)
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusForbidden)
		So(len(mockedDataStore.DeleteDatasetCalls()), ShouldEqual, 0)
	})
}

func TestDeleteDatasetReturnsNotFound(t *testing.T) {
	t.Parallel()
	Convey("Deleting an unknown dataset returns 404", t, func() {
		r := createAdminRequest("DELETE", host+"/datasets/missing", nil)
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			DeleteDatasetFunc: func(ctx context.Context, id string) error {
				return errs.ErrDatasetNotFound
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusNotFound)
	})
}
