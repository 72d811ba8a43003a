package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	errs "github.com/etalab/catalogue-api/apierrors"
	"github.com/etalab/catalogue-api/filters"
	"github.com/etalab/catalogue-api/models"
	storetest "github.com/etalab/catalogue-api/store/storetest"

	. "github.com/smartystreets/goconvey/convey"
)

func testFiltersInfo() *filters.Info {
	return &filters.Info{
		OrganizationSiret:    []models.Organization{testOrganization},
		GeographicalCoverage: []string{"france"},
		Service:              []string{"Service des achats"},
		FormatID:             []models.DataFormat{{ID: 1, Name: "CSV"}},
		TechnicalSource:      []string{},
		TagID:                []models.Tag{{ID: "tag-1", Name: "budget"}},
		License:              []string{"*", "Licence Ouverte"},
		ExtraFields:          []models.ExtraField{},
	}
}

func TestGetDatasetFiltersReturnsOK(t *testing.T) {
	t.Parallel()
	Convey("A successful request for the filters info returns 200 with every dimension", t, func() {
		r := createRequestWithAuth("GET", host+"/datasets/filters", nil)
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetFiltersInfoFunc: func(ctx context.Context, organizationSiret *string) (*filters.Info, error) {
				return testFiltersInfo(), nil
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(len(mockedDataStore.GetFiltersInfoCalls()), ShouldEqual, 1)
		So(mockedDataStore.GetFiltersInfoCalls()[0].OrganizationSiret, ShouldBeNil)

		var body map[string]json.RawMessage
		So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
		for _, key := range []string{"organization_siret", "geographical_coverage", "service", "format_id", "technical_source", "tag_id", "license", "extra_fields"} {
			So(body, ShouldContainKey, key)
		}
	})
}

func TestGetDatasetFiltersScopesToOrganization(t *testing.T) {
	t.Parallel()
	Convey("An organization_siret query parameter scopes the filters info", t, func() {
		r := createRequestWithAuth("GET", host+"/datasets/filters?organization_siret="+userSiret, nil)
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetFiltersInfoFunc: func(ctx context.Context, organizationSiret *string) (*filters.Info, error) {
				return testFiltersInfo(), nil
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusOK)
		calls := mockedDataStore.GetFiltersInfoCalls()
		So(len(calls), ShouldEqual, 1)
		So(calls[0].OrganizationSiret, ShouldNotBeNil)
		So(*calls[0].OrganizationSiret, ShouldEqual, userSiret)
	})
}

func TestGetDatasetFiltersReturnsNotFoundForUnknownOrganization(t *testing.T) {
	t.Parallel()
	Convey("Scoping to an unknown organization returns 404", t, func() {
		r := createRequestWithAuth("GET", host+"/datasets/filters?organization_siret=00000000000000", nil)
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetFiltersInfoFunc: func(ctx context.Context, organizationSiret *string) (*filters.Info, error) {
				return nil, errs.ErrOrganizationNotFound
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusNotFound)
	})
}

func TestGetCatalogReturnsOK(t *testing.T) {
	t.Parallel()
	Convey("A successful request for a catalog returns 200 with its extra fields", t, func() {
		r := createRequestWithAuth("GET", host+"/catalogs/"+userSiret, nil)
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetCatalogFunc: func(ctx context.Context, organizationSiret string) (*models.Catalog, error) {
				return &models.Catalog{
					OrganizationSiret: organizationSiret,
					ExtraFields: []models.ExtraField{
						{ID: "field-1", Name: "donnees_ouvertes", Title: "Données ouvertes", Type: models.BoolExtraField, Bool: &models.BoolFieldData{TrueValue: "oui", FalseValue: "non"}},
					},
				}, nil
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(mockedDataStore.GetCatalogCalls()[0].OrganizationSiret, ShouldEqual, userSiret)
		So(w.Body.String(), ShouldContainSubstring, `"true_value":"oui"`)
	})
}

func TestGetCatalogReturnsNotFound(t *testing.T) {
	t.Parallel()
	Convey("Requesting an unknown catalog returns 404", t, func() {
		r := createRequestWithAuth("GET", host+"/catalogs/00000000000000", nil)
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetCatalogFunc: func(ctx context.Context, organizationSiret string) (*models.Catalog, error) {
				return nil, errs.ErrCatalogNotFound
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusNotFound)
	})
}

func TestGetReferenceListsReturnOK(t *testing.T) {
	t.Parallel()
	Convey("The organization list endpoint returns 200", t, func() {
		r := createRequestWithAuth("GET", host+"/organizations", nil)
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetOrganizationsFunc: func(ctx context.Context) ([]models.Organization, error) {
				return []models.Organization{testOrganization}, nil
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"siret":"`+userSiret+`"`)
	})

	Convey("The tag list endpoint returns 200", t, func() {
		r := createRequestWithAuth("GET", host+"/tags", nil)
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetTagsFunc: func(ctx context.Context) ([]models.Tag, error) {
				return []models.Tag{{ID: "tag-1", Name: "budget"}}, nil
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"name":"budget"`)
	})

	Convey("The license list endpoint returns 200 with the sentinel first", t, func() {
		r := createRequestWithAuth("GET", host+"/licenses", nil)
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetLicensesFunc: func(ctx context.Context) ([]string, error) {
				return []string{"*", "Licence Ouverte"}, nil
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusOK)

		var licenses []string
		So(json.Unmarshal(w.Body.Bytes(), &licenses), ShouldBeNil)
		So(licenses[0], ShouldEqual, "*")
	})

	Convey("The data format list endpoint returns 200", t, func() {
		r := createRequestWithAuth("GET", host+"/dataformats", nil)
		w := httptest.NewRecorder()
		mockedDataStore := withAccounts(&storetest.StorerMock{
			GetDataFormatsFunc: func(ctx context.Context) ([]models.DataFormat, error) {
				return []models.DataFormat{{ID: 1, Name: "CSV"}}, nil
			},
		})

		api := getAPIWithMockedDatastore(mockedDataStore)
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"name":"CSV"`)
	})
}
