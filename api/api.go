package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	errs "github.com/etalab/catalogue-api/apierrors"
	"github.com/etalab/catalogue-api/config"
	"github.com/etalab/catalogue-api/pagination"
	"github.com/etalab/catalogue-api/store"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
)

// CatalogueAPI manages the catalogue resources: datasets, filters and the
// reference collections.
type CatalogueAPI struct {
	Router    *mux.Router
	dataStore store.DataStore
	host      string
}

// Setup creates a new catalogue API instance and registers the API routes
func Setup(ctx context.Context, cfg *config.Configuration, router *mux.Router, dataStore store.DataStore) *CatalogueAPI {
	api := &CatalogueAPI{
		Router:    router,
		dataStore: dataStore,
		host:      cfg.CatalogueAPIURL,
	}

	paginator := pagination.NewPaginator(cfg.DefaultPageSize, cfg.DefaultMaxPageSize)

	log.Info(ctx, "enabling catalogue api endpoints")

	api.get("/datasets/filters", api.isIdentified(api.getDatasetFilters))
	api.get("/datasets", api.isIdentified(paginator.Paginate(api.getDatasets)))
	api.get("/datasets/{dataset_id}", api.isIdentified(api.getDataset))
	api.post("/datasets", api.isIdentified(api.addDataset))
	api.put("/datasets/{dataset_id}", api.isIdentified(api.putDataset))
	api.delete("/datasets/{dataset_id}", api.isIdentified(api.deleteDataset))

	api.get("/catalogs/{organization_siret}", api.isIdentified(api.getCatalog))
	api.get("/organizations", api.isIdentified(api.getOrganizations))
	api.get("/tags", api.isIdentified(api.getTags))
	api.get("/licenses", api.isIdentified(api.getLicenses))
	api.get("/dataformats", api.isIdentified(api.getDataFormats))

	return api
}

// get registers a GET http.HandlerFunc.
func (api *CatalogueAPI) get(path string, handler http.HandlerFunc) {
	api.Router.HandleFunc(path, handler).Methods(http.MethodGet)
}

// put registers a PUT http.HandlerFunc.
func (api *CatalogueAPI) put(path string, handler http.HandlerFunc) {
	api.Router.HandleFunc(path, handler).Methods(http.MethodPut)
}

// post registers a POST http.HandlerFunc.
func (api *CatalogueAPI) post(path string, handler http.HandlerFunc) {
	api.Router.HandleFunc(path, handler).Methods(http.MethodPost)
}

// delete registers a DELETE http.HandlerFunc.
func (api *CatalogueAPI) delete(path string, handler http.HandlerFunc) {
	api.Router.HandleFunc(path, handler).Methods(http.MethodDelete)
}

// handleErrorType maps known sentinel errors to their HTTP status code and
// writes the response.
func handleErrorType(ctx context.Context, err error, w http.ResponseWriter) {
	switch {
	case errors.Is(err, errs.ErrDatasetNotFound),
		errors.Is(err, errs.ErrCatalogNotFound),
		errors.Is(err, errs.ErrOrganizationNotFound),
		errors.Is(err, errs.ErrTagNotFound),
		errors.Is(err, errs.ErrDataFormatNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, errs.ErrUnauthorised), errors.Is(err, errs.ErrNoAuthHeader):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, errs.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, errs.ErrInvalidQueryParameter):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Error(ctx, "internal server error", err)
		http.Error(w, errs.ErrInternalServer.Error(), http.StatusInternalServerError)
	}
}

// writeJSONBody marshals the provided resource and writes it with the given
// status code.
func writeJSONBody(ctx context.Context, w http.ResponseWriter, resource interface{}, status int) {
	b, err := json.Marshal(resource)
	if err != nil {
		log.Error(ctx, "failed to marshal resource into bytes", err)
		http.Error(w, errs.ErrInternalServer.Error(), http.StatusInternalServerError)
		return
	}

	setJSONContentType(w)
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		log.Error(ctx, "failed to write response body", err)
	}
}

func setJSONContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
}
