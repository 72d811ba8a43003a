package api

import (
	"net/http"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
)

func (api *CatalogueAPI) getCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	organizationSiret := vars["organization_siret"]
	logData := log.Data{"organization_siret": organizationSiret}

	catalog, err := api.dataStore.Backend.GetCatalog(ctx, organizationSiret)
	if err != nil {
		log.Error(ctx, "getCatalog endpoint: unable to find catalog", err, logData)
		handleErrorType(ctx, err, w)
		return
	}

	log.Info(ctx, "getCatalog endpoint: request successful", logData)
	writeJSONBody(ctx, w, catalog, http.StatusOK)
}

func (api *CatalogueAPI) getOrganizations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	organizations, err := api.dataStore.Backend.GetOrganizations(ctx)
	if err != nil {
		log.Error(ctx, "getOrganizations endpoint: failed to list organizations", err)
		handleErrorType(ctx, err, w)
		return
	}

	writeJSONBody(ctx, w, organizations, http.StatusOK)
}

func (api *CatalogueAPI) getTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tags, err := api.dataStore.Backend.GetTags(ctx)
	if err != nil {
		log.Error(ctx, "getTags endpoint: failed to list tags", err)
		handleErrorType(ctx, err, w)
		return
	}

	writeJSONBody(ctx, w, tags, http.StatusOK)
}

func (api *CatalogueAPI) getLicenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	licenses, err := api.dataStore.Backend.GetLicenses(ctx)
	if err != nil {
		log.Error(ctx, "getLicenses endpoint: failed to list licenses", err)
		handleErrorType(ctx, err, w)
		return
	}

	writeJSONBody(ctx, w, licenses, http.StatusOK)
}

func (api *CatalogueAPI) getDataFormats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	formats, err := api.dataStore.Backend.GetDataFormats(ctx)
	if err != nil {
		log.Error(ctx, "getDataFormats endpoint: failed to list data formats", err)
		handleErrorType(ctx, err, w)
		return
	}

	writeJSONBody(ctx, w, formats, http.StatusOK)
}
