package api

import (
	"net/http"

	"github.com/etalab/catalogue-api/filters"

	"github.com/ONSdigital/log.go/v2/log"
)

// getDatasetFilters serves the reference data listing every selectable value
// per filter dimension. An optional organization_siret query parameter scopes
// the result to a single organization's catalogue.
func (api *CatalogueAPI) getDatasetFilters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var organizationSiret *string
	if r.URL.Query().Has(filters.ParamOrganizationSiret) {
		siret := r.URL.Query().Get(filters.ParamOrganizationSiret)
		organizationSiret = &siret
	}

	logData := log.Data{"organization_siret": organizationSiret}

	info, err := api.dataStore.Backend.GetFiltersInfo(ctx, organizationSiret)
	if err != nil {
		log.Error(ctx, "getDatasetFilters endpoint: failed to assemble filters info", err, logData)
		handleErrorType(ctx, err, w)
		return
	}

	log.Info(ctx, "getDatasetFilters endpoint: request successful", logData)
	writeJSONBody(ctx, w, info, http.StatusOK)
}
