package api

import (
	"net/http"

	errs "github.com/etalab/catalogue-api/apierrors"
	"github.com/etalab/catalogue-api/filters"
	"github.com/etalab/catalogue-api/models"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
)

func (api *CatalogueAPI) getDatasets(w http.ResponseWriter, r *http.Request, pageNumber, pageSize int) (interface{}, int, error) {
	ctx := r.Context()
	query := r.URL.Query()

	q := query.Get("q")
	value := filters.ParseValue(query)
	offset := (pageNumber - 1) * pageSize

	logData := log.Data{"q": q, "page_number": pageNumber, "page_size": pageSize}

	datasets, totalCount, err := api.dataStore.Backend.GetDatasets(ctx, q, value, offset, pageSize)
	if err != nil {
		log.Error(ctx, "api endpoint getDatasets datastore.GetDatasets returned an error", err, logData)
		handleErrorType(ctx, err, w)
		return nil, 0, err
	}

	log.Info(ctx, "api endpoint getDatasets request successful", logData)
	return datasets, totalCount, nil
}

func (api *CatalogueAPI) getDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	datasetID := vars["dataset_id"]
	logData := log.Data{"dataset_id": datasetID}

	dataset, err := api.dataStore.Backend.GetDataset(ctx, datasetID)
	if err != nil {
		log.Error(ctx, "getDataset endpoint: unable to find dataset", err, logData)
		handleErrorType(ctx, err, w)
		return
	}

	log.Info(ctx, "getDataset endpoint: request successful", logData)
	writeJSONBody(ctx, w, dataset, http.StatusOK)
}

func (api *CatalogueAPI) addDataset(w http.ResponseWriter, r *http.Request) {
	defer closeBody(r)
	ctx := r.Context()
	account := getAccount(ctx)

	submission, err := models.CreateDatasetSubmission(r.Body)
	if err != nil {
		log.Error(ctx, "addDataset endpoint: failed to model dataset resource based on request", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	logData := log.Data{"organization_siret": submission.OrganizationSiret}

	if err = models.ValidateDatasetSubmission(submission, true); err != nil {
		log.Error(ctx, "addDataset endpoint: dataset submission failed validation checks", err, logData)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !account.IsAdmin() && account.OrganizationSiret != submission.OrganizationSiret {
		log.Warn(ctx, "addDataset endpoint: account may not create datasets for this organization", logData)
		handleErrorType(ctx, errs.ErrForbidden, w)
		return
	}

	organization, formats, tags, err := api.resolveReferences(r, submission)
	if err != nil {
		log.Error(ctx, "addDataset endpoint: failed to resolve submission references", err, logData)
		handleErrorType(ctx, err, w)
		return
	}

	dataset := models.NewDataset(submission, *organization, formats, tags)
	logData["dataset_id"] = dataset.ID

	if err = api.dataStore.Backend.UpsertDataset(ctx, dataset.ID, dataset); err != nil {
		log.Error(ctx, "addDataset endpoint: failed to insert dataset resource to datastore", err, logData)
		handleErrorType(ctx, err, w)
		return
	}

	log.Info(ctx, "addDataset endpoint: request completed successfully", logData)
	w.Header().Set("Location", api.host+"/datasets/"+dataset.ID)
	writeJSONBody(ctx, w, dataset, http.StatusCreated)
}

func (api *CatalogueAPI) putDataset(w http.ResponseWriter, r *http.Request) {
	defer closeBody(r)
	ctx := r.Context()
	account := getAccount(ctx)
	vars := mux.Vars(r)
	datasetID := vars["dataset_id"]
	logData := log.Data{"dataset_id": datasetID}

	dataset, err := api.dataStore.Backend.GetDataset(ctx, datasetID)
	if err != nil {
		log.Error(ctx, "putDataset endpoint: unable to find dataset", err, logData)
		handleErrorType(ctx, err, w)
		return
	}

	if !account.CanEditDataset(dataset) {
		log.Warn(ctx, "putDataset endpoint: account may not edit this dataset", logData)
		handleErrorType(ctx, errs.ErrForbidden, w)
		return
	}

	submission, err := models.CreateDatasetSubmission(r.Body)
	if err != nil {
		log.Error(ctx, "putDataset endpoint: failed to model dataset resource based on request", err, logData)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = models.ValidateDatasetSubmission(submission, false); err != nil {
		log.Error(ctx, "putDataset endpoint: dataset submission failed validation checks", err, logData)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, formats, tags, err := api.resolveReferences(r, submission)
	if err != nil {
		log.Error(ctx, "putDataset endpoint: failed to resolve submission references", err, logData)
		handleErrorType(ctx, err, w)
		return
	}

	// Full replace, last write wins. Concurrent editors are expected to be
	// rare within a single organization; the catalog record is preserved so
	// ownership never changes on update.
	dataset.Apply(submission, formats, tags)

	if err = api.dataStore.Backend.UpsertDataset(ctx, dataset.ID, dataset); err != nil {
		log.Error(ctx, "putDataset endpoint: failed to update dataset resource in datastore", err, logData)
		handleErrorType(ctx, err, w)
		return
	}

	log.Info(ctx, "putDataset endpoint: request successful", logData)
	writeJSONBody(ctx, w, dataset, http.StatusOK)
}

func (api *CatalogueAPI) deleteDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	account := getAccount(ctx)
	vars := mux.Vars(r)
	datasetID := vars["dataset_id"]
	logData := log.Data{"dataset_id": datasetID}

	if !account.IsAdmin() {
		log.Warn(ctx, "deleteDataset endpoint: only admins may delete datasets", logData)
		handleErrorType(ctx, errs.ErrForbidden, w)
		return
	}

	if err := api.dataStore.Backend.DeleteDataset(ctx, datasetID); err != nil {
		log.Error(ctx, "deleteDataset endpoint: failed to delete dataset", err, logData)
		handleErrorType(ctx, err, w)
		return
	}

	log.Info(ctx, "deleteDataset endpoint: request successful", logData)
	w.WriteHeader(http.StatusNoContent)
}

// resolveReferences looks up the reference entities a submission points at by
// id. For updates the organization lookup is skipped since ownership comes
// from the stored catalog record.
func (api *CatalogueAPI) resolveReferences(r *http.Request, submission *models.DatasetSubmission) (*models.Organization, []models.DataFormat, []models.Tag, error) {
	ctx := r.Context()

	var organization *models.Organization
	if submission.OrganizationSiret != "" {
		var err error
		organization, err = api.dataStore.Backend.GetOrganization(ctx, submission.OrganizationSiret)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	formats, err := api.dataStore.Backend.GetDataFormatsByID(ctx, submission.FormatIDs)
	if err != nil {
		return nil, nil, nil, err
	}

	tags, err := api.dataStore.Backend.GetTagsByID(ctx, submission.TagIDs)
	if err != nil {
		return nil, nil, nil, err
	}

	return organization, formats, tags, nil
}

func closeBody(r *http.Request) {
	if err := r.Body.Close(); err != nil {
		log.Error(r.Context(), "could not close response body", err)
	}
}
