package sdk

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/etalab/catalogue-api/filters"
	"github.com/etalab/catalogue-api/models"
)

// DatasetsList represents an object containing a paginated list of datasets.
// This struct is based on the `pagination.page` struct which is returned when
// we call the `api.getDatasets` endpoint
type DatasetsList struct {
	Items      []models.Dataset `json:"items"`
	Count      int              `json:"count"`
	PageNumber int              `json:"page_number"`
	PageSize   int              `json:"page_size"`
	TotalCount int              `json:"total_count"`
	TotalPages int              `json:"total_pages"`
}

// GetDatasets returns one page of the datasets matching the free text query
// and filter selection. A nil value means no filters.
func (c *Client) GetDatasets(ctx context.Context, headers Headers, q string, value *filters.Value, pageNumber int) (datasetsList DatasetsList, err error) {
	datasetsList = DatasetsList{}

	// Build URI
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "datasets")
	if err != nil {
		return datasetsList, err
	}

	query := url.Values{}
	if value != nil {
		query = filters.Query(filters.ToParams(*value))
	}
	if q != "" {
		query.Set("q", q)
	}
	if pageNumber > 0 {
		query.Set("page_number", strconv.Itoa(pageNumber))
	}
	uri.RawQuery = query.Encode()

	// Make request
	resp, err := c.DoAuthenticatedGetRequest(ctx, headers, uri)
	if err != nil {
		return datasetsList, err
	}
	defer closeResponseBody(ctx, resp)

	// Unmarshal the response body to target
	err = unmarshalResponseBody(resp, &datasetsList)

	return datasetsList, err
}

// GetDataset returns the dataset record for a given dataset id
func (c *Client) GetDataset(ctx context.Context, headers Headers, datasetID string) (dataset models.Dataset, err error) {
	dataset = models.Dataset{}

	// Build URI
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "datasets", datasetID)
	if err != nil {
		return dataset, err
	}

	// Make request
	resp, err := c.DoAuthenticatedGetRequest(ctx, headers, uri)
	if err != nil {
		return dataset, err
	}
	defer closeResponseBody(ctx, resp)

	// Unmarshal the response body to target
	err = unmarshalResponseBody(resp, &dataset)

	return dataset, err
}

// CreateDataset adds a new dataset record to the catalogue
func (c *Client) CreateDataset(ctx context.Context, headers Headers, submission models.DatasetSubmission) (dataset models.Dataset, err error) {
	dataset = models.Dataset{}

	// Build URI
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "datasets")
	if err != nil {
		return dataset, err
	}

	// Make request
	resp, err := c.DoAuthenticatedPostRequest(ctx, headers, uri, submission)
	if err != nil {
		return dataset, err
	}
	defer closeResponseBody(ctx, resp)

	if err = checkResponseStatus(resp, http.StatusCreated); err != nil {
		return dataset, err
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return dataset, err
	}

	err = json.Unmarshal(b, &dataset)
	return dataset, err
}

// UpdateDataset fully replaces the descriptive fields of an existing dataset
// record
func (c *Client) UpdateDataset(ctx context.Context, headers Headers, datasetID string, submission models.DatasetSubmission) (dataset models.Dataset, err error) {
	dataset = models.Dataset{}

	// Build URI
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "datasets", datasetID)
	if err != nil {
		return dataset, err
	}

	// Make request
	resp, err := c.DoAuthenticatedPutRequest(ctx, headers, uri, submission)
	if err != nil {
		return dataset, err
	}
	defer closeResponseBody(ctx, resp)

	// Unmarshal the response body to target
	err = unmarshalResponseBody(resp, &dataset)

	return dataset, err
}

// DeleteDataset removes a dataset record from the catalogue
func (c *Client) DeleteDataset(ctx context.Context, headers Headers, datasetID string) (err error) {
	// Build URI
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "datasets", datasetID)
	if err != nil {
		return err
	}

	// Make request
	resp, err := c.DoAuthenticatedDeleteRequest(ctx, headers, uri)
	if err != nil {
		return err
	}
	defer closeResponseBody(ctx, resp)

	return checkResponseStatus(resp, http.StatusNoContent)
}
