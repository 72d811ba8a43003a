package sdk

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/etalab/catalogue-api/filters"
	"github.com/etalab/catalogue-api/models"
)

// GetFiltersInfo returns the reference data listing every selectable value
// per filter dimension, optionally scoped to one organization's catalogue.
// The body goes through filters.ParseInfo so the extra field variants are
// decoded onto their typed payloads and missing dimension keys are rejected.
func (c *Client) GetFiltersInfo(ctx context.Context, headers Headers, organizationSiret *string) (info *filters.Info, err error) {
	// Build URI
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "datasets", "filters")
	if err != nil {
		return nil, err
	}

	if organizationSiret != nil {
		query := url.Values{}
		query.Set(filters.ParamOrganizationSiret, *organizationSiret)
		uri.RawQuery = query.Encode()
	}

	// Make request
	resp, err := c.DoAuthenticatedGetRequest(ctx, headers, uri)
	if err != nil {
		return nil, err
	}
	defer closeResponseBody(ctx, resp)

	if err = checkResponseStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return filters.ParseInfo(b)
}

// GetCatalog returns an organization's catalogue, holding its extra field
// definitions
func (c *Client) GetCatalog(ctx context.Context, headers Headers, organizationSiret string) (catalog models.Catalog, err error) {
	catalog = models.Catalog{}

	// Build URI
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "catalogs", organizationSiret)
	if err != nil {
		return catalog, err
	}

	// Make request
	resp, err := c.DoAuthenticatedGetRequest(ctx, headers, uri)
	if err != nil {
		return catalog, err
	}
	defer closeResponseBody(ctx, resp)

	// Unmarshal the response body to target
	err = unmarshalResponseBody(resp, &catalog)

	return catalog, err
}
