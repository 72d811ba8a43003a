// Package sdk is the Go client for the catalogue API. Besides the HTTP
// calls it hosts the client side logic of the catalogue web application:
// the dataset form payload transformer and the session watcher that keeps
// the organization's catalogue definitions fresh.
package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ONSdigital/dp-api-clients-go/v2/health"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	dpNetRequest "github.com/ONSdigital/dp-net/v2/request"
	"github.com/ONSdigital/log.go/v2/log"
)

const (
	service = "catalogue-api"
)

type Client struct {
	hcCli *health.Client
}

// Contains the headers to be added to any request
type Headers struct {
	APIToken string
}

// Adds headers to the input request
func (h *Headers) Add(request *http.Request) {
	// Adding the service token header appends the Bearer prefix to the value
	// submitted, so a caller supplied prefix has to be stripped first.
	token := strings.TrimSpace(strings.TrimPrefix(h.APIToken, "Bearer"))
	dpNetRequest.AddServiceTokenHeader(request, token)
}

// Checker calls the catalogue api health endpoint and returns a check object to the caller
func (c *Client) Checker(ctx context.Context, check *healthcheck.CheckState) error {
	return c.hcCli.Checker(ctx, check)
}

// Health returns the underlying Healthcheck Client for this API client
func (c *Client) Health() *health.Client {
	return c.hcCli
}

// URL returns the URL used by this client
func (c *Client) URL() string {
	return c.hcCli.URL
}

// New creates a new instance of Client for the service
func New(catalogueAPIURL string) *Client {
	return &Client{
		hcCli: health.NewClient(service, catalogueAPIURL),
	}
}

// NewWithHealthClient creates a new instance of service API Client, reusing the URL and Clienter
// from the provided healthcheck client
func NewWithHealthClient(hcCli *health.Client) *Client {
	return &Client{
		hcCli: health.NewClientWithClienter(service, hcCli.URL, hcCli.Client),
	}
}

// DoAuthenticatedGetRequest sends a GET request with the identity headers set
func (c *Client) DoAuthenticatedGetRequest(ctx context.Context, headers Headers, uri *url.URL) (*http.Response, error) {
	return c.doAuthenticatedRequest(ctx, headers, http.MethodGet, uri, nil)
}

// DoAuthenticatedPostRequest sends a POST request with a JSON body and the identity headers set
func (c *Client) DoAuthenticatedPostRequest(ctx context.Context, headers Headers, uri *url.URL, body interface{}) (*http.Response, error) {
	return c.doAuthenticatedRequest(ctx, headers, http.MethodPost, uri, body)
}

// DoAuthenticatedPutRequest sends a PUT request with a JSON body and the identity headers set
func (c *Client) DoAuthenticatedPutRequest(ctx context.Context, headers Headers, uri *url.URL, body interface{}) (*http.Response, error) {
	return c.doAuthenticatedRequest(ctx, headers, http.MethodPut, uri, body)
}

// DoAuthenticatedDeleteRequest sends a DELETE request with the identity headers set
func (c *Client) DoAuthenticatedDeleteRequest(ctx context.Context, headers Headers, uri *url.URL) (*http.Response, error) {
	return c.doAuthenticatedRequest(ctx, headers, http.MethodDelete, uri, nil)
}

func (c *Client) doAuthenticatedRequest(ctx context.Context, headers Headers, method string, uri *url.URL, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, uri.String(), reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	headers.Add(req)

	return c.hcCli.Client.Do(ctx, req)
}

// closeResponseBody closes the response body and logs an error if unsuccessful
func closeResponseBody(ctx context.Context, resp *http.Response) {
	if resp.Body != nil {
		if err := resp.Body.Close(); err != nil {
			log.Error(ctx, "error closing http response body", err)
		}
	}
}

// checkResponseStatus turns a non-matching status code into an error holding
// the response body, which the API fills with the failure reason.
func checkResponseStatus(resp *http.Response, expected int) error {
	if resp.StatusCode == expected {
		return nil
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil || len(b) == 0 {
		return fmt.Errorf("unexpected status code %d from catalogue api", resp.StatusCode)
	}

	return fmt.Errorf("unexpected status code %d from catalogue api: %s", resp.StatusCode, strings.TrimSpace(string(b)))
}

// unmarshalResponseBody reads the response body and unmarshals it to the
// input target, expecting a 200 status
func unmarshalResponseBody(resp *http.Response, target interface{}) error {
	if err := checkResponseStatus(resp, http.StatusOK); err != nil {
		return err
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, target)
}
