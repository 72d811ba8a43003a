package apierrors

import "errors"

// Error messages for the catalogue API
var (
	ErrDatasetNotFound       = errors.New("dataset not found")
	ErrCatalogNotFound       = errors.New("catalog not found")
	ErrOrganizationNotFound  = errors.New("organization not found")
	ErrTagNotFound           = errors.New("tag not found")
	ErrDataFormatNotFound    = errors.New("data format not found")
	ErrUnauthorised          = errors.New("unauthorised access to API")
	ErrNoAuthHeader          = errors.New("no authentication header provided")
	ErrForbidden             = errors.New("forbidden access to resource")
	ErrInvalidQueryParameter = errors.New("invalid query parameter")
	ErrInternalServer        = errors.New("internal error")
)
