package catalog

import "errors"

var (
	ErrorCarNotFound        = errors.New("car not found in catalog")
	ErrorCatalogUnavailable = errors.New("catalog unavailable")
)
