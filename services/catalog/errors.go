package catalog

import "errors"

// ErrProductNotFound is returned when an update names an unknown product.
var ErrProductNotFound = errors.New("product not found")
