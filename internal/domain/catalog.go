package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

// CatalogItem is a product of the static catalog. It is never mutated after load.
type CatalogItem struct {
	No       int
	ID       string
	Name     string
	Category string
	Price    Money
	ImageURL string
	// Stock is informational, cart quantities are not checked against it.
	Stock int
}
