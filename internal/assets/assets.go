// Package assets bundles the default product listing.
package assets

import _ "embed"

//go:embed products.json
var Products []byte
