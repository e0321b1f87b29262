package catalog

import _ "embed"

//go:embed default_catalog.json
var defaultCatalogJSON []byte
