package docs

import _ "embed"

// OpenAPI — описание HTTP API маркетплейса.
//
//go:embed marketplace.openapi.yaml
var OpenAPI []byte
