// Package docs embeds the OpenAPI description served by the API.
package docs

import _ "embed"

//go:embed openapi.yaml
var OpenAPI []byte
