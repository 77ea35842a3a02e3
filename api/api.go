package api

import _ "embed"

// Spec is the OpenAPI document served on /openapi.json and used for request validation.
//
//go:embed openapi.json
var Spec []byte
