// Package api holds the OpenAPI contract of the planner HTTP API.
package api

import _ "embed"

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=oapi-codegen.yaml openapi.yml

// OpenAPI is the YAML source of the contract. Server types in
// internal/generated/servers are derived from it.
//
//go:embed openapi.yml
var OpenAPI []byte
