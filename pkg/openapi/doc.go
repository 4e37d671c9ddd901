// Package openapi builds form schemas from OpenAPI 3 documents. The request
// body of one operation becomes the field list: each top-level property turns
// into a descriptor whose type, options and validation block are derived from
// the property's schema. Parsing and reference resolution are delegated to
// kin-openapi.
package openapi
