// Package api implements the HTTP layer: request DTOs, query-parameter
// parsing for filtered listings, handlers, and the mapping from domain and
// store errors to sanitized HTTP responses.
package api
