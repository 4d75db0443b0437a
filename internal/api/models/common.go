// Package models defines request and response types for the dnshdr REST API.
// All types are JSON-serializable and include validation tags where appropriate.
package models

// ErrorResponse represents an API error response.
// Detail is set when the failure came from the header codec.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Detail *ErrorDetail `json:"detail,omitempty"`
}

// StatusResponse represents a simple status response.
type StatusResponse struct {
	Status string `json:"status"`
}
