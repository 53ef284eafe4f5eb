package models

// HealthCheckResponse returns the health check response
type HealthCheckResponse struct {
	Alive    bool   `json:"alive"`
	Database string `json:"database"`
}

// ErrorResponse is the body written for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the body written for every successful mutation. ID is
// only set when a row was created.
type SuccessResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id,omitempty"`
}
