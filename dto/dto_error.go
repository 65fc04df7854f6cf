package dto

// ErrorResponse is the generic error body for 400/404/500 responses.
type ErrorResponse struct {
	Message string `json:"message" example:"invalid body"`
}

// ConfirmationResponse acknowledges a delete.
type ConfirmationResponse struct {
	Message string `json:"message" example:"Message deleted successfully"`
}
