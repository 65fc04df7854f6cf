package dto

import "portfolio-backend/model"

type CreateMessageDTO struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// MessageCreatedResponse is the envelope the contact form expects.
type MessageCreatedResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    *model.Message `json:"data"`
}

// MessageRejectedResponse mirrors MessageCreatedResponse for the 400 case.
type MessageRejectedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}
