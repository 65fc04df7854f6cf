package dto

type CreateCommentDTO struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Content string `json:"content" validate:"required"`
}
