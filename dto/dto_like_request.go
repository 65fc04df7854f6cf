package dto

// LikeRequestDTO carries the liking identity. The email is taken at face
// value; there is no account to verify it against.
type LikeRequestDTO struct {
	Email string `json:"email" validate:"required"`
}
