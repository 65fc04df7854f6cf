package dto

// PostFieldsDTO is the body for POST /api/posts and PUT /api/posts/:id.
// An update replaces the whole editable field set, so both operations
// validate identically: content is mandatory only for blog posts.
type PostFieldsDTO struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"imageUrl"    validate:"required"`
	Category    string `json:"category"    validate:"required,oneof=gallery blog"`
	Content     string `json:"content"     validate:"required_if=Category blog"`
}
