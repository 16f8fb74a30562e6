package dto

// CreateCategoryRequest is the payload for adding a category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryResponse confirms a created category
type CategoryResponse struct {
	Message string `json:"message"`
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
}

// MessageResponse is a bare confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}
