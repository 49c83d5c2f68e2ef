package dto

// UpdateUserReq represents the request body for PUT /users/:id.
// Nil fields were omitted from the request and are left unchanged; a body
// with no fields set is a valid no-op update.
type UpdateUserReq struct {
	Name  *string `json:"name" binding:"omitempty"`
	Email *string `json:"email" binding:"omitempty,email"`
}
