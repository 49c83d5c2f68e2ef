// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// CreateUserReq represents the request body for POST /users.
// It uses Gin's binding tags for validation (required fields, email format).
// Whitespace-only names pass the required tag and are rejected by the
// handler's trim check.
type CreateUserReq struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}
