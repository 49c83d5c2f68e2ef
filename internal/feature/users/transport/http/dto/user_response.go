package dto

import "user_service/internal/feature/users/domain/entity"

// UserResponse is the public view of a user, stripped of storage metadata.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ErrorResponse is the common error body returned by the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewUserResponse maps an entity to its public view.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// NewUserListResponse maps a slice of entities to public views. The
// result is never nil, so an empty list serializes as [].
func NewUserListResponse(users []entity.User) []UserResponse {
	res := make([]UserResponse, 0, len(users))
	for i := range users {
		res = append(res, NewUserResponse(&users[i]))
	}
	return res
}
