// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"user_service/internal/feature/users/domain/entity"
	"user_service/internal/feature/users/transport/http/dto"
	"user_service/internal/feature/users/usecase"
)

// UserUsecase defines the user management operations used by the handler.
// Following Go convention, the interface is defined by the consumer
// (handler) rather than the provider (usecase).
type UserUsecase interface {
	// CreateUser registers a new user after enforcing email uniqueness.
	CreateUser(ctx context.Context, params usecase.CreateUserParams) (*entity.User, error)
	// ListUsers returns all users.
	ListUsers(ctx context.Context) ([]entity.User, error)
	// GetUser retrieves a single user by ID.
	GetUser(ctx context.Context, id string) (*entity.User, error)
	// DeleteUser removes a single user by ID.
	DeleteUser(ctx context.Context, id string) error
	// UpdateUser applies a partial update to a single user.
	UpdateUser(ctx context.Context, id string, params usecase.UpdateUserParams) (*entity.User, error)
}

// UserHandler handles HTTP requests for user management. It depends on
// the UserUsecase interface and deals in JSON requests/responses.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new instance of UserHandler.
// Constructor for dependency injection.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Create handles POST /users.
// - binds the request JSON to CreateUserReq, 422 on validation failure
// - returns 400 when the email is already taken
// - returns 201 with the created user on success
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "name cannot be empty"})
		return
	}
	user, err := h.users.CreateUser(c.Request.Context(), usecase.CreateUserParams{Name: req.Name, Email: req.Email})
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		h.serverError(c, "create user failed", err)
		return
	}
	slog.Info("user created", "id", user.ID, "email", user.Email)
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// List handles GET /users. Order follows the store; an empty collection
// yields an empty array.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		h.serverError(c, "list users failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserListResponse(users))
}

// Get handles GET /users/:id.
// Unknown and malformed IDs both return 404.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		h.serverError(c, "get user failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Delete handles DELETE /users/:id.
// Returns 204 with an empty body when exactly one user was removed.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		h.serverError(c, "delete user failed", err)
		return
	}
	slog.Info("user deleted", "id", c.Param("id"))
	c.Status(http.StatusNoContent)
}

// Update handles PUT /users/:id.
// - binds the request JSON to UpdateUserReq, 422 on validation failure
// - returns 400 when the email is held by a different user
// - returns 404 for unknown or malformed IDs
// - returns 200 with the updated user on success
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "name cannot be empty"})
		return
	}
	user, err := h.users.UpdateUser(c.Request.Context(), c.Param("id"), usecase.UpdateUserParams{Name: req.Name, Email: req.Email})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		default:
			h.serverError(c, "update user failed", err)
		}
		return
	}
	slog.Info("user updated", "id", user.ID)
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// serverError logs a store failure and answers with an opaque 500. Driver
// details never reach the client.
func (h *UserHandler) serverError(c *gin.Context, msg string, err error) {
	slog.Error(msg, "error", err, "remote_addr", c.ClientIP())
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
}
