// Package router builds the HTTP route table for the service.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	userhandler "user_service/internal/feature/users/transport/handler"
	"user_service/internal/platform/http/handler"
)

// NewRouter wires the handlers into a gin engine.
func NewRouter(users *userhandler.UserHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// liveness probe
	r.GET("/healthz", handler.Health)

	u := r.Group("/users")
	{
		u.POST("", users.Create)
		u.GET("", users.List)
		u.GET("/:id", users.Get)
		u.PUT("/:id", users.Update)
		u.DELETE("/:id", users.Delete)
	}

	return r
}
