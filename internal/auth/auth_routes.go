package auth

import (
	"campus-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver middleware.SubjectResolver) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", middleware.RateLimitByIP(1, 5), h.Register)
		authGroup.POST("/login", middleware.RateLimitByIP(1, 5), h.Login)
		authGroup.GET("/me", middleware.AuthMiddleware(resolver), h.Me)
	}
}
