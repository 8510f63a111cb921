package dashboard

import (
	"campus-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver middleware.SubjectResolver) {
	group := r.Group("/dashboard")
	group.Use(middleware.AuthMiddleware(resolver))
	{
		group.GET("/stats", h.GetStats)
	}
}
