package attendance

import (
	"campus-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver middleware.SubjectResolver) {
	group := r.Group("/attendance")
	group.Use(middleware.AuthMiddleware(resolver))
	{
		group.POST("", middleware.RateLimitByUser(5, 10), h.Mark)
		group.GET("", h.Search)
	}
}
