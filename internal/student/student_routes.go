package student

import (
	"campus-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver middleware.SubjectResolver) {
	group := r.Group("/students")
	group.Use(middleware.AuthMiddleware(resolver))
	{
		group.POST("", middleware.RateLimitByUser(5, 10), h.Create)
		group.GET("", h.GetAll)
		group.GET("/:student_id", h.GetByID)
		group.PUT("/:student_id", middleware.RateLimitByUser(5, 10), h.Update)
		group.DELETE("/:student_id", middleware.RateLimitByUser(5, 10), h.Delete)
	}
}
