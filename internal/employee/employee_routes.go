package employee

import (
	"campus-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver middleware.SubjectResolver) {
	group := r.Group("/employees")
	group.Use(middleware.AuthMiddleware(resolver))
	{
		group.POST("", middleware.RateLimitByUser(5, 10), h.Create)
		group.GET("", h.GetAll)
		group.GET("/options", h.GetOptions)
		group.GET("/:employee_id", h.GetByID)
		group.PUT("/:employee_id", middleware.RateLimitByUser(5, 10), h.Update)
		group.DELETE("/:employee_id", middleware.RateLimitByUser(5, 10), h.Delete)
	}
}
