package payroll

import (
	"campus-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver middleware.SubjectResolver, rdb *redis.Client) {
	group := r.Group("/payroll")
	group.Use(middleware.AuthMiddleware(resolver))
	{
		group.POST("/generate", middleware.RateLimitByUser(5, 10), middleware.Idempotency(rdb), h.Generate)
		group.GET("", h.Search)
	}
}
