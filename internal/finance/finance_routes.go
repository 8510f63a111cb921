package finance

import (
	"campus-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver middleware.SubjectResolver, rdb *redis.Client) {
	budgets := r.Group("/budgets")
	budgets.Use(middleware.AuthMiddleware(resolver))
	{
		budgets.POST("", middleware.RateLimitByUser(5, 10), h.CreateBudget)
		budgets.GET("", h.ListBudgets)
		budgets.PUT("/:budget_id", middleware.RateLimitByUser(5, 10), h.UpdateBudget)
	}

	transactions := r.Group("/transactions")
	transactions.Use(middleware.AuthMiddleware(resolver))
	{
		transactions.POST("", middleware.RateLimitByUser(5, 10), middleware.Idempotency(rdb), h.CreateTransaction)
		transactions.GET("", h.ListTransactions)
	}
}
