package finance

import (
	"encoding/json"
	"net/http"
	"time"

	"campus-hrms/internal/shared/apperror"
	"campus-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyResponseTTL = 24 * time.Hour

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func (h *Handler) CreateBudget(c *gin.Context) {
	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateBudget(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListBudgets(c *gin.Context) {
	resp, err := h.service.ListBudgets(c.Request.Context(), c.Query("fiscal_year"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateBudget(c *gin.Context) {
	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateBudget(c.Request.Context(), c.Param("budget_id"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	if req.CreatedBy == "" {
		req.CreatedBy = c.GetString("user_email")
	}

	resp, err := h.service.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		h.releaseIdempotencyLock(c)
		writeError(c, err)
		return
	}

	h.storeIdempotentResponse(c, resp)

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListTransactions(c *gin.Context) {
	var q TransactionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ListTransactions(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) storeIdempotentResponse(c *gin.Context, resp TransactionResponse) {
	cacheKey := c.GetString("idempotency_cache_key")
	if cacheKey == "" || h.rdb == nil {
		return
	}

	if data, err := json.Marshal(resp); err == nil {
		h.rdb.Set(c.Request.Context(), cacheKey, data, idempotencyResponseTTL)
	}
	if lockKey := c.GetString("idempotency_lock_key"); lockKey != "" {
		h.rdb.Del(c.Request.Context(), lockKey)
	}
}

func (h *Handler) releaseIdempotencyLock(c *gin.Context) {
	if h.rdb == nil {
		return
	}
	if lockKey := c.GetString("idempotency_lock_key"); lockKey != "" {
		h.rdb.Del(c.Request.Context(), lockKey)
	}
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
