package payroll

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakePayrollService struct {
	generateResp PayrollResponse
	generateErr  error
	searchResp   []PayrollResponse
}

func (f *fakePayrollService) Generate(ctx context.Context, req GeneratePayrollRequest) (PayrollResponse, error) {
	return f.generateResp, f.generateErr
}

func (f *fakePayrollService) Search(ctx context.Context, q PayrollQuery) ([]PayrollResponse, error) {
	return f.searchResp, nil
}

func TestGenerateHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing month rejected by binding", func(t *testing.T) {
		h := NewHandler(&fakePayrollService{}, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body, _ := json.Marshal(gin.H{"employee_id": "EMP-000001", "year": 2026})
		c.Request = httptest.NewRequest(http.MethodPost, "/api/payroll/generate", bytes.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Generate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success caches the idempotent response and releases the lock", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		resp := PayrollResponse{EmployeeID: "EMP-000001", Month: "January", Year: 2026, NetSalary: 61500}
		h := NewHandler(&fakePayrollService{generateResp: resp}, rdb)

		data, _ := json.Marshal(resp)
		mock.ExpectSet("idemp:key", data, idempotencyResponseTTL).SetVal("OK")
		mock.ExpectDel("idemp:key:lock").SetVal(1)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body, _ := json.Marshal(GeneratePayrollRequest{EmployeeID: "EMP-000001", Month: "January", Year: 2026})
		c.Request = httptest.NewRequest(http.MethodPost, "/api/payroll/generate", bytes.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("idempotency_cache_key", "idemp:key")
		c.Set("idempotency_lock_key", "idemp:key:lock")

		h.Generate(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"net_salary":61500`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSearchHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewHandler(&fakePayrollService{searchResp: []PayrollResponse{
		{EmployeeID: "EMP-000001", Month: "January", Year: 2026},
	}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/payroll?employee_id=EMP-000001", nil)

	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "EMP-000001")
}
