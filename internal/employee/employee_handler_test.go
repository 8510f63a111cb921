package employee

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	employeeerrors "campus-hrms/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	createResp EmployeeResponse
	createErr  error
	getResp    EmployeeResponse
	getErr     error
	deleteErr  error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	return f.createResp, f.createErr
}

func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	return nil, nil
}

func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	return nil, nil
}

func (f *fakeEmployeeService) GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeResponse, error) {
	return f.getResp, f.getErr
}

func (f *fakeEmployeeService) Update(ctx context.Context, employeeID string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	return EmployeeResponse{}, nil
}

func (f *fakeEmployeeService) Delete(ctx context.Context, employeeID string) error {
	return f.deleteErr
}

func performCreate(h *Handler, body any) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	data, _ := json.Marshal(body)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/employees", bytes.NewReader(data))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)
	return w
}

func TestCreateEmployeeHandler(t *testing.T) {
	t.Run("created responds 200", func(t *testing.T) {
		h := NewHandler(&fakeEmployeeService{
			createResp: EmployeeResponse{EmployeeID: "EMP-000001", Name: "Asha Verma"},
		})

		w := performCreate(h, CreateEmployeeRequest{
			Name:         "Asha Verma",
			Email:        "asha@campus.edu",
			Phone:        "9999999999",
			Department:   "Physics",
			Designation:  "Professor",
			EmployeeType: TypeFaculty,
			JoiningDate:  "2024-07-01",
			BasicSalary:  50000,
			CTC:          900000,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":true`)
		assert.Contains(t, w.Body.String(), "EMP-000001")
	})

	t.Run("zero salary figures pass binding", func(t *testing.T) {
		h := NewHandler(&fakeEmployeeService{
			createResp: EmployeeResponse{EmployeeID: "EMP-000002"},
		})

		w := performCreate(h, CreateEmployeeRequest{
			Name:         "Unpaid Intern",
			Email:        "intern@campus.edu",
			Phone:        "9999999999",
			Department:   "Physics",
			Designation:  "Intern",
			EmployeeType: TypeFaculty,
			JoiningDate:  "2024-07-01",
			BasicSalary:  0,
			CTC:          0,
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("validation failure returns 400 before the service runs", func(t *testing.T) {
		h := NewHandler(&fakeEmployeeService{createErr: employeeerrors.ErrEmployeeIDAlreadyExists})

		w := performCreate(h, gin.H{"name": "No Email"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":false`)
	})

	t.Run("invalid employee_type rejected by binding", func(t *testing.T) {
		h := NewHandler(&fakeEmployeeService{})

		w := performCreate(h, gin.H{
			"name": "X", "email": "x@campus.edu", "phone": "1",
			"department": "D", "designation": "E", "employee_type": "contractor",
			"joining_date": "2024-07-01", "basic_salary": 1, "ctc": 1,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("conflict surfaces as 409", func(t *testing.T) {
		h := NewHandler(&fakeEmployeeService{createErr: employeeerrors.ErrEmployeeIDAlreadyExists})

		w := performCreate(h, CreateEmployeeRequest{
			EmployeeID:   "EMP-000001",
			Name:         "Asha Verma",
			Email:        "asha@campus.edu",
			Phone:        "9999999999",
			Department:   "Physics",
			Designation:  "Professor",
			EmployeeType: TypeFaculty,
			JoiningDate:  "2024-07-01",
			BasicSalary:  50000,
			CTC:          900000,
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
	})
}

func TestGetEmployeeHandler(t *testing.T) {
	t.Run("not found surfaces as 404", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		h := NewHandler(&fakeEmployeeService{getErr: employeeerrors.ErrEmployeeNotFound})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/employees/EMP-MISSING", nil)
		c.Params = gin.Params{{Key: "employee_id", Value: "EMP-MISSING"}}

		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})
}
