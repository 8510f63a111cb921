package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app errors pass through", func(t *testing.T) {
		httpErr := ToHTTP(ErrConflict)
		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, CodeConflict, httpErr.Code)
	})

	t.Run("wrapped app errors unwrap", func(t *testing.T) {
		wrapped := fmt.Errorf("saving record: %w", ErrNotFound)
		httpErr := ToHTTP(wrapped)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})

	t.Run("unknown errors collapse to a generic 500", func(t *testing.T) {
		httpErr := ToHTTP(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "connection refused")
	})
}

func TestFieldHelpers(t *testing.T) {
	assert.Equal(t, "Employee Id is required", RequiredField("Employee Id").Message)
	assert.Equal(t, http.StatusBadRequest, InvalidField("Email").HTTPStatus)
}
