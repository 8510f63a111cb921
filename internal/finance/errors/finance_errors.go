package financeerrors

import (
	"net/http"

	"campus-hrms/internal/shared/apperror"
)

var ErrBudgetNotFound = apperror.New(
	apperror.CodeNotFound,
	"Budget not found",
	http.StatusNotFound,
)
