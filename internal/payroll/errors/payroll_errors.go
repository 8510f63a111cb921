package payrollerrors

import (
	"net/http"

	"campus-hrms/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrAlreadyGenerated = apperror.New(
		apperror.CodeConflict,
		"Payroll already generated for this period",
		http.StatusConflict,
	)
)
