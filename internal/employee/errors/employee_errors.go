package employeeerrors

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
	ErrEmployeeIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee ID already exists",
		http.StatusConflict,
	)
	ErrInvalidJoiningDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid joining_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
