package studenterrors

import (
	"net/http"

	"campus-hrms/internal/shared/apperror"
)

var (
	ErrStudentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Student not found",
		http.StatusNotFound,
	)
	ErrStudentIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Student ID already exists",
		http.StatusConflict,
	)
)
