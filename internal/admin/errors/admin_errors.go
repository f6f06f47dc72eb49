package adminerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrAdminNotFound = apperror.New(
		apperror.CodeNotFound,
		"Admin not found",
		http.StatusNotFound,
	)

	ErrAdminAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Admin with the same email already exists",
		http.StatusConflict,
	)

	ErrInvalidAdminID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid admin ID",
		http.StatusBadRequest,
	)

	ErrInvalidOrganizationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid organization ID",
		http.StatusBadRequest,
	)

	ErrNotAdministrativeRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role is not administrative",
		http.StatusBadRequest,
	)

	ErrInvalidPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Password must be at least 8 characters",
		http.StatusBadRequest,
	)
)
