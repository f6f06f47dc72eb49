package departmenterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)

	ErrDepartmentCodeExists = apperror.New(
		apperror.CodeConflict,
		"Department with the same code already exists",
		http.StatusConflict,
	)

	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusBadRequest,
	)

	ErrInvalidOrganizationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid organization ID",
		http.StatusBadRequest,
	)

	ErrInvalidParentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid parent department ID",
		http.StatusBadRequest,
	)

	ErrParentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Parent department does not exist in this organization",
		http.StatusBadRequest,
	)

	ErrParentCycle = apperror.New(
		apperror.CodeInvalidState,
		"Department cannot be its own ancestor",
		http.StatusBadRequest,
	)
)
