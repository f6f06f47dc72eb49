package organizationerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Organization not found",
		http.StatusNotFound,
	)

	ErrOrganizationCodeExists = apperror.New(
		apperror.CodeConflict,
		"Organization with the same code already exists",
		http.StatusConflict,
	)

	ErrInvalidOrganizationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid organization ID",
		http.StatusBadRequest,
	)
)
