package v1

import (
	"errors"
	"net/http"

	"github.com/analizador-gastos/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, errUnauthorized) || errors.Is(err, errInvalidCredentials) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, models.ErrUserEmailNotUnique) || errors.Is(err, models.ErrBudgetNotUnique) || errors.Is(err, models.ErrCategoryNameNotUnique) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var (
	errUnauthorized       = errors.New("you need to log in to use this endpoint")
	errInvalidCredentials = errors.New("no user exists for this email and password combination")
	errEmailPasswordSet   = errors.New("email and password must be set")
	errCategoryNotFound   = errors.New("there is no category matching the legacy category name")
)

// e is a shorthand to build the error response body.
func e(err error) httpError {
	return httpError{Error: err.Error()}
}
