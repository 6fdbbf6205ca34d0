package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/job-analyzer/internal/types"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var missingInput *types.ErrMissingJobInput
	if errors.As(err, &missingInput) {
		return http.StatusBadRequest
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
