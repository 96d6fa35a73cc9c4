package v1

import (
	"errors"
	"net/http"

	"github.com/couple-budget/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no budget for the month you specified"`
}

// status returns the appropriate HTTP status for a model error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrBudgetNotFound) || errors.Is(err, models.ErrExpenseNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Query string errors
var (
	errYearNotSet      = errors.New("the year query parameter must be set")
	errMonthNotSet     = errors.New("the month query parameter must be set")
	errMonthOutOfRange = errors.New("the month must be between 1 and 12")
	errQueryInvalid    = errors.New("the query string contains invalid or un-parseable data. Please check and try again")
)
