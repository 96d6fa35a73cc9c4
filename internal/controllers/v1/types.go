package v1

import (
	"github.com/couple-budget/backend/internal/models"
	"github.com/couple-budget/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// BudgetEditable are all values for the monthly budget that can be set by the API.
type BudgetEditable struct {
	Year   int    `json:"year" binding:"required" example:"2024"`
	Month  int    `json:"month" binding:"required,min=1,max=12" example:"3"`
	Amount *int64 `json:"amount" binding:"required" example:"300000"`
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Year:   editable.Year,
		Month:  editable.Month,
		Amount: *editable.Amount,
	}
}

// ExpenseEditable are all values for an expense that can be set by the API.
type ExpenseEditable struct {
	Date     string `json:"date" binding:"required" example:"2024-03-05"`
	UserID   uint   `json:"user_id" example:"1"`
	Category string `json:"category" example:"food" default:""`
	Memo     string `json:"memo" example:"groceries" default:""`
	Amount   *int64 `json:"amount" binding:"required" example:"5000"`
}

// model returns the database resource for the API representation of the editable fields.
//
// The date string is parsed here so that malformed dates are rejected before
// anything is written.
func (editable ExpenseEditable) model() (models.Expense, error) {
	date, err := types.ParseDate(editable.Date)
	if err != nil {
		return models.Expense{}, err
	}

	return models.Expense{
		Date:     date,
		UserID:   editable.UserID,
		Category: editable.Category,
		Memo:     editable.Memo,
		Amount:   *editable.Amount,
	}, nil
}

// ExpenseQueryFilter are all query parameters the expense list endpoint accepts.
//
// Year and Month select the month window and are handled explicitly, they are
// not part of the record filter.
type ExpenseQueryFilter struct {
	Year     int    `form:"year" filterField:"false" example:"2024"`
	Month    int    `form:"month" filterField:"false" example:"3"`
	UserID   uint   `form:"user_id" example:"1"`
	Category string `form:"category" example:"food"`
}

// model returns the filter for the model query.
//
// Only fields that are set in the query string are converted so that zero
// values filter explicitly instead of being ignored.
func (f ExpenseQueryFilter) model(queryFields []any) models.ExpenseFilter {
	var filter models.ExpenseFilter

	if slices.Contains(queryFields, "UserID") {
		filter.UserID = &f.UserID
	}

	if slices.Contains(queryFields, "Category") {
		filter.Category = &f.Category
	}

	return filter
}

// parseMonthQuery parses and validates the year and month query parameters.
func parseMonthQuery(c *gin.Context) (int, int, error) {
	var query struct {
		Year  *int `form:"year"`
		Month *int `form:"month"`
	}

	if err := c.ShouldBindQuery(&query); err != nil {
		return 0, 0, errQueryInvalid
	}

	if query.Year == nil {
		return 0, 0, errYearNotSet
	}

	if query.Month == nil {
		return 0, 0, errMonthNotSet
	}

	if *query.Month < 1 || *query.Month > 12 {
		return 0, 0, errMonthOutOfRange
	}

	return *query.Year, *query.Month, nil
}
