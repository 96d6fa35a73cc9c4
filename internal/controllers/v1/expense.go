package v1

import (
	"net/http"

	"github.com/couple-budget/backend/internal/httputil"
	"github.com/couple-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// OptionsExpenseList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Expenses
//	@Success		204
//	@Router			/v1/expenses [options]
func (co Controller) OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsExpenseDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Expenses
//	@Success		204
//	@Param			id	path	uint64	true	"ID of the expense"
//	@Router			/v1/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// CreateExpense creates a new expense
//
//	@Summary		Create expense
//	@Description	Creates a new expense for a user
//	@Tags			Expenses
//	@Accept			json
//	@Produce		json
//	@Success		201		{object}	models.ExpenseRecord
//	@Failure		400		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			expense	body		ExpenseEditable	true	"Expense"
//	@Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	expense, err := editable.model()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	record, err := models.CreateExpense(co.DB, expense)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetExpenses returns all expenses of a month
//
//	@Summary		List expenses
//	@Description	Returns the expenses of a month, ordered by date and ID
//	@Tags			Expenses
//	@Produce		json
//	@Success		200			{array}		models.ExpenseRecord
//	@Failure		400			{object}	httpError
//	@Failure		500			{object}	httpError
//	@Param			year		query		int		true	"Year"
//	@Param			month		query		int		true	"Month, between 1 and 12"
//	@Param			user_id		query		uint	false	"Only expenses by this user"
//	@Param			category	query		string	false	"Only expenses with this category"
//	@Router			/v1/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(status(errQueryInvalid), httpError{Error: errQueryInvalid.Error()})
		return
	}

	// Get the fields that are set in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var err error
	if !slices.Contains(setFields, "Year") {
		err = errYearNotSet
	} else if !slices.Contains(setFields, "Month") {
		err = errMonthNotSet
	} else if filter.Month < 1 || filter.Month > 12 {
		err = errMonthOutOfRange
	}

	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	expenses, err := models.Expenses(co.DB, filter.Year, filter.Month, filter.model(queryFields))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// DeleteExpense deletes an expense
//
//	@Summary		Delete expense
//	@Description	Deletes an expense
//	@Tags			Expenses
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		uint64	true	"ID of the expense"
//	@Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DeleteExpense(co.DB, id); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
