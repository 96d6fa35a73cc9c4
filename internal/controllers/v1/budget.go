package v1

import (
	"net/http"

	"github.com/couple-budget/backend/internal/httputil"
	"github.com/couple-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for the monthly budget with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsBudget)
		r.GET("", co.GetBudget)
		r.POST("", co.SetBudget)
	}
}

// OptionsBudget returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budget
//	@Success		204
//	@Router			/v1/budget [options]
func (co Controller) OptionsBudget(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// GetBudget returns the budget for a specific month
//
//	@Summary		Get budget
//	@Description	Returns the budget for the specified month
//	@Tags			Budget
//	@Produce		json
//	@Success		200		{object}	models.Budget
//	@Failure		400		{object}	httpError
//	@Failure		404		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			year	query		int	true	"Year"
//	@Param			month	query		int	true	"Month, between 1 and 12"
//	@Router			/v1/budget [get]
func (co Controller) GetBudget(c *gin.Context) {
	year, month, err := parseMonthQuery(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	budget, err := models.BudgetForMonth(co.DB, year, month)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, budget)
}

// SetBudget sets the budget for a specific month
//
//	@Summary		Set budget
//	@Description	Sets the budget for a month, overwriting an existing amount
//	@Tags			Budget
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	models.Budget
//	@Failure		400		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			budget	body		BudgetEditable	true	"Budget"
//	@Router			/v1/budget [post]
func (co Controller) SetBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	data := editable.model()

	budget, err := models.SetBudget(co.DB, data.Year, data.Month, data.Amount)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, budget)
}
