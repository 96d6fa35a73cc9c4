package v1

import (
	"net/http"

	"github.com/couple-budget/backend/internal/httputil"
	"github.com/couple-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterSummaryRoutes registers the routes for the monthly summary with
// the RouterGroup that is passed.
func (co Controller) RegisterSummaryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsSummary)
		r.GET("", co.GetSummary)
	}
}

// OptionsSummary returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Summary
//	@Success		204
//	@Router			/v1/summary [options]
func (co Controller) OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetSummary returns the usage report for a month
//
//	@Summary		Get summary
//	@Description	Returns the monthly usage report with per-user and per-category totals
//	@Tags			Summary
//	@Produce		json
//	@Success		200		{object}	models.MonthSummary
//	@Failure		400		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			year	query		int	true	"Year"
//	@Param			month	query		int	true	"Month, between 1 and 12"
//	@Router			/v1/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	year, month, err := parseMonthQuery(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	summary, err := models.Summarize(co.DB, year, month)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
