package v1

import (
	"net/http"

	"github.com/couple-budget/backend/internal/httputil"
	"github.com/couple-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func (co Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsUsers)
		r.GET("", co.GetUsers)
	}
}

// OptionsUsers returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Users
//	@Success		204
//	@Router			/v1/users [options]
func (co Controller) OptionsUsers(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetUsers returns the household members
//
//	@Summary		List users
//	@Description	Returns the household members, ordered by ID
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		models.User
//	@Failure		500	{object}	httpError
//	@Router			/v1/users [get]
func (co Controller) GetUsers(c *gin.Context) {
	users, err := models.Users(co.DB)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}
