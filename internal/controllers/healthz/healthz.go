// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/analizador-gastos/backend/internal/httputil"
	"github.com/analizador-gastos/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the routes for the healthz endpoint.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// Options returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns data about the application health
//
//	@Summary		Get health
//	@Description	Returns the application health and, if not healthy, an error
//	@Tags			General
//	@Success		204
//	@Failure		500	{object}	HealthResponse
//	@Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, HealthResponse{Error: &s})
		return
	}

	err = sqlDB.Ping()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, HealthResponse{Error: &s})
		return
	}

	c.Status(http.StatusNoContent)
}

type HealthResponse struct {
	Error *string `json:"error" example:"the database cannot be accessed"`
}
