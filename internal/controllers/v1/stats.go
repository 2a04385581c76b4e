package v1

import (
	"net/http"
	"time"

	"github.com/analizador-gastos/backend/internal/httputil"
	"github.com/analizador-gastos/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterStatsRoutes registers the routes for statistics with
// the RouterGroup that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStats)
	r.GET("", GetStats)
}

type Stats struct {
	From       time.Time            `json:"from" example:"2024-03-01T00:00:00Z"` // Start of the reporting range
	To         time.Time            `json:"to" example:"2024-03-31T00:00:00Z"`   // End of the reporting range
	Total      decimal.Decimal      `json:"total" example:"245800.50"`           // Total spent in the range
	Categories []models.CategorySum `json:"categories"`                          // Totals per category
	Months     []models.MonthSum    `json:"months"`                              // Totals per calendar month
}

type StatsResponse struct {
	Data  *Stats  `json:"data"`                                                            // Data for the statistics
	Error *string `json:"error" example:"there is a problem with the database connection"` // The error, if any occurred
}

type StatsQueryFilter struct {
	From time.Time `form:"from" time_format:"2006-01-02"` // Start of the range (YYYY-MM-DD). Defaults to the start of the current month.
	To   time.Time `form:"to" time_format:"2006-01-02"`   // End of the range (YYYY-MM-DD). Defaults to today.
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Stats
// @Success		204
// @Router			/v1/stats [options]
func OptionsStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get statistics
// @Description	Returns spending totals for a date range, overall, per category and per month
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	StatsResponse
// @Failure		400	{object}	StatsResponse
// @Failure		500	{object}	StatsResponse
// @Router			/v1/stats [get]
// @Param			from	query	string	false	"Start of the range (YYYY-MM-DD). Defaults to the start of the current month."
// @Param			to		query	string	false	"End of the range (YYYY-MM-DD). Defaults to today."
func GetStats(c *gin.Context) {
	var filter StatsQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, StatsResponse{Error: &s})
		return
	}

	now := time.Now()
	if filter.From.IsZero() {
		filter.From = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	if filter.To.IsZero() {
		filter.To = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	userID := currentUserID(c)

	total, err := models.ExpenseSum(models.DB, userID, filter.From, filter.To)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatsResponse{Error: &s})
		return
	}

	categories, err := models.CategorySums(models.DB, userID, filter.From, filter.To)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatsResponse{Error: &s})
		return
	}

	months, err := models.MonthSums(models.DB, userID, filter.From, filter.To)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatsResponse{Error: &s})
		return
	}

	data := Stats{
		From:       filter.From,
		To:         filter.To,
		Total:      total,
		Categories: categories,
		Months:     months,
	}

	c.JSON(http.StatusOK, StatsResponse{Data: &data})
}
