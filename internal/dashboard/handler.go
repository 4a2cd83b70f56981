package dashboard

import (
	"net/http"

	"gymdesk/internal/api"
	"gymdesk/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		service: NewService(NewRepository(db)),
	}
}

// Stats godoc
// @Summary      Dashboard stats
// @Description  Active-member count, subscriptions expiring within a week, and revenue for the current month.
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} Stats
// @Failure      500 {object} api.ErrorResponse
// @Security     BearerAuth
// @Router       /dashboard/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to load dashboard stats: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Revenue godoc
// @Summary      Seven-day revenue series
// @Tags         dashboard
// @Produce      json
// @Success      200 {array}  RevenuePoint
// @Failure      500 {object} api.ErrorResponse
// @Security     BearerAuth
// @Router       /dashboard/revenue [get]
func (h *Handler) Revenue(c *gin.Context) {
	series, err := h.service.Revenue(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to load revenue series: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load revenue"})
		return
	}

	c.JSON(http.StatusOK, series)
}

// Activity godoc
// @Summary      Recent check-ins
// @Tags         dashboard
// @Produce      json
// @Success      200 {array}  Activity
// @Failure      500 {object} api.ErrorResponse
// @Security     BearerAuth
// @Router       /dashboard/activity [get]
func (h *Handler) Activity(c *gin.Context) {
	activity, err := h.service.RecentActivity(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to load recent activity: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load activity"})
		return
	}

	c.JSON(http.StatusOK, activity)
}
