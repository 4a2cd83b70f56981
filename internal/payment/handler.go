package payment

import (
	"net/http"
	"time"

	"gymdesk/internal/api"
	"gymdesk/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		repo: NewRepository(db),
	}
}

// List godoc
// @Summary      List payments
// @Description  Returns the payment ledger, optionally bounded by start_date and end_date (YYYY-MM-DD).
// @Tags         payments
// @Produce      json
// @Param        start_date  query     string  false  "Earliest payment date"
// @Param        end_date    query     string  false  "Latest payment date"
// @Success      200 {array}  PaymentWithMember
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Security     BearerAuth
// @Router       /payments [get]
func (h *Handler) List(c *gin.Context) {
	var from, to *time.Time

	if raw := c.Query("start_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "start_date must be YYYY-MM-DD"})
			return
		}
		from = &parsed
	}
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "end_date must be YYYY-MM-DD"})
			return
		}
		to = &parsed
	}

	payments, err := h.repo.List(c.Request.Context(), from, to)
	if err != nil {
		logger.Errorf("Failed to list payments: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}
