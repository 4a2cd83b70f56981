package subscription

import (
	"errors"
	"net/http"

	"gymdesk/internal/api"
	"gymdesk/internal/logger"
	"gymdesk/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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

// List godoc
// @Summary      List subscriptions
// @Description  Returns all subscriptions with member identity, remaining days and derived status.
// @Tags         subscriptions
// @Produce      json
// @Success      200 {array}  SubscriptionWithMember
// @Failure      500 {object} api.ErrorResponse
// @Security     BearerAuth
// @Router       /subscriptions [get]
func (h *Handler) List(c *gin.Context) {
	subs, err := h.service.ListWithStatus(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to list subscriptions: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load subscriptions"})
		return
	}

	c.JSON(http.StatusOK, subs)
}

// Renew godoc
// @Summary      Renew a member's subscription
// @Description  Creates a new subscription and payment for the member, deactivates prior subscriptions and sets the member active.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        memberID  path      string        true  "Member ID"
// @Param        request   body      RenewRequest  true  "Renewal data"
// @Success      201       {object}  Subscription
// @Failure      400       {object}  api.ErrorResponse
// @Failure      500       {object}  api.ErrorResponse
// @Security     BearerAuth
// @Router       /members/{memberID}/subscriptions [post]
func (h *Handler) Renew(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid member id"})
		return
	}

	var req RenewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	sub, err := h.service.Renew(c.Request.Context(), memberID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidRenewal) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		logger.Errorf("Failed to renew subscription for member %s: %v", memberID, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to renew subscription"})
		return
	}

	logger.Infof("Subscription renewed: plan=%s member=%s", sub.PlanName, memberID)
	metrics.RecordRenewal()
	metrics.RecordPayment(req.PaymentMethod)

	c.JSON(http.StatusCreated, sub)
}
