package member

import (
	"errors"
	"net/http"

	"gymdesk/internal/api"
	"gymdesk/internal/attendance"
	"gymdesk/internal/email"
	"gymdesk/internal/logger"
	"gymdesk/internal/metrics"
	"gymdesk/internal/payment"
	"gymdesk/internal/subscription"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB, emailService *email.Service) *Handler {
	return &Handler{
		service: NewService(
			NewRepository(db),
			subscription.NewRepository(db),
			payment.NewRepository(db),
			attendance.NewRepository(db),
			emailService,
		),
	}
}

// Create godoc
// @Summary      Onboard a member
// @Description  Creates a member together with their first subscription and payment as one unit.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request  body      CreateMemberRequest  true  "Profile, plan and payment"
// @Success      201      {object}  Member
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Security     BearerAuth
// @Router       /members [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.service.CreateWithSubscription(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		logger.Errorf("Failed to onboard member %q: %v", req.Profile.FullName, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create member"})
		return
	}

	logger.Infof("Member onboarded: id=%s plan=%s", m.ID, req.Plan.PlanName)
	metrics.RecordOnboarding()
	metrics.RecordPayment(req.Payment.Method)

	c.JSON(http.StatusCreated, m)
}

// List godoc
// @Summary      List members
// @Tags         members
// @Produce      json
// @Param        search  query     string  false  "Match against name or phone"
// @Param        status  query     string  false  "Filter by lifecycle status"  Enums(all, active, inactive, expired)
// @Success      200 {array}  Member
// @Failure      500 {object} api.ErrorResponse
// @Security     BearerAuth
// @Router       /members [get]
func (h *Handler) List(c *gin.Context) {
	members, err := h.service.List(c.Request.Context(), c.Query("search"), c.Query("status"))
	if err != nil {
		logger.Errorf("Failed to list members: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load members"})
		return
	}

	c.JSON(http.StatusOK, members)
}

// Get godoc
// @Summary      Get a member
// @Tags         members
// @Produce      json
// @Param        memberID  path      string  true  "Member ID"
// @Success      200 {object} Member
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Security     BearerAuth
// @Router       /members/{memberID} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid member id"})
		return
	}

	m, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "member not found"})
			return
		}
		logger.Errorf("Failed to get member %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load member"})
		return
	}

	c.JSON(http.StatusOK, m)
}

// Update godoc
// @Summary      Update a member
// @Description  Patches only the fields present in the request body.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        memberID  path      string               true  "Member ID"
// @Param        request   body      UpdateMemberRequest  true  "Fields to change"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Security     BearerAuth
// @Router       /members/{memberID} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid member id"})
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrMemberNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "member not found"})
		default:
			logger.Errorf("Failed to update member %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update member"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "member updated"})
}

// History godoc
// @Summary      Member history
// @Description  Returns the member's subscriptions, payments and attendance, newest first.
// @Tags         members
// @Produce      json
// @Param        memberID  path      string  true  "Member ID"
// @Success      200 {object} History
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Security     BearerAuth
// @Router       /members/{memberID}/history [get]
func (h *Handler) History(c *gin.Context) {
	id, err := uuid.Parse(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid member id"})
		return
	}

	history, err := h.service.History(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "member not found"})
			return
		}
		logger.Errorf("Failed to load history for member %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load member history"})
		return
	}

	c.JSON(http.StatusOK, history)
}
