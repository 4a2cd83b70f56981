package attendance

import (
	"errors"
	"net/http"

	"gymdesk/internal/api"
	"gymdesk/internal/logger"
	"gymdesk/internal/metrics"
	"gymdesk/internal/subscription"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		service: NewService(NewRepository(db), subscription.NewRepository(db)),
	}
}

type CheckInResponse struct {
	Message    string `json:"message" example:"Check-in Successful"`
	MemberName string `json:"member_name"`
	Time       string `json:"time" example:"18:42:07"`
}

// CheckIn godoc
// @Summary      Check a member in
// @Description  Resolves the identifier (member id or phone), verifies the member holds a valid subscription and records today's attendance.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        request  body      CheckInRequest  true  "Identifier and method"
// @Success      201      {object}  CheckInResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Security     BearerAuth
// @Router       /attendance/checkin [post]
func (h *Handler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	method := req.Method
	if method == "" {
		method = MethodManual
	}

	result, err := h.service.CheckIn(c.Request.Context(), req.Identifier, method)
	if err != nil {
		switch {
		case errors.Is(err, ErrMemberNotFound):
			metrics.RecordCheckIn(string(method), "not_found")
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "member not found"})
		case errors.Is(err, ErrNoActiveSubscription):
			metrics.RecordCheckIn(string(method), "denied")
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrAlreadyCheckedIn):
			metrics.RecordCheckIn(string(method), "duplicate")
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			metrics.RecordCheckIn(string(method), "error")
			logger.Errorf("Check-in failed for identifier %q: %v", req.Identifier, err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "check-in failed"})
		}
		return
	}

	logger.Infof("Check-in: member=%s method=%s", result.MemberName, method)
	metrics.RecordCheckIn(string(method), "success")

	c.JSON(http.StatusCreated, CheckInResponse{
		Message:    "Check-in Successful",
		MemberName: result.MemberName,
		Time:       result.CheckInTime,
	})
}

// Today godoc
// @Summary      Today's attendance
// @Description  Returns today's check-ins with member identity, newest first.
// @Tags         attendance
// @Produce      json
// @Success      200 {array}  RecordWithMember
// @Failure      500 {object} api.ErrorResponse
// @Security     BearerAuth
// @Router       /attendance/today [get]
func (h *Handler) Today(c *gin.Context) {
	records, err := h.service.TodaysAttendance(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to list today's attendance: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load attendance"})
		return
	}

	c.JSON(http.StatusOK, records)
}
