package api

import (
	"errors"
	"net/http"

	"hotel-ops/internal/domain/activity"
	reqdto "hotel-ops/internal/handler/dto/request"
	resdto "hotel-ops/internal/handler/dto/response"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	commands commands.ActivityCommands
	queries  queries.ActivityQueries
}

func NewActivityHandler(cmds commands.ActivityCommands, qs queries.ActivityQueries) *ActivityHandler {
	return &ActivityHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create activity
// @Description Book a service against a reservation
// @Tags activities
// @Accept json
// @Produce json
// @Param request body reqdto.CreateActivityRequest true "Activity booking"
// @Success 201 {object} resdto.ActivityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /activities [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req reqdto.CreateActivityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	act, err := h.commands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, errs.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid activity type",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromActivity(act))
}

// @Summary Get activity
// @Description Get activity by ID
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} resdto.ActivityResponse
// @Failure 404 {object} map[string]string
// @Router /activities/{id} [get]
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	act, err := h.queries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrActivityNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Activity not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromActivity(act))
}

// @Summary List activities
// @Description List activities, optionally filtered by reservation, guest or status
// @Tags activities
// @Produce json
// @Param reservationId query string false "Filter by reservation ID"
// @Param guestId query string false "Filter by guest ID"
// @Param status query string false "Filter by status"
// @Success 200 {array} resdto.ActivityResponse
// @Router /activities [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	ctx := c.Request.Context()

	var list []activity.Activity
	switch {
	case c.Query("reservationId") != "":
		list = h.queries.ListByReservation(ctx, c.Query("reservationId"))
	case c.Query("guestId") != "":
		list = h.queries.ListByGuest(ctx, c.Query("guestId"))
	case c.Query("status") != "":
		list = h.queries.ListByStatus(ctx, activity.Status(c.Query("status")))
	default:
		list = h.queries.List(ctx)
	}

	c.JSON(http.StatusOK, resdto.FromActivities(list))
}

// @Summary Complete activity
// @Description Mark a pending activity as completed, making it billable
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} resdto.ActivityResponse
// @Failure 404 {object} map[string]string
// @Router /activities/{id}/complete [post]
func (h *ActivityHandler) CompleteActivity(c *gin.Context) {
	act, err := h.commands.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrActivityNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Activity not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromActivity(act))
}

// @Summary Update activity status
// @Description Set the activity status directly
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body reqdto.UpdateActivityStatusRequest true "New status"
// @Success 200 {object} resdto.ActivityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /activities/{id}/status [put]
func (h *ActivityHandler) UpdateActivityStatus(c *gin.Context) {
	var req reqdto.UpdateActivityStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	act, err := h.commands.UpdateStatus(c.Request.Context(), c.Param("id"), activity.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrActivityNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Activity not found",
			})
		case errors.Is(err, errs.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid activity status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromActivity(act))
}
