package api

import (
	"errors"
	"net/http"

	reqdto "hotel-ops/internal/handler/dto/request"
	resdto "hotel-ops/internal/handler/dto/response"
	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, qs queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create reservation
// @Description Book a room for a guest over a date range
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	res, err := h.commands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
			})
		case errors.Is(err, errs.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, errs.ErrInvalidStay):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out must be after check-in",
			})
		case errors.Is(err, errs.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room is not available for the requested dates",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservation(res))
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	res, err := h.queries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary List reservations
// @Description List reservations, optionally filtered by guest, room or status
// @Tags reservations
// @Produce json
// @Param guestId query string false "Filter by guest ID"
// @Param roomId query string false "Filter by room ID"
// @Param status query string false "Filter by status"
// @Success 200 {array} resdto.ReservationResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	ctx := c.Request.Context()

	var list []reservation.Reservation
	switch {
	case c.Query("guestId") != "":
		list = h.queries.ListByGuest(ctx, c.Query("guestId"))
	case c.Query("roomId") != "":
		list = h.queries.ListByRoom(ctx, c.Query("roomId"))
	case c.Query("status") != "":
		list = h.queries.ListByStatus(ctx, reservation.Status(c.Query("status")))
	default:
		list = h.queries.List(ctx)
	}

	c.JSON(http.StatusOK, resdto.FromReservations(list))
}

// @Summary Check in
// @Description Check a confirmed reservation in and occupy the room
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/check-in [post]
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	res, err := h.commands.CheckIn(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Check out
// @Description Check a reservation out and send the room to cleaning
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/check-out [post]
func (h *ReservationHandler) CheckOut(c *gin.Context) {
	res, err := h.commands.CheckOut(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Cancel reservation
// @Description Cancel a confirmed reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	res, err := h.commands.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Update reservation status
// @Description Set the reservation status directly, without lifecycle side effects
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationStatusRequest true "New status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/status [put]
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateReservationStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	res, err := h.commands.UpdateStatus(c.Request.Context(), c.Param("id"), reservation.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid reservation status",
			})
		default:
			h.respondLifecycleError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Shift room
// @Description Move a reservation to another room, re-checking availability
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ShiftRoomRequest true "Target room"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/room [put]
func (h *ReservationHandler) ShiftRoom(c *gin.Context) {
	var req reqdto.ShiftRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	res, err := h.commands.ShiftRoom(c.Request.Context(), c.Param("id"), req.RoomID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room is not available for the reservation dates",
			})
		default:
			h.respondLifecycleError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

func (h *ReservationHandler) respondLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, errs.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
