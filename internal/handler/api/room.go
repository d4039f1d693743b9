package api

import (
	"errors"
	"net/http"

	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/domain/room"
	reqdto "hotel-ops/internal/handler/dto/request"
	resdto "hotel-ops/internal/handler/dto/response"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	rooms        queries.RoomQueries
	availability queries.AvailabilityQueries
}

func NewRoomHandler(rooms queries.RoomQueries, availability queries.AvailabilityQueries) *RoomHandler {
	return &RoomHandler{
		rooms:        rooms,
		availability: availability,
	}
}

// @Summary List rooms
// @Description List all rooms, optionally filtered by status
// @Tags rooms
// @Produce json
// @Param status query string false "Filter by room status"
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	ctx := c.Request.Context()

	if status := c.Query("status"); status != "" {
		c.JSON(http.StatusOK, resdto.FromRooms(h.rooms.ListByStatus(ctx, room.Status(status))))
		return
	}
	c.JSON(http.StatusOK, resdto.FromRooms(h.rooms.List(ctx)))
}

// @Summary Get room
// @Description Get room by ID
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	rm, err := h.rooms.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoom(rm))
}

// @Summary List available rooms
// @Description List rooms free for the requested dates, optionally by type
// @Tags rooms
// @Produce json
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Param roomType query string false "Filter by room type"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /rooms/available [get]
func (h *RoomHandler) ListAvailableRooms(c *gin.Context) {
	var req reqdto.AvailabilityRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid availability query",
		})
		return
	}
	if !req.CheckIn.Before(req.CheckOut) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Check-out must be after check-in",
		})
		return
	}

	stay := reservation.NewStayPeriod(req.CheckIn, req.CheckOut)
	ids := h.availability.AvailableRoomIDs(c.Request.Context(), stay, req.RoomType)

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{RoomIDs: ids})
}
