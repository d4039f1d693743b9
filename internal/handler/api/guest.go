package api

import (
	"errors"
	"net/http"

	reqdto "hotel-ops/internal/handler/dto/request"
	resdto "hotel-ops/internal/handler/dto/response"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	commands commands.GuestCommands
	queries  queries.GuestQueries
}

func NewGuestHandler(cmds commands.GuestCommands, qs queries.GuestQueries) *GuestHandler {
	return &GuestHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create guest
// @Description Register a new guest profile
// @Tags guests
// @Accept json
// @Produce json
// @Param request body reqdto.CreateGuestRequest true "Guest profile"
// @Success 201 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Router /guests [post]
func (h *GuestHandler) CreateGuest(c *gin.Context) {
	var req reqdto.CreateGuestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	g, err := h.commands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGuest(g))
}

// @Summary Get guest
// @Description Get guest by ID
// @Tags guests
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} resdto.GuestResponse
// @Failure 404 {object} map[string]string
// @Router /guests/{id} [get]
func (h *GuestHandler) GetGuest(c *gin.Context) {
	g, err := h.queries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuest(g))
}

// @Summary List guests
// @Description List guests, optionally filtered by a search query
// @Tags guests
// @Produce json
// @Param q query string false "Search by name, email, phone or ID number"
// @Success 200 {array} resdto.GuestResponse
// @Router /guests [get]
func (h *GuestHandler) ListGuests(c *gin.Context) {
	ctx := c.Request.Context()

	if q := c.Query("q"); q != "" {
		c.JSON(http.StatusOK, resdto.FromGuests(h.queries.Search(ctx, q)))
		return
	}
	c.JSON(http.StatusOK, resdto.FromGuests(h.queries.List(ctx)))
}

// @Summary Update guest
// @Description Apply a partial update to a guest profile
// @Tags guests
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body reqdto.UpdateGuestRequest true "Fields to update"
// @Success 200 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guests/{id} [put]
func (h *GuestHandler) UpdateGuest(c *gin.Context) {
	var req reqdto.UpdateGuestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	g, err := h.commands.Update(c.Request.Context(), c.Param("id"), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuest(g))
}

// @Summary Add loyalty points
// @Description Credit loyalty points to a guest
// @Tags guests
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body reqdto.AddLoyaltyPointsRequest true "Points to add"
// @Success 200 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guests/{id}/loyalty-points [post]
func (h *GuestHandler) AddLoyaltyPoints(c *gin.Context) {
	var req reqdto.AddLoyaltyPointsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	g, err := h.commands.AddLoyaltyPoints(c.Request.Context(), c.Param("id"), req.Points)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuest(g))
}
