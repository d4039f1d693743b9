package api

import (
	"net/http"

	reqdto "hotel-ops/internal/handler/dto/request"
	"hotel-ops/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SimulationHandler struct {
	commands commands.SimulationCommands
}

func NewSimulationHandler(cmds commands.SimulationCommands) *SimulationHandler {
	return &SimulationHandler{commands: cmds}
}

// @Summary Reset dataset
// @Description Restore every collection to its seed snapshot
// @Tags simulation
// @Produce json
// @Success 200 {object} map[string]string
// @Router /simulation/reset [post]
func (h *SimulationHandler) Reset(c *gin.Context) {
	if err := h.commands.ResetAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

// @Summary Clear guests and reservations
// @Description Empty the guest and reservation collections only
// @Tags simulation
// @Produce json
// @Success 200 {object} map[string]string
// @Router /simulation/clear [post]
func (h *SimulationHandler) Clear(c *gin.Context) {
	if err := h.commands.ClearGuestsAndReservations(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// @Summary Clear all transactional data
// @Description Empty every collection except rooms
// @Tags simulation
// @Produce json
// @Success 200 {object} map[string]string
// @Router /simulation/clear-all [post]
func (h *SimulationHandler) ClearAll(c *gin.Context) {
	if err := h.commands.ClearAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// @Summary Set start-empty flag
// @Description Control whether the next startup seeds guests and reservations
// @Tags simulation
// @Accept json
// @Produce json
// @Param request body reqdto.SetStartEmptyRequest true "Flag value"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /simulation/start-empty [put]
func (h *SimulationHandler) SetStartEmpty(c *gin.Context) {
	var req reqdto.SetStartEmptyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil || req.Enabled == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.commands.SetStartEmpty(c.Request.Context(), *req.Enabled); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
