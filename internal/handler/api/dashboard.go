package api

import (
	"net/http"

	resdto "hotel-ops/internal/handler/dto/response"
	"hotel-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	queries queries.DashboardQueries
}

func NewDashboardHandler(qs queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{queries: qs}
}

// @Summary Dashboard snapshot
// @Description Aggregate room, guest, booking, task and revenue figures
// @Tags dashboard
// @Produce json
// @Success 200 {object} resdto.DashboardResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	view := h.queries.Snapshot(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromDashboardView(view))
}
