package api

import (
	"errors"
	"net/http"

	"hotel-ops/internal/domain/housekeeping"
	reqdto "hotel-ops/internal/handler/dto/request"
	resdto "hotel-ops/internal/handler/dto/response"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HousekeepingHandler struct {
	commands commands.HousekeepingCommands
	queries  queries.TaskQueries
}

func NewHousekeepingHandler(cmds commands.HousekeepingCommands, qs queries.TaskQueries) *HousekeepingHandler {
	return &HousekeepingHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create housekeeping task
// @Description Open a cleaning or maintenance task on a room
// @Tags housekeeping
// @Accept json
// @Produce json
// @Param request body reqdto.CreateTaskRequest true "Task details"
// @Success 201 {object} resdto.TaskResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /housekeeping/tasks [post]
func (h *HousekeepingHandler) CreateTask(c *gin.Context) {
	var req reqdto.CreateTaskRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	task, err := h.commands.CreateTask(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, errs.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid task type",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTask(task))
}

// @Summary Get housekeeping task
// @Description Get task by ID
// @Tags housekeeping
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} resdto.TaskResponse
// @Failure 404 {object} map[string]string
// @Router /housekeeping/tasks/{id} [get]
func (h *HousekeepingHandler) GetTask(c *gin.Context) {
	task, err := h.queries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Task not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTask(task))
}

// @Summary List housekeeping tasks
// @Description List tasks, optionally filtered by room or status
// @Tags housekeeping
// @Produce json
// @Param roomId query string false "Filter by room ID"
// @Param status query string false "Filter by status"
// @Success 200 {array} resdto.TaskResponse
// @Router /housekeeping/tasks [get]
func (h *HousekeepingHandler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	var list []housekeeping.Task
	switch {
	case c.Query("roomId") != "":
		list = h.queries.ListByRoom(ctx, c.Query("roomId"))
	case c.Query("status") != "":
		list = h.queries.ListByStatus(ctx, housekeeping.Status(c.Query("status")))
	default:
		list = h.queries.List(ctx)
	}

	c.JSON(http.StatusOK, resdto.FromTasks(list))
}

// @Summary Start task
// @Description Move a pending task to in progress and flag the room as cleaning
// @Tags housekeeping
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} resdto.TaskResponse
// @Failure 404 {object} map[string]string
// @Router /housekeeping/tasks/{id}/start [post]
func (h *HousekeepingHandler) StartTask(c *gin.Context) {
	task, err := h.commands.StartTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTask(task))
}

// @Summary Complete task
// @Description Complete an in-progress task and release the room to available
// @Tags housekeeping
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} resdto.TaskResponse
// @Failure 404 {object} map[string]string
// @Router /housekeeping/tasks/{id}/complete [post]
func (h *HousekeepingHandler) CompleteTask(c *gin.Context) {
	task, err := h.commands.CompleteTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTask(task))
}

// @Summary Update task status
// @Description Set the task status directly, without room side effects
// @Tags housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body reqdto.UpdateTaskStatusRequest true "New status"
// @Success 200 {object} resdto.TaskResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /housekeeping/tasks/{id}/status [put]
func (h *HousekeepingHandler) UpdateTaskStatus(c *gin.Context) {
	var req reqdto.UpdateTaskStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	task, err := h.commands.UpdateTaskStatus(c.Request.Context(), c.Param("id"), housekeeping.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid task status",
			})
		default:
			h.respondTaskError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromTask(task))
}

// @Summary Make room available
// @Description Force-complete all open tasks on a room and set it available
// @Tags housekeeping
// @Produce json
// @Param roomId path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} map[string]string
// @Router /housekeeping/rooms/{roomId}/make-available [post]
func (h *HousekeepingHandler) MakeRoomAvailable(c *gin.Context) {
	rm, err := h.commands.MakeRoomAvailable(c.Request.Context(), c.Param("roomId"))
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

func (h *HousekeepingHandler) respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Task not found",
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
