package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/services"
)

// PipelineHandler serves the endpoints driven by the external tick.
type PipelineHandler struct {
	taskService services.TaskServicer
}

// NewPipelineHandler creates a new PipelineHandler.
func NewPipelineHandler(taskService services.TaskServicer) *PipelineHandler {
	return &PipelineHandler{taskService: taskService}
}

// RunScheduledTasks executes one autopay pass and one budget period pass.
// @Summary     Run scheduled tasks
// @Description Execute due autopays, then renew or expire budgets past their period
// @Tags        pipeline
// @Produce     json
// @Security    PipelineKey
// @Success     200 {object} services.TaskResult "Pass results"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     503 {object} ErrorResponse "Pipeline not configured"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /pipeline/scheduled-tasks [post]
func (h *PipelineHandler) RunScheduledTasks(c *gin.Context) {
	result, err := h.taskService.ProcessScheduledTasks(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
