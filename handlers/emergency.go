package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-lifeline/pipeline"
	"go-lifeline/types"
)

type emergencyRequest struct {
	Location string         `json:"location" binding:"required"`
	Category types.Category `json:"category" binding:"required"`
}

// RunEmergency runs the full pipeline synchronously for one submission
// and renders the result, or the stage-specific failure, inline.
func RunEmergency(c *gin.Context, runner *pipeline.Runner) {
	var req emergencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please enter your location and an emergency category"})
		return
	}
	if !req.Category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown emergency category: " + string(req.Category)})
		return
	}

	result := runner.Run(types.EmergencyQuery{Source: req.Location, Category: req.Category})
	if result.Failed {
		c.JSON(statusForStage(result.FailedStage), result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// statusForStage maps the failed stage to a response status: user-input
// style failures read as 404, upstream routing failures as 502.
func statusForStage(stage pipeline.Stage) int {
	switch stage {
	case pipeline.StageGeocoding, pipeline.StageLocating:
		return http.StatusNotFound
	case pipeline.StageRouting:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
