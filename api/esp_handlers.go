package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/verdantlab/treewatch-backend/garden/model"
	"github.com/verdantlab/treewatch-backend/ingest"
)

func (h *handlers) ingestQuery(c *gin.Context) {
	in := ingest.QueryInput{
		Temperature: c.Query("temp"),
		Light:       c.Query("linght"), // key as sent by the deployed firmware
		Moisture:    c.Query("moisture"),
		TreeID:      c.Query("treeId"),
		IsRunning:   c.Query("isRunning"),
	}

	result, err := h.pipeline.IngestFromQuery(in)
	if err != nil {
		c.JSON(status(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Sensor data stored successfully",
		"inserted": result.Inserted,
	})
}

func (h *handlers) ingestSamples(c *gin.Context) {
	var input model.SampleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tree ID"})
		return
	}

	result, err := h.pipeline.IngestFromBody(input)
	if err != nil {
		c.JSON(status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"inserted": len(result.Inserted),
	})
}

func (h *handlers) getState(c *gin.Context) {
	mode, hour, err := h.state.State()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve system state"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": mode, "date": hour})
}

func (h *handlers) getModeData(c *gin.Context) {
	raw, found, err := h.state.ModeData(c.Query("state"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve mode data"})
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"message": "State not found"})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

func (h *handlers) setPump(c *gin.Context) {
	var input model.PumpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to set pump state"})
		return
	}

	if err := h.state.SetManualPump(input.State); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set pump state"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *handlers) setMode(c *gin.Context) {
	var input model.StateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update state"})
		return
	}

	if err := h.state.SetMode(input.State); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update state"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
