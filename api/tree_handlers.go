package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/verdantlab/treewatch-backend/garden/model"
)

func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}

	return id, true
}

func (h *handlers) listTrees(c *gin.Context) {
	c.JSON(http.StatusOK, h.controller.AllTrees())
}

func (h *handlers) getTree(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	tree, err := h.controller.TreeByID(id)
	if err != nil {
		c.JSON(status(err), gin.H{"error": "Tree not found"})
		return
	}

	c.JSON(http.StatusOK, tree)
}

func (h *handlers) createTree(c *gin.Context) {
	var input model.TreeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "failed to create tree"})
		return
	}

	if err := h.controller.CreateTree(input.Name); err != nil {
		c.JSON(status(err), gin.H{"message": "failed to create tree"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "create tree success"})
}

func (h *handlers) updateTree(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input model.TreeUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field (name or date) is required for update"})
		return
	}
	// Empty strings count as absent, like the fields being left out.
	if (input.Name == nil || *input.Name == "") && (input.Date == nil || *input.Date == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field (name or date) is required for update"})
		return
	}

	if err := h.controller.UpdateTree(id, input.Name, input.Date); err != nil {
		c.JSON(status(err), gin.H{"error": "Tree not found or update failed"})
		return
	}

	updated, err := h.controller.TreeByID(id)
	if err != nil {
		c.JSON(status(err), gin.H{"error": "Failed to update tree"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tree updated successfully",
		"tree":    updated,
	})
}

func (h *handlers) deleteTree(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	// Fetched first so the response can echo what was removed.
	tree, err := h.controller.TreeByID(id)
	if err != nil {
		c.JSON(status(err), gin.H{"error": "Tree not found"})
		return
	}

	if err := h.controller.DeleteTree(id); err != nil {
		c.JSON(status(err), gin.H{"error": "Failed to delete tree"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Tree deleted successfully",
		"deletedTree": tree,
	})
}

func (h *handlers) createSchedule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input model.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Day of week, start hour, and duration are required"})
		return
	}
	if input.DayOfWeek == nil || input.StartHour == nil || input.Duration == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Day of week, start hour, and duration are required"})
		return
	}

	if err := h.controller.SetWateringSchedule(id, *input.DayOfWeek, *input.StartHour, *input.Duration); err != nil {
		c.JSON(status(err), gin.H{"error": "Failed to set watering schedule"})
		return
	}

	schedules, err := h.controller.WateringSchedules(id)
	if err != nil {
		c.JSON(status(err), gin.H{"error": "Failed to set watering schedule"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Watering schedule set successfully",
		"schedules": schedules,
	})
}

func (h *handlers) listSchedules(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	schedules, err := h.controller.WateringSchedules(id)
	if err != nil {
		c.JSON(status(err), gin.H{"error": "Tree not found"})
		return
	}

	c.JSON(http.StatusOK, schedules)
}

func (h *handlers) deleteSchedule(c *gin.Context) {
	id, ok := parseID(c, "scheduleId")
	if !ok {
		return
	}

	if err := h.controller.DeleteWateringSchedule(id); err != nil {
		c.JSON(status(err), gin.H{"error": "Schedule not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Watering schedule deleted successfully"})
}
