package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/verdantlab/treewatch-backend/garden"
	"github.com/verdantlab/treewatch-backend/ingest"
	"github.com/verdantlab/treewatch-backend/state"
)

// NewRouter wires the tree and device route groups the frontend and the
// field hardware talk to.
func NewRouter(controller garden.Controller, stateStore *state.Store) *gin.Engine {
	router := gin.Default()
	router.Use(RequestID())

	h := handlers{
		controller: controller,
		pipeline:   ingest.New(controller),
		state:      stateStore,
	}

	tree := router.Group("/tree")
	{
		tree.GET("/list", h.listTrees)
		tree.GET("/get/:id", h.getTree)
		tree.POST("/create", h.createTree)
		tree.PUT("/update/:id", h.updateTree)
		tree.DELETE("/delete/:id", h.deleteTree)
		tree.POST("/schedule/create/:id", h.createSchedule)
		tree.GET("/schedule/list/:id", h.listSchedules)
		tree.DELETE("/schedule/delete/:scheduleId", h.deleteSchedule)
	}

	esp := router.Group("/esp")
	{
		esp.GET("/", h.ingestQuery)
		esp.GET("/state", h.getState)
		esp.GET("/dataMode", h.getModeData)
		esp.POST("/pump", h.setPump)
		esp.POST("/updateState", h.setMode)
		esp.POST("/samples", h.ingestSamples)
	}

	return router
}

type handlers struct {
	controller garden.Controller
	pipeline   *ingest.Pipeline
	state      *state.Store
}

// status maps domain failures onto HTTP status codes.
func status(err error) int {
	switch {
	case errors.Is(err, garden.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, garden.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
