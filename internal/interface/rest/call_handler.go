package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"loadboard-service/internal/usecase"
	"loadboard-service/pkg/logger"
	"loadboard-service/pkg/metrics"
)

// CallHandler serves the negotiation call endpoints
type CallHandler struct {
	calls   *usecase.CallService
	agent   *usecase.AgentMetricsService
	log     logger.Logger
	metrics *metrics.Metrics
}

// NewCallHandler creates a new call handler
func NewCallHandler(calls *usecase.CallService, agent *usecase.AgentMetricsService, log logger.Logger, m *metrics.Metrics) *CallHandler {
	return &CallHandler{calls: calls, agent: agent, log: log, metrics: m}
}

// Create handles POST /calls
func (h *CallHandler) Create(c *gin.Context) {
	var req usecase.CallCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	call, err := h.calls.Create(c.Request.Context(), &req)
	if err != nil {
		h.metrics.ErrorsCount.WithLabelValues("create_call").Inc()
		respondError(c, h.log, err, "Failed to create call record")
		return
	}

	h.metrics.CallsCreated.Inc()
	c.JSON(http.StatusCreated, call)
}

// List handles GET /calls with skip/limit pagination.
func (h *CallHandler) List(c *gin.Context) {
	skip, err := intQuery(c, "skip", 0)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := intQuery(c, "limit", 100)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	calls, err := h.calls.List(c.Request.Context(), skip, limit)
	if err != nil {
		h.metrics.ErrorsCount.WithLabelValues("list_calls").Inc()
		respondError(c, h.log, err, "Failed to retrieve call records")
		return
	}
	c.JSON(http.StatusOK, calls)
}

// Get handles GET /calls/:id
func (h *CallHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid call id")
		return
	}

	call, err := h.calls.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Failed to retrieve call record")
		return
	}
	c.JSON(http.StatusOK, call)
}

// Update handles POST /calls/update/:id
func (h *CallHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid call id")
		return
	}

	var req usecase.CallUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	call, err := h.calls.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.metrics.ErrorsCount.WithLabelValues("update_call").Inc()
		respondError(c, h.log, err, "Failed to update call record")
		return
	}
	c.JSON(http.StatusOK, call)
}

// DeleteAll handles DELETE /calls
func (h *CallHandler) DeleteAll(c *gin.Context) {
	count, err := h.calls.DeleteAll(c.Request.Context())
	if err != nil {
		h.metrics.ErrorsCount.WithLabelValues("delete_calls").Inc()
		respondError(c, h.log, err, "Failed to delete call records")
		return
	}

	h.metrics.CallsDeleted.Add(float64(count))
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Successfully deleted %d call records", count),
	})
}

// AgentMetrics handles GET /metrics/agent
func (h *CallHandler) AgentMetrics(c *gin.Context) {
	snapshot, err := h.agent.Snapshot(c.Request.Context())
	if err != nil {
		h.metrics.ErrorsCount.WithLabelValues("agent_metrics").Inc()
		respondError(c, h.log, err, "Failed to compute agent metrics")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func intQuery(c *gin.Context, name string, defaultValue int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q must be an integer", name)
	}
	return v, nil
}
