package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"loadboard-service/internal/domain/apperrors"
	"loadboard-service/internal/domain/repository"
	"loadboard-service/internal/usecase"
	"loadboard-service/pkg/logger"
	"loadboard-service/pkg/metrics"
)

// LoadHandler serves the load posting and search endpoints
type LoadHandler struct {
	loads   *usecase.LoadService
	log     logger.Logger
	metrics *metrics.Metrics
}

// NewLoadHandler creates a new load handler
func NewLoadHandler(loads *usecase.LoadService, log logger.Logger, m *metrics.Metrics) *LoadHandler {
	return &LoadHandler{loads: loads, log: log, metrics: m}
}

// Create handles POST /loads
func (h *LoadHandler) Create(c *gin.Context) {
	var req usecase.LoadCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	load, err := h.loads.Create(c.Request.Context(), &req)
	if err != nil {
		h.metrics.ErrorsCount.WithLabelValues("create_load").Inc()
		respondError(c, h.log, err, "Failed to create load")
		return
	}

	h.metrics.LoadsCreated.Inc()
	c.JSON(http.StatusCreated, load)
}

// List handles GET /loads: future pickups only.
func (h *LoadHandler) List(c *gin.Context) {
	loads, err := h.loads.List(c.Request.Context())
	if err != nil {
		h.metrics.ErrorsCount.WithLabelValues("list_loads").Inc()
		respondError(c, h.log, err, "Failed to retrieve loads")
		return
	}
	c.JSON(http.StatusOK, loads)
}

// Search handles GET /loads/search
func (h *LoadHandler) Search(c *gin.Context) {
	filter, err := parseLoadFilter(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	loads, err := h.loads.Search(c.Request.Context(), filter)
	if err != nil {
		h.metrics.ErrorsCount.WithLabelValues("search_loads").Inc()
		respondError(c, h.log, err, "Failed to search loads")
		return
	}
	c.JSON(http.StatusOK, loads)
}

// parseLoadFilter reads the search criteria off the query string. Presence of
// a parameter is what activates it, so weight_min=0 is a real bound and not a
// no-op; empty string values stay inactive.
func parseLoadFilter(c *gin.Context) (repository.LoadFilter, error) {
	filter := repository.LoadFilter{}

	filter.OriginState = stringParam(c, "origin_state")
	filter.DestinationState = stringParam(c, "destination_state")
	filter.EquipmentType = stringParam(c, "equipment_type")

	var err error
	if filter.PickupFrom, err = timeParam(c, "pickup_from"); err != nil {
		return filter, err
	}
	if filter.PickupTo, err = timeParam(c, "pickup_to"); err != nil {
		return filter, err
	}
	if filter.DeliveryFrom, err = timeParam(c, "delivery_from"); err != nil {
		return filter, err
	}
	if filter.DeliveryTo, err = timeParam(c, "delivery_to"); err != nil {
		return filter, err
	}
	if filter.WeightMin, err = floatParam(c, "weight_min"); err != nil {
		return filter, err
	}
	if filter.WeightMax, err = floatParam(c, "weight_max"); err != nil {
		return filter, err
	}
	if filter.MilesMin, err = floatParam(c, "miles_min"); err != nil {
		return filter, err
	}
	if filter.MilesMax, err = floatParam(c, "miles_max"); err != nil {
		return filter, err
	}

	if raw, ok := c.GetQuery("show_past"); ok && raw != "" {
		showPast, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, apperrors.NewFieldError("show_past", "expected a boolean")
		}
		filter.ShowPast = showPast
	}

	return filter, nil
}

func stringParam(c *gin.Context, name string) *string {
	if raw, ok := c.GetQuery(name); ok && raw != "" {
		return &raw
	}
	return nil
}

func floatParam(c *gin.Context, name string) (*float64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperrors.NewFieldError(name, "expected a number")
	}
	return &v, nil
}

func timeParam(c *gin.Context, name string) (*time.Time, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, apperrors.NewFieldError(name, "expected an RFC3339 datetime")
	}
	return &t, nil
}

// bindErrorMessage names the offending field when the JSON decoder can tell
// us which one it was.
func bindErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.NewFieldError(typeErr.Field, "expected "+typeErr.Type.String()).Error()
	}
	return "invalid request body"
}
