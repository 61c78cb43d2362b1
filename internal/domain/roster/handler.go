package roster

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/nirajan1211/MidasHealthCare/internal/domain/form"
	"github.com/nirajan1211/MidasHealthCare/pkg/pagination"
)

// Handler handles HTTP requests for the patient roster.
type Handler struct {
	service *Service
}

// NewHandler creates a new roster handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the roster routes on the given group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients", h.ListPatients)
	api.POST("/patients", h.CreatePatient)
	api.PUT("/patients/:id", h.UpdatePatient)
	api.DELETE("/patients/:id", h.DeletePatient)
}

// ListPatients returns the normalized roster, paginated.
func (h *Handler) ListPatients(c echo.Context) error {
	entries, err := h.service.ListPatients(c.Request().Context())
	if err != nil {
		return h.mapError(c, err)
	}

	params := pagination.FromContext(c)
	total := len(entries)
	start := params.Offset
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	return c.JSON(http.StatusOK, pagination.NewResponse(entries[start:end], total, params.Limit, params.Offset))
}

// CreatePatient validates the submitted record and creates it upstream.
func (h *Handler) CreatePatient(c echo.Context) error {
	var rec form.PatientRecord
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.service.CreatePatient(c.Request().Context(), rec); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"status": "created"})
}

// UpdatePatient validates the submitted record and updates it upstream.
func (h *Handler) UpdatePatient(c echo.Context) error {
	id := c.Param("id")
	var rec form.PatientRecord
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.service.UpdatePatient(c.Request().Context(), id, rec); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

// DeletePatient removes a roster member upstream.
func (h *Handler) DeletePatient(c echo.Context) error {
	if err := h.service.DeletePatient(c.Request().Context(), c.Param("id")); err != nil {
		return h.mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// mapError translates domain errors to HTTP responses. Validation failures
// carry the per-field map so the client can render them inline; transport
// failures become an opaque gateway error.
func (h *Handler) mapError(c echo.Context, err error) error {
	var verrs form.ValidationErrors
	if errors.As(err, &verrs) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"errors": verrs,
		})
	}

	var terr *TransportError
	if errors.As(err, &terr) {
		log.Error().Int("upstream_status", terr.StatusCode).Str("message", terr.Message).Msg("upstream request failed")
		return echo.NewHTTPError(http.StatusBadGateway, "upstream service unavailable")
	}

	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}
