package form

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler exposes the static form-support lookups to the mobile client.
type Handler struct {
	now func() time.Time
}

func NewHandler() *Handler {
	return &Handler{now: time.Now}
}

// RegisterRoutes registers the form lookup routes.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/districts", h.ListDistricts)
	api.GET("/districts/:id/municipalities", h.ListMunicipalities)
	api.GET("/relations", h.ListRelations)
	api.GET("/age", h.DeriveAge)
}

func (h *Handler) ListDistricts(c echo.Context) error {
	return c.JSON(http.StatusOK, Districts())
}

// ListMunicipalities returns the cascade options for a district. An unknown
// district is not an error; it simply has no options.
func (h *Handler) ListMunicipalities(c echo.Context) error {
	return c.JSON(http.StatusOK, MunicipalitiesFor(c.Param("id")))
}

func (h *Handler) ListRelations(c echo.Context) error {
	return c.JSON(http.StatusOK, Relations())
}

// DeriveAge computes the age pair for a date of birth, reported in the
// largest non-zero unit.
func (h *Handler) DeriveAge(c echo.Context) error {
	dob := c.QueryParam("dob")
	parts, ok := CalculateAge(dob, h.now())
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date of birth")
	}
	value, unit, found := parts.Largest()
	if !found {
		value, unit = 0, AgeUnitDays
	}
	return c.JSON(http.StatusOK, map[string]string{
		"age":     strconv.Itoa(value),
		"agetype": unit,
	})
}
