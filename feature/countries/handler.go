package countries

import (
	"errors"

	"country-pulse/core/logger"
	"country-pulse/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for country records.
type Handler struct {
	service *Service
	logger  *zap.Logger
	apiKey  string
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger, apiKey string) *Handler {
	return &Handler{service: service, logger: logger, apiKey: apiKey}
}

// RegisterRoutes registers the country routes. Mutating routes sit behind
// the API-key guard when one is configured.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	guard := auth.New(auth.Config{ApiKey: h.apiKey})

	app.Get("/status", h.HandleStatus)

	group := app.Group("/countries")
	group.Post("/refresh", guard, h.HandleRefresh)
	group.Get("/", h.HandleList)
	group.Get("/:name", h.HandleGet)
	group.Delete("/:name", guard, h.HandleDelete)
}

// HandleRefresh triggers a full refresh cycle.
// @Summary Refresh country data
// @Description Fetch countries and exchange rates, reconcile against the store, and regenerate the summary image.
// @Tags countries
// @Produce json
// @Success 200 {object} map[string]interface{} "Refresh outcome"
// @Failure 409 {object} map[string]string "Refresh already in progress"
// @Failure 503 {object} map[string]string "External data source unavailable"
// @Router /countries/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	outcome, err := h.service.Refresh(c.Context())
	switch {
	case errors.Is(err, ErrRefreshInFlight):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Refresh already in progress",
		})
	case errors.Is(err, ErrSourceUnavailable):
		l.Error("Refresh aborted", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "External data source unavailable",
			"details": err.Error(),
		})
	case err != nil:
		l.Error("Refresh failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"message":           "Countries refreshed successfully",
		"total_countries":   outcome.TotalCountries,
		"last_refreshed_at": outcome.RefreshedAt,
		"degraded":          outcome.Degraded,
	})
}

// HandleList returns all countries with optional filters and sorting.
// @Summary List countries
// @Tags countries
// @Produce json
// @Param region query string false "Filter by region (e.g. Africa)"
// @Param currency query string false "Filter by currency code (e.g. NGN)"
// @Param sort query string false "Sort key (gdp_desc, gdp_asc, population_desc, population_asc, name_asc, name_desc)"
// @Success 200 {array} models.Country
// @Failure 400 {object} map[string]string "Validation failed"
// @Router /countries [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	filter := ListFilter{
		Region:   c.Query("region"),
		Currency: c.Query("currency"),
		Sort:     c.Query("sort"),
	}

	list, err := h.service.List(c.Context(), filter)
	if errors.Is(err, ErrInvalidSort) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": fiber.Map{"sort": "unknown sort key"},
		})
	}
	if err != nil {
		logger.WithRayID(h.logger, c).Error("List failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(list)
}

// HandleGet returns a single country by name.
// @Summary Get a country
// @Tags countries
// @Produce json
// @Param name path string true "Country name (case-insensitive)"
// @Success 200 {object} models.Country
// @Failure 404 {object} map[string]string "Country not found"
// @Router /countries/{name} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	country, err := h.service.GetByName(c.Context(), c.Params("name"))
	if errors.Is(err, ErrNotFound) {
		// A normal negative result, not an error log entry.
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Country not found",
		})
	}
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(country)
}

// HandleDelete removes a country record by name.
// @Summary Delete a country
// @Tags countries
// @Param name path string true "Country name (case-insensitive)"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Country not found"
// @Router /countries/{name} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	err := h.service.DeleteByName(c.Context(), c.Params("name"))
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Country not found",
		})
	}
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleStatus reports the current refresh metadata.
// @Summary Service status
// @Tags countries
// @Produce json
// @Success 200 {object} models.RefreshMetadata
// @Router /status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	meta, err := h.service.Status(c.Context())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Status read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.JSON(meta)
}
