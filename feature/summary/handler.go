package summary

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the stored summary image.
type Handler struct {
	sink   *Sink
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(sink *Sink, logger *zap.Logger) *Handler {
	return &Handler{sink: sink, logger: logger}
}

// RegisterRoutes registers the image route. It must be loaded before the
// countries feature so /countries/image wins over /countries/:name.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/countries/image", h.HandleImage)
}

// HandleImage streams the latest summary image.
// @Summary Get summary image
// @Tags summary
// @Produce png
// @Success 200 {file} binary "PNG summary"
// @Failure 404 {object} map[string]string "Summary image not found"
// @Router /countries/image [get]
func (h *Handler) HandleImage(c *fiber.Ctx) error {
	data, err := h.sink.Fetch(c.Context())
	if err != nil {
		// Expected before the first successful refresh.
		h.logger.Debug("Summary image unavailable", zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Summary image not found",
		})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(data)
}
