package countries

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the countries module into the feature loader.
type Feature struct {
	handler *Handler
}

// NewFeature creates the countries feature.
func NewFeature(service *Service, logger *zap.Logger, apiKey string) *Feature {
	return &Feature{handler: NewHandler(service, logger, apiKey)}
}

func (f *Feature) Name() string { return "countries" }

func (f *Feature) IsEnabled() bool { return true }

func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
