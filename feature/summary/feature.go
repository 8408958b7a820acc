package summary

import (
	"country-pulse/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the summary module into the feature loader.
type Feature struct {
	sink    *Sink
	handler *Handler
}

// NewFeature creates the summary feature.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger) *Feature {
	sink := NewSink(client, bucket, logger)
	return &Feature{
		sink:    sink,
		handler: NewHandler(sink, logger),
	}
}

// Sink exposes the sink so the countries service can publish into it.
func (f *Feature) Sink() *Sink { return f.sink }

func (f *Feature) Name() string { return "summary" }

func (f *Feature) IsEnabled() bool { return true }

func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
