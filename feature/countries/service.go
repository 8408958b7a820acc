package countries

import (
	"context"
	"sync"
	"time"

	"country-pulse/feature/countries/models"

	"go.uber.org/zap"
)

// SummarySink receives the finished top-N view after a successful refresh.
// Rendering and storage live behind it; the service only hands over data.
type SummarySink interface {
	Publish(ctx context.Context, top []models.Country, total int, refreshedAt time.Time) error
}

// Service orchestrates the refresh cycle and serves the read paths.
type Service struct {
	store  Store
	engine *Engine
	sink   SummarySink
	topN   int
	logger *zap.Logger

	// refreshMu enforces the single-writer model: at most one refresh cycle
	// in flight, concurrent requests rejected rather than interleaved.
	refreshMu sync.Mutex
}

// NewService creates the countries service. sink may be nil to disable the
// summary artifact.
func NewService(store Store, engine *Engine, sink SummarySink, topN int, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		engine: engine,
		sink:   sink,
		topN:   topN,
		logger: logger,
	}
}

// Refresh runs one refresh cycle. A cycle already in flight yields
// ErrRefreshInFlight. After a committed refresh the summary sink is fed the
// top-N view; sink failures are logged but never fail the refresh.
func (s *Service) Refresh(ctx context.Context) (*RefreshOutcome, error) {
	if !s.refreshMu.TryLock() {
		return nil, ErrRefreshInFlight
	}
	defer s.refreshMu.Unlock()

	outcome, err := s.engine.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	if s.sink != nil {
		top, err := s.store.TopByGDP(ctx, s.topN)
		if err != nil {
			s.logger.Warn("Failed to load top countries for summary", zap.Error(err))
		} else if err := s.sink.Publish(ctx, top, outcome.TotalCountries, outcome.RefreshedAt); err != nil {
			s.logger.Warn("Failed to publish summary image", zap.Error(err))
		}
	}

	return outcome, nil
}

// List returns countries matching the filter. An unknown sort key is
// rejected with ErrInvalidSort before the store is touched.
func (s *Service) List(ctx context.Context, f ListFilter) ([]models.Country, error) {
	if f.Sort != "" {
		if _, ok := sortOrders[f.Sort]; !ok {
			return nil, ErrInvalidSort
		}
	}
	return s.store.List(ctx, f)
}

// GetByName looks up a single country case-insensitively.
func (s *Service) GetByName(ctx context.Context, name string) (*models.Country, error) {
	return s.store.FindByNormalizedName(ctx, name)
}

// DeleteByName removes a record entirely. Independent of refresh.
func (s *Service) DeleteByName(ctx context.Context, name string) error {
	return s.store.DeleteByName(ctx, name)
}

// Status returns the current refresh metadata.
func (s *Service) Status(ctx context.Context) (*models.RefreshMetadata, error) {
	return s.store.ReadRefreshMetadata(ctx)
}
