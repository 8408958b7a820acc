package countries

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"country-pulse/core/metrics"
	"country-pulse/feature/countries/models"
	"country-pulse/feature/countries/source"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RefreshOutcome summarizes one completed refresh cycle.
type RefreshOutcome struct {
	// TotalCountries is the number of incoming records applied to the store.
	TotalCountries int
	// Inserted and Updated split TotalCountries by reconciliation decision.
	Inserted int
	Updated  int
	// Degraded is set when the rate source was unreachable and all
	// currency-derived fields were forced null.
	Degraded bool
	// RefreshedAt is the timestamp stamped on every written record and on
	// the refresh metadata.
	RefreshedAt time.Time
}

// Engine runs the refresh cycle: fetch both sources, enrich, and apply the
// result against the store as one transaction.
type Engine struct {
	countrySrc source.CountrySource
	rateSrc    source.RateSource
	store      Store
	mult       MultiplierSource
	logger     *zap.Logger
	metrics    *metrics.RefreshMetrics
}

// NewEngine creates a reconcile engine. metrics may be nil (CLI runs).
func NewEngine(countrySrc source.CountrySource, rateSrc source.RateSource, store Store, mult MultiplierSource, logger *zap.Logger, m *metrics.RefreshMetrics) *Engine {
	return &Engine{
		countrySrc: countrySrc,
		rateSrc:    rateSrc,
		store:      store,
		mult:       mult,
		logger:     logger,
		metrics:    m,
	}
}

// Refresh executes one full fetch-reconcile-persist pass.
//
// Both sources are fetched concurrently and both settle before
// reconciliation begins. A country source failure aborts with
// ErrSourceUnavailable and the store untouched. A rate source failure
// degrades the refresh instead: it proceeds with a nil rate table, so every
// currency-derived field comes out null (countries without a currency still
// get their zero estimate).
//
// All writes, including the refresh metadata, happen in a single store
// transaction: readers observe the pre-refresh or post-refresh dataset,
// and the metadata count never runs ahead of committed records.
func (e *Engine) Refresh(ctx context.Context) (*RefreshOutcome, error) {
	started := time.Now()

	var (
		raws       []source.RawCountry
		rates      source.RateTable
		countryErr error
		rateErr    error
		wg         sync.WaitGroup
	)

	// Fetch both sources concurrently; they are independent.
	wg.Add(2)
	go func() {
		defer wg.Done()
		raws, countryErr = e.countrySrc.FetchAll(ctx)
	}()
	go func() {
		defer wg.Done()
		rates, rateErr = e.rateSrc.FetchRates(ctx)
	}()
	wg.Wait()

	if countryErr != nil {
		e.observeOutcome(metrics.OutcomeFailed, started, 0)
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, countryErr)
	}

	degraded := rateErr != nil
	if degraded {
		// Forced-null policy: reconcile against an empty table rather than
		// keeping stale rates alive.
		rates = nil
		e.logger.Warn("Rate source unavailable, refreshing in degraded mode",
			zap.Error(rateErr))
	}

	refreshedAt := time.Now().UTC()
	outcome := &RefreshOutcome{Degraded: degraded, RefreshedAt: refreshedAt}

	err := e.store.Transaction(ctx, func(tx Store) error {
		for _, raw := range raws {
			if strings.TrimSpace(raw.Name) == "" {
				e.logger.Warn("Skipping country entry without a name")
				continue
			}

			rec := Enrich(raw, rates, e.mult, refreshedAt)

			existing, err := tx.FindByNormalizedName(ctx, rec.Name)
			switch {
			case errors.Is(err, ErrNotFound):
				rec.ID = uuid.NewString()
				outcome.Inserted++
			case err != nil:
				return err
			default:
				// Full replace under the existing identity.
				rec.ID = existing.ID
				outcome.Updated++
			}

			if err := tx.Upsert(ctx, &rec); err != nil {
				return err
			}
		}

		outcome.TotalCountries = outcome.Inserted + outcome.Updated

		return tx.WriteRefreshMetadata(ctx, &models.RefreshMetadata{
			TotalCountries:  outcome.TotalCountries,
			LastRefreshedAt: refreshedAt,
		})
	})
	if err != nil {
		e.observeOutcome(metrics.OutcomeFailed, started, 0)
		return nil, fmt.Errorf("refresh transaction failed: %w", err)
	}

	label := metrics.OutcomeFull
	if degraded {
		label = metrics.OutcomeDegraded
	}
	e.observeOutcome(label, started, outcome.TotalCountries)

	e.logger.Info("Refresh cycle completed",
		zap.Int("total", outcome.TotalCountries),
		zap.Int("inserted", outcome.Inserted),
		zap.Int("updated", outcome.Updated),
		zap.Bool("degraded", outcome.Degraded),
		zap.Duration("took", time.Since(started)),
	)

	return outcome, nil
}

func (e *Engine) observeOutcome(outcome string, started time.Time, total int) {
	if e.metrics == nil {
		return
	}
	e.metrics.RefreshesTotal.WithLabelValues(outcome).Inc()
	e.metrics.RefreshDuration.Observe(time.Since(started).Seconds())
	if outcome != metrics.OutcomeFailed {
		e.metrics.CountriesReconciled.Set(float64(total))
	}
}
