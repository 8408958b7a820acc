package countries

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"country-pulse/feature/countries/models"
	"country-pulse/feature/countries/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type blockingCountrySource struct {
	entered   chan struct{}
	release   chan struct{}
	once      sync.Once
	countries []source.RawCountry
}

func (b *blockingCountrySource) FetchAll(ctx context.Context) ([]source.RawCountry, error) {
	b.once.Do(func() { close(b.entered) })
	select {
	case <-b.release:
		return b.countries, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type recordingSink struct {
	published   bool
	top         []models.Country
	total       int
	refreshedAt time.Time
	err         error
}

func (r *recordingSink) Publish(ctx context.Context, top []models.Country, total int, refreshedAt time.Time) error {
	r.published = true
	r.top = top
	r.total = total
	r.refreshedAt = refreshedAt
	return r.err
}

// listTrackingStore flags whether List ever reached the store.
type listTrackingStore struct {
	Store
	listCalled bool
}

func (l *listTrackingStore) List(ctx context.Context, f ListFilter) ([]models.Country, error) {
	l.listCalled = true
	return l.Store.List(ctx, f)
}

func newTestService(t *testing.T, cs source.CountrySource, rs source.RateSource, sink SummarySink) (*Service, Store) {
	t.Helper()
	store := newTestStore(t)
	engine := NewEngine(cs, rs, store, FixedMultiplier(1500), zap.NewNop(), nil)
	return NewService(store, engine, sink, 5, zap.NewNop()), store
}

func TestServiceListValidation(t *testing.T) {
	store := &listTrackingStore{Store: newTestStore(t)}
	svc := NewService(store, nil, nil, 5, zap.NewNop())

	_, err := svc.List(context.Background(), ListFilter{Sort: "sideways"})
	assert.ErrorIs(t, err, ErrInvalidSort)
	// Rejected before the store is touched.
	assert.False(t, store.listCalled)

	_, err = svc.List(context.Background(), ListFilter{Sort: SortNameAsc})
	assert.NoError(t, err)
	assert.True(t, store.listCalled)
}

func TestServiceRefreshPublishesSummary(t *testing.T) {
	sink := &recordingSink{}
	svc, _ := newTestService(t,
		&stubCountrySource{countries: testFetch()},
		&stubRateSource{rates: testRates()},
		sink,
	)

	outcome, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	assert.True(t, sink.published)
	assert.Equal(t, outcome.TotalCountries, sink.total)
	assert.True(t, sink.refreshedAt.Equal(outcome.RefreshedAt))
	// Only records with a non-null estimate make the top view; Atlantis
	// (nil) is excluded, Nigeria and Togo (zero) remain.
	require.Len(t, sink.top, 2)
	assert.Equal(t, "Nigeria", sink.top[0].Name)
}

func TestServiceRefreshSurvivesSinkFailure(t *testing.T) {
	sink := &recordingSink{err: errors.New("bucket gone")}
	svc, _ := newTestService(t,
		&stubCountrySource{countries: testFetch()},
		&stubRateSource{rates: testRates()},
		sink,
	)

	outcome, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, outcome.TotalCountries)
}

func TestServiceRejectsConcurrentRefresh(t *testing.T) {
	blocking := &blockingCountrySource{
		entered:   make(chan struct{}),
		release:   make(chan struct{}),
		countries: testFetch(),
	}
	svc, _ := newTestService(t, blocking, &stubRateSource{rates: testRates()}, nil)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Refresh(context.Background())
		done <- err
	}()

	// Wait until the first refresh holds the writer lock inside its fetch.
	select {
	case <-blocking.entered:
	case <-time.After(time.Second):
		t.Fatal("first refresh never started fetching")
	}

	_, err := svc.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrRefreshInFlight)

	close(blocking.release)
	require.NoError(t, <-done)

	// Lock released: the next refresh goes through again.
	_, err = svc.Refresh(context.Background())
	assert.NoError(t, err)
}

func TestServiceQueries(t *testing.T) {
	svc, store := newTestService(t,
		&stubCountrySource{countries: testFetch()},
		&stubRateSource{rates: testRates()},
		nil,
	)
	ctx := context.Background()

	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	t.Run("GetByName", func(t *testing.T) {
		got, err := svc.GetByName(ctx, "togo")
		require.NoError(t, err)
		assert.Equal(t, "Togo", got.Name)

		_, err = svc.GetByName(ctx, "Wakanda")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DeleteByName Is Independent Of Refresh", func(t *testing.T) {
		require.NoError(t, svc.DeleteByName(ctx, "ATLANTIS"))
		assert.ErrorIs(t, svc.DeleteByName(ctx, "Atlantis"), ErrNotFound)

		// The deleted record stays gone until the next refresh.
		list, err := store.List(ctx, ListFilter{})
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("Status", func(t *testing.T) {
		meta, err := svc.Status(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, meta.TotalCountries)
	})
}
