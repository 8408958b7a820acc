package countries

import (
	"context"
	"errors"
	"testing"
	"time"

	"country-pulse/feature/countries/models"
	"country-pulse/feature/countries/source"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCountrySource struct {
	countries []source.RawCountry
	err       error
}

func (s *stubCountrySource) FetchAll(ctx context.Context) ([]source.RawCountry, error) {
	return s.countries, s.err
}

type stubRateSource struct {
	rates source.RateTable
	err   error
}

func (s *stubRateSource) FetchRates(ctx context.Context) (source.RateTable, error) {
	return s.rates, s.err
}

func newTestEngine(t *testing.T, cs source.CountrySource, rs source.RateSource, mult MultiplierSource) (*Engine, Store) {
	t.Helper()
	store := newTestStore(t)
	return NewEngine(cs, rs, store, mult, zap.NewNop(), nil), store
}

func testFetch() []source.RawCountry {
	return []source.RawCountry{
		{
			Name:       "Nigeria",
			Capital:    "Abuja",
			Region:     "Africa",
			Population: 200000000,
			FlagUrl:    "https://flagcdn.com/ng.svg",
			Currencies: []source.RawCurrency{{Code: "NGN"}},
		},
		{
			Name:       "Togo",
			Capital:    "Lomé",
			Region:     "Africa",
			Population: 8278724,
			Currencies: []source.RawCurrency{},
		},
		{
			Name:       "Atlantis",
			Population: 1000,
			Currencies: []source.RawCurrency{{Code: "ATL"}},
		},
	}
}

func testRates() source.RateTable {
	return source.RateTable{"NGN": 1600.0, "USD": 1.0}
}

func TestRefreshInsertsAndEnriches(t *testing.T) {
	engine, store := newTestEngine(t,
		&stubCountrySource{countries: testFetch()},
		&stubRateSource{rates: testRates()},
		FixedMultiplier(1500),
	)
	ctx := context.Background()

	outcome, err := engine.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, outcome.TotalCountries)
	assert.Equal(t, 3, outcome.Inserted)
	assert.Zero(t, outcome.Updated)
	assert.False(t, outcome.Degraded)

	t.Run("Resolved Currency", func(t *testing.T) {
		nigeria, err := store.FindByNormalizedName(ctx, "nigeria")
		require.NoError(t, err)
		require.NotNil(t, nigeria.CurrencyCode)
		assert.Equal(t, "NGN", *nigeria.CurrencyCode)
		require.NotNil(t, nigeria.ExchangeRate)
		assert.Equal(t, 1600.0, *nigeria.ExchangeRate)
		require.NotNil(t, nigeria.EstimatedGdp)
		assert.InDelta(t, 200000000*1500.0/1600.0, *nigeria.EstimatedGdp, 1e-3)
		assert.NotEmpty(t, nigeria.ID)
	})

	t.Run("No Currency Is Exact Zero", func(t *testing.T) {
		togo, err := store.FindByNormalizedName(ctx, "Togo")
		require.NoError(t, err)
		assert.Nil(t, togo.CurrencyCode)
		assert.Nil(t, togo.ExchangeRate)
		require.NotNil(t, togo.EstimatedGdp)
		assert.Zero(t, *togo.EstimatedGdp)
	})

	t.Run("Unresolvable Currency Is Nil", func(t *testing.T) {
		atlantis, err := store.FindByNormalizedName(ctx, "atlantis")
		require.NoError(t, err)
		require.NotNil(t, atlantis.CurrencyCode)
		assert.Nil(t, atlantis.ExchangeRate)
		assert.Nil(t, atlantis.EstimatedGdp)
	})

	t.Run("Metadata Matches Outcome", func(t *testing.T) {
		meta, err := store.ReadRefreshMetadata(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, meta.TotalCountries)
		assert.True(t, meta.LastRefreshedAt.Equal(outcome.RefreshedAt))
	})
}

func TestRefreshIdempotence(t *testing.T) {
	engine, store := newTestEngine(t,
		&stubCountrySource{countries: testFetch()},
		&stubRateSource{rates: testRates()},
		FixedMultiplier(1500),
	)
	ctx := context.Background()

	first, err := engine.Refresh(ctx)
	require.NoError(t, err)
	before, err := store.FindByNormalizedName(ctx, "nigeria")
	require.NoError(t, err)

	second, err := engine.Refresh(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.TotalCountries, second.TotalCountries)
	assert.Equal(t, 3, second.Updated)
	assert.Zero(t, second.Inserted)

	after, err := store.FindByNormalizedName(ctx, "nigeria")
	require.NoError(t, err)
	// Identity and non-GDP fields are stable across refreshes.
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.Capital, after.Capital)
	assert.Equal(t, before.Population, after.Population)
	assert.Equal(t, *before.ExchangeRate, *after.ExchangeRate)
	assert.Equal(t, *before.EstimatedGdp, *after.EstimatedGdp)

	list, err := store.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestRefreshFullReplace(t *testing.T) {
	countrySrc := &stubCountrySource{countries: testFetch()}
	engine, store := newTestEngine(t, countrySrc,
		&stubRateSource{rates: testRates()}, FixedMultiplier(1500))
	ctx := context.Background()

	_, err := engine.Refresh(ctx)
	require.NoError(t, err)

	// The source stops listing Nigeria's currency and capital.
	countrySrc.countries = []source.RawCountry{{
		Name:       "NIGERIA",
		Region:     "Africa",
		Population: 200000000,
	}}

	outcome, err := engine.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Updated)
	assert.Zero(t, outcome.Inserted)

	nigeria, err := store.FindByNormalizedName(ctx, "nigeria")
	require.NoError(t, err)
	// Full replace: stale values must not survive the source change.
	assert.Equal(t, "NIGERIA", nigeria.Name)
	assert.Empty(t, nigeria.Capital)
	assert.Nil(t, nigeria.CurrencyCode)
	assert.Nil(t, nigeria.ExchangeRate)
	require.NotNil(t, nigeria.EstimatedGdp)
	assert.Zero(t, *nigeria.EstimatedGdp)

	t.Run("Absent Records Left Untouched", func(t *testing.T) {
		togo, err := store.FindByNormalizedName(ctx, "togo")
		require.NoError(t, err)
		assert.Equal(t, "Togo", togo.Name)
	})
}

func TestRefreshSourceUnavailable(t *testing.T) {
	countrySrc := &stubCountrySource{err: errors.New("connection refused")}
	engine, store := newTestEngine(t, countrySrc,
		&stubRateSource{rates: testRates()}, FixedMultiplier(1500))
	ctx := context.Background()

	// Pre-existing state that must survive the failed refresh untouched.
	seeded := models.Country{
		ID:              uuid.NewString(),
		Name:            "Kenya",
		Capital:         "Nairobi",
		LastRefreshedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Upsert(ctx, &seeded))
	require.NoError(t, store.WriteRefreshMetadata(ctx, &models.RefreshMetadata{
		TotalCountries:  1,
		LastRefreshedAt: seeded.LastRefreshedAt,
	}))

	_, err := engine.Refresh(ctx)
	assert.ErrorIs(t, err, ErrSourceUnavailable)

	kenya, err := store.FindByNormalizedName(ctx, "kenya")
	require.NoError(t, err)
	assert.Equal(t, "Nairobi", kenya.Capital)

	meta, err := store.ReadRefreshMetadata(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, meta.TotalCountries)
	assert.True(t, meta.LastRefreshedAt.Equal(seeded.LastRefreshedAt))
}

func TestRefreshDegradedMode(t *testing.T) {
	countrySrc := &stubCountrySource{countries: testFetch()}
	rateSrc := &stubRateSource{rates: testRates()}
	engine, store := newTestEngine(t, countrySrc, rateSrc, FixedMultiplier(1500))
	ctx := context.Background()

	// Establish a full refresh first so degraded mode has values to replace.
	_, err := engine.Refresh(ctx)
	require.NoError(t, err)

	rateSrc.rates = nil
	rateSrc.err = errors.New("rate API timeout")

	outcome, err := engine.Refresh(ctx)
	require.NoError(t, err)
	assert.True(t, outcome.Degraded)
	assert.Equal(t, 3, outcome.TotalCountries)

	t.Run("Currency Derived Fields Forced Null", func(t *testing.T) {
		nigeria, err := store.FindByNormalizedName(ctx, "nigeria")
		require.NoError(t, err)
		require.NotNil(t, nigeria.CurrencyCode) // code still known from the country source
		assert.Nil(t, nigeria.ExchangeRate)
		assert.Nil(t, nigeria.EstimatedGdp)
	})

	t.Run("No Currency Branch Still Zero", func(t *testing.T) {
		togo, err := store.FindByNormalizedName(ctx, "togo")
		require.NoError(t, err)
		require.NotNil(t, togo.EstimatedGdp)
		assert.Zero(t, *togo.EstimatedGdp)
	})
}

func TestRefreshSkipsNamelessEntries(t *testing.T) {
	fetch := append(testFetch(), source.RawCountry{Name: "   ", Population: 5})
	engine, store := newTestEngine(t,
		&stubCountrySource{countries: fetch},
		&stubRateSource{rates: testRates()},
		FixedMultiplier(1500),
	)

	outcome, err := engine.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, outcome.TotalCountries)

	meta, err := store.ReadRefreshMetadata(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, meta.TotalCountries)
}
