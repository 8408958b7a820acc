package countries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateGDP(t *testing.T) {
	rate := 2.0

	t.Run("Computes Estimate", func(t *testing.T) {
		gdp := EstimateGDP(1000, 1500, &rate)
		require.NotNil(t, gdp)
		assert.Equal(t, 1000*1500.0/2.0, *gdp)
	})

	t.Run("Zero Population", func(t *testing.T) {
		gdp := EstimateGDP(0, 1500, &rate)
		require.NotNil(t, gdp)
		assert.Zero(t, *gdp)
	})

	t.Run("Nil Rate Fails Closed", func(t *testing.T) {
		assert.Nil(t, EstimateGDP(1000, 1500, nil))
	})

	t.Run("Zero Rate Fails Closed", func(t *testing.T) {
		zero := 0.0
		assert.Nil(t, EstimateGDP(1000, 1500, &zero))
	})

	t.Run("Negative Rate Fails Closed", func(t *testing.T) {
		neg := -1.5
		assert.Nil(t, EstimateGDP(1000, 1500, &neg))
	})
}

func TestRandomMultiplier(t *testing.T) {
	src := RandomMultiplier{}
	for i := 0; i < 1000; i++ {
		m := src.Multiplier()
		assert.GreaterOrEqual(t, m, 1000.0)
		assert.Less(t, m, 2000.0)
	}
}

func TestFixedMultiplier(t *testing.T) {
	assert.Equal(t, 1234.5, FixedMultiplier(1234.5).Multiplier())
}
