package fx

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	rate  decimal.Decimal
	calls int
}

func (s *countingSource) Rate(context.Context, string) (decimal.Decimal, error) {
	s.calls++
	return s.rate, nil
}

func TestCachedRateSource_ServesFromCache(t *testing.T) {
	src := &countingSource{rate: decimal.RequireFromString("83.50")}
	cached := NewCachedRateSource(src, NewMemoryCache(time.Minute))

	for i := 0; i < 5; i++ {
		rate, err := cached.Rate(context.Background(), "USD_INR")
		require.NoError(t, err)
		assert.Equal(t, "83.5", rate.String())
	}
	assert.Equal(t, 1, src.calls)
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache(time.Millisecond)
	cache.Set(context.Background(), "USD_INR", decimal.NewFromInt(83))

	time.Sleep(5 * time.Millisecond)
	_, ok := cache.Get(context.Background(), "USD_INR")
	assert.False(t, ok)
}

func TestMemoryCache_MissOnUnknownPair(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	_, ok := cache.Get(context.Background(), "EUR_INR")
	assert.False(t, ok)
}
