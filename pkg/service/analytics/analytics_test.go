package analytics

import (
	"testing"
	"time"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settled(day string, amount string) repository.SettledAmount {
	ts, _ := time.Parse("2006-01-02", day)
	return repository.SettledAmount{
		ProcessedAt: ts,
		Amount:      decimal.RequireFromString(amount),
	}
}

func TestMonthlySeries_BucketsAndSortsAscending(t *testing.T) {
	series := monthlySeries([]repository.SettledAmount{
		settled("2026-03-15", "100.50"),
		settled("2026-01-02", "200"),
		settled("2026-03-28", "9.50"),
		settled("2026-02-10", "50"),
	})

	require.Len(t, series, 3)
	assert.Equal(t, "2026-01", series[0].Month)
	assert.InDelta(t, 200, series[0].Revenue, 0.001)
	assert.Equal(t, "2026-02", series[1].Month)
	assert.InDelta(t, 50, series[1].Revenue, 0.001)
	assert.Equal(t, "2026-03", series[2].Month)
	assert.InDelta(t, 110, series[2].Revenue, 0.001)
}

func TestMonthlySeries_Empty(t *testing.T) {
	assert.Empty(t, monthlySeries(nil))
}
