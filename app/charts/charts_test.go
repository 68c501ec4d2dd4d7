package charts_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/charts"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{1234, "R 1,2K"},
		{1000000, "R 1M"},
		{123.45, "R 123"},
		{999, "R 999"},
		{1000, "R 1,0K"},
		{2500000, "R 3M"},
		{0, "R 0"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, charts.FormatCurrency(c.value), "value %v", c.value)
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{1234, "1.2K"},
		{1000000, "1.0M"},
		{123, "123"},
		{999, "999"},
		{1000, "1.0K"},
		{1500000, "1.5M"},
		{12.5, "12.5"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, charts.FormatValue(c.value), "value %v", c.value)
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "12.3%", charts.FormatPercentage(12.345))
	assert.Equal(t, "100.0%", charts.FormatPercentage(100))
	assert.Equal(t, "0.0%", charts.FormatPercentage(0))
}

func TestPeriods_DailySpacing(t *testing.T) {
	dates := charts.Periods(charts.Day, 5)
	require.Len(t, dates, 5)

	now := time.Now()
	assert.Equal(t, now.Day(), dates[4].Day(), "last period is today")
	for i := 1; i < len(dates); i++ {
		assert.Equal(t, 24*time.Hour, dates[i].Sub(dates[i-1]))
	}
}

func TestPeriodsEnding(t *testing.T) {
	end := time.Date(2025, time.October, 16, 12, 0, 0, 0, time.UTC)

	weeks := charts.PeriodsEnding(end, charts.Week, 3)
	require.Len(t, weeks, 3)
	assert.Equal(t, 2, weeks[0].Day())
	assert.Equal(t, 9, weeks[1].Day())
	assert.Equal(t, 16, weeks[2].Day())

	months := charts.PeriodsEnding(end, charts.Month, 3)
	assert.Equal(t, time.August, months[0].Month())
	assert.Equal(t, time.September, months[1].Month())
	assert.Equal(t, time.October, months[2].Month())

	years := charts.PeriodsEnding(end, charts.Year, 2)
	assert.Equal(t, 2024, years[0].Year())
	assert.Equal(t, 2025, years[1].Year())
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2025, time.October, 16, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "16 Oct", charts.FormatDate(date, charts.Day))
	assert.Equal(t, "Oct 16", charts.FormatDate(date, charts.Week))
	assert.Equal(t, "Oct 2025", charts.FormatDate(date, charts.Month))
	assert.Equal(t, "2025", charts.FormatDate(date, charts.Year))
}

func TestParseGranularity(t *testing.T) {
	assert.Equal(t, charts.Week, charts.ParseGranularity("week"))
	assert.Equal(t, charts.Day, charts.ParseGranularity(""))
	assert.Equal(t, charts.Day, charts.ParseGranularity("fortnight"))
}

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func TestMockSeries_ValuesStayInBounds(t *testing.T) {
	for _, n := range []int{1, 7, 30, 100} {
		s := charts.MockSeries(charts.Day, n, charts.SeriesOptions{
			Min:  100,
			Max:  900,
			Rand: seededRand(uint64(n)),
		})
		points := s.Collect()
		require.Len(t, points, n)
		for _, p := range points {
			assert.GreaterOrEqual(t, p.Value, 100.0)
			assert.LessOrEqual(t, p.Value, 900.0)
		}
	}
}

func TestMockSeries_MaxDefaultsIndependentlyOfMin(t *testing.T) {
	// Only Min set: the walk must stay in [500, 1000], not clamp to zero.
	s := charts.MockSeries(charts.Day, 10, charts.SeriesOptions{
		Min:  500,
		Rand: seededRand(11),
	})
	points := s.Collect()
	require.Len(t, points, 10)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.Value, 500.0)
		assert.LessOrEqual(t, p.Value, 1000.0)
	}
}

func TestMockSeries_TrendBiasesTheWalk(t *testing.T) {
	halves := func(trend charts.Trend, seed uint64) (first, second float64) {
		s := charts.MockSeries(charts.Day, 20, charts.SeriesOptions{
			Min:   1000,
			Max:   5000,
			Trend: trend,
			Rand:  seededRand(seed),
		})
		points := s.Collect()
		require.Len(t, points, 20)
		for i, p := range points {
			if i < 10 {
				first += p.Value
			} else {
				second += p.Value
			}
		}
		return first / 10, second / 10
	}

	up1, up2 := halves(charts.TrendUp, 1)
	assert.Greater(t, up2, up1)

	down1, down2 := halves(charts.TrendDown, 1)
	assert.Less(t, down2, down1)
}

func TestMockSeries_IsNotRestartable(t *testing.T) {
	s := charts.MockSeries(charts.Day, 3, charts.SeriesOptions{Rand: seededRand(7)})

	p, ok := s.Next()
	require.True(t, ok)
	assert.NotEmpty(t, p.Label)

	rest := s.Collect()
	assert.Len(t, rest, 2, "Collect only drains what Next has not consumed")

	_, ok = s.Next()
	assert.False(t, ok)
	assert.Empty(t, s.Collect())
}

func TestMockSeries_DefaultsAndLabels(t *testing.T) {
	s := charts.MockSeries(charts.Month, 4, charts.SeriesOptions{Rand: seededRand(3)})
	points := s.Collect()
	require.Len(t, points, 4)

	// Zero options mean the [0,1000] default range.
	for _, p := range points {
		assert.GreaterOrEqual(t, p.Value, 0.0)
		assert.LessOrEqual(t, p.Value, 1000.0)
	}

	// Labels come from the month formatter, newest last.
	now := time.Now()
	assert.Equal(t, charts.FormatDate(now, charts.Month), points[3].Label)
}
