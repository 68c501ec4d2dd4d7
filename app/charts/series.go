package charts

import (
	"math"
	"math/rand/v2"
	"time"
)

// Trend biases the mock series walk up, down or keeps it flat.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

func (t Trend) factor() float64 {
	switch t {
	case TrendUp:
		return 1.1
	case TrendDown:
		return 0.9
	default:
		return 1.0
	}
}

// Point is one chart sample: a period label and its value.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// SeriesOptions tunes MockSeries. A zero value means [0,1000], stable
// trend, time-seeded randomness.
type SeriesOptions struct {
	Min   float64
	Max   float64
	Trend Trend
	Rand  *rand.Rand
}

// Series is a lazy, finite, non-restartable sequence of points. Call
// Next until it reports false, or Collect to drain it in one go.
type Series struct {
	labels []string
	rng    *rand.Rand
	min    float64
	max    float64
	factor float64
	prev   float64
	idx    int
}

// MockSeries produces demo dashboard data: a random walk that starts
// at the midpoint of [min,max], multiplies by the trend factor each
// step, perturbs by up to ±10% of the range and clamps back into
// bounds. Values are rounded to whole numbers.
func MockSeries(g Granularity, count int, opts SeriesOptions) *Series {
	// Max defaults independently of Min, so {Min: 500} walks in [500, 1000].
	if opts.Max == 0 {
		opts.Max = 1000
	}
	rng := opts.Rand
	if rng == nil {
		now := time.Now()
		rng = rand.New(rand.NewPCG(uint64(now.Unix()), uint64(now.Nanosecond())))
	}

	labels := make([]string, 0, count)
	for _, date := range Periods(g, count) {
		labels = append(labels, FormatDate(date, g))
	}

	return &Series{
		labels: labels,
		rng:    rng,
		min:    opts.Min,
		max:    opts.Max,
		factor: opts.Trend.factor(),
		prev:   (opts.Min + opts.Max) / 2,
	}
}

// Next emits the following point, or false once the series is spent.
// The clamped value, not the emitted rounding, seeds the next step.
func (s *Series) Next() (Point, bool) {
	if s.idx >= len(s.labels) {
		return Point{}, false
	}
	variation := (s.rng.Float64() - 0.5) * (s.max - s.min) * 0.2
	s.prev = math.Min(s.max, math.Max(s.min, s.prev*s.factor+variation))

	p := Point{Label: s.labels[s.idx], Value: math.Round(s.prev)}
	s.idx++
	return p, true
}

// Collect drains whatever remains of the series into a slice.
func (s *Series) Collect() []Point {
	points := make([]Point, 0, len(s.labels)-s.idx)
	for {
		p, ok := s.Next()
		if !ok {
			return points
		}
		points = append(points, p)
	}
}
