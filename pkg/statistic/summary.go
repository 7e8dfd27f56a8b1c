package statistic

import (
	"errors"
	"math"
)

// ErrNoPoints is returned by [Summarize] for an empty point set.
var ErrNoPoints = errors.New("no points to summarize")

// Summary describes the distribution of distances from the main sequence.
type Summary struct {
	Count             int     `json:"count"`
	Mean              float64 `json:"mean"`
	Variance          float64 `json:"variance"`
	StandardDeviation float64 `json:"standard_deviation"`
}

// Summarize computes the mean, population variance (divided by N) and
// standard deviation of the points' distances.
func Summarize(points []Point) (Summary, error) {
	n := len(points)
	if n == 0 {
		return Summary{}, ErrNoPoints
	}

	var sum float64
	for _, p := range points {
		sum += p.Distance()
	}
	mean := sum / float64(n)

	var sq float64
	for _, p := range points {
		d := p.Distance() - mean
		sq += d * d
	}
	variance := sq / float64(n)

	return Summary{
		Count:             n,
		Mean:              mean,
		Variance:          variance,
		StandardDeviation: math.Sqrt(variance),
	}, nil
}
