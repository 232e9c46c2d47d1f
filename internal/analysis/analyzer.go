package analysis

import (
	"math"

	"github.com/pkg/errors"

	"github.com/user/plant_plotter_go/internal/parser"
)

// Series names, shared with the chart legend.
const (
	HeightLabel   = "Height (m)"
	ThrustLabel   = "Thrust (N)"
	SetpointLabel = "Height Setpoint (m)"
)

// Helper to calculate mean
func calculateMean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// Population standard deviation; a single point has 0 spread.
func calculateStdDev(data []float64, mean float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	if len(data) == 1 {
		return 0.0
	}
	sumSqDiff := 0.0
	for _, v := range data {
		sumSqDiff += (v - mean) * (v - mean)
	}
	return math.Sqrt(sumSqDiff / float64(len(data)))
}

func calculateMinMax(data []float64) (float64, float64) {
	if len(data) == 0 {
		return math.NaN(), math.NaN()
	}
	minVal, maxVal := data[0], data[0]
	for _, v := range data[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	return minVal, maxVal
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// describe skips NaN and infinite samples, as the chart leaves them as gaps.
func describe(name string, samples []float64) SeriesStats {
	data := make([]float64, 0, len(samples))
	for _, v := range samples {
		if isFinite(v) {
			data = append(data, v)
		}
	}

	st := SeriesStats{
		Name:   name,
		N:      len(samples),
		Min:    math.NaN(),
		Max:    math.NaN(),
		Mean:   math.NaN(),
		StdDev: math.NaN(),
		Range:  math.NaN(),
		Final:  math.NaN(),
	}
	if len(data) == 0 {
		return st
	}
	st.Min, st.Max = calculateMinMax(data)
	st.Mean = calculateMean(data)
	st.StdDev = calculateStdDev(data, st.Mean)
	st.Range = st.Max - st.Min
	st.Final = data[len(data)-1]
	return st
}

func tracking(height, setpoint []float64) TrackingStats {
	ts := TrackingStats{
		MeanAbsError: math.NaN(),
		RMSError:     math.NaN(),
		MaxAbsError:  math.NaN(),
		FinalError:   math.NaN(),
	}
	var sumAbs, sumSq, maxAbs float64
	n := 0
	for i := range height {
		e := height[i] - setpoint[i]
		if !isFinite(e) {
			continue
		}
		sumAbs += math.Abs(e)
		sumSq += e * e
		maxAbs = math.Max(maxAbs, math.Abs(e))
		ts.FinalError = e
		n++
	}
	if n == 0 {
		return ts
	}
	ts.MeanAbsError = sumAbs / float64(n)
	ts.RMSError = math.Sqrt(sumSq / float64(n))
	ts.MaxAbsError = maxAbs
	return ts
}

// Summarize computes descriptive statistics for a loaded Series.
func Summarize(s *parser.Series) (*Summary, error) {
	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(err, "cannot summarize series")
	}
	return &Summary{
		Steps:    s.Len(),
		Height:   describe(HeightLabel, s.Height),
		Thrust:   describe(ThrustLabel, s.Thrust),
		Setpoint: describe(SetpointLabel, s.Setpoint),
		Tracking: tracking(s.Height, s.Setpoint),
	}, nil
}
