package analysis

// SeriesStats holds descriptive statistics for one plotted series. N counts
// every sample; the rest cover finite samples only and are NaN if there are none.
type SeriesStats struct {
	Name   string
	N      int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64 // population
	Range  float64
	Final  float64
}

// TrackingStats compares height against its setpoint step by step.
type TrackingStats struct {
	MeanAbsError float64
	RMSError     float64
	MaxAbsError  float64
	FinalError   float64 // height - setpoint at the last step
}

// Summary is the result of Summarize.
type Summary struct {
	Steps    int
	Height   SeriesStats
	Thrust   SeriesStats
	Setpoint SeriesStats
	Tracking TrackingStats
}

// Stats returns the per-series statistics in plotting order.
func (s *Summary) Stats() []SeriesStats {
	return []SeriesStats{s.Height, s.Thrust, s.Setpoint}
}
