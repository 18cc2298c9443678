package domain

// Forecast is a twelve-month projection of a yearly total.
// Months and Values are index-aligned.
type Forecast struct {
	Months []string  `json:"months" yaml:"months"`
	Values []float64 `json:"values" yaml:"values"`
	Trend  Trend     `json:"trend"  yaml:"trend"`
}

// ForecastPoint is a single labelled forecast value.
type ForecastPoint struct {
	Month string
	Value float64
}

// Points returns the forecast as (month, value) pairs.
func (f Forecast) Points() []ForecastPoint {
	n := min(len(f.Months), len(f.Values))
	points := make([]ForecastPoint, n)
	for i := range n {
		points[i] = ForecastPoint{Month: f.Months[i], Value: f.Values[i]}
	}
	return points
}
