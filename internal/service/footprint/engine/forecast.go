package engine

import "github.com/heartmarshall/carbonfootprint-backend/internal/domain"

// monthlyReduction is the optimistic per-month decline of the forecast.
const monthlyReduction = 0.02

var forecastMonths = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Forecast projects total over twelve months with a linear 2% monthly
// decline: values[i] = total * (1 - 0.02*i).
func Forecast(total float64) domain.Forecast {
	months := make([]string, len(forecastMonths))
	values := make([]float64, len(forecastMonths))
	for i, m := range forecastMonths {
		months[i] = m
		// Explicit conversion keeps 1 - 0.02*i from being fused.
		reduction := float64(float64(i) * monthlyReduction)
		values[i] = total * (1 - reduction)
	}
	return domain.Forecast{
		Months: months,
		Values: values,
		Trend:  domain.TrendDecreasing,
	}
}
