package engine

import (
	"cmp"
	"math"
	"slices"

	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
)

// Personal benchmarks, tonnes CO2e per person per year.
const (
	BenchmarkGlobalAverage = 4.8
	BenchmarkUSAverage     = 16.0
	BenchmarkEUAverage     = 8.2
	BenchmarkTarget2030    = 2.3
)

// BenchmarkManufacturingAverage is the yearly industrial reference total.
const BenchmarkManufacturingAverage = 250.0

const topPriorities = 3

// PersonalInsights grades a personal result against the per-capita
// benchmarks and ranks its categories.
func PersonalInsights(e domain.PersonalEmissions) domain.Insights {
	total := e.TotalEmissions

	var level domain.PerformanceLevel
	switch {
	case total < BenchmarkTarget2030:
		level = domain.PerformanceExcellent
	case total < BenchmarkGlobalAverage:
		level = domain.PerformanceGood
	case total < BenchmarkUSAverage:
		level = domain.PerformanceAverage
	default:
		level = domain.PerformanceNeedsImprovement
	}

	candidates := []domain.Priority{
		{Category: "Flights", Value: e.Flights, Hint: "Reduce air travel frequency"},
		{Category: "Electricity", Value: e.Electricity, Hint: "Switch to renewable energy"},
		{Category: "Diet", Value: e.Diet, Hint: "Adopt more plant-based meals"},
		{Category: "Transport", Value: e.Transport, Hint: "Use electric or public transport"},
		{Category: "Shopping", Value: e.Shopping, Hint: "Buy sustainable products"},
		{Category: "Waste", Value: e.Waste, Hint: "Increase recycling and composting"},
	}

	eqs := Equivalencies(total)
	return domain.Insights{
		Kind:           domain.EmissionKindPersonal,
		TotalEmissions: total,
		FormattedTotal: FormatTonnes(total),
		Performance:    level,
		Benchmarks: []domain.Benchmark{
			{Name: "global_average", Value: BenchmarkGlobalAverage},
			{Name: "us_average", Value: BenchmarkUSAverage},
			{Name: "eu_average", Value: BenchmarkEUAverage},
			{Name: "target_2030", Value: BenchmarkTarget2030},
		},
		Priorities:    rankPriorities(candidates, total),
		Equivalencies: eqs,
		DisplayText:   EquivalencyText(eqs),
	}
}

// IndustrialInsights grades an industrial result against the manufacturing
// average. Carbon intensity is reported per $1M of annualRevenue and only
// when revenue is positive and the ratio is finite.
func IndustrialInsights(e domain.IndustrialEmissions, annualRevenue float64) domain.Insights {
	total := e.TotalEmissions

	var level domain.PerformanceLevel
	switch {
	case total < BenchmarkManufacturingAverage*0.7:
		level = domain.PerformanceExcellent
	case total < BenchmarkManufacturingAverage:
		level = domain.PerformanceGood
	case total < BenchmarkManufacturingAverage*1.5:
		level = domain.PerformanceAverage
	default:
		level = domain.PerformanceNeedsImprovement
	}

	candidates := []domain.Priority{
		{Category: "Scope 2 (Energy)", Value: e.Scope2, Hint: "Switch to renewable energy sources"},
		{Category: "Scope 1 (Direct)", Value: e.Scope1, Hint: "Improve equipment efficiency"},
		{Category: "Scope 3 (Value Chain)", Value: e.Scope3, Hint: "Optimize supply chain"},
	}

	var intensity *float64
	if annualRevenue > 0 {
		if v := total / (annualRevenue / 1_000_000); !math.IsInf(v, 0) && !math.IsNaN(v) {
			intensity = &v
		}
	}

	eqs := Equivalencies(total)
	return domain.Insights{
		Kind:           domain.EmissionKindIndustrial,
		TotalEmissions: total,
		FormattedTotal: FormatTonnes(total),
		Performance:    level,
		Benchmarks: []domain.Benchmark{
			{Name: "manufacturing_average", Value: BenchmarkManufacturingAverage},
		},
		Priorities:      rankPriorities(candidates, total),
		CarbonIntensity: intensity,
		Equivalencies:   eqs,
		DisplayText:     EquivalencyText(eqs),
	}
}

// rankPriorities sorts candidates by value descending, keeping input order
// for ties, fills in shares and keeps the top three.
func rankPriorities(candidates []domain.Priority, total float64) []domain.Priority {
	slices.SortStableFunc(candidates, func(a, b domain.Priority) int {
		return cmp.Compare(b.Value, a.Value)
	})
	if len(candidates) > topPriorities {
		candidates = candidates[:topPriorities]
	}
	for i := range candidates {
		if total > 0 {
			candidates[i].Share = candidates[i].Value / total * 100
		}
	}
	return candidates
}
