package footprint

import (
	"math"

	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
)

// PersonalResult is a personal calculation with its derived outputs.
// Record is nil for estimates that were not persisted.
type PersonalResult struct {
	Record       *domain.PersonalRecord
	Calculations domain.PersonalEmissions
	Forecast     domain.Forecast
	Suggestions  []domain.Suggestion
	Insights     domain.Insights
}

// validate rejects a result that overflowed float64. Such values can be
// neither stored nor encoded as JSON.
func (r *PersonalResult) validate() error {
	c := r.Calculations
	return requireFinite(append([]resultTerm{
		{"electricity", c.Electricity},
		{"transport", c.Transport},
		{"flights", c.Flights},
		{"diet", c.Diet},
		{"shopping", c.Shopping},
		{"waste", c.Waste},
		{"totalEmissions", c.TotalEmissions},
	}, insightTerms(r.Insights)...))
}

// IndustrialResult is an industrial calculation with its derived outputs.
type IndustrialResult struct {
	Record       *domain.IndustrialRecord
	Calculations domain.IndustrialEmissions
	Forecast     domain.Forecast
	Suggestions  []domain.Suggestion
	Insights     domain.Insights
}

func (r *IndustrialResult) validate() error {
	c := r.Calculations
	b := c.Breakdown
	return requireFinite(append([]resultTerm{
		{"breakdown.naturalGas", b.NaturalGas},
		{"breakdown.diesel", b.Diesel},
		{"breakdown.electricity", b.Electricity},
		{"breakdown.travel", b.Travel},
		{"breakdown.waste", b.Waste},
		{"breakdown.water", b.Water},
		{"scope1", c.Scope1},
		{"scope2", c.Scope2},
		{"scope3", c.Scope3},
		{"totalEmissions", c.TotalEmissions},
	}, insightTerms(r.Insights)...))
}

// RecordPage is one page of a record listing.
type RecordPage[T any] struct {
	Items []T
	Total int
}

type resultTerm struct {
	field string
	value float64
}

// Equivalencies scale the total up by several orders of magnitude, so they
// overflow before the total does.
func insightTerms(in domain.Insights) []resultTerm {
	terms := make([]resultTerm, 0, len(in.Equivalencies)+1)
	for _, eq := range in.Equivalencies {
		terms = append(terms, resultTerm{"equivalencies." + eq.Type, eq.Value})
	}
	if in.CarbonIntensity != nil {
		terms = append(terms, resultTerm{"carbonIntensity", *in.CarbonIntensity})
	}
	return terms
}

func requireFinite(terms []resultTerm) error {
	var errs []domain.FieldError
	for _, t := range terms {
		if math.IsNaN(t.value) || math.IsInf(t.value, 0) {
			errs = append(errs, domain.FieldError{Field: t.field, Message: "result out of range"})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
