package domain

// EmissionKind distinguishes the two calculator families.
type EmissionKind string

const (
	EmissionKindPersonal   EmissionKind = "personal"
	EmissionKindIndustrial EmissionKind = "industrial"
)

func (k EmissionKind) String() string { return string(k) }

func (k EmissionKind) IsValid() bool {
	switch k {
	case EmissionKindPersonal, EmissionKindIndustrial:
		return true
	}
	return false
}

// DietType selects the flat yearly diet emission value.
// Values outside the known set are accepted and resolve to DietMixed.
type DietType string

const (
	DietVegetarian  DietType = "vegetarian"
	DietPescatarian DietType = "pescatarian"
	DietMixed       DietType = "mixed"
	DietMeatHeavy   DietType = "meat-heavy"
)

func (d DietType) String() string { return string(d) }

func (d DietType) IsKnown() bool {
	switch d {
	case DietVegetarian, DietPescatarian, DietMixed, DietMeatHeavy:
		return true
	}
	return false
}

// Trend is the direction tag attached to a forecast.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

func (t Trend) String() string { return string(t) }

func (t Trend) IsValid() bool {
	switch t {
	case TrendIncreasing, TrendDecreasing, TrendStable:
		return true
	}
	return false
}

// PerformanceLevel grades a total against the benchmark ladder.
type PerformanceLevel string

const (
	PerformanceExcellent        PerformanceLevel = "excellent"
	PerformanceGood             PerformanceLevel = "good"
	PerformanceAverage          PerformanceLevel = "average"
	PerformanceNeedsImprovement PerformanceLevel = "needs_improvement"
)

func (p PerformanceLevel) String() string { return string(p) }

func (p PerformanceLevel) IsValid() bool {
	switch p {
	case PerformanceExcellent, PerformanceGood, PerformanceAverage, PerformanceNeedsImprovement:
		return true
	}
	return false
}
