package domain

// Benchmark is a named reference total in tonnes CO2e per year.
type Benchmark struct {
	Name  string  `json:"name"  yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Priority is one category ranked by its contribution to the total.
// Share is a percentage of the total.
type Priority struct {
	Category string  `json:"category" yaml:"category"`
	Value    float64 `json:"value"    yaml:"value"`
	Share    float64 `json:"share"    yaml:"share"`
	Hint     string  `json:"hint"     yaml:"hint"`
}

// Equivalency expresses a total as an everyday quantity.
type Equivalency struct {
	Type           string  `json:"type"           yaml:"type"`
	Value          float64 `json:"value"          yaml:"value"`
	FormattedValue string  `json:"formattedValue" yaml:"formattedValue"`
	Label          string  `json:"label"          yaml:"label"`
}

// Insights is the display-oriented analysis of a calculation.
type Insights struct {
	Kind            EmissionKind     `json:"kind"                      yaml:"kind"`
	TotalEmissions  float64          `json:"totalEmissions"            yaml:"totalEmissions"`
	FormattedTotal  string           `json:"formattedTotal"            yaml:"formattedTotal"`
	Performance     PerformanceLevel `json:"performance"               yaml:"performance"`
	Benchmarks      []Benchmark      `json:"benchmarks"                yaml:"benchmarks"`
	Priorities      []Priority       `json:"priorities"                yaml:"priorities"`
	CarbonIntensity *float64         `json:"carbonIntensity,omitempty" yaml:"carbonIntensity,omitempty"`
	Equivalencies   []Equivalency    `json:"equivalencies"             yaml:"equivalencies"`
	DisplayText     string           `json:"displayText,omitempty"     yaml:"displayText,omitempty"`
}
