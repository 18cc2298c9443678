package domain

// PersonalEmissions is the per-category breakdown of a personal footprint,
// all values in tonnes CO2e per year.
type PersonalEmissions struct {
	Electricity    float64 `json:"electricity"    yaml:"electricity"`
	Transport      float64 `json:"transport"      yaml:"transport"`
	Flights        float64 `json:"flights"        yaml:"flights"`
	Diet           float64 `json:"diet"           yaml:"diet"`
	Shopping       float64 `json:"shopping"       yaml:"shopping"`
	Waste          float64 `json:"waste"          yaml:"waste"`
	TotalEmissions float64 `json:"totalEmissions" yaml:"totalEmissions"`
}

// IndustrialBreakdown holds the six sub-terms behind the three scopes.
type IndustrialBreakdown struct {
	NaturalGas  float64 `json:"naturalGas"  yaml:"naturalGas"`
	Diesel      float64 `json:"diesel"      yaml:"diesel"`
	Electricity float64 `json:"electricity" yaml:"electricity"`
	Travel      float64 `json:"travel"      yaml:"travel"`
	Waste       float64 `json:"waste"       yaml:"waste"`
	Water       float64 `json:"water"       yaml:"water"`
}

// IndustrialEmissions is the GHG Protocol scope breakdown of a company
// footprint, all values in tonnes CO2e per year.
type IndustrialEmissions struct {
	Scope1         float64             `json:"scope1"         yaml:"scope1"`
	Scope2         float64             `json:"scope2"         yaml:"scope2"`
	Scope3         float64             `json:"scope3"         yaml:"scope3"`
	TotalEmissions float64             `json:"totalEmissions" yaml:"totalEmissions"`
	Breakdown      IndustrialBreakdown `json:"breakdown"      yaml:"breakdown"`
}
