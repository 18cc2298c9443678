package domain

// Suggestion is a templated reduction opportunity. PotentialReduction is in
// tonnes CO2e per year; Icon and Color are presentation keys.
type Suggestion struct {
	Category           string  `json:"category"           yaml:"category"`
	Title              string  `json:"title"              yaml:"title"`
	Description        string  `json:"description"        yaml:"description"`
	PotentialReduction float64 `json:"potentialReduction" yaml:"potentialReduction"`
	Icon               string  `json:"icon"               yaml:"icon"`
	Color              string  `json:"color"              yaml:"color"`
}
