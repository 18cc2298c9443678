package engine

import (
	"fmt"

	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
)

// EPA greenhouse gas equivalency factors, kg CO2e per unit.
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
const (
	EPAMilesDrivenFactor      = 0.192
	EPASmartphoneChargeFactor = 0.00822
	EPATreeSeedlingFactor     = 60.0
	EPAHomeDayFactor          = 18.3
)

// MinEquivalencyTonnes is the smallest total (1 kg) for which equivalencies
// are produced.
const MinEquivalencyTonnes = 0.001

// Equivalency types.
const (
	EquivalencyMilesDriven        = "miles_driven"
	EquivalencySmartphonesCharged = "smartphones_charged"
	EquivalencyTreeSeedlings      = "tree_seedlings"
	EquivalencyHomeDays           = "home_electricity_days"
)

type equivalencyDef struct {
	kind   string
	factor float64
	label  string
}

var equivalencyDefs = []equivalencyDef{
	{EquivalencyMilesDriven, EPAMilesDrivenFactor, "miles driven by an average passenger vehicle"},
	{EquivalencySmartphonesCharged, EPASmartphoneChargeFactor, "smartphones charged"},
	{EquivalencyTreeSeedlings, EPATreeSeedlingFactor, "tree seedlings grown for 10 years"},
	{EquivalencyHomeDays, EPAHomeDayFactor, "days of average home electricity use"},
}

// Equivalencies expresses totalTonnes as everyday quantities. It returns nil
// for totals below MinEquivalencyTonnes.
func Equivalencies(totalTonnes float64) []domain.Equivalency {
	if totalTonnes < MinEquivalencyTonnes {
		return nil
	}
	kg := totalTonnes * kgPerTonne
	out := make([]domain.Equivalency, len(equivalencyDefs))
	for i, d := range equivalencyDefs {
		v := kg / d.factor
		out[i] = domain.Equivalency{
			Type:           d.kind,
			Value:          v,
			FormattedValue: FormatCount(v),
			Label:          d.label,
		}
	}
	return out
}

// EquivalencyText renders the first two equivalencies as one sentence, or
// "" when there are fewer than two.
func EquivalencyText(eqs []domain.Equivalency) string {
	if len(eqs) < 2 {
		return ""
	}
	return fmt.Sprintf("Equivalent to %s %s or %s %s",
		eqs[0].FormattedValue, eqs[0].Label,
		eqs[1].FormattedValue, eqs[1].Label)
}
