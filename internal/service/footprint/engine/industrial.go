package engine

import "github.com/heartmarshall/carbonfootprint-backend/internal/domain"

// Industrial computes the yearly company footprint by GHG Protocol scope,
// in tonnes CO2e. Grid electricity always uses the default grid factor;
// industry, size and revenue play no part.
func (c *Calculator) Industrial(a domain.IndustrialActivity) domain.IndustrialEmissions {
	f := c.factors

	// Scope 1: direct combustion.
	naturalGas := float64(a.NaturalGas * f.Industrial.NaturalGas / kgPerTonne)
	diesel := float64(a.DieselFuel * f.Industrial.Diesel / kgPerTonne)
	scope1 := naturalGas + diesel

	// Scope 2: purchased electricity net of the renewable share.
	renewableShare := a.RenewableEnergy / 100
	effectiveGrid := float64(a.GridElectricity * (1 - renewableShare))
	electricity := float64(effectiveGrid * f.Electricity.Default() / kgPerTonne)
	scope2 := electricity

	// Scope 3: value chain.
	travel := float64(a.BusinessTravel * f.Transport.BusinessTravel / kgPerTonne)
	waste := float64(a.WasteGenerated * f.Industrial.Waste)
	water := float64(a.WaterUsage * f.Industrial.Water / kgPerTonne)
	scope3 := travel + waste + water

	return domain.IndustrialEmissions{
		Scope1:         scope1,
		Scope2:         scope2,
		Scope3:         scope3,
		TotalEmissions: scope1 + scope2 + scope3,
		Breakdown: domain.IndustrialBreakdown{
			NaturalGas:  naturalGas,
			Diesel:      diesel,
			Electricity: electricity,
			Travel:      travel,
			Waste:       waste,
			Water:       water,
		},
	}
}
