package engine

import "github.com/heartmarshall/carbonfootprint-backend/internal/domain"

const (
	monthsPerYear = 12
	weeksPerYear  = 52
	kgPerTonne    = 1000
)

// Personal computes the yearly household footprint in tonnes CO2e.
//
// Every term is rounded to float64 before it enters the sum so the total
// equals the sum of the returned fields bit for bit.
func (c *Calculator) Personal(a domain.PersonalActivity) domain.PersonalEmissions {
	f := c.factors

	electricity := float64(a.ElectricityKwh * monthsPerYear * f.Electricity.Lookup(a.Country) / kgPerTonne)
	transport := float64(a.WeeklyDrivingKm * weeksPerYear * f.Transport.Car / kgPerTonne)
	flights := float64(a.AnnualFlightHours * f.Transport.Flight)
	diet := f.Diet.Lookup(a.DietType)
	shopping := float64(a.MonthlyShopping * monthsPerYear * f.Lifestyle.Shopping / kgPerTonne)
	waste := float64(a.WeeklyWasteKg * weeksPerYear * f.Lifestyle.Waste / kgPerTonne)

	return domain.PersonalEmissions{
		Electricity:    electricity,
		Transport:      transport,
		Flights:        flights,
		Diet:           diet,
		Shopping:       shopping,
		Waste:          waste,
		TotalEmissions: electricity + transport + flights + diet + shopping + waste,
	}
}
