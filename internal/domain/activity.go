package domain

// PersonalActivity is a validated household activity submission.
// Quantities are non-negative; PublicTransportUsage is informational only.
type PersonalActivity struct {
	Country              string
	ElectricityKwh       float64 // per month
	WeeklyDrivingKm      float64
	AnnualFlightHours    float64
	PublicTransportUsage string
	DietType             DietType
	MonthlyShopping      float64 // currency units
	WeeklyWasteKg        float64
}

// IndustrialActivity is a validated company activity submission.
// IndustryType, CompanySize and AnnualRevenue are collected but never
// enter an emission formula.
type IndustrialActivity struct {
	IndustryType    string
	CompanySize     string
	AnnualRevenue   float64
	NaturalGas      float64 // m3 per year
	DieselFuel      float64 // litres per year
	GridElectricity float64 // kWh per year
	RenewableEnergy float64 // percent, 0..100
	BusinessTravel  float64 // km per year
	WasteGenerated  float64 // tonnes per year
	WaterUsage      float64 // m3 per year
}
