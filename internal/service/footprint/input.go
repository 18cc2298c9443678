package footprint

import (
	"math"
	"strings"

	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
)

// PersonalInput holds a raw personal submission. Pointer fields let
// Validate tell a missing value from a zero one.
type PersonalInput struct {
	Country              *string
	ElectricityKwh       *float64
	WeeklyDrivingKm      *float64
	AnnualFlightHours    *float64
	PublicTransportUsage *string
	DietType             *string
	MonthlyShopping      *float64
	WeeklyWasteKg        *float64 // optional, 0 when absent
}

// Validate checks all fields and collects all errors.
func (i PersonalInput) Validate() error {
	var errs []domain.FieldError

	errs = requireText(errs, "country", i.Country)
	errs = requireQuantity(errs, "electricityKwh", i.ElectricityKwh)
	errs = requireQuantity(errs, "weeklyDrivingKm", i.WeeklyDrivingKm)
	errs = requireQuantity(errs, "annualFlightHours", i.AnnualFlightHours)
	errs = requireText(errs, "publicTransportUsage", i.PublicTransportUsage)
	errs = requireText(errs, "dietType", i.DietType)
	errs = requireQuantity(errs, "monthlyShopping", i.MonthlyShopping)
	if i.WeeklyWasteKg != nil {
		errs = requireQuantity(errs, "weeklyWasteKg", i.WeeklyWasteKg)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// activity converts a validated input. Strings are kept verbatim: factor
// lookups are exact.
func (i PersonalInput) activity() domain.PersonalActivity {
	return domain.PersonalActivity{
		Country:              *i.Country,
		ElectricityKwh:       *i.ElectricityKwh,
		WeeklyDrivingKm:      *i.WeeklyDrivingKm,
		AnnualFlightHours:    *i.AnnualFlightHours,
		PublicTransportUsage: *i.PublicTransportUsage,
		DietType:             domain.DietType(*i.DietType),
		MonthlyShopping:      *i.MonthlyShopping,
		WeeklyWasteKg:        valueOr(i.WeeklyWasteKg, 0),
	}
}

// IndustrialInput holds a raw industrial submission.
type IndustrialInput struct {
	IndustryType    *string
	CompanySize     *string
	AnnualRevenue   *float64
	NaturalGas      *float64
	DieselFuel      *float64
	GridElectricity *float64
	RenewableEnergy *float64
	BusinessTravel  *float64
	WasteGenerated  *float64
	WaterUsage      *float64
}

// Validate checks all fields and collects all errors.
func (i IndustrialInput) Validate() error {
	var errs []domain.FieldError

	errs = requireText(errs, "industryType", i.IndustryType)
	errs = requireText(errs, "companySize", i.CompanySize)
	errs = requireQuantity(errs, "annualRevenue", i.AnnualRevenue)
	errs = requireQuantity(errs, "naturalGas", i.NaturalGas)
	errs = requireQuantity(errs, "dieselFuel", i.DieselFuel)
	errs = requireQuantity(errs, "gridElectricity", i.GridElectricity)
	errs = requireQuantity(errs, "renewableEnergy", i.RenewableEnergy)
	if i.RenewableEnergy != nil && *i.RenewableEnergy > 100 {
		errs = append(errs, domain.FieldError{Field: "renewableEnergy", Message: "max 100"})
	}
	errs = requireQuantity(errs, "businessTravel", i.BusinessTravel)
	errs = requireQuantity(errs, "wasteGenerated", i.WasteGenerated)
	errs = requireQuantity(errs, "waterUsage", i.WaterUsage)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i IndustrialInput) activity() domain.IndustrialActivity {
	return domain.IndustrialActivity{
		IndustryType:    *i.IndustryType,
		CompanySize:     *i.CompanySize,
		AnnualRevenue:   *i.AnnualRevenue,
		NaturalGas:      *i.NaturalGas,
		DieselFuel:      *i.DieselFuel,
		GridElectricity: *i.GridElectricity,
		RenewableEnergy: *i.RenewableEnergy,
		BusinessTravel:  *i.BusinessTravel,
		WasteGenerated:  *i.WasteGenerated,
		WaterUsage:      *i.WaterUsage,
	}
}

// ListInput holds the parameters for listing records.
type ListInput struct {
	Limit    int
	Offset   int
	OnlyMine bool
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func requireText(errs []domain.FieldError, field string, v *string) []domain.FieldError {
	if v == nil || strings.TrimSpace(*v) == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	return errs
}

func requireQuantity(errs []domain.FieldError, field string, v *float64) []domain.FieldError {
	switch {
	case v == nil:
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case math.IsNaN(*v) || math.IsInf(*v, 0):
		return append(errs, domain.FieldError{Field: field, Message: "must be a finite number"})
	case *v < 0:
		return append(errs, domain.FieldError{Field: field, Message: "must be non-negative"})
	}
	return errs
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

func validateID(id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be positive")
	}
	return nil
}
