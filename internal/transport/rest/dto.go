package rest

import (
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
	"github.com/heartmarshall/carbonfootprint-backend/internal/service/footprint"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type personalRequest struct {
	Country              *string  `json:"country"`
	ElectricityKwh       *float64 `json:"electricityKwh"`
	WeeklyDrivingKm      *float64 `json:"weeklyDrivingKm"`
	AnnualFlightHours    *float64 `json:"annualFlightHours"`
	PublicTransportUsage *string  `json:"publicTransportUsage"`
	DietType             *string  `json:"dietType"`
	MonthlyShopping      *float64 `json:"monthlyShopping"`
	WeeklyWasteKg        *float64 `json:"weeklyWasteKg"`
}

func (req personalRequest) toInput() footprint.PersonalInput {
	return footprint.PersonalInput(req)
}

type industrialRequest struct {
	IndustryType    *string  `json:"industryType"`
	CompanySize     *string  `json:"companySize"`
	AnnualRevenue   *float64 `json:"annualRevenue"`
	NaturalGas      *float64 `json:"naturalGas"`
	DieselFuel      *float64 `json:"dieselFuel"`
	GridElectricity *float64 `json:"gridElectricity"`
	RenewableEnergy *float64 `json:"renewableEnergy"`
	BusinessTravel  *float64 `json:"businessTravel"`
	WasteGenerated  *float64 `json:"wasteGenerated"`
	WaterUsage      *float64 `json:"waterUsage"`
}

func (req industrialRequest) toInput() footprint.IndustrialInput {
	return footprint.IndustrialInput(req)
}

// ---------------------------------------------------------------------------
// Records
// ---------------------------------------------------------------------------

type personalRecordResponse struct {
	ID                   int64     `json:"id"`
	UserID               *string   `json:"userId"`
	Country              string    `json:"country"`
	ElectricityKwh       float64   `json:"electricityKwh"`
	WeeklyDrivingKm      float64   `json:"weeklyDrivingKm"`
	AnnualFlightHours    float64   `json:"annualFlightHours"`
	PublicTransportUsage string    `json:"publicTransportUsage"`
	DietType             string    `json:"dietType"`
	MonthlyShopping      float64   `json:"monthlyShopping"`
	WeeklyWasteKg        float64   `json:"weeklyWasteKg"`
	TotalEmissions       float64   `json:"totalEmissions"`
	CreatedAt            time.Time `json:"createdAt"`
}

func toPersonalRecord(rec *domain.PersonalRecord) *personalRecordResponse {
	if rec == nil {
		return nil
	}
	return &personalRecordResponse{
		ID:                   rec.ID,
		UserID:               userIDString(rec.UserID),
		Country:              rec.Country,
		ElectricityKwh:       rec.ElectricityKwh,
		WeeklyDrivingKm:      rec.WeeklyDrivingKm,
		AnnualFlightHours:    rec.AnnualFlightHours,
		PublicTransportUsage: rec.PublicTransportUsage,
		DietType:             rec.DietType.String(),
		MonthlyShopping:      rec.MonthlyShopping,
		WeeklyWasteKg:        rec.WeeklyWasteKg,
		TotalEmissions:       rec.TotalEmissions,
		CreatedAt:            rec.CreatedAt,
	}
}

type industrialRecordResponse struct {
	ID              int64     `json:"id"`
	UserID          *string   `json:"userId"`
	IndustryType    string    `json:"industryType"`
	CompanySize     string    `json:"companySize"`
	AnnualRevenue   float64   `json:"annualRevenue"`
	NaturalGas      float64   `json:"naturalGas"`
	DieselFuel      float64   `json:"dieselFuel"`
	GridElectricity float64   `json:"gridElectricity"`
	RenewableEnergy float64   `json:"renewableEnergy"`
	BusinessTravel  float64   `json:"businessTravel"`
	WasteGenerated  float64   `json:"wasteGenerated"`
	WaterUsage      float64   `json:"waterUsage"`
	Scope1Emissions float64   `json:"scope1Emissions"`
	Scope2Emissions float64   `json:"scope2Emissions"`
	Scope3Emissions float64   `json:"scope3Emissions"`
	TotalEmissions  float64   `json:"totalEmissions"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toIndustrialRecord(rec *domain.IndustrialRecord) *industrialRecordResponse {
	if rec == nil {
		return nil
	}
	return &industrialRecordResponse{
		ID:              rec.ID,
		UserID:          userIDString(rec.UserID),
		IndustryType:    rec.IndustryType,
		CompanySize:     rec.CompanySize,
		AnnualRevenue:   rec.AnnualRevenue,
		NaturalGas:      rec.NaturalGas,
		DieselFuel:      rec.DieselFuel,
		GridElectricity: rec.GridElectricity,
		RenewableEnergy: rec.RenewableEnergy,
		BusinessTravel:  rec.BusinessTravel,
		WasteGenerated:  rec.WasteGenerated,
		WaterUsage:      rec.WaterUsage,
		Scope1Emissions: rec.Scope1Emissions,
		Scope2Emissions: rec.Scope2Emissions,
		Scope3Emissions: rec.Scope3Emissions,
		TotalEmissions:  rec.TotalEmissions,
		CreatedAt:       rec.CreatedAt,
	}
}

func userIDString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

type pageResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func toPage[R any, T any](page *footprint.RecordPage[R], conv func(R) T) pageResponse[T] {
	items := make([]T, len(page.Items))
	for i, rec := range page.Items {
		items[i] = conv(rec)
	}
	return pageResponse[T]{Items: items, Total: page.Total}
}

// ---------------------------------------------------------------------------
// Calculation results
// ---------------------------------------------------------------------------

type personalResultResponse struct {
	Emission     *personalRecordResponse  `json:"emission"`
	Calculations domain.PersonalEmissions `json:"calculations"`
	Forecast     domain.Forecast          `json:"forecast"`
	Suggestions  []domain.Suggestion      `json:"suggestions"`
	Insights     *domain.Insights         `json:"insights,omitempty"`
}

func toPersonalResult(res *footprint.PersonalResult, withInsights bool) personalResultResponse {
	out := personalResultResponse{
		Emission:     toPersonalRecord(res.Record),
		Calculations: res.Calculations,
		Forecast:     res.Forecast,
		Suggestions:  res.Suggestions,
	}
	if withInsights {
		out.Insights = &res.Insights
	}
	return out
}

type industrialResultResponse struct {
	Emission     *industrialRecordResponse  `json:"emission"`
	Calculations domain.IndustrialEmissions `json:"calculations"`
	Forecast     domain.Forecast            `json:"forecast"`
	Suggestions  []domain.Suggestion        `json:"suggestions"`
	Insights     *domain.Insights           `json:"insights,omitempty"`
}

func toIndustrialResult(res *footprint.IndustrialResult, withInsights bool) industrialResultResponse {
	out := industrialResultResponse{
		Emission:     toIndustrialRecord(res.Record),
		Calculations: res.Calculations,
		Forecast:     res.Forecast,
		Suggestions:  res.Suggestions,
	}
	if withInsights {
		out.Insights = &res.Insights
	}
	return out
}

// ---------------------------------------------------------------------------
// Summary
// ---------------------------------------------------------------------------

type personalStatsResponse struct {
	Count          int     `json:"count"`
	TotalEmissions float64 `json:"totalEmissions"`
	AverageTotal   float64 `json:"averageEmissions"`
}

type industrialStatsResponse struct {
	Count           int     `json:"count"`
	Scope1Emissions float64 `json:"scope1Emissions"`
	Scope2Emissions float64 `json:"scope2Emissions"`
	Scope3Emissions float64 `json:"scope3Emissions"`
	TotalEmissions  float64 `json:"totalEmissions"`
	AverageTotal    float64 `json:"averageEmissions"`
}

type summaryResponse struct {
	Personal   personalStatsResponse   `json:"personal"`
	Industrial industrialStatsResponse `json:"industrial"`
}

func toSummary(s *domain.EmissionsSummary) summaryResponse {
	return summaryResponse{
		Personal: personalStatsResponse{
			Count:          s.Personal.Count,
			TotalEmissions: s.Personal.TotalEmissions,
			AverageTotal:   s.Personal.AverageTotal(),
		},
		Industrial: industrialStatsResponse{
			Count:           s.Industrial.Count,
			Scope1Emissions: s.Industrial.Scope1Emissions,
			Scope2Emissions: s.Industrial.Scope2Emissions,
			Scope3Emissions: s.Industrial.Scope3Emissions,
			TotalEmissions:  s.Industrial.TotalEmissions,
			AverageTotal:    s.Industrial.AverageTotal(),
		},
	}
}
