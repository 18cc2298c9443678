package footprint

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
	"github.com/heartmarshall/carbonfootprint-backend/internal/service/footprint/engine"
	"github.com/heartmarshall/carbonfootprint-backend/pkg/ctxutil"
)

// EstimateIndustrial validates and calculates without recording anything. Inputs
// whose results overflow are rejected like any other invalid input.
func (s *Service) EstimateIndustrial(input IndustrialInput) (*IndustrialResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	result := s.industrialResult(input.activity())
	if err := result.validate(); err != nil {
		return nil, err
	}
	return result, nil
}

// CalculateIndustrial validates, calculates and records an industrial
// submission together with its scope totals.
func (s *Service) CalculateIndustrial(ctx context.Context, input IndustrialInput) (*IndustrialResult, error) {
	result, err := s.EstimateIndustrial(input)
	if err != nil {
		return nil, err
	}

	activity := input.activity()
	calc := result.Calculations
	rec := &domain.IndustrialRecord{
		UserID:             ctxutil.UserIDPtr(ctx),
		IndustrialActivity: activity,
		Scope1Emissions:    calc.Scope1,
		Scope2Emissions:    calc.Scope2,
		Scope3Emissions:    calc.Scope3,
		TotalEmissions:     calc.TotalEmissions,
		CreatedAt:          s.now(),
	}

	stored, err := s.industrial.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("create industrial record: %w", err)
	}
	result.Record = stored

	s.log.InfoContext(ctx, "industrial emissions calculated",
		slog.Int64("record_id", stored.ID),
		slog.String("industry", activity.IndustryType),
		slog.Float64("total", calc.TotalEmissions),
	)

	return result, nil
}

func (s *Service) industrialResult(a domain.IndustrialActivity) *IndustrialResult {
	calc := s.calc.Industrial(a)
	return &IndustrialResult{
		Calculations: calc,
		Forecast:     engine.Forecast(calc.TotalEmissions),
		Suggestions:  engine.IndustrialSuggestions(calc),
		Insights:     engine.IndustrialInsights(calc, a.AnnualRevenue),
	}
}
