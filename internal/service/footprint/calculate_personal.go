package footprint

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
	"github.com/heartmarshall/carbonfootprint-backend/internal/service/footprint/engine"
	"github.com/heartmarshall/carbonfootprint-backend/pkg/ctxutil"
)

// EstimatePersonal validates and calculates without recording anything. Inputs
// whose results overflow are rejected like any other invalid input.
func (s *Service) EstimatePersonal(input PersonalInput) (*PersonalResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	result := s.personalResult(input.activity())
	if err := result.validate(); err != nil {
		return nil, err
	}
	return result, nil
}

// CalculatePersonal validates, calculates and records a personal
// submission. The record is attributed to the authenticated user, if any.
func (s *Service) CalculatePersonal(ctx context.Context, input PersonalInput) (*PersonalResult, error) {
	result, err := s.EstimatePersonal(input)
	if err != nil {
		return nil, err
	}

	activity := input.activity()
	rec := &domain.PersonalRecord{
		UserID:           ctxutil.UserIDPtr(ctx),
		PersonalActivity: activity,
		TotalEmissions:   result.Calculations.TotalEmissions,
		CreatedAt:        s.now(),
	}

	stored, err := s.personal.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("create personal record: %w", err)
	}
	result.Record = stored

	s.log.InfoContext(ctx, "personal emissions calculated",
		slog.Int64("record_id", stored.ID),
		slog.String("country", activity.Country),
		slog.Float64("total", result.Calculations.TotalEmissions),
	)

	return result, nil
}

func (s *Service) personalResult(a domain.PersonalActivity) *PersonalResult {
	calc := s.calc.Personal(a)
	return &PersonalResult{
		Calculations: calc,
		Forecast:     engine.Forecast(calc.TotalEmissions),
		Suggestions:  engine.PersonalSuggestions(calc),
		Insights:     engine.PersonalInsights(calc),
	}
}
