package footprint

import (
	"context"
	"log/slog"
)

// PersonalReport rebuilds the full result of a stored personal record.
// Calculations are recomputed from the stored activity with the current
// factor table.
func (s *Service) PersonalReport(ctx context.Context, id int64) (*PersonalResult, error) {
	rec, err := s.GetPersonal(ctx, id)
	if err != nil {
		return nil, err
	}

	result := s.personalResult(rec.PersonalActivity)
	result.Record = rec
	if result.Calculations.TotalEmissions != rec.TotalEmissions {
		s.log.WarnContext(ctx, "stored total differs from recomputed total",
			slog.Int64("record_id", id),
			slog.Float64("stored", rec.TotalEmissions),
			slog.Float64("recomputed", result.Calculations.TotalEmissions),
		)
	}
	return result, nil
}

// IndustrialReport rebuilds the full result of a stored industrial record.
func (s *Service) IndustrialReport(ctx context.Context, id int64) (*IndustrialResult, error) {
	rec, err := s.GetIndustrial(ctx, id)
	if err != nil {
		return nil, err
	}

	result := s.industrialResult(rec.IndustrialActivity)
	result.Record = rec
	if result.Calculations.TotalEmissions != rec.TotalEmissions {
		s.log.WarnContext(ctx, "stored total differs from recomputed total",
			slog.Int64("record_id", id),
			slog.Float64("stored", rec.TotalEmissions),
			slog.Float64("recomputed", result.Calculations.TotalEmissions),
		)
	}
	return result, nil
}
