package footprint

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
	"github.com/heartmarshall/carbonfootprint-backend/pkg/ctxutil"
)

// GetPersonal returns a stored personal record.
func (s *Service) GetPersonal(ctx context.Context, id int64) (*domain.PersonalRecord, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	rec, err := s.personal.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get personal record: %w", err)
	}
	return rec, nil
}

// GetIndustrial returns a stored industrial record.
func (s *Service) GetIndustrial(ctx context.Context, id int64) (*domain.IndustrialRecord, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	rec, err := s.industrial.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get industrial record: %w", err)
	}
	return rec, nil
}

// ListPersonal returns a page of personal records, newest first.
func (s *Service) ListPersonal(ctx context.Context, input ListInput) (*RecordPage[domain.PersonalRecord], error) {
	filter, err := s.recordFilter(ctx, input)
	if err != nil {
		return nil, err
	}
	items, total, err := s.personal.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list personal records: %w", err)
	}
	return &RecordPage[domain.PersonalRecord]{Items: items, Total: total}, nil
}

// ListIndustrial returns a page of industrial records, newest first.
func (s *Service) ListIndustrial(ctx context.Context, input ListInput) (*RecordPage[domain.IndustrialRecord], error) {
	filter, err := s.recordFilter(ctx, input)
	if err != nil {
		return nil, err
	}
	items, total, err := s.industrial.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list industrial records: %w", err)
	}
	return &RecordPage[domain.IndustrialRecord]{Items: items, Total: total}, nil
}

// Summary aggregates both record kinds. The two stores are queried
// concurrently.
func (s *Service) Summary(ctx context.Context) (*domain.EmissionsSummary, error) {
	var summary domain.EmissionsSummary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.personal.Stats(gctx)
		if err != nil {
			return fmt.Errorf("personal stats: %w", err)
		}
		summary.Personal = stats
		return nil
	})
	g.Go(func() error {
		stats, err := s.industrial.Stats(gctx)
		if err != nil {
			return fmt.Errorf("industrial stats: %w", err)
		}
		summary.Industrial = stats
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &summary, nil
}

// recordFilter validates a listing request. OnlyMine requires an
// authenticated user.
func (s *Service) recordFilter(ctx context.Context, input ListInput) (domain.RecordFilter, error) {
	if err := input.Validate(); err != nil {
		return domain.RecordFilter{}, err
	}

	filter := domain.RecordFilter{Limit: input.Limit, Offset: input.Offset}
	if filter.Limit == 0 {
		filter.Limit = DefaultLimit
	}
	if input.OnlyMine {
		userID := ctxutil.UserIDPtr(ctx)
		if userID == nil {
			return domain.RecordFilter{}, domain.ErrUnauthorized
		}
		filter.UserID = userID
	}
	return filter, nil
}
