// Package footprint validates activity submissions, runs the emission
// calculators and records every successful calculation.
package footprint

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
	"github.com/heartmarshall/carbonfootprint-backend/internal/service/footprint/engine"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type personalRepo interface {
	Create(ctx context.Context, rec *domain.PersonalRecord) (*domain.PersonalRecord, error)
	GetByID(ctx context.Context, id int64) (*domain.PersonalRecord, error)
	List(ctx context.Context, filter domain.RecordFilter) ([]domain.PersonalRecord, int, error)
	Stats(ctx context.Context) (domain.PersonalStats, error)
}

type industrialRepo interface {
	Create(ctx context.Context, rec *domain.IndustrialRecord) (*domain.IndustrialRecord, error)
	GetByID(ctx context.Context, id int64) (*domain.IndustrialRecord, error)
	List(ctx context.Context, filter domain.RecordFilter) ([]domain.IndustrialRecord, int, error)
	Stats(ctx context.Context) (domain.IndustrialStats, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the footprint calculation use cases.
type Service struct {
	log        *slog.Logger
	calc       *engine.Calculator
	personal   personalRepo
	industrial industrialRepo
	now        func() time.Time
}

// NewService creates a new Footprint service.
func NewService(
	logger *slog.Logger,
	calc *engine.Calculator,
	personal personalRepo,
	industrial industrialRepo,
) *Service {
	return &Service{
		log:        logger.With("service", "footprint"),
		calc:       calc,
		personal:   personal,
		industrial: industrial,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Factors returns the emission factor table in use.
func (s *Service) Factors() engine.FactorTable {
	return s.calc.Factors()
}
