package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
)

// IndustrialStore keeps industrial emission records in memory.
type IndustrialStore struct {
	t *table[domain.IndustrialRecord]
}

// NewIndustrialStore creates an empty store.
func NewIndustrialStore() *IndustrialStore {
	return &IndustrialStore{t: newTable[domain.IndustrialRecord]("industrial_emission")}
}

func (s *IndustrialStore) Create(ctx context.Context, rec *domain.IndustrialRecord) (*domain.IndustrialRecord, error) {
	row, err := s.t.insert(ctx, func(id int64) domain.IndustrialRecord {
		r := *rec
		r.ID = id
		r.UserID = cloneUserID(rec.UserID)
		return r
	})
	if err != nil {
		return nil, err
	}
	return industrialCopy(row), nil
}

func (s *IndustrialStore) GetByID(ctx context.Context, id int64) (*domain.IndustrialRecord, error) {
	row, err := s.t.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return industrialCopy(row), nil
}

func (s *IndustrialStore) List(ctx context.Context, filter domain.RecordFilter) ([]domain.IndustrialRecord, int, error) {
	rows, total, err := s.t.list(ctx, filter, func(r domain.IndustrialRecord) *uuid.UUID { return r.UserID })
	if err != nil {
		return nil, 0, err
	}
	for i := range rows {
		rows[i].UserID = cloneUserID(rows[i].UserID)
	}
	return rows, total, nil
}

// Stats sums totals and scopes over all records.
func (s *IndustrialStore) Stats(ctx context.Context) (domain.IndustrialStats, error) {
	var st domain.IndustrialStats
	err := s.t.each(ctx, func(r domain.IndustrialRecord) {
		st.Count++
		st.Scope1Emissions += r.Scope1Emissions
		st.Scope2Emissions += r.Scope2Emissions
		st.Scope3Emissions += r.Scope3Emissions
		st.TotalEmissions += r.TotalEmissions
	})
	return st, err
}

func (s *IndustrialStore) Len() int { return s.t.count() }

func industrialCopy(r domain.IndustrialRecord) *domain.IndustrialRecord {
	r.UserID = cloneUserID(r.UserID)
	return &r
}
