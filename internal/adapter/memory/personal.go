package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
)

// PersonalStore keeps personal emission records in memory.
type PersonalStore struct {
	t *table[domain.PersonalRecord]
}

// NewPersonalStore creates an empty store.
func NewPersonalStore() *PersonalStore {
	return &PersonalStore{t: newTable[domain.PersonalRecord]("personal_emission")}
}

// Create stores a copy of rec under the next id and returns it.
func (s *PersonalStore) Create(ctx context.Context, rec *domain.PersonalRecord) (*domain.PersonalRecord, error) {
	row, err := s.t.insert(ctx, func(id int64) domain.PersonalRecord {
		r := *rec
		r.ID = id
		r.UserID = cloneUserID(rec.UserID)
		return r
	})
	if err != nil {
		return nil, err
	}
	return personalCopy(row), nil
}

// GetByID returns domain.ErrNotFound for unknown ids.
func (s *PersonalStore) GetByID(ctx context.Context, id int64) (*domain.PersonalRecord, error) {
	row, err := s.t.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return personalCopy(row), nil
}

// List returns records newest first.
func (s *PersonalStore) List(ctx context.Context, filter domain.RecordFilter) ([]domain.PersonalRecord, int, error) {
	rows, total, err := s.t.list(ctx, filter, func(r domain.PersonalRecord) *uuid.UUID { return r.UserID })
	if err != nil {
		return nil, 0, err
	}
	for i := range rows {
		rows[i].UserID = cloneUserID(rows[i].UserID)
	}
	return rows, total, nil
}

// Stats sums totals over all records.
func (s *PersonalStore) Stats(ctx context.Context) (domain.PersonalStats, error) {
	var st domain.PersonalStats
	err := s.t.each(ctx, func(r domain.PersonalRecord) {
		st.Count++
		st.TotalEmissions += r.TotalEmissions
	})
	return st, err
}

// Len returns the number of stored records.
func (s *PersonalStore) Len() int { return s.t.count() }

func personalCopy(r domain.PersonalRecord) *domain.PersonalRecord {
	r.UserID = cloneUserID(r.UserID)
	return &r
}
