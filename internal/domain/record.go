package domain

import (
	"time"

	"github.com/google/uuid"
)

// PersonalRecord is a persisted personal submission. Records are
// append-only: never updated or deleted.
type PersonalRecord struct {
	ID     int64
	UserID *uuid.UUID
	PersonalActivity
	TotalEmissions float64
	CreatedAt      time.Time
}

// IndustrialRecord is a persisted industrial submission.
type IndustrialRecord struct {
	ID     int64
	UserID *uuid.UUID
	IndustrialActivity
	Scope1Emissions float64
	Scope2Emissions float64
	Scope3Emissions float64
	TotalEmissions  float64
	CreatedAt       time.Time
}

// RecordFilter narrows a record listing. A nil UserID lists every record.
type RecordFilter struct {
	UserID *uuid.UUID
	Limit  int
	Offset int
}

// PersonalStats aggregates stored personal records.
type PersonalStats struct {
	Count          int
	TotalEmissions float64
}

// IndustrialStats aggregates stored industrial records.
type IndustrialStats struct {
	Count           int
	Scope1Emissions float64
	Scope2Emissions float64
	Scope3Emissions float64
	TotalEmissions  float64
}

// EmissionsSummary combines the stats of both record kinds.
type EmissionsSummary struct {
	Personal   PersonalStats
	Industrial IndustrialStats
}

// AverageTotal returns the mean total per record, 0 when empty.
func (s PersonalStats) AverageTotal() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.TotalEmissions / float64(s.Count)
}

// AverageTotal returns the mean total per record, 0 when empty.
func (s IndustrialStats) AverageTotal() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.TotalEmissions / float64(s.Count)
}
