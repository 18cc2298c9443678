// Package personal implements the personal emission record store using
// PostgreSQL.
package personal

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/carbonfootprint-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
)

const (
	table  = "personal_emissions"
	entity = "personal_emission"
)

var insertColumns = []string{
	"user_id",
	"country",
	"electricity_kwh",
	"weekly_driving_km",
	"annual_flight_hours",
	"public_transport_usage",
	"diet_type",
	"monthly_shopping",
	"weekly_waste_kg",
	"total_emissions",
	"created_at",
}

var selectColumns = append([]string{"id"}, insertColumns...)

// Repo provides personal record persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new personal emission repository. q is usually a
// *pgxpool.Pool.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts rec and returns the stored row with its assigned id.
func (r *Repo) Create(ctx context.Context, rec *domain.PersonalRecord) (*domain.PersonalRecord, error) {
	stmt := postgres.Builder().
		Insert(table).
		Columns(insertColumns...).
		Values(
			postgres.NullableUUID(rec.UserID),
			rec.Country,
			rec.ElectricityKwh,
			rec.WeeklyDrivingKm,
			rec.AnnualFlightHours,
			rec.PublicTransportUsage,
			string(rec.DietType),
			rec.MonthlyShopping,
			rec.WeeklyWasteKg,
			rec.TotalEmissions,
			rec.CreatedAt,
		).
		Suffix("RETURNING " + strings.Join(selectColumns, ", "))

	row, err := postgres.QueryRow(ctx, r.q, stmt)
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", table, err)
	}
	out, err := scanRecord(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, 0)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns domain.ErrNotFound if the record does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.PersonalRecord, error) {
	stmt := postgres.Builder().
		Select(selectColumns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	row, err := postgres.QueryRow(ctx, r.q, stmt)
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", table, err)
	}
	out, err := scanRecord(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return out, nil
}

// List returns records ordered by id DESC with pagination, plus the number
// of records matching the filter.
func (r *Repo) List(ctx context.Context, filter domain.RecordFilter) ([]domain.PersonalRecord, int, error) {
	where := squirrel.And{}
	if filter.UserID != nil {
		where = append(where, squirrel.Eq{"user_id": postgres.NullableUUID(filter.UserID)})
	}

	countStmt := postgres.Builder().Select("COUNT(*)").From(table).Where(where)
	row, err := postgres.QueryRow(ctx, r.q, countStmt)
	if err != nil {
		return nil, 0, fmt.Errorf("build count %s: %w", table, err)
	}
	var total int
	if err := row.Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, entity, 0)
	}

	stmt := postgres.Builder().
		Select(selectColumns...).
		From(table).
		Where(where).
		OrderBy("id DESC").
		Offset(uint64(max(filter.Offset, 0)))
	if filter.Limit > 0 {
		stmt = stmt.Limit(uint64(filter.Limit))
	}

	rows, err := postgres.Query(ctx, r.q, stmt)
	if err != nil {
		return nil, 0, postgres.MapError(err, entity, 0)
	}
	defer rows.Close()

	items := make([]domain.PersonalRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, postgres.MapError(err, entity, 0)
		}
		items = append(items, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, entity, 0)
	}

	return items, total, nil
}

// Stats returns the record count and the sum of totals.
func (r *Repo) Stats(ctx context.Context) (domain.PersonalStats, error) {
	stmt := postgres.Builder().
		Select("COUNT(*)", "COALESCE(SUM(total_emissions), 0)").
		From(table)

	row, err := postgres.QueryRow(ctx, r.q, stmt)
	if err != nil {
		return domain.PersonalStats{}, fmt.Errorf("build stats %s: %w", table, err)
	}
	var st domain.PersonalStats
	if err := row.Scan(&st.Count, &st.TotalEmissions); err != nil {
		return domain.PersonalStats{}, postgres.MapError(err, entity, 0)
	}
	return st, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func scanRecord(row pgx.Row) (*domain.PersonalRecord, error) {
	var (
		rec    domain.PersonalRecord
		userID pgtype.UUID
		diet   string
	)
	err := row.Scan(
		&rec.ID,
		&userID,
		&rec.Country,
		&rec.ElectricityKwh,
		&rec.WeeklyDrivingKm,
		&rec.AnnualFlightHours,
		&rec.PublicTransportUsage,
		&diet,
		&rec.MonthlyShopping,
		&rec.WeeklyWasteKg,
		&rec.TotalEmissions,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.DietType = domain.DietType(diet)
	rec.UserID = postgres.UUIDPtr(userID)
	rec.CreatedAt = rec.CreatedAt.UTC()
	return &rec, nil
}
