// Package industrial implements the industrial emission record store using
// PostgreSQL.
package industrial

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
	table  = "industrial_emissions"
	entity = "industrial_emission"
)

var insertColumns = []string{
	"user_id",
	"industry_type",
	"company_size",
	"annual_revenue",
	"natural_gas",
	"diesel_fuel",
	"grid_electricity",
	"renewable_energy",
	"business_travel",
	"waste_generated",
	"water_usage",
	"scope1_emissions",
	"scope2_emissions",
	"scope3_emissions",
	"total_emissions",
	"created_at",
}

var selectColumns = append([]string{"id"}, insertColumns...)

// Repo provides industrial record persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new industrial emission repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts rec and returns the stored row with its assigned id.
func (r *Repo) Create(ctx context.Context, rec *domain.IndustrialRecord) (*domain.IndustrialRecord, error) {
	stmt := postgres.Builder().
		Insert(table).
		Columns(insertColumns...).
		Values(
			postgres.NullableUUID(rec.UserID),
			rec.IndustryType,
			rec.CompanySize,
			rec.AnnualRevenue,
			rec.NaturalGas,
			rec.DieselFuel,
			rec.GridElectricity,
			rec.RenewableEnergy,
			rec.BusinessTravel,
			rec.WasteGenerated,
			rec.WaterUsage,
			rec.Scope1Emissions,
			rec.Scope2Emissions,
			rec.Scope3Emissions,
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
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.IndustrialRecord, error) {
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
func (r *Repo) List(ctx context.Context, filter domain.RecordFilter) ([]domain.IndustrialRecord, int, error) {
	where := squirrel.And{}
	if filter.UserID != nil {
		where = append(where, squirrel.Eq{"user_id": postgres.NullableUUID(filter.UserID)})
	}

	row, err := postgres.QueryRow(ctx, r.q, postgres.Builder().Select("COUNT(*)").From(table).Where(where))
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

	items := make([]domain.IndustrialRecord, 0)
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

// Stats returns the record count and the sums of totals and scopes.
func (r *Repo) Stats(ctx context.Context) (domain.IndustrialStats, error) {
	stmt := postgres.Builder().
		Select(
			"COUNT(*)",
			"COALESCE(SUM(scope1_emissions), 0)",
			"COALESCE(SUM(scope2_emissions), 0)",
			"COALESCE(SUM(scope3_emissions), 0)",
			"COALESCE(SUM(total_emissions), 0)",
		).
		From(table)

	row, err := postgres.QueryRow(ctx, r.q, stmt)
	if err != nil {
		return domain.IndustrialStats{}, fmt.Errorf("build stats %s: %w", table, err)
	}
	var st domain.IndustrialStats
	err = row.Scan(&st.Count, &st.Scope1Emissions, &st.Scope2Emissions, &st.Scope3Emissions, &st.TotalEmissions)
	if err != nil {
		return domain.IndustrialStats{}, postgres.MapError(err, entity, 0)
	}
	return st, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func scanRecord(row pgx.Row) (*domain.IndustrialRecord, error) {
	var (
		rec    domain.IndustrialRecord
		userID pgtype.UUID
	)
	err := row.Scan(
		&rec.ID,
		&userID,
		&rec.IndustryType,
		&rec.CompanySize,
		&rec.AnnualRevenue,
		&rec.NaturalGas,
		&rec.DieselFuel,
		&rec.GridElectricity,
		&rec.RenewableEnergy,
		&rec.BusinessTravel,
		&rec.WasteGenerated,
		&rec.WaterUsage,
		&rec.Scope1Emissions,
		&rec.Scope2Emissions,
		&rec.Scope3Emissions,
		&rec.TotalEmissions,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.UserID = postgres.UUIDPtr(userID)
	rec.CreatedAt = rec.CreatedAt.UTC()
	return &rec, nil
}
