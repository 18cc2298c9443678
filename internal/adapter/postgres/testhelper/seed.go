package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/carbonfootprint-backend/internal/adapter/postgres"
)

// SeedPersonal inserts a personal record directly and returns its id.
func SeedPersonal(t *testing.T, pool *pgxpool.Pool, userID *uuid.UUID, total float64) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO personal_emissions (user_id, country, electricity_kwh, weekly_driving_km,
			annual_flight_hours, public_transport_usage, diet_type, monthly_shopping,
			weekly_waste_kg, total_emissions, created_at)
		VALUES ($1, 'Germany', 100, 10, 1, 'weekly', 'mixed', 50, 0, $2, $3)
		RETURNING id`,
		postgres.NullableUUID(userID), total, time.Now().UTC(),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: seed personal record: %v", err)
	}
	return id
}

// SeedIndustrial inserts an industrial record directly and returns its id.
func SeedIndustrial(t *testing.T, pool *pgxpool.Pool, userID *uuid.UUID, scope1, scope2, scope3 float64) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO industrial_emissions (user_id, industry_type, company_size, annual_revenue,
			natural_gas, diesel_fuel, grid_electricity, renewable_energy, business_travel,
			waste_generated, water_usage, scope1_emissions, scope2_emissions, scope3_emissions,
			total_emissions, created_at)
		VALUES ($1, 'retail', 'small', 0, 0, 0, 0, 0, 0, 0, 0, $2, $3, $4, $5, $6)
		RETURNING id`,
		postgres.NullableUUID(userID), scope1, scope2, scope3, scope1+scope2+scope3, time.Now().UTC(),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: seed industrial record: %v", err)
	}
	return id
}
