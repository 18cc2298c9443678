package cli

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/carbonfootprint-backend/internal/auth"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// isolateConfig points configuration loading at an empty directory.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("STORE_DRIVER", "memory")
}

func TestFactors_JSON(t *testing.T) {
	out, err := execute(t, "factors")
	require.NoError(t, err)

	var got map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 0.5, got["electricity"]["default"])
	assert.Equal(t, 2.5, got["diet"]["mixed"])
}

func TestFactors_YAML(t *testing.T) {
	out, err := execute(t, "factors", "--output", "yaml")
	require.NoError(t, err)

	var got map[string]map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, 0.171, got["transport"]["car"])
	assert.Equal(t, 0.5, got["electricity"]["default"])
}

func TestRoot_RejectsUnknownOutput(t *testing.T) {
	_, err := execute(t, "factors", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output")
}

func TestCalcPersonal(t *testing.T) {
	out, err := execute(t, "calc", "personal",
		"--country", "United States",
		"--electricity-kwh", "800",
		"--weekly-driving-km", "200",
		"--annual-flight-hours", "20",
		"--public-transport", "rarely",
		"--diet", "mixed",
		"--monthly-shopping", "500",
	)
	require.NoError(t, err)

	var got struct {
		Calculations struct {
			TotalEmissions float64 `json:"totalEmissions"`
			Waste          float64 `json:"waste"`
		} `json:"calculations"`
		Forecast struct {
			Values []float64 `json:"values"`
		} `json:"forecast"`
		Suggestions []map[string]any `json:"suggestions"`
		Insights    struct {
			Performance string `json:"performance"`
		} `json:"insights"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 16.084, got.Calculations.TotalEmissions, 1e-9)
	assert.Equal(t, 0.0, got.Calculations.Waste)
	assert.Len(t, got.Forecast.Values, 12)
	assert.Len(t, got.Suggestions, 3)
	assert.Equal(t, "needs_improvement", got.Insights.Performance)
}

func TestCalcPersonal_MissingFlags(t *testing.T) {
	_, err := execute(t, "calc", "personal", "--country", "Germany")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "electricityKwh")
	assert.Contains(t, err.Error(), "dietType")
	assert.NotContains(t, err.Error(), "country:")
}

func TestCalcIndustrial_YAML(t *testing.T) {
	out, err := execute(t, "calc", "industrial", "-o", "yaml",
		"--industry-type", "manufacturing",
		"--company-size", "medium",
		"--annual-revenue", "50000000",
		"--natural-gas", "50000",
		"--diesel-fuel", "10000",
		"--grid-electricity", "500000",
		"--renewable-energy", "25",
		"--business-travel", "100000",
		"--waste-generated", "50",
		"--water-usage", "5000",
	)
	require.NoError(t, err)

	var got struct {
		Calculations struct {
			Scope2         float64 `yaml:"scope2"`
			TotalEmissions float64 `yaml:"totalEmissions"`
		} `yaml:"calculations"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 187.5, got.Calculations.Scope2, 1e-9)
	assert.InDelta(t, 354.9015, got.Calculations.TotalEmissions, 1e-9)
}

func TestCalcIndustrial_RenewableOver100(t *testing.T) {
	_, err := execute(t, "calc", "industrial",
		"--industry-type", "retail",
		"--company-size", "small",
		"--annual-revenue", "0",
		"--natural-gas", "0",
		"--diesel-fuel", "0",
		"--grid-electricity", "0",
		"--renewable-energy", "120",
		"--business-travel", "0",
		"--waste-generated", "0",
		"--water-usage", "0",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "renewableEnergy: max 100")
}

func TestToken(t *testing.T) {
	isolateConfig(t)
	secret := "cli-test-secret-that-is-at-least-32-chars"
	t.Setenv("AUTH_JWT_SECRET", secret)

	userID := uuid.New()
	out, err := execute(t, "token", "--user-id", userID.String(), "--ttl", "10m")
	require.NoError(t, err)

	var got tokenOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, userID.String(), got.UserID)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), got.ExpiresAt, 5*time.Second)

	parsed, err := auth.NewJWTManager(secret, "carbonfootprint", time.Hour).ValidateToken(t.Context(), got.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestToken_RequiresSecret(t *testing.T) {
	isolateConfig(t)
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := execute(t, "token", "--user-id", uuid.NewString())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_JWT_SECRET")
}

func TestToken_BadUserID(t *testing.T) {
	_, err := execute(t, "token", "--user-id", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--user-id")
}

func TestMigrate_RequiresDSN(t *testing.T) {
	isolateConfig(t)
	t.Setenv("DATABASE_DSN", "")

	_, err := execute(t, "migrate", "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_DSN")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version", "-o", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "version: test\n", out)
}
