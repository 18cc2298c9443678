package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/carbonfootprint-backend/internal/adapter/memory"
	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
	"github.com/heartmarshall/carbonfootprint-backend/internal/service/footprint"
	"github.com/heartmarshall/carbonfootprint-backend/internal/service/footprint/engine"
	"github.com/heartmarshall/carbonfootprint-backend/pkg/ctxutil"
)

const personalBody = `{
	"country": "United States",
	"electricityKwh": 800,
	"weeklyDrivingKm": 200,
	"annualFlightHours": 20,
	"publicTransportUsage": "rarely",
	"dietType": "mixed",
	"monthlyShopping": 500
}`

const industrialBody = `{
	"industryType": "manufacturing",
	"companySize": "medium",
	"annualRevenue": 50000000,
	"naturalGas": 50000,
	"dieselFuel": 10000,
	"gridElectricity": 500000,
	"renewableEnergy": 25,
	"businessTravel": 100000,
	"wasteGenerated": 50,
	"waterUsage": 5000
}`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestMux wires a real service over in-memory stores.
func newTestMux(t *testing.T, maxBody int64) *http.ServeMux {
	t.Helper()

	svc := footprint.NewService(discardLogger(), engine.NewStandardCalculator(),
		memory.NewPersonalStore(), memory.NewIndustrialStore())
	return newMuxFor(NewFootprintHandler(svc, discardLogger(), maxBody))
}

func newMuxFor(h *FootprintHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/calculate/personal", h.CalculatePersonal)
	mux.HandleFunc("POST /api/calculate/industrial", h.CalculateIndustrial)
	mux.HandleFunc("GET /api/emission-factors", h.Factors)
	mux.HandleFunc("GET /api/emissions/summary", h.Summary)
	mux.HandleFunc("GET /api/emissions/personal", h.ListPersonal)
	mux.HandleFunc("GET /api/emissions/personal/{id}", h.GetPersonal)
	mux.HandleFunc("GET /api/emissions/personal/{id}/report", h.PersonalReport)
	mux.HandleFunc("GET /api/emissions/industrial", h.ListIndustrial)
	mux.HandleFunc("GET /api/emissions/industrial/{id}", h.GetIndustrial)
	mux.HandleFunc("GET /api/emissions/industrial/{id}/report", h.IndustrialReport)
	return mux
}

func do(t *testing.T, mux http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	return doCtx(t, mux, context.Background(), method, path, body)
}

func doCtx(t *testing.T, mux http.Handler, ctx context.Context, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r).WithContext(ctx)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

// ---------------------------------------------------------------------------
// Calculation
// ---------------------------------------------------------------------------

func TestCalculatePersonal_Success(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, 0)

	rec := do(t, mux, http.MethodPost, "/api/calculate/personal", personalBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeMap(t, rec)
	assert.ElementsMatch(t, []string{"emission", "calculations", "forecast", "suggestions"}, keys(body))

	emission := body["emission"].(map[string]any)
	assert.Equal(t, float64(1), emission["id"])
	assert.Nil(t, emission["userId"])
	assert.Equal(t, "United States", emission["country"])
	assert.Equal(t, float64(0), emission["weeklyWasteKg"])

	calc := body["calculations"].(map[string]any)
	assert.InDelta(t, 16.084, calc["totalEmissions"], 1e-9)
	assert.Equal(t, emission["totalEmissions"], calc["totalEmissions"])

	forecast := body["forecast"].(map[string]any)
	assert.Len(t, forecast["months"], 12)
	assert.Len(t, forecast["values"], 12)
	assert.Equal(t, "decreasing", forecast["trend"])

	assert.Len(t, body["suggestions"], 3)
}

func TestCalculatePersonal_AttachesUser(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, 0)

	userID := uuid.New()
	ctx := ctxutil.WithUserID(context.Background(), userID)

	rec := doCtx(t, mux, ctx, http.MethodPost, "/api/calculate/personal", personalBody)
	require.Equal(t, http.StatusOK, rec.Code)

	emission := decodeMap(t, rec)["emission"].(map[string]any)
	assert.Equal(t, userID.String(), emission["userId"])
}

func TestCalculatePersonal_InvalidInput(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"malformed json":     `{"country": "Germany",`,
		"wrong type":         strings.Replace(personalBody, `"electricityKwh": 800`, `"electricityKwh": "800"`, 1),
		"missing field":      strings.Replace(personalBody, `"dietType": "mixed",`, ``, 1),
		"negative value":     strings.Replace(personalBody, `"weeklyDrivingKm": 200`, `"weeklyDrivingKm": -1`, 1),
		"empty country":      strings.Replace(personalBody, `"United States"`, `""`, 1),
		"null body":          `null`,
		"empty object":       `{}`,
		"negative waste":     strings.Replace(personalBody, `"monthlyShopping": 500`, `"monthlyShopping": 500, "weeklyWasteKg": -2`, 1),
		"array instead":      `[1, 2, 3]`,
		"string for country": strings.Replace(personalBody, `"United States"`, `42`, 1),
		"trailing garbage":   personalBody + `garbage`,
		"two objects":        personalBody + personalBody,
		"overflowing result": strings.Replace(personalBody, `"electricityKwh": 800`, `"electricityKwh": 1e308`, 1),
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			mux := newTestMux(t, 0)

			rec := do(t, mux, http.MethodPost, "/api/calculate/personal", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Invalid input data"}`, rec.Body.String())
		})
	}
}

func TestCalculatePersonal_EmptyBody(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, 0)

	rec := do(t, mux, http.MethodPost, "/api/calculate/personal", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalculatePersonal_UnknownFieldsIgnored(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, 0)

	body := strings.Replace(personalBody, `"dietType": "mixed",`, `"dietType": "mixed", "favouriteColor": "green",`, 1)
	rec := do(t, mux, http.MethodPost, "/api/calculate/personal", body)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCalculatePersonal_TrailingWhitespaceAccepted(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, 0)

	rec := do(t, mux, http.MethodPost, "/api/calculate/personal", personalBody+"\n\t \n")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCalculate_OverflowNotStored(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, 0)

	rec := do(t, mux, http.MethodPost, "/api/calculate/personal",
		strings.Replace(personalBody, `"electricityKwh": 800`, `"electricityKwh": 1e308`, 1))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, mux, http.MethodPost, "/api/calculate/industrial",
		strings.Replace(industrialBody, `"naturalGas": 50000`, `"naturalGas": 1e308`, 1))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	for _, path := range []string{"/api/emissions/personal", "/api/emissions/industrial"} {
		rec = do(t, mux, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, 0.0, decodeMap(t, rec)["total"], path)
	}

	rec = do(t, mux, http.MethodGet, "/api/emissions/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestWriteJSON_UnencodableIs500(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"total": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestCalculatePersonal_BodyTooLarge(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, 64)

	rec := do(t, mux, http.MethodPost, "/api/calculate/personal", personalBody)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestCalculateIndustrial_Success(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, 0)

	rec := do(t, mux, http.MethodPost, "/api/calculate/industrial", industrialBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeMap(t, rec)
	assert.NotContains(t, body, "insights")

	calc := body["calculations"].(map[string]any)
	assert.InDelta(t, 354.9015, calc["totalEmissions"], 1e-9)
	assert.Contains(t, calc, "breakdown")

	emission := body["emission"].(map[string]any)
	assert.Equal(t, calc["scope1"], emission["scope1Emissions"])
	assert.Equal(t, calc["scope2"], emission["scope2Emissions"])
	assert.Equal(t, calc["scope3"], emission["scope3Emissions"])

	suggestions := body["suggestions"].([]any)
	require.Len(t, suggestions, 3)
	first := suggestions[0].(map[string]any)
	assert.Equal(t, "Energy Efficiency", first["category"])
	assert.Equal(t, "Upgrade Equipment", first["title"])
}

func TestCalculateIndustrial_RenewableOver100(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, 0)

	body := strings.Replace(industrialBody, `"renewableEnergy": 25`, `"renewableEnergy": 100.5`, 1)
	rec := do(t, mux, http.MethodPost, "/api/calculate/industrial", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid input data"}`, rec.Body.String())
}

func TestFactors_Verbatim(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, 0)

	rec := do(t, mux, http.MethodGet, "/api/emission-factors", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 0.5, got["electricity"]["default"])
	assert.Equal(t, 0.171, got["transport"]["car"])
	assert.Equal(t, 3.3, got["diet"]["meat-heavy"])
	assert.Equal(t, 0.57, got["lifestyle"]["waste"])
	assert.Equal(t, 1.91, got["industrial"]["naturalGas"])
}

// ---------------------------------------------------------------------------
// Records
// ---------------------------------------------------------------------------

func TestRecords_GetListReport(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, 0)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, do(t, mux, http.MethodPost, "/api/calculate/personal", personalBody).Code)
	}

	rec := do(t, mux, http.MethodGet, "/api/emissions/personal/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decodeMap(t, rec)["id"])

	rec = do(t, mux, http.MethodGet, "/api/emissions/personal?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var page struct {
		Items []struct {
			ID int64 `json:"id"`
		} `json:"items"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(3), page.Items[0].ID)
	assert.Equal(t, int64(2), page.Items[1].ID)

	rec = do(t, mux, http.MethodGet, "/api/emissions/personal/1/report", "")
	require.Equal(t, http.StatusOK, rec.Code)
	report := decodeMap(t, rec)
	assert.Contains(t, report, "insights")
	insights := report["insights"].(map[string]any)
	assert.Equal(t, "personal", insights["kind"])
	assert.Equal(t, "needs_improvement", insights["performance"])
}

func TestRecords_IndustrialReport(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, 0)

	require.Equal(t, http.StatusOK, do(t, mux, http.MethodPost, "/api/calculate/industrial", industrialBody).Code)

	rec := do(t, mux, http.MethodGet, "/api/emissions/industrial/1/report", "")
	require.Equal(t, http.StatusOK, rec.Code)
	insights := decodeMap(t, rec)["insights"].(map[string]any)
	assert.Equal(t, "industrial", insights["kind"])
	assert.InDelta(t, 354.9015/50, insights["carbonIntensity"], 1e-9)

	rec = do(t, mux, http.MethodGet, "/api/emissions/industrial", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeMap(t, rec)["total"])
}

func TestRecords_NotFound(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, 0)

	for _, path := range []string{
		"/api/emissions/personal/99",
		"/api/emissions/industrial/99",
		"/api/emissions/personal/99/report",
		"/api/emissions/personal/abc",
		"/api/emissions/industrial/0",
	} {
		rec := do(t, mux, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String(), path)
	}
}

func TestRecords_ListQueryValidation(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, 0)

	for _, q := range []string{"limit=abc", "offset=-1", "limit=-5", "mine=maybe"} {
		rec := do(t, mux, http.MethodGet, "/api/emissions/personal?"+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestRecords_ListMineRequiresIdentity(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, 0)

	rec := do(t, mux, http.MethodGet, "/api/emissions/personal?mine=true", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	userID := uuid.New()
	ctx := ctxutil.WithUserID(context.Background(), userID)
	require.Equal(t, http.StatusOK, doCtx(t, mux, ctx, http.MethodPost, "/api/calculate/personal", personalBody).Code)
	require.Equal(t, http.StatusOK, do(t, mux, http.MethodPost, "/api/calculate/personal", personalBody).Code)

	rec = doCtx(t, mux, ctx, http.MethodGet, "/api/emissions/personal?mine=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeMap(t, rec)["total"])
}

func TestRecords_Summary(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, 0)

	require.Equal(t, http.StatusOK, do(t, mux, http.MethodPost, "/api/calculate/personal", personalBody).Code)
	require.Equal(t, http.StatusOK, do(t, mux, http.MethodPost, "/api/calculate/personal", personalBody).Code)

	rec := do(t, mux, http.MethodGet, "/api/emissions/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got summaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Personal.Count)
	assert.InDelta(t, 2*16.084, got.Personal.TotalEmissions, 1e-9)
	assert.InDelta(t, 16.084, got.Personal.AverageTotal, 1e-9)
	assert.Equal(t, 0, got.Industrial.Count)
	assert.Equal(t, 0.0, got.Industrial.AverageTotal)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// failingService overrides only what a test reaches; anything else panics.
type failingService struct {
	footprintService
	err error
}

func (f failingService) CalculatePersonal(context.Context, footprint.PersonalInput) (*footprint.PersonalResult, error) {
	return nil, f.err
}

func (f failingService) Summary(context.Context) (*domain.EmissionsSummary, error) {
	return nil, f.err
}

func TestHandleError_StorageFailureIs500(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	h := NewFootprintHandler(failingService{err: errors.New("connection reset")}, logger, 0)
	mux := newMuxFor(h)

	rec := do(t, mux, http.MethodPost, "/api/calculate/personal", personalBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
	assert.Contains(t, logs.String(), "connection reset")

	rec = do(t, mux, http.MethodGet, "/api/emissions/summary", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleError_ValidationFieldsLoggedNotReturned(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	verr := &domain.ValidationError{Errors: []domain.FieldError{{Field: "country", Message: "required"}}}
	mux := newMuxFor(NewFootprintHandler(failingService{err: verr}, logger, 0))

	rec := do(t, mux, http.MethodPost, "/api/calculate/personal", personalBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, rec.Body.String(), "country")
	assert.Contains(t, logs.String(), `"level":"WARN"`)
	assert.Contains(t, logs.String(), "country")
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
