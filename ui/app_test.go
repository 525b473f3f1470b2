package ui

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statline/app"
	"statline/internal"
	"statline/internal/generator"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	logger := internal.NewLogger(internal.LogLevelError)
	svc, err := app.NewPopulationService(generator.DefaultConfig(), logger)
	require.NoError(t, err)
	return NewApp(svc, Config{}, logger)
}

func get(t *testing.T, a *App, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealthAndPopulation(t *testing.T) {
	a := newTestApp(t)

	rec := get(t, a, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(250), body["players"])

	rec = get(t, a, "/api/population")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, float64(42), body["seed"])
	assert.NotEmpty(t, body["fingerprint"])
	assert.NotContains(t, body, "Records")
}

func TestPlayersEndpoints(t *testing.T) {
	a := newTestApp(t)

	rec := get(t, a, "/api/players/1002")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Aaron Freeman", body["name"])
	assert.Equal(t, float64(650), body["at_bats"])
	assert.NotContains(t, body, "era")

	rec = get(t, a, "/api/players?position=sp&limit=5")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, float64(5), body["count"])

	rec = get(t, a, "/api/players?role=pitcher&limit=1000")
	assert.Equal(t, float64(85), decode(t, rec)["count"])

	assert.Equal(t, http.StatusNotFound, get(t, a, "/api/players/5000").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, a, "/api/players/abc").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, a, "/api/players?position=QB").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, a, "/api/players?limit=ten").Code)
}

func TestPlayerAnalysisEndpoints(t *testing.T) {
	a := newTestApp(t)

	rec := get(t, a, "/api/players/1001/similar?limit=3")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["similar"], 3)

	rec = get(t, a, "/api/players/1001/projection?level=0.9")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.LessOrEqual(t, body["lower"].(float64), body["mean"].(float64))
	assert.GreaterOrEqual(t, body["upper"].(float64), body["mean"].(float64))

	assert.Equal(t, http.StatusBadRequest, get(t, a, "/api/players/1001/projection?level=2").Code)

	rec = get(t, a, "/api/players/1001/percentile?metric=hr")
	require.Equal(t, http.StatusOK, rec.Code)
	pct := decode(t, rec)["percentile"].(float64)
	assert.True(t, pct > 0 && pct <= 100)

	// 1000 is a pitcher; home runs are not defined for it.
	assert.Equal(t, http.StatusBadRequest, get(t, a, "/api/players/1000/percentile?metric=hr").Code)
}

func TestTeamEndpoints(t *testing.T) {
	a := newTestApp(t)

	rec := get(t, a, "/api/teams")
	require.Equal(t, http.StatusOK, rec.Code)
	var teams []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &teams))
	assert.Len(t, teams, 30)

	rec = get(t, a, "/api/teams/cle")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CLE", decode(t, rec)["code"])

	rec = get(t, a, "/api/teams/CLE/roster")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.NotEmpty(t, body["players"])

	assert.Equal(t, http.StatusNotFound, get(t, a, "/api/teams/XYZ").Code)
	assert.Equal(t, http.StatusNotFound, get(t, a, "/api/teams/XYZ/roster").Code)
}

func TestStatisticsEndpoints(t *testing.T) {
	a := newTestApp(t)

	rec := get(t, a, "/api/statistics/leaders?category=HR&limit=10")
	require.Equal(t, http.StatusOK, rec.Code)
	leaders := decode(t, rec)["leaders"].([]interface{})
	require.Len(t, leaders, 10)
	first := leaders[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["rank"])

	assert.Equal(t, http.StatusBadRequest, get(t, a, "/api/statistics/leaders?category=touchdowns").Code)

	rec = get(t, a, "/api/statistics/league-averages?role=pitcher")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(85), body["sample_size"])
	assert.Contains(t, body["stats"], "ERA")

	assert.Equal(t, http.StatusBadRequest, get(t, a, "/api/statistics/league-averages?role=umpire").Code)
}

func TestCompareEndpoints(t *testing.T) {
	a := newTestApp(t)

	rec := get(t, a, "/api/compare?a=1000&b=1001")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Contains(t, body, "trade")
	assert.NotEmpty(t, body["considerations"])

	rec = get(t, a, "/api/compare/report?a=1001&b=1002")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, rec.Body.String(), "Juan Buxton vs. Aaron Freeman")

	assert.Equal(t, http.StatusBadRequest, get(t, a, "/api/compare?a=1000").Code)
	assert.Equal(t, http.StatusNotFound, get(t, a, "/api/compare?a=1000&b=9999").Code)
}

func TestExportEndpoint(t *testing.T) {
	a := newTestApp(t)

	rec := get(t, a, "/api/export?format=csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="players-seed42.csv"`)
	rows, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 251)

	rec = get(t, a, "/api/export?format=json")
	require.Equal(t, http.StatusOK, rec.Code)
	var players []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &players))
	assert.Len(t, players, 250)

	rec = get(t, a, "/api/export?format=xlsx")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"))

	assert.Equal(t, http.StatusBadRequest, get(t, a, "/api/export?format=pdf").Code)
}
