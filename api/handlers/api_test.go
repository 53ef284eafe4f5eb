package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/dmv-records-api/api"
	"github.com/linesmerrill/dmv-records-api/config"
	"github.com/linesmerrill/dmv-records-api/databases"
	"github.com/linesmerrill/dmv-records-api/models"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) *App {
	t.Helper()
	a := &App{Config: config.Config{
		DatabaseDriver: databases.DriverSQLite,
		DatabaseURL:    "file::memory:?_foreign_keys=1",
		JWTSecret:      testSecret,
		TokenCacheTTL:  time.Minute,
		LEORoleID:      "leo-role",
		JudgeRoleID:    "judge-role",
		RequestTimeout: 5 * time.Second,
	}}
	client, err := databases.NewClient(&a.Config)
	require.NoError(t, err)
	require.NoError(t, client.Connect(context.Background()))
	a.DB = client
	a.initializeRoutes()
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// seedUser inserts a user and returns a bearer token for it
func seedUser(t *testing.T, a *App, name string, isAdmin bool, roles ...string) (int64, string) {
	t.Helper()
	u := &models.User{DiscordID: "discord-" + name, Username: name, IsAdmin: isAdmin, CreatedAt: time.Now().UTC()}
	for _, r := range roles {
		u.Roles = append(u.Roles, models.Role{ID: r, Name: r})
	}
	id, err := databases.NewUserDatabase(a.DB).InsertOne(context.Background(), u)
	require.NoError(t, err)
	token, err := api.SignToken([]byte(testSecret), id, time.Hour)
	require.NoError(t, err)
	return id, token
}

func executeRequest(a *App, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}

func decodeID(t *testing.T, rr *httptest.ResponseRecorder) int64 {
	t.Helper()
	var resp models.SuccessResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.ID
}

func TestUnknownRoute(t *testing.T) {
	a := newTestApp(t)
	for _, path := range []string{"/asdf", "/api/nope", "/api/dmv/nope"} {
		rr := executeRequest(a, "GET", path, "", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"), path)
		assert.JSONEq(t, `{"error": "API endpoint not found"}`, rr.Body.String(), path)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	a := newTestApp(t)
	for _, path := range []string{"/api/dmv/characters", "/api/me", "/health"} {
		rr := executeRequest(a, "PATCH", path, "", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code, path)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"), path)
		assert.JSONEq(t, `{"error": "method not allowed"}`, rr.Body.String(), path)
	}
}

func TestRateLimit(t *testing.T) {
	a := newTestApp(t)
	a.Config.RateLimitRequests = 2
	a.Config.RateLimitWindow = time.Hour
	a.initializeRoutes()
	_, token := seedUser(t, a, "civ", false)

	assert.Equal(t, http.StatusOK, executeRequest(a, "GET", "/api/dmv/characters", token, nil).Code)
	assert.Equal(t, http.StatusOK, executeRequest(a, "GET", "/health", "", nil).Code)

	rr := executeRequest(a, "GET", "/api/dmv/characters", token, nil)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.JSONEq(t, `{"error": "too many requests, please try again later"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
}

func TestHealthCheckRoute(t *testing.T) {
	a := newTestApp(t)
	rr := executeRequest(a, "GET", "/health", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp models.HealthCheckResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Alive)
	assert.Equal(t, "ok", resp.Database)
}

func TestUnauthorized(t *testing.T) {
	a := newTestApp(t)

	rr := executeRequest(a, "GET", "/api/dmv/characters", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error": "unauthorized"}`, rr.Body.String())

	rr = executeRequest(a, "GET", "/api/dmv/characters", "asdfasdf", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	forged, err := api.SignToken([]byte("other-secret"), 1, time.Hour)
	require.NoError(t, err)
	rr = executeRequest(a, "GET", "/api/dmv/characters", forged, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestTokenForUnknownUser(t *testing.T) {
	a := newTestApp(t)
	token, err := api.SignToken([]byte(testSecret), 404, time.Hour)
	require.NoError(t, err)

	rr := executeRequest(a, "GET", "/api/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMeRoute(t *testing.T) {
	a := newTestApp(t)
	id, token := seedUser(t, a, "officer", false, "leo-role")

	rr := executeRequest(a, "GET", "/api/me", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var profile models.Profile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
	assert.Equal(t, id, profile.User.ID)
	assert.Equal(t, "officer", profile.User.Username)
	assert.True(t, profile.HasLEOAccess)
	assert.False(t, profile.HasJudgeAccess)
}

func TestAdminHasEveryRole(t *testing.T) {
	a := newTestApp(t)
	_, token := seedUser(t, a, "admin", true)

	rr := executeRequest(a, "GET", "/api/me", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var profile models.Profile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
	assert.True(t, profile.User.IsAdmin)
	assert.True(t, profile.HasLEOAccess)
	assert.True(t, profile.HasJudgeAccess)
}

func TestRevokeToken(t *testing.T) {
	a := newTestApp(t)
	_, token := seedUser(t, a, "civ", false)

	rr := executeRequest(a, "DELETE", "/api/auth/token", token, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	// the token itself is still validly signed, so it is verified again
	rr = executeRequest(a, "GET", "/api/me", token, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMetricsRoute(t *testing.T) {
	a := newTestApp(t)
	executeRequest(a, "GET", "/api/dmv/characters", "", nil)

	rr := executeRequest(a, "GET", "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(),
		`dmv_http_requests_total{method="GET",route="/api/dmv/characters",status="401"} 1`)
	assert.Contains(t, rr.Body.String(), "go_sql_open_connections")
}

func TestRequestIDHeader(t *testing.T) {
	a := newTestApp(t)
	rr := executeRequest(a, "GET", "/api/dmv/characters", "", nil)
	assert.NotEmpty(t, rr.Header().Get(api.RequestIDHeader))
}

func TestInvalidPathID(t *testing.T) {
	a := newTestApp(t)
	_, token := seedUser(t, a, "civ", false)

	rr := executeRequest(a, "PUT", "/api/dmv/vehicles/abc", token, corollaBody("XYZ999"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMalformedBody(t *testing.T) {
	a := newTestApp(t)
	_, token := seedUser(t, a, "civ", false)

	req := httptest.NewRequest("POST", "/api/dmv/characters", strings.NewReader("{not json"))
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func janeDoeBody() map[string]interface{} {
	return map[string]interface{}{
		"name":          "Jane Doe",
		"date_of_birth": "1990-01-01",
		"address":       "1 Main St",
		"profession":    "Baker",
		"gender":        "Female",
		"race":          "Human",
	}
}

func corollaBody(plate string) map[string]interface{} {
	return map[string]interface{}{"make": "Toyota", "model": "Corolla", "color": "Blue", "plate": plate}
}

func TestEndToEndVehicleOwnership(t *testing.T) {
	a := newTestApp(t)
	_, civA := seedUser(t, a, "civ-a", false)
	_, civB := seedUser(t, a, "civ-b", false)

	rr := executeRequest(a, "POST", "/api/dmv/characters", civA, janeDoeBody())
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	characterID := decodeID(t, rr)
	assert.NotZero(t, characterID)

	rr = executeRequest(a, "POST", fmt.Sprintf("/api/dmv/characters/%d/vehicles", characterID), civA, corollaBody("XYZ999"))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	vehicleID := decodeID(t, rr)

	rr = executeRequest(a, "PUT", fmt.Sprintf("/api/dmv/vehicles/%d", vehicleID), civB, corollaBody("XYZ999"))
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = executeRequest(a, "DELETE", fmt.Sprintf("/api/dmv/vehicles/%d", vehicleID), civB, nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = executeRequest(a, "GET", fmt.Sprintf("/api/dmv/characters/%d", characterID), civB, nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = executeRequest(a, "GET", "/api/dmv/characters", civB, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestEndToEndDuplicatePlate(t *testing.T) {
	a := newTestApp(t)
	_, civA := seedUser(t, a, "civ-a", false)
	_, civB := seedUser(t, a, "civ-b", false)

	first := decodeID(t, executeRequest(a, "POST", "/api/dmv/characters", civA, janeDoeBody()))
	second := decodeID(t, executeRequest(a, "POST", "/api/dmv/characters", civB, janeDoeBody()))

	rr := executeRequest(a, "POST", fmt.Sprintf("/api/dmv/characters/%d/vehicles", first), civA, corollaBody("ABC123"))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = executeRequest(a, "POST", fmt.Sprintf("/api/dmv/characters/%d/vehicles", first), civA, corollaBody("abc123"))
	assert.Equal(t, http.StatusConflict, rr.Code)
	rr = executeRequest(a, "POST", fmt.Sprintf("/api/dmv/characters/%d/vehicles", second), civB, corollaBody("ABC123"))
	assert.Equal(t, http.StatusConflict, rr.Code)

	var detail models.CharacterDetail
	rr = executeRequest(a, "GET", fmt.Sprintf("/api/dmv/characters/%d", first), civA, nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &detail))
	assert.Len(t, detail.Vehicles, 1)
}

func TestEndToEndRecords(t *testing.T) {
	a := newTestApp(t)
	_, civ := seedUser(t, a, "civ", false)
	officerID, officer := seedUser(t, a, "officer", false, "leo-role")
	_, judge := seedUser(t, a, "judge", false, "judge-role")

	characterID := decodeID(t, executeRequest(a, "POST", "/api/dmv/characters", civ, janeDoeBody()))
	characterPath := fmt.Sprintf("/api/dmv/characters/%d", characterID)

	// citations
	rr := executeRequest(a, "POST", characterPath+"/citations", officer, map[string]interface{}{"violation": "Speeding"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	rr = executeRequest(a, "POST", characterPath+"/citations", civ, map[string]interface{}{"violation": "Speeding", "fine_amount": "10"})
	assert.Equal(t, http.StatusForbidden, rr.Code)
	rr = executeRequest(a, "POST", characterPath+"/citations", officer, map[string]interface{}{"violation": "Speeding", "fine_amount": "49.99"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	rr = executeRequest(a, "POST", "/api/dmv/characters/9999/citations", officer, map[string]interface{}{"violation": "Speeding", "fine_amount": 5})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// arrests
	rr = executeRequest(a, "POST", characterPath+"/arrests", judge, map[string]interface{}{"charges": "Theft", "location": "Bank"})
	require.Equal(t, http.StatusOK, rr.Code)

	// warrants
	rr = executeRequest(a, "POST", characterPath+"/warrants", officer, map[string]interface{}{"charges": "Fraud", "reason": "Evidence"})
	assert.Equal(t, http.StatusForbidden, rr.Code)
	activeID := decodeID(t, executeRequest(a, "POST", characterPath+"/warrants", judge, map[string]interface{}{"charges": "Fraud", "reason": "Evidence"}))
	doneID := decodeID(t, executeRequest(a, "POST", characterPath+"/warrants", judge, map[string]interface{}{"charges": "Theft", "reason": "Witness"}))

	rr = executeRequest(a, "PUT", fmt.Sprintf("/api/dmv/warrants/%d/complete", doneID), civ, nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	rr = executeRequest(a, "PUT", fmt.Sprintf("/api/dmv/warrants/%d/complete", doneID), officer, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = executeRequest(a, "PUT", fmt.Sprintf("/api/dmv/warrants/%d/complete", doneID), judge, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = executeRequest(a, "PUT", "/api/dmv/warrants/9999/complete", officer, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// the owner sees only the completed warrant
	var detail models.CharacterDetail
	rr = executeRequest(a, "GET", characterPath, civ, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &detail))
	assert.True(t, detail.IsOwner)
	assert.False(t, detail.HasLEOAccess)
	require.Len(t, detail.Warrants, 1)
	assert.Equal(t, doneID, detail.Warrants[0].ID)
	assert.Equal(t, models.WarrantStatusCompleted, detail.Warrants[0].Status)
	require.NotNil(t, detail.Warrants[0].CompletedBy)
	assert.Equal(t, officerID, *detail.Warrants[0].CompletedBy)
	assert.Equal(t, "officer", detail.Warrants[0].CompletedByName)
	assert.NotNil(t, detail.Warrants[0].CompletedAt)

	// the officer sees both, plus the citation and arrest
	detail = models.CharacterDetail{}
	rr = executeRequest(a, "GET", characterPath, officer, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &detail))
	assert.False(t, detail.IsOwner)
	assert.True(t, detail.HasLEOAccess)
	assert.Len(t, detail.Warrants, 2)
	var ids []int64
	for _, w := range detail.Warrants {
		ids = append(ids, w.ID)
	}
	assert.ElementsMatch(t, []int64{activeID, doneID}, ids)
	require.Len(t, detail.Citations, 1)
	assert.Equal(t, officerID, detail.Citations[0].IssuedBy)
	assert.Equal(t, "officer", detail.Citations[0].IssuedByName)
	assert.Equal(t, "49.99", detail.Citations[0].FineAmount)
	require.Len(t, detail.Arrests, 1)
	assert.Equal(t, "judge", detail.Arrests[0].ArrestedByName)
}

func TestEndToEndSearch(t *testing.T) {
	a := newTestApp(t)
	_, civ := seedUser(t, a, "civ", false)
	_, officer := seedUser(t, a, "officer", false, "leo-role")
	executeRequest(a, "POST", "/api/dmv/characters", civ, janeDoeBody())

	rr := executeRequest(a, "GET", "/api/dmv/search?query=doe", civ, nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = executeRequest(a, "GET", "/api/dmv/search?query=d", officer, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = executeRequest(a, "GET", "/api/dmv/search?query=nobody", officer, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = executeRequest(a, "GET", "/api/dmv/search?query=MAIN", officer, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var results []models.CharacterSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Jane Doe", results[0].Name)
	assert.Equal(t, "1 Main St", results[0].Address)
}

func TestEndToEndUpdateCharacter(t *testing.T) {
	a := newTestApp(t)
	_, civ := seedUser(t, a, "civ", false)
	_, officer := seedUser(t, a, "officer", false, "leo-role")
	_, judge := seedUser(t, a, "judge", false, "judge-role")

	characterID := decodeID(t, executeRequest(a, "POST", "/api/dmv/characters", civ, janeDoeBody()))
	path := fmt.Sprintf("/api/dmv/characters/%d", characterID)

	body := janeDoeBody()
	body["drivers_license_status"] = "Suspended"
	rr := executeRequest(a, "PUT", path, officer, body)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	rr = executeRequest(a, "PUT", path, judge, body)
	require.Equal(t, http.StatusOK, rr.Code)

	body["drivers_license_status"] = "Revoked"
	rr = executeRequest(a, "PUT", path, civ, body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = executeRequest(a, "GET", "/api/dmv/characters", civ, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var characters []models.Character
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &characters))
	require.Len(t, characters, 1)
	assert.Equal(t, models.DriversLicenseSuspended, characters[0].DriversLicenseStatus)
	assert.Equal(t, models.FirearmsLicenseNone, characters[0].FirearmsLicenseStatus)
}
