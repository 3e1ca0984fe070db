package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/teapotframework/teapot-core/internal/brewing"
	"github.com/teapotframework/teapot-core/internal/infrastructure/config"
	"github.com/teapotframework/teapot-core/internal/infrastructure/logging"
)

// newTestServer builds a server with an empty store and metrics disabled.
func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()

	s, err := New(Deps{
		Config:  config.APIConfig{Host: "127.0.0.1", Port: 8080},
		Metrics: config.MetricsConfig{Enabled: false},
		Logger:  logging.Default(),
		Store:   brewing.NewStore(),
		Version: "test",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, s.buildRouter()
}

// do runs one request through the router and returns the recorder.
func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a response body, failing the test on bad JSON.
func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
}

// createTeapot posts a minimal valid teapot and returns its ID.
func createTeapot(t *testing.T, h http.Handler, name string) string {
	t.Helper()

	body := fmt.Sprintf(`{"name":%q,"material":"ceramic","capacityMl":800}`, name)
	rec := do(t, h, http.MethodPost, "/teapots", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create teapot: status %d, body %s", rec.Code, rec.Body.String())
	}
	var out struct {
		ID string `json:"id"`
	}
	decode(t, rec, &out)
	return out.ID
}

// createTea posts a minimal valid tea and returns its ID.
func createTea(t *testing.T, h http.Handler, name string, temp int) string {
	t.Helper()

	body := fmt.Sprintf(`{"name":%q,"type":"green","steepTempCelsius":%d,"steepTimeSeconds":120}`, name, temp)
	rec := do(t, h, http.MethodPost, "/teas", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create tea: status %d, body %s", rec.Code, rec.Body.String())
	}
	var out struct {
		ID string `json:"id"`
	}
	decode(t, rec, &out)
	return out.ID
}

func TestNewRequiresDeps(t *testing.T) {
	if _, err := New(Deps{Store: brewing.NewStore()}); err == nil {
		t.Error("New without logger should fail")
	}
	if _, err := New(Deps{Logger: logging.Default()}); err == nil {
		t.Error("New without store should fail")
	}
}

func TestCreateTeapotDefaultsAndEcho(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/teapots",
		`{"name":"Brown Betty","material":"ceramic","capacityMl":1000,"description":"a classic"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var got map[string]any
	decode(t, rec, &got)

	if got["style"] != "english" {
		t.Errorf("style = %v, want english default", got["style"])
	}
	if got["description"] != "a classic" {
		t.Errorf("description = %v", got["description"])
	}
	if got["id"] == "" || got["createdAt"] == nil || got["updatedAt"] == nil {
		t.Errorf("server-assigned fields missing: %v", got)
	}
}

func TestCreateTeapotValidation(t *testing.T) {
	_, h := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{"empty object", `{}`, []string{"name", "material", "capacityMl"}},
		{"bad material", `{"name":"x","material":"plastic","capacityMl":500}`, []string{"material"}},
		{"capacity too large", `{"name":"x","material":"glass","capacityMl":9000}`, []string{"capacityMl"}},
		{"name too long", fmt.Sprintf(`{"name":%q,"material":"glass","capacityMl":500}`, strings.Repeat("a", 101)), []string{"name"}},
		{"bad style", `{"name":"x","material":"glass","capacityMl":500,"style":"art-deco"}`, []string{"style"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/teapots", tt.body)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}

			var got Error
			decode(t, rec, &got)
			if got.Code != "VALIDATION_ERROR" {
				t.Errorf("code = %q", got.Code)
			}
			if got.Message != "The given data was invalid." {
				t.Errorf("message = %q", got.Message)
			}
			for _, f := range tt.wantFields {
				if len(got.Errors[f]) == 0 {
					t.Errorf("missing error for field %q: %v", f, got.Errors)
				}
			}
		})
	}
}

func TestInvalidJSONBody(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/teapots", `{"name": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var got Error
	decode(t, rec, &got)
	if got.Code != "BAD_REQUEST" {
		t.Errorf("code = %q", got.Code)
	}
}

func TestGetTeapotNotFoundBody(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/teapots/no-such-id", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var got Error
	decode(t, rec, &got)
	if got.Code != "NOT_FOUND" || got.Message != "Teapot not found" {
		t.Errorf("body = %+v", got)
	}
}

func TestListTeapotsEnvelope(t *testing.T) {
	_, h := newTestServer(t)
	for i := 0; i < 5; i++ {
		createTeapot(t, h, fmt.Sprintf("Pot %d", i))
	}

	rec := do(t, h, http.MethodGet, "/teapots?page=2&limit=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got struct {
		Data       []map[string]any `json:"data"`
		Pagination struct {
			Page       int `json:"page"`
			Limit      int `json:"limit"`
			Total      int `json:"total"`
			TotalPages int `json:"totalPages"`
		} `json:"pagination"`
	}
	decode(t, rec, &got)

	if len(got.Data) != 2 {
		t.Errorf("len(data) = %d, want 2", len(got.Data))
	}
	if got.Pagination.Page != 2 || got.Pagination.Limit != 2 {
		t.Errorf("pagination echo = %+v", got.Pagination)
	}
	if got.Pagination.Total != 5 || got.Pagination.TotalPages != 3 {
		t.Errorf("total/totalPages = %d/%d, want 5/3", got.Pagination.Total, got.Pagination.TotalPages)
	}
}

func TestPaginationClamping(t *testing.T) {
	_, h := newTestServer(t)
	createTeapot(t, h, "Solo")

	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 20},
		{"zero page", "?page=0", 1, 20},
		{"negative page", "?page=-3", 1, 20},
		{"limit too large", "?limit=500", 1, 100},
		{"zero limit", "?limit=0", 1, 1},
		{"garbage values", "?page=abc&limit=xyz", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, "/teapots"+tt.query, "")
			var got struct {
				Pagination struct {
					Page  int `json:"page"`
					Limit int `json:"limit"`
				} `json:"pagination"`
			}
			decode(t, rec, &got)
			if got.Pagination.Page != tt.wantPage || got.Pagination.Limit != tt.wantLimit {
				t.Errorf("page/limit = %d/%d, want %d/%d",
					got.Pagination.Page, got.Pagination.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestListTeapotsOutOfRangePage(t *testing.T) {
	_, h := newTestServer(t)
	createTeapot(t, h, "Only")

	rec := do(t, h, http.MethodGet, "/teapots?page=99", "")
	var got struct {
		Data       []map[string]any `json:"data"`
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	decode(t, rec, &got)

	if got.Data == nil {
		t.Error("data should serialize as [] not null")
	}
	if len(got.Data) != 0 || got.Pagination.Total != 1 {
		t.Errorf("data len = %d, total = %d", len(got.Data), got.Pagination.Total)
	}
}

func TestInvalidFilterIsIgnored(t *testing.T) {
	_, h := newTestServer(t)
	createTeapot(t, h, "A")
	createTeapot(t, h, "B")

	// An unknown material matches the filter-absent path, not zero results.
	rec := do(t, h, http.MethodGet, "/teapots?material=adamantium", "")
	var got struct {
		Data []map[string]any `json:"data"`
	}
	decode(t, rec, &got)
	if len(got.Data) != 2 {
		t.Errorf("len(data) = %d, want 2", len(got.Data))
	}
}

func TestPatchTeapotNullClearsDescription(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/teapots",
		`{"name":"Pot","material":"clay","capacityMl":400,"description":"keep me"}`)
	var created struct {
		ID string `json:"id"`
	}
	decode(t, rec, &created)

	// Patch something unrelated: description survives.
	rec = do(t, h, http.MethodPatch, "/teapots/"+created.ID, `{"name":"Pot II"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var got map[string]any
	decode(t, rec, &got)
	if got["description"] != "keep me" {
		t.Errorf("description = %v, want keep me", got["description"])
	}

	// Explicit null clears it.
	rec = do(t, h, http.MethodPatch, "/teapots/"+created.ID, `{"description":null}`)
	decode(t, rec, &got)
	if got["description"] != nil {
		t.Errorf("description = %v, want null", got["description"])
	}
	if got["name"] != "Pot II" {
		t.Errorf("name = %v, want Pot II", got["name"])
	}
}

func TestPutTeapotResetsOmittedOptional(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/teapots",
		`{"name":"Pot","material":"clay","capacityMl":400,"description":"here"}`)
	var created struct {
		ID string `json:"id"`
	}
	decode(t, rec, &created)

	rec = do(t, h, http.MethodPut, "/teapots/"+created.ID,
		`{"name":"Pot","material":"clay","capacityMl":400,"style":"yixing"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var got map[string]any
	decode(t, rec, &got)
	if got["description"] != nil {
		t.Errorf("description = %v, want null after PUT without it", got["description"])
	}
	if got["style"] != "yixing" {
		t.Errorf("style = %v", got["style"])
	}
}

func TestPutTeapotRequiresAllFields(t *testing.T) {
	_, h := newTestServer(t)
	id := createTeapot(t, h, "Pot")

	// PUT, unlike PATCH, insists on style.
	rec := do(t, h, http.MethodPut, "/teapots/"+id, `{"name":"Pot","material":"clay","capacityMl":400}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var got Error
	decode(t, rec, &got)
	if len(got.Errors["style"]) == 0 {
		t.Errorf("missing style error: %v", got.Errors)
	}
}

func TestDeleteTeapot(t *testing.T) {
	_, h := newTestServer(t)
	id := createTeapot(t, h, "Doomed")

	rec := do(t, h, http.MethodDelete, "/teapots/"+id, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("204 body should be empty, got %q", rec.Body.String())
	}

	rec = do(t, h, http.MethodDelete, "/teapots/"+id, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestCreateTeaCaffeineDefault(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/teas",
		`{"name":"Sencha","type":"green","steepTempCelsius":75,"steepTimeSeconds":90}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var got map[string]any
	decode(t, rec, &got)
	if got["caffeineLevel"] != "medium" {
		t.Errorf("caffeineLevel = %v, want medium default", got["caffeineLevel"])
	}
	if got["origin"] != nil {
		t.Errorf("origin = %v, want null", got["origin"])
	}
}

func TestCreateTeaValidation(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/teas",
		`{"name":"Bad","type":"green","steepTempCelsius":50,"steepTimeSeconds":700}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	var got Error
	decode(t, rec, &got)
	if len(got.Errors["steepTempCelsius"]) == 0 || len(got.Errors["steepTimeSeconds"]) == 0 {
		t.Errorf("errors = %v", got.Errors)
	}
}

func TestBrewLifecycle(t *testing.T) {
	_, h := newTestServer(t)
	teapotID := createTeapot(t, h, "Pot")
	teaID := createTea(t, h, "Sencha", 75)

	// Create: water temp snapshots the tea's steep temperature.
	rec := do(t, h, http.MethodPost, "/brews",
		fmt.Sprintf(`{"teapotId":%q,"teaId":%q}`, teapotID, teaID))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create brew: status %d, body %s", rec.Code, rec.Body.String())
	}
	var brew map[string]any
	decode(t, rec, &brew)
	if brew["status"] != "preparing" {
		t.Errorf("status = %v, want preparing", brew["status"])
	}
	if brew["waterTempCelsius"] != float64(75) {
		t.Errorf("waterTempCelsius = %v, want 75", brew["waterTempCelsius"])
	}
	if brew["completedAt"] != nil {
		t.Errorf("completedAt = %v, want null", brew["completedAt"])
	}
	brewID := brew["id"].(string)

	// Patch status and completion.
	rec = do(t, h, http.MethodPatch, "/brews/"+brewID,
		`{"status":"served","completedAt":"2026-08-30T12:00:00Z"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch brew: status %d, body %s", rec.Code, rec.Body.String())
	}
	decode(t, rec, &brew)
	if brew["status"] != "served" || brew["completedAt"] == nil {
		t.Errorf("after patch: %v", brew)
	}

	// Delete returns 204 and the brew is gone.
	rec = do(t, h, http.MethodDelete, "/brews/"+brewID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete brew: status %d", rec.Code)
	}
	rec = do(t, h, http.MethodGet, "/brews/"+brewID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("get deleted brew: status %d, want 404", rec.Code)
	}
}

func TestCreateBrewUnknownReferences(t *testing.T) {
	_, h := newTestServer(t)
	teapotID := createTeapot(t, h, "Pot")

	// Well-formed UUID, nonexistent tea: 404 naming the tea.
	rec := do(t, h, http.MethodPost, "/brews",
		fmt.Sprintf(`{"teapotId":%q,"teaId":"123e4567-e89b-12d3-a456-426614174000"}`, teapotID))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var got Error
	decode(t, rec, &got)
	if got.Message != "Tea not found" {
		t.Errorf("message = %q", got.Message)
	}

	// Malformed UUID never reaches the store: 422.
	rec = do(t, h, http.MethodPost, "/brews", `{"teapotId":"not-a-uuid","teaId":"also-bad"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestBrewStatusFilter(t *testing.T) {
	_, h := newTestServer(t)
	teapotID := createTeapot(t, h, "Pot")
	teaID := createTea(t, h, "Sencha", 75)

	var ids []string
	for i := 0; i < 3; i++ {
		rec := do(t, h, http.MethodPost, "/brews",
			fmt.Sprintf(`{"teapotId":%q,"teaId":%q}`, teapotID, teaID))
		var b struct {
			ID string `json:"id"`
		}
		decode(t, rec, &b)
		ids = append(ids, b.ID)
	}
	do(t, h, http.MethodPatch, "/brews/"+ids[1], `{"status":"ready"}`)

	rec := do(t, h, http.MethodGet, "/brews?status=ready", "")
	var got struct {
		Data []map[string]any `json:"data"`
	}
	decode(t, rec, &got)
	if len(got.Data) != 1 || got.Data[0]["id"] != ids[1] {
		t.Errorf("status filter returned %d brews", len(got.Data))
	}
}

func TestListBrewsByTeapot(t *testing.T) {
	_, h := newTestServer(t)
	potA := createTeapot(t, h, "A")
	potB := createTeapot(t, h, "B")
	teaID := createTea(t, h, "Sencha", 75)

	do(t, h, http.MethodPost, "/brews", fmt.Sprintf(`{"teapotId":%q,"teaId":%q}`, potA, teaID))
	do(t, h, http.MethodPost, "/brews", fmt.Sprintf(`{"teapotId":%q,"teaId":%q}`, potA, teaID))
	do(t, h, http.MethodPost, "/brews", fmt.Sprintf(`{"teapotId":%q,"teaId":%q}`, potB, teaID))

	rec := do(t, h, http.MethodGet, "/teapots/"+potA+"/brews", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got struct {
		Data       []map[string]any `json:"data"`
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	decode(t, rec, &got)
	if got.Pagination.Total != 2 {
		t.Errorf("total = %d, want 2", got.Pagination.Total)
	}

	rec = do(t, h, http.MethodGet, "/teapots/no-such-pot/brews", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown teapot status = %d, want 404", rec.Code)
	}
}

func TestSteepFlow(t *testing.T) {
	_, h := newTestServer(t)
	teapotID := createTeapot(t, h, "Pot")
	teaID := createTea(t, h, "Sencha", 75)

	rec := do(t, h, http.MethodPost, "/brews",
		fmt.Sprintf(`{"teapotId":%q,"teaId":%q}`, teapotID, teaID))
	var brew struct {
		ID string `json:"id"`
	}
	decode(t, rec, &brew)

	for i := 1; i <= 3; i++ {
		rec = do(t, h, http.MethodPost, "/brews/"+brew.ID+"/steeps",
			fmt.Sprintf(`{"durationSeconds":%d,"rating":%d}`, 30*i, i))
		if rec.Code != http.StatusCreated {
			t.Fatalf("create steep %d: status %d, body %s", i, rec.Code, rec.Body.String())
		}
		var st map[string]any
		decode(t, rec, &st)
		if st["steepNumber"] != float64(i) {
			t.Errorf("steepNumber = %v, want %d", st["steepNumber"], i)
		}
	}

	rec = do(t, h, http.MethodGet, "/brews/"+brew.ID+"/steeps", "")
	var list struct {
		Data []map[string]any `json:"data"`
	}
	decode(t, rec, &list)
	if len(list.Data) != 3 {
		t.Fatalf("len(steeps) = %d, want 3", len(list.Data))
	}
	for i, st := range list.Data {
		if st["steepNumber"] != float64(i+1) {
			t.Errorf("steeps out of order at %d: %v", i, st["steepNumber"])
		}
	}

	// Rating bounds are enforced.
	rec = do(t, h, http.MethodPost, "/brews/"+brew.ID+"/steeps", `{"durationSeconds":30,"rating":6}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("rating 6 status = %d, want 422", rec.Code)
	}

	// Steeps on a missing brew are a 404.
	rec = do(t, h, http.MethodPost, "/brews/ghost/steeps", `{"durationSeconds":30}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing brew status = %d, want 404", rec.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	_, h := newTestServer(t)
	createTeapot(t, h, "Counted")

	rec := do(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("/health status = %d", rec.Code)
	}
	var got struct {
		Status string         `json:"status"`
		Counts map[string]int `json:"counts"`
	}
	decode(t, rec, &got)
	if got.Status != "ok" || got.Counts["teapots"] != 1 {
		t.Errorf("health body = %+v", got)
	}

	rec = do(t, h, http.MethodGet, "/health/live", "")
	if rec.Code != http.StatusOK {
		t.Errorf("/health/live status = %d", rec.Code)
	}

	rec = do(t, h, http.MethodGet, "/health/ready", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("/health/ready status = %d", rec.Code)
	}
	var ready struct {
		Status string `json:"status"`
		Checks []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"checks"`
	}
	decode(t, rec, &ready)
	if ready.Status != "ok" || len(ready.Checks) == 0 {
		t.Errorf("readiness body = %+v", ready)
	}
	for _, c := range ready.Checks {
		if c.Status != "ok" {
			t.Errorf("check %s = %s", c.Name, c.Status)
		}
	}
}

func TestBrewCoffeeRefused(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/brew", "")
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want 418", rec.Code)
	}
	var got map[string]string
	decode(t, rec, &got)
	if got["error"] != "I'm a teapot" {
		t.Errorf("body = %v", got)
	}
}

func TestRequestIDHeader(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/health/live", "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID not set")
	}

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	req.Header.Set("X-Request-ID", "my-trace-id")
	echo := httptest.NewRecorder()
	h.ServeHTTP(echo, req)
	if echo.Header().Get("X-Request-ID") != "my-trace-id" {
		t.Errorf("X-Request-ID = %q, want echo of client value", echo.Header().Get("X-Request-ID"))
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s, err := New(Deps{
		Config:  config.APIConfig{Host: "127.0.0.1", Port: 8080},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
		Logger:  logging.Default(),
		Store:   brewing.NewStore(),
		Version: "test",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h := s.buildRouter()

	createTeapot(t, h, "Observed")
	do(t, h, http.MethodGet, "/teapots", "")

	rec := do(t, h, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "teapot_http_requests_total") {
		t.Error("request counter missing from scrape")
	}
	if !strings.Contains(body, `teapot_store_entities{entity="teapot"} 1`) {
		t.Errorf("entity gauge missing from scrape:\n%s", body)
	}
}
