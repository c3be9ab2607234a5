package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hrms/internal/platform/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Addr:         ":0",
		Environment:  "test",
		JWTSecret:    "test-secret",
		SnapshotPath: filepath.Join(t.TempDir(), "state.json"),
		FrontendDir:  t.TempDir(),
		ToastTTL:     3 * time.Second,
		MaxBodyBytes: 1 << 20,
		SeedDemoData: false,
	}
}

func newTestApp(t *testing.T, cfg config.Config) *App {
	t.Helper()
	app, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details *struct {
			Fields []struct {
				Field  string `json:"field"`
				Reason string `json:"reason"`
			} `json:"fields"`
		} `json:"details"`
	} `json:"error"`
	RequestID string `json:"requestId"`
}

func doJSON(t *testing.T, app *App, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	r := httptest.NewRequest(method, path, reader)
	r.Header.Set("Content-Type", "application/json")
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, r)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: decode envelope: %v\nbody: %s", method, path, err, w.Body.String())
		}
	}
	return w, env
}

func login(t *testing.T, app *App) string {
	t.Helper()
	w, env := doJSON(t, app, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    "admin@corp.test",
		"password": "password",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: status %d, body %s", w.Code, w.Body.String())
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("login data: %v", err)
	}
	if data.Token == "" {
		t.Fatal("login returned no token")
	}
	return data.Token
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	w, env := doJSON(t, app, "POST", "/api/v1/auth/login", "", map[string]string{"email": "", "password": "x"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", w.Code)
	}
	if env.Error == nil || env.Error.Code != "invalid_credentials" {
		t.Fatalf("error: %+v", env.Error)
	}
}

func TestAPIRequiresSession(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	w, env := doJSON(t, app, "GET", "/api/v1/employees", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", w.Code)
	}
	if env.Error == nil || env.Error.Code != "unauthorized" {
		t.Fatalf("error: %+v", env.Error)
	}
}

func TestEmployeeCreateAndFetch(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	token := login(t, app)

	w, env := doJSON(t, app, "POST", "/api/v1/employees", token, map[string]any{
		"name":       "Ada Lovelace",
		"email":      "ada@corp.test",
		"department": "Engineering",
		"status":     "Active",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d, body %s", w.Code, w.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("create data: %v", err)
	}
	if created.ID != "EMP-1001" {
		t.Fatalf("first id: got %s, want EMP-1001", created.ID)
	}

	w, env = doJSON(t, app, "GET", "/api/v1/employees/"+created.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("fetch: status %d", w.Code)
	}
	var emp struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(env.Data, &emp); err != nil {
		t.Fatalf("fetch data: %v", err)
	}
	if emp.Name != "Ada Lovelace" {
		t.Fatalf("fetched name: %q", emp.Name)
	}

	w, _ = doJSON(t, app, "GET", "/api/v1/employees/EMP-9999", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing employee: status %d, want 404", w.Code)
	}
}

func TestEmployeeValidation(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	token := login(t, app)

	w, env := doJSON(t, app, "POST", "/api/v1/employees", token, map[string]any{
		"name":   "",
		"status": "Bogus",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", w.Code)
	}
	if env.Error == nil || env.Error.Code != "validation_error" {
		t.Fatalf("error: %+v", env.Error)
	}
}

func TestCandidateHireJourney(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	token := login(t, app)

	_, env := doJSON(t, app, "POST", "/api/v1/candidates", token, map[string]any{
		"name":     "Grace Hopper",
		"position": "Staff Engineer",
	})
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("create data: %v", err)
	}

	for i := 0; i < 3; i++ {
		w, _ := doJSON(t, app, "POST", "/api/v1/candidates/"+created.ID+"/advance", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("advance: status %d", w.Code)
		}
	}

	w, env := doJSON(t, app, "POST", "/api/v1/candidates/"+created.ID+"/hire", token, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("hire: status %d, body %s", w.Code, w.Body.String())
	}
	var hired struct {
		EmployeeID string `json:"employeeId"`
	}
	if err := json.Unmarshal(env.Data, &hired); err != nil {
		t.Fatalf("hire data: %v", err)
	}

	w, _ = doJSON(t, app, "GET", "/api/v1/employees/"+hired.EmployeeID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("hired employee fetch: status %d", w.Code)
	}

	w, env = doJSON(t, app, "POST", "/api/v1/candidates/"+created.ID+"/hire", token, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("double hire: status %d, want 409", w.Code)
	}
	if env.Error == nil || env.Error.Code != "already_hired" {
		t.Fatalf("double hire error: %+v", env.Error)
	}
}

func TestCSVExport(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	token := login(t, app)

	doJSON(t, app, "POST", "/api/v1/employees", token, map[string]any{
		"name": "Ada Lovelace", "email": "ada@corp.test", "department": "Engineering",
	})

	r := httptest.NewRequest("GET", "/api/v1/reports/export/employees", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("export: status %d, body %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "text/csv" {
		t.Fatalf("content type: %q", got)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "employees_") {
		t.Fatalf("disposition: %q", w.Header().Get("Content-Disposition"))
	}
	body := w.Body.String()
	if !strings.HasPrefix(body, "id,name,") || !strings.Contains(body, "Ada Lovelace") {
		t.Fatalf("csv body: %q", body)
	}
}

func TestSnapshotPersistsAcrossApps(t *testing.T) {
	cfg := testConfig(t)

	app := newTestApp(t, cfg)
	token := login(t, app)
	doJSON(t, app, "POST", "/api/v1/employees", token, map[string]any{
		"name": "Ada Lovelace", "email": "ada@corp.test", "department": "Engineering",
	})
	if err := app.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reborn := newTestApp(t, cfg)
	token = login(t, reborn)
	w, _ := doJSON(t, reborn, "GET", "/api/v1/employees/EMP-1001", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("employee lost across restart: status %d", w.Code)
	}
}

func TestSeedDemoOnFirstStart(t *testing.T) {
	cfg := testConfig(t)
	cfg.SeedDemoData = true
	app := newTestApp(t, cfg)
	token := login(t, app)

	w, env := doJSON(t, app, "GET", "/api/v1/employees", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	var data struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("list data: %v", err)
	}
	if data.Total != 10 {
		t.Fatalf("seeded total: got %d, want 10", data.Total)
	}
}

func TestExpenseStatusRequiresValue(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	token := login(t, app)

	_, env := doJSON(t, app, "POST", "/api/v1/expenses", token, map[string]any{
		"employeeId": "EMP-1001",
		"title":      "Conference travel",
		"category":   "Travel",
		"amount":     420.0,
	})
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("create data: %v", err)
	}

	w, env := doJSON(t, app, "POST", "/api/v1/expenses/"+created.ID+"/status", token, map[string]string{"status": ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty status: got %d, want 400", w.Code)
	}
	if env.Error == nil || env.Error.Code != "validation_error" {
		t.Fatalf("error: %+v", env.Error)
	}

	w, env = doJSON(t, app, "GET", "/api/v1/expenses", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	var expenses []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &expenses); err != nil {
		t.Fatalf("list data: %v", err)
	}
	if len(expenses) != 1 || expenses[0].Status != "Pending" {
		t.Fatalf("expense after rejected update: %+v", expenses)
	}

	w, _ = doJSON(t, app, "POST", "/api/v1/expenses/"+created.ID+"/status", token, map[string]string{"status": "Approved"})
	if w.Code != http.StatusOK {
		t.Fatalf("valid status: got %d, want 200", w.Code)
	}
}

func TestAssetPatchRejectsEmptyStatus(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	token := login(t, app)

	_, env := doJSON(t, app, "POST", "/api/v1/assets", token, map[string]any{
		"name":         "ThinkPad X1",
		"serialNumber": "SN-1001",
		"type":         "Laptop",
	})
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("create data: %v", err)
	}

	w, env := doJSON(t, app, "PATCH", "/api/v1/assets/"+created.ID, token, map[string]string{"status": ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty status patch: got %d, want 400", w.Code)
	}
	if env.Error == nil || env.Error.Code != "validation_error" {
		t.Fatalf("error: %+v", env.Error)
	}

	w, env = doJSON(t, app, "GET", "/api/v1/assets", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	var assets []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &assets); err != nil {
		t.Fatalf("list data: %v", err)
	}
	if len(assets) != 1 || assets[0].Status != "Available" {
		t.Fatalf("asset after rejected patch: %+v", assets)
	}
}

func TestLeaveValidationReportsOneIssuePerField(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	token := login(t, app)

	w, env := doJSON(t, app, "POST", "/api/v1/leave-requests", token, map[string]any{
		"employeeId": "EMP-1001",
		"type":       "Annual",
		"endDate":    "2025-07-04",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing startDate: got %d, want 400", w.Code)
	}
	if env.Error == nil || env.Error.Details == nil {
		t.Fatalf("error: %+v", env.Error)
	}
	var startIssues []string
	for _, issue := range env.Error.Details.Fields {
		if issue.Field == "startDate" {
			startIssues = append(startIssues, issue.Reason)
		}
	}
	if len(startIssues) != 1 {
		t.Fatalf("startDate issues: got %v, want exactly one", startIssues)
	}
	if startIssues[0] != "startDate is required" {
		t.Fatalf("startDate reason: %q", startIssues[0])
	}
}
