package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sprachlog/sprachlog/internal/api"
	"github.com/sprachlog/sprachlog/internal/app/tracker"
	"github.com/sprachlog/sprachlog/internal/domain"
	"github.com/sprachlog/sprachlog/internal/infra/sqlite"
)

func testServer(t *testing.T) http.Handler {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	plan := domain.Plan{Tasks: []domain.TaskTemplate{
		{ID: "glossar", Name: "Glossar", Duration: 60},
		{ID: "radio", Name: "Radio", Duration: 30},
	}}
	svc, err := tracker.New(db, plan, domain.DefaultNotificationPolicy())
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	return api.NewServer(svc, "test").Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := testServer(t)
	rec := doJSON(t, h, "GET", "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestDay_SeedsAndReturnsTasks(t *testing.T) {
	h := testServer(t)
	rec := doJSON(t, h, "GET", "/api/day/2025-01-15/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	var day struct {
		Date  string        `json:"date"`
		Tasks []domain.Task `json:"tasks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &day); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if day.Date != "2025-01-15" || len(day.Tasks) != 2 {
		t.Errorf("unexpected day %+v", day)
	}
}

func TestDay_InvalidDate(t *testing.T) {
	h := testServer(t)
	rec := doJSON(t, h, "GET", "/api/day/yesterday/", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad date, got %d", rec.Code)
	}
}

func TestCompleteTask_FlowAndNotFound(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, "POST", "/api/day/2025-01-15/tasks/glossar/complete", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var day struct {
		Tasks []domain.Task `json:"tasks"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &day)
	if !day.Tasks[0].Completed {
		t.Error("response should reflect the completion")
	}

	rec = doJSON(t, h, "POST", "/api/day/2025-01-15/tasks/missing/complete", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown task, got %d", rec.Code)
	}
}

func TestProgressAndStreak(t *testing.T) {
	h := testServer(t)
	_ = doJSON(t, h, "POST", "/api/day/2025-01-15/tasks/glossar/complete", "")

	rec := doJSON(t, h, "GET", "/api/progress/2025", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var yp domain.YearlyProgress
	if err := json.Unmarshal(rec.Body.Bytes(), &yp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if yp.Year != 2025 || yp.TotalHours != 1.0 {
		t.Errorf("unexpected progress year=%d hours=%v", yp.Year, yp.TotalHours)
	}

	rec = doJSON(t, h, "GET", "/api/streak", "")
	if rec.Code != http.StatusOK {
		t.Errorf("streak: expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, h, "GET", "/api/level", "")
	if rec.Code != http.StatusOK {
		t.Errorf("level: expected 200, got %d", rec.Code)
	}
}

func TestPomodoro_Validation(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, "POST", "/api/day/2025-01-15/tasks/glossar/pomodoro", `{"sessions":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	rec = doJSON(t, h, "POST", "/api/day/2025-01-15/tasks/glossar/pomodoro", `{"sessions":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero sessions, got %d", rec.Code)
	}
}

func TestVocabulary_AddAndList(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, "POST", "/api/vocabulary", `{"word":"Haus","translation":"house","level":"A1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}
	var saved domain.VocabularyEntry
	_ = json.Unmarshal(rec.Body.Bytes(), &saved)
	if saved.ID == "" {
		t.Error("expected server-assigned id")
	}

	rec = doJSON(t, h, "POST", "/api/vocabulary", `{"translation":"nothing"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing word, got %d", rec.Code)
	}

	rec = doJSON(t, h, "GET", "/api/vocabulary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var list struct {
		Vocabulary []domain.VocabularyEntry `json:"vocabulary"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &list)
	if len(list.Vocabulary) != 1 {
		t.Errorf("expected 1 entry, got %d", len(list.Vocabulary))
	}
}

func TestGoals_RoundTrip(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, "GET", "/api/goals", "")
	var goals domain.LearningGoals
	_ = json.Unmarshal(rec.Body.Bytes(), &goals)
	if goals != domain.DefaultGoals() {
		t.Errorf("expected default goals, got %+v", goals)
	}

	rec = doJSON(t, h, "PUT", "/api/goals", `{"daily_time_goal":120,"weekly_goal":4,"monthly_goal":40,"yearly_goal":500}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("put goals: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, h, "GET", "/api/goals", "")
	_ = json.Unmarshal(rec.Body.Bytes(), &goals)
	if goals.DailyTimeGoal != 120 {
		t.Errorf("goals not persisted: %+v", goals)
	}
}

func TestExportImport(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, "GET", "/api/export/2025", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("empty year: expected 404, got %d", rec.Code)
	}

	_ = doJSON(t, h, "POST", "/api/day/2025-01-15/tasks/glossar/complete", "")
	rec = doJSON(t, h, "GET", "/api/export/2025", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("export: expected 200, got %d", rec.Code)
	}

	// Import the exported document into a fresh server.
	fresh := testServer(t)
	rec2 := doJSON(t, fresh, "POST", "/api/import", rec.Body.String())
	if rec2.Code != http.StatusOK {
		t.Fatalf("import: expected 200, got %d: %s", rec2.Code, rec2.Body)
	}

	rec2 = doJSON(t, fresh, "GET", "/api/progress/2025", "")
	var yp domain.YearlyProgress
	_ = json.Unmarshal(rec2.Body.Bytes(), &yp)
	if yp.TotalHours != 1.0 {
		t.Errorf("imported history missing: %v", yp.TotalHours)
	}

	rec2 = doJSON(t, fresh, "POST", "/api/import", `{"year":2025}`)
	if rec2.Code != http.StatusBadRequest {
		t.Errorf("empty import: expected 400, got %d", rec2.Code)
	}
}

func TestNotificationShown_BadID(t *testing.T) {
	h := testServer(t)
	rec := doJSON(t, h, "POST", "/api/notifications/abc/shown", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
