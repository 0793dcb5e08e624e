package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models"
	"github.com/pranaynookala001/PurdueGo2025/internal/app/schedule"
	"github.com/pranaynookala001/PurdueGo2025/internal/app/services"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockScheduleService struct {
	generateResult *services.GenerationResult
	generateErr    error
	getResult      *services.GenerationResult
	getErr         error
	saveErr        error

	generateUserID  string
	generateCourses []models.CourseRecord
}

func (m *mockScheduleService) Generate(_ context.Context, userID string, courses []models.CourseRecord) (*services.GenerationResult, error) {
	m.generateUserID = userID
	m.generateCourses = courses
	return m.generateResult, m.generateErr
}

func (m *mockScheduleService) Get(_ context.Context, _ string) (*services.GenerationResult, error) {
	return m.getResult, m.getErr
}

func (m *mockScheduleService) Save(_ context.Context, _ string, _ []models.CourseRecord, _ *models.Coordinates) error {
	return m.saveErr
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response body %q: %v", w.Body.String(), err)
	}
	return out
}

func generateRequestBody() map[string]interface{} {
	return map[string]interface{}{
		"courses": []map[string]interface{}{
			{
				"courseCode": "CS180",
				"days":       []string{"Monday", "Wednesday"},
				"startTime":  "9:00 AM",
				"endTime":    "9:50 AM",
				"location":   "WALC",
				"roomNumber": "101",
			},
		},
	}
}

func TestGenerateScheduleSuccess(t *testing.T) {
	week := models.NewWeekSchedule()
	week[models.Monday] = append(week[models.Monday], models.ScheduleBlock{
		Day:       models.Monday,
		Info:      "9:00 AM–9:50 AM CS180 at WALC 101",
		StartTime: "9:00 AM",
		EndTime:   "9:50 AM",
		Type:      models.BlockClass,
	})
	svc := &mockScheduleService{generateResult: &services.GenerationResult{Week: week}}
	router := gin.New()
	router.POST("/api/generateSchedule", NewScheduleController(svc).GenerateSchedule)

	w := postJSON(t, router, "/api/generateSchedule", generateRequestBody())

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
	}
	body := decodeBody(t, w)
	sched, ok := body["schedule"].(map[string]interface{})
	if !ok {
		t.Fatalf("response missing top-level schedule object: %s", w.Body.String())
	}
	monday, ok := sched["Monday"].([]interface{})
	if !ok || len(monday) != 1 {
		t.Fatalf("Monday = %v, want one block", sched["Monday"])
	}
	if len(svc.generateCourses) != 1 || svc.generateCourses[0].Code != "CS180" {
		t.Errorf("service received courses %+v, want one CS180 record", svc.generateCourses)
	}
	if svc.generateUserID != "" {
		t.Errorf("userID = %q, want empty for unauthenticated request", svc.generateUserID)
	}
}

func TestGenerateScheduleValidationError(t *testing.T) {
	svc := &mockScheduleService{
		generateErr: apperrors.NewValidationError("Please fill in all fields for every course."),
	}
	router := gin.New()
	router.POST("/api/generateSchedule", NewScheduleController(svc).GenerateSchedule)

	w := postJSON(t, router, "/api/generateSchedule", generateRequestBody())

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	body := decodeBody(t, w)
	msg, ok := body["error"].(string)
	if !ok || msg == "" {
		t.Fatalf("response missing flat error string: %s", w.Body.String())
	}
}

func TestGenerateScheduleInternalError(t *testing.T) {
	svc := &mockScheduleService{
		generateErr: apperrors.NewNetworkError("database unreachable"),
	}
	router := gin.New()
	router.POST("/api/generateSchedule", NewScheduleController(svc).GenerateSchedule)

	w := postJSON(t, router, "/api/generateSchedule", generateRequestBody())

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if _, ok := decodeBody(t, w)["error"].(string); !ok {
		t.Fatalf("response missing flat error string: %s", w.Body.String())
	}
}

func TestGenerateScheduleBindError(t *testing.T) {
	svc := &mockScheduleService{}
	router := gin.New()
	router.POST("/api/generateSchedule", NewScheduleController(svc).GenerateSchedule)

	req := httptest.NewRequest(http.MethodPost, "/api/generateSchedule", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if got := decodeBody(t, w)["error"]; got != "Invalid request data" {
		t.Errorf("error = %v, want %q", got, "Invalid request data")
	}
}

func TestGetScheduleEmptyForNewUser(t *testing.T) {
	svc := &mockScheduleService{getResult: nil}
	router := gin.New()
	router.GET("/api/v1/schedule", NewScheduleController(svc).GetSchedule)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
	}
	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response missing data envelope: %s", w.Body.String())
	}
	sched, ok := data["schedule"].(map[string]interface{})
	if !ok {
		t.Fatalf("data missing schedule: %s", w.Body.String())
	}
	for _, day := range models.Weekdays {
		blocks, present := sched[string(day)]
		if !present {
			t.Errorf("empty schedule missing key %s", day)
			continue
		}
		if arr, _ := blocks.([]interface{}); len(arr) != 0 {
			t.Errorf("%s = %v, want empty", day, blocks)
		}
	}
}

func TestGetScheduleReportsConflicts(t *testing.T) {
	svc := &mockScheduleService{getResult: &services.GenerationResult{
		Week: models.NewWeekSchedule(),
		Conflicts: []schedule.Conflict{
			{Day: models.Monday, First: "CS180", Second: "MA161"},
		},
	}}
	router := gin.New()
	router.GET("/api/v1/schedule", NewScheduleController(svc).GetSchedule)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	data := decodeBody(t, w)["data"].(map[string]interface{})
	conflicts, ok := data["conflicts"].([]interface{})
	if !ok || len(conflicts) != 1 {
		t.Fatalf("conflicts = %v, want one entry", data["conflicts"])
	}
}

func TestSaveScheduleBindError(t *testing.T) {
	svc := &mockScheduleService{}
	router := gin.New()
	router.PUT("/api/v1/schedule", NewScheduleController(svc).SaveSchedule)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/schedule", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	body := decodeBody(t, w)
	if _, ok := body["error"].(map[string]interface{}); !ok {
		t.Fatalf("response missing structured error: %s", w.Body.String())
	}
}
