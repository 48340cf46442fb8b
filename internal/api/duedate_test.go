package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func dueDateRouter(now time.Time) *gin.Engine {
	handler := NewDueDateHandler()
	handler.now = func() time.Time { return now }

	router := gin.New()
	router.POST("/api/tools/due-date", handler.Calculate)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func performRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCalculateDueDate(t *testing.T) {
	now := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	router := dueDateRouter(now)

	w := postJSON(t, router, "/api/tools/due-date", DueDateRequest{LastPeriodDate: "2024-01-01"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp DueDateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if resp.DueDate != "2024-10-07" {
		t.Errorf("due_date = %q, want 2024-10-07", resp.DueDate)
	}
	if resp.ConceptionDate != "2024-01-15" {
		t.Errorf("conception_date = %q, want 2024-01-15", resp.ConceptionDate)
	}
	if resp.CurrentWeek != 13 || resp.CurrentDay != 0 {
		t.Errorf("gestational age = %d/%d, want 13/0", resp.CurrentWeek, resp.CurrentDay)
	}
	if resp.GestationalAge != "13 weeks" {
		t.Errorf("gestational_age = %q, want %q", resp.GestationalAge, "13 weeks")
	}
	if resp.Trimester != 2 {
		t.Errorf("trimester = %d, want 2", resp.Trimester)
	}
	if resp.BabySize.Description == "" {
		t.Error("baby_size missing")
	}
}

func TestCalculateDueDateRejectsBadInput(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	router := dueDateRouter(now)

	tests := []struct {
		name string
		body interface{}
	}{
		{"missing date", map[string]string{}},
		{"malformed date", DueDateRequest{LastPeriodDate: "01/06/2024"}},
		{"future date", DueDateRequest{LastPeriodDate: "2024-06-02"}},
		{"too far in the past", DueDateRequest{LastPeriodDate: "2023-06-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/tools/due-date", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestCalculateDueDateBoundary(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	router := dueDateRouter(now)

	// 294 days back is the last accepted date
	accepted := now.AddDate(0, 0, -294).Format("2006-01-02")
	w := postJSON(t, router, "/api/tools/due-date", DueDateRequest{LastPeriodDate: accepted})
	if w.Code != http.StatusOK {
		t.Errorf("294 days: status = %d, want 200", w.Code)
	}

	rejected := now.AddDate(0, 0, -295).Format("2006-01-02")
	w = postJSON(t, router, "/api/tools/due-date", DueDateRequest{LastPeriodDate: rejected})
	if w.Code != http.StatusBadRequest {
		t.Errorf("295 days: status = %d, want 400", w.Code)
	}
}
