package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"payslip-processor/internal/config"
)

func TestRouter_Health(t *testing.T) {
	t.Setenv("UPLOAD_PATH", t.TempDir())
	t.Setenv("OUTPUT_PATH", t.TempDir())

	container := config.NewContainer()
	defer container.Pool.Stop()
	router := NewRouter(container)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRouter_UnknownTask(t *testing.T) {
	t.Setenv("UPLOAD_PATH", t.TempDir())
	t.Setenv("OUTPUT_PATH", t.TempDir())

	container := config.NewContainer()
	defer container.Pool.Stop()
	router := NewRouter(container)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/does-not-exist", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
