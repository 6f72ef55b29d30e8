package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Health(&r.RouterGroup)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "pong") {
		t.Errorf("body = %q, want pong", w.Body.String())
	}
}

func TestHealth_EchoesPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Health(&r.RouterGroup)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health?ping=hello", nil)
	r.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), "hello") {
		t.Errorf("body = %q, want hello echoed", w.Body.String())
	}
}
