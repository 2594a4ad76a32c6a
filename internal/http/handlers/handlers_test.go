package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	intconfig "github.com/bekeleandu024-ui/fleet-costing-web/internal/config"
	api "github.com/bekeleandu024-ui/fleet-costing-web/internal/http"
)

// Handlers reach the database through the shared handle, so each test swaps
// it for a sqlmock connection and restores it afterwards.

func newTestServer(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		intconfig.DB = nil
	})
	intconfig.DB = db

	env := intconfig.Env{AllowedOrigins: []string{"http://localhost:3000"}}
	return api.NewRouter(env), mock
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
