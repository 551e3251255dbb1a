package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smart-restaurant/helpers"
	"smart-restaurant/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	testJWTSecret   = "test-secret"
	testAdminSecret = "let-me-in"
)

func setAuthEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", testJWTSecret)
	t.Setenv("ADMIN_SECRET", testAdminSecret)
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := helpers.GenerateToken(primitive.NewObjectID().Hex(), "Boss", models.RoleAdmin)
	if err != nil {
		t.Fatalf("admin token: %v", err)
	}
	return token
}

func customerToken(t *testing.T) (uid string, token string) {
	t.Helper()
	uid = primitive.NewObjectID().Hex()
	token, err := helpers.GenerateToken(uid, "Ann", models.RoleCustomer)
	if err != nil {
		t.Fatalf("customer token: %v", err)
	}
	return uid, token
}

func doJSON(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("invalid json %q: %v", w.Body.String(), err)
	}
}
