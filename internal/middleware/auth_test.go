package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tinyrecords/tinyrecords-go/internal/model"
	"github.com/tinyrecords/tinyrecords-go/internal/repository"
	"github.com/tinyrecords/tinyrecords-go/internal/service"
)

func newGate(t *testing.T) (func(http.Handler) http.Handler, string) {
	t.Helper()

	users := repository.NewUserRepository([]model.User{
		{Email: "demo@sma.local", Password: "demo123"},
	})
	sessions := repository.NewSessionRepository()
	auth := service.NewAuthService(users, sessions)

	token, err := auth.Login(context.Background(), "demo@sma.local", "demo123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	return SessionAuth(auth, "sid"), token
}

func protectedProbe(called *bool, gotEmail *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if email, ok := UserEmailFromContext(r.Context()); ok {
			*gotEmail = email
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionAuth_MissingCookie(t *testing.T) {
	gate, _ := newGate(t)

	var called bool
	var email string
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/records", nil)

	gate(protectedProbe(&called, &email)).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
	if called {
		t.Error("wrapped handler must not run without a session")
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "unauthorized" {
		t.Errorf("expected error code unauthorized, got %q", body["error"])
	}
}

func TestSessionAuth_UnknownToken(t *testing.T) {
	gate, _ := newGate(t)

	var called bool
	var email string
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/records", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "bogus"})

	gate(protectedProbe(&called, &email)).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
	if called {
		t.Error("wrapped handler must not run with an unknown token")
	}
}

func TestSessionAuth_ValidTokenInjectsEmail(t *testing.T) {
	gate, token := newGate(t)

	var called bool
	var email string
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/records", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: token})

	gate(protectedProbe(&called, &email)).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
	if !called {
		t.Fatal("wrapped handler should have run")
	}
	if email != "demo@sma.local" {
		t.Errorf("expected injected email demo@sma.local, got %q", email)
	}
}

func TestUserEmailFromContext_Missing(t *testing.T) {
	if _, ok := UserEmailFromContext(context.Background()); ok {
		t.Error("expected no email in a bare context")
	}
}
