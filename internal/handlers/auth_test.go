package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"barkery/models"
)

func TestActiveSession(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if ActiveSession(req) {
		t.Fatal("expected inactive session when manager is nil")
	}

	sm := withTestSessionManager(t)

	ctx, err := sm.Load(req.Context(), "")
	if err != nil {
		t.Fatalf("failed to load session context: %v", err)
	}
	req = req.WithContext(ctx)
	sm.Put(req.Context(), sessionAuthenticatedKey, true)
	sm.Put(req.Context(), sessionUserIDKey, 42)

	if !ActiveSession(req) {
		t.Fatal("expected active session when flags are set")
	}
}

func TestCurrentUserID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := currentUserID(req); ok {
		t.Fatal("expected currentUserID to fail without session manager")
	}

	sm := withTestSessionManager(t)

	ctx, err := sm.Load(req.Context(), "")
	if err != nil {
		t.Fatalf("failed to load session context: %v", err)
	}
	req = req.WithContext(ctx)

	if _, ok := currentUserID(req); ok {
		t.Fatal("expected false when user id not set")
	}

	sm.Put(req.Context(), sessionUserIDKey, 7)
	id, ok := currentUserID(req)
	if !ok || id != 7 {
		t.Fatalf("expected user id 7, got %d (ok=%t)", id, ok)
	}
}

func TestRequireAdminRejectsAnonymousAndNonAdmin(t *testing.T) {
	sm := withTestSessionManager(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	protected := RequireAdmin(next)

	req := httptest.NewRequest(http.MethodGet, "/app/api/admin/batch-planning", nil)
	ctx, err := sm.Load(req.Context(), "")
	if err != nil {
		t.Fatalf("failed to load session context: %v", err)
	}
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", rec.Code)
	}

	sm.Put(req.Context(), sessionAuthenticatedKey, true)
	sm.Put(req.Context(), sessionUserIDKey, 9)

	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", rec.Code)
	}

	sm.Put(req.Context(), sessionUserAdminKey, true)

	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected wrapped handler to run for admin, got %d", rec.Code)
	}
}

func TestLoginEstablishesAdminSession(t *testing.T) {
	withTestDatabase(t)
	sm := withTestSessionManager(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("kitchen"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := models.User{Email: "morgan@barkery.app", PasswordHash: string(hash), FullName: "Morgan Reyes", IsAdmin: true}
	if err := database.WithContext(context.Background()).Create(&admin).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}

	handler := sm.LoadAndSave(http.HandlerFunc(Login))

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"morgan@barkery.app","password":"kitchen"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"is_admin":true`) {
		t.Fatalf("expected admin flag in response, got %s", rec.Body.String())
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Fatal("expected a session cookie to be issued")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	withTestDatabase(t)
	sm := withTestSessionManager(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("kitchen"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := models.User{Email: "morgan@barkery.app", PasswordHash: string(hash), FullName: "Morgan Reyes", IsAdmin: true}
	if err := database.WithContext(context.Background()).Create(&admin).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}

	handler := sm.LoadAndSave(http.HandlerFunc(Login))

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"morgan@barkery.app","password":"wrong"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"ghost@barkery.app","password":"kitchen"}`))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown account, got %d", rec.Code)
	}
}
