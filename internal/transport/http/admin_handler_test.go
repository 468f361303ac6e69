package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/redect/members-api/internal/domain"
	"github.com/redect/members-api/internal/util"
)

func TestAdminUsersRequiresAdminRole(t *testing.T) {
	hash, salt, err := util.DerivePassword("GoodPass1")
	if err != nil {
		t.Fatalf("DerivePassword: %v", err)
	}
	member := &domain.User{ID: uuid.New(), Email: "member@redect.com", PasswordHash: hash, PasswordSalt: salt, Role: domain.RoleMember}
	admin := &domain.User{ID: uuid.New(), Email: "admin@redect.com", PasswordHash: hash, PasswordSalt: salt, Role: domain.RoleAdmin}
	auth, _, _ := newTestAuthService(newStubUsers(member, admin))

	e := echo.New()
	RegisterAdmin(e, auth)

	memberLogin, err := auth.Login(context.Background(), member.Email, "GoodPass1")
	if err != nil {
		t.Fatalf("member login: %v", err)
	}
	adminLogin, err := auth.Login(context.Background(), admin.Email, "GoodPass1")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+memberLogin.Token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("member: expected 403, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+adminLogin.Token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var users []userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected both accounts in the listing, got %d", len(users))
	}
}
