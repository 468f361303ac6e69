package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/redect/members-api/internal/domain"
	"github.com/redect/members-api/internal/util"
)

func newAuthTestServer(t *testing.T, users *stubUsers) (*echo.Echo, *stubMailer) {
	t.Helper()
	auth, _, mailer := newTestAuthService(users)
	e := echo.New()
	RegisterAuth(e, auth)
	return e, mailer
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPasswordResetRequestIdenticalAck(t *testing.T) {
	hash, salt, err := util.DerivePassword("GoodPass1")
	if err != nil {
		t.Fatalf("DerivePassword: %v", err)
	}
	known := &domain.User{ID: uuid.New(), Email: "member@redect.com", PasswordHash: hash, PasswordSalt: salt, Role: domain.RoleMember}
	e, mailer := newAuthTestServer(t, newStubUsers(known))

	knownRec := postJSON(e, "/api/v1/auth/password-reset/request", `{"email":"member@redect.com"}`)
	unknownRec := postJSON(e, "/api/v1/auth/password-reset/request", `{"email":"ghost@redect.com"}`)

	if knownRec.Code != http.StatusOK || unknownRec.Code != http.StatusOK {
		t.Fatalf("expected 200 for both, got %d and %d", knownRec.Code, unknownRec.Code)
	}
	if knownRec.Body.String() != unknownRec.Body.String() {
		t.Fatalf("responses must be indistinguishable: %q vs %q", knownRec.Body.String(), unknownRec.Body.String())
	}
	if len(mailer.sentTo) != 1 || mailer.sentTo[0] != known.Email {
		t.Fatalf("expected one mail to the known address, got %v", mailer.sentTo)
	}
}

func TestPasswordResetConfirmFlow(t *testing.T) {
	hash, salt, err := util.DerivePassword("OldPass1!")
	if err != nil {
		t.Fatalf("DerivePassword: %v", err)
	}
	user := &domain.User{ID: uuid.New(), Email: "member@redect.com", PasswordHash: hash, PasswordSalt: salt, Role: domain.RoleMember}
	users := newStubUsers(user)
	e, mailer := newAuthTestServer(t, users)

	rec := postJSON(e, "/api/v1/auth/password-reset/request", `{"email":"member@redect.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("request: expected 200, got %d", rec.Code)
	}
	token := mailer.tokens[0]

	body, _ := json.Marshal(map[string]string{"token": token, "password": "NewPass1!"})
	rec = postJSON(e, "/api/v1/auth/password-reset/confirm", string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("confirm: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// the same token must not redeem twice
	rec = postJSON(e, "/api/v1/auth/password-reset/confirm", string(body))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("second confirm: expected 400, got %d", rec.Code)
	}
}

func TestPasswordResetConfirmInvalidToken(t *testing.T) {
	e, _ := newAuthTestServer(t, newStubUsers())

	rec := postJSON(e, "/api/v1/auth/password-reset/confirm", `{"token":"not-a-real-token","password":"x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if payload["error"] != "invalid or expired reset token" {
		t.Fatalf("expected the generic token error, got %q", payload["error"])
	}
}

func TestLoginEndpoint(t *testing.T) {
	hash, salt, err := util.DerivePassword("GoodPass1")
	if err != nil {
		t.Fatalf("DerivePassword: %v", err)
	}
	user := &domain.User{ID: uuid.New(), Email: "member@redect.com", FirstName: "Ana", PasswordHash: hash, PasswordSalt: salt, Role: domain.RoleMember}
	e, _ := newAuthTestServer(t, newStubUsers(user))

	rec := postJSON(e, "/api/v1/auth/login", `{"email":"member@redect.com","password":"GoodPass1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a session token in the response")
	}
	if resp.User.Email != user.Email {
		t.Fatalf("expected user payload, got %+v", resp.User)
	}

	rec = postJSON(e, "/api/v1/auth/login", `{"email":"member@redect.com","password":"WrongPass1"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", rec.Code)
	}
}

func TestRegisterEndpointValidation(t *testing.T) {
	e, _ := newAuthTestServer(t, newStubUsers())

	rec := postJSON(e, "/api/v1/auth/register", `{"first_name":"Ana","email":"ana@redect.com","password":"NewPass1!"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = postJSON(e, "/api/v1/auth/register", `{"first_name":"Ana","email":"ana2@redect.com","password":"weak"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for weak password, got %d", rec.Code)
	}

	rec = postJSON(e, "/api/v1/auth/register", `{"first_name":"Ana","email":"ana3@redect.com","password":"NewPass1!","birth_date":"31-12-1990"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed birth date, got %d", rec.Code)
	}
}
