package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"support-dashboard-service/internal/auth/core/ports"
	"support-dashboard-service/internal/auth/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type fakeLogin struct {
	ExecuteFunc func(ctx context.Context, in usecase.LoginInput) (string, error)
	LastInput   usecase.LoginInput
}

func (f *fakeLogin) Execute(ctx context.Context, in usecase.LoginInput) (string, error) {
	f.LastInput = in
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx, in)
	}
	return "signed", nil
}

type fakeValidator struct {
	subject string
	err     error
	last    string
}

func (f *fakeValidator) Validate(token string) (string, error) {
	f.last = token
	return f.subject, f.err
}

func setupTestApp(login LoginUseCase, tokens ports.TokenValidator) *fiber.App {
	app := fiber.New()
	h := NewAuthHandler(login)

	app.Post("/auth/login", h.Login)
	app.Get("/auth/verify", RequireAuth(tokens), h.Verify)
	app.Get("/api/whoami", RequireAuth(tokens), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(SubjectKey).(string))
	})

	return app
}

func send(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	t.Helper()

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()
	return resp, body
}

func loginRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// ------------------------------------------------------------
// LOGIN
// ------------------------------------------------------------

func TestLogin_Success(t *testing.T) {
	login := &fakeLogin{}
	app := setupTestApp(login, &fakeValidator{})

	resp, body := send(t, app, loginRequest(`{"username":"admin","password":"pw"}`))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d (body: %s)", resp.StatusCode, string(body))
	}

	var out LoginResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.Token != "signed" {
		t.Errorf("expected token, got %q", out.Token)
	}
	if login.LastInput.Username != "admin" || login.LastInput.Password != "pw" {
		t.Errorf("unexpected input: %+v", login.LastInput)
	}
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
		code   string
	}{
		{"bad_json", `{"username":`, nil, http.StatusBadRequest, "invalid_json"},
		{"bad_credentials", `{"username":"admin","password":"x"}`, usecase.ErrInvalidCredentials, http.StatusBadRequest, "invalid_credentials"},
		{"internal", `{"username":"admin","password":"x"}`, errors.New("signing failed"), http.StatusInternalServerError, "internal_server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			login := &fakeLogin{
				ExecuteFunc: func(ctx context.Context, in usecase.LoginInput) (string, error) {
					return "", tt.err
				},
			}
			app := setupTestApp(login, &fakeValidator{})

			resp, body := send(t, app, loginRequest(tt.body))
			if resp.StatusCode != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.StatusCode)
			}

			var out ErrorResponse
			if err := json.Unmarshal(body, &out); err != nil {
				t.Fatalf("invalid json response: %v", err)
			}
			if out.Error != tt.code {
				t.Errorf("expected error %q, got %q", tt.code, out.Error)
			}
		})
	}
}

// ------------------------------------------------------------
// MIDDLEWARE
// ------------------------------------------------------------

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		validator *fakeValidator
		status    int
	}{
		{"missing", "", &fakeValidator{}, http.StatusUnauthorized},
		{"not_bearer", "Basic YWRtaW46cHc=", &fakeValidator{}, http.StatusUnauthorized},
		{"empty_bearer", "Bearer ", &fakeValidator{}, http.StatusUnauthorized},
		{"invalid", "Bearer abc", &fakeValidator{err: ports.ErrInvalidToken}, http.StatusForbidden},
		{"expired", "Bearer abc", &fakeValidator{err: ports.ErrExpiredToken}, http.StatusForbidden},
		{"valid", "Bearer abc", &fakeValidator{subject: "admin"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupTestApp(&fakeLogin{}, tt.validator)

			req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, _ := send(t, app, req)
			if resp.StatusCode != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.StatusCode)
			}
		})
	}
}

func TestRequireAuth_StoresSubject(t *testing.T) {
	validator := &fakeValidator{subject: "admin"}
	app := setupTestApp(&fakeLogin{}, validator)

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer tok")

	resp, body := send(t, app, req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if string(body) != "admin" {
		t.Errorf("expected subject in locals, got %q", string(body))
	}
	if validator.last != "tok" {
		t.Errorf("expected token tok, got %q", validator.last)
	}
}
