package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apiError "github.com/plateful/plateful/internal/api/error"
	"github.com/plateful/plateful/internal/api/token"
	"github.com/plateful/plateful/internal/env"
	"github.com/plateful/plateful/internal/jwt"
	"github.com/plateful/plateful/internal/role"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestEnv() *env.Env {
	return env.New(map[string]string{
		"ENV":                "DEV",
		"APP_SECRET":         testSecret,
		"APP_SECRET_VERSION": "1",
		"HOST_ORIGIN":        "http://localhost:8080",
	})
}

func signedCookie(t *testing.T, userRole role.Role, userID string) *http.Cookie {
	t.Helper()
	raw, err := jwt.GenerateJWT(jwt.JWTParams{Role: userRole.String(), UserID: userID}, []byte(testSecret), "1")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}
	return &http.Cookie{Name: "access", Value: raw}
}

func decodeErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body apiError.Error
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return string(body.Code)
}

func TestAuthorizeRequest(t *testing.T) {
	tests := []struct {
		name         string
		requiredRole role.Role
		cookie       *http.Cookie
		wantStatus   int
		wantCode     string
		wantUserID   int64
	}{
		{
			name:         "valid user token",
			requiredRole: role.RoleUser,
			cookie:       nil, // set per-test below
			wantStatus:   http.StatusOK,
			wantUserID:   7,
		},
		{
			name:         "missing cookie",
			requiredRole: role.RoleUser,
			wantStatus:   http.StatusUnauthorized,
			wantCode:     apiError.InvalidAccessToken.String(),
		},
		{
			name:         "user token on admin route",
			requiredRole: role.RoleAdmin,
			wantStatus:   http.StatusForbidden,
			wantCode:     apiError.InsufficientPermissions.String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			handler := AuthorizeRequest(tt.requiredRole)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = token.UserIDFromCtx(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			r := httptest.NewRequest("GET", "/api/users/me", nil)
			r = r.WithContext(env.WithCtx(r.Context(), newTestEnv()))
			switch tt.name {
			case "missing cookie":
			default:
				r.AddCookie(signedCookie(t, role.RoleUser, "7"))
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantCode != "" {
				if got := decodeErrorCode(t, w); got != tt.wantCode {
					t.Errorf("code = %q, want %q", got, tt.wantCode)
				}
			}
			if tt.wantUserID != 0 && gotUserID != tt.wantUserID {
				t.Errorf("user id = %d, want %d", gotUserID, tt.wantUserID)
			}
		})
	}
}

func TestAuthorizeRequestAdminToken(t *testing.T) {
	handler := AuthorizeRequest(role.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest("POST", "/api/tags", nil)
	r = r.WithContext(env.WithCtx(r.Context(), newTestEnv()))
	r.AddCookie(signedCookie(t, role.RoleAdmin, "1"))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestAuthorizeRequestRejectsForeignSignature(t *testing.T) {
	raw, err := jwt.GenerateJWT(jwt.JWTParams{Role: "USER", UserID: "7"}, []byte("some-other-secret-32-bytes-long!"), "1")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	handler := AuthorizeRequest(role.RoleUser)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run")
	}))

	r := httptest.NewRequest("GET", "/api/users/me", nil)
	r = r.WithContext(env.WithCtx(r.Context(), newTestEnv()))
	r.AddCookie(&http.Cookie{Name: "access", Value: raw})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestMaybeAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		cookie     *http.Cookie
		wantAuthed bool
	}{
		{
			name: "no cookie passes through anonymous",
		},
		{
			name:   "invalid cookie is ignored",
			cookie: &http.Cookie{Name: "access", Value: "garbage"},
		},
		{
			name:       "valid cookie attaches the viewer",
			wantAuthed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sawUser bool
			handler := MaybeAuthenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, sawUser = token.MaybeUserIDFromCtx(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			r := httptest.NewRequest("GET", "/api/recipes/", nil)
			r = r.WithContext(env.WithCtx(r.Context(), newTestEnv()))
			if tt.cookie != nil {
				r.AddCookie(tt.cookie)
			}
			if tt.wantAuthed {
				r.AddCookie(signedCookie(t, role.RoleUser, "7"))
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 regardless of auth", w.Code)
			}
			if sawUser != tt.wantAuthed {
				t.Errorf("sawUser = %v, want %v", sawUser, tt.wantAuthed)
			}
		})
	}
}

func TestAddCors(t *testing.T) {
	handler := InjectEnv(newTestEnv())(AddCors(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	t.Run("dev reflects request origin", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/ping", nil)
		r.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("Allow-Origin = %q", got)
		}
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodOptions, "/api/recipes/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		if w.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", w.Code)
		}
	})

	t.Run("prod pins the configured origin", func(t *testing.T) {
		prodEnv := env.New(map[string]string{
			"ENV":         "PROD",
			"HOST_ORIGIN": "https://plateful.example.com",
		})
		prodHandler := InjectEnv(prodEnv)(AddCors(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

		r := httptest.NewRequest("GET", "/api/ping", nil)
		r.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		prodHandler.ServeHTTP(w, r)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://plateful.example.com" {
			t.Errorf("Allow-Origin = %q", got)
		}
	})
}
