package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/mock/gomock"

	apiError "github.com/plateful/plateful/internal/api/error"
	"github.com/plateful/plateful/internal/api/token"
	"github.com/plateful/plateful/internal/database"
	"github.com/plateful/plateful/internal/env"
	"github.com/plateful/plateful/internal/filestore"
	"github.com/plateful/plateful/internal/recipe"
)

func newTestEnv(db database.Store) *env.Env {
	e := env.New(map[string]string{"ENV": "DEV"})
	e.Database = db
	e.FileStore = filestore.NewLocal("/tmp", "/media", "http://localhost:8080")
	return e
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

// withURLParam attaches a chi route parameter the way the router would.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apiError.Error {
	t.Helper()
	var body apiError.Error
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return body
}

func TestHandleSignup(t *testing.T) {
	validBody := `{
		"email": "new@example.com",
		"username": "newcook",
		"first_name": "New",
		"last_name": "Cook",
		"password": "SecureP@ssw0rd123!"
	}`

	tests := []struct {
		name       string
		body       string
		setup      func(*database.MockStore)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name: "successful signup",
			body: validBody,
			setup: func(db *database.MockStore) {
				db.EXPECT().
					CreateUser(gomock.Any(), gomock.AssignableToTypeOf(database.CreateUserParams{})).
					DoAndReturn(func(_ context.Context, arg database.CreateUserParams) (int64, error) {
						if arg.Role != database.RoleUser {
							t.Errorf("Role = %v, want RoleUser", arg.Role)
						}
						if arg.PasswordHash == "SecureP@ssw0rd123!" {
							t.Error("password stored unhashed")
						}
						return 5, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate email",
			body: validBody,
			setup: func(db *database.MockStore) {
				db.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(int64(0), uniqueViolation("users_email_key"))
			},
			wantStatus: http.StatusConflict,
			wantCode:   apiError.EmailConflict,
		},
		{
			name: "duplicate username",
			body: validBody,
			setup: func(db *database.MockStore) {
				db.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(int64(0), uniqueViolation("users_username_key"))
			},
			wantStatus: http.StatusConflict,
			wantCode:   apiError.UsernameConflict,
		},
		{
			name:       "weak password",
			body:       `{"email":"new@example.com","username":"newcook","first_name":"New","last_name":"Cook","password":"weak"}`,
			setup:      func(db *database.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apiError.WeakPassword,
		},
		{
			name:       "invalid username characters",
			body:       `{"email":"new@example.com","username":"new cook","first_name":"New","last_name":"Cook","password":"SecureP@ssw0rd123!"}`,
			setup:      func(db *database.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.BadRequest,
		},
		{
			name:       "unknown field rejected",
			body:       `{"email":"new@example.com","username":"newcook","first_name":"New","last_name":"Cook","password":"SecureP@ssw0rd123!","extra":1}`,
			setup:      func(db *database.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.BadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			db := database.NewMockStore(ctrl)
			tt.setup(db)

			r := httptest.NewRequest("POST", "/api/users", strings.NewReader(tt.body))
			r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(db)))
			w := httptest.NewRecorder()

			HandleSignup(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantCode != "" {
				if body := decodeError(t, w); body.Code != tt.wantCode {
					t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
				}
				return
			}

			var resp SignupResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if resp.ID != 5 || resp.Username != "newcook" {
				t.Errorf("response = %+v", resp)
			}
		})
	}
}

func TestHandleGetUser(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		viewer     *int64
		setup      func(*database.MockStore)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name:   "anonymous viewer reads is_subscribed false",
			id:     "3",
			viewer: nil,
			setup: func(db *database.MockStore) {
				db.EXPECT().
					GetUser(gomock.Any(), database.GetUserParams{ID: 3}).
					Return(database.GetUserRow{ID: 3, Username: "chef"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "authenticated viewer is passed through",
			id:     "3",
			viewer: ptr(int64(9)),
			setup: func(db *database.MockStore) {
				db.EXPECT().
					GetUser(gomock.Any(), database.GetUserParams{
						ID:     3,
						Viewer: pgtype.Int8{Int64: 9, Valid: true},
					}).
					Return(database.GetUserRow{ID: 3, Username: "chef", IsSubscribed: true}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "unknown user",
			id:     "404",
			viewer: nil,
			setup: func(db *database.MockStore) {
				db.EXPECT().
					GetUser(gomock.Any(), gomock.Any()).
					Return(database.GetUserRow{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.UserNotFound,
		},
		{
			name:       "malformed id",
			id:         "abc",
			viewer:     nil,
			setup:      func(db *database.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.BadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			db := database.NewMockStore(ctrl)
			tt.setup(db)

			r := httptest.NewRequest("GET", "/api/users/"+tt.id, nil)
			r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(db)))
			if tt.viewer != nil {
				r = r.WithContext(token.UserIDWithCtx(r.Context(), *tt.viewer))
			}
			r = withURLParam(r, "id", tt.id)
			w := httptest.NewRecorder()

			HandleGetUser(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantCode != "" {
				if body := decodeError(t, w); body.Code != tt.wantCode {
					t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
				}
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestHandleSubscribe(t *testing.T) {
	tests := []struct {
		name       string
		targetID   string
		setup      func(*database.MockStore)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name:     "successful subscribe",
			targetID: "3",
			setup: func(db *database.MockStore) {
				db.EXPECT().
					GetUser(gomock.Any(), database.GetUserParams{ID: 3}).
					Return(database.GetUserRow{ID: 3, Username: "chef"}, nil)
				db.EXPECT().
					CreateSubscription(gomock.Any(), database.SubscriptionParams{
						UserID:         9,
						FollowedUserID: 3,
					}).
					Return(nil)
				db.EXPECT().
					GetUser(gomock.Any(), database.GetUserParams{
						ID:     3,
						Viewer: pgtype.Int8{Int64: 9, Valid: true},
					}).
					Return(database.GetUserRow{ID: 3, Username: "chef", IsSubscribed: true}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "self subscription",
			targetID:   "9",
			setup:      func(db *database.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.SelfSubscription,
		},
		{
			name:     "unknown target",
			targetID: "404",
			setup: func(db *database.MockStore) {
				db.EXPECT().
					GetUser(gomock.Any(), database.GetUserParams{ID: 404}).
					Return(database.GetUserRow{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.UserNotFound,
		},
		{
			name:     "duplicate subscription",
			targetID: "3",
			setup: func(db *database.MockStore) {
				db.EXPECT().
					GetUser(gomock.Any(), database.GetUserParams{ID: 3}).
					Return(database.GetUserRow{ID: 3}, nil)
				db.EXPECT().
					CreateSubscription(gomock.Any(), gomock.Any()).
					Return(uniqueViolation("unique_subscription"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.AlreadySubscribed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			db := database.NewMockStore(ctrl)
			tt.setup(db)

			r := httptest.NewRequest("POST", "/api/users/"+tt.targetID+"/subscribe", nil)
			r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(db)))
			r = r.WithContext(token.UserIDWithCtx(r.Context(), 9))
			r = withURLParam(r, "id", tt.targetID)
			w := httptest.NewRecorder()

			HandleSubscribe(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantCode != "" {
				if body := decodeError(t, w); body.Code != tt.wantCode {
					t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
				}
				return
			}

			var doc recipe.UserDocument
			if err := json.NewDecoder(w.Body).Decode(&doc); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if !doc.IsSubscribed {
				t.Error("is_subscribed = false after subscribing")
			}
		})
	}
}

func TestHandleUnsubscribe(t *testing.T) {
	tests := []struct {
		name       string
		rows       int64
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{name: "successful unsubscribe", rows: 1, wantStatus: http.StatusNoContent},
		{name: "not subscribed", rows: 0, wantStatus: http.StatusBadRequest, wantCode: apiError.NotSubscribed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			db := database.NewMockStore(ctrl)
			db.EXPECT().
				DeleteSubscription(gomock.Any(), database.SubscriptionParams{
					UserID:         9,
					FollowedUserID: 3,
				}).
				Return(tt.rows, nil)

			r := httptest.NewRequest("DELETE", "/api/users/3/subscribe", nil)
			r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(db)))
			r = r.WithContext(token.UserIDWithCtx(r.Context(), 9))
			r = withURLParam(r, "id", "3")
			w := httptest.NewRecorder()

			HandleUnsubscribe(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantCode != "" {
				if body := decodeError(t, w); body.Code != tt.wantCode {
					t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
				}
			}
		})
	}
}

func TestHandleListSubscriptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := database.NewMockStore(ctrl)
	db.EXPECT().
		ListSubscriptions(gomock.Any(), database.ListSubscriptionsParams{
			UserID: 9,
			Limit:  6,
			Offset: 0,
		}).
		Return([]database.GetUserRow{
			{ID: 3, Username: "chef", IsSubscribed: true},
			{ID: 4, Username: "baker", IsSubscribed: true},
		}, nil)
	db.EXPECT().
		CountSubscriptions(gomock.Any(), int64(9)).
		Return(int64(2), nil)
	db.EXPECT().
		ListRecipeBriefsByAuthors(gomock.Any(), []int64{3, 4}).
		Return([]database.AuthorRecipeBriefRow{
			{Author: 3, ID: 10, Name: "Shakshuka", Image: "/media/recipes/a.jpg", CookingTime: 25},
		}, nil)

	r := httptest.NewRequest("GET", "/api/users/subscriptions", nil)
	r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(db)))
	r = r.WithContext(token.UserIDWithCtx(r.Context(), 9))
	w := httptest.NewRecorder()

	HandleListSubscriptions(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Count   int64                             `json:"count"`
		Results []recipe.UserWithRecipesDocument `json:"results"`
	}
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if envelope.Count != 2 {
		t.Errorf("count = %d, want 2", envelope.Count)
	}
	if len(envelope.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(envelope.Results))
	}
	if envelope.Results[0].RecipesCount != 1 {
		t.Errorf("first followed user recipes_count = %d, want 1", envelope.Results[0].RecipesCount)
	}
	if envelope.Results[1].Recipes == nil || len(envelope.Results[1].Recipes) != 0 {
		t.Errorf("author with no recipes must encode an empty list, got %v", envelope.Results[1].Recipes)
	}
}
