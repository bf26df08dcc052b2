package recipes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

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
)

// 1x1 transparent PNG.
const pngDataURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

func newTestEnv(t *testing.T, db database.Store) *env.Env {
	t.Helper()
	e := env.New(map[string]string{"ENV": "DEV"})
	e.Database = db
	e.FileStore = filestore.NewLocal(t.TempDir(), "/media", "http://localhost:8080")
	return e
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func asViewer(r *http.Request, userID int64) *http.Request {
	return r.WithContext(token.UserIDWithCtx(r.Context(), userID))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apiError.Error {
	t.Helper()
	var body apiError.Error
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return body
}

// sampleRelations is a fully resolved tuple that passes document
// validation.
func sampleRelations(id int64) database.RecipeWithRelations {
	return database.RecipeWithRelations{
		Recipe: database.ListRecipesRow{
			ID:              id,
			Name:            "Shakshuka",
			Text:            "Simmer the tomatoes, then poach the eggs in the sauce.",
			PubDate:         pgtype.Timestamptz{Time: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC), Valid: true},
			CookingTime:     25,
			Image:           "/media/recipes/shakshuka.png",
			AuthorID:        3,
			AuthorEmail:     "chef@example.com",
			AuthorUsername:  "chef",
			AuthorFirstName: "Ada",
			AuthorLastName:  "Lovelace",
		},
		Tags: []database.Tag{
			{ID: 1, Name: "Breakfast", Slug: "breakfast", Color: "#ff6b35"},
		},
		Ingredients: []database.IngredientWithAmount{
			{ID: 4, Name: "Tomato", MeasurementUnit: "pcs", Amount: 6},
		},
	}
}

func TestHandleListRecipes(t *testing.T) {
	t.Run("anonymous list with defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		db := database.NewMockStore(ctrl)

		wantParams := database.ListRecipesParams{Limit: 6, Offset: 0}
		db.EXPECT().
			ListRecipesWithRelations(gomock.Any(), wantParams).
			Return([]database.RecipeWithRelations{sampleRelations(1)}, nil)
		db.EXPECT().
			CountRecipes(gomock.Any(), wantParams).
			Return(int64(1), nil)

		r := httptest.NewRequest("GET", "/api/recipes/", nil)
		r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(t, db)))
		w := httptest.NewRecorder()
		HandleListRecipes(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Count   int64 `json:"count"`
			Results []struct {
				ID          int64  `json:"id"`
				Name        string `json:"name"`
				Image       string `json:"image"`
				IsFavorited bool   `json:"is_favorited"`
				PubDate     string `json:"pub_date"`
			} `json:"results"`
		}
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp.Count != 1 || len(resp.Results) != 1 {
			t.Fatalf("count = %d, results = %d", resp.Count, len(resp.Results))
		}
		got := resp.Results[0]
		if got.Name != "Shakshuka" {
			t.Errorf("name = %q", got.Name)
		}
		if got.Image != "http://localhost:8080/media/recipes/shakshuka.png" {
			t.Errorf("image = %q", got.Image)
		}
		if got.PubDate != "2025-03-14T09:26:53Z" {
			t.Errorf("pub_date = %q", got.PubDate)
		}
	})

	t.Run("filters map to query params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		db := database.NewMockStore(ctrl)

		wantParams := database.ListRecipesParams{
			Viewer:        pgtype.Int8{Int64: 9, Valid: true},
			AuthorID:      pgtype.Int8{Int64: 3, Valid: true},
			TagSlugs:      []string{"breakfast", "vegan"},
			FavoritedOnly: true,
			InCartOnly:    true,
			Limit:         10,
			Offset:        10,
		}
		db.EXPECT().
			ListRecipesWithRelations(gomock.Any(), wantParams).
			Return([]database.RecipeWithRelations{}, nil)
		db.EXPECT().
			CountRecipes(gomock.Any(), wantParams).
			Return(int64(0), nil)

		url := "/api/recipes/?author=3&tags=breakfast&tags=vegan&is_favorited=1&is_in_shopping_cart=1&page=2&limit=10"
		r := httptest.NewRequest("GET", url, nil)
		r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(t, db)))
		r = asViewer(r, 9)
		w := httptest.NewRecorder()
		HandleListRecipes(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid author id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		db := database.NewMockStore(ctrl)

		r := httptest.NewRequest("GET", "/api/recipes/?author=abc", nil)
		r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(t, db)))
		w := httptest.NewRecorder()
		HandleListRecipes(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if body := decodeError(t, w); body.Code != apiError.BadRequest {
			t.Errorf("code = %q", body.Code)
		}
	})

	t.Run("count failure is internal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		db := database.NewMockStore(ctrl)

		db.EXPECT().
			ListRecipesWithRelations(gomock.Any(), gomock.Any()).
			Return([]database.RecipeWithRelations{}, nil)
		db.EXPECT().
			CountRecipes(gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("connection refused"))

		r := httptest.NewRequest("GET", "/api/recipes/", nil)
		r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(t, db)))
		w := httptest.NewRecorder()
		HandleListRecipes(w, r)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
	})
}

func TestHandleGetRecipe(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		viewer     int64
		setup      func(*database.MockStore)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name: "anonymous viewer gets the recipe",
			id:   "5",
			setup: func(db *database.MockStore) {
				db.EXPECT().
					GetRecipeWithRelations(gomock.Any(), database.GetRecipeParams{ID: 5}).
					Return(sampleRelations(5), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "authenticated viewer is forwarded",
			id:     "5",
			viewer: 9,
			setup: func(db *database.MockStore) {
				db.EXPECT().
					GetRecipeWithRelations(gomock.Any(), database.GetRecipeParams{
						ID:     5,
						Viewer: pgtype.Int8{Int64: 9, Valid: true},
					}).
					Return(sampleRelations(5), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "recipe not found",
			id:   "404",
			setup: func(db *database.MockStore) {
				db.EXPECT().
					GetRecipeWithRelations(gomock.Any(), gomock.Any()).
					Return(database.RecipeWithRelations{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.RecipeNotFound,
		},
		{
			name:       "invalid id",
			id:         "abc",
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

			r := httptest.NewRequest("GET", "/api/recipes/"+tt.id, nil)
			r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(t, db)))
			if tt.viewer != 0 {
				r = asViewer(r, tt.viewer)
			}
			r = withURLParam(r, "id", tt.id)
			w := httptest.NewRecorder()
			HandleGetRecipe(w, r)

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

func TestHandleCreateRecipe(t *testing.T) {
	validBody := fmt.Sprintf(`{
		"name": "Shakshuka",
		"text": "Simmer the tomatoes, then poach the eggs in the sauce.",
		"cooking_time": 25,
		"image": %q,
		"ingredients": [{"id": 4, "amount": 6}],
		"tags": [1]
	}`, pngDataURI)

	tests := []struct {
		name       string
		body       string
		setup      func(*testing.T, *database.MockStore)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name: "creates the recipe and reads it back",
			body: validBody,
			setup: func(t *testing.T, db *database.MockStore) {
				db.EXPECT().
					CreateRecipeWithRelations(gomock.Any(), gomock.AssignableToTypeOf(database.CreateRecipeWithRelationsParams{})).
					DoAndReturn(func(_ context.Context, arg database.CreateRecipeWithRelationsParams) (int64, error) {
						if arg.Author != 9 {
							t.Errorf("Author = %d, want 9", arg.Author)
						}
						if arg.Name != "Shakshuka" {
							t.Errorf("Name = %q", arg.Name)
						}
						if len(arg.Ingredients) != 1 || arg.Ingredients[0] != (database.IngredientAmount{ID: 4, Amount: 6}) {
							t.Errorf("Ingredients = %+v", arg.Ingredients)
						}
						if len(arg.TagIDs) != 1 || arg.TagIDs[0] != 1 {
							t.Errorf("TagIDs = %v", arg.TagIDs)
						}
						if !strings.HasSuffix(arg.Image, ".png") {
							t.Errorf("Image = %q, want a stored .png key", arg.Image)
						}
						return 10, nil
					})
				db.EXPECT().
					GetRecipeWithRelations(gomock.Any(), database.GetRecipeParams{
						ID:     10,
						Viewer: pgtype.Int8{Int64: 9, Valid: true},
					}).
					Return(sampleRelations(10), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "unknown ingredient",
			body: validBody,
			setup: func(t *testing.T, db *database.MockStore) {
				db.EXPECT().
					CreateRecipeWithRelations(gomock.Any(), gomock.Any()).
					Return(int64(0), fmt.Errorf("reconciling ingredients: %w",
						&database.NotFoundError{Entity: "ingredient", ID: 99}))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.IngredientNotFound,
		},
		{
			name: "unknown tag",
			body: validBody,
			setup: func(t *testing.T, db *database.MockStore) {
				db.EXPECT().
					CreateRecipeWithRelations(gomock.Any(), gomock.Any()).
					Return(int64(0), fmt.Errorf("reconciling tags: %w",
						&database.NotFoundError{Entity: "tag", ID: 42}))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.TagNotFound,
		},
		{
			name: "invalid image payload",
			body: `{
				"name": "Shakshuka",
				"text": "Simmer.",
				"cooking_time": 25,
				"image": "not-an-image",
				"ingredients": [{"id": 4, "amount": 6}],
				"tags": [1]
			}`,
			setup:      func(t *testing.T, db *database.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.BadRequest,
		},
		{
			name: "empty ingredient set",
			body: fmt.Sprintf(`{
				"name": "Shakshuka",
				"text": "Simmer.",
				"cooking_time": 25,
				"image": %q,
				"ingredients": [],
				"tags": [1]
			}`, pngDataURI),
			setup:      func(t *testing.T, db *database.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.BadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"name": "x", "bogus": true}`,
			setup:      func(t *testing.T, db *database.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.BadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			db := database.NewMockStore(ctrl)
			tt.setup(t, db)

			r := httptest.NewRequest("POST", "/api/recipes/", strings.NewReader(tt.body))
			r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(t, db)))
			r = asViewer(r, 9)
			w := httptest.NewRecorder()
			HandleCreateRecipe(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantCode != "" {
				if body := decodeError(t, w); body.Code != tt.wantCode {
					t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
				}
				return
			}

			var doc struct {
				ID int64 `json:"id"`
			}
			if err := json.NewDecoder(w.Body).Decode(&doc); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if doc.ID != 10 {
				t.Errorf("id = %d, want 10", doc.ID)
			}
		})
	}
}

func TestHandleUpdateRecipe(t *testing.T) {
	validBody := `{
		"name": "Shakshuka",
		"text": "Simmer the tomatoes, then poach the eggs in the sauce.",
		"cooking_time": 25,
		"ingredients": [{"id": 4, "amount": 6}],
		"tags": [1]
	}`

	tests := []struct {
		name       string
		setup      func(*testing.T, *database.MockStore)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name: "empty image keeps the stored key",
			setup: func(t *testing.T, db *database.MockStore) {
				db.EXPECT().
					GetRecipeOwner(gomock.Any(), int64(5)).
					Return(int64(9), nil)
				db.EXPECT().
					GetRecipeBrief(gomock.Any(), int64(5)).
					Return(database.RecipeBriefRow{ID: 5, Image: "/media/recipes/old.png"}, nil)
				db.EXPECT().
					UpdateRecipeWithRelations(gomock.Any(), gomock.AssignableToTypeOf(database.UpdateRecipeWithRelationsParams{})).
					DoAndReturn(func(_ context.Context, arg database.UpdateRecipeWithRelationsParams) error {
						if arg.ID != 5 {
							t.Errorf("ID = %d, want 5", arg.ID)
						}
						if arg.Image != "/media/recipes/old.png" {
							t.Errorf("Image = %q, want the stored key", arg.Image)
						}
						return nil
					})
				db.EXPECT().
					GetRecipeWithRelations(gomock.Any(), database.GetRecipeParams{
						ID:     5,
						Viewer: pgtype.Int8{Int64: 9, Valid: true},
					}).
					Return(sampleRelations(5), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not the owner",
			setup: func(t *testing.T, db *database.MockStore) {
				db.EXPECT().
					GetRecipeOwner(gomock.Any(), int64(5)).
					Return(int64(3), nil)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   apiError.RecipeNotOwned,
		},
		{
			name: "recipe missing",
			setup: func(t *testing.T, db *database.MockStore) {
				db.EXPECT().
					GetRecipeOwner(gomock.Any(), int64(5)).
					Return(int64(0), pgx.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.RecipeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			db := database.NewMockStore(ctrl)
			tt.setup(t, db)

			r := httptest.NewRequest("PATCH", "/api/recipes/5", strings.NewReader(validBody))
			r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(t, db)))
			r = asViewer(r, 9)
			r = withURLParam(r, "id", "5")
			w := httptest.NewRecorder()
			HandleUpdateRecipe(w, r)

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

func TestHandleDeleteRecipe(t *testing.T) {
	t.Run("owner deletes the recipe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		db := database.NewMockStore(ctrl)

		db.EXPECT().GetRecipeOwner(gomock.Any(), int64(5)).Return(int64(9), nil)
		db.EXPECT().DeleteRecipe(gomock.Any(), int64(5)).Return(int64(1), nil)

		r := httptest.NewRequest("DELETE", "/api/recipes/5", nil)
		r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(t, db)))
		r = asViewer(r, 9)
		r = withURLParam(r, "id", "5")
		w := httptest.NewRecorder()
		HandleDeleteRecipe(w, r)

		if w.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204: %s", w.Code, w.Body.String())
		}
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		db := database.NewMockStore(ctrl)

		db.EXPECT().GetRecipeOwner(gomock.Any(), int64(5)).Return(int64(3), nil)

		r := httptest.NewRequest("DELETE", "/api/recipes/5", nil)
		r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(t, db)))
		r = asViewer(r, 9)
		r = withURLParam(r, "id", "5")
		w := httptest.NewRecorder()
		HandleDeleteRecipe(w, r)

		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", w.Code)
		}
		if body := decodeError(t, w); body.Code != apiError.RecipeNotOwned {
			t.Errorf("code = %q", body.Code)
		}
	})
}

func TestHandleFavorite(t *testing.T) {
	brief := database.RecipeBriefRow{ID: 5, Name: "Shakshuka", Image: "/media/recipes/shakshuka.png", CookingTime: 25}

	tests := []struct {
		name       string
		setup      func(*database.MockStore)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name: "favorites the recipe",
			setup: func(db *database.MockStore) {
				db.EXPECT().GetRecipeBrief(gomock.Any(), int64(5)).Return(brief, nil)
				db.EXPECT().
					CreateFavorite(gomock.Any(), database.FavoriteParams{UserID: 9, RecipeID: 5}).
					Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "already favorited",
			setup: func(db *database.MockStore) {
				db.EXPECT().GetRecipeBrief(gomock.Any(), int64(5)).Return(brief, nil)
				db.EXPECT().
					CreateFavorite(gomock.Any(), gomock.Any()).
					Return(uniqueViolation("favorite_pkey"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.AlreadyFavorited,
		},
		{
			name: "recipe missing",
			setup: func(db *database.MockStore) {
				db.EXPECT().
					GetRecipeBrief(gomock.Any(), int64(5)).
					Return(database.RecipeBriefRow{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.RecipeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			db := database.NewMockStore(ctrl)
			tt.setup(db)

			r := httptest.NewRequest("POST", "/api/recipes/5/favorite", nil)
			r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(t, db)))
			r = asViewer(r, 9)
			r = withURLParam(r, "id", "5")
			w := httptest.NewRecorder()
			HandleFavorite(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantCode != "" {
				if body := decodeError(t, w); body.Code != tt.wantCode {
					t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
				}
				return
			}

			var doc struct {
				ID    int64  `json:"id"`
				Image string `json:"image"`
			}
			if err := json.NewDecoder(w.Body).Decode(&doc); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if doc.ID != 5 {
				t.Errorf("id = %d, want 5", doc.ID)
			}
			if doc.Image != "http://localhost:8080/media/recipes/shakshuka.png" {
				t.Errorf("image = %q", doc.Image)
			}
		})
	}
}

func TestHandleUnfavorite(t *testing.T) {
	t.Run("removes the favorite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		db := database.NewMockStore(ctrl)

		db.EXPECT().
			DeleteFavorite(gomock.Any(), database.FavoriteParams{UserID: 9, RecipeID: 5}).
			Return(int64(1), nil)

		r := httptest.NewRequest("DELETE", "/api/recipes/5/favorite", nil)
		r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(t, db)))
		r = asViewer(r, 9)
		r = withURLParam(r, "id", "5")
		w := httptest.NewRecorder()
		HandleUnfavorite(w, r)

		if w.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", w.Code)
		}
	})

	t.Run("not favorited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		db := database.NewMockStore(ctrl)

		db.EXPECT().
			DeleteFavorite(gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		r := httptest.NewRequest("DELETE", "/api/recipes/5/favorite", nil)
		r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(t, db)))
		r = asViewer(r, 9)
		r = withURLParam(r, "id", "5")
		w := httptest.NewRecorder()
		HandleUnfavorite(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if body := decodeError(t, w); body.Code != apiError.NotFavorited {
			t.Errorf("code = %q", body.Code)
		}
	})
}

func TestHandleAddToCart(t *testing.T) {
	brief := database.RecipeBriefRow{ID: 5, Name: "Shakshuka", Image: "/media/recipes/shakshuka.png", CookingTime: 25}

	t.Run("adds the recipe to the cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		db := database.NewMockStore(ctrl)

		db.EXPECT().GetRecipeBrief(gomock.Any(), int64(5)).Return(brief, nil)
		db.EXPECT().
			CreateCartItem(gomock.Any(), database.CartItemParams{UserID: 9, RecipeID: 5}).
			Return(nil)

		r := httptest.NewRequest("POST", "/api/recipes/5/shopping_cart", nil)
		r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(t, db)))
		r = asViewer(r, 9)
		r = withURLParam(r, "id", "5")
		w := httptest.NewRecorder()
		HandleAddToCart(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
		}
	})

	t.Run("already in the cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		db := database.NewMockStore(ctrl)

		db.EXPECT().GetRecipeBrief(gomock.Any(), int64(5)).Return(brief, nil)
		db.EXPECT().
			CreateCartItem(gomock.Any(), gomock.Any()).
			Return(uniqueViolation("shopping_cart_pkey"))

		r := httptest.NewRequest("POST", "/api/recipes/5/shopping_cart", nil)
		r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(t, db)))
		r = asViewer(r, 9)
		r = withURLParam(r, "id", "5")
		w := httptest.NewRecorder()
		HandleAddToCart(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if body := decodeError(t, w); body.Code != apiError.AlreadyInShoppingCart {
			t.Errorf("code = %q", body.Code)
		}
	})
}

func TestHandleRemoveFromCart(t *testing.T) {
	t.Run("removes the cart item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		db := database.NewMockStore(ctrl)

		db.EXPECT().
			DeleteCartItem(gomock.Any(), database.CartItemParams{UserID: 9, RecipeID: 5}).
			Return(int64(1), nil)

		r := httptest.NewRequest("DELETE", "/api/recipes/5/shopping_cart", nil)
		r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(t, db)))
		r = asViewer(r, 9)
		r = withURLParam(r, "id", "5")
		w := httptest.NewRecorder()
		HandleRemoveFromCart(w, r)

		if w.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", w.Code)
		}
	})

	t.Run("not in the cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		db := database.NewMockStore(ctrl)

		db.EXPECT().
			DeleteCartItem(gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		r := httptest.NewRequest("DELETE", "/api/recipes/5/shopping_cart", nil)
		r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(t, db)))
		r = asViewer(r, 9)
		r = withURLParam(r, "id", "5")
		w := httptest.NewRecorder()
		HandleRemoveFromCart(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if body := decodeError(t, w); body.Code != apiError.NotInShoppingCart {
			t.Errorf("code = %q", body.Code)
		}
	})
}

func TestHandleDownloadShoppingCart(t *testing.T) {
	t.Run("aggregates the cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		db := database.NewMockStore(ctrl)

		db.EXPECT().
			GetShoppingCartTotals(gomock.Any(), int64(9)).
			Return([]database.ShoppingCartTotalRow{
				{Name: "Egg", MeasurementUnit: "pcs", Total: 8},
				{Name: "Tomato", MeasurementUnit: "pcs", Total: 12},
			}, nil)

		r := httptest.NewRequest("GET", "/api/recipes/download_shopping_cart", nil)
		r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(t, db)))
		r = asViewer(r, 9)
		w := httptest.NewRecorder()
		HandleDownloadShoppingCart(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}

		var items []ShoppingCartItem
		if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		want := []ShoppingCartItem{
			{Name: "Egg", MeasurementUnit: "pcs", Total: 8},
			{Name: "Tomato", MeasurementUnit: "pcs", Total: 12},
		}
		if len(items) != len(want) {
			t.Fatalf("items = %d, want %d", len(items), len(want))
		}
		for i := range want {
			if items[i] != want[i] {
				t.Errorf("items[%d] = %+v, want %+v", i, items[i], want[i])
			}
		}
	})

	t.Run("database error is internal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		db := database.NewMockStore(ctrl)

		db.EXPECT().
			GetShoppingCartTotals(gomock.Any(), int64(9)).
			Return(nil, errors.New("connection refused"))

		r := httptest.NewRequest("GET", "/api/recipes/download_shopping_cart", nil)
		r = r.WithContext(env.WithCtx(r.Context(), newTestEnv(t, db)))
		r = asViewer(r, 9)
		w := httptest.NewRecorder()
		HandleDownloadShoppingCart(w, r)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
	})
}
