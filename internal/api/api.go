// Package api sets up and starts the API
// server with routing, middleware, and Swagger documentation.
package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/plateful/plateful/docs"
	"github.com/plateful/plateful/internal/api/middleware"
	"github.com/plateful/plateful/internal/api/routes/auth"
	"github.com/plateful/plateful/internal/api/routes/ingredients"
	"github.com/plateful/plateful/internal/api/routes/ping"
	"github.com/plateful/plateful/internal/api/routes/recipes"
	"github.com/plateful/plateful/internal/api/routes/tags"
	"github.com/plateful/plateful/internal/api/routes/users"
	"github.com/plateful/plateful/internal/env"
	"github.com/plateful/plateful/internal/role"
)

const (
	defaultServerPort = 8080
)

func addDocs(r *chi.Mux) {
	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(docs.OpenAPI)
	})

	swagger := httpSwagger.Handler(
		httpSwagger.URL("/api/openapi.yaml"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)

	r.Mount("/api/swagger", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		// Handle preflight
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		// Allow GET to serve Swagger
		if req.Method == http.MethodGet {
			swagger.ServeHTTP(w, req)
			return
		}

		// Block anything else
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}))
}

// addMedia serves the local media volume. When images live in a bucket
// instead, the bucket's own host serves them and this mount is skipped.
func addMedia(r *chi.Mux, e *env.Env) {
	volume := e.Get("MEDIA_VOLUME")
	if volume == "" || e.Get("S3_ENDPOINT") != "" {
		return
	}
	prefix := e.Get("MEDIA_URL_PREFIX")
	if prefix == "" {
		prefix = "/media"
	}
	fs := http.StripPrefix(prefix+"/", http.FileServer(http.Dir(volume)))
	r.Get(prefix+"/*", func(w http.ResponseWriter, req *http.Request) {
		fs.ServeHTTP(w, req)
	})
}

func addRoutes(router *chi.Mux) {
	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", ping.HandlePing)

		r.Route("/auth/token", func(r chi.Router) {
			r.Post("/login", auth.HandleLogin)
			r.With(middleware.AuthorizeRequest(role.RoleUser)).Post("/logout", auth.HandleLogout)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", users.HandleSignup)
			r.With(middleware.MaybeAuthenticate).Get("/", users.HandleListUsers)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthorizeRequest(role.RoleUser))
				r.Get("/me", users.HandleGetMe)
				r.Get("/subscriptions", users.HandleListSubscriptions)
				r.Post("/{id}/subscribe", users.HandleSubscribe)
				r.Delete("/{id}/subscribe", users.HandleUnsubscribe)
			})

			r.With(middleware.MaybeAuthenticate).Get("/{id}", users.HandleGetUser)
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", tags.HandleListTags)
			r.Get("/{id}", tags.HandleGetTag)
			r.With(middleware.AuthorizeRequest(role.RoleAdmin)).Post("/", tags.HandleCreateTag)
		})

		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", ingredients.HandleListIngredients)
			r.Get("/{id}", ingredients.HandleGetIngredient)
			r.With(middleware.AuthorizeRequest(role.RoleAdmin)).Post("/", ingredients.HandleCreateIngredient)
		})

		r.Route("/recipes", func(r chi.Router) {
			r.With(middleware.MaybeAuthenticate).Get("/", recipes.HandleListRecipes)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthorizeRequest(role.RoleUser))
				r.Post("/", recipes.HandleCreateRecipe)
				r.Get("/download_shopping_cart", recipes.HandleDownloadShoppingCart)
				r.Patch("/{id}", recipes.HandleUpdateRecipe)
				r.Delete("/{id}", recipes.HandleDeleteRecipe)
				r.Post("/{id}/favorite", recipes.HandleFavorite)
				r.Delete("/{id}/favorite", recipes.HandleUnfavorite)
				r.Post("/{id}/shopping_cart", recipes.HandleAddToCart)
				r.Delete("/{id}/shopping_cart", recipes.HandleRemoveFromCart)
			})

			r.With(middleware.MaybeAuthenticate).Get("/{id}", recipes.HandleGetRecipe)
		})
	})
}

func Start(e *env.Env) error {
	router := chi.NewRouter()
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(e.Logger))
	router.Use(middleware.InjectEnv(e))
	router.Use(middleware.AddCors)

	addRoutes(router)
	addDocs(router)
	addMedia(router, e)

	port := defaultServerPort
	if raw := e.Get("PORT"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			port = p
		}
	}

	e.Logger.Info(fmt.Sprintf("Listening at 0.0.0.0:%d", port))
	e.Logger.Info(fmt.Sprintf("Swagger UI available at http://0.0.0.0:%d/api/swagger/index.html", port))
	return http.ListenAndServe(fmt.Sprintf(":%d", port), router)
}
