// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"
	"os"

	"github.com/plateful/plateful/internal/database"
	"github.com/plateful/plateful/internal/filestore"
	mhttp "github.com/plateful/plateful/internal/http"
	"github.com/plateful/plateful/internal/log"
)

type ctxKey struct{}

type Env struct {
	Logger    *slog.Logger
	Database  database.Store
	FileStore filestore.FileStore
	HTTP      *mhttp.HTTP

	vars map[string]string
}

func New(vars map[string]string) *Env {
	return &Env{
		Logger: log.NullLogger(),
		vars:   vars,
	}
}

func Null() *Env {
	return &Env{
		Logger: log.NullLogger(),
	}
}

// Get returns the variable from the env's overrides, falling back to
// the process environment.
func (e *Env) Get(key string) string {
	if v, ok := e.vars[key]; ok {
		return v
	}
	return os.Getenv(key)
}

// Set overrides a variable for this env only.
func (e *Env) Set(key, value string) {
	if e.vars == nil {
		e.vars = make(map[string]string)
	}
	e.vars[key] = value
}

func WithCtx(ctx context.Context, e *Env) context.Context {
	return context.WithValue(ctx, ctxKey{}, e)
}

// EnvFromCtx retrieves the env from the context, returning a null env
// when none was injected.
func EnvFromCtx(ctx context.Context) *Env {
	if e, ok := ctx.Value(ctxKey{}).(*Env); ok {
		return e
	}
	return Null()
}
