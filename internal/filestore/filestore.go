// Package filestore abstracts where recipe images live: a local volume
// served by the API or an S3-compatible bucket.
package filestore

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/oklog/ulid/v2"
)

const (
	recipesDir = "recipes"
)

const (
	DefaultKeyPrefix = "/media"
)

type FileStore interface {
	// WriteRecipeImage stores an image and returns the URL path it is
	// reachable under.
	WriteRecipeImage(ctx context.Context, suffix string, data []byte) (key string, n int, err error)

	Delete(ctx context.Context, key string) error

	// FileURL turns a stored key into an absolute URL.
	FileURL(key string) string
}

func recipeImageKey(prefix, suffix string) string {
	return path.Join(strings.Trim(prefix, "/"), recipesDir,
		fmt.Sprintf("%s%s", ulid.Make().String(), suffix))
}

func trimKeyPrefix(key, prefix string) string {
	key = strings.Trim(key, "/")
	key = strings.TrimPrefix(key, strings.Trim(prefix, "/"))
	return strings.TrimLeft(key, "/")
}
