package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const directoryPerms = 0o755

// Local stores images on a mounted volume. The API serves the volume
// under keyPrefix.
type Local struct {
	baseDir   string
	keyPrefix string
	host      string
}

var _ FileStore = (*Local)(nil)

func NewLocal(baseDir, keyPrefix, host string) *Local {
	return &Local{
		baseDir:   baseDir,
		keyPrefix: keyPrefix,
		host:      strings.TrimRight(host, "/"),
	}
}

func (l *Local) BaseDirectory() string {
	return l.baseDir
}

func (l *Local) WriteRecipeImage(_ context.Context, suffix string, data []byte) (string, int, error) {
	key := recipeImageKey(l.keyPrefix, suffix)
	fullpath := filepath.Join(l.baseDir, filepath.FromSlash(trimKeyPrefix(key, l.keyPrefix)))

	if err := os.MkdirAll(filepath.Dir(fullpath), directoryPerms); err != nil {
		return "", 0, fmt.Errorf("creating parent directories: %w", err)
	}

	file, err := os.Create(fullpath)
	if err != nil {
		return "", 0, fmt.Errorf("creating file: %w", err)
	}
	defer func() { _ = file.Close() }()

	n, err := file.Write(data)
	if err != nil {
		return "", 0, fmt.Errorf("writing file: %w", err)
	}

	return "/" + key, n, nil
}

func (l *Local) Delete(_ context.Context, key string) error {
	fullpath := filepath.Join(l.baseDir, filepath.FromSlash(trimKeyPrefix(key, l.keyPrefix)))
	if err := os.Remove(fullpath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (l *Local) FileURL(key string) string {
	return l.host + "/" + strings.TrimLeft(key, "/")
}
