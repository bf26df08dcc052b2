// Package setup is responsible for setting up components.
package setup

import (
	"context"
	"fmt"
	"net/mail"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plateful/plateful/internal/argon2id"
	"github.com/plateful/plateful/internal/config"
	"github.com/plateful/plateful/internal/database"
	"github.com/plateful/plateful/internal/env"
	"github.com/plateful/plateful/internal/filestore"
	"github.com/plateful/plateful/internal/password"
)

func Database(ctx context.Context, conf config.Config) (*database.Database, error) {
	// Creating DB connection
	pool, err := pgxpool.New(ctx, conf.Database.ConnString())
	if err != nil {
		return nil, fmt.Errorf("creating database pool: %w", err)
	}

	db := database.NewDatabase(pool)
	if err := db.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	return db, nil
}

// FileStore picks the image backend: a bucket when one is configured,
// the local media volume otherwise.
func FileStore(ctx context.Context, conf config.Config) (filestore.FileStore, error) {
	if conf.S3.Endpoint != "" {
		s3, err := filestore.NewS3(filestore.S3Config{
			Endpoint:  conf.S3.Endpoint,
			AccessKey: conf.S3.AccessKey,
			SecretKey: conf.S3.SecretKey,
			Bucket:    conf.S3.Bucket,
			UseSSL:    conf.S3.UseSSL,
			Host:      conf.S3.Host,
		})
		if err != nil {
			return nil, fmt.Errorf("creating s3 filestore: %w", err)
		}
		if err := s3.EnsureBucket(ctx); err != nil {
			return nil, fmt.Errorf("ensuring bucket: %w", err)
		}
		return s3, nil
	}

	mediaPath, err := filepath.Abs(conf.Media.Volume)
	if err != nil {
		return nil, fmt.Errorf("creating media path: %w", err)
	}
	return filestore.NewLocal(mediaPath, conf.Media.URLPrefix, conf.HostOrigin), nil
}

// Admin setups an admin user if one does not exist. Requires env.Database.
func Admin(ctx context.Context, env *env.Env, conf config.Config) error {
	admin := conf.Admin
	if admin.Email == "" || admin.Password == "" {
		env.Logger.Info("ADMIN_EMAIL and ADMIN_PASSWORD not setup, skipping admin setup")
		return nil
	}

	// Validate email and password
	if _, err := mail.ParseAddress(admin.Email); err != nil {
		return fmt.Errorf("parsing admin email: %w", err)
	}
	if err := password.ValidatePassword(string(admin.Password)); err != nil {
		return fmt.Errorf("validating admin password: %w", err)
	}

	// Check admin count
	count, err := env.Database.GetAdminCount(ctx)
	if err != nil {
		return fmt.Errorf("getting admin count: %w", err)
	}
	if count > 0 {
		env.Logger.Info("admin already setup, skipping setup")
		return nil
	}

	hashedPassword, err := argon2id.EncodeHash(string(admin.Password), argon2id.DefaultParams)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	// Create admin
	_, err = env.Database.CreateUser(ctx, database.CreateUserParams{
		Email:        admin.Email,
		Username:     admin.Username,
		FirstName:    admin.FirstName,
		LastName:     admin.LastName,
		PasswordHash: hashedPassword,
		Role:         database.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("creating admin: %w", err)
	}
	env.Logger.Info("successfully setup admin!")

	return nil
}
