// Package config loads and validates the process configuration from
// environment variables.
package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/plateful/plateful/internal/password"
)

const (
	appSecretBytes     = 32
	appSecretFilePerms = 0o600
)

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

type AdminPassword string

func (a AdminPassword) Validate() error {
	return password.ValidatePassword(string(a))
}

type AppSecretValue string

func (a *AppSecretValue) Validate() error {
	if a == nil {
		return errors.New("secret should not be nil")
	}
	if len([]byte(*a)) < appSecretBytes {
		return errors.New("secret should be at least 32 bytes")
	}
	return nil
}

type AppSecret struct {
	Value   *AppSecretValue `validate:"omitempty,validateFn"`
	Path    string          `validate:"omitempty,filepath"`
	Version string
}

type Database struct {
	Port     uint16
	Host     string `validate:"omitempty,hostname_rfc1123"`
	Database string
	User     string
	Password string

	Validate struct{} `validate:"allOrNothing=Port Host Database User Password"`
}

func (d Database) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s",
		d.User, d.Password, d.Host, d.Port, d.Database)
}

// Media describes the local volume recipe images are written to.
type Media struct {
	Volume    string
	URLPrefix string
}

// S3 describes an S3-compatible bucket for recipe images. When Endpoint
// is empty, images go to the local media volume instead.
type S3 struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Host      string `validate:"omitempty,url"`

	Validate struct{} `validate:"allOrNothing=Endpoint AccessKey SecretKey Bucket Host"`
}

type Admin struct {
	Username  string `validate:"required_with_all=Email Password"`
	FirstName string
	LastName  string
	Email     string        `validate:"omitempty,email"`
	Password  AdminPassword `validate:"omitempty,validateFn"`

	Validate struct{} `validate:"allOrNothing=Username Email Password"`
}

type Config struct {
	AppSecret  AppSecret
	Admin      Admin
	Media      Media
	S3         S3
	Database   Database
	HostOrigin string `validate:"url"`
	Env        string `validate:"omitempty,oneof=DEV PROD"`
	Port       uint16
}

func splitFieldList(param string) []string {
	// "A,B,C" or "A B C"
	param = strings.ReplaceAll(param, " ", ",")
	parts := strings.Split(param, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// allOrNothing enforces that the fields named in the tag parameter are
// either all zero or all non-zero. It is attached to a placeholder
// field and inspects the parent struct.
func allOrNothing(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		if parent.IsNil() {
			return true
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}

	names := splitFieldList(fl.Param())
	if len(names) == 0 {
		return false
	}

	hasZero := false
	hasNonZero := false

	for _, name := range names {
		f := parent.FieldByName(name)
		if !f.IsValid() {
			return false
		}

		for (f.Kind() == reflect.Pointer || f.Kind() == reflect.Interface) && !f.IsNil() {
			f = f.Elem()
		}

		if f.IsZero() {
			hasZero = true
		} else {
			hasNonZero = true
		}

		if hasZero && hasNonZero {
			return false
		}
	}

	return true
}

type selfValidator interface {
	Validate() error
}

func validateFn(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.CanAddr() {
		if v, ok := field.Addr().Interface().(selfValidator); ok {
			return v.Validate() == nil
		}
	}
	if v, ok := field.Interface().(selfValidator); ok {
		return v.Validate() == nil
	}
	return false
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("allOrNothing", allOrNothing)
	_ = v.RegisterValidation("validateFn", validateFn)
	return v
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors) //nolint:errorlint
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		if e.Tag() == "allOrNothing" {
			// "Config.Database.Validate" -> "Database"
			parts := strings.Split(e.Namespace(), ".")
			var structName string
			if len(parts) >= 2 {
				structName = parts[len(parts)-2]
			}

			var fields string
			switch structName {
			case "Database":
				fields = "Port, Host, Database, User, and Password"
			case "S3":
				fields = "Endpoint, AccessKey, SecretKey, Bucket, and Host"
			case "Admin":
				fields = "Username, Email, and Password"
			default:
				fields = "all related fields"
			}

			return fmt.Errorf(
				"%s configuration is incomplete: either all fields must be set (%s) or all must be empty",
				structName, fields)
		}
	}

	return err
}

func newAppSecret() (string, error) {
	token := make([]byte, appSecretBytes)
	if _, err := rand.Reader.Read(token); err != nil {
		return "", fmt.Errorf("creating app secret: %w", err)
	}
	return base64.StdEncoding.EncodeToString(token), nil
}

// loadAppSecret fills in AppSecret.Value from the secret file,
// generating and persisting a fresh secret on first boot.
func loadAppSecret(config *Config) error {
	if config.AppSecret.Value != nil {
		return nil
	}

	var secret string
	if f1, err := os.Lstat(config.AppSecret.Path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking secret path: %w", err)
		}

		file, err := os.OpenFile(config.AppSecret.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, appSecretFilePerms)
		if err != nil {
			return fmt.Errorf("creating secret file: %w", err)
		}
		defer func() { _ = file.Close() }()

		secret, err = newAppSecret()
		if err != nil {
			return fmt.Errorf("generating new app secret: %w", err)
		}

		if _, err := file.WriteString(secret); err != nil {
			return fmt.Errorf("writing secret file: %w", err)
		}
	} else {
		if f1.IsDir() {
			return fmt.Errorf("expected file, got directory at %q", config.AppSecret.Path)
		}
		data, err := os.ReadFile(config.AppSecret.Path)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		secret = string(data)
	}
	val := AppSecretValue(secret)
	config.AppSecret.Value = &val
	return nil
}

func loadWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func LoadConfig() (Config, error) {
	conf := Config{
		HostOrigin: loadWithDefault("HOST_ORIGIN", "http://localhost:8080"),
		Env:        loadWithDefault("ENV", EnvDev),
	}

	port := loadWithDefault("PORT", "8080")
	if p, err := strconv.ParseUint(port, 10, 16); err != nil {
		return conf, fmt.Errorf("invalid PORT (%q): %w", port, err)
	} else {
		conf.Port = uint16(p)
	}

	// AppSecret
	conf.AppSecret = AppSecret{
		Path:    loadWithDefault("APP_SECRET_PATH", "/data/secret"),
		Version: loadWithDefault("APP_SECRET_VERSION", "1"),
	}
	if v := AppSecretValue(loadWithDefault("APP_SECRET", "")); v != "" {
		conf.AppSecret.Value = &v
	}

	// Database
	conf.Database = Database{
		Host:     loadWithDefault("DATABASE_HOST", "localhost"),
		Database: loadWithDefault("DATABASE", ""),
		User:     loadWithDefault("DATABASE_USER", ""),
		Password: loadWithDefault("DATABASE_PASSWORD", ""),
	}
	databasePort := loadWithDefault("DATABASE_PORT", "5432")
	if p, err := strconv.ParseUint(databasePort, 10, 16); err != nil {
		return conf, fmt.Errorf("invalid DATABASE_PORT (%q): %w", databasePort, err)
	} else {
		conf.Database.Port = uint16(p)
	}

	// Media
	conf.Media = Media{
		Volume:    loadWithDefault("MEDIA_VOLUME", "/data/media"),
		URLPrefix: loadWithDefault("MEDIA_URL_PREFIX", "/media"),
	}

	// S3
	conf.S3 = S3{
		Endpoint:  loadWithDefault("S3_ENDPOINT", ""),
		AccessKey: loadWithDefault("S3_ACCESS_KEY", ""),
		SecretKey: loadWithDefault("S3_SECRET_KEY", ""),
		Bucket:    loadWithDefault("S3_BUCKET", ""),
		Host:      loadWithDefault("S3_HOST", ""),
	}
	useSSL := loadWithDefault("S3_USE_SSL", "false")
	if b, err := strconv.ParseBool(useSSL); err != nil {
		return conf, fmt.Errorf("invalid S3_USE_SSL (%q): %w", useSSL, err)
	} else {
		conf.S3.UseSSL = b
	}

	// Admin
	conf.Admin = Admin{
		Username:  loadWithDefault("ADMIN_USERNAME", ""),
		FirstName: loadWithDefault("ADMIN_FIRST_NAME", ""),
		LastName:  loadWithDefault("ADMIN_LAST_NAME", ""),
		Email:     loadWithDefault("ADMIN_EMAIL", ""),
		Password:  AdminPassword(loadWithDefault("ADMIN_PASSWORD", "")),
	}

	validate := newValidator()
	if err := validate.Struct(conf); err != nil {
		return conf, formatValidationError(err)
	}

	if err := loadAppSecret(&conf); err != nil {
		return conf, fmt.Errorf("loading app secret: %w", err)
	}

	return conf, nil
}
