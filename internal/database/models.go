package database

import (
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (e *Role) Scan(src interface{}) error {
	switch s := src.(type) {
	case []byte:
		*e = Role(s)
	case string:
		*e = Role(s)
	default:
		return fmt.Errorf("unsupported scan type for Role: %T", src)
	}
	return nil
}

func (e Role) Value() (driver.Value, error) {
	return string(e), nil
}

type User struct {
	ID           int64
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         Role
	CreatedAt    pgtype.Timestamptz
}

type Ingredient struct {
	ID              int64
	Name            string
	MeasurementUnit string
}

type Tag struct {
	ID    int64
	Name  string
	Slug  string
	Color string
}

type Recipe struct {
	ID          int64
	Name        string
	Text        string
	PubDate     pgtype.Timestamptz
	Author      int64
	CookingTime int16
	Image       string
}

type Amount struct {
	RecipeID     int64
	IngredientID int64
	Amount       int16
}
