package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	if !IsUniqueViolation(uniqueErr, "users_email_key") {
		t.Error("named constraint did not match")
	}
	if !IsUniqueViolation(uniqueErr, "") {
		t.Error("empty constraint must match any unique violation")
	}
	if IsUniqueViolation(uniqueErr, "users_username_key") {
		t.Error("different constraint matched")
	}
	if !IsUniqueViolation(fmt.Errorf("creating user: %w", uniqueErr), "users_email_key") {
		t.Error("wrapped error did not match")
	}
	if IsUniqueViolation(errors.New("connection refused"), "") {
		t.Error("plain error matched")
	}
}

func TestIsCheckViolation(t *testing.T) {
	checkErr := &pgconn.PgError{Code: "23514", ConstraintName: "check_valid_hex_color"}

	if !IsCheckViolation(checkErr, "check_valid_hex_color") {
		t.Error("named constraint did not match")
	}
	if !IsCheckViolation(checkErr, "") {
		t.Error("empty constraint must match any check violation")
	}
	if IsCheckViolation(checkErr, "check_valid_slug") {
		t.Error("different constraint matched")
	}
	if IsCheckViolation(&pgconn.PgError{Code: "23505"}, "") {
		t.Error("unique violation classified as check violation")
	}
}
