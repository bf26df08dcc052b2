package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createUser = `
INSERT INTO users (email, username, first_name, last_name, password_hash, role)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

type CreateUserParams struct {
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         Role
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (int64, error) {
	row := q.db.QueryRow(ctx, createUser,
		arg.Email,
		arg.Username,
		arg.FirstName,
		arg.LastName,
		arg.PasswordHash,
		arg.Role,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const getUserByEmail = `
SELECT id, email, username, first_name, last_name, password_hash, role, created_at
FROM users
WHERE email = $1
`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRow(ctx, getUserByEmail, email)
	var i User
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Username,
		&i.FirstName,
		&i.LastName,
		&i.PasswordHash,
		&i.Role,
		&i.CreatedAt,
	)
	return i, err
}

const getUser = `
SELECT u.id, u.email, u.username, u.first_name, u.last_name,
       EXISTS(
           SELECT 1 FROM subscriptions s
           WHERE s.followed_user_id = u.id AND s.user_id = $2
       ) AS is_subscribed
FROM users u
WHERE u.id = $1
`

type GetUserParams struct {
	ID     int64
	Viewer pgtype.Int8
}

type GetUserRow struct {
	ID           int64
	Email        string
	Username     string
	FirstName    string
	LastName     string
	IsSubscribed bool
}

// GetUser loads a user profile with the viewer-relative is_subscribed
// flag. Viewer may be null for anonymous reads, in which case the flag
// is always false.
func (q *Queries) GetUser(ctx context.Context, arg GetUserParams) (GetUserRow, error) {
	row := q.db.QueryRow(ctx, getUser, arg.ID, arg.Viewer)
	var i GetUserRow
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Username,
		&i.FirstName,
		&i.LastName,
		&i.IsSubscribed,
	)
	return i, err
}

const listUsers = `
SELECT u.id, u.email, u.username, u.first_name, u.last_name,
       EXISTS(
           SELECT 1 FROM subscriptions s
           WHERE s.followed_user_id = u.id AND s.user_id = $1
       ) AS is_subscribed
FROM users u
ORDER BY u.id
LIMIT $2 OFFSET $3
`

type ListUsersParams struct {
	Viewer pgtype.Int8
	Limit  int32
	Offset int32
}

func (q *Queries) ListUsers(ctx context.Context, arg ListUsersParams) ([]GetUserRow, error) {
	rows, err := q.db.Query(ctx, listUsers, arg.Viewer, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetUserRow
	for rows.Next() {
		var i GetUserRow
		if err := rows.Scan(
			&i.ID,
			&i.Email,
			&i.Username,
			&i.FirstName,
			&i.LastName,
			&i.IsSubscribed,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countUsers = `
SELECT count(*) FROM users
`

func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countUsers)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const getAdminCount = `
SELECT count(*) FROM users WHERE role = 'admin'
`

func (q *Queries) GetAdminCount(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, getAdminCount)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const checkUsersTableExists = `
SELECT EXISTS (
    SELECT 1 FROM information_schema.tables
    WHERE table_schema = 'public' AND table_name = 'users'
)
`

func (q *Queries) CheckUsersTableExists(ctx context.Context) (bool, error) {
	row := q.db.QueryRow(ctx, checkUsersTableExists)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}
