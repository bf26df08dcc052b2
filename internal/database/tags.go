package database

import "context"

const createTag = `
INSERT INTO tags (name, slug, color)
VALUES ($1, $2, $3)
RETURNING id, name, slug, color
`

type CreateTagParams struct {
	Name  string
	Slug  string
	Color string
}

func (q *Queries) CreateTag(ctx context.Context, arg CreateTagParams) (Tag, error) {
	row := q.db.QueryRow(ctx, createTag, arg.Name, arg.Slug, arg.Color)
	var i Tag
	err := row.Scan(&i.ID, &i.Name, &i.Slug, &i.Color)
	return i, err
}

const getTag = `
SELECT id, name, slug, color FROM tags WHERE id = $1
`

func (q *Queries) GetTag(ctx context.Context, id int64) (Tag, error) {
	row := q.db.QueryRow(ctx, getTag, id)
	var i Tag
	err := row.Scan(&i.ID, &i.Name, &i.Slug, &i.Color)
	return i, err
}

const listTags = `
SELECT id, name, slug, color FROM tags ORDER BY id
`

func (q *Queries) ListTags(ctx context.Context) ([]Tag, error) {
	rows, err := q.db.Query(ctx, listTags)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Tag
	for rows.Next() {
		var i Tag
		if err := rows.Scan(&i.ID, &i.Name, &i.Slug, &i.Color); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listTagsByIDs = `
SELECT id, name, slug, color FROM tags WHERE id = ANY($1::bigint[])
`

func (q *Queries) ListTagsByIDs(ctx context.Context, ids []int64) ([]Tag, error) {
	rows, err := q.db.Query(ctx, listTagsByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Tag
	for rows.Next() {
		var i Tag
		if err := rows.Scan(&i.ID, &i.Name, &i.Slug, &i.Color); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
