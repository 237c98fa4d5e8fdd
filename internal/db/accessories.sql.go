package db

import (
	"context"
	"database/sql"
	"time"
)

const accessoryColumns = `SELECT id, ext_id, name, created_at, updated_at FROM accessories`

func scanAccessory(row interface{ Scan(...interface{}) error }) (Accessory, error) {
	var i Accessory
	err := row.Scan(&i.ID, &i.ExtID, &i.Name, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func scanAccessories(rows *sql.Rows) ([]Accessory, error) {
	defer rows.Close()
	var items []Accessory
	for rows.Next() {
		i, err := scanAccessory(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (q *Queries) FindAccessory(ctx context.Context, preds ...Predicate) (Accessory, error) {
	query, args := findQuery(accessoryColumns, preds)
	return scanAccessory(q.db.QueryRowContext(ctx, query, args...))
}

const insertAccessory = `INSERT INTO accessories (ext_id, name, created_at, updated_at)
VALUES (?, ?, ?, ?)
RETURNING id, ext_id, name, created_at, updated_at`

type InsertAccessoryParams struct {
	ExtID     int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) InsertAccessory(ctx context.Context, arg InsertAccessoryParams) (Accessory, error) {
	row := q.db.QueryRowContext(ctx, insertAccessory, arg.ExtID, arg.Name, arg.CreatedAt, arg.UpdatedAt)
	return scanAccessory(row)
}

const updateAccessory = `UPDATE accessories SET name = ?, updated_at = ? WHERE id = ?
RETURNING id, ext_id, name, created_at, updated_at`

type UpdateAccessoryParams struct {
	Name      string
	UpdatedAt time.Time
	ID        int64
}

func (q *Queries) UpdateAccessory(ctx context.Context, arg UpdateAccessoryParams) (Accessory, error) {
	row := q.db.QueryRowContext(ctx, updateAccessory, arg.Name, arg.UpdatedAt, arg.ID)
	return scanAccessory(row)
}

const listAccessoriesByBrawler = `SELECT a.id, a.ext_id, a.name, a.created_at, a.updated_at
FROM accessories a
JOIN brawler_accessories ba ON ba.accessory_id = a.id
WHERE ba.brawler_id = ?
ORDER BY a.ext_id`

func (q *Queries) ListAccessoriesByBrawler(ctx context.Context, brawlerID int64) ([]Accessory, error) {
	rows, err := q.db.QueryContext(ctx, listAccessoriesByBrawler, brawlerID)
	if err != nil {
		return nil, err
	}
	return scanAccessories(rows)
}

const listAccessoriesByPlayerBrawler = `SELECT a.id, a.ext_id, a.name, a.created_at, a.updated_at
FROM accessories a
JOIN player_brawler_accessories pba ON pba.accessory_id = a.id
WHERE pba.player_brawler_id = ?
ORDER BY a.ext_id`

func (q *Queries) ListAccessoriesByPlayerBrawler(ctx context.Context, playerBrawlerID int64) ([]Accessory, error) {
	rows, err := q.db.QueryContext(ctx, listAccessoriesByPlayerBrawler, playerBrawlerID)
	if err != nil {
		return nil, err
	}
	return scanAccessories(rows)
}
