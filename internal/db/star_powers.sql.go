package db

import (
	"context"
	"database/sql"
	"time"
)

const starPowerColumns = `SELECT id, ext_id, name, created_at, updated_at FROM star_powers`

func scanStarPower(row interface{ Scan(...interface{}) error }) (StarPower, error) {
	var i StarPower
	err := row.Scan(&i.ID, &i.ExtID, &i.Name, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func scanStarPowers(rows *sql.Rows) ([]StarPower, error) {
	defer rows.Close()
	var items []StarPower
	for rows.Next() {
		i, err := scanStarPower(rows)
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

func (q *Queries) FindStarPower(ctx context.Context, preds ...Predicate) (StarPower, error) {
	query, args := findQuery(starPowerColumns, preds)
	return scanStarPower(q.db.QueryRowContext(ctx, query, args...))
}

const insertStarPower = `INSERT INTO star_powers (ext_id, name, created_at, updated_at)
VALUES (?, ?, ?, ?)
RETURNING id, ext_id, name, created_at, updated_at`

type InsertStarPowerParams struct {
	ExtID     int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) InsertStarPower(ctx context.Context, arg InsertStarPowerParams) (StarPower, error) {
	row := q.db.QueryRowContext(ctx, insertStarPower, arg.ExtID, arg.Name, arg.CreatedAt, arg.UpdatedAt)
	return scanStarPower(row)
}

const updateStarPower = `UPDATE star_powers SET name = ?, updated_at = ? WHERE id = ?
RETURNING id, ext_id, name, created_at, updated_at`

type UpdateStarPowerParams struct {
	Name      string
	UpdatedAt time.Time
	ID        int64
}

func (q *Queries) UpdateStarPower(ctx context.Context, arg UpdateStarPowerParams) (StarPower, error) {
	row := q.db.QueryRowContext(ctx, updateStarPower, arg.Name, arg.UpdatedAt, arg.ID)
	return scanStarPower(row)
}

const listStarPowersByBrawler = `SELECT s.id, s.ext_id, s.name, s.created_at, s.updated_at
FROM star_powers s
JOIN brawler_star_powers bs ON bs.star_power_id = s.id
WHERE bs.brawler_id = ?
ORDER BY s.ext_id`

func (q *Queries) ListStarPowersByBrawler(ctx context.Context, brawlerID int64) ([]StarPower, error) {
	rows, err := q.db.QueryContext(ctx, listStarPowersByBrawler, brawlerID)
	if err != nil {
		return nil, err
	}
	return scanStarPowers(rows)
}

const listStarPowersByPlayerBrawler = `SELECT s.id, s.ext_id, s.name, s.created_at, s.updated_at
FROM star_powers s
JOIN player_brawler_star_powers pbs ON pbs.star_power_id = s.id
WHERE pbs.player_brawler_id = ?
ORDER BY s.ext_id`

func (q *Queries) ListStarPowersByPlayerBrawler(ctx context.Context, playerBrawlerID int64) ([]StarPower, error) {
	rows, err := q.db.QueryContext(ctx, listStarPowersByPlayerBrawler, playerBrawlerID)
	if err != nil {
		return nil, err
	}
	return scanStarPowers(rows)
}
