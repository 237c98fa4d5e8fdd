package db

import (
	"context"
	"time"
)

const gearColumns = `SELECT id, ext_id, name, level, created_at, updated_at FROM gears`

func scanGear(row interface{ Scan(...interface{}) error }) (Gear, error) {
	var i Gear
	err := row.Scan(&i.ID, &i.ExtID, &i.Name, &i.Level, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func (q *Queries) FindGear(ctx context.Context, preds ...Predicate) (Gear, error) {
	query, args := findQuery(gearColumns, preds)
	return scanGear(q.db.QueryRowContext(ctx, query, args...))
}

const insertGear = `INSERT INTO gears (ext_id, name, level, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id, ext_id, name, level, created_at, updated_at`

type InsertGearParams struct {
	ExtID     int64
	Name      string
	Level     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) InsertGear(ctx context.Context, arg InsertGearParams) (Gear, error) {
	row := q.db.QueryRowContext(ctx, insertGear, arg.ExtID, arg.Name, arg.Level, arg.CreatedAt, arg.UpdatedAt)
	return scanGear(row)
}

const updateGear = `UPDATE gears SET name = ?, level = ?, updated_at = ? WHERE id = ?
RETURNING id, ext_id, name, level, created_at, updated_at`

type UpdateGearParams struct {
	Name      string
	Level     int64
	UpdatedAt time.Time
	ID        int64
}

func (q *Queries) UpdateGear(ctx context.Context, arg UpdateGearParams) (Gear, error) {
	row := q.db.QueryRowContext(ctx, updateGear, arg.Name, arg.Level, arg.UpdatedAt, arg.ID)
	return scanGear(row)
}

const listGearsByPlayerBrawler = `SELECT g.id, g.ext_id, g.name, g.level, g.created_at, g.updated_at
FROM gears g
JOIN player_brawler_gears pbg ON pbg.gear_id = g.id
WHERE pbg.player_brawler_id = ?
ORDER BY g.ext_id`

func (q *Queries) ListGearsByPlayerBrawler(ctx context.Context, playerBrawlerID int64) ([]Gear, error) {
	rows, err := q.db.QueryContext(ctx, listGearsByPlayerBrawler, playerBrawlerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Gear
	for rows.Next() {
		i, err := scanGear(rows)
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
