package db

import (
	"context"
	"time"
)

const brawlerColumns = `SELECT id, ext_id, name, created_at, updated_at FROM brawlers`

func scanBrawler(row interface{ Scan(...interface{}) error }) (Brawler, error) {
	var i Brawler
	err := row.Scan(&i.ID, &i.ExtID, &i.Name, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func (q *Queries) FindBrawler(ctx context.Context, preds ...Predicate) (Brawler, error) {
	query, args := findQuery(brawlerColumns, preds)
	return scanBrawler(q.db.QueryRowContext(ctx, query, args...))
}

func (q *Queries) GetBrawler(ctx context.Context, id int64) (Brawler, error) {
	return scanBrawler(q.db.QueryRowContext(ctx, brawlerColumns+` WHERE id = ?`, id))
}

const insertBrawler = `INSERT INTO brawlers (ext_id, name, created_at, updated_at)
VALUES (?, ?, ?, ?)
RETURNING id, ext_id, name, created_at, updated_at`

type InsertBrawlerParams struct {
	ExtID     int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) InsertBrawler(ctx context.Context, arg InsertBrawlerParams) (Brawler, error) {
	row := q.db.QueryRowContext(ctx, insertBrawler, arg.ExtID, arg.Name, arg.CreatedAt, arg.UpdatedAt)
	return scanBrawler(row)
}

const updateBrawler = `UPDATE brawlers SET name = ?, updated_at = ? WHERE id = ?
RETURNING id, ext_id, name, created_at, updated_at`

type UpdateBrawlerParams struct {
	Name      string
	UpdatedAt time.Time
	ID        int64
}

func (q *Queries) UpdateBrawler(ctx context.Context, arg UpdateBrawlerParams) (Brawler, error) {
	row := q.db.QueryRowContext(ctx, updateBrawler, arg.Name, arg.UpdatedAt, arg.ID)
	return scanBrawler(row)
}

const attachBrawlerAccessory = `INSERT OR IGNORE INTO brawler_accessories (brawler_id, accessory_id) VALUES (?, ?)`

func (q *Queries) AttachBrawlerAccessory(ctx context.Context, brawlerID, accessoryID int64) error {
	_, err := q.db.ExecContext(ctx, attachBrawlerAccessory, brawlerID, accessoryID)
	return err
}

const detachBrawlerAccessory = `DELETE FROM brawler_accessories WHERE brawler_id = ? AND accessory_id = ?`

func (q *Queries) DetachBrawlerAccessory(ctx context.Context, brawlerID, accessoryID int64) error {
	_, err := q.db.ExecContext(ctx, detachBrawlerAccessory, brawlerID, accessoryID)
	return err
}

const listBrawlerAccessoryIDs = `SELECT accessory_id FROM brawler_accessories WHERE brawler_id = ? ORDER BY accessory_id`

func (q *Queries) ListBrawlerAccessoryIDs(ctx context.Context, brawlerID int64) ([]int64, error) {
	rows, err := q.db.QueryContext(ctx, listBrawlerAccessoryIDs, brawlerID)
	if err != nil {
		return nil, err
	}
	return scanIDs(rows)
}

const attachBrawlerStarPower = `INSERT OR IGNORE INTO brawler_star_powers (brawler_id, star_power_id) VALUES (?, ?)`

func (q *Queries) AttachBrawlerStarPower(ctx context.Context, brawlerID, starPowerID int64) error {
	_, err := q.db.ExecContext(ctx, attachBrawlerStarPower, brawlerID, starPowerID)
	return err
}

const detachBrawlerStarPower = `DELETE FROM brawler_star_powers WHERE brawler_id = ? AND star_power_id = ?`

func (q *Queries) DetachBrawlerStarPower(ctx context.Context, brawlerID, starPowerID int64) error {
	_, err := q.db.ExecContext(ctx, detachBrawlerStarPower, brawlerID, starPowerID)
	return err
}

const listBrawlerStarPowerIDs = `SELECT star_power_id FROM brawler_star_powers WHERE brawler_id = ? ORDER BY star_power_id`

func (q *Queries) ListBrawlerStarPowerIDs(ctx context.Context, brawlerID int64) ([]int64, error) {
	rows, err := q.db.QueryContext(ctx, listBrawlerStarPowerIDs, brawlerID)
	if err != nil {
		return nil, err
	}
	return scanIDs(rows)
}
