package db

import (
	"context"
	"database/sql"
	"time"
)

const clubColumns = `SELECT id, tag, name, description, type, badge_id, required_trophies, trophies, created_at, updated_at FROM clubs`

func scanClub(row interface{ Scan(...interface{}) error }) (Club, error) {
	var i Club
	err := row.Scan(
		&i.ID,
		&i.Tag,
		&i.Name,
		&i.Description,
		&i.Type,
		&i.BadgeID,
		&i.RequiredTrophies,
		&i.Trophies,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func (q *Queries) FindClub(ctx context.Context, preds ...Predicate) (Club, error) {
	query, args := findQuery(clubColumns, preds)
	return scanClub(q.db.QueryRowContext(ctx, query, args...))
}

func (q *Queries) GetClub(ctx context.Context, id int64) (Club, error) {
	return scanClub(q.db.QueryRowContext(ctx, clubColumns+` WHERE id = ?`, id))
}

const insertClub = `INSERT INTO clubs (tag, name, description, type, badge_id, required_trophies, trophies, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, tag, name, description, type, badge_id, required_trophies, trophies, created_at, updated_at`

type InsertClubParams struct {
	Tag              string
	Name             string
	Description      string
	Type             string
	BadgeID          int64
	RequiredTrophies int64
	Trophies         int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (q *Queries) InsertClub(ctx context.Context, arg InsertClubParams) (Club, error) {
	row := q.db.QueryRowContext(ctx, insertClub,
		arg.Tag,
		arg.Name,
		arg.Description,
		arg.Type,
		arg.BadgeID,
		arg.RequiredTrophies,
		arg.Trophies,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return scanClub(row)
}

const updateClub = `UPDATE clubs
SET name = ?, description = ?, type = ?, badge_id = ?, required_trophies = ?, trophies = ?, updated_at = ?
WHERE id = ?
RETURNING id, tag, name, description, type, badge_id, required_trophies, trophies, created_at, updated_at`

type UpdateClubParams struct {
	Name             string
	Description      string
	Type             string
	BadgeID          int64
	RequiredTrophies int64
	Trophies         int64
	UpdatedAt        time.Time
	ID               int64
}

func (q *Queries) UpdateClub(ctx context.Context, arg UpdateClubParams) (Club, error) {
	row := q.db.QueryRowContext(ctx, updateClub,
		arg.Name,
		arg.Description,
		arg.Type,
		arg.BadgeID,
		arg.RequiredTrophies,
		arg.Trophies,
		arg.UpdatedAt,
		arg.ID,
	)
	return scanClub(row)
}

const insertClubStub = `INSERT INTO clubs (tag, name, created_at, updated_at) VALUES (?, ?, ?, ?)
RETURNING id, tag, name, description, type, badge_id, required_trophies, trophies, created_at, updated_at`

// InsertClubStub creates a club known only by tag and name, as referenced from a player profile.
func (q *Queries) InsertClubStub(ctx context.Context, tag, name string, now time.Time) (Club, error) {
	return scanClub(q.db.QueryRowContext(ctx, insertClubStub, tag, name, now, now))
}

const listClubMemberIDs = `SELECT id FROM players WHERE club_id = ? ORDER BY id`

func (q *Queries) ListClubMemberIDs(ctx context.Context, clubID int64) ([]int64, error) {
	rows, err := q.db.QueryContext(ctx, listClubMemberIDs, clubID)
	if err != nil {
		return nil, err
	}
	return scanIDs(rows)
}

const setPlayerClub = `UPDATE players SET club_id = ?, club_role = ?, updated_at = ? WHERE id = ?`

type SetPlayerClubParams struct {
	ClubID    int64
	ClubRole  sql.NullString
	UpdatedAt time.Time
	ID        int64
}

func (q *Queries) SetPlayerClub(ctx context.Context, arg SetPlayerClubParams) error {
	_, err := q.db.ExecContext(ctx, setPlayerClub, arg.ClubID, arg.ClubRole, arg.UpdatedAt, arg.ID)
	return err
}

const clearPlayerClub = `UPDATE players SET club_id = NULL, club_role = NULL, updated_at = ? WHERE id = ?`

func (q *Queries) ClearPlayerClub(ctx context.Context, id int64, now time.Time) error {
	_, err := q.db.ExecContext(ctx, clearPlayerClub, now, id)
	return err
}
