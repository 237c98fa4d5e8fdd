package db

import (
	"context"
	"database/sql"
	"time"
)

const playerColumns = `SELECT id, tag, name, name_color, icon_id, trophies,
	highest_trophies, exp_level, exp_points, is_qualified_from_championship_challenge,
	solo_victories, duo_victories, trio_victories, best_robo_rumble_time, best_time_as_big_brawler,
	club_id, club_role, created_at, updated_at
FROM players`

func scanPlayer(row interface{ Scan(...interface{}) error }) (Player, error) {
	var i Player
	err := row.Scan(
		&i.ID,
		&i.Tag,
		&i.Name,
		&i.NameColor,
		&i.IconID,
		&i.Trophies,
		&i.HighestTrophies,
		&i.ExpLevel,
		&i.ExpPoints,
		&i.IsQualifiedFromChampionshipChallenge,
		&i.SoloVictories,
		&i.DuoVictories,
		&i.TrioVictories,
		&i.BestRoboRumbleTime,
		&i.BestTimeAsBigBrawler,
		&i.ClubID,
		&i.ClubRole,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func (q *Queries) FindPlayer(ctx context.Context, preds ...Predicate) (Player, error) {
	query, args := findQuery(playerColumns, preds)
	return scanPlayer(q.db.QueryRowContext(ctx, query, args...))
}

func (q *Queries) GetPlayer(ctx context.Context, id int64) (Player, error) {
	return scanPlayer(q.db.QueryRowContext(ctx, playerColumns+` WHERE id = ?`, id))
}

func (q *Queries) ListPlayersByClub(ctx context.Context, clubID int64) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, playerColumns+` WHERE club_id = ? ORDER BY trophies DESC, id`, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Player
	for rows.Next() {
		i, err := scanPlayer(rows)
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

const insertPlayer = `INSERT INTO players (
	tag, name, name_color, icon_id, trophies,
	highest_trophies, exp_level, exp_points, is_qualified_from_championship_challenge,
	solo_victories, duo_victories, trio_victories, best_robo_rumble_time, best_time_as_big_brawler,
	created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, tag, name, name_color, icon_id, trophies,
	highest_trophies, exp_level, exp_points, is_qualified_from_championship_challenge,
	solo_victories, duo_victories, trio_victories, best_robo_rumble_time, best_time_as_big_brawler,
	club_id, club_role, created_at, updated_at`

type InsertPlayerParams struct {
	Tag                                  string
	Name                                 string
	NameColor                            string
	IconID                               int64
	Trophies                             int64
	HighestTrophies                      sql.NullInt64
	ExpLevel                             sql.NullInt64
	ExpPoints                            sql.NullInt64
	IsQualifiedFromChampionshipChallenge sql.NullBool
	SoloVictories                        sql.NullInt64
	DuoVictories                         sql.NullInt64
	TrioVictories                        sql.NullInt64
	BestRoboRumbleTime                   sql.NullInt64
	BestTimeAsBigBrawler                 sql.NullInt64
	CreatedAt                            time.Time
	UpdatedAt                            time.Time
}

func (q *Queries) InsertPlayer(ctx context.Context, arg InsertPlayerParams) (Player, error) {
	row := q.db.QueryRowContext(ctx, insertPlayer,
		arg.Tag,
		arg.Name,
		arg.NameColor,
		arg.IconID,
		arg.Trophies,
		arg.HighestTrophies,
		arg.ExpLevel,
		arg.ExpPoints,
		arg.IsQualifiedFromChampionshipChallenge,
		arg.SoloVictories,
		arg.DuoVictories,
		arg.TrioVictories,
		arg.BestRoboRumbleTime,
		arg.BestTimeAsBigBrawler,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return scanPlayer(row)
}

// Optional stats keep their stored value when the new one is NULL.
const updatePlayer = `UPDATE players SET
	name = ?,
	name_color = ?,
	icon_id = ?,
	trophies = ?,
	highest_trophies = COALESCE(?, highest_trophies),
	exp_level = COALESCE(?, exp_level),
	exp_points = COALESCE(?, exp_points),
	is_qualified_from_championship_challenge = COALESCE(?, is_qualified_from_championship_challenge),
	solo_victories = COALESCE(?, solo_victories),
	duo_victories = COALESCE(?, duo_victories),
	trio_victories = COALESCE(?, trio_victories),
	best_robo_rumble_time = COALESCE(?, best_robo_rumble_time),
	best_time_as_big_brawler = COALESCE(?, best_time_as_big_brawler),
	updated_at = ?
WHERE id = ?
RETURNING id, tag, name, name_color, icon_id, trophies,
	highest_trophies, exp_level, exp_points, is_qualified_from_championship_challenge,
	solo_victories, duo_victories, trio_victories, best_robo_rumble_time, best_time_as_big_brawler,
	club_id, club_role, created_at, updated_at`

type UpdatePlayerParams struct {
	Name                                 string
	NameColor                            string
	IconID                               int64
	Trophies                             int64
	HighestTrophies                      sql.NullInt64
	ExpLevel                             sql.NullInt64
	ExpPoints                            sql.NullInt64
	IsQualifiedFromChampionshipChallenge sql.NullBool
	SoloVictories                        sql.NullInt64
	DuoVictories                         sql.NullInt64
	TrioVictories                        sql.NullInt64
	BestRoboRumbleTime                   sql.NullInt64
	BestTimeAsBigBrawler                 sql.NullInt64
	UpdatedAt                            time.Time
	ID                                   int64
}

func (q *Queries) UpdatePlayer(ctx context.Context, arg UpdatePlayerParams) (Player, error) {
	row := q.db.QueryRowContext(ctx, updatePlayer,
		arg.Name,
		arg.NameColor,
		arg.IconID,
		arg.Trophies,
		arg.HighestTrophies,
		arg.ExpLevel,
		arg.ExpPoints,
		arg.IsQualifiedFromChampionshipChallenge,
		arg.SoloVictories,
		arg.DuoVictories,
		arg.TrioVictories,
		arg.BestRoboRumbleTime,
		arg.BestTimeAsBigBrawler,
		arg.UpdatedAt,
		arg.ID,
	)
	return scanPlayer(row)
}

const playerBrawlerColumns = `SELECT id, player_id, brawler_id, power, rank, trophies, highest_trophies, created_at, updated_at FROM player_brawlers`

func scanPlayerBrawler(row interface{ Scan(...interface{}) error }) (PlayerBrawler, error) {
	var i PlayerBrawler
	err := row.Scan(
		&i.ID,
		&i.PlayerID,
		&i.BrawlerID,
		&i.Power,
		&i.Rank,
		&i.Trophies,
		&i.HighestTrophies,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func (q *Queries) FindPlayerBrawler(ctx context.Context, preds ...Predicate) (PlayerBrawler, error) {
	query, args := findQuery(playerBrawlerColumns, preds)
	return scanPlayerBrawler(q.db.QueryRowContext(ctx, query, args...))
}

func (q *Queries) ListPlayerBrawlers(ctx context.Context, playerID int64) ([]PlayerBrawler, error) {
	rows, err := q.db.QueryContext(ctx, playerBrawlerColumns+` WHERE player_id = ? ORDER BY id`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []PlayerBrawler
	for rows.Next() {
		i, err := scanPlayerBrawler(rows)
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

const insertPlayerBrawler = `INSERT INTO player_brawlers (player_id, brawler_id, power, rank, trophies, highest_trophies, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, player_id, brawler_id, power, rank, trophies, highest_trophies, created_at, updated_at`

type InsertPlayerBrawlerParams struct {
	PlayerID        int64
	BrawlerID       int64
	Power           int64
	Rank            int64
	Trophies        int64
	HighestTrophies int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (q *Queries) InsertPlayerBrawler(ctx context.Context, arg InsertPlayerBrawlerParams) (PlayerBrawler, error) {
	row := q.db.QueryRowContext(ctx, insertPlayerBrawler,
		arg.PlayerID,
		arg.BrawlerID,
		arg.Power,
		arg.Rank,
		arg.Trophies,
		arg.HighestTrophies,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return scanPlayerBrawler(row)
}

const updatePlayerBrawler = `UPDATE player_brawlers SET power = ?, rank = ?, trophies = ?, highest_trophies = ?, updated_at = ?
WHERE id = ?
RETURNING id, player_id, brawler_id, power, rank, trophies, highest_trophies, created_at, updated_at`

type UpdatePlayerBrawlerParams struct {
	Power           int64
	Rank            int64
	Trophies        int64
	HighestTrophies int64
	UpdatedAt       time.Time
	ID              int64
}

func (q *Queries) UpdatePlayerBrawler(ctx context.Context, arg UpdatePlayerBrawlerParams) (PlayerBrawler, error) {
	row := q.db.QueryRowContext(ctx, updatePlayerBrawler,
		arg.Power,
		arg.Rank,
		arg.Trophies,
		arg.HighestTrophies,
		arg.UpdatedAt,
		arg.ID,
	)
	return scanPlayerBrawler(row)
}

const deletePlayerBrawler = `DELETE FROM player_brawlers WHERE id = ?`

func (q *Queries) DeletePlayerBrawler(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deletePlayerBrawler, id)
	return err
}

const attachPlayerBrawlerAccessory = `INSERT OR IGNORE INTO player_brawler_accessories (player_brawler_id, accessory_id) VALUES (?, ?)`

func (q *Queries) AttachPlayerBrawlerAccessory(ctx context.Context, playerBrawlerID, accessoryID int64) error {
	_, err := q.db.ExecContext(ctx, attachPlayerBrawlerAccessory, playerBrawlerID, accessoryID)
	return err
}

const detachPlayerBrawlerAccessory = `DELETE FROM player_brawler_accessories WHERE player_brawler_id = ? AND accessory_id = ?`

func (q *Queries) DetachPlayerBrawlerAccessory(ctx context.Context, playerBrawlerID, accessoryID int64) error {
	_, err := q.db.ExecContext(ctx, detachPlayerBrawlerAccessory, playerBrawlerID, accessoryID)
	return err
}

const listPlayerBrawlerAccessoryIDs = `SELECT accessory_id FROM player_brawler_accessories WHERE player_brawler_id = ? ORDER BY accessory_id`

func (q *Queries) ListPlayerBrawlerAccessoryIDs(ctx context.Context, playerBrawlerID int64) ([]int64, error) {
	rows, err := q.db.QueryContext(ctx, listPlayerBrawlerAccessoryIDs, playerBrawlerID)
	if err != nil {
		return nil, err
	}
	return scanIDs(rows)
}

const attachPlayerBrawlerGear = `INSERT OR IGNORE INTO player_brawler_gears (player_brawler_id, gear_id) VALUES (?, ?)`

func (q *Queries) AttachPlayerBrawlerGear(ctx context.Context, playerBrawlerID, gearID int64) error {
	_, err := q.db.ExecContext(ctx, attachPlayerBrawlerGear, playerBrawlerID, gearID)
	return err
}

const detachPlayerBrawlerGear = `DELETE FROM player_brawler_gears WHERE player_brawler_id = ? AND gear_id = ?`

func (q *Queries) DetachPlayerBrawlerGear(ctx context.Context, playerBrawlerID, gearID int64) error {
	_, err := q.db.ExecContext(ctx, detachPlayerBrawlerGear, playerBrawlerID, gearID)
	return err
}

const listPlayerBrawlerGearIDs = `SELECT gear_id FROM player_brawler_gears WHERE player_brawler_id = ? ORDER BY gear_id`

func (q *Queries) ListPlayerBrawlerGearIDs(ctx context.Context, playerBrawlerID int64) ([]int64, error) {
	rows, err := q.db.QueryContext(ctx, listPlayerBrawlerGearIDs, playerBrawlerID)
	if err != nil {
		return nil, err
	}
	return scanIDs(rows)
}

const attachPlayerBrawlerStarPower = `INSERT OR IGNORE INTO player_brawler_star_powers (player_brawler_id, star_power_id) VALUES (?, ?)`

func (q *Queries) AttachPlayerBrawlerStarPower(ctx context.Context, playerBrawlerID, starPowerID int64) error {
	_, err := q.db.ExecContext(ctx, attachPlayerBrawlerStarPower, playerBrawlerID, starPowerID)
	return err
}

const detachPlayerBrawlerStarPower = `DELETE FROM player_brawler_star_powers WHERE player_brawler_id = ? AND star_power_id = ?`

func (q *Queries) DetachPlayerBrawlerStarPower(ctx context.Context, playerBrawlerID, starPowerID int64) error {
	_, err := q.db.ExecContext(ctx, detachPlayerBrawlerStarPower, playerBrawlerID, starPowerID)
	return err
}

const listPlayerBrawlerStarPowerIDs = `SELECT star_power_id FROM player_brawler_star_powers WHERE player_brawler_id = ? ORDER BY star_power_id`

func (q *Queries) ListPlayerBrawlerStarPowerIDs(ctx context.Context, playerBrawlerID int64) ([]int64, error) {
	rows, err := q.db.QueryContext(ctx, listPlayerBrawlerStarPowerIDs, playerBrawlerID)
	if err != nil {
		return nil, err
	}
	return scanIDs(rows)
}
