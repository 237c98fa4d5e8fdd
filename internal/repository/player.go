package repository

import (
	"brawlstats-sync/internal/db"
	"brawlstats-sync/internal/domain"
	"brawlstats-sync/internal/dto"
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"
)

type PlayerRepository struct {
	queries     *db.Queries
	db          *sql.DB
	logger      zerolog.Logger
	brawlers    *BrawlerRepository
	accessories *AccessoryRepository
	gears       *GearRepository
	starPowers  *StarPowerRepository
}

func NewPlayerRepository(
	sqlDB *sql.DB,
	queries *db.Queries,
	logger zerolog.Logger,
	brawlers *BrawlerRepository,
	accessories *AccessoryRepository,
	gears *GearRepository,
	starPowers *StarPowerRepository,
) *PlayerRepository {
	return &PlayerRepository{
		queries:     queries,
		db:          sqlDB,
		logger:      logger,
		brawlers:    brawlers,
		accessories: accessories,
		gears:       gears,
		starPowers:  starPowers,
	}
}

// Find supports ID, Tag and Name. The player comes back with its club
// reference and its full roster.
func (r *PlayerRepository) Find(ctx context.Context, c Criteria) (*domain.Player, error) {
	row, err := r.queries.FindPlayer(ctx, c.predicates(colID, colTag, colName)...)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.load(ctx, row)
}

// CreateOrUpdate upserts the player by tag. Optional stats absent from d keep
// their stored values. A club in d links the player to it, creating the club
// by tag and name when unknown; no club clears the link. The roster is only
// reconciled when d carries one.
func (r *PlayerRepository) CreateOrUpdate(ctx context.Context, d dto.PlayerDTO) (*domain.Player, error) {
	var playerID int64
	err := withTx(ctx, r.db, r.queries, func(q *db.Queries) error {
		ts := now()

		row, err := r.upsert(ctx, q, d, ts)
		if err != nil {
			return err
		}
		playerID = row.ID

		if err := r.syncClub(ctx, q, row, d, ts); err != nil {
			return err
		}
		if d.Brawlers == nil {
			return nil
		}
		return r.syncRoster(ctx, q, row.ID, d.Brawlers, ts)
	})
	if err != nil {
		r.logger.Debug().Err(err).Str("tag", d.Tag).Msg("player upsert rolled back")
		return nil, err
	}

	row, err := r.queries.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return r.load(ctx, row)
}

// upsert writes the player's own columns and leaves club and roster alone.
func (r *PlayerRepository) upsert(ctx context.Context, q *db.Queries, d dto.PlayerDTO, ts time.Time) (db.Player, error) {
	existing, err := q.FindPlayer(ctx, db.Eq("tag", d.Tag))
	if isNotFound(err) {
		r.logger.Debug().Str("tag", d.Tag).Msg("creating player")
		return q.InsertPlayer(ctx, db.InsertPlayerParams{
			Tag:                                  d.Tag,
			Name:                                 d.Name,
			NameColor:                            d.NameColor,
			IconID:                               d.IconID,
			Trophies:                             d.Trophies,
			HighestTrophies:                      nullInt(d.HighestTrophies),
			ExpLevel:                             nullInt(d.ExpLevel),
			ExpPoints:                            nullInt(d.ExpPoints),
			IsQualifiedFromChampionshipChallenge: nullBool(d.IsQualifiedFromChampionshipChallenge),
			SoloVictories:                        nullInt(d.SoloVictories),
			DuoVictories:                         nullInt(d.DuoVictories),
			TrioVictories:                        nullInt(d.TrioVictories),
			BestRoboRumbleTime:                   nullInt(d.BestRoboRumbleTime),
			BestTimeAsBigBrawler:                 nullInt(d.BestTimeAsBigBrawler),
			CreatedAt:                            ts,
			UpdatedAt:                            ts,
		})
	}
	if err != nil {
		return db.Player{}, err
	}
	return q.UpdatePlayer(ctx, db.UpdatePlayerParams{
		Name:                                 d.Name,
		NameColor:                            d.NameColor,
		IconID:                               d.IconID,
		Trophies:                             d.Trophies,
		HighestTrophies:                      nullInt(d.HighestTrophies),
		ExpLevel:                             nullInt(d.ExpLevel),
		ExpPoints:                            nullInt(d.ExpPoints),
		IsQualifiedFromChampionshipChallenge: nullBool(d.IsQualifiedFromChampionshipChallenge),
		SoloVictories:                        nullInt(d.SoloVictories),
		DuoVictories:                         nullInt(d.DuoVictories),
		TrioVictories:                        nullInt(d.TrioVictories),
		BestRoboRumbleTime:                   nullInt(d.BestRoboRumbleTime),
		BestTimeAsBigBrawler:                 nullInt(d.BestTimeAsBigBrawler),
		UpdatedAt:                            ts,
		ID:                                   existing.ID,
	})
}

// syncClub keeps the stored role when d has none and the club did not change.
func (r *PlayerRepository) syncClub(ctx context.Context, q *db.Queries, row db.Player, d dto.PlayerDTO, ts time.Time) error {
	if d.Club == nil {
		if !row.ClubID.Valid {
			return nil
		}
		return q.ClearPlayerClub(ctx, row.ID, ts)
	}

	club, err := q.FindClub(ctx, db.Eq("tag", d.Club.Tag))
	if isNotFound(err) {
		r.logger.Debug().Str("tag", d.Club.Tag).Msg("creating club from player profile")
		club, err = q.InsertClubStub(ctx, d.Club.Tag, d.Club.Name, ts)
	}
	if err != nil {
		return err
	}

	role := nullString(d.Role)
	if !role.Valid && row.ClubID.Valid && row.ClubID.Int64 == club.ID {
		role = row.ClubRole
	}
	return q.SetPlayerClub(ctx, db.SetPlayerClubParams{
		ClubID:    club.ID,
		ClubRole:  role,
		UpdatedAt: ts,
		ID:        row.ID,
	})
}

// syncRoster makes the player's brawler set equal roster. Brawlers unknown
// locally are created from their ext id and name. Each kept entry gets its
// accessories, gears and star powers reconciled the same way.
func (r *PlayerRepository) syncRoster(ctx context.Context, q *db.Queries, playerID int64, roster []dto.PlayerBrawlerDTO, ts time.Time) error {
	keep := make([]int64, 0, len(roster))
	for _, pb := range roster {
		brawler, err := r.brawlers.upsert(ctx, q, pb.ExtID, pb.Name, ts)
		if err != nil {
			return err
		}

		row, err := r.upsertPlayerBrawler(ctx, q, playerID, brawler.ID, pb, ts)
		if err != nil {
			return err
		}
		keep = append(keep, row.ID)

		if err := r.syncLoadout(ctx, q, row.ID, pb, ts); err != nil {
			return err
		}
	}

	current, err := q.ListPlayerBrawlers(ctx, playerID)
	if err != nil {
		return err
	}
	ids := make([]int64, 0, len(current))
	for _, c := range current {
		ids = append(ids, c.ID)
	}
	for _, id := range staleIDs(ids, keep) {
		if err := q.DeletePlayerBrawler(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *PlayerRepository) upsertPlayerBrawler(ctx context.Context, q *db.Queries, playerID, brawlerID int64, pb dto.PlayerBrawlerDTO, ts time.Time) (db.PlayerBrawler, error) {
	existing, err := q.FindPlayerBrawler(ctx, db.Eq("player_id", playerID), db.Eq("brawler_id", brawlerID))
	if isNotFound(err) {
		return q.InsertPlayerBrawler(ctx, db.InsertPlayerBrawlerParams{
			PlayerID:        playerID,
			BrawlerID:       brawlerID,
			Power:           pb.Power,
			Rank:            pb.Rank,
			Trophies:        pb.Trophies,
			HighestTrophies: pb.HighestTrophies,
			CreatedAt:       ts,
			UpdatedAt:       ts,
		})
	}
	if err != nil {
		return db.PlayerBrawler{}, err
	}
	return q.UpdatePlayerBrawler(ctx, db.UpdatePlayerBrawlerParams{
		Power:           pb.Power,
		Rank:            pb.Rank,
		Trophies:        pb.Trophies,
		HighestTrophies: pb.HighestTrophies,
		UpdatedAt:       ts,
		ID:              existing.ID,
	})
}

func (r *PlayerRepository) syncLoadout(ctx context.Context, q *db.Queries, playerBrawlerID int64, pb dto.PlayerBrawlerDTO, ts time.Time) error {
	accessoryIDs, err := r.accessories.upsertAll(ctx, q, pb.Accessories, ts)
	if err != nil {
		return err
	}
	gearIDs, err := r.gears.upsertAll(ctx, q, pb.Gears, ts)
	if err != nil {
		return err
	}
	starPowerIDs, err := r.starPowers.upsertAll(ctx, q, pb.StarPowers, ts)
	if err != nil {
		return err
	}

	pivots := []struct {
		p    pivot
		want []int64
	}{
		{pivot{
			list: func(ctx context.Context) ([]int64, error) {
				return q.ListPlayerBrawlerAccessoryIDs(ctx, playerBrawlerID)
			},
			attach: func(ctx context.Context, id int64) error {
				return q.AttachPlayerBrawlerAccessory(ctx, playerBrawlerID, id)
			},
			detach: func(ctx context.Context, id int64) error {
				return q.DetachPlayerBrawlerAccessory(ctx, playerBrawlerID, id)
			},
		}, accessoryIDs},
		{pivot{
			list: func(ctx context.Context) ([]int64, error) {
				return q.ListPlayerBrawlerGearIDs(ctx, playerBrawlerID)
			},
			attach: func(ctx context.Context, id int64) error {
				return q.AttachPlayerBrawlerGear(ctx, playerBrawlerID, id)
			},
			detach: func(ctx context.Context, id int64) error {
				return q.DetachPlayerBrawlerGear(ctx, playerBrawlerID, id)
			},
		}, gearIDs},
		{pivot{
			list: func(ctx context.Context) ([]int64, error) {
				return q.ListPlayerBrawlerStarPowerIDs(ctx, playerBrawlerID)
			},
			attach: func(ctx context.Context, id int64) error {
				return q.AttachPlayerBrawlerStarPower(ctx, playerBrawlerID, id)
			},
			detach: func(ctx context.Context, id int64) error {
				return q.DetachPlayerBrawlerStarPower(ctx, playerBrawlerID, id)
			},
		}, starPowerIDs},
	}
	for _, pv := range pivots {
		if err := pv.p.sync(ctx, pv.want); err != nil {
			return err
		}
	}
	return nil
}

func (r *PlayerRepository) load(ctx context.Context, row db.Player) (*domain.Player, error) {
	p := playerFromRow(row)

	if row.ClubID.Valid {
		club, err := r.queries.GetClub(ctx, row.ClubID.Int64)
		if err != nil {
			return nil, err
		}
		p.Club = &domain.ClubRef{ID: club.ID, Tag: club.Tag, Name: club.Name}
	}

	rows, err := r.queries.ListPlayerBrawlers(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	p.Brawlers = make([]domain.PlayerBrawler, 0, len(rows))
	for _, pbRow := range rows {
		pb, err := r.loadPlayerBrawler(ctx, pbRow)
		if err != nil {
			return nil, err
		}
		p.Brawlers = append(p.Brawlers, pb)
	}
	return &p, nil
}

func (r *PlayerRepository) loadPlayerBrawler(ctx context.Context, row db.PlayerBrawler) (domain.PlayerBrawler, error) {
	brawler, err := r.queries.GetBrawler(ctx, row.BrawlerID)
	if err != nil {
		return domain.PlayerBrawler{}, err
	}
	accessories, err := r.queries.ListAccessoriesByPlayerBrawler(ctx, row.ID)
	if err != nil {
		return domain.PlayerBrawler{}, err
	}
	gears, err := r.queries.ListGearsByPlayerBrawler(ctx, row.ID)
	if err != nil {
		return domain.PlayerBrawler{}, err
	}
	starPowers, err := r.queries.ListStarPowersByPlayerBrawler(ctx, row.ID)
	if err != nil {
		return domain.PlayerBrawler{}, err
	}

	return domain.PlayerBrawler{
		ID:              row.ID,
		Brawler:         brawlerFromRow(brawler),
		Power:           row.Power,
		Rank:            row.Rank,
		Trophies:        row.Trophies,
		HighestTrophies: row.HighestTrophies,
		Accessories:     mapRows(accessories, accessoryFromRow),
		Gears:           mapRows(gears, gearFromRow),
		StarPowers:      mapRows(starPowers, starPowerFromRow),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}, nil
}
