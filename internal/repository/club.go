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

type ClubRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
	players *PlayerRepository
}

func NewClubRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger, players *PlayerRepository) *ClubRepository {
	return &ClubRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
		players: players,
	}
}

// Find supports ID, Tag and Name. Members come back ordered by trophies.
func (r *ClubRepository) Find(ctx context.Context, c Criteria) (*domain.Club, error) {
	row, err := r.queries.FindClub(ctx, c.predicates(colID, colTag, colName)...)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.load(ctx, row)
}

// CreateOrUpdate upserts the club by tag, then its members by tag with the
// role from d. Players who left the club keep their row but lose the club
// reference and role.
func (r *ClubRepository) CreateOrUpdate(ctx context.Context, d dto.ClubDTO) (*domain.Club, error) {
	var clubID int64
	err := withTx(ctx, r.db, r.queries, func(q *db.Queries) error {
		ts := now()

		row, err := r.upsert(ctx, q, d, ts)
		if err != nil {
			return err
		}
		clubID = row.ID

		return r.syncMembers(ctx, q, row.ID, d.Members, ts)
	})
	if err != nil {
		r.logger.Debug().Err(err).Str("tag", d.Tag).Msg("club upsert rolled back")
		return nil, err
	}

	row, err := r.queries.GetClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	return r.load(ctx, row)
}

func (r *ClubRepository) upsert(ctx context.Context, q *db.Queries, d dto.ClubDTO, ts time.Time) (db.Club, error) {
	existing, err := q.FindClub(ctx, db.Eq("tag", d.Tag))
	if isNotFound(err) {
		r.logger.Debug().Str("tag", d.Tag).Msg("creating club")
		return q.InsertClub(ctx, db.InsertClubParams{
			Tag:              d.Tag,
			Name:             d.Name,
			Description:      d.Description,
			Type:             d.Type,
			BadgeID:          d.BadgeID,
			RequiredTrophies: d.RequiredTrophies,
			Trophies:         d.Trophies,
			CreatedAt:        ts,
			UpdatedAt:        ts,
		})
	}
	if err != nil {
		return db.Club{}, err
	}
	return q.UpdateClub(ctx, db.UpdateClubParams{
		Name:             d.Name,
		Description:      d.Description,
		Type:             d.Type,
		BadgeID:          d.BadgeID,
		RequiredTrophies: d.RequiredTrophies,
		Trophies:         d.Trophies,
		UpdatedAt:        ts,
		ID:               existing.ID,
	})
}

// syncMembers is the one-to-many form of pivot.sync: attaching sets the
// player's club_id and role, detaching nulls both.
func (r *ClubRepository) syncMembers(ctx context.Context, q *db.Queries, clubID int64, members []dto.PlayerDTO, ts time.Time) error {
	want := make([]int64, 0, len(members))
	for _, m := range members {
		player, err := r.players.upsert(ctx, q, m, ts)
		if err != nil {
			return err
		}
		err = q.SetPlayerClub(ctx, db.SetPlayerClubParams{
			ClubID:    clubID,
			ClubRole:  nullString(m.Role),
			UpdatedAt: ts,
			ID:        player.ID,
		})
		if err != nil {
			return err
		}
		want = append(want, player.ID)
	}

	current, err := q.ListClubMemberIDs(ctx, clubID)
	if err != nil {
		return err
	}
	for _, id := range staleIDs(current, want) {
		r.logger.Debug().Int64("club_id", clubID).Int64("player_id", id).Msg("detaching club member")
		if err := q.ClearPlayerClub(ctx, id, ts); err != nil {
			return err
		}
	}
	return nil
}

func (r *ClubRepository) load(ctx context.Context, row db.Club) (*domain.Club, error) {
	c := clubFromRow(row)

	members, err := r.queries.ListPlayersByClub(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	ref := &domain.ClubRef{ID: row.ID, Tag: row.Tag, Name: row.Name}
	c.Members = make([]domain.Player, 0, len(members))
	for _, m := range members {
		p := playerFromRow(m)
		p.Club = ref
		c.Members = append(c.Members, p)
	}
	return &c, nil
}
