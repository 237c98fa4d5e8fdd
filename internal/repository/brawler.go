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

type BrawlerRepository struct {
	queries     *db.Queries
	db          *sql.DB
	logger      zerolog.Logger
	accessories *AccessoryRepository
	starPowers  *StarPowerRepository
}

func NewBrawlerRepository(
	sqlDB *sql.DB,
	queries *db.Queries,
	logger zerolog.Logger,
	accessories *AccessoryRepository,
	starPowers *StarPowerRepository,
) *BrawlerRepository {
	return &BrawlerRepository{
		queries:     queries,
		db:          sqlDB,
		logger:      logger,
		accessories: accessories,
		starPowers:  starPowers,
	}
}

// Find supports ID, ExtID and Name. The brawler comes back with its
// accessories and star powers.
func (r *BrawlerRepository) Find(ctx context.Context, c Criteria) (*domain.Brawler, error) {
	row, err := r.queries.FindBrawler(ctx, c.predicates(colID, colExtID, colName)...)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.load(ctx, row)
}

// CreateOrUpdate upserts the brawler by ext id and makes its accessory and
// star power sets equal to the ones in d, all in one transaction.
func (r *BrawlerRepository) CreateOrUpdate(ctx context.Context, d dto.BrawlerDTO) (*domain.Brawler, error) {
	var brawlerID int64
	err := withTx(ctx, r.db, r.queries, func(q *db.Queries) error {
		ts := now()

		row, err := r.upsert(ctx, q, d.ExtID, d.Name, ts)
		if err != nil {
			return err
		}
		brawlerID = row.ID

		accessoryIDs, err := r.accessories.upsertAll(ctx, q, d.Accessories, ts)
		if err != nil {
			return err
		}
		starPowerIDs, err := r.starPowers.upsertAll(ctx, q, d.StarPowers, ts)
		if err != nil {
			return err
		}

		accessories := pivot{
			list: func(ctx context.Context) ([]int64, error) {
				return q.ListBrawlerAccessoryIDs(ctx, brawlerID)
			},
			attach: func(ctx context.Context, id int64) error {
				return q.AttachBrawlerAccessory(ctx, brawlerID, id)
			},
			detach: func(ctx context.Context, id int64) error {
				return q.DetachBrawlerAccessory(ctx, brawlerID, id)
			},
		}
		if err := accessories.sync(ctx, accessoryIDs); err != nil {
			return err
		}

		starPowers := pivot{
			list: func(ctx context.Context) ([]int64, error) {
				return q.ListBrawlerStarPowerIDs(ctx, brawlerID)
			},
			attach: func(ctx context.Context, id int64) error {
				return q.AttachBrawlerStarPower(ctx, brawlerID, id)
			},
			detach: func(ctx context.Context, id int64) error {
				return q.DetachBrawlerStarPower(ctx, brawlerID, id)
			},
		}
		return starPowers.sync(ctx, starPowerIDs)
	})
	if err != nil {
		r.logger.Debug().Err(err).Int64("ext_id", d.ExtID).Msg("brawler upsert rolled back")
		return nil, err
	}

	row, err := r.queries.GetBrawler(ctx, brawlerID)
	if err != nil {
		return nil, err
	}
	return r.load(ctx, row)
}

// upsert writes only the brawler's own columns.
func (r *BrawlerRepository) upsert(ctx context.Context, q *db.Queries, extID int64, name string, ts time.Time) (db.Brawler, error) {
	existing, err := q.FindBrawler(ctx, db.Eq("ext_id", extID))
	if isNotFound(err) {
		r.logger.Debug().Int64("ext_id", extID).Str("name", name).Msg("creating brawler")
		return q.InsertBrawler(ctx, db.InsertBrawlerParams{
			ExtID:     extID,
			Name:      name,
			CreatedAt: ts,
			UpdatedAt: ts,
		})
	}
	if err != nil {
		return db.Brawler{}, err
	}
	return q.UpdateBrawler(ctx, db.UpdateBrawlerParams{
		Name:      name,
		UpdatedAt: ts,
		ID:        existing.ID,
	})
}

func (r *BrawlerRepository) load(ctx context.Context, row db.Brawler) (*domain.Brawler, error) {
	b := brawlerFromRow(row)

	accessories, err := r.queries.ListAccessoriesByBrawler(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	starPowers, err := r.queries.ListStarPowersByBrawler(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	b.Accessories = mapRows(accessories, accessoryFromRow)
	b.StarPowers = mapRows(starPowers, starPowerFromRow)
	return &b, nil
}
