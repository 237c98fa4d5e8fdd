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

type AccessoryRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewAccessoryRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *AccessoryRepository {
	return &AccessoryRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// Find supports ID, ExtID and Name.
func (r *AccessoryRepository) Find(ctx context.Context, c Criteria) (*domain.Accessory, error) {
	row, err := r.queries.FindAccessory(ctx, c.predicates(colID, colExtID, colName)...)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a := accessoryFromRow(row)
	return &a, nil
}

func (r *AccessoryRepository) CreateOrUpdate(ctx context.Context, d dto.AccessoryDTO) (*domain.Accessory, error) {
	var row db.Accessory
	err := withTx(ctx, r.db, r.queries, func(q *db.Queries) error {
		var err error
		row, err = r.upsert(ctx, q, d, now())
		return err
	})
	if err != nil {
		return nil, err
	}
	a := accessoryFromRow(row)
	return &a, nil
}

func (r *AccessoryRepository) upsert(ctx context.Context, q *db.Queries, d dto.AccessoryDTO, ts time.Time) (db.Accessory, error) {
	existing, err := q.FindAccessory(ctx, db.Eq("ext_id", d.ExtID))
	if isNotFound(err) {
		r.logger.Debug().Int64("ext_id", d.ExtID).Msg("creating accessory")
		return q.InsertAccessory(ctx, db.InsertAccessoryParams{
			ExtID:     d.ExtID,
			Name:      d.Name,
			CreatedAt: ts,
			UpdatedAt: ts,
		})
	}
	if err != nil {
		return db.Accessory{}, err
	}
	return q.UpdateAccessory(ctx, db.UpdateAccessoryParams{
		Name:      d.Name,
		UpdatedAt: ts,
		ID:        existing.ID,
	})
}

// upsertAll returns the row ids of ds in order.
func (r *AccessoryRepository) upsertAll(ctx context.Context, q *db.Queries, ds []dto.AccessoryDTO, ts time.Time) ([]int64, error) {
	ids := make([]int64, 0, len(ds))
	for _, d := range ds {
		row, err := r.upsert(ctx, q, d, ts)
		if err != nil {
			return nil, err
		}
		ids = append(ids, row.ID)
	}
	return ids, nil
}
