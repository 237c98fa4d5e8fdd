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

type GearRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewGearRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *GearRepository {
	return &GearRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// Find supports ID, ExtID and Name.
func (r *GearRepository) Find(ctx context.Context, c Criteria) (*domain.Gear, error) {
	row, err := r.queries.FindGear(ctx, c.predicates(colID, colExtID, colName)...)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	g := gearFromRow(row)
	return &g, nil
}

func (r *GearRepository) CreateOrUpdate(ctx context.Context, d dto.GearDTO) (*domain.Gear, error) {
	var row db.Gear
	err := withTx(ctx, r.db, r.queries, func(q *db.Queries) error {
		var err error
		row, err = r.upsert(ctx, q, d, now())
		return err
	})
	if err != nil {
		return nil, err
	}
	g := gearFromRow(row)
	return &g, nil
}

func (r *GearRepository) upsert(ctx context.Context, q *db.Queries, d dto.GearDTO, ts time.Time) (db.Gear, error) {
	existing, err := q.FindGear(ctx, db.Eq("ext_id", d.ExtID))
	if isNotFound(err) {
		r.logger.Debug().Int64("ext_id", d.ExtID).Msg("creating gear")
		return q.InsertGear(ctx, db.InsertGearParams{
			ExtID:     d.ExtID,
			Name:      d.Name,
			Level:     d.Level,
			CreatedAt: ts,
			UpdatedAt: ts,
		})
	}
	if err != nil {
		return db.Gear{}, err
	}
	return q.UpdateGear(ctx, db.UpdateGearParams{
		Name:      d.Name,
		Level:     d.Level,
		UpdatedAt: ts,
		ID:        existing.ID,
	})
}

// upsertAll returns the row ids of ds in order.
func (r *GearRepository) upsertAll(ctx context.Context, q *db.Queries, ds []dto.GearDTO, ts time.Time) ([]int64, error) {
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
