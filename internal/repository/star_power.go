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

type StarPowerRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewStarPowerRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *StarPowerRepository {
	return &StarPowerRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// Find supports ID, ExtID and Name.
func (r *StarPowerRepository) Find(ctx context.Context, c Criteria) (*domain.StarPower, error) {
	row, err := r.queries.FindStarPower(ctx, c.predicates(colID, colExtID, colName)...)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a := starPowerFromRow(row)
	return &a, nil
}

func (r *StarPowerRepository) CreateOrUpdate(ctx context.Context, d dto.StarPowerDTO) (*domain.StarPower, error) {
	var row db.StarPower
	err := withTx(ctx, r.db, r.queries, func(q *db.Queries) error {
		var err error
		row, err = r.upsert(ctx, q, d, now())
		return err
	})
	if err != nil {
		return nil, err
	}
	a := starPowerFromRow(row)
	return &a, nil
}

func (r *StarPowerRepository) upsert(ctx context.Context, q *db.Queries, d dto.StarPowerDTO, ts time.Time) (db.StarPower, error) {
	existing, err := q.FindStarPower(ctx, db.Eq("ext_id", d.ExtID))
	if isNotFound(err) {
		r.logger.Debug().Int64("ext_id", d.ExtID).Msg("creating star power")
		return q.InsertStarPower(ctx, db.InsertStarPowerParams{
			ExtID:     d.ExtID,
			Name:      d.Name,
			CreatedAt: ts,
			UpdatedAt: ts,
		})
	}
	if err != nil {
		return db.StarPower{}, err
	}
	return q.UpdateStarPower(ctx, db.UpdateStarPowerParams{
		Name:      d.Name,
		UpdatedAt: ts,
		ID:        existing.ID,
	})
}

// upsertAll returns the row ids of ds in order.
func (r *StarPowerRepository) upsertAll(ctx context.Context, q *db.Queries, ds []dto.StarPowerDTO, ts time.Time) ([]int64, error) {
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
