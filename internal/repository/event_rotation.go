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

type EventRotationSlotRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewEventRotationSlotRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *EventRotationSlotRepository {
	return &EventRotationSlotRepository{queries: queries, db: sqlDB, logger: logger}
}

// Find supports ID and Position.
func (r *EventRotationSlotRepository) Find(ctx context.Context, c Criteria) (*domain.EventRotationSlot, error) {
	row, err := r.queries.FindEventRotationSlot(ctx, c.predicates(colID, colPosition)...)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s := slotFromRow(row)
	return &s, nil
}

func (r *EventRotationSlotRepository) CreateOrUpdate(ctx context.Context, position int64) (*domain.EventRotationSlot, error) {
	var row db.EventRotationSlot
	err := withTx(ctx, r.db, r.queries, func(q *db.Queries) error {
		var err error
		row, err = r.upsert(ctx, q, position, now())
		return err
	})
	if err != nil {
		return nil, err
	}
	s := slotFromRow(row)
	return &s, nil
}

func (r *EventRotationSlotRepository) upsert(ctx context.Context, q *db.Queries, position int64, ts time.Time) (db.EventRotationSlot, error) {
	existing, err := q.FindEventRotationSlot(ctx, db.Eq("position", position))
	if isNotFound(err) {
		r.logger.Debug().Int64("position", position).Msg("creating event rotation slot")
		return q.InsertEventRotationSlot(ctx, position, ts)
	}
	if err != nil {
		return db.EventRotationSlot{}, err
	}
	return q.TouchEventRotationSlot(ctx, existing.ID, ts)
}

type EventRotationRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
	events  *EventRepository
	slots   *EventRotationSlotRepository
}

func NewEventRotationRepository(
	sqlDB *sql.DB,
	queries *db.Queries,
	logger zerolog.Logger,
	events *EventRepository,
	slots *EventRotationSlotRepository,
) *EventRotationRepository {
	return &EventRotationRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
		events:  events,
		slots:   slots,
	}
}

// Find supports ID only. Use FindByWindow for the natural key.
func (r *EventRotationRepository) Find(ctx context.Context, c Criteria) (*domain.EventRotation, error) {
	row, err := r.queries.FindEventRotation(ctx, c.predicates(colID)...)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.load(ctx, row)
}

// FindByWindow looks a rotation up by its identity: start, end and slot position.
func (r *EventRotationRepository) FindByWindow(ctx context.Context, start, end time.Time, position int64) (*domain.EventRotation, error) {
	slot, err := r.queries.FindEventRotationSlot(ctx, db.Eq("position", position))
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	row, err := r.queries.FindEventRotation(ctx, windowPredicates(start, end, slot.ID)...)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.load(ctx, row)
}

// CreateOrUpdate upserts the event and the slot, then the rotation keyed by
// (start, end, slot). An existing rotation is repointed at the event in d.
func (r *EventRotationRepository) CreateOrUpdate(ctx context.Context, d dto.EventRotationDTO) (*domain.EventRotation, error) {
	start, end := d.StartTime.UTC(), d.EndTime.UTC()

	var rotationID int64
	err := withTx(ctx, r.db, r.queries, func(q *db.Queries) error {
		ts := now()

		event, err := r.events.upsert(ctx, q, d.Event, ts)
		if err != nil {
			return err
		}
		slot, err := r.slots.upsert(ctx, q, d.Slot, ts)
		if err != nil {
			return err
		}

		existing, err := q.FindEventRotation(ctx, windowPredicates(start, end, slot.ID)...)
		if isNotFound(err) {
			r.logger.Debug().
				Time("start_time", start).
				Time("end_time", end).
				Int64("slot", d.Slot).
				Msg("creating event rotation")
			row, err := q.InsertEventRotation(ctx, db.InsertEventRotationParams{
				EventID:   event.ID,
				SlotID:    slot.ID,
				StartTime: start,
				EndTime:   end,
				CreatedAt: ts,
				UpdatedAt: ts,
			})
			rotationID = row.ID
			return err
		}
		if err != nil {
			return err
		}

		row, err := q.UpdateEventRotation(ctx, db.UpdateEventRotationParams{
			EventID:   event.ID,
			UpdatedAt: ts,
			ID:        existing.ID,
		})
		rotationID = row.ID
		return err
	})
	if err != nil {
		r.logger.Debug().Err(err).Int64("slot", d.Slot).Msg("event rotation upsert rolled back")
		return nil, err
	}

	row, err := r.queries.FindEventRotation(ctx, db.Eq("id", rotationID))
	if err != nil {
		return nil, err
	}
	return r.load(ctx, row)
}

func windowPredicates(start, end time.Time, slotID int64) []db.Predicate {
	return []db.Predicate{
		db.Eq("start_time", start.UTC()),
		db.Eq("end_time", end.UTC()),
		db.Eq("slot_id", slotID),
	}
}

func (r *EventRotationRepository) load(ctx context.Context, row db.EventRotation) (*domain.EventRotation, error) {
	eventRow, err := r.queries.GetEvent(ctx, row.EventID)
	if err != nil {
		return nil, err
	}
	event, err := r.events.load(ctx, eventRow)
	if err != nil {
		return nil, err
	}
	slot, err := r.queries.GetEventRotationSlot(ctx, row.SlotID)
	if err != nil {
		return nil, err
	}

	return &domain.EventRotation{
		ID:        row.ID,
		StartTime: row.StartTime.UTC(),
		EndTime:   row.EndTime.UTC(),
		Event:     *event,
		Slot:      slotFromRow(slot),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
