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

// EventMapRepository, EventModeRepository and EventModifierRepository hold
// the name lookups an event refers to. Their identity is the exact name.

type EventMapRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewEventMapRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *EventMapRepository {
	return &EventMapRepository{queries: queries, db: sqlDB, logger: logger}
}

// Find supports ID and Name.
func (r *EventMapRepository) Find(ctx context.Context, c Criteria) (*domain.EventMap, error) {
	row, err := r.queries.FindEventMap(ctx, c.predicates(colID, colName)...)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m := eventMapFromRow(row)
	return &m, nil
}

func (r *EventMapRepository) CreateOrUpdate(ctx context.Context, name string) (*domain.EventMap, error) {
	var row db.EventMap
	err := withTx(ctx, r.db, r.queries, func(q *db.Queries) error {
		var err error
		row, err = r.upsert(ctx, q, name, now())
		return err
	})
	if err != nil {
		return nil, err
	}
	m := eventMapFromRow(row)
	return &m, nil
}

func (r *EventMapRepository) upsert(ctx context.Context, q *db.Queries, name string, ts time.Time) (db.EventMap, error) {
	existing, err := q.FindEventMap(ctx, db.Eq("name", name))
	if isNotFound(err) {
		r.logger.Debug().Str("name", name).Msg("creating event map")
		return q.InsertEventMap(ctx, name, ts)
	}
	if err != nil {
		return db.EventMap{}, err
	}
	return q.TouchEventMap(ctx, existing.ID, ts)
}

type EventModeRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewEventModeRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *EventModeRepository {
	return &EventModeRepository{queries: queries, db: sqlDB, logger: logger}
}

// Find supports ID and Name.
func (r *EventModeRepository) Find(ctx context.Context, c Criteria) (*domain.EventMode, error) {
	row, err := r.queries.FindEventMode(ctx, c.predicates(colID, colName)...)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m := eventModeFromRow(row)
	return &m, nil
}

func (r *EventModeRepository) CreateOrUpdate(ctx context.Context, name string) (*domain.EventMode, error) {
	var row db.EventMode
	err := withTx(ctx, r.db, r.queries, func(q *db.Queries) error {
		var err error
		row, err = r.upsert(ctx, q, name, now())
		return err
	})
	if err != nil {
		return nil, err
	}
	m := eventModeFromRow(row)
	return &m, nil
}

func (r *EventModeRepository) upsert(ctx context.Context, q *db.Queries, name string, ts time.Time) (db.EventMode, error) {
	existing, err := q.FindEventMode(ctx, db.Eq("name", name))
	if isNotFound(err) {
		r.logger.Debug().Str("name", name).Msg("creating event mode")
		return q.InsertEventMode(ctx, name, ts)
	}
	if err != nil {
		return db.EventMode{}, err
	}
	return q.TouchEventMode(ctx, existing.ID, ts)
}

type EventModifierRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewEventModifierRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *EventModifierRepository {
	return &EventModifierRepository{queries: queries, db: sqlDB, logger: logger}
}

// Find supports ID and Name.
func (r *EventModifierRepository) Find(ctx context.Context, c Criteria) (*domain.EventModifier, error) {
	row, err := r.queries.FindEventModifier(ctx, c.predicates(colID, colName)...)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m := eventModifierFromRow(row)
	return &m, nil
}

func (r *EventModifierRepository) CreateOrUpdate(ctx context.Context, name string) (*domain.EventModifier, error) {
	var row db.EventModifier
	err := withTx(ctx, r.db, r.queries, func(q *db.Queries) error {
		var err error
		row, err = r.upsert(ctx, q, name, now())
		return err
	})
	if err != nil {
		return nil, err
	}
	m := eventModifierFromRow(row)
	return &m, nil
}

func (r *EventModifierRepository) upsert(ctx context.Context, q *db.Queries, name string, ts time.Time) (db.EventModifier, error) {
	existing, err := q.FindEventModifier(ctx, db.Eq("name", name))
	if isNotFound(err) {
		r.logger.Debug().Str("name", name).Msg("creating event modifier")
		return q.InsertEventModifier(ctx, name, ts)
	}
	if err != nil {
		return db.EventModifier{}, err
	}
	return q.TouchEventModifier(ctx, existing.ID, ts)
}

type EventRepository struct {
	queries   *db.Queries
	db        *sql.DB
	logger    zerolog.Logger
	maps      *EventMapRepository
	modes     *EventModeRepository
	modifiers *EventModifierRepository
}

func NewEventRepository(
	sqlDB *sql.DB,
	queries *db.Queries,
	logger zerolog.Logger,
	maps *EventMapRepository,
	modes *EventModeRepository,
	modifiers *EventModifierRepository,
) *EventRepository {
	return &EventRepository{
		queries:   queries,
		db:        sqlDB,
		logger:    logger,
		maps:      maps,
		modes:     modes,
		modifiers: modifiers,
	}
}

// Find supports ID and ExtID, the upstream event id.
func (r *EventRepository) Find(ctx context.Context, c Criteria) (*domain.Event, error) {
	row, err := r.queries.FindEvent(ctx, c.predicates(colID, colExtID)...)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.load(ctx, row)
}

func (r *EventRepository) CreateOrUpdate(ctx context.Context, d dto.EventDTO) (*domain.Event, error) {
	var eventID int64
	err := withTx(ctx, r.db, r.queries, func(q *db.Queries) error {
		row, err := r.upsert(ctx, q, d, now())
		if err != nil {
			return err
		}
		eventID = row.ID
		return nil
	})
	if err != nil {
		r.logger.Debug().Err(err).Int64("ext_id", d.ExtID).Msg("event upsert rolled back")
		return nil, err
	}

	row, err := r.queries.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return r.load(ctx, row)
}

// upsert resolves map and mode, writes the event row and reconciles its
// modifiers. It runs inside the caller's transaction.
func (r *EventRepository) upsert(ctx context.Context, q *db.Queries, d dto.EventDTO, ts time.Time) (db.Event, error) {
	eventMap, err := r.maps.upsert(ctx, q, d.Map, ts)
	if err != nil {
		return db.Event{}, err
	}
	mode, err := r.modes.upsert(ctx, q, d.Mode, ts)
	if err != nil {
		return db.Event{}, err
	}

	var row db.Event
	existing, err := q.FindEvent(ctx, db.Eq("ext_id", d.ExtID))
	switch {
	case isNotFound(err):
		r.logger.Debug().Int64("ext_id", d.ExtID).Msg("creating event")
		row, err = q.InsertEvent(ctx, db.InsertEventParams{
			ExtID:     d.ExtID,
			MapID:     eventMap.ID,
			ModeID:    mode.ID,
			CreatedAt: ts,
			UpdatedAt: ts,
		})
	case err == nil:
		row, err = q.UpdateEvent(ctx, db.UpdateEventParams{
			MapID:     eventMap.ID,
			ModeID:    mode.ID,
			UpdatedAt: ts,
			ID:        existing.ID,
		})
	}
	if err != nil {
		return db.Event{}, err
	}

	modifierIDs := make([]int64, 0, len(d.Modifiers))
	for _, name := range d.Modifiers {
		m, err := r.modifiers.upsert(ctx, q, name, ts)
		if err != nil {
			return db.Event{}, err
		}
		modifierIDs = append(modifierIDs, m.ID)
	}

	modifiers := pivot{
		list: func(ctx context.Context) ([]int64, error) {
			return q.ListEventModifierIDs(ctx, row.ID)
		},
		attach: func(ctx context.Context, id int64) error {
			return q.AttachEventModifier(ctx, row.ID, id)
		},
		detach: func(ctx context.Context, id int64) error {
			return q.DetachEventModifier(ctx, row.ID, id)
		},
	}
	if err := modifiers.sync(ctx, modifierIDs); err != nil {
		return db.Event{}, err
	}
	return row, nil
}

func (r *EventRepository) load(ctx context.Context, row db.Event) (*domain.Event, error) {
	eventMap, err := r.queries.GetEventMap(ctx, row.MapID)
	if err != nil {
		return nil, err
	}
	mode, err := r.queries.GetEventMode(ctx, row.ModeID)
	if err != nil {
		return nil, err
	}
	modifiers, err := r.queries.ListModifiersByEvent(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	return &domain.Event{
		ID:        row.ID,
		ExtID:     row.ExtID,
		Map:       eventMapFromRow(eventMap),
		Mode:      eventModeFromRow(mode),
		Modifiers: mapRows(modifiers, eventModifierFromRow),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
