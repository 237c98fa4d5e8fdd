package db

import (
	"context"
	"time"
)

type lookupRow struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func scanLookup(row interface{ Scan(...interface{}) error }) (lookupRow, error) {
	var i lookupRow
	err := row.Scan(&i.ID, &i.Name, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func (q *Queries) findLookup(ctx context.Context, table string, preds []Predicate) (lookupRow, error) {
	query, args := findQuery(`SELECT id, name, created_at, updated_at FROM `+table, preds)
	return scanLookup(q.db.QueryRowContext(ctx, query, args...))
}

func (q *Queries) getLookup(ctx context.Context, table string, id int64) (lookupRow, error) {
	return scanLookup(q.db.QueryRowContext(ctx, `SELECT id, name, created_at, updated_at FROM `+table+` WHERE id = ?`, id))
}

func (q *Queries) insertLookup(ctx context.Context, table, name string, now time.Time) (lookupRow, error) {
	row := q.db.QueryRowContext(ctx, `INSERT INTO `+table+` (name, created_at, updated_at) VALUES (?, ?, ?)
RETURNING id, name, created_at, updated_at`, name, now, now)
	return scanLookup(row)
}

func (q *Queries) touchLookup(ctx context.Context, table string, id int64, now time.Time) (lookupRow, error) {
	row := q.db.QueryRowContext(ctx, `UPDATE `+table+` SET updated_at = ? WHERE id = ?
RETURNING id, name, created_at, updated_at`, now, id)
	return scanLookup(row)
}

func (q *Queries) FindEventMap(ctx context.Context, preds ...Predicate) (EventMap, error) {
	r, err := q.findLookup(ctx, "event_maps", preds)
	return EventMap(r), err
}

func (q *Queries) GetEventMap(ctx context.Context, id int64) (EventMap, error) {
	r, err := q.getLookup(ctx, "event_maps", id)
	return EventMap(r), err
}

func (q *Queries) InsertEventMap(ctx context.Context, name string, now time.Time) (EventMap, error) {
	r, err := q.insertLookup(ctx, "event_maps", name, now)
	return EventMap(r), err
}

func (q *Queries) TouchEventMap(ctx context.Context, id int64, now time.Time) (EventMap, error) {
	r, err := q.touchLookup(ctx, "event_maps", id, now)
	return EventMap(r), err
}

func (q *Queries) FindEventMode(ctx context.Context, preds ...Predicate) (EventMode, error) {
	r, err := q.findLookup(ctx, "event_modes", preds)
	return EventMode(r), err
}

func (q *Queries) GetEventMode(ctx context.Context, id int64) (EventMode, error) {
	r, err := q.getLookup(ctx, "event_modes", id)
	return EventMode(r), err
}

func (q *Queries) InsertEventMode(ctx context.Context, name string, now time.Time) (EventMode, error) {
	r, err := q.insertLookup(ctx, "event_modes", name, now)
	return EventMode(r), err
}

func (q *Queries) TouchEventMode(ctx context.Context, id int64, now time.Time) (EventMode, error) {
	r, err := q.touchLookup(ctx, "event_modes", id, now)
	return EventMode(r), err
}

func (q *Queries) FindEventModifier(ctx context.Context, preds ...Predicate) (EventModifier, error) {
	r, err := q.findLookup(ctx, "event_modifiers", preds)
	return EventModifier(r), err
}

func (q *Queries) InsertEventModifier(ctx context.Context, name string, now time.Time) (EventModifier, error) {
	r, err := q.insertLookup(ctx, "event_modifiers", name, now)
	return EventModifier(r), err
}

func (q *Queries) TouchEventModifier(ctx context.Context, id int64, now time.Time) (EventModifier, error) {
	r, err := q.touchLookup(ctx, "event_modifiers", id, now)
	return EventModifier(r), err
}

const listModifiersByEvent = `SELECT m.id, m.name, m.created_at, m.updated_at
FROM event_modifiers m
JOIN event_event_modifiers em ON em.event_modifier_id = m.id
WHERE em.event_id = ?
ORDER BY m.name`

func (q *Queries) ListModifiersByEvent(ctx context.Context, eventID int64) ([]EventModifier, error) {
	rows, err := q.db.QueryContext(ctx, listModifiersByEvent, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []EventModifier
	for rows.Next() {
		r, err := scanLookup(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, EventModifier(r))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const eventColumns = `SELECT id, ext_id, map_id, mode_id, created_at, updated_at FROM events`

func scanEvent(row interface{ Scan(...interface{}) error }) (Event, error) {
	var i Event
	err := row.Scan(&i.ID, &i.ExtID, &i.MapID, &i.ModeID, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func (q *Queries) FindEvent(ctx context.Context, preds ...Predicate) (Event, error) {
	query, args := findQuery(eventColumns, preds)
	return scanEvent(q.db.QueryRowContext(ctx, query, args...))
}

func (q *Queries) GetEvent(ctx context.Context, id int64) (Event, error) {
	return scanEvent(q.db.QueryRowContext(ctx, eventColumns+` WHERE id = ?`, id))
}

const insertEvent = `INSERT INTO events (ext_id, map_id, mode_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id, ext_id, map_id, mode_id, created_at, updated_at`

type InsertEventParams struct {
	ExtID     int64
	MapID     int64
	ModeID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) InsertEvent(ctx context.Context, arg InsertEventParams) (Event, error) {
	row := q.db.QueryRowContext(ctx, insertEvent, arg.ExtID, arg.MapID, arg.ModeID, arg.CreatedAt, arg.UpdatedAt)
	return scanEvent(row)
}

const updateEvent = `UPDATE events SET map_id = ?, mode_id = ?, updated_at = ? WHERE id = ?
RETURNING id, ext_id, map_id, mode_id, created_at, updated_at`

type UpdateEventParams struct {
	MapID     int64
	ModeID    int64
	UpdatedAt time.Time
	ID        int64
}

func (q *Queries) UpdateEvent(ctx context.Context, arg UpdateEventParams) (Event, error) {
	row := q.db.QueryRowContext(ctx, updateEvent, arg.MapID, arg.ModeID, arg.UpdatedAt, arg.ID)
	return scanEvent(row)
}

const attachEventModifier = `INSERT OR IGNORE INTO event_event_modifiers (event_id, event_modifier_id) VALUES (?, ?)`

func (q *Queries) AttachEventModifier(ctx context.Context, eventID, modifierID int64) error {
	_, err := q.db.ExecContext(ctx, attachEventModifier, eventID, modifierID)
	return err
}

const detachEventModifier = `DELETE FROM event_event_modifiers WHERE event_id = ? AND event_modifier_id = ?`

func (q *Queries) DetachEventModifier(ctx context.Context, eventID, modifierID int64) error {
	_, err := q.db.ExecContext(ctx, detachEventModifier, eventID, modifierID)
	return err
}

const listEventModifierIDs = `SELECT event_modifier_id FROM event_event_modifiers WHERE event_id = ? ORDER BY event_modifier_id`

func (q *Queries) ListEventModifierIDs(ctx context.Context, eventID int64) ([]int64, error) {
	rows, err := q.db.QueryContext(ctx, listEventModifierIDs, eventID)
	if err != nil {
		return nil, err
	}
	return scanIDs(rows)
}
