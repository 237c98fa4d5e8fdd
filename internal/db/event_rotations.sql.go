package db

import (
	"context"
	"time"
)

const slotColumns = `SELECT id, position, created_at, updated_at FROM event_rotation_slots`

func scanSlot(row interface{ Scan(...interface{}) error }) (EventRotationSlot, error) {
	var i EventRotationSlot
	err := row.Scan(&i.ID, &i.Position, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func (q *Queries) FindEventRotationSlot(ctx context.Context, preds ...Predicate) (EventRotationSlot, error) {
	query, args := findQuery(slotColumns, preds)
	return scanSlot(q.db.QueryRowContext(ctx, query, args...))
}

func (q *Queries) GetEventRotationSlot(ctx context.Context, id int64) (EventRotationSlot, error) {
	return scanSlot(q.db.QueryRowContext(ctx, slotColumns+` WHERE id = ?`, id))
}

const insertSlot = `INSERT INTO event_rotation_slots (position, created_at, updated_at) VALUES (?, ?, ?)
RETURNING id, position, created_at, updated_at`

func (q *Queries) InsertEventRotationSlot(ctx context.Context, position int64, now time.Time) (EventRotationSlot, error) {
	return scanSlot(q.db.QueryRowContext(ctx, insertSlot, position, now, now))
}

const touchSlot = `UPDATE event_rotation_slots SET updated_at = ? WHERE id = ?
RETURNING id, position, created_at, updated_at`

func (q *Queries) TouchEventRotationSlot(ctx context.Context, id int64, now time.Time) (EventRotationSlot, error) {
	return scanSlot(q.db.QueryRowContext(ctx, touchSlot, now, id))
}

const rotationColumns = `SELECT id, event_id, slot_id, start_time, end_time, created_at, updated_at FROM event_rotations`

func scanRotation(row interface{ Scan(...interface{}) error }) (EventRotation, error) {
	var i EventRotation
	err := row.Scan(&i.ID, &i.EventID, &i.SlotID, &i.StartTime, &i.EndTime, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func (q *Queries) FindEventRotation(ctx context.Context, preds ...Predicate) (EventRotation, error) {
	query, args := findQuery(rotationColumns, preds)
	return scanRotation(q.db.QueryRowContext(ctx, query, args...))
}

const insertRotation = `INSERT INTO event_rotations (event_id, slot_id, start_time, end_time, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, event_id, slot_id, start_time, end_time, created_at, updated_at`

type InsertEventRotationParams struct {
	EventID   int64
	SlotID    int64
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) InsertEventRotation(ctx context.Context, arg InsertEventRotationParams) (EventRotation, error) {
	row := q.db.QueryRowContext(ctx, insertRotation,
		arg.EventID, arg.SlotID, arg.StartTime, arg.EndTime, arg.CreatedAt, arg.UpdatedAt)
	return scanRotation(row)
}

const updateRotation = `UPDATE event_rotations SET event_id = ?, updated_at = ? WHERE id = ?
RETURNING id, event_id, slot_id, start_time, end_time, created_at, updated_at`

type UpdateEventRotationParams struct {
	EventID   int64
	UpdatedAt time.Time
	ID        int64
}

func (q *Queries) UpdateEventRotation(ctx context.Context, arg UpdateEventRotationParams) (EventRotation, error) {
	return scanRotation(q.db.QueryRowContext(ctx, updateRotation, arg.EventID, arg.UpdatedAt, arg.ID))
}
