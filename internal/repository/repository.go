package repository

import (
	"brawlstats-sync/internal/db"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Criteria selects a row by any combination of its keys. Keys a repository
// does not support are ignored. Name matches as a substring, the others
// exactly. Empty criteria match the first row of the table.
type Criteria struct {
	ID       *int64
	ExtID    *int64
	Position *int64
	Tag      *string
	Name     *string
}

func ByID(id int64) Criteria { return Criteria{ID: &id} }
func ByExtID(extID int64) Criteria { return Criteria{ExtID: &extID} }
func ByPosition(position int64) Criteria { return Criteria{Position: &position} }
func ByTag(tag string) Criteria { return Criteria{Tag: &tag} }
func ByName(name string) Criteria { return Criteria{Name: &name} }

type column int

const (
	colID column = iota
	colExtID
	colPosition
	colTag
	colName
)

func (c Criteria) predicates(supported ...column) []db.Predicate {
	var preds []db.Predicate
	for _, col := range supported {
		switch {
		case col == colID && c.ID != nil:
			preds = append(preds, db.Eq("id", *c.ID))
		case col == colExtID && c.ExtID != nil:
			preds = append(preds, db.Eq("ext_id", *c.ExtID))
		case col == colPosition && c.Position != nil:
			preds = append(preds, db.Eq("position", *c.Position))
		case col == colTag && c.Tag != nil:
			preds = append(preds, db.Eq("tag", *c.Tag))
		case col == colName && c.Name != nil:
			preds = append(preds, db.Like("name", *c.Name))
		}
	}
	return preds
}

// withTx runs fn against queries bound to one transaction and commits when fn
// succeeds. Any error rolls the whole transaction back.
func withTx(ctx context.Context, sqlDB *sql.DB, queries *db.Queries, fn func(q *db.Queries) error) error {
	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(queries.WithTx(tx)); err != nil {
		return err
	}
	return tx.Commit()
}

// pivot is one many-to-many association owned by a parent row.
type pivot struct {
	list   func(ctx context.Context) ([]int64, error)
	attach func(ctx context.Context, id int64) error
	detach func(ctx context.Context, id int64) error
}

// sync makes the attached set equal want: every wanted id is attached, then
// every attached id not in want is detached. Children are never deleted.
func (p pivot) sync(ctx context.Context, want []int64) error {
	for _, id := range want {
		if err := p.attach(ctx, id); err != nil {
			return err
		}
	}

	current, err := p.list(ctx)
	if err != nil {
		return err
	}
	for _, id := range staleIDs(current, want) {
		if err := p.detach(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func staleIDs(current, want []int64) []int64 {
	keep := make(map[int64]struct{}, len(want))
	for _, id := range want {
		keep[id] = struct{}{}
	}

	var stale []int64
	for _, id := range current {
		if _, ok := keep[id]; !ok {
			stale = append(stale, id)
		}
	}
	return stale
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func now() time.Time {
	return time.Now().UTC()
}

func nullInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullBool(v *bool) sql.NullBool {
	if v == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func intPtr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func boolPtr(n sql.NullBool) *bool {
	if !n.Valid {
		return nil
	}
	v := n.Bool
	return &v
}

func strPtr(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	v := n.String
	return &v
}
