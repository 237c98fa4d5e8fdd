package db

import (
	"context"
	"database/sql"
	"strings"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{
		db: tx,
	}
}

// Predicate is a single column filter used by the Find* queries.
// Column names always come from code, never from callers' input.
type Predicate struct {
	Column string
	Op     string
	Value  interface{}
}

func Eq(column string, value interface{}) Predicate {
	return Predicate{Column: column, Op: "=", Value: value}
}

// Like matches rows whose column contains value.
func Like(column, value string) Predicate {
	return Predicate{Column: column, Op: "LIKE", Value: "%" + value + "%"}
}

// findQuery appends a WHERE clause built from preds and picks the first row by id.
// With no predicates it returns the first row of the table.
func findQuery(base string, preds []Predicate) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(base)

	args := make([]interface{}, 0, len(preds))
	for i, p := range preds {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		sb.WriteString(p.Column)
		sb.WriteString(" ")
		sb.WriteString(p.Op)
		sb.WriteString(" ?")
		args = append(args, p.Value)
	}
	sb.WriteString(" ORDER BY id LIMIT 1")

	return sb.String(), args
}

func scanIDs(rows *sql.Rows) ([]int64, error) {
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
