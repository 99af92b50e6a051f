package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/hospital-api/internal/model"
)

// table implements the record-store operations shared by every entity: each
// row has a text primary key "id" and a "created_at" column.
type table[T any] struct {
	BaseRepository
	name    string
	columns []string
}

func newTable[T any](base BaseRepository, name string, columns ...string) table[T] {
	return table[T]{BaseRepository: base, name: name, columns: columns}
}

func (t *table[T]) selectSQL() string {
	return "SELECT " + strings.Join(t.columns, ", ") + " FROM " + t.name
}

// qualified lists the columns prefixed with a table alias, for joins.
func (t *table[T]) qualified(alias string) string {
	cols := make([]string, len(t.columns))
	for i, c := range t.columns {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

func (t *table[T]) insertSQL() string {
	params := make([]string, len(t.columns))
	for i, c := range t.columns {
		params[i] = ":" + c
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.name, strings.Join(t.columns, ", "), strings.Join(params, ", "))
}

func (t *table[T]) updateSQL() string {
	sets := make([]string, 0, len(t.columns))
	for _, c := range t.columns {
		if c == "id" || c == "created_at" {
			continue
		}
		sets = append(sets, c+" = :"+c)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = :id", t.name, strings.Join(sets, ", "))
}

func (t *table[T]) op(name string) string {
	return t.name + "." + name
}

func (t *table[T]) Create(ctx context.Context, v *T) error {
	return t.WithTx(ctx, t.op("create"), func(tx *sqlx.Tx) error {
		return t.insertTx(ctx, tx, v)
	})
}

func (t *table[T]) insertTx(ctx context.Context, tx *sqlx.Tx, v *T) error {
	_, err := tx.NamedExecContext(ctx, t.insertSQL(), v)
	return err
}

func (t *table[T]) Get(ctx context.Context, id string) (*T, error) {
	var out *T
	err := t.WithTx(ctx, t.op("get"), func(tx *sqlx.Tx) error {
		var err error
		out, err = t.getTx(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (t *table[T]) getTx(ctx context.Context, tx *sqlx.Tx, id string) (*T, error) {
	var v T
	if err := tx.GetContext(ctx, &v, t.selectSQL()+" WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &v, nil
}

func (t *table[T]) List(ctx context.Context, page model.Page) ([]*T, error) {
	return t.selectPage(ctx, t.op("list"), t.selectSQL()+" ORDER BY created_at ASC", page)
}

// Update loads the row, applies mutate and writes every column back within
// one transaction.
func (t *table[T]) Update(ctx context.Context, id string, mutate func(*T)) (*T, error) {
	var out *T
	err := t.WithTx(ctx, t.op("update"), func(tx *sqlx.Tx) error {
		v, err := t.getTx(ctx, tx, id)
		if err != nil {
			return err
		}
		mutate(v)
		if _, err := tx.NamedExecContext(ctx, t.updateSQL(), v); err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the row; children go with it through ON DELETE CASCADE.
func (t *table[T]) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := t.WithTx(ctx, t.op("delete"), func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM "+t.name+" WHERE id = $1", id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		deleted = n > 0
		return nil
	})
	return deleted, err
}

// selectPage runs query with OFFSET/LIMIT placeholders appended after args.
func (t *table[T]) selectPage(ctx context.Context, operation, query string, page model.Page, args ...interface{}) ([]*T, error) {
	query = fmt.Sprintf("%s OFFSET $%d LIMIT $%d", query, len(args)+1, len(args)+2)
	args = append(args, page.Offset, page.Limit)
	return t.selectAll(ctx, operation, query, args...)
}

func (t *table[T]) selectAll(ctx context.Context, operation, query string, args ...interface{}) ([]*T, error) {
	out := []*T{}
	err := t.WithTx(ctx, operation, func(tx *sqlx.Tx) error {
		return tx.SelectContext(ctx, &out, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
