// Package sqlstore persists entity records in a single SQL table through
// sqlx. The same queries serve Postgres (pgx) and SQLite (modernc).
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/jmoiron/sqlx"
)

var _ entity.Backend = (*Store)(nil)

type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

const schema = `
CREATE TABLE IF NOT EXISTS entity_records (
    kind       TEXT   NOT NULL,
    id         TEXT   NOT NULL,
    payload    TEXT   NOT NULL,
    updated_at BIGINT NOT NULL,
    PRIMARY KEY (kind, id)
)`

const upsertQuery = `
INSERT INTO entity_records (kind, id, payload, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (kind, id)
DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`

type recordRow struct {
	ID      string `db:"id"`
	Payload string `db:"payload"`
}

type Store struct {
	DB      *sqlx.DB
	dialect Dialect
	now     func() time.Time
}

func NewStore(db *sqlx.DB, dialect Dialect) *Store {
	return &Store{DB: db, dialect: dialect, now: time.Now}
}

// Migrate creates the records table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create entity_records: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, kind, id string) ([]byte, error) {
	return get(ctx, s.DB, kind, id, "")
}

func (s *Store) Put(ctx context.Context, kind, id string, payload []byte) error {
	if id == "" {
		return entity.ErrEmptyID
	}
	return put(ctx, s.DB, kind, id, payload, s.now())
}

func (s *Store) Delete(ctx context.Context, kind, id string) (bool, error) {
	return del(ctx, s.DB, kind, id)
}

func (s *Store) List(ctx context.Context, kind, cursor string, limit int) (entity.RawPage, error) {
	query := `SELECT id, payload FROM entity_records WHERE kind = ? AND id > ? ORDER BY id`
	args := []interface{}{kind, cursor}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit+1)
	}

	var rows []recordRow
	if err := s.DB.SelectContext(ctx, &rows, s.DB.Rebind(query), args...); err != nil {
		return entity.RawPage{}, fmt.Errorf("list %s: %w", kind, err)
	}

	page := entity.RawPage{Records: make([]entity.RawRecord, 0, len(rows))}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
		page.Next = rows[len(rows)-1].ID
	}
	for _, r := range rows {
		page.Records = append(page.Records, entity.RawRecord{ID: r.ID, Payload: []byte(r.Payload)})
	}
	return page, nil
}

func (s *Store) Count(ctx context.Context, kind string) (int, error) {
	var n int
	query := s.DB.Rebind(`SELECT count(*) FROM entity_records WHERE kind = ?`)
	if err := s.DB.GetContext(ctx, &n, query, kind); err != nil {
		return 0, fmt.Errorf("count %s: %w", kind, err)
	}
	return n, nil
}

func (s *Store) Clear(ctx context.Context, kind string) error {
	_, err := s.DB.ExecContext(ctx, s.DB.Rebind(`DELETE FROM entity_records WHERE kind = ?`), kind)
	return err
}

func (s *Store) Reset(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM entity_records`)
	return err
}

// Update runs fn inside a database transaction. On Postgres every read in
// the transaction takes a row lock.
func (s *Store) Update(ctx context.Context, fn func(tx entity.Tx) error) error {
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lock := ""
	if s.dialect == Postgres {
		lock = " FOR UPDATE"
	}
	if err := fn(&sqlTx{ctx: ctx, tx: tx, lock: lock, now: s.now()}); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Ping(ctx context.Context) error { return s.DB.PingContext(ctx) }

func (s *Store) Close() error { return s.DB.Close() }

type sqlTx struct {
	ctx  context.Context
	tx   *sqlx.Tx
	lock string
	now  time.Time
}

func (t *sqlTx) Get(kind, id string) ([]byte, error) {
	return get(t.ctx, t.tx, kind, id, t.lock)
}

func (t *sqlTx) Put(kind, id string, payload []byte) error {
	if id == "" {
		return entity.ErrEmptyID
	}
	return put(t.ctx, t.tx, kind, id, payload, t.now)
}

func (t *sqlTx) Delete(kind, id string) (bool, error) {
	return del(t.ctx, t.tx, kind, id)
}

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx.
type queryer interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func get(ctx context.Context, q queryer, kind, id, suffix string) ([]byte, error) {
	var payload string
	query := q.Rebind(`SELECT payload FROM entity_records WHERE kind = ? AND id = ?` + suffix)
	if err := q.GetContext(ctx, &payload, query, kind, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", kind, id, err)
	}
	return []byte(payload), nil
}

func put(ctx context.Context, q queryer, kind, id string, payload []byte, now time.Time) error {
	if _, err := q.ExecContext(ctx, q.Rebind(upsertQuery), kind, id, string(payload), now.UnixMilli()); err != nil {
		return fmt.Errorf("upsert %s/%s: %w", kind, id, err)
	}
	return nil
}

func del(ctx context.Context, q queryer, kind, id string) (bool, error) {
	res, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM entity_records WHERE kind = ? AND id = ?`), kind, id)
	if err != nil {
		return false, fmt.Errorf("delete %s/%s: %w", kind, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
