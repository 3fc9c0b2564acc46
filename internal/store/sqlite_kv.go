package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type SQLiteKV struct {
	db *sqlx.DB
}

const (
	getRecordQuery = "SELECT data FROM records WHERE record_key = ?"
	putRecordQuery = `
		INSERT INTO records (record_key, data) VALUES (?, ?)
		ON CONFLICT(record_key) DO UPDATE SET
		data = excluded.data,
		updated_at = CURRENT_TIMESTAMP
	`
	deleteRecordQuery = "DELETE FROM records WHERE record_key = ?"
	listRecordsQuery  = `
		SELECT data FROM records
		WHERE substr(record_key, 1, ?) = ?
		ORDER BY record_key ASC
	`
)

func NewSQLiteKV(db *sqlx.DB) *SQLiteKV {
	return &SQLiteKV{db: db}
}

func (s *SQLiteKV) Get(ctx context.Context, key string) ([]byte, error) {
	var data string
	err := s.db.GetContext(ctx, &data, getRecordQuery, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

func (s *SQLiteKV) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, putRecordQuery, key, string(value))
	return err
}

func (s *SQLiteKV) Delete(ctx context.Context, key string) error {
	res, err := s.db.ExecContext(ctx, deleteRecordQuery, key)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteKV) List(ctx context.Context, prefix string) ([][]byte, error) {
	var rows []string
	// substr instead of LIKE, the "_" in our prefixes is a LIKE wildcard
	if err := s.db.SelectContext(ctx, &rows, listRecordsQuery, len(prefix), prefix); err != nil {
		return nil, err
	}
	values := make([][]byte, 0, len(rows))
	for _, r := range rows {
		values = append(values, []byte(r))
	}
	return values, nil
}
