package votes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/iapapers/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) IsMarked(ctx context.Context, key string) (bool, error) {
	ok, err := isMarked(ctx, r.db, key)
	if err != nil {
		return false, fmt.Errorf("failed to get marker[%s]: %w", key, err)
	}
	return ok, nil
}

func isMarked(ctx context.Context, q dbx.DBTX, key string) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, `SELECT 1 FROM vote_markers WHERE key = ?`, key).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *SQLiteRepository) Mark(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		exists, err := isMarked(ctx, tx, key)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyMarked
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO vote_markers (key, value, created_at) VALUES (?, ?, ?)`,
			key, value, time.Now().UTC())
		return err
	})
	if errors.Is(err, ErrAlreadyMarked) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to set marker[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM vote_markers ORDER BY created_at, key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list markers: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan marker row: %w", err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate marker rows: %w", err)
	}

	return result, nil
}
