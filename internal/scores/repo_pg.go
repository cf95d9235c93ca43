package scores

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"resumeiq-backend/internal/ats"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new score record.
func (r *PGRepo) Create(ctx context.Context, record Record) error {
	const query = `
INSERT INTO ats_scores (id, score, ai_assisted, resume_chars, result, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	resultPayload, err := json.Marshal(record.Result)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		record.ID,
		record.Score,
		record.AIAssisted,
		record.ResumeChars,
		resultPayload,
		record.CreatedAt,
	)
	return err
}

// GetByID returns a score record by ID.
func (r *PGRepo) GetByID(ctx context.Context, recordID string) (Record, error) {
	const query = `
SELECT id, score, ai_assisted, resume_chars, result, created_at
FROM ats_scores
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, recordID)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	return record, err
}

// List returns score records newest first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, score, ai_assisted, resume_chars, result, created_at
FROM ats_scores
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]Record, 0, limit)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var record Record
	var resultRaw []byte
	if err := row.Scan(
		&record.ID,
		&record.Score,
		&record.AIAssisted,
		&record.ResumeChars,
		&resultRaw,
		&record.CreatedAt,
	); err != nil {
		return Record{}, err
	}
	if len(resultRaw) > 0 {
		var result ats.Result
		if err := json.Unmarshal(resultRaw, &result); err != nil {
			return Record{}, err
		}
		record.Result = result
	}
	return record, nil
}

var _ Repo = (*PGRepo)(nil)
