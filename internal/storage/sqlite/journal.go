package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/heraldbot/internal/core"
)

// JournalRepo persists dispatch passes. Implements core.Journal and
// core.JournalReader.
type JournalRepo struct {
	db *sql.DB
}

func NewJournalRepo(db *sql.DB) *JournalRepo {
	return &JournalRepo{db: db}
}

func (r *JournalRepo) Record(ctx context.Context, rec core.DispatchRecord) error {
	query := `INSERT INTO dispatches (conversation, message, outcome, detail) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, rec.Conversation, rec.Message, string(rec.Outcome), rec.Detail); err != nil {
		return fmt.Errorf("failed to insert dispatch record: %w", err)
	}
	return nil
}

// Recent returns the newest records for a conversation, newest first.
func (r *JournalRepo) Recent(ctx context.Context, conversation string, limit int) ([]core.DispatchRecord, error) {
	query := `
		SELECT conversation, message, outcome, detail, created_at
		FROM dispatches
		WHERE conversation = ?
		ORDER BY id DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, conversation, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query dispatch records: %w", err)
	}
	defer rows.Close()

	var recs []core.DispatchRecord
	for rows.Next() {
		var rec core.DispatchRecord
		var outcome string
		if err := rows.Scan(&rec.Conversation, &rec.Message, &outcome, &rec.Detail, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dispatch record: %w", err)
		}
		rec.Outcome = core.Outcome(outcome)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
