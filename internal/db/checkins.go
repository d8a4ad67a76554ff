package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/maya/wellspring/internal/types"
)

// CreateCheckIn stores a completed assessment session and returns its ID.
// Profile and insights are stored as JSONB.
func (db *DB) CreateCheckIn(ctx context.Context, c *CheckIn) (uuid.UUID, error) {
	profileJSON, err := json.Marshal(c.Profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal profile: %w", err)
	}
	insightsJSON, err := json.Marshal(c.Insights)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal insights: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO check_ins (user_id, mood, profile, insights, note)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		c.UserID, c.Mood, profileJSON, insightsJSON, c.Note,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create check-in: %w", err)
	}
	return id, nil
}

// GetCheckIn retrieves a check-in by ID. Returns nil without error when no
// check-in exists.
func (db *DB) GetCheckIn(ctx context.Context, id uuid.UUID) (*CheckIn, error) {
	var c CheckIn
	var profileJSON, insightsJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, mood, profile, insights, COALESCE(note, ''), created_at
		 FROM check_ins WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.UserID, &c.Mood, &profileJSON, &insightsJSON, &c.Note, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get check-in: %w", err)
	}

	if err := unmarshalCheckInPayload(&c, profileJSON, insightsJSON); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCheckIns retrieves a user's check-ins, newest first
func (db *DB) ListCheckIns(ctx context.Context, userID uuid.UUID, limit int) ([]CheckIn, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, mood, profile, insights, COALESCE(note, ''), created_at
		 FROM check_ins WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	var checkIns []CheckIn
	for rows.Next() {
		var c CheckIn
		var profileJSON, insightsJSON []byte
		if err := rows.Scan(&c.ID, &c.UserID, &c.Mood, &profileJSON, &insightsJSON, &c.Note, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		if err := unmarshalCheckInPayload(&c, profileJSON, insightsJSON); err != nil {
			return nil, err
		}
		checkIns = append(checkIns, c)
	}
	return checkIns, nil
}

// DeleteCheckIn deletes a check-in by ID
func (db *DB) DeleteCheckIn(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM check_ins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete check-in: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("check-in not found: %s", id)
	}
	return nil
}

func unmarshalCheckInPayload(c *CheckIn, profileJSON, insightsJSON []byte) error {
	if len(profileJSON) > 0 {
		if err := json.Unmarshal(profileJSON, &c.Profile); err != nil {
			return fmt.Errorf("failed to unmarshal check-in profile: %w", err)
		}
	}
	if len(insightsJSON) > 0 {
		var cards []types.InsightCard
		if err := json.Unmarshal(insightsJSON, &cards); err != nil {
			return fmt.Errorf("failed to unmarshal check-in insights: %w", err)
		}
		c.Insights = cards
	}
	return nil
}
