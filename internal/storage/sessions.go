package storage

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julialegal/brujula/internal/common"
	"github.com/julialegal/brujula/internal/model"
)

// SaveSession inserts a new session. A session without an ID gets one
// assigned; the assigned ID is written back to the passed session.
func (s *SQLiteStorage) SaveSession(ctx context.Context, session *model.Session) error {
	if session == nil {
		return fmt.Errorf("session cannot be nil")
	}
	if session.ID == "" {
		id, err := newSessionID()
		if err != nil {
			return err
		}
		session.ID = id
	}

	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	profileJSON, err := json.Marshal(session.Profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	classificationJSON, err := json.Marshal(session.Classification)
	if err != nil {
		return fmt.Errorf("failed to encode classification: %w", err)
	}

	var analysisJSON sql.NullString
	if session.Analysis != nil {
		raw, marshalErr := json.Marshal(session.Analysis)
		if marshalErr != nil {
			return fmt.Errorf("failed to encode analysis: %w", marshalErr)
		}
		analysisJSON = sql.NullString{String: string(raw), Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, profile_json, flow_category, classification_json, analysis_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		session.ID, string(profileJSON), string(session.Classification.FlowCategory),
		string(classificationJSON), analysisJSON, now, now)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession loads one session by ID.
func (s *SQLiteStorage) GetSession(ctx context.Context, id string) (*model.Session, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, profile_json, classification_json, analysis_json, delivered_at, created_at, updated_at
		FROM sessions WHERE id = ?`, id)
	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	return session, nil
}

// ListSessions returns the most recent sessions, newest first.
func (s *SQLiteStorage) ListSessions(ctx context.Context, limit int) ([]*model.Session, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, profile_json, classification_json, analysis_json, delivered_at, created_at, updated_at
		FROM sessions ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sessions []*model.Session
	for rows.Next() {
		session, scanErr := scanSession(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan session: %w", scanErr)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}
	return sessions, nil
}

// AttachAnalysis stores the generative analysis for an existing session.
func (s *SQLiteStorage) AttachAnalysis(ctx context.Context, id string, analysis *model.Analysis) error {
	if analysis == nil {
		return fmt.Errorf("analysis cannot be nil")
	}
	raw, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET analysis_json = ?, updated_at = ? WHERE id = ?`,
		string(raw), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to attach analysis: %w", err)
	}
	return requireOneRow(result, id)
}

// MarkDelivered records a successful webhook delivery.
func (s *SQLiteStorage) MarkDelivered(ctx context.Context, id string, at time.Time) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET delivered_at = ?, updated_at = ? WHERE id = ?`,
		at.UTC(), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to mark session delivered: %w", err)
	}
	return requireOneRow(result, id)
}

// ListUndelivered returns sessions with an analysis that never reached the
// webhook, oldest first so retries preserve submission order.
func (s *SQLiteStorage) ListUndelivered(ctx context.Context) ([]*model.Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, profile_json, classification_json, analysis_json, delivered_at, created_at, updated_at
		FROM sessions
		WHERE delivered_at IS NULL AND analysis_json IS NOT NULL
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list undelivered sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sessions []*model.Session
	for rows.Next() {
		session, scanErr := scanSession(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan session: %w", scanErr)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}
	return sessions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*model.Session, error) {
	var (
		session            model.Session
		profileJSON        string
		classificationJSON string
		analysisJSON       sql.NullString
		deliveredAt        sql.NullTime
	)
	err := row.Scan(&session.ID, &profileJSON, &classificationJSON,
		&analysisJSON, &deliveredAt, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(profileJSON), &session.Profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	if err := json.Unmarshal([]byte(classificationJSON), &session.Classification); err != nil {
		return nil, fmt.Errorf("failed to decode classification: %w", err)
	}
	if analysisJSON.Valid {
		var analysis model.Analysis
		if err := json.Unmarshal([]byte(analysisJSON.String), &analysis); err != nil {
			return nil, fmt.Errorf("failed to decode analysis: %w", err)
		}
		session.Analysis = &analysis
	}
	if deliveredAt.Valid {
		t := deliveredAt.Time
		session.DeliveredAt = &t
	}
	return &session, nil
}

func requireOneRow(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("session %s: %w", id, common.ErrNotFound)
	}
	return nil
}

func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
