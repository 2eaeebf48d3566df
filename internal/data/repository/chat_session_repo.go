package repository

import (
	"context"
	"fmt"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	FindByReference(ctx context.Context, sessionRef string) (*entity.ChatSession, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ChatSession, error)
	Close(ctx context.Context, sessionRef string, satisfaction *int, feedback *string) error
}

type chatSessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewChatSessionRepository(db database.PgxIface, log *zap.Logger) ChatSessionRepository {
	return &chatSessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "chat_session")),
	}
}

const sessionColumns = `
	id, session_id, user_id, session_type, status, priority,
	booking_reference, user_info, session_metadata, resolved_at,
	assigned_agent, satisfaction_rating, feedback, created_at, updated_at
`

func (cr *chatSessionRepository) Create(ctx context.Context, session *entity.ChatSession) error {
	query := `
		INSERT INTO chat_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	userInfo, err := marshalBlob(session.UserInfo)
	if err != nil {
		return err
	}
	metadata, err := marshalBlob(session.Metadata)
	if err != nil {
		return err
	}

	_, err = cr.db.Exec(ctx, query,
		session.ID,
		session.SessionID,
		session.UserID,
		session.SessionType,
		session.Status,
		session.Priority,
		session.BookingReference,
		userInfo,
		metadata,
		session.ResolvedAt,
		session.AssignedAgent,
		session.SatisfactionRating,
		session.Feedback,
		session.CreatedAt,
		session.UpdatedAt,
	)

	if err != nil {
		cr.log.Error("Failed to create chat session",
			zap.Error(err),
			zap.String("session_id", session.SessionID),
		)
		return fmt.Errorf("create chat session %s: %w", session.SessionID, err)
	}

	return nil
}

func (cr *chatSessionRepository) FindByReference(ctx context.Context, sessionRef string) (*entity.ChatSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM chat_sessions WHERE session_id = $1`

	row := cr.db.QueryRow(ctx, query, sessionRef)
	session, err := cr.scanRow(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find chat session",
			zap.Error(err),
			zap.String("session_id", sessionRef),
		)
		return nil, fmt.Errorf("find chat session %s: %w", sessionRef, err)
	}

	return session, nil
}

// FindByUserID returns a user's sessions newest first
func (cr *chatSessionRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ChatSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM chat_sessions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := cr.db.Query(ctx, query, userID)
	if err != nil {
		cr.log.Error("Failed to query user sessions",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("query sessions for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var sessions []*entity.ChatSession
	for rows.Next() {
		session, err := cr.scanRow(rows)
		if err != nil {
			cr.log.Error("Failed to scan session row", zap.Error(err))
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate session rows: %w", err)
	}

	return sessions, nil
}

// Close marks a session resolved. Idempotent: re-closing keeps the terminal
// state, and the first recorded rating and feedback win.
func (cr *chatSessionRepository) Close(ctx context.Context, sessionRef string, satisfaction *int, feedback *string) error {
	query := `
		UPDATE chat_sessions
		SET status = 'closed', resolved_at = NOW(),
		    satisfaction_rating = COALESCE(satisfaction_rating, $2),
		    feedback = COALESCE(feedback, $3),
		    updated_at = NOW()
		WHERE session_id = $1
	`

	result, err := cr.db.Exec(ctx, query, sessionRef, satisfaction, feedback)
	if err != nil {
		cr.log.Error("Failed to close chat session",
			zap.Error(err),
			zap.String("session_id", sessionRef),
		)
		return fmt.Errorf("close chat session %s: %w", sessionRef, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("chat session %s not found", sessionRef)
	}

	return nil
}

func (cr *chatSessionRepository) scanRow(row pgx.Row) (*entity.ChatSession, error) {
	var session entity.ChatSession
	var userInfo, metadata []byte

	err := row.Scan(
		&session.ID,
		&session.SessionID,
		&session.UserID,
		&session.SessionType,
		&session.Status,
		&session.Priority,
		&session.BookingReference,
		&userInfo,
		&metadata,
		&session.ResolvedAt,
		&session.AssignedAgent,
		&session.SatisfactionRating,
		&session.Feedback,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	session.UserInfo = entity.UserInfo{}
	if err := unmarshalBlob(userInfo, &session.UserInfo); err != nil {
		return nil, err
	}
	if err := unmarshalBlob(metadata, &session.Metadata); err != nil {
		return nil, err
	}

	return &session, nil
}
