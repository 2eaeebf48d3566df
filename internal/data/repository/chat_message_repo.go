package repository

import (
	"context"
	"fmt"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"

	"go.uber.org/zap"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindBySession(ctx context.Context, sessionRef string, limit, offset int) ([]*entity.ChatMessage, error)
}

type chatMessageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewChatMessageRepository(db database.PgxIface, log *zap.Logger) ChatMessageRepository {
	return &chatMessageRepository{
		db:  db,
		log: log.With(zap.String("repository", "chat_message")),
	}
}

func (mr *chatMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (
			id, session_id, sender_type, message_type,
			content, metadata, is_read, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	metadata, err := marshalBlob(message.Metadata)
	if err != nil {
		return err
	}

	_, err = mr.db.Exec(ctx, query,
		message.ID,
		message.SessionID,
		message.SenderType,
		message.MessageType,
		message.Content,
		metadata,
		message.IsRead,
		message.CreatedAt,
	)

	if err != nil {
		mr.log.Error("Failed to create chat message",
			zap.Error(err),
			zap.String("session_id", message.SessionID),
			zap.String("sender_type", string(message.SenderType)),
		)
		return fmt.Errorf("create chat message in %s: %w", message.SessionID, err)
	}

	return nil
}

// FindBySession returns messages oldest first (chronological), paginated
func (mr *chatMessageRepository) FindBySession(ctx context.Context, sessionRef string, limit, offset int) ([]*entity.ChatMessage, error) {
	query := `
		SELECT id, session_id, sender_type, message_type,
		       content, metadata, is_read, created_at
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := mr.db.Query(ctx, query, sessionRef, limit, offset)
	if err != nil {
		mr.log.Error("Failed to query chat messages",
			zap.Error(err),
			zap.String("session_id", sessionRef),
		)
		return nil, fmt.Errorf("query messages for session %s: %w", sessionRef, err)
	}
	defer rows.Close()

	var messages []*entity.ChatMessage
	for rows.Next() {
		var message entity.ChatMessage
		var metadata []byte

		err := rows.Scan(
			&message.ID,
			&message.SessionID,
			&message.SenderType,
			&message.MessageType,
			&message.Content,
			&metadata,
			&message.IsRead,
			&message.CreatedAt,
		)
		if err != nil {
			mr.log.Error("Failed to scan message row", zap.Error(err))
			return nil, fmt.Errorf("scan message row: %w", err)
		}

		if err := unmarshalBlob(metadata, &message.Metadata); err != nil {
			return nil, err
		}

		messages = append(messages, &message)
	}

	if err := rows.Err(); err != nil {
		mr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate message rows: %w", err)
	}

	return messages, nil
}
