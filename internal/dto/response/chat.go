package response

import (
	"time"

	"tourism-booking/internal/data/entity"
)

type SessionResponse struct {
	ID                 string               `json:"id"`
	SessionID          string               `json:"session_id"`
	UserID             string               `json:"user_id"`
	SessionType        entity.SessionType   `json:"session_type"`
	Status             entity.SessionStatus `json:"status"`
	Priority           entity.Priority      `json:"priority"`
	BookingReference   *string              `json:"booking_reference,omitempty"`
	SatisfactionRating *int                 `json:"satisfaction_rating,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

type MessageResponse struct {
	ID          string             `json:"id"`
	SessionID   string             `json:"session_id"`
	SenderType  entity.SenderType  `json:"sender_type"`
	MessageType entity.MessageType `json:"message_type"`
	Text        string             `json:"text"`
	Metadata    MessageMetadata    `json:"metadata"`
	CreatedAt   time.Time          `json:"created_at"`
}

type MessageMetadata struct {
	AutoResponse bool              `json:"auto_response,omitempty"`
	Intent       string            `json:"intent,omitempty"`
	Entities     map[string]string `json:"entities,omitempty"`
}

// BotReplyResponse is the synchronous bot turn returned alongside the stored
// user message.
type BotReplyResponse struct {
	MessageResponse
	Intent       string   `json:"intent"`
	QuickReplies []string `json:"quick_replies"`
}

type PostMessageResponse struct {
	UserMessage MessageResponse   `json:"user_message"`
	BotResponse *BotReplyResponse `json:"bot_response,omitempty"`
}

type HistoryResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int               `json:"total"`
}

func SessionToResponse(s *entity.ChatSession) *SessionResponse {
	return &SessionResponse{
		ID:                 s.ID.String(),
		SessionID:          s.SessionID,
		UserID:             s.UserID.String(),
		SessionType:        s.SessionType,
		Status:             s.Status,
		Priority:           s.Priority,
		BookingReference:   s.BookingReference,
		SatisfactionRating: s.SatisfactionRating,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func SessionsToResponse(sessions []*entity.ChatSession) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, *SessionToResponse(s))
	}
	return out
}

func MessageToResponse(m *entity.ChatMessage) MessageResponse {
	return MessageResponse{
		ID:          m.ID.String(),
		SessionID:   m.SessionID,
		SenderType:  m.SenderType,
		MessageType: m.MessageType,
		Text:        m.Content,
		Metadata: MessageMetadata{
			AutoResponse: m.Metadata.AutoResponse,
			Intent:       m.Metadata.Intent,
			Entities:     m.Metadata.Entities,
		},
		CreatedAt: m.CreatedAt,
	}
}

func MessagesToResponse(messages []*entity.ChatMessage) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, MessageToResponse(m))
	}
	return out
}
