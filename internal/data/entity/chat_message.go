package entity

type SenderType string

const (
	SenderUser  SenderType = "user"
	SenderBot   SenderType = "bot"
	SenderAgent SenderType = "agent"
)

type MessageType string

const (
	MessageText       MessageType = "text"
	MessageImage      MessageType = "image"
	MessageFile       MessageType = "file"
	MessageQuickReply MessageType = "quick_reply"
	MessageCarousel   MessageType = "carousel"
)

// ChatMessage is one turn in a session, immutable after creation. Messages
// cascade-delete with their session.
type ChatMessage struct {
	BaseSimple
	SessionID   string          `db:"session_id"` // chat_sessions business key
	SenderType  SenderType      `db:"sender_type"`
	MessageType MessageType     `db:"message_type"`
	Content     string          `db:"content"`
	Metadata    MessageMetadata `db:"metadata"`
	IsRead      bool            `db:"is_read"`
}
