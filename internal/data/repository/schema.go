package repository

import (
	"context"
	"fmt"

	"tourism-booking/pkg/database"

	"go.uber.org/zap"
)

// Bootstrap DDL, safe to run on every startup. Enumerations are plain text
// with CHECK constraints so re-running never conflicts with existing types.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		phone VARCHAR(50),
		role VARCHAR(20) NOT NULL DEFAULT 'user',
		avatar_url TEXT,
		is_email_verified BOOLEAN NOT NULL DEFAULT FALSE,
		address TEXT,
		emergency_contact VARCHAR(255),
		travel_history JSONB,
		preferences JSONB,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS packages (
		id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		type VARCHAR(20) NOT NULL
			CHECK (type IN ('adventure', 'nature', 'wildlife', 'cultural', 'religious')),
		duration INT NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		discounted_price NUMERIC(10,2),
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		rating NUMERIC(3,2) NOT NULL DEFAULT 0.0,
		review_count INT NOT NULL DEFAULT 0,
		images JSONB,
		location VARCHAR(255) NOT NULL,
		includes JSONB,
		difficulty VARCHAR(10) NOT NULL DEFAULT 'Easy'
			CHECK (difficulty IN ('Easy', 'Moderate', 'Hard')),
		group_size JSONB,
		availability JSONB,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_packages_type ON packages (type)`,
	`CREATE INDEX IF NOT EXISTS idx_packages_featured ON packages (featured)`,
	`CREATE INDEX IF NOT EXISTS idx_packages_active ON packages (is_active)`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		booking_id VARCHAR(255) UNIQUE NOT NULL,
		user_id UUID NOT NULL REFERENCES users (id),
		package_id UUID NOT NULL REFERENCES packages (id),
		travelers INT NOT NULL,
		travel_dates JSONB NOT NULL,
		total_amount NUMERIC(10,2) NOT NULL,
		payment_status VARCHAR(20) NOT NULL DEFAULT 'pending'
			CHECK (payment_status IN ('pending', 'completed', 'failed', 'refunded')),
		booking_status VARCHAR(20) NOT NULL DEFAULT 'pending'
			CHECK (booking_status IN ('confirmed', 'pending', 'cancelled', 'completed')),
		special_requests TEXT,
		payment_method VARCHAR(100),
		transaction_id VARCHAR(255),
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_package_id ON bookings (package_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings (booking_status)`,

	`CREATE TABLE IF NOT EXISTS chat_sessions (
		id UUID PRIMARY KEY,
		session_id VARCHAR(255) UNIQUE NOT NULL,
		user_id UUID NOT NULL,
		session_type VARCHAR(20) NOT NULL DEFAULT 'general'
			CHECK (session_type IN ('general', 'booking', 'support', 'complaint')),
		status VARCHAR(20) NOT NULL DEFAULT 'active'
			CHECK (status IN ('active', 'closed', 'pending', 'escalated')),
		priority VARCHAR(10) NOT NULL DEFAULT 'medium'
			CHECK (priority IN ('low', 'medium', 'high', 'urgent')),
		booking_reference VARCHAR(255),
		user_info JSONB,
		session_metadata JSONB,
		resolved_at TIMESTAMPTZ,
		assigned_agent VARCHAR(255),
		satisfaction_rating INT,
		feedback TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_sessions_user_id ON chat_sessions (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_sessions_status ON chat_sessions (status)`,

	`CREATE TABLE IF NOT EXISTS chat_messages (
		id UUID PRIMARY KEY,
		session_id VARCHAR(255) NOT NULL
			REFERENCES chat_sessions (session_id) ON DELETE CASCADE,
		sender_type VARCHAR(10) NOT NULL
			CHECK (sender_type IN ('user', 'bot', 'agent')),
		message_type VARCHAR(20) NOT NULL DEFAULT 'text'
			CHECK (message_type IN ('text', 'image', 'file', 'quick_reply', 'carousel')),
		content TEXT NOT NULL,
		metadata JSONB,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_messages_session_id ON chat_messages (session_id)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_messages_created_at ON chat_messages (created_at)`,

	`CREATE TABLE IF NOT EXISTS support_tickets (
		id UUID PRIMARY KEY,
		ticket_id VARCHAR(255) UNIQUE NOT NULL,
		user_id UUID NOT NULL,
		chat_session_id VARCHAR(255),
		category VARCHAR(20) NOT NULL
			CHECK (category IN ('booking', 'payment', 'technical', 'general', 'complaint')),
		subcategory VARCHAR(100),
		subject VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		priority VARCHAR(10) NOT NULL DEFAULT 'medium'
			CHECK (priority IN ('low', 'medium', 'high', 'urgent')),
		status VARCHAR(20) NOT NULL DEFAULT 'open'
			CHECK (status IN ('open', 'in_progress', 'resolved', 'closed', 'escalated')),
		assigned_to VARCHAR(255),
		department VARCHAR(50) NOT NULL DEFAULT 'customer_service',
		booking_reference VARCHAR(255),
		customer_info JSONB,
		resolution TEXT,
		resolution_time TIMESTAMPTZ,
		customer_satisfaction INT,
		feedback TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_support_tickets_user_id ON support_tickets (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_support_tickets_status ON support_tickets (status)`,

	`CREATE TABLE IF NOT EXISTS payment_conversations (
		id UUID PRIMARY KEY,
		conversation_id VARCHAR(255) UNIQUE NOT NULL,
		user_id UUID NOT NULL,
		booking_id UUID,
		payment_reference VARCHAR(255),
		conversation_type VARCHAR(20) NOT NULL
			CHECK (conversation_type IN ('payment_inquiry', 'refund_request', 'payment_issue')),
		amount_discussed NUMERIC(10,2),
		currency VARCHAR(10) NOT NULL DEFAULT 'INR',
		payment_method VARCHAR(100),
		transaction_id VARCHAR(255),
		status VARCHAR(20) NOT NULL DEFAULT 'open'
			CHECK (status IN ('open', 'resolved', 'escalated')),
		resolution_details TEXT,
		conversation_data JSONB,
		resolved_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payment_conversations_user_id ON payment_conversations (user_id)`,
}

// InitSchema creates all tables and indexes if they do not exist yet
func InitSchema(ctx context.Context, db database.PgxIface, log *zap.Logger) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			log.Error("Schema bootstrap statement failed", zap.Error(err))
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	log.Info("Database schema ready",
		zap.Strings("tables", []string{
			"users", "packages", "bookings",
			"chat_sessions", "chat_messages",
			"support_tickets", "payment_conversations",
		}))

	return nil
}
