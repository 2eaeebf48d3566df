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

type SupportTicketRepository interface {
	Create(ctx context.Context, ticket *entity.SupportTicket) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SupportTicket, error)
	FindByReference(ctx context.Context, ticketRef string) (*entity.SupportTicket, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.SupportTicket, error)
}

type supportTicketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSupportTicketRepository(db database.PgxIface, log *zap.Logger) SupportTicketRepository {
	return &supportTicketRepository{
		db:  db,
		log: log.With(zap.String("repository", "support_ticket")),
	}
}

const ticketColumns = `
	id, ticket_id, user_id, chat_session_id, category, subcategory,
	subject, description, priority, status, assigned_to, department,
	booking_reference, customer_info, resolution, resolution_time,
	customer_satisfaction, feedback, created_at, updated_at
`

func (tr *supportTicketRepository) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	query := `
		INSERT INTO support_tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	customerInfo, err := marshalBlob(ticket.CustomerInfo)
	if err != nil {
		return err
	}

	_, err = tr.db.Exec(ctx, query,
		ticket.ID,
		ticket.TicketID,
		ticket.UserID,
		ticket.ChatSessionID,
		ticket.Category,
		ticket.Subcategory,
		ticket.Subject,
		ticket.Description,
		ticket.Priority,
		ticket.Status,
		ticket.AssignedTo,
		ticket.Department,
		ticket.BookingReference,
		customerInfo,
		ticket.Resolution,
		ticket.ResolutionTime,
		ticket.Satisfaction,
		ticket.Feedback,
		ticket.CreatedAt,
		ticket.UpdatedAt,
	)

	if err != nil {
		tr.log.Error("Failed to create support ticket",
			zap.Error(err),
			zap.String("ticket_id", ticket.TicketID),
		)
		return fmt.Errorf("create support ticket %s: %w", ticket.TicketID, err)
	}

	return nil
}

// FindByUserID returns a user's tickets newest first
func (tr *supportTicketRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SupportTicket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM support_tickets
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := tr.db.Query(ctx, query, userID)
	if err != nil {
		tr.log.Error("Failed to query user tickets",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("query tickets for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var tickets []*entity.SupportTicket
	for rows.Next() {
		ticket, err := tr.scanRow(rows)
		if err != nil {
			tr.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		tr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate ticket rows: %w", err)
	}

	return tickets, nil
}

// FindAll pages through every ticket newest first, for the agent queue
func (tr *supportTicketRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.SupportTicket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM support_tickets
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := tr.db.Query(ctx, query, limit, offset)
	if err != nil {
		tr.log.Error("Failed to query ticket queue", zap.Error(err))
		return nil, fmt.Errorf("query ticket queue: %w", err)
	}
	defer rows.Close()

	var tickets []*entity.SupportTicket
	for rows.Next() {
		ticket, err := tr.scanRow(rows)
		if err != nil {
			tr.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		tr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate ticket rows: %w", err)
	}

	return tickets, nil
}

func (tr *supportTicketRepository) FindByReference(ctx context.Context, ticketRef string) (*entity.SupportTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM support_tickets WHERE ticket_id = $1`

	row := tr.db.QueryRow(ctx, query, ticketRef)
	ticket, err := tr.scanRow(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find support ticket",
			zap.Error(err),
			zap.String("ticket_id", ticketRef),
		)
		return nil, fmt.Errorf("find support ticket %s: %w", ticketRef, err)
	}

	return ticket, nil
}

func (tr *supportTicketRepository) scanRow(row pgx.Row) (*entity.SupportTicket, error) {
	var ticket entity.SupportTicket
	var customerInfo []byte

	err := row.Scan(
		&ticket.ID,
		&ticket.TicketID,
		&ticket.UserID,
		&ticket.ChatSessionID,
		&ticket.Category,
		&ticket.Subcategory,
		&ticket.Subject,
		&ticket.Description,
		&ticket.Priority,
		&ticket.Status,
		&ticket.AssignedTo,
		&ticket.Department,
		&ticket.BookingReference,
		&customerInfo,
		&ticket.Resolution,
		&ticket.ResolutionTime,
		&ticket.Satisfaction,
		&ticket.Feedback,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	ticket.CustomerInfo = entity.UserInfo{}
	if err := unmarshalBlob(customerInfo, &ticket.CustomerInfo); err != nil {
		return nil, err
	}

	return &ticket, nil
}
