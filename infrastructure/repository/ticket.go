package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/tradelite-api/infrastructure/database/postgres"
	"github.com/vfg2006/tradelite-api/internal/domain"
)

const (
	ticketTable   = "tickets"
	ticketColumns = "id, user_id, title, category, description, priority, status, attachments, created_at, updated_at"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Ticket, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.TicketStatus, updatedAt time.Time) error
}

type ticketRepository struct {
	conn postgres.Conn
}

func NewTicketRepository(conn postgres.Conn) TicketRepository {
	return &ticketRepository{
		conn: conn,
	}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	query, args, err := squirrel.
		Insert(ticketTable).
		Columns("id", "user_id", "title", "category", "description", "priority", "status", "attachments", "created_at", "updated_at").
		Values(
			ticket.ID,
			ticket.UserID,
			ticket.Title,
			ticket.Category,
			ticket.Description,
			ticket.Priority,
			string(ticket.Status),
			pq.Array(ticket.Attachments),
			ticket.CreatedAt,
			ticket.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir chamado %s: %w", ticket.ID, err)
	}

	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query, args, err := squirrel.
		Select(ticketColumns).
		From(ticketTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	ticket, err := scanTicket(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar chamado %s: %w", id, err)
	}

	return ticket, nil
}

func (r *ticketRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Ticket, error) {
	query, args, err := squirrel.
		Select(ticketColumns).
		From(ticketTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	tickets := make([]*domain.Ticket, 0)
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear chamado: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tickets, nil
}

// UpdateStatus só grava se o status atual ainda for from. Sem linha afetada,
// diferencia chamado inexistente de status alterado por outra requisição.
func (r *ticketRepository) UpdateStatus(ctx context.Context, id string, from, to domain.TicketStatus, updatedAt time.Time) error {
	query, args, err := squirrel.
		Update(ticketTable).
		Set("status", string(to)).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": id, "status": string(from)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar chamado %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}
	if affected > 0 {
		return nil
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrNotFound
	}
	return domain.ErrTicketStatusConflict
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicket(row rowScanner) (*domain.Ticket, error) {
	var (
		ticket      domain.Ticket
		status      string
		attachments []string
	)

	err := row.Scan(
		&ticket.ID,
		&ticket.UserID,
		&ticket.Title,
		&ticket.Category,
		&ticket.Description,
		&ticket.Priority,
		&status,
		pq.Array(&attachments),
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	ticket.Status = domain.TicketStatus(status)
	ticket.Attachments = attachments
	if ticket.Attachments == nil {
		ticket.Attachments = []string{}
	}
	ticket.Responses = []domain.TicketResponse{}

	return &ticket, nil
}
