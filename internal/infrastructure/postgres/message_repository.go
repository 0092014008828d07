package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
)

var _ repository.MessageRepository = (*MessageRepo)(nil)

// MessageRepo implementación del puerto MessageRepository sobre PostgreSQL.
type MessageRepo struct {
	db Querier
}

// NewMessageRepository construye el adaptador de persistencia para consultas.
func NewMessageRepository(db Querier) *MessageRepo {
	return &MessageRepo{db: db}
}

// Create persiste una consulta.
func (r *MessageRepo) Create(ctx context.Context, m *entity.Message) error {
	query := `
		INSERT INTO messages (id, message, home_id, buyer_id, realtor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, m.ID, m.Message, m.HomeID, m.BuyerID, m.RealtorID, m.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// ListByHome lista las consultas de un inmueble (más antiguas primero) con nombre, email y teléfono del comprador.
func (r *MessageRepo) ListByHome(ctx context.Context, homeID string) ([]entity.MessageWithBuyer, error) {
	query := `
		SELECT m.id, m.message, m.home_id, m.buyer_id, m.realtor_id, m.created_at,
			u.name, u.email, u.phone
		FROM messages m
		JOIN users u ON u.id = m.buyer_id
		WHERE m.home_id = $1
		ORDER BY m.created_at, m.id`
	rows, err := r.db.Query(ctx, query, homeID)
	if err != nil {
		if isInvalidText(err) {
			return []entity.MessageWithBuyer{}, nil
		}
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	list := []entity.MessageWithBuyer{}
	for rows.Next() {
		var m entity.MessageWithBuyer
		if err := rows.Scan(
			&m.ID, &m.Message.Message, &m.HomeID, &m.BuyerID, &m.RealtorID, &m.CreatedAt,
			&m.Buyer.Name, &m.Buyer.Email, &m.Buyer.Phone,
		); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
