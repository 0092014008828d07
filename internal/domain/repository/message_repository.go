package repository

import (
	"context"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
)

// MessageRepository define el puerto de persistencia para Message (DIP).
type MessageRepository interface {
	Create(ctx context.Context, msg *entity.Message) error
	ListByHome(ctx context.Context, homeID string) ([]entity.MessageWithBuyer, error)
}
