package home

import (
	"context"
	"time"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando el repositorio de inmuebles atado a esa tx.
// Garantiza que inmueble e imágenes se crean y se borran juntos.
type TxRunner interface {
	RunHomes(ctx context.Context, fn func(homeRepo repository.HomeRepository) error) error
}

// InquiryCreatedEvent evento publicado cuando un comprador consulta por un inmueble.
type InquiryCreatedEvent struct {
	EventType string    `json:"event_type"`
	MessageID string    `json:"message_id"`
	HomeID    string    `json:"home_id"`
	BuyerID   string    `json:"buyer_id"`
	RealtorID string    `json:"realtor_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher publica eventos de dominio hacia el bus de mensajería.
type EventPublisher interface {
	PublishInquiryCreated(ctx context.Context, event InquiryCreatedEvent) error
}

// ImagePresigner genera URLs prefirmadas de subida en el almacenamiento de objetos.
type ImagePresigner interface {
	PresignUpload(ctx context.Context, objectKey, contentType string) (url string, expiresAt time.Time, err error)
	PublicURL(objectKey string) string
}

// SheetGenerator genera la ficha PDF de un inmueble.
type SheetGenerator interface {
	GenerateListingSheet(ctx context.Context, detail *entity.HomeDetail, listingURL string) ([]byte, error)
}
