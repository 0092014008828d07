package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
	"github.com/jhoicas/Inmobiliaria-api/pkg/logger"
)

// EventInquiryCreated tipo/subject del evento de nueva consulta.
const EventInquiryCreated = "home.inquiry.created"

// HomeUseCase casos de uso de inmuebles y consultas de compradores.
// La verificación de que el llamador es el realtor dueño la hace el handler (GetRealtorByHomeID).
type HomeUseCase struct {
	homes    repository.HomeRepository
	messages repository.MessageRepository
	tx       TxRunner
	events   EventPublisher
	log      *logger.Logger
}

// NewHomeUseCase construye el caso de uso inyectando sus dependencias.
func NewHomeUseCase(
	homes repository.HomeRepository,
	messages repository.MessageRepository,
	tx TxRunner,
	events EventPublisher,
	log *logger.Logger,
) *HomeUseCase {
	return &HomeUseCase{homes: homes, messages: messages, tx: tx, events: events, log: log}
}

// ListHomes lista los inmuebles que cumplen el filtro, cada uno con su imagen de portada.
// Un resultado vacío se reporta como ErrNotFound, no como lista vacía.
func (uc *HomeUseCase) ListHomes(ctx context.Context, q dto.HomeQuery) ([]dto.HomeResponse, error) {
	filter, err := BuildFilter(q)
	if err != nil {
		return nil, err
	}
	list, err := uc.homes.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listar inmuebles: %w", err)
	}
	if len(list) == 0 {
		return nil, domain.ErrNotFound
	}
	return toHomeResponses(list), nil
}

// GetHomeByID devuelve el detalle con todas las imágenes y el contacto del realtor.
func (uc *HomeUseCase) GetHomeByID(ctx context.Context, id string) (*dto.HomeDetailResponse, error) {
	detail, err := uc.homes.GetDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener inmueble: %w", err)
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return toHomeDetailResponse(detail), nil
}

// CreateHome persiste el inmueble y sus imágenes en una sola transacción.
func (uc *HomeUseCase) CreateHome(ctx context.Context, realtorID string, in dto.CreateHomeRequest) (*dto.HomeResponse, error) {
	if realtorID == "" {
		return nil, domain.ErrUnauthorized
	}
	if len(in.Images) == 0 {
		return nil, fmt.Errorf("%w: se requiere al menos una imagen", domain.ErrInvalidInput)
	}
	now := time.Now().UTC()
	h := &entity.Home{
		ID:                uuid.New().String(),
		Address:           in.Address,
		City:              in.City,
		Price:             in.Price,
		PropertyType:      in.PropertyType,
		NumberOfBedrooms:  in.NumberOfBedrooms,
		NumberOfBathrooms: in.NumberOfBathrooms,
		LandSize:          in.LandSize,
		ListedDate:        now,
		RealtorID:         realtorID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	images := make([]entity.Image, 0, len(in.Images))
	for _, img := range in.Images {
		images = append(images, entity.Image{
			ID:        uuid.New().String(),
			URL:       img.URL,
			HomeID:    h.ID,
			CreatedAt: now,
		})
	}

	err := uc.tx.RunHomes(ctx, func(homeRepo repository.HomeRepository) error {
		if err := homeRepo.Create(ctx, h); err != nil {
			return err
		}
		return homeRepo.CreateImages(ctx, images)
	})
	if err != nil {
		return nil, fmt.Errorf("crear inmueble: %w", err)
	}
	out := toHomeResponse(h, images[0].URL)
	return &out, nil
}

// UpdateHome aplica una actualización parcial: solo cambian los campos presentes.
// La respuesta incluye la imagen de portada, igual que al listar o crear.
// Los textos llegan ya normalizados por el DTO (Normalize).
func (uc *HomeUseCase) UpdateHome(ctx context.Context, id string, in dto.UpdateHomeRequest) (*dto.HomeResponse, error) {
	detail, err := uc.homes.GetDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener inmueble: %w", err)
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	h := &detail.Home
	if in.Address != nil {
		h.Address = *in.Address
	}
	if in.City != nil {
		h.City = *in.City
	}
	if in.Price != nil {
		h.Price = *in.Price
	}
	if in.PropertyType != nil {
		h.PropertyType = *in.PropertyType
	}
	if in.NumberOfBedrooms != nil {
		h.NumberOfBedrooms = *in.NumberOfBedrooms
	}
	if in.NumberOfBathrooms != nil {
		h.NumberOfBathrooms = *in.NumberOfBathrooms
	}
	if in.LandSize != nil {
		h.LandSize = *in.LandSize
	}
	h.UpdatedAt = time.Now().UTC()
	if err := uc.homes.Update(ctx, h); err != nil {
		return nil, fmt.Errorf("actualizar inmueble: %w", err)
	}
	cover := ""
	if len(detail.Images) > 0 {
		cover = detail.Images[0].URL
	}
	out := toHomeResponse(h, cover)
	return &out, nil
}

// DeleteHome borra imágenes e inmueble en una transacción y devuelve los inmuebles restantes.
// A diferencia de ListHomes, si no queda ninguno devuelve una lista vacía.
func (uc *HomeUseCase) DeleteHome(ctx context.Context, id string) ([]dto.HomeResponse, error) {
	err := uc.tx.RunHomes(ctx, func(homeRepo repository.HomeRepository) error {
		h, err := homeRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if h == nil {
			return domain.ErrNotFound
		}
		if err := homeRepo.DeleteImagesByHome(ctx, id); err != nil {
			return err
		}
		return homeRepo.Delete(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("borrar inmueble: %w", err)
	}
	remaining, err := uc.homes.List(ctx, repository.HomeFilter{})
	if err != nil {
		return nil, fmt.Errorf("listar inmuebles: %w", err)
	}
	return toHomeResponses(remaining), nil
}

// GetRealtorByHomeID devuelve el id del realtor dueño del inmueble.
func (uc *HomeUseCase) GetRealtorByHomeID(ctx context.Context, homeID string) (string, error) {
	h, err := uc.homes.GetByID(ctx, homeID)
	if err != nil {
		return "", fmt.Errorf("obtener inmueble: %w", err)
	}
	if h == nil {
		return "", domain.ErrNotFound
	}
	return h.RealtorID, nil
}

// Inquire registra la consulta de un comprador dirigida al realtor dueño del inmueble
// y publica el evento correspondiente (best effort: un fallo del bus no revierte el mensaje).
func (uc *HomeUseCase) Inquire(ctx context.Context, buyer dto.Principal, homeID, text string) (*dto.MessageResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: message es requerido", domain.ErrInvalidInput)
	}
	realtorID, err := uc.GetRealtorByHomeID(ctx, homeID)
	if err != nil {
		return nil, err
	}
	msg := &entity.Message{
		ID:        uuid.New().String(),
		Message:   text,
		HomeID:    homeID,
		BuyerID:   buyer.ID,
		RealtorID: realtorID,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("crear mensaje: %w", err)
	}

	event := InquiryCreatedEvent{
		EventType: EventInquiryCreated,
		MessageID: msg.ID,
		HomeID:    msg.HomeID,
		BuyerID:   msg.BuyerID,
		RealtorID: msg.RealtorID,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	}
	if err := uc.events.PublishInquiryCreated(ctx, event); err != nil {
		uc.log.Warn().Err(err).Str("message_id", msg.ID).Msg("publicar evento de consulta")
	}

	out := toMessageResponse(msg)
	return &out, nil
}

// ListMessagesByHome lista las consultas de un inmueble con el contacto de cada comprador.
func (uc *HomeUseCase) ListMessagesByHome(ctx context.Context, homeID string) ([]dto.MessageResponse, error) {
	list, err := uc.messages.ListByHome(ctx, homeID)
	if err != nil {
		return nil, fmt.Errorf("listar mensajes: %w", err)
	}
	out := make([]dto.MessageResponse, 0, len(list))
	for i := range list {
		m := toMessageResponse(&list[i].Message)
		buyer := toContactResponse(list[i].Buyer)
		m.Buyer = &buyer
		out = append(out, m)
	}
	return out, nil
}
