package home

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
)

// SheetUseCase genera la ficha PDF imprimible de un inmueble.
type SheetUseCase struct {
	homes         repository.HomeRepository
	generator     SheetGenerator
	publicBaseURL string
}

// NewSheetUseCase publicBaseURL es la URL base del frontend, usada en el QR de la ficha.
func NewSheetUseCase(homes repository.HomeRepository, generator SheetGenerator, publicBaseURL string) *SheetUseCase {
	return &SheetUseCase{
		homes:         homes,
		generator:     generator,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// ListingSheet devuelve el PDF de la ficha del inmueble.
func (uc *SheetUseCase) ListingSheet(ctx context.Context, homeID string) ([]byte, error) {
	detail, err := uc.homes.GetDetail(ctx, homeID)
	if err != nil {
		return nil, fmt.Errorf("obtener inmueble: %w", err)
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	pdf, err := uc.generator.GenerateListingSheet(ctx, detail, uc.ListingURL(homeID))
	if err != nil {
		return nil, fmt.Errorf("generar ficha: %w", err)
	}
	return pdf, nil
}

// ListingURL URL pública del inmueble codificada en el QR.
func (uc *SheetUseCase) ListingURL(homeID string) string {
	return uc.publicBaseURL + "/home/" + homeID
}
