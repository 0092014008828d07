package repository

import (
	"context"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// HomeFilter predicado de búsqueda de inmuebles. Campos nil no restringen; los presentes se combinan con AND.
type HomeFilter struct {
	City         *string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	PropertyType *string
}

// IsEmpty indica si el filtro no impone ninguna restricción.
func (f HomeFilter) IsEmpty() bool {
	return f.City == nil && f.MinPrice == nil && f.MaxPrice == nil && f.PropertyType == nil
}

// HomeRepository define el puerto de persistencia para Home e Image (DIP).
// GetByID y GetDetail devuelven (nil, nil) cuando no existe el inmueble.
type HomeRepository interface {
	Create(ctx context.Context, home *entity.Home) error
	GetByID(ctx context.Context, id string) (*entity.Home, error)
	GetDetail(ctx context.Context, id string) (*entity.HomeDetail, error)
	List(ctx context.Context, filter HomeFilter) ([]entity.HomeWithImage, error)
	Update(ctx context.Context, home *entity.Home) error
	Delete(ctx context.Context, id string) error

	CreateImages(ctx context.Context, images []entity.Image) error
	DeleteImagesByHome(ctx context.Context, homeID string) error
}
