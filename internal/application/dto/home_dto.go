package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// HomeQuery parámetros opcionales de búsqueda (texto tal como llegan en la URL).
type HomeQuery struct {
	City         string `query:"city"`
	MinPrice     string `query:"minPrice"`
	MaxPrice     string `query:"maxPrice"`
	PropertyType string `query:"propertyType"`
}

// ImageRequest imagen de un inmueble.
type ImageRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// CreateHomeRequest entrada para publicar un inmueble.
// Las cotas superiores corresponden a la precisión de las columnas NUMERIC/INTEGER.
type CreateHomeRequest struct {
	Address           string          `json:"address" validate:"required"`
	NumberOfBedrooms  int             `json:"numberOfBedrooms" validate:"gt=0,lte=2147483647"`
	NumberOfBathrooms decimal.Decimal `json:"numberOfBathrooms" validate:"gt=0,lte=999.9"`
	City              string          `json:"city" validate:"required"`
	Price             decimal.Decimal `json:"price" validate:"gt=0,lte=999999999999.99"`
	LandSize          decimal.Decimal `json:"landSize" validate:"gt=0,lte=9999999999.99"`
	PropertyType      string          `json:"propertyType" validate:"required,oneof=RESIDENTIAL CONDO"`
	Images            []ImageRequest  `json:"images" validate:"required,min=1,dive"`
}

// UpdateHomeRequest actualización parcial: solo se modifican los campos presentes.
type UpdateHomeRequest struct {
	Address           *string          `json:"address" validate:"omitempty,min=1"`
	NumberOfBedrooms  *int             `json:"numberOfBedrooms" validate:"omitempty,gt=0,lte=2147483647"`
	NumberOfBathrooms *decimal.Decimal `json:"numberOfBathrooms" validate:"omitempty,gt=0,lte=999.9"`
	City              *string          `json:"city" validate:"omitempty,min=1"`
	Price             *decimal.Decimal `json:"price" validate:"omitempty,gt=0,lte=999999999999.99"`
	LandSize          *decimal.Decimal `json:"landSize" validate:"omitempty,gt=0,lte=9999999999.99"`
	PropertyType      *string          `json:"propertyType" validate:"omitempty,oneof=RESIDENTIAL CONDO"`
}

// Normalize recorta textos y pasa el tipo de inmueble a mayúsculas (condo → CONDO).
func (r *CreateHomeRequest) Normalize() {
	r.Address = strings.TrimSpace(r.Address)
	r.City = strings.TrimSpace(r.City)
	r.PropertyType = strings.ToUpper(strings.TrimSpace(r.PropertyType))
	for i := range r.Images {
		r.Images[i].URL = strings.TrimSpace(r.Images[i].URL)
	}
}

// Normalize aplica a los campos presentes la misma normalización que CreateHomeRequest.
func (r *UpdateHomeRequest) Normalize() {
	trim := func(p *string) {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	trim(r.Address)
	trim(r.City)
	if r.PropertyType != nil {
		pt := strings.ToUpper(strings.TrimSpace(*r.PropertyType))
		r.PropertyType = &pt
	}
}

// HomeResponse salida pública de un inmueble (sin realtor_id, created_at ni updated_at).
type HomeResponse struct {
	ID                string          `json:"id"`
	Address           string          `json:"address"`
	NumberOfBedrooms  int             `json:"numberOfBedrooms"`
	NumberOfBathrooms decimal.Decimal `json:"numberOfBathrooms"`
	City              string          `json:"city"`
	ListedDate        time.Time       `json:"listedDate"`
	Price             decimal.Decimal `json:"price"`
	LandSize          decimal.Decimal `json:"landSize"`
	PropertyType      string          `json:"propertyType"`
	Image             string          `json:"image,omitempty"`
}

// ImageResponse imagen en el detalle.
type ImageResponse struct {
	URL string `json:"url"`
}

// ContactResponse contacto público de un usuario.
type ContactResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// HomeDetailResponse detalle de un inmueble: todas las imágenes y el contacto del realtor.
type HomeDetailResponse struct {
	HomeResponse
	Images  []ImageResponse `json:"images"`
	Realtor ContactResponse `json:"realtor"`
}

// ImageUploadRequest solicitud de URL prefirmada para subir una imagen.
type ImageUploadRequest struct {
	FileName    string `json:"fileName" validate:"required,max=200"`
	ContentType string `json:"contentType" validate:"required,oneof=image/jpeg image/png image/webp"`
}

// ImageUploadResponse URL prefirmada de subida y URL pública resultante.
type ImageUploadResponse struct {
	UploadURL string    `json:"uploadUrl"`
	ObjectKey string    `json:"objectKey"`
	PublicURL string    `json:"publicUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}
