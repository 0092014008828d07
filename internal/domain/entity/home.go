package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de inmueble.
const (
	PropertyResidential = "RESIDENTIAL"
	PropertyCondo       = "CONDO"
)

// IsValidPropertyType indica si el tipo de inmueble es conocido.
func IsValidPropertyType(s string) bool {
	return s == PropertyResidential || s == PropertyCondo
}

// Home representa un inmueble publicado por un realtor.
// Siempre tiene dueño (RealtorID); borrarlo borra sus imágenes.
type Home struct {
	ID                string
	Address           string
	City              string
	Price             decimal.Decimal
	PropertyType      string
	NumberOfBedrooms  int
	NumberOfBathrooms decimal.Decimal // admite medios baños (2.5)
	LandSize          decimal.Decimal
	ListedDate        time.Time
	RealtorID         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Image imagen de un inmueble.
type Image struct {
	ID        string
	URL       string
	HomeID    string
	CreatedAt time.Time
}

// HomeWithImage inmueble con su imagen de portada (primera imagen, "" si no tiene).
type HomeWithImage struct {
	Home
	CoverImage string
}

// HomeDetail inmueble con todas sus imágenes y el contacto del realtor.
type HomeDetail struct {
	Home
	Images  []Image
	Realtor Contact
}
