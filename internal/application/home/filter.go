package home

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// BuildFilter convierte los parámetros opcionales de búsqueda en un predicado.
// Parámetros vacíos no restringen; los presentes se combinan con AND.
func BuildFilter(q dto.HomeQuery) (repository.HomeFilter, error) {
	var f repository.HomeFilter

	if city := strings.TrimSpace(q.City); city != "" {
		f.City = &city
	}

	minPrice, err := parsePrice("minPrice", q.MinPrice)
	if err != nil {
		return repository.HomeFilter{}, err
	}
	maxPrice, err := parsePrice("maxPrice", q.MaxPrice)
	if err != nil {
		return repository.HomeFilter{}, err
	}
	if minPrice != nil && maxPrice != nil && minPrice.GreaterThan(*maxPrice) {
		return repository.HomeFilter{}, fmt.Errorf("%w: minPrice no puede ser mayor que maxPrice", domain.ErrInvalidInput)
	}
	f.MinPrice = minPrice
	f.MaxPrice = maxPrice

	if pt := strings.ToUpper(strings.TrimSpace(q.PropertyType)); pt != "" {
		if !entity.IsValidPropertyType(pt) {
			return repository.HomeFilter{}, fmt.Errorf("%w: propertyType %q no válido", domain.ErrInvalidInput, q.PropertyType)
		}
		f.PropertyType = &pt
	}
	return f, nil
}

func parsePrice(name, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s debe ser numérico", domain.ErrInvalidInput, name)
	}
	return &d, nil
}
