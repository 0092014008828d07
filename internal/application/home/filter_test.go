package home_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/home"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
)

func TestBuildFilter_Vacio(t *testing.T) {
	f, err := home.BuildFilter(dto.HomeQuery{})
	require.NoError(t, err)
	assert.True(t, f.IsEmpty())
}

func TestBuildFilter_SoloMinPrice(t *testing.T) {
	f, err := home.BuildFilter(dto.HomeQuery{MinPrice: "1000"})
	require.NoError(t, err)
	require.NotNil(t, f.MinPrice)
	assert.Equal(t, "1000", f.MinPrice.String())
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.City)
	assert.Nil(t, f.PropertyType)
}

func TestBuildFilter_Completo(t *testing.T) {
	f, err := home.BuildFilter(dto.HomeQuery{City: " Bandung ", MinPrice: "10.5", MaxPrice: "20", PropertyType: "condo"})
	require.NoError(t, err)
	require.NotNil(t, f.City)
	assert.Equal(t, "Bandung", *f.City)
	assert.Equal(t, "10.5", f.MinPrice.String())
	assert.Equal(t, "20", f.MaxPrice.String())
	require.NotNil(t, f.PropertyType)
	assert.Equal(t, "CONDO", *f.PropertyType)
}

func TestBuildFilter_Invalidos(t *testing.T) {
	cases := map[string]dto.HomeQuery{
		"minPrice no numérico": {MinPrice: "abc"},
		"maxPrice no numérico": {MaxPrice: "12x"},
		"min mayor que max":    {MinPrice: "500", MaxPrice: "100"},
		"tipo desconocido":     {PropertyType: "CASTLE"},
	}
	for name, q := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := home.BuildFilter(q)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
