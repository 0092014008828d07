package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
)

func TestCreateHomeRequest_Normalize(t *testing.T) {
	in := dto.CreateHomeRequest{
		Address:      "  Jl. Merdeka 10 ",
		City:         " Bandung",
		PropertyType: " condo ",
		Images:       []dto.ImageRequest{{URL: " https://img.example.com/a.jpg "}},
	}
	in.Normalize()

	assert.Equal(t, "Jl. Merdeka 10", in.Address)
	assert.Equal(t, "Bandung", in.City)
	assert.Equal(t, "CONDO", in.PropertyType)
	assert.Equal(t, "https://img.example.com/a.jpg", in.Images[0].URL)
}

func TestUpdateHomeRequest_NormalizeSoloCamposPresentes(t *testing.T) {
	pt := "residential"
	city := " Jakarta "
	in := dto.UpdateHomeRequest{PropertyType: &pt, City: &city}
	in.Normalize()

	require.NotNil(t, in.PropertyType)
	assert.Equal(t, "RESIDENTIAL", *in.PropertyType)
	assert.Equal(t, "Jakarta", *in.City)
	assert.Nil(t, in.Address, "los campos ausentes siguen ausentes")
}
