package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/infrastructure/pdf"
)

func detail() *entity.HomeDetail {
	return &entity.HomeDetail{
		Home: entity.Home{
			ID:                "h1",
			Address:           "Av. Siempre Viva 742",
			City:              "Bandung",
			Price:             decimal.NewFromInt(1250000),
			PropertyType:      entity.PropertyResidential,
			NumberOfBedrooms:  3,
			NumberOfBathrooms: decimal.RequireFromString("2.5"),
			LandSize:          decimal.NewFromInt(300),
			ListedDate:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		Images:  []entity.Image{{URL: "https://img/1"}},
		Realtor: entity.Contact{Name: "Rita", Email: "rita@example.com", Phone: "081234567890"},
	}
}

func TestGenerateListingSheet_DevuelvePDF(t *testing.T) {
	g := pdf.NewListingSheetGenerator("es")
	out, err := g.GenerateListingSheet(context.Background(), detail(), "https://casas.example.com/home/h1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateListingSheet_SinURL(t *testing.T) {
	g := pdf.NewListingSheetGenerator("es")
	out, err := g.GenerateListingSheet(context.Background(), detail(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFormatPrice_SeparadorDeMiles(t *testing.T) {
	assert.Equal(t, "$ 1,250,000.00", pdf.NewListingSheetGenerator("en").FormatPrice(detail()))
}
