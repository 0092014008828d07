// Package pdf genera la ficha imprimible de un inmueble.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Dirección + Ciudad  │  Precio + Fecha de alta      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CARACTERÍSTICAS: Tipo | Dormitorios | Baños | Superficie    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTACTO: Realtor (nombre, email, teléfono)                 │
//	│  FOOTER: QR con la URL pública del inmueble                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/home"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
)

var _ home.SheetGenerator = (*ListingSheetGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var propertyTypeLabels = map[string]string{
	entity.PropertyResidential: "Residencial",
	entity.PropertyCondo:       "Condominio",
}

// ListingSheetGenerator implementa home.SheetGenerator usando Maroto v2.
type ListingSheetGenerator struct {
	printer *message.Printer
}

// NewListingSheetGenerator construye el generador; lang define el formato de los números (p. ej. "es").
func NewListingSheetGenerator(lang string) *ListingSheetGenerator {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Spanish
	}
	return &ListingSheetGenerator{printer: message.NewPrinter(tag)}
}

// GenerateListingSheet genera el PDF y devuelve sus bytes.
func (g *ListingSheetGenerator) GenerateListingSheet(_ context.Context, d *entity.HomeDetail, listingURL string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha de inmueble", true).
		WithAuthor(nonEmpty(d.Realtor.Name, "Inmobiliaria"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(featuresHeaderRow(), g.featuresRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(realtorRow(d.Realtor))
	m.AddRows(line.NewRow(3))
	m.AddRows(qrRow(listingURL, len(d.Images)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *ListingSheetGenerator) headerRow(d *entity.HomeDetail) core.Row {
	return row.New(20).Add(
		col.New(8).Add(
			text.New(d.Address, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(d.City, props.Text{Size: 10, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(g.FormatPrice(d), props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Right, Top: 1,
			}),
			text.New("Publicado: "+d.ListedDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func featuresHeaderRow() core.Row {
	h := func(label string) core.Col {
		return col.New(3).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(6).Add(h("Tipo"), h("Dormitorios"), h("Baños"), h("Superficie (m²)"))
}

func (g *ListingSheetGenerator) featuresRow(d *entity.HomeDetail) core.Row {
	c := func(value string) core.Col {
		return col.New(3).Add(text.New(value, props.Text{Size: 10, Align: align.Center, Top: 1}))
	}
	return row.New(8).Add(
		c(nonEmpty(propertyTypeLabels[d.PropertyType], d.PropertyType)),
		c(g.printer.Sprintf("%d", d.NumberOfBedrooms)),
		c(g.printer.Sprintf("%v", d.NumberOfBathrooms.InexactFloat64())),
		c(g.printer.Sprintf("%.2f", d.LandSize.InexactFloat64())),
	)
}

func realtorRow(c entity.Contact) core.Row {
	return row.New(14).Add(col.New(12).Add(
		text.New("CONTACTO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(fmt.Sprintf("%s   |   %s   |   %s",
			nonEmpty(c.Name, "-"), nonEmpty(c.Email, "-"), nonEmpty(c.Phone, "-"),
		), props.Text{Size: 9, Top: 7, Color: colorGray}),
	))
}

func qrRow(listingURL string, imageCount int) core.Row {
	if listingURL == "" {
		return row.New(8).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%d imágenes disponibles en línea", imageCount), props.Text{Size: 8, Color: colorGray}),
		))
	}
	return row.New(45).Add(
		col.New(4).Add(code.NewQr(listingURL, props.Rect{Percent: 95, Center: true})),
		col.New(8).Add(
			text.New("Escanea el código QR para ver las fotos\ny consultar por este inmueble.", props.Text{
				Size: 9, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d imágenes disponibles", imageCount), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 20, Left: 3, Color: colorPrimary,
			}),
			text.New(listingURL, props.Text{Size: 7, Top: 30, Left: 3, Color: colorGray}),
		),
	)
}

// FormatPrice precio con separadores de miles según el idioma del generador.
func (g *ListingSheetGenerator) FormatPrice(d *entity.HomeDetail) string {
	return g.printer.Sprintf("$ %.2f", d.Price.InexactFloat64())
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
