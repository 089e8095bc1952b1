// Package pdf implementa la generación del recibo de orden de lavandería.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────┐
//	│  HEADER: Nombre tienda  │  N° Orden       │
//	│  ───────────────────────────────────────  │
//	│  CLIENTE: Nombre + Email                  │
//	│  ───────────────────────────────────────  │
//	│  TABLA: Servicio | Cant | Tarifa | Total  │
//	│  ───────────────────────────────────────  │
//	│  RECOGIDA: Fecha + Hora   │  Estado       │
//	│  TOTAL A PAGAR                            │
//	│  FOOTER: leyenda de agradecimiento        │
//	└───────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/laundry-api/internal/application/receipt"
	"github.com/jhoicas/laundry-api/internal/domain/entity"
	"github.com/jhoicas/laundry-api/internal/domain/pickup"
	"github.com/jhoicas/laundry-api/internal/domain/pricing"
)

var _ receipt.PDFGenerator = (*MarotoReceiptGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 110, Blue: 253}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// pesoPrinter agrupa miles según convención en-PH ("1,250.50").
var pesoPrinter = message.NewPrinter(language.English)

// MarotoReceiptGenerator implementa receipt.PDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	shopName string
}

// NewMarotoReceiptGenerator construye el generador. shopName aparece en el
// encabezado del recibo.
func NewMarotoReceiptGenerator(shopName string) *MarotoReceiptGenerator {
	if shopName == "" {
		shopName = "Laundry Shop"
	}
	return &MarotoReceiptGenerator{shopName: shopName}
}

// GenerateReceiptPDF genera el recibo de la orden y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, order *entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de orden", true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(serviceHeaderRow())
	m.AddRows(serviceRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(pickupRow(order))
	m.AddRows(totalRow(order))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq), número de orden y fecha (der).
func (g *MarotoReceiptGenerator) headerRow(order *entity.Order) core.Row {
	fecha := order.CreatedAt.Format("Jan 02, 2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de orden", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(order.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente.
func customerRow(order *entity.Order) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(order.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Email: "+order.Email, props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// serviceHeaderRow: cabecera de la línea de servicio.
func serviceHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Servicio", 5, align.Left),
		h("Cant.", 2, align.Center),
		h("Tarifa", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// serviceRow: la orden tiene una sola línea de servicio.
func serviceRow(order *entity.Order) core.Row {
	rate := pricing.Rate(order.ServiceType)
	return row.New(7).Add(
		col.New(5).Add(text.New(order.ServiceType, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(2).Add(text.New(order.Quantity.StringFixed(2), props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
		col.New(2).Add(text.New(formatPeso(rate), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(3).Add(text.New(formatPeso(order.Total), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// pickupRow: fecha/hora de recogida (con guiones si no hay programación) y estado.
func pickupRow(order *entity.Order) core.Row {
	dateDisplay, timeDisplay := pickup.Format(order.PickupDate, order.PickupTime)
	return row.New(12).Add(
		col.New(7).Add(
			text.New("RECOGIDA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(dateDisplay+"   "+timeDisplay, props.Text{
				Size: 9, Top: 6,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.Status, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 6,
			}),
		),
	)
}

// totalRow: total a pagar destacado.
func totalRow(order *entity.Order) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 3, Right: 2,
		})),
		col.New(3).Add(text.New(formatPeso(order.Total), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 3, Right: 1,
		})),
	)
}

// footerRow: leyenda de agradecimiento.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Gracias por su preferencia. Presente este recibo al recoger su pedido.",
			props.Text{Size: 7, Color: colorGray, Align: align.Center, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatPeso formatea un monto con símbolo de peso y miles agrupados.
// Ej: 1250.5 → "₱1,250.50"
func formatPeso(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return pesoPrinter.Sprintf("₱%.2f", f)
}

// shortID devuelve los primeros 8 caracteres del UUID para el encabezado.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
