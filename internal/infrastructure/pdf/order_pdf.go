// Package pdf genera la confirmación en PDF de un pedido consolidado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Distribuidora + N° Pedido + Fecha                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre / código / email                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + código QR de retiro                                │
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

	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
)

const distributorName = "Lubriportal Distribuciones"

var (
	colorPrimary = &props.Color{Red: 20, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoOrderPDFGenerator implementa quote.OrderPDFGenerator usando Maroto v2.
type MarotoOrderPDFGenerator struct{}

// NewMarotoOrderPDFGenerator construye el generador.
func NewMarotoOrderPDFGenerator() *MarotoOrderPDFGenerator { return &MarotoOrderPDFGenerator{} }

// GenerateOrderPDF genera la confirmación y devuelve sus bytes.
// customer puede ser nil (pedido de una sesión invitada).
func (g *MarotoOrderPDFGenerator) GenerateOrderPDF(_ context.Context, order *entity.ConsolidatedOrder, customer *entity.User) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Confirmación de pedido", true).
		WithAuthor(distributorName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order, customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(order.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: distribuidora (izq) y número + fecha del pedido (der).
func headerRow(order *entity.ConsolidatedOrder) core.Row {
	fecha := order.CreatedAt.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(distributorName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Lubricantes industriales", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Pedido "+order.ID, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2}),
			text.New("Fecha: "+fecha, props.Text{Size: 9, Align: align.Right, Top: 9, Color: colorGray}),
		),
	)
}

// customerRow: datos del cliente, o la clave de sesión si fue un invitado.
func customerRow(order *entity.ConsolidatedOrder, customer *entity.User) core.Row {
	name := "Invitado (" + order.CustomerID + ")"
	detail := "Retiro en bodega"
	if customer != nil {
		name = customer.Username
		detail = customer.Email
		if customer.CustomerCode != "" {
			name += " · " + customer.CustomerCode
		}
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Cliente: "+name, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
			text.New(detail, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	style := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	return row.New(7).Add(
		col.New(2).Add(text.New("Cant.", style)),
		col.New(6).Add(text.New("Producto", style)),
		col.New(2).Add(text.New("P. Unit", mergeAlign(style, align.Right))),
		col.New(2).Add(text.New("Subtotal", mergeAlign(style, align.Right))),
	)
}

func tableLineRows(lines []entity.OrderLine) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", l.Quantity), props.Text{Size: 8})),
			col.New(6).Add(text.New(l.ProductName, props.Text{Size: 8})),
			col.New(2).Add(text.New("$"+l.UnitPrice.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
			col.New(2).Add(text.New("$"+l.TotalPrice.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return rows
}

// totalRow: total a pagar más código QR de retiro con el id del pedido.
func totalRow(order *entity.ConsolidatedOrder) core.Row {
	return row.New(24).Add(
		col.New(3).Add(code.NewQr(order.ID, props.Rect{Percent: 90})),
		col.New(9).Add(
			text.New("TOTAL: $"+order.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 8, Color: colorPrimary,
			}),
		),
	)
}

func mergeAlign(t props.Text, a align.Type) props.Text {
	t.Align = a
	return t
}
