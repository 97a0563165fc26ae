// Package pdf genera el catálogo de productos de una UMKM en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio + dueño │ N° productos + fecha   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTACTO: Email / Tel / Categoría                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Estado | Stok | Harga                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: valor del inventario                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TIENDAS ONLINE: QR al primer link de cada producto          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/ekraf-client/internal/application/ports"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
)

var _ ports.CatalogPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 128, Green: 36, Blue: 24}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.CatalogPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	printer *message.Printer
	now     func() time.Time
}

// NewMarotoPDFGenerator construye el generador con formato numérico indonesio.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{printer: message.NewPrinter(language.Indonesian), now: time.Now}
}

// GenerateCatalog genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateCatalog(owner *entity.User, products []entity.Product) ([]byte, error) {
	if owner == nil {
		return nil, fmt.Errorf("pdf: catálogo sin dueño")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Katalog Produk "+businessName(owner), true).
		WithAuthor(owner.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(owner, len(products)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(contactRow(owner))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableRows(products)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalRow(products))

	if links := storeLinkRows(products); len(links) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(links...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar catálogo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) headerRow(owner *entity.User, count int) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(businessName(owner), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Pemilik: "+nonEmpty(owner.Name, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("KATALOG PRODUK", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(g.printer.Sprintf("%d produk", count), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Tanggal: "+g.now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func contactRow(owner *entity.User) core.Row {
	category := "-"
	if owner.BusinessCategory != nil {
		category = owner.BusinessCategory.Name
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("KONTAK", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s   |   Kategori: %s",
				nonEmpty(owner.Email, "-"),
				nonEmpty(owner.PhoneNumber, "-"),
				category,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Produk", 6, align.Left),
		h("Status", 2, align.Center),
		h("Stok", 1, align.Center),
		h("Harga", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func (g *MarotoPDFGenerator) tableRows(products []entity.Product) []core.Row {
	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(p.Name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(string(p.Status), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(g.printer.Sprintf("%d", p.Stock), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(g.rupiah(p.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

// totalRow: valor del inventario (precio × stock).
func (g *MarotoPDFGenerator) totalRow(products []entity.Product) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("Nilai stok:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(g.rupiah(InventoryValue(products)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func storeLinkRows(products []entity.Product) []core.Row {
	var rows []core.Row
	for _, p := range products {
		link := p.FirstStoreLink()
		if link == "" {
			continue
		}
		if len(rows) == 0 {
			rows = append(rows, row.New(6).Add(col.New(12).Add(
				text.New("TOKO ONLINE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			)))
		}
		rows = append(rows, row.New(30).Add(
			col.New(3).Add(code.NewQr(link, props.Rect{Percent: 90, Center: true})),
			col.New(9).Add(
				text.New(p.Name, props.Text{Style: fontstyle.Bold, Size: 9, Top: 6, Left: 3}),
				text.New(link, props.Text{Size: 8, Top: 13, Left: 3, Color: colorGray}),
			),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// InventoryValue suma precio × stock de todos los productos.
func InventoryValue(products []entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return total
}

// FormatRupiah formatea un monto como "Rp 150.000" (sin decimales, separador de miles ".").
func FormatRupiah(amount decimal.Decimal) string {
	return NewMarotoPDFGenerator().rupiah(amount)
}

func (g *MarotoPDFGenerator) rupiah(amount decimal.Decimal) string {
	return g.printer.Sprintf("Rp %d", amount.Round(0).IntPart())
}

func businessName(owner *entity.User) string {
	return nonEmpty(owner.BusinessName, owner.Name)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
