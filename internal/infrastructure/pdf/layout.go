package pdf

import (
	"fmt"
	"sort"

	"atelier_auto/internal/domain/entities"
	"atelier_auto/internal/domain/pricing"
)

// Document is the layout model painted onto the PDF. Building it is pure
// and separate from painting so ordering and totals are testable without
// decoding PDF bytes.
type Document struct {
	Sections   []Section
	Subtotal   float64
	VAT        float64
	GrandTotal float64
}

// Section is one category table. Empty categories are not built at all.
type Section struct {
	Kind  entities.ItemKind
	Title string
	Rows  []Row
}

// Row is one rendered line item with its presentation figures.
type Row struct {
	Item        entities.LineItem
	Designation []Run
	Description []Run
	Total       float64
}

var sectionTitles = map[entities.ItemKind]string{
	entities.ItemKindPart:     "Pièces",
	entities.ItemKindLabor:    "Main d'œuvre",
	entities.ItemKindUpcoming: "Travaux à prévoir",
}

// BuildDocument lays out the estimate: one section per non-empty category
// in fixed order parts, labor, upcoming, each sorted by position so the
// document matches exactly what the editor displayed. Totals come from the
// pricing package; the renderer only formats them.
func BuildDocument(e entities.Estimate) Document {
	doc := Document{}
	for _, kind := range []entities.ItemKind{entities.ItemKindPart, entities.ItemKindLabor, entities.ItemKindUpcoming} {
		var rows []Row
		for _, it := range e.Items {
			if it.Kind != kind {
				continue
			}
			rows = append(rows, Row{
				Item:        it,
				Designation: ParseRichText(it.Designation),
				Description: ParseRichText(it.Description),
				Total:       pricing.Round2(pricing.ItemTotal(it)),
			})
		}
		if len(rows) == 0 {
			continue
		}
		sort.SliceStable(rows, func(a, b int) bool { return rows[a].Item.Position < rows[b].Item.Position })
		doc.Sections = append(doc.Sections, Section{Kind: kind, Title: sectionTitles[kind], Rows: rows})
	}

	subtotal := pricing.Subtotal(e.Items)
	vat := pricing.VAT(subtotal)
	doc.Subtotal = pricing.Round2(subtotal)
	doc.VAT = pricing.Round2(vat)
	doc.GrandTotal = pricing.Round2(pricing.GrandTotal(subtotal, vat))
	return doc
}

// FormatMinutes renders a labor duration stored in minutes as HhMMmin,
// e.g. 90 -> "1h30min".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%dh%02dmin", minutes/60, minutes%60)
}

// FormatAmount renders a monetary amount in CHF with 2 fraction digits.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f CHF", v)
}
