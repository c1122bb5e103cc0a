// Package pdf renders client-facing estimate documents.
//
// The layout model (layout.go) decides what appears and in which order;
// this file only paints it with fpdf. Rendering is pure per call: no state
// survives between invocations, concurrent renders are safe.
package pdf

import (
	"bytes"
	"errors"
	"fmt"

	"atelier_auto/internal/domain/entities"
	"atelier_auto/internal/domain/pricing"
	"atelier_auto/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

var (
	ErrMissingLogo     = errors.New("letterhead logo is required")
	ErrUnsupportedLogo = errors.New("letterhead logo must be PNG or JPEG")
)

const (
	pageLeft   = 15.0
	pageRight  = 15.0
	lineHeight = 5.0
	rowFont    = 9.0
)

// Renderer paints estimates into fixed-layout A4 documents.
type Renderer struct{}

var _ interfaces.IDocumentRenderer = (*Renderer)(nil)

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the PDF byte stream for an estimate. The logo is a
// required asset: a missing or undecodable image fails the whole render.
func (r *Renderer) Render(estimate entities.Estimate, vehicle entities.VehicleSnapshot, client entities.ClientSnapshot, logo []byte) ([]byte, error) {
	if len(logo) == 0 {
		return nil, ErrMissingLogo
	}
	logoType, err := sniffImageType(logo)
	if err != nil {
		return nil, err
	}

	doc := BuildDocument(estimate)

	p := fpdf.New("P", "mm", "A4", "")
	tr := p.UnicodeTranslatorFromDescriptor("")
	p.SetMargins(pageLeft, 15, pageRight)
	p.SetAutoPageBreak(true, 20)
	p.AddPage()

	opts := fpdf.ImageOptions{ImageType: logoType, ReadDpi: true}
	p.RegisterImageOptionsReader("letterhead", opts, bytes.NewReader(logo))
	if p.Err() {
		return nil, fmt.Errorf("decoding letterhead: %w", p.Error())
	}
	p.ImageOptions("letterhead", pageLeft, 12, 40, 0, false, opts, 0, "")

	r.paintHeader(p, tr, estimate, vehicle, client)
	for _, section := range doc.Sections {
		r.paintSection(p, tr, section)
	}
	r.paintTotals(p, tr, doc)

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) paintHeader(p *fpdf.Fpdf, tr func(string) string, e entities.Estimate, vehicle entities.VehicleSnapshot, client entities.ClientSnapshot) {
	p.SetY(14)
	p.SetFont("Helvetica", "B", 16)
	p.CellFormat(0, 8, tr(documentTitle(e)), "", 1, "R", false, 0, "")
	p.SetFont("Helvetica", "", 9)
	if e.Type == entities.EstimateTypeInsurance && e.ClaimNumber != nil {
		p.CellFormat(0, 5, tr("Sinistre n° "+*e.ClaimNumber), "", 1, "R", false, 0, "")
	}
	p.Ln(12)

	p.SetFont("Helvetica", "B", 10)
	p.CellFormat(90, 5, tr("Client"), "", 0, "L", false, 0, "")
	p.CellFormat(90, 5, tr("Véhicule"), "", 1, "L", false, 0, "")
	p.SetFont("Helvetica", "", 9)

	clientLines := clientBlock(client)
	vehicleLines := vehicleBlock(vehicle)
	for i := 0; i < len(clientLines) || i < len(vehicleLines); i++ {
		left, right := "", ""
		if i < len(clientLines) {
			left = clientLines[i]
		}
		if i < len(vehicleLines) {
			right = vehicleLines[i]
		}
		p.CellFormat(90, 4.5, tr(left), "", 0, "L", false, 0, "")
		p.CellFormat(90, 4.5, tr(right), "", 1, "L", false, 0, "")
	}
	p.Ln(6)
}

func (r *Renderer) paintSection(p *fpdf.Fpdf, tr func(string) string, s Section) {
	p.SetFont("Helvetica", "B", 11)
	p.CellFormat(0, 7, tr(s.Title), "", 1, "L", false, 0, "")

	switch s.Kind {
	case entities.ItemKindPart:
		r.paintPartRows(p, tr, s.Rows)
	case entities.ItemKindLabor:
		r.paintLaborRows(p, tr, s.Rows)
	default:
		r.paintUpcomingRows(p, tr, s.Rows)
	}
	p.Ln(5)
}

func (r *Renderer) paintPartRows(p *fpdf.Fpdf, tr func(string) string, rows []Row) {
	widths := []float64{100, 30, 15, 35}
	r.paintTableHead(p, tr, widths, []string{"Désignation", "Prix unitaire", "Qté", "Total"})

	for _, row := range rows {
		top := p.GetY()
		r.writeRuns(p, tr, row.Designation, pageLeft, widths[0])
		r.writeDescription(p, tr, row.Description, pageLeft, widths[0])
		bottom := p.GetY()

		qty := 0
		if row.Item.Quantity != nil {
			qty = *row.Item.Quantity
		}
		p.SetFont("Helvetica", "", rowFont)
		p.SetXY(pageLeft+widths[0], top)
		p.CellFormat(widths[1], lineHeight, tr(FormatAmount(row.Item.UnitPrice)), "", 0, "R", false, 0, "")
		p.CellFormat(widths[2], lineHeight, fmt.Sprintf("%d", qty), "", 0, "C", false, 0, "")
		p.CellFormat(widths[3], lineHeight, tr(FormatAmount(row.Total)), "", 0, "R", false, 0, "")
		r.endRow(p, bottom)
	}
}

func (r *Renderer) paintLaborRows(p *fpdf.Fpdf, tr func(string) string, rows []Row) {
	widths := []float64{80, 30, 25, 15, 30}
	r.paintTableHead(p, tr, widths, []string{"Désignation", "Tarif", "Durée", "Remise", "Total"})

	for _, row := range rows {
		top := p.GetY()
		r.writeRuns(p, tr, row.Designation, pageLeft, widths[0])
		r.writeDescription(p, tr, row.Description, pageLeft, widths[0])
		bottom := p.GetY()

		rate := FormatAmount(row.Item.UnitPrice)
		duration := ""
		if row.Item.CalculateByTime {
			rate += "/h"
			if row.Item.Quantity != nil {
				duration = FormatMinutes(*row.Item.Quantity)
			}
		}
		discount := ""
		if row.Item.Discount != nil {
			discount = fmt.Sprintf("-%d%%", *row.Item.Discount)
		}

		p.SetFont("Helvetica", "", rowFont)
		p.SetXY(pageLeft+widths[0], top)
		p.CellFormat(widths[1], lineHeight, tr(rate), "", 0, "R", false, 0, "")
		p.CellFormat(widths[2], lineHeight, duration, "", 0, "C", false, 0, "")
		p.CellFormat(widths[3], lineHeight, discount, "", 0, "C", false, 0, "")
		p.CellFormat(widths[4], lineHeight, tr(FormatAmount(row.Total)), "", 0, "R", false, 0, "")
		r.endRow(p, bottom)
	}
}

func (r *Renderer) paintUpcomingRows(p *fpdf.Fpdf, tr func(string) string, rows []Row) {
	width := 180.0
	r.paintTableHead(p, tr, []float64{width}, []string{"Désignation"})

	for _, row := range rows {
		r.writeRuns(p, tr, row.Designation, pageLeft, width)
		r.writeDescription(p, tr, row.Description, pageLeft, width)
		r.endRow(p, p.GetY())
	}
}

func (r *Renderer) paintTotals(p *fpdf.Fpdf, tr func(string) string, doc Document) {
	labelW, valueW := 140.0, 40.0

	p.Ln(2)
	p.SetFont("Helvetica", "", 10)
	p.CellFormat(labelW, 6, tr("Sous-total"), "", 0, "R", false, 0, "")
	p.CellFormat(valueW, 6, tr(FormatAmount(doc.Subtotal)), "", 1, "R", false, 0, "")
	p.CellFormat(labelW, 6, tr(fmt.Sprintf("TVA %.0f%%", pricing.VATRate*100)), "", 0, "R", false, 0, "")
	p.CellFormat(valueW, 6, tr(FormatAmount(doc.VAT)), "", 1, "R", false, 0, "")
	p.SetFont("Helvetica", "B", 11)
	p.CellFormat(labelW, 7, tr("Total"), "T", 0, "R", false, 0, "")
	p.CellFormat(valueW, 7, tr(FormatAmount(doc.GrandTotal)), "T", 1, "R", false, 0, "")
}

func (r *Renderer) paintTableHead(p *fpdf.Fpdf, tr func(string) string, widths []float64, labels []string) {
	p.SetFont("Helvetica", "B", rowFont)
	p.SetFillColor(235, 235, 235)
	for i, label := range labels {
		ln := 0
		if i == len(labels)-1 {
			ln = 1
		}
		align := "L"
		if i > 0 {
			align = "R"
		}
		p.CellFormat(widths[i], 6, tr(label), "B", ln, align, true, 0, "")
	}
}

// writeRuns paints styled runs inside a fixed-width column, wrapping at the
// column edge, then restores the page margins.
func (r *Renderer) writeRuns(p *fpdf.Fpdf, tr func(string) string, runs []Run, x, w float64) {
	if len(runs) == 0 {
		return
	}
	pageW, _ := p.GetPageSize()
	left, _, right, _ := p.GetMargins()
	p.SetLeftMargin(x)
	p.SetRightMargin(pageW - x - w)
	p.SetX(x)

	for _, run := range runs {
		if run.Text == "\n" {
			p.Ln(lineHeight)
			continue
		}
		style := ""
		if run.Bold {
			style += "B"
		}
		if run.Italic {
			style += "I"
		}
		if run.Underline {
			style += "U"
		}
		p.SetFont("Helvetica", style, rowFont)
		p.Write(lineHeight, tr(run.Text))
	}
	p.Ln(lineHeight)
	p.SetLeftMargin(left)
	p.SetRightMargin(right)
}

func (r *Renderer) writeDescription(p *fpdf.Fpdf, tr func(string) string, runs []Run, x, w float64) {
	if len(runs) == 0 {
		return
	}
	p.SetTextColor(105, 105, 105)
	r.writeRuns(p, tr, runs, x, w)
	p.SetTextColor(0, 0, 0)
}

func (r *Renderer) endRow(p *fpdf.Fpdf, bottom float64) {
	if p.GetY() < bottom {
		p.SetY(bottom)
	}
	p.Ln(1.5)
	p.SetDrawColor(220, 220, 220)
	p.Line(pageLeft, p.GetY(), 195, p.GetY())
	p.SetDrawColor(0, 0, 0)
	p.Ln(1.5)
}

func documentTitle(e entities.Estimate) string {
	if e.Type == entities.EstimateTypeInsurance {
		return "Devis assurance"
	}
	return "Devis"
}

func clientBlock(c entities.ClientSnapshot) []string {
	lines := []string{c.Name}
	if c.Address != "" {
		lines = append(lines, c.Address)
	}
	if c.City != "" {
		lines = append(lines, c.City)
	}
	if c.Phone != "" {
		lines = append(lines, c.Phone)
	}
	if c.Email != "" {
		lines = append(lines, c.Email)
	}
	return lines
}

func vehicleBlock(v entities.VehicleSnapshot) []string {
	lines := []string{v.Brand + " " + v.Model, v.Registration}
	if v.VIN != "" {
		lines = append(lines, "VIN "+v.VIN)
	}
	if v.Mileage > 0 {
		lines = append(lines, fmt.Sprintf("%d km", v.Mileage))
	}
	return lines
}

func sniffImageType(logo []byte) (string, error) {
	switch {
	case len(logo) >= 4 && bytes.Equal(logo[:4], []byte("\x89PNG")):
		return "PNG", nil
	case len(logo) >= 2 && logo[0] == 0xFF && logo[1] == 0xD8:
		return "JPG", nil
	default:
		return "", ErrUnsupportedLogo
	}
}
