package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Jonathan-Rajaratnam/project-management/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Arial"}
}

// Generate renders a client-facing proposal document for a saved quote.
// All text runs through the cp1252 translator, since the built-in core
// fonts do not take UTF-8.
func (g *Generator) Generate(quote model.Quote, breakdown model.Breakdown) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, "Project Proposal", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Prepared for %s", quote.ClientName)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Quote %s from %s", shortID(quote), formatDate(quote.CreatedAt))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Project Scope", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	scopeLines := []string{
		fmt.Sprintf("Pages: %d", quote.Pages),
		fmt.Sprintf("Complexity: %s", quote.Complexity),
		fmt.Sprintf("Timeline: %d weeks", quote.TimelineWeeks),
		fmt.Sprintf("Technology stack: %s", safeJoin(quote.TechStack)),
	}
	for _, line := range scopeLines {
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	if len(quote.Staffing) > 0 {
		pdf.SetFont(g.fontName, "B", 12)
		pdf.CellFormat(0, 8, "Project Team", "", 1, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 11)
		for _, assignment := range quote.Staffing {
			label := assignment.PersonName
			if assignment.RoleLabel != "" {
				label = fmt.Sprintf("%s — %s", assignment.PersonName, assignment.RoleLabel)
			}
			pdf.CellFormat(0, 6, tr(label), "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Investment Breakdown", "", 1, "L", false, 0, "")

	headers := []string{"Item", "Amount"}
	colWidths := []float64{130, 50}
	drawTableRow(pdf, g.fontName, tr, headers, colWidths, true)
	for _, item := range breakdown.LineItems {
		drawTableRow(pdf, g.fontName, tr, []string{item.Label, formatAmount(item.Amount)}, colWidths, false)
	}

	pdf.Ln(2)
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total Investment: $%s", formatAmount(quote.TotalCost)), "", 1, "R", false, 0, "")

	if strings.TrimSpace(quote.ProposalText) != "" {
		pdf.Ln(4)
		pdf.SetFont(g.fontName, "B", 12)
		pdf.CellFormat(0, 8, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 11)
		pdf.MultiCell(0, 6, tr(quote.ProposalText), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, tr func(string) string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, tr(col), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func shortID(quote model.Quote) string {
	id := quote.ID.String()
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

func safeJoin(values []string) string {
	if len(values) == 0 {
		return "—"
	}
	return strings.Join(values, ", ")
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("January 2, 2006")
}
