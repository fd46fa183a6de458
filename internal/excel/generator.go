package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Jonathan-Rajaratnam/project-management/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds a workbook with a quote pipeline sheet and a monthly
// financials sheet.
func (g *Generator) Generate(quotes []model.Quote, financials []model.MonthlyFinancial) ([]byte, error) {
	file := excelize.NewFile()

	quotesSheet := "Quotes"
	file.SetSheetName("Sheet1", quotesSheet)
	if err := g.writeQuotes(file, quotesSheet, quotes); err != nil {
		return nil, err
	}

	financialsSheet := "Monthly Financials"
	file.NewSheet(financialsSheet)
	if err := g.writeFinancials(file, financialsSheet, financials); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeQuotes(file *excelize.File, sheet string, quotes []model.Quote) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Created",
		"Client",
		"Status",
		"Complexity",
		"Timeline (weeks)",
		"Technology Stack",
		"Base Cost",
		"Margin %",
		"Total Cost",
		"Profit",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, quote := range quotes {
		row := 2 + i
		set(fmt.Sprintf("A%d", row), formatDate(quote.CreatedAt))
		set(fmt.Sprintf("B%d", row), quote.ClientName)
		set(fmt.Sprintf("C%d", row), string(quote.Status))
		set(fmt.Sprintf("D%d", row), quote.Complexity)
		set(fmt.Sprintf("E%d", row), quote.TimelineWeeks)
		set(fmt.Sprintf("F%d", row), strings.Join(quote.TechStack, ", "))
		set(fmt.Sprintf("G%d", row), quote.BaseCost)
		set(fmt.Sprintf("H%d", row), quote.MarginPercent)
		set(fmt.Sprintf("I%d", row), quote.TotalCost)
		set(fmt.Sprintf("J%d", row), quote.Profit)
	}

	_ = file.SetColWidth(sheet, "A", "A", 14)
	_ = file.SetColWidth(sheet, "B", "B", 28)
	_ = file.SetColWidth(sheet, "C", "E", 16)
	_ = file.SetColWidth(sheet, "F", "F", 40)
	_ = file.SetColWidth(sheet, "G", "J", 14)
	return nil
}

func (g *Generator) writeFinancials(file *excelize.File, sheet string, financials []model.MonthlyFinancial) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"Month", "Revenue", "Expenses", "Overhead", "Profit/Loss", "Notes"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, record := range financials {
		row := 2 + i
		set(fmt.Sprintf("A%d", row), record.Month.Format("January 2006"))
		set(fmt.Sprintf("B%d", row), record.Revenue)
		set(fmt.Sprintf("C%d", row), record.Expenses)
		set(fmt.Sprintf("D%d", row), record.OverheadCosts)
		set(fmt.Sprintf("E%d", row), record.ProfitLoss)
		set(fmt.Sprintf("F%d", row), record.Notes)
	}

	_ = file.SetColWidth(sheet, "A", "A", 18)
	_ = file.SetColWidth(sheet, "B", "E", 14)
	_ = file.SetColWidth(sheet, "F", "F", 40)
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
