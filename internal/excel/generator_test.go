package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/Jonathan-Rajaratnam/project-management/internal/model"
)

func TestGenerateWorkbook(t *testing.T) {
	quotes := []model.Quote{
		{
			ID:            uuid.New(),
			ClientName:    "Acme Corp",
			Status:        model.QuoteStatusApproved,
			Complexity:    "Medium",
			TimelineWeeks: 4,
			TechStack:     []string{"React", "PostgreSQL"},
			BaseCost:      6600,
			MarginPercent: 50,
			TotalCost:     9899.99,
			Profit:        3299.99,
			CreatedAt:     time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC),
		},
	}
	financials := []model.MonthlyFinancial{
		{
			Month:      time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			Revenue:    12000,
			Expenses:   5000,
			ProfitLoss: 7000,
		},
	}

	content, err := NewGenerator().Generate(quotes, financials)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(content) == 0 {
		t.Fatal("Generate returned empty workbook")
	}

	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("workbook is not readable: %v", err)
	}
	defer file.Close()

	client, err := file.GetCellValue("Quotes", "B2")
	if err != nil {
		t.Fatalf("read quote cell: %v", err)
	}
	if client != "Acme Corp" {
		t.Errorf("quote client = %q, want %q", client, "Acme Corp")
	}

	month, err := file.GetCellValue("Monthly Financials", "A2")
	if err != nil {
		t.Fatalf("read financial cell: %v", err)
	}
	if month != "March 2024" {
		t.Errorf("financial month = %q, want %q", month, "March 2024")
	}
}

func TestGenerateEmptyWorkbook(t *testing.T) {
	content, err := NewGenerator().Generate(nil, nil)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(content) == 0 {
		t.Fatal("Generate returned empty workbook")
	}
}
