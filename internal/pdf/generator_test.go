package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Jonathan-Rajaratnam/project-management/internal/model"
)

func TestGenerateProducesPDF(t *testing.T) {
	quote := model.Quote{
		ID:            uuid.New(),
		ClientName:    "Acme Corp",
		Pages:         8,
		Complexity:    "Medium",
		TimelineWeeks: 4,
		TechStack:     []string{"React", "PostgreSQL"},
		Staffing: []model.StaffAssignment{
			{PersonName: "Alice", RoleLabel: "Developer", WeeklyRate: 1200},
		},
		BaseCost:      6600,
		MarginPercent: 50,
		TotalCost:     9899.99,
		Profit:        3299.99,
		ProposalText:  "Delivery in two milestones.",
		CreatedAt:     time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC),
	}
	breakdown := model.Breakdown{
		BaseCost:  6600,
		TotalCost: 9899.99,
		LineItems: []model.LineItem{
			{Label: "Staffing: Alice (Developer)", Amount: 4800},
			{Label: "Technology & complexity", Amount: 1800},
			{Label: "Margin & pricing adjustments (50%)", Amount: 3299.99},
		},
	}

	content, err := NewGenerator().Generate(quote, breakdown)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(content) == 0 {
		t.Fatal("Generate returned empty document")
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Errorf("document does not start with PDF header: %q", content[:8])
	}
}

func TestGenerateHandlesNonASCIIText(t *testing.T) {
	quote := model.Quote{
		ID:            uuid.New(),
		ClientName:    "Café Müller — Zürich",
		Pages:         2,
		Complexity:    "Simple",
		TimelineWeeks: 1,
		Staffing: []model.StaffAssignment{
			{PersonName: "José", RoleLabel: "Développeur", WeeklyRate: 1000},
		},
		BaseCost:     1000,
		TotalCost:    1500,
		ProposalText: "Révision complète — livraison début été.",
		CreatedAt:    time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC),
	}
	breakdown := model.Breakdown{
		LineItems: []model.LineItem{{Label: "Staffing: José (Développeur)", Amount: 1000}},
	}

	content, err := NewGenerator().Generate(quote, breakdown)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Errorf("document does not start with PDF header")
	}
}

func TestGenerateEmptyQuote(t *testing.T) {
	content, err := NewGenerator().Generate(model.Quote{ID: uuid.New(), ClientName: "X"}, model.Breakdown{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(content) == 0 {
		t.Fatal("Generate returned empty document")
	}
}
