package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jonathan-Rajaratnam/project-management/internal/model"
)

type stubRenderer struct {
	lastBreakdown model.Breakdown
}

func (s *stubRenderer) Generate(_ model.Quote, breakdown model.Breakdown) ([]byte, error) {
	s.lastBreakdown = breakdown
	return []byte("%PDF"), nil
}

type stubWorkbook struct {
	quoteCount     int
	financialCount int
}

func (s *stubWorkbook) Generate(quotes []model.Quote, financials []model.MonthlyFinancial) ([]byte, error) {
	s.quoteCount = len(quotes)
	s.financialCount = len(financials)
	return []byte("PK"), nil
}

type stubFinancialLister struct {
	records []model.MonthlyFinancial
}

func (s *stubFinancialLister) ListMonthlyFinancials(_ context.Context, _, _ time.Time) ([]model.MonthlyFinancial, error) {
	return s.records, nil
}

func TestProposalPDF(t *testing.T) {
	quote := model.Quote{
		ID:            uuid.New(),
		ClientName:    "Acme Corp",
		TimelineWeeks: 2,
		Staffing: []model.StaffAssignment{
			{PersonName: "Alice", RoleLabel: "Developer", WeeklyRate: 1000},
		},
		BaseCost:      2600,
		MarginPercent: 50,
		TotalCost:     3900,
		Profit:        1300,
	}
	store := &fakeQuoteStore{saved: []model.Quote{quote}}
	renderer := &stubRenderer{}
	svc := NewExportService(store, &stubFinancialLister{}, renderer, &stubWorkbook{}, zerolog.Nop())

	result, err := svc.ProposalPDF(context.Background(), quote.ID)
	require.NoError(t, err)

	assert.Contains(t, result.FileName, "acme-corp")
	assert.Contains(t, result.FileName, ".pdf")
	assert.NotEmpty(t, result.Content)

	// Staffing is itemized and the rest of the base cost grouped.
	items := renderer.lastBreakdown.LineItems
	require.Len(t, items, 3)
	assert.InDelta(t, 2000.0, items[0].Amount, 1e-9)
	assert.InDelta(t, 600.0, items[1].Amount, 1e-9)
	assert.InDelta(t, 1300.0, items[2].Amount, 1e-9)
}

func TestProposalPDFNotFound(t *testing.T) {
	svc := NewExportService(&fakeQuoteStore{}, &stubFinancialLister{}, &stubRenderer{}, &stubWorkbook{}, zerolog.Nop())

	_, err := svc.ProposalPDF(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestQuotesWorkbook(t *testing.T) {
	store := &fakeQuoteStore{saved: []model.Quote{
		{ID: uuid.New(), ClientName: "Acme"},
		{ID: uuid.New(), ClientName: "Globex"},
	}}
	lister := &stubFinancialLister{records: []model.MonthlyFinancial{
		{Month: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}}
	workbook := &stubWorkbook{}
	svc := NewExportService(store, lister, &stubRenderer{}, workbook, zerolog.Nop())

	result, err := svc.QuotesWorkbook(context.Background(), time.Time{}, time.Now())
	require.NoError(t, err)

	assert.Contains(t, result.FileName, ".xlsx")
	assert.Equal(t, 2, workbook.quoteCount)
	assert.Equal(t, 1, workbook.financialCount)
}
