package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Jonathan-Rajaratnam/project-management/internal/model"
)

// ProposalRenderer turns a saved quote into a client-facing PDF.
type ProposalRenderer interface {
	Generate(quote model.Quote, breakdown model.Breakdown) ([]byte, error)
}

// WorkbookBuilder turns saved quotes and monthly actuals into a workbook.
type WorkbookBuilder interface {
	Generate(quotes []model.Quote, financials []model.MonthlyFinancial) ([]byte, error)
}

type MonthlyFinancialLister interface {
	ListMonthlyFinancials(ctx context.Context, from, to time.Time) ([]model.MonthlyFinancial, error)
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// ExportService produces downloadable documents from persisted data.
type ExportService struct {
	quotes     QuoteStore
	financials MonthlyFinancialLister
	pdf        ProposalRenderer
	excel      WorkbookBuilder
	log        zerolog.Logger
}

func NewExportService(quotes QuoteStore, financials MonthlyFinancialLister, pdf ProposalRenderer, excel WorkbookBuilder, log zerolog.Logger) *ExportService {
	return &ExportService{
		quotes:     quotes,
		financials: financials,
		pdf:        pdf,
		excel:      excel,
		log:        log,
	}
}

// ProposalPDF renders the proposal for a saved quote from its stored
// figures. The pricing is never recomputed, so a proposal printed months
// later matches what the client was quoted.
func (s *ExportService) ProposalPDF(ctx context.Context, id uuid.UUID) (*ExportResult, error) {
	quote, err := s.quotes.GetQuote(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	content, err := s.pdf.Generate(*quote, breakdownFromQuote(*quote))
	if err != nil {
		return nil, fmt.Errorf("render proposal: %w", err)
	}

	fileName := fmt.Sprintf("proposal-%s-%s.pdf", slugify(quote.ClientName), quote.ID.String()[:8])
	s.log.Info().Str("quote_id", quote.ID.String()).Str("file", fileName).Msg("proposal rendered")
	return &ExportResult{FileName: fileName, Content: content}, nil
}

// QuotesWorkbook exports all quotes plus the monthly actuals in a window.
func (s *ExportService) QuotesWorkbook(ctx context.Context, from, to time.Time) (*ExportResult, error) {
	quotes, err := s.quotes.ListQuotes(ctx)
	if err != nil {
		return nil, err
	}
	financials, err := s.financials.ListMonthlyFinancials(ctx, from, to)
	if err != nil {
		return nil, err
	}

	content, err := s.excel.Generate(quotes, financials)
	if err != nil {
		return nil, fmt.Errorf("build workbook: %w", err)
	}

	fileName := fmt.Sprintf("quotes-%s.xlsx", time.Now().Format("2006-01-02"))
	return &ExportResult{FileName: fileName, Content: content}, nil
}

// breakdownFromQuote reconstructs display line items from stored totals:
// staffing rows are itemized, everything else in the base cost is grouped,
// and the margin is the stored total minus the base.
func breakdownFromQuote(quote model.Quote) model.Breakdown {
	breakdown := model.Breakdown{
		BaseCost:      quote.BaseCost,
		MarginPercent: quote.MarginPercent,
		TotalCost:     quote.TotalCost,
		Profit:        quote.Profit,
	}

	staffingTotal := 0.0
	for _, assignment := range quote.Staffing {
		cost := assignment.WeeklyRate * float64(quote.TimelineWeeks)
		staffingTotal += cost
		breakdown.LineItems = append(breakdown.LineItems, model.LineItem{
			Label:  fmt.Sprintf("Staffing: %s (%s)", assignment.PersonName, assignment.RoleLabel),
			Amount: cost,
		})
	}
	if remainder := quote.BaseCost - staffingTotal; remainder > 0 {
		breakdown.LineItems = append(breakdown.LineItems, model.LineItem{
			Label:  "Technology & complexity",
			Amount: remainder,
		})
	}
	breakdown.LineItems = append(breakdown.LineItems, model.LineItem{
		Label:  fmt.Sprintf("Margin & pricing adjustments (%.0f%%)", quote.MarginPercent),
		Amount: quote.TotalCost - quote.BaseCost,
	})
	return breakdown
}

func slugify(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = strings.ReplaceAll(value, " ", "-")
	var b strings.Builder
	for _, r := range value {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "client"
	}
	return b.String()
}
