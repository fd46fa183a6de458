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

// MarginStore persists the per-period margin history. UpsertMargin must be
// atomic: two concurrent upserts for the same period key may never both
// insert.
type MarginStore interface {
	MarginReader
	UpsertMargin(ctx context.Context, record model.MarginRecord) error
	ListMargins(ctx context.Context) ([]model.MarginRecord, error)
}

type FinancialStore interface {
	FinancialReader
	UpsertMonthlyFinancial(ctx context.Context, record model.MonthlyFinancial) error
	ListMonthlyFinancials(ctx context.Context, from, to time.Time) ([]model.MonthlyFinancial, error)
	CreateFixedCost(ctx context.Context, cost model.FixedCost) (*model.FixedCost, error)
	ListFixedCosts(ctx context.Context) ([]model.FixedCost, error)
	UpdateFixedCost(ctx context.Context, cost model.FixedCost) error
}

// FinanceService validates and records margin history, monthly actuals,
// and fixed costs.
type FinanceService struct {
	margins    MarginStore
	financials FinancialStore
	log        zerolog.Logger
}

func NewFinanceService(margins MarginStore, financials FinancialStore, log zerolog.Logger) *FinanceService {
	return &FinanceService{margins: margins, financials: financials, log: log}
}

func (s *FinanceService) UpsertMargin(ctx context.Context, periodKey string, revenue, marginPercent float64) error {
	periodKey = strings.TrimSpace(periodKey)
	if periodKey == "" {
		return fmt.Errorf("%w: period_key is required", ErrInvalidInput)
	}
	if revenue < 0 {
		return fmt.Errorf("%w: observed_revenue must not be negative", ErrInvalidInput)
	}
	if err := s.margins.UpsertMargin(ctx, model.MarginRecord{
		PeriodKey:       periodKey,
		ObservedRevenue: revenue,
		MarginPercent:   marginPercent,
	}); err != nil {
		return err
	}
	s.log.Info().
		Str("period", periodKey).
		Float64("margin_percent", marginPercent).
		Msg("margin record upserted")
	return nil
}

func (s *FinanceService) MarginForPeriod(ctx context.Context, periodKey string) (float64, bool, error) {
	return s.margins.MarginForPeriod(ctx, periodKey)
}

func (s *FinanceService) ListMargins(ctx context.Context) ([]model.MarginRecord, error) {
	return s.margins.ListMargins(ctx)
}

// SuggestMarginPercent proposes a margin for a period with no history yet:
// small prior-period revenue warrants a higher markup. An existing record
// always wins.
func (s *FinanceService) SuggestMarginPercent(ctx context.Context, periodKey string, revenue float64) (float64, error) {
	existing, found, err := s.margins.MarginForPeriod(ctx, periodKey)
	if err != nil {
		return 0, err
	}
	if found {
		return existing, nil
	}
	switch {
	case revenue <= 999:
		return 100, nil
	case revenue <= 9999:
		return 60, nil
	default:
		return DefaultMarginPercent, nil
	}
}

func (s *FinanceService) SaveMonthlyFinancial(ctx context.Context, record model.MonthlyFinancial) error {
	if record.Month.IsZero() {
		return fmt.Errorf("%w: month is required", ErrInvalidInput)
	}
	if record.Revenue < 0 || record.Expenses < 0 || record.OverheadCosts < 0 {
		return fmt.Errorf("%w: financial amounts must not be negative", ErrInvalidInput)
	}
	record.Month = firstOfMonth(record.Month)
	record.ProfitLoss = record.Revenue - record.Expenses - record.OverheadCosts
	return s.financials.UpsertMonthlyFinancial(ctx, record)
}

func (s *FinanceService) ListMonthlyFinancials(ctx context.Context, from, to time.Time) ([]model.MonthlyFinancial, error) {
	return s.financials.ListMonthlyFinancials(ctx, from, to)
}

func (s *FinanceService) CreateFixedCost(ctx context.Context, cost model.FixedCost) (*model.FixedCost, error) {
	if strings.TrimSpace(cost.Name) == "" {
		return nil, fmt.Errorf("%w: fixed cost name is required", ErrInvalidInput)
	}
	if cost.Amount < 0 {
		return nil, fmt.Errorf("%w: fixed cost amount must not be negative", ErrInvalidInput)
	}
	if err := validFrequency(cost.Frequency); err != nil {
		return nil, err
	}
	cost.ID = uuid.New()
	cost.Active = true
	return s.financials.CreateFixedCost(ctx, cost)
}

func (s *FinanceService) ListFixedCosts(ctx context.Context) ([]model.FixedCost, error) {
	return s.financials.ListFixedCosts(ctx)
}

func (s *FinanceService) UpdateFixedCost(ctx context.Context, cost model.FixedCost) error {
	if cost.ID == uuid.Nil {
		return fmt.Errorf("%w: fixed cost id is required", ErrInvalidInput)
	}
	if cost.Amount < 0 {
		return fmt.Errorf("%w: fixed cost amount must not be negative", ErrInvalidInput)
	}
	if err := validFrequency(cost.Frequency); err != nil {
		return err
	}
	if err := s.financials.UpdateFixedCost(ctx, cost); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validFrequency(frequency model.CostFrequency) error {
	switch frequency {
	case model.FrequencyMonthly, model.FrequencyQuarterly, model.FrequencyAnnually:
		return nil
	default:
		return fmt.Errorf("%w: unknown cost frequency %q", ErrInvalidInput, frequency)
	}
}
