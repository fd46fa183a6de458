package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Jonathan-Rajaratnam/project-management/internal/model"
)

// PendingConversionRate is the assumed share of pending quotes that convert
// to revenue in the optimistic scenario.
const PendingConversionRate = 0.7

// FinancialReader provides the historical actuals and fixed costs that
// forecasting draws on.
type FinancialReader interface {
	GetMonthlyFinancial(ctx context.Context, month time.Time) (*model.MonthlyFinancial, error)
	SumActiveFixedCosts(ctx context.Context, frequency model.CostFrequency) (float64, error)
}

// QuoteRevenueReader sums quote totals by status within a creation window.
type QuoteRevenueReader interface {
	SumQuoteTotalsByStatus(ctx context.Context, status model.QuoteStatus, from, to time.Time) (float64, error)
}

type ForecastService struct {
	financials FinancialReader
	quotes     QuoteRevenueReader
	log        zerolog.Logger
}

func NewForecastService(financials FinancialReader, quotes QuoteRevenueReader, log zerolog.Logger) *ForecastService {
	return &ForecastService{financials: financials, quotes: quotes, log: log}
}

// Forecast projects the target month from the previous month's actuals,
// quotes created within the target month grouped by status, and the active
// monthly fixed costs.
func (s *ForecastService) Forecast(ctx context.Context, targetMonth time.Time) (*model.Forecast, error) {
	monthStart := firstOfMonth(targetMonth)
	monthEnd := monthStart.AddDate(0, 1, 0)
	prevMonth := monthStart.AddDate(0, -1, 0)

	previous, err := s.financials.GetMonthlyFinancial(ctx, prevMonth)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		previous = &model.MonthlyFinancial{Month: prevMonth}
	}

	confirmedRevenue, err := s.quotes.SumQuoteTotalsByStatus(ctx, model.QuoteStatusApproved, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	potentialRevenue, err := s.quotes.SumQuoteTotalsByStatus(ctx, model.QuoteStatusPending, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	monthlyFixedCosts, err := s.financials.SumActiveFixedCosts(ctx, model.FrequencyMonthly)
	if err != nil {
		return nil, err
	}

	optimisticRevenue := confirmedRevenue + potentialRevenue*PendingConversionRate
	neededRevenue := previous.Expenses + monthlyFixedCosts

	forecast := &model.Forecast{
		TargetMonth: monthStart,
		Conservative: model.ForecastScenario{
			Revenue:       confirmedRevenue,
			Expenses:      previous.Expenses,
			OverheadCosts: monthlyFixedCosts,
			ProfitLoss:    confirmedRevenue - previous.Expenses - monthlyFixedCosts,
		},
		Optimistic: model.ForecastScenario{
			Revenue:       optimisticRevenue,
			Expenses:      previous.Expenses,
			OverheadCosts: monthlyFixedCosts,
			ProfitLoss:    optimisticRevenue - previous.Expenses - monthlyFixedCosts,
		},
		Breakeven: model.BreakevenAnalysis{
			CurrentRevenue:         confirmedRevenue,
			NeededRevenue:          neededRevenue,
			RevenueGap:             neededRevenue - confirmedRevenue,
			PotentialProjectsValue: potentialRevenue,
		},
		PreviousMonth: *previous,
	}

	s.log.Debug().
		Time("target_month", monthStart).
		Float64("confirmed_revenue", confirmedRevenue).
		Float64("potential_revenue", potentialRevenue).
		Float64("monthly_fixed_costs", monthlyFixedCosts).
		Msg("forecast computed")

	return forecast, nil
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
