package model

import (
	"time"

	"github.com/google/uuid"
)

// MarginRecord keys the observed revenue and margin percentage of one
// historical calendar month, e.g. "March 2024". At most one record exists
// per period key.
type MarginRecord struct {
	PeriodKey       string
	ObservedRevenue float64
	MarginPercent   float64
	CreatedAt       time.Time
}

// MonthlyFinancial holds the actuals of one calendar month. ProfitLoss is
// always revenue − expenses − overhead.
type MonthlyFinancial struct {
	Month         time.Time
	Revenue       float64
	Expenses      float64
	OverheadCosts float64
	ProfitLoss    float64
	Notes         string
}

type CostFrequency string

const (
	FrequencyMonthly   CostFrequency = "Monthly"
	FrequencyQuarterly CostFrequency = "Quarterly"
	FrequencyAnnually  CostFrequency = "Annually"
)

type FixedCost struct {
	ID          uuid.UUID
	Name        string
	Amount      float64
	Frequency   CostFrequency
	Description string
	Active      bool
	CreatedAt   time.Time
}

// ForecastScenario is one projected month under a revenue assumption.
type ForecastScenario struct {
	Revenue       float64
	Expenses      float64
	OverheadCosts float64
	ProfitLoss    float64
}

type BreakevenAnalysis struct {
	CurrentRevenue         float64
	NeededRevenue          float64
	RevenueGap             float64
	PotentialProjectsValue float64
}

type Forecast struct {
	TargetMonth   time.Time
	Conservative  ForecastScenario
	Optimistic    ForecastScenario
	Breakeven     BreakevenAnalysis
	PreviousMonth MonthlyFinancial
}
