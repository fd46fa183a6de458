package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Jonathan-Rajaratnam/project-management/internal/model"
)

type FinanceRepository struct {
	db *gorm.DB
}

func NewFinanceRepository(db *gorm.DB) *FinanceRepository {
	return &FinanceRepository{db: db}
}

// MarginForPeriod returns the recorded margin for a period key and whether
// a record exists.
func (r *FinanceRepository) MarginForPeriod(ctx context.Context, periodKey string) (float64, bool, error) {
	var margins []float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT margin_percent
		FROM monthly_revenue
		WHERE period_key = ?
		LIMIT 1
	`, periodKey).Scan(&margins).Error
	if err != nil {
		return 0, false, err
	}
	if len(margins) == 0 {
		return 0, false, nil
	}
	return margins[0], true, nil
}

// UpsertMargin inserts or updates the one record for a period key in a
// single statement, so concurrent upserts cannot both insert.
func (r *FinanceRepository) UpsertMargin(ctx context.Context, record model.MarginRecord) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO monthly_revenue (period_key, revenue, margin_percent)
		VALUES (?, ?, ?)
		ON CONFLICT (period_key) DO UPDATE
		SET revenue = EXCLUDED.revenue, margin_percent = EXCLUDED.margin_percent
	`, record.PeriodKey, record.ObservedRevenue, record.MarginPercent).Error
}

func (r *FinanceRepository) ListMargins(ctx context.Context) ([]model.MarginRecord, error) {
	var records []model.MarginRecord
	err := r.db.WithContext(ctx).Raw(`
		SELECT period_key, revenue AS observed_revenue, margin_percent, created_at
		FROM monthly_revenue
		ORDER BY created_at DESC
	`).Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *FinanceRepository) GetMonthlyFinancial(ctx context.Context, month time.Time) (*model.MonthlyFinancial, error) {
	var record model.MonthlyFinancial
	err := r.db.WithContext(ctx).Raw(`
		SELECT month, revenue, expenses, overhead_costs, profit_loss, notes
		FROM monthly_financials
		WHERE month = ?
		LIMIT 1
	`, month).Scan(&record).Error
	if err != nil {
		return nil, err
	}
	if record.Month.IsZero() {
		return nil, gorm.ErrRecordNotFound
	}
	return &record, nil
}

func (r *FinanceRepository) UpsertMonthlyFinancial(ctx context.Context, record model.MonthlyFinancial) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO monthly_financials (month, revenue, expenses, overhead_costs, profit_loss, notes)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (month) DO UPDATE
		SET revenue = EXCLUDED.revenue,
			expenses = EXCLUDED.expenses,
			overhead_costs = EXCLUDED.overhead_costs,
			profit_loss = EXCLUDED.profit_loss,
			notes = EXCLUDED.notes,
			updated_at = NOW()
	`,
		record.Month,
		record.Revenue,
		record.Expenses,
		record.OverheadCosts,
		record.ProfitLoss,
		record.Notes,
	).Error
}

func (r *FinanceRepository) ListMonthlyFinancials(ctx context.Context, from, to time.Time) ([]model.MonthlyFinancial, error) {
	var records []model.MonthlyFinancial
	err := r.db.WithContext(ctx).Raw(`
		SELECT month, revenue, expenses, overhead_costs, profit_loss, notes
		FROM monthly_financials
		WHERE month >= ? AND month < ?
		ORDER BY month DESC
	`, from, to).Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *FinanceRepository) SumActiveFixedCosts(ctx context.Context, frequency model.CostFrequency) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM fixed_costs
		WHERE active = TRUE AND frequency = ?
	`, frequency).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *FinanceRepository) CreateFixedCost(ctx context.Context, cost model.FixedCost) (*model.FixedCost, error) {
	var saved model.FixedCost
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO fixed_costs (id, name, amount, frequency, description, active)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, name, amount, frequency, description, active, created_at
	`,
		cost.ID,
		cost.Name,
		cost.Amount,
		cost.Frequency,
		cost.Description,
		cost.Active,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *FinanceRepository) ListFixedCosts(ctx context.Context) ([]model.FixedCost, error) {
	var costs []model.FixedCost
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, amount, frequency, description, active, created_at
		FROM fixed_costs
		ORDER BY name ASC
	`).Scan(&costs).Error
	if err != nil {
		return nil, err
	}
	return costs, nil
}

func (r *FinanceRepository) UpdateFixedCost(ctx context.Context, cost model.FixedCost) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE fixed_costs
		SET name = ?, amount = ?, frequency = ?, description = ?, active = ?
		WHERE id = ?
	`, cost.Name, cost.Amount, cost.Frequency, cost.Description, cost.Active, cost.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
