package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jonathan-Rajaratnam/project-management/internal/model"
)

type QuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

type quoteRow struct {
	ID              uuid.UUID
	ClientName      string
	ClientEmail     string
	Pages           int
	Complexity      string
	TimelineWeeks   int
	TechStack       []byte
	PricingStrategy string
	StrategyCost    float64
	BaseCost        float64
	MarginPercent   float64
	TotalCost       float64
	Profit          float64
	Status          string
	ProposalText    string
	CreatedAt       time.Time
}

const quoteColumns = `
	id, client_name, client_email, pages, complexity, timeline_weeks,
	tech_stack, pricing_strategy, strategy_cost, base_cost, margin_percent,
	total_cost, profit, status, proposal_text, created_at
`

// CreateQuote inserts the quote and its staffing rows as one transaction.
func (r *QuoteRepository) CreateQuote(ctx context.Context, quote model.Quote) (*model.Quote, error) {
	techStack, err := json.Marshal(quote.TechStack)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`
			INSERT INTO quotes (`+quoteColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			quote.ID,
			quote.ClientName,
			quote.ClientEmail,
			quote.Pages,
			quote.Complexity,
			quote.TimelineWeeks,
			techStack,
			quote.PricingStrategy,
			quote.StrategyCost,
			quote.BaseCost,
			quote.MarginPercent,
			quote.TotalCost,
			quote.Profit,
			quote.Status,
			quote.ProposalText,
			quote.CreatedAt,
		).Error; err != nil {
			return err
		}

		for _, assignment := range quote.Staffing {
			if err := tx.Exec(`
				INSERT INTO quote_team_members (quote_id, person_name, role_label, weekly_rate)
				VALUES (?, ?, ?, ?)
			`, quote.ID, assignment.PersonName, assignment.RoleLabel, assignment.WeeklyRate).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *QuoteRepository) GetQuote(ctx context.Context, id uuid.UUID) (*model.Quote, error) {
	var row quoteRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+quoteColumns+`
		FROM quotes
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}

	quote, err := rowToQuote(row)
	if err != nil {
		return nil, err
	}
	staffing, err := r.listStaffing(ctx, id)
	if err != nil {
		return nil, err
	}
	quote.Staffing = staffing
	return quote, nil
}

func (r *QuoteRepository) ListQuotes(ctx context.Context) ([]model.Quote, error) {
	var rows []quoteRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT ` + quoteColumns + `
		FROM quotes
		ORDER BY created_at DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	quotes := make([]model.Quote, 0, len(rows))
	for _, row := range rows {
		quote, err := rowToQuote(row)
		if err != nil {
			return nil, err
		}
		staffing, err := r.listStaffing(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		quote.Staffing = staffing
		quotes = append(quotes, *quote)
	}
	return quotes, nil
}

func (r *QuoteRepository) UpdateQuoteStatus(ctx context.Context, id uuid.UUID, status model.QuoteStatus) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE quotes SET status = ? WHERE id = ?
	`, status, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteQuote removes the quote; staffing rows go with it via cascade.
func (r *QuoteRepository) DeleteQuote(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM quotes WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SumQuoteTotalsByStatus sums total_cost over quotes with the given status
// created in [from, to).
func (r *QuoteRepository) SumQuoteTotalsByStatus(ctx context.Context, status model.QuoteStatus, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_cost), 0)
		FROM quotes
		WHERE status = ? AND created_at >= ? AND created_at < ?
	`, status, from, to).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *QuoteRepository) listStaffing(ctx context.Context, quoteID uuid.UUID) ([]model.StaffAssignment, error) {
	var staffing []model.StaffAssignment
	err := r.db.WithContext(ctx).Raw(`
		SELECT person_name, role_label, weekly_rate
		FROM quote_team_members
		WHERE quote_id = ?
		ORDER BY id ASC
	`, quoteID).Scan(&staffing).Error
	if err != nil {
		return nil, err
	}
	return staffing, nil
}

func rowToQuote(row quoteRow) (*model.Quote, error) {
	var techStack []string
	if len(row.TechStack) > 0 {
		if err := json.Unmarshal(row.TechStack, &techStack); err != nil {
			return nil, err
		}
	}
	return &model.Quote{
		ID:              row.ID,
		ClientName:      row.ClientName,
		ClientEmail:     row.ClientEmail,
		Pages:           row.Pages,
		Complexity:      row.Complexity,
		TimelineWeeks:   row.TimelineWeeks,
		TechStack:       techStack,
		PricingStrategy: row.PricingStrategy,
		StrategyCost:    row.StrategyCost,
		BaseCost:        row.BaseCost,
		MarginPercent:   row.MarginPercent,
		TotalCost:       row.TotalCost,
		Profit:          row.Profit,
		Status:          model.QuoteStatus(row.Status),
		ProposalText:    row.ProposalText,
		CreatedAt:       row.CreatedAt,
	}, nil
}
