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

// CatalogReader resolves active pricing components by category and name.
// Absence is reported as gorm.ErrRecordNotFound.
type CatalogReader interface {
	PriceOf(ctx context.Context, category model.ComponentCategory, name string) (*model.PricingComponent, error)
}

// MarginReader looks up the recorded profit margin for a period key. The
// boolean reports whether a record exists.
type MarginReader interface {
	MarginForPeriod(ctx context.Context, periodKey string) (float64, bool, error)
}

// TeamReader resolves a team member's default weekly rate by name.
type TeamReader interface {
	GetMemberByName(ctx context.Context, name string) (*model.TeamMember, error)
}

type QuoteStore interface {
	CreateQuote(ctx context.Context, quote model.Quote) (*model.Quote, error)
	GetQuote(ctx context.Context, id uuid.UUID) (*model.Quote, error)
	ListQuotes(ctx context.Context) ([]model.Quote, error)
	UpdateQuoteStatus(ctx context.Context, id uuid.UUID, status model.QuoteStatus) error
	DeleteQuote(ctx context.Context, id uuid.UUID) error
}

// QuoteService computes quote breakdowns and manages persisted quotes.
// Computation is a deterministic function of the catalog, margin history,
// and roster snapshots it reads; it never mutates any of them.
type QuoteService struct {
	catalog CatalogReader
	margins MarginReader
	team    TeamReader
	quotes  QuoteStore
	log     zerolog.Logger
	now     func() time.Time
}

func NewQuoteService(catalog CatalogReader, margins MarginReader, team TeamReader, quotes QuoteStore, log zerolog.Logger) *QuoteService {
	return &QuoteService{
		catalog: catalog,
		margins: margins,
		team:    team,
		quotes:  quotes,
		log:     log,
		now:     time.Now,
	}
}

type ComputeQuoteInput struct {
	Staffing        []model.StaffAssignment
	TimelineWeeks   int
	TechStack       []string
	Complexity      string
	PricingStrategy string
}

type CreateQuoteInput struct {
	ClientName   string
	ClientEmail  string
	Pages        int
	ProposalText string
	ComputeQuoteInput
}

type CreateQuoteResult struct {
	Quote     model.Quote
	Breakdown model.Breakdown
}

// ComputeQuote runs the pricing sequence: staffing cost, technology-stack
// cost, complexity cost, prior-period margin, then the pricing-strategy
// adjustment. Each contribution becomes a labeled line item.
func (s *QuoteService) ComputeQuote(ctx context.Context, input ComputeQuoteInput) (*model.Breakdown, error) {
	if input.TimelineWeeks < 1 {
		return nil, fmt.Errorf("%w: timeline_weeks must be at least 1", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Complexity) == "" {
		return nil, fmt.Errorf("%w: complexity tier is required", ErrInvalidInput)
	}
	for _, assignment := range input.Staffing {
		if assignment.WeeklyRate < 0 {
			return nil, fmt.Errorf("%w: weekly_rate for %q must not be negative", ErrInvalidInput, assignment.PersonName)
		}
	}

	breakdown := &model.Breakdown{}
	baseCost := 0.0

	staffing, warnings, err := s.resolveStaffing(ctx, input.Staffing)
	if err != nil {
		return nil, err
	}
	breakdown.Warnings = warnings
	for _, assignment := range staffing {
		cost := assignment.WeeklyRate * float64(input.TimelineWeeks)
		baseCost += cost
		breakdown.LineItems = append(breakdown.LineItems, model.LineItem{
			Label:  fmt.Sprintf("Staffing: %s (%s)", assignment.PersonName, assignment.RoleLabel),
			Amount: cost,
		})
	}

	for _, tech := range input.TechStack {
		component, err := s.catalog.PriceOf(ctx, model.CategoryTechStack, tech)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, fmt.Errorf("%w: technology stack item %q", ErrUnknownComponent, tech)
			}
			return nil, err
		}
		cost := component.EffectivePrice()
		baseCost += cost
		breakdown.LineItems = append(breakdown.LineItems, model.LineItem{
			Label:  fmt.Sprintf("Technology: %s", tech),
			Amount: cost,
		})
	}

	complexity, err := s.catalog.PriceOf(ctx, model.CategoryComplexity, input.Complexity)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: complexity tier %q", ErrUnknownComponent, input.Complexity)
		}
		return nil, err
	}
	complexityCost := complexity.EffectivePrice()
	baseCost += complexityCost
	breakdown.LineItems = append(breakdown.LineItems, model.LineItem{
		Label:  fmt.Sprintf("Complexity: %s", input.Complexity),
		Amount: complexityCost,
	})

	periodKey := MarginPeriodKey(s.now())
	marginPercent, found, err := s.margins.MarginForPeriod(ctx, periodKey)
	if err != nil {
		return nil, err
	}
	if !found {
		marginPercent = DefaultMarginPercent
	}

	total := baseCost * (1 + marginPercent/100)

	switch {
	case input.PricingStrategy == model.PsychologicalPricingStrategy:
		adjusted := PsychologicalPrice(total)
		breakdown.LineItems = append(breakdown.LineItems, model.LineItem{
			Label:  "Pricing strategy: " + model.PsychologicalPricingStrategy,
			Amount: adjusted - total,
		})
		total = adjusted
	case strings.TrimSpace(input.PricingStrategy) != "":
		strategy, err := s.catalog.PriceOf(ctx, model.CategoryPricingStrategy, input.PricingStrategy)
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				return nil, err
			}
			// Non-fatal: a strategy without a multiplier leaves the total
			// unchanged but must be surfaced, never swallowed.
			breakdown.Warnings = append(breakdown.Warnings,
				fmt.Sprintf("%s: %s", ErrStrategyNotPriced, input.PricingStrategy))
			s.log.Warn().Str("strategy", input.PricingStrategy).Msg("pricing strategy has no catalog multiplier")
		} else {
			adjusted := total * strategy.Multiplier
			breakdown.LineItems = append(breakdown.LineItems, model.LineItem{
				Label:  fmt.Sprintf("Pricing strategy: %s (x%g)", input.PricingStrategy, strategy.Multiplier),
				Amount: adjusted - total,
			})
			total = adjusted
		}
	}

	breakdown.BaseCost = baseCost
	breakdown.MarginPercent = marginPercent
	breakdown.MarginPeriod = periodKey
	breakdown.TotalCost = total
	breakdown.Profit = total - baseCost

	s.log.Debug().
		Float64("base_cost", breakdown.BaseCost).
		Float64("margin_percent", breakdown.MarginPercent).
		Str("margin_period", periodKey).
		Float64("total_cost", breakdown.TotalCost).
		Float64("profit", breakdown.Profit).
		Int("line_items", len(breakdown.LineItems)).
		Msg("quote computed")

	return breakdown, nil
}

// CreateQuote computes a breakdown and persists it with the caller-supplied
// client fields. When persistence fails the computed result is still
// returned alongside the error, so the caller can retry the save without
// recomputation.
func (s *QuoteService) CreateQuote(ctx context.Context, input CreateQuoteInput) (*CreateQuoteResult, error) {
	if strings.TrimSpace(input.ClientName) == "" {
		return nil, fmt.Errorf("%w: client_name is required", ErrInvalidInput)
	}
	if input.Pages < 1 {
		return nil, fmt.Errorf("%w: pages must be at least 1", ErrInvalidInput)
	}

	breakdown, err := s.ComputeQuote(ctx, input.ComputeQuoteInput)
	if err != nil {
		return nil, err
	}
	staffing, _, err := s.resolveStaffing(ctx, input.Staffing)
	if err != nil {
		return nil, err
	}

	quote := model.Quote{
		ID:              uuid.New(),
		ClientName:      strings.TrimSpace(input.ClientName),
		ClientEmail:     strings.TrimSpace(input.ClientEmail),
		Pages:           input.Pages,
		Complexity:      input.Complexity,
		TimelineWeeks:   input.TimelineWeeks,
		TechStack:       input.TechStack,
		PricingStrategy: input.PricingStrategy,
		Staffing:        staffing,
		BaseCost:        breakdown.BaseCost,
		MarginPercent:   breakdown.MarginPercent,
		TotalCost:       breakdown.TotalCost,
		Profit:          breakdown.Profit,
		Status:          model.QuoteStatusPending,
		ProposalText:    input.ProposalText,
		CreatedAt:       s.now(),
	}

	result := &CreateQuoteResult{Quote: quote, Breakdown: *breakdown}

	saved, err := s.quotes.CreateQuote(ctx, quote)
	if err != nil {
		return result, fmt.Errorf("save quote: %w", err)
	}
	result.Quote = *saved

	s.log.Info().
		Str("quote_id", saved.ID.String()).
		Str("client", saved.ClientName).
		Float64("total_cost", saved.TotalCost).
		Msg("quote saved")
	return result, nil
}

func (s *QuoteService) GetQuote(ctx context.Context, id uuid.UUID) (*model.Quote, error) {
	quote, err := s.quotes.GetQuote(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return quote, nil
}

func (s *QuoteService) ListQuotes(ctx context.Context) ([]model.Quote, error) {
	return s.quotes.ListQuotes(ctx)
}

func (s *QuoteService) UpdateQuoteStatus(ctx context.Context, id uuid.UUID, status model.QuoteStatus) error {
	switch status {
	case model.QuoteStatusPending, model.QuoteStatusApproved, model.QuoteStatusRejected,
		model.QuoteStatusInProgress, model.QuoteStatusCompleted:
	default:
		return fmt.Errorf("%w: unknown quote status %q", ErrInvalidInput, status)
	}
	if err := s.quotes.UpdateQuoteStatus(ctx, id, status); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *QuoteService) DeleteQuote(ctx context.Context, id uuid.UUID) error {
	if err := s.quotes.DeleteQuote(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// resolveStaffing drops unfilled roster slots and fills missing weekly
// rates from the team roster defaults. A named person without a roster
// entry and without an explicit rate is costed at zero with a warning.
func (s *QuoteService) resolveStaffing(ctx context.Context, staffing []model.StaffAssignment) ([]model.StaffAssignment, []string, error) {
	resolved := make([]model.StaffAssignment, 0, len(staffing))
	var warnings []string
	for _, assignment := range staffing {
		if assignment.PersonName == "" {
			continue
		}
		if assignment.WeeklyRate == 0 {
			member, err := s.team.GetMemberByName(ctx, assignment.PersonName)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					warnings = append(warnings,
						fmt.Sprintf("no default rate found for %s; assignment costed at zero", assignment.PersonName))
					continue
				}
				return nil, nil, err
			}
			assignment.WeeklyRate = member.DefaultRate
			if assignment.RoleLabel == "" {
				assignment.RoleLabel = member.Role
			}
		}
		resolved = append(resolved, assignment)
	}
	return resolved, warnings, nil
}
