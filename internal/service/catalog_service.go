package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Jonathan-Rajaratnam/project-management/internal/model"
)

type CatalogStore interface {
	CatalogReader
	ListComponents(ctx context.Context, category model.ComponentCategory) ([]model.PricingComponent, error)
	CreateComponent(ctx context.Context, component model.PricingComponent) (*model.PricingComponent, error)
	UpdateComponent(ctx context.Context, component model.PricingComponent) error
}

// CatalogService manages the pricing component catalog. Edits only affect
// future quotes; saved quotes keep the figures they were computed with.
type CatalogService struct {
	catalog CatalogStore
	log     zerolog.Logger
}

func NewCatalogService(catalog CatalogStore, log zerolog.Logger) *CatalogService {
	return &CatalogService{catalog: catalog, log: log}
}

func (s *CatalogService) PriceOf(ctx context.Context, category model.ComponentCategory, name string) (*model.PricingComponent, error) {
	if err := validCategory(category); err != nil {
		return nil, err
	}
	component, err := s.catalog.PriceOf(ctx, category, name)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: %s %q", ErrNotFound, category, name)
		}
		return nil, err
	}
	return component, nil
}

func (s *CatalogService) ListComponents(ctx context.Context, category model.ComponentCategory) ([]model.PricingComponent, error) {
	if err := validCategory(category); err != nil {
		return nil, err
	}
	return s.catalog.ListComponents(ctx, category)
}

func (s *CatalogService) CreateComponent(ctx context.Context, component model.PricingComponent) (*model.PricingComponent, error) {
	if err := validateComponent(component); err != nil {
		return nil, err
	}
	component.ID = uuid.New()
	component.Active = true
	created, err := s.catalog.CreateComponent(ctx, component)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("category", string(created.Category)).
		Str("name", created.Name).
		Msg("pricing component created")
	return created, nil
}

func (s *CatalogService) UpdateComponent(ctx context.Context, component model.PricingComponent) error {
	if component.ID == uuid.Nil {
		return fmt.Errorf("%w: component id is required", ErrInvalidInput)
	}
	if err := validateComponent(component); err != nil {
		return err
	}
	if err := s.catalog.UpdateComponent(ctx, component); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validateComponent(component model.PricingComponent) error {
	if err := validCategory(component.Category); err != nil {
		return err
	}
	if strings.TrimSpace(component.Name) == "" {
		return fmt.Errorf("%w: component name is required", ErrInvalidInput)
	}
	if component.BasePrice < 0 {
		return fmt.Errorf("%w: base_price must not be negative", ErrInvalidInput)
	}
	if component.Multiplier <= 0 {
		return fmt.Errorf("%w: multiplier must be positive", ErrInvalidInput)
	}
	return nil
}

func validCategory(category model.ComponentCategory) error {
	switch category {
	case model.CategoryTechStack, model.CategoryComplexity, model.CategoryPricingStrategy:
		return nil
	default:
		return fmt.Errorf("%w: unknown component category %q", ErrInvalidInput, category)
	}
}
