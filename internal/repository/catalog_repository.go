package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jonathan-Rajaratnam/project-management/internal/model"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// PriceOf resolves an active component by exact category and name.
func (r *CatalogRepository) PriceOf(ctx context.Context, category model.ComponentCategory, name string) (*model.PricingComponent, error) {
	var component model.PricingComponent
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, category, name, base_price, multiplier, description, active, created_at, updated_at
		FROM pricing_components
		WHERE category = ? AND name = ? AND active = TRUE
		LIMIT 1
	`, category, name).Scan(&component).Error
	if err != nil {
		return nil, err
	}
	if component.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &component, nil
}

func (r *CatalogRepository) ListComponents(ctx context.Context, category model.ComponentCategory) ([]model.PricingComponent, error) {
	var components []model.PricingComponent
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, category, name, base_price, multiplier, description, active, created_at, updated_at
		FROM pricing_components
		WHERE category = ? AND active = TRUE
		ORDER BY name ASC
	`, category).Scan(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

func (r *CatalogRepository) CreateComponent(ctx context.Context, component model.PricingComponent) (*model.PricingComponent, error) {
	var saved model.PricingComponent
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO pricing_components (id, category, name, base_price, multiplier, description, active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id, category, name, base_price, multiplier, description, active, created_at, updated_at
	`,
		component.ID,
		component.Category,
		component.Name,
		component.BasePrice,
		component.Multiplier,
		component.Description,
		component.Active,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *CatalogRepository) UpdateComponent(ctx context.Context, component model.PricingComponent) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE pricing_components
		SET name = ?, base_price = ?, multiplier = ?, description = ?, active = ?, updated_at = NOW()
		WHERE id = ?
	`,
		component.Name,
		component.BasePrice,
		component.Multiplier,
		component.Description,
		component.Active,
		component.ID,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
