package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Jonathan-Rajaratnam/project-management/internal/model"
)

type fakeCatalogStore struct {
	fakeCatalog
}

func newFakeCatalogStore() *fakeCatalogStore {
	return &fakeCatalogStore{fakeCatalog{components: map[string]model.PricingComponent{}}}
}

func (f *fakeCatalogStore) ListComponents(_ context.Context, category model.ComponentCategory) ([]model.PricingComponent, error) {
	var components []model.PricingComponent
	for _, component := range f.components {
		if component.Category == category {
			components = append(components, component)
		}
	}
	return components, nil
}

func (f *fakeCatalogStore) CreateComponent(_ context.Context, component model.PricingComponent) (*model.PricingComponent, error) {
	f.components[string(component.Category)+"/"+component.Name] = component
	return &component, nil
}

func (f *fakeCatalogStore) UpdateComponent(_ context.Context, component model.PricingComponent) error {
	for key, existing := range f.components {
		if existing.ID == component.ID {
			f.components[key] = component
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func TestCreateComponent(t *testing.T) {
	store := newFakeCatalogStore()
	svc := NewCatalogService(store, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.CreateComponent(ctx, model.PricingComponent{
		Category:   model.CategoryTechStack,
		Name:       "React",
		BasePrice:  500,
		Multiplier: 1.2,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.True(t, created.Active)

	found, err := svc.PriceOf(ctx, model.CategoryTechStack, "React")
	require.NoError(t, err)
	assert.InDelta(t, 600.0, found.EffectivePrice(), 1e-9)
}

func TestCreateComponentValidation(t *testing.T) {
	svc := NewCatalogService(newFakeCatalogStore(), zerolog.Nop())
	ctx := context.Background()

	cases := []struct {
		name      string
		component model.PricingComponent
	}{
		{"unknown category", model.PricingComponent{Category: "Discounts", Name: "X", Multiplier: 1}},
		{"empty name", model.PricingComponent{Category: model.CategoryComplexity, Name: " ", Multiplier: 1}},
		{"negative base price", model.PricingComponent{Category: model.CategoryComplexity, Name: "X", BasePrice: -1, Multiplier: 1}},
		{"zero multiplier", model.PricingComponent{Category: model.CategoryComplexity, Name: "X", Multiplier: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateComponent(ctx, tc.component)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestPriceOfNotFound(t *testing.T) {
	svc := NewCatalogService(newFakeCatalogStore(), zerolog.Nop())

	_, err := svc.PriceOf(context.Background(), model.CategoryComplexity, "Missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateComponent(t *testing.T) {
	store := newFakeCatalogStore()
	svc := NewCatalogService(store, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.CreateComponent(ctx, model.PricingComponent{
		Category:   model.CategoryPricingStrategy,
		Name:       "Premium",
		Multiplier: 1.1,
	})
	require.NoError(t, err)

	created.Multiplier = 1.25
	require.NoError(t, svc.UpdateComponent(ctx, *created))

	err = svc.UpdateComponent(ctx, model.PricingComponent{
		ID:         uuid.New(),
		Category:   model.CategoryPricingStrategy,
		Name:       "Premium",
		Multiplier: 1.1,
	})
	require.ErrorIs(t, err, ErrNotFound)
}
