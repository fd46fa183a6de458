package model

import (
	"time"

	"github.com/google/uuid"
)

type ComponentCategory string

const (
	CategoryTechStack       ComponentCategory = "Technology Stack"
	CategoryComplexity      ComponentCategory = "Complexity"
	CategoryPricingStrategy ComponentCategory = "Pricing Strategy"
)

// PsychologicalPricingStrategy is the one strategy priced by the rounding
// rule instead of a catalog multiplier.
const PsychologicalPricingStrategy = "Psychological Pricing"

// PricingComponent is a named, priced catalog entry. Name is unique within
// a category; lookups are case-sensitive exact match.
type PricingComponent struct {
	ID          uuid.UUID
	Category    ComponentCategory
	Name        string
	BasePrice   float64
	Multiplier  float64
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EffectivePrice is base price scaled by the component multiplier.
func (c PricingComponent) EffectivePrice() float64 {
	return c.BasePrice * c.Multiplier
}
