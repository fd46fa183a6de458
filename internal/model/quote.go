package model

import (
	"time"

	"github.com/google/uuid"
)

type QuoteStatus string

const (
	QuoteStatusPending    QuoteStatus = "Pending"
	QuoteStatusApproved   QuoteStatus = "Approved"
	QuoteStatusRejected   QuoteStatus = "Rejected"
	QuoteStatusInProgress QuoteStatus = "InProgress"
	QuoteStatusCompleted  QuoteStatus = "Completed"
)

// StaffAssignment is one roster row on a quote. PersonName may be empty
// (an unfilled slot that contributes no cost). WeeklyRate of zero means
// "resolve from the team member's default rate".
type StaffAssignment struct {
	PersonName string
	RoleLabel  string
	WeeklyRate float64
}

type Quote struct {
	ID              uuid.UUID
	ClientName      string
	ClientEmail     string
	Pages           int
	Complexity      string
	TimelineWeeks   int
	TechStack       []string
	PricingStrategy string
	StrategyCost    float64
	Staffing        []StaffAssignment
	BaseCost        float64
	MarginPercent   float64
	TotalCost       float64
	Profit          float64
	Status          QuoteStatus
	ProposalText    string
	CreatedAt       time.Time
}

// LineItem is one labeled contribution to a quote's cost breakdown.
type LineItem struct {
	Label  string
	Amount float64
}

// Breakdown is the itemized output of a quote computation. TotalCost and
// Profit are derived values and never edited independently.
type Breakdown struct {
	BaseCost      float64
	MarginPercent float64
	MarginPeriod  string
	TotalCost     float64
	Profit        float64
	LineItems     []LineItem
	Warnings      []string
}
