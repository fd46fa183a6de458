package model

import (
	"time"

	"github.com/google/uuid"
)

type RoleType string

const (
	RoleTypeDeveloper RoleType = "Developer"
	RoleTypeDesigner  RoleType = "Designer"
)

type TeamMember struct {
	ID          uuid.UUID
	Name        string
	Role        string
	RoleType    RoleType
	DefaultRate float64
	Active      bool
	CreatedAt   time.Time
}
