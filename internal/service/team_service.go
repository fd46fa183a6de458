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

type TeamStore interface {
	TeamReader
	GetMemberByRole(ctx context.Context, name string, roleType model.RoleType) (*model.TeamMember, error)
	ListMembers(ctx context.Context, roleType model.RoleType) ([]model.TeamMember, error)
	CreateMember(ctx context.Context, member model.TeamMember) (*model.TeamMember, error)
	UpdateMember(ctx context.Context, member model.TeamMember) error
	DeactivateMember(ctx context.Context, id uuid.UUID) error
}

type TeamService struct {
	team TeamStore
	log  zerolog.Logger
}

func NewTeamService(team TeamStore, log zerolog.Logger) *TeamService {
	return &TeamService{team: team, log: log}
}

func (s *TeamService) ListMembers(ctx context.Context, roleType model.RoleType) ([]model.TeamMember, error) {
	if roleType != "" && roleType != model.RoleTypeDeveloper && roleType != model.RoleTypeDesigner {
		return nil, fmt.Errorf("%w: unknown role type %q", ErrInvalidInput, roleType)
	}
	return s.team.ListMembers(ctx, roleType)
}

func (s *TeamService) AddMember(ctx context.Context, member model.TeamMember) (*model.TeamMember, error) {
	if err := validateMember(member); err != nil {
		return nil, err
	}

	existing, err := s.team.GetMemberByRole(ctx, member.Name, member.RoleType)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s %q", ErrDuplicateMember, member.RoleType, member.Name)
	}

	member.ID = uuid.New()
	member.Active = true
	created, err := s.team.CreateMember(ctx, member)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("name", created.Name).Str("role", created.Role).Msg("team member added")
	return created, nil
}

func (s *TeamService) UpdateMember(ctx context.Context, member model.TeamMember) error {
	if member.ID == uuid.Nil {
		return fmt.Errorf("%w: member id is required", ErrInvalidInput)
	}
	if err := validateMember(member); err != nil {
		return err
	}
	if err := s.team.UpdateMember(ctx, member); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// RemoveMember deactivates rather than deletes, so saved quotes keep
// resolving historical roster rows.
func (s *TeamService) RemoveMember(ctx context.Context, id uuid.UUID) error {
	if err := s.team.DeactivateMember(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validateMember(member model.TeamMember) error {
	if strings.TrimSpace(member.Name) == "" {
		return fmt.Errorf("%w: member name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(member.Role) == "" {
		return fmt.Errorf("%w: member role is required", ErrInvalidInput)
	}
	if member.RoleType != model.RoleTypeDeveloper && member.RoleType != model.RoleTypeDesigner {
		return fmt.Errorf("%w: unknown role type %q", ErrInvalidInput, member.RoleType)
	}
	if member.DefaultRate < 0 {
		return fmt.Errorf("%w: default_rate must not be negative", ErrInvalidInput)
	}
	return nil
}
