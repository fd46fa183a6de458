package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jonathan-Rajaratnam/project-management/internal/model"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetMemberByName(ctx context.Context, name string) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, role, role_type, default_rate, active, created_at
		FROM team_members
		WHERE name = ? AND active = TRUE
		LIMIT 1
	`, name).Scan(&member).Error
	if err != nil {
		return nil, err
	}
	if member.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &member, nil
}

// GetMemberByRole resolves an active member by the (name, role_type) pair,
// which is unique among active rows.
func (r *TeamRepository) GetMemberByRole(ctx context.Context, name string, roleType model.RoleType) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, role, role_type, default_rate, active, created_at
		FROM team_members
		WHERE name = ? AND role_type = ? AND active = TRUE
		LIMIT 1
	`, name, roleType).Scan(&member).Error
	if err != nil {
		return nil, err
	}
	if member.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &member, nil
}

func (r *TeamRepository) ListMembers(ctx context.Context, roleType model.RoleType) ([]model.TeamMember, error) {
	baseQuery := `
		SELECT id, name, role, role_type, default_rate, active, created_at
		FROM team_members
		WHERE active = TRUE
	`
	args := []interface{}{}
	if roleType != "" {
		baseQuery += " AND role_type = ?"
		args = append(args, roleType)
	}
	baseQuery += " ORDER BY name ASC"

	var members []model.TeamMember
	if err := r.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *TeamRepository) CreateMember(ctx context.Context, member model.TeamMember) (*model.TeamMember, error) {
	var saved model.TeamMember
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO team_members (id, name, role, role_type, default_rate, active)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, name, role, role_type, default_rate, active, created_at
	`,
		member.ID,
		member.Name,
		member.Role,
		member.RoleType,
		member.DefaultRate,
		member.Active,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *TeamRepository) UpdateMember(ctx context.Context, member model.TeamMember) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE team_members
		SET name = ?, role = ?, role_type = ?, default_rate = ?
		WHERE id = ?
	`, member.Name, member.Role, member.RoleType, member.DefaultRate, member.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeactivateMember soft-deletes so historical quotes keep their rows.
func (r *TeamRepository) DeactivateMember(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE team_members SET active = FALSE WHERE id = ?
	`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
