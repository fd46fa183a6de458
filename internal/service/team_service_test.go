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

type fakeTeamStore struct {
	members []model.TeamMember
}

func newFakeTeamStore() *fakeTeamStore {
	return &fakeTeamStore{}
}

func (f *fakeTeamStore) GetMemberByName(_ context.Context, name string) (*model.TeamMember, error) {
	for _, member := range f.members {
		if member.Name == name && member.Active {
			return &member, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTeamStore) GetMemberByRole(_ context.Context, name string, roleType model.RoleType) (*model.TeamMember, error) {
	for _, member := range f.members {
		if member.Name == name && member.RoleType == roleType && member.Active {
			return &member, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTeamStore) ListMembers(_ context.Context, roleType model.RoleType) ([]model.TeamMember, error) {
	var members []model.TeamMember
	for _, member := range f.members {
		if roleType == "" || member.RoleType == roleType {
			members = append(members, member)
		}
	}
	return members, nil
}

func (f *fakeTeamStore) CreateMember(_ context.Context, member model.TeamMember) (*model.TeamMember, error) {
	f.members = append(f.members, member)
	return &member, nil
}

func (f *fakeTeamStore) UpdateMember(_ context.Context, member model.TeamMember) error {
	for i, existing := range f.members {
		if existing.ID == member.ID {
			f.members[i] = member
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeTeamStore) DeactivateMember(_ context.Context, id uuid.UUID) error {
	for i, existing := range f.members {
		if existing.ID == id {
			f.members[i].Active = false
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func TestAddMember(t *testing.T) {
	store := newFakeTeamStore()
	svc := NewTeamService(store, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.AddMember(ctx, model.TeamMember{
		Name:        "Alice",
		Role:        "Senior Developer",
		RoleType:    model.RoleTypeDeveloper,
		DefaultRate: 1500,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.True(t, created.Active)
}

func TestAddMemberRejectsDuplicate(t *testing.T) {
	store := newFakeTeamStore()
	svc := NewTeamService(store, zerolog.Nop())
	ctx := context.Background()

	member := model.TeamMember{
		Name:        "Alice",
		Role:        "Developer",
		RoleType:    model.RoleTypeDeveloper,
		DefaultRate: 1000,
	}
	_, err := svc.AddMember(ctx, member)
	require.NoError(t, err)

	_, err = svc.AddMember(ctx, member)
	require.ErrorIs(t, err, ErrDuplicateMember)
}

func TestAddMemberAllowsSameNameAcrossRoleTypes(t *testing.T) {
	store := newFakeTeamStore()
	svc := NewTeamService(store, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.AddMember(ctx, model.TeamMember{
		Name:        "Alice",
		Role:        "Designer",
		RoleType:    model.RoleTypeDesigner,
		DefaultRate: 900,
	})
	require.NoError(t, err)

	// The same name under a different role type is a distinct member.
	_, err = svc.AddMember(ctx, model.TeamMember{
		Name:        "Alice",
		Role:        "Developer",
		RoleType:    model.RoleTypeDeveloper,
		DefaultRate: 1200,
	})
	require.NoError(t, err)
	require.Len(t, store.members, 2)

	// With both role-type rows present, re-adding either is still caught.
	_, err = svc.AddMember(ctx, model.TeamMember{
		Name:        "Alice",
		Role:        "Developer",
		RoleType:    model.RoleTypeDeveloper,
		DefaultRate: 1200,
	})
	require.ErrorIs(t, err, ErrDuplicateMember)

	_, err = svc.AddMember(ctx, model.TeamMember{
		Name:        "Alice",
		Role:        "Designer",
		RoleType:    model.RoleTypeDesigner,
		DefaultRate: 900,
	})
	require.ErrorIs(t, err, ErrDuplicateMember)
	require.Len(t, store.members, 2)
}

func TestAddMemberValidation(t *testing.T) {
	svc := NewTeamService(newFakeTeamStore(), zerolog.Nop())
	ctx := context.Background()

	cases := []struct {
		name   string
		member model.TeamMember
	}{
		{"empty name", model.TeamMember{Role: "Developer", RoleType: model.RoleTypeDeveloper}},
		{"empty role", model.TeamMember{Name: "Alice", RoleType: model.RoleTypeDeveloper}},
		{"unknown role type", model.TeamMember{Name: "Alice", Role: "Developer", RoleType: "Manager"}},
		{"negative rate", model.TeamMember{Name: "Alice", Role: "Developer", RoleType: model.RoleTypeDeveloper, DefaultRate: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddMember(ctx, tc.member)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListMembersFilter(t *testing.T) {
	store := newFakeTeamStore()
	svc := NewTeamService(store, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.AddMember(ctx, model.TeamMember{Name: "Alice", Role: "Developer", RoleType: model.RoleTypeDeveloper, DefaultRate: 1000})
	require.NoError(t, err)
	_, err = svc.AddMember(ctx, model.TeamMember{Name: "Dana", Role: "Designer", RoleType: model.RoleTypeDesigner, DefaultRate: 900})
	require.NoError(t, err)

	designers, err := svc.ListMembers(ctx, model.RoleTypeDesigner)
	require.NoError(t, err)
	require.Len(t, designers, 1)
	assert.Equal(t, "Dana", designers[0].Name)

	_, err = svc.ListMembers(ctx, "Manager")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRemoveMemberDeactivates(t *testing.T) {
	store := newFakeTeamStore()
	svc := NewTeamService(store, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.AddMember(ctx, model.TeamMember{Name: "Alice", Role: "Developer", RoleType: model.RoleTypeDeveloper, DefaultRate: 1000})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveMember(ctx, created.ID))
	require.Len(t, store.members, 1)
	assert.False(t, store.members[0].Active)

	err = svc.RemoveMember(ctx, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}
