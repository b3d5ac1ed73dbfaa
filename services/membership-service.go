package services

import (
	"context"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/logging"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
)

type MembershipService struct {
	projects    ProjectStore
	memberships MembershipStore
	users       UserStore
}

func NewMembershipService(projects ProjectStore, memberships MembershipStore, users UserStore) *MembershipService {
	return &MembershipService{projects: projects, memberships: memberships, users: users}
}

// callerRole resolves the caller's role, defaulting to staff when the
// lookup fails or the profile is missing.
func (s *MembershipService) callerRole(ctx context.Context, userID string) models.Role {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		logging.Logger.Warnf("Event ID: MEMBERSHIP_ROLE_DEGRADED, Description: Role lookup failed for %s, defaulting to staff: %v", userID, err)
		return models.RoleStaff
	}
	if user == nil {
		return models.RoleStaff
	}
	return user.Role
}

// AddMember requires the caller to be the project owner or hold a
// manager-level role. Staff cannot manage membership.
func (s *MembershipService) AddMember(ctx context.Context, callerID, projectID, userID, role string) (*models.Membership, error) {
	if userID == "" {
		return nil, Validation("user_id is required")
	}

	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.Archived {
		return nil, ErrNotFound
	}
	if project.OwnerID != callerID && !s.callerRole(ctx, callerID).ManagerOrAbove() {
		return nil, ErrForbidden
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	existing, err := s.memberships.Get(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	if role == "" {
		role = "contributor"
	}
	membership := &models.Membership{
		ID:        models.MembershipID(projectID, userID),
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
		AddedAt:   nowISO(),
		AddedBy:   callerID,
	}
	if err := s.memberships.Insert(ctx, membership); err != nil {
		return nil, err
	}
	return membership, nil
}

// RemoveMember refuses to remove the project owner.
func (s *MembershipService) RemoveMember(ctx context.Context, callerID, projectID, userID string) error {
	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return err
	}
	if project == nil || project.Archived {
		return ErrNotFound
	}
	if project.OwnerID != callerID && !s.callerRole(ctx, callerID).ManagerOrAbove() {
		return ErrForbidden
	}
	if project.OwnerID == userID {
		return Validation("the project owner cannot be removed")
	}

	existing, err := s.memberships.Get(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.memberships.Delete(ctx, projectID, userID)
}

func (s *MembershipService) ListMembers(ctx context.Context, projectID string) ([]models.Membership, error) {
	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}
	return s.memberships.ListByProject(ctx, projectID)
}
