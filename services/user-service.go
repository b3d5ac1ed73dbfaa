package services

import (
	"context"
	"strings"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/logging"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
	"github.com/google/uuid"
)

type UserService struct {
	users    UserStore
	provider IdentityProvider
}

func NewUserService(users UserStore, provider IdentityProvider) *UserService {
	return &UserService{users: users, provider: provider}
}

type CreateUserInput struct {
	ID        string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ManagerID string `json:"manager_id"`
}

// CreateUser provisions a profile directly, without an identity-provider
// account. Admin and hr only; the normal path is registration.
func (s *UserService) CreateUser(ctx context.Context, callerID string, in CreateUserInput) (*models.User, error) {
	caller, err := s.users.Get(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller == nil || (caller.Role != models.RoleAdmin && caller.Role != models.RoleHR) {
		return nil, ErrForbidden
	}

	if strings.TrimSpace(in.Name) == "" {
		return nil, Validation("name must not be empty")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !strings.Contains(email, "@") {
		return nil, Validation("a valid email is required")
	}
	if in.Role != "" && !models.KnownRole(in.Role) {
		return nil, Validation("unknown role")
	}
	if in.ManagerID != "" {
		manager, err := s.users.Get(ctx, in.ManagerID)
		if err != nil {
			return nil, err
		}
		if manager == nil {
			return nil, ErrNotFound
		}
	}

	if in.ID != "" {
		existing, err := s.users.Get(ctx, in.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrConflict
		}
	}
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	now := nowISO()
	user := &models.User{
		ID:        id,
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Role:      models.ParseRole(in.Role),
		ManagerID: in.ManagerID,
		CreatedAt: now,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	logging.Logger.Infof("Event ID: USER_PROVISIONED, Description: User %s provisioned by %s", user.ID, callerID)
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.ListAll(ctx)
}

func (s *UserService) ListDirectReports(ctx context.Context, managerID string) ([]models.User, error) {
	return s.users.ListByManager(ctx, managerID)
}

type UpdateUserInput struct {
	Name      *string `json:"name"`
	ManagerID *string `json:"manager_id"`
}

// UpdateUser lets a user edit their own profile; admin and hr may edit
// anyone's.
func (s *UserService) UpdateUser(ctx context.Context, callerID, id string, in UpdateUserInput) (*models.User, error) {
	if callerID != id {
		caller, err := s.users.Get(ctx, callerID)
		if err != nil {
			return nil, err
		}
		if caller == nil || (caller.Role != models.RoleAdmin && caller.Role != models.RoleHR) {
			return nil, ErrForbidden
		}
	}

	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, Validation("name must not be empty")
		}
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.ManagerID != nil {
		if *in.ManagerID != "" {
			manager, err := s.users.Get(ctx, *in.ManagerID)
			if err != nil {
				return nil, err
			}
			if manager == nil {
				return nil, ErrNotFound
			}
		}
		user.ManagerID = *in.ManagerID
	}
	user.UpdatedAt = nowISO()
	if err := s.users.Replace(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangeRole is restricted to admin and hr, and only to known roles.
func (s *UserService) ChangeRole(ctx context.Context, callerID, id, role string) (*models.User, error) {
	if !models.KnownRole(role) {
		return nil, Validation("unknown role")
	}

	caller, err := s.users.Get(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller == nil || (caller.Role != models.RoleAdmin && caller.Role != models.RoleHR) {
		return nil, ErrForbidden
	}

	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	user.Role = models.ParseRole(role)
	user.UpdatedAt = nowISO()
	if err := s.users.Replace(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the profile and the identity-provider account behind
// it. Admin only.
func (s *UserService) DeleteUser(ctx context.Context, callerID, id string) error {
	caller, err := s.users.Get(ctx, callerID)
	if err != nil {
		return err
	}
	if caller == nil || caller.Role != models.RoleAdmin {
		return ErrForbidden
	}

	user, err := s.users.Get(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	if user.AccountID != "" {
		// The orphaned account only resolves to a deleted profile.
		if err := s.provider.DeleteAccount(ctx, user.AccountID); err != nil {
			logging.Logger.Warnf("Event ID: USER_ACCOUNT_ORPHANED, Description: Account %s cleanup after user %s deletion failed: %v", user.AccountID, id, err)
		}
	}
	return nil
}
