package services

import (
	"context"
	"strings"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/logging"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
	"github.com/google/uuid"
)

type AuthService struct {
	provider IdentityProvider
	users    UserStore
}

func NewAuthService(provider IdentityProvider, users UserStore) *AuthService {
	return &AuthService{provider: provider, users: users}
}

type RegisterInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	ManagerID string `json:"manager_id"`
}

type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register creates the identity-provider account first, then the local
// profile. A failed profile write rolls the provider account back so the
// two never diverge.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" {
		return nil, Validation("name must not be empty")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, Validation("a valid email is required")
	}
	if len(in.Password) < 8 {
		return nil, Validation("password must be at least 8 characters")
	}
	if in.Role != "" && !models.KnownRole(in.Role) {
		return nil, Validation("unknown role")
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	acc, err := s.provider.CreateAccount(ctx, email, in.Password, name)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Role:      models.ParseRole(in.Role),
		ManagerID: in.ManagerID,
		AccountID: acc.ID,
		CreatedAt: nowISO(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		logging.Logger.Errorf("Event ID: REGISTER_ROLLBACK, Description: Profile write for %s failed, rolling back account %s: %v", email, acc.ID, err)
		if rbErr := s.provider.DeleteAccount(ctx, acc.ID); rbErr != nil {
			logging.Logger.Errorf("Event ID: REGISTER_ROLLBACK_FAILED, Description: Account %s rollback failed: %v", acc.ID, rbErr)
		}
		return nil, err
	}

	token, err := s.provider.IssueToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	logging.Logger.Infof("Event ID: USER_REGISTERED, Description: User %s registered", user.ID)
	return &AuthResult{Token: token, User: user}, nil
}

// Login accepts either an existing provider token or email+password.
func (s *AuthService) Login(ctx context.Context, token, email, password string) (*AuthResult, error) {
	if token != "" {
		return s.Verify(ctx, token)
	}
	if email == "" || password == "" {
		return nil, Validation("email and password are required")
	}

	acc, err := s.provider.VerifyPassword(ctx, strings.ToLower(strings.TrimSpace(email)), password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, acc.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	fresh, err := s.provider.IssueToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: fresh, User: user}, nil
}

// Verify checks a token and returns the associated profile with the same
// token echoed back.
func (s *AuthService) Verify(ctx context.Context, token string) (*AuthResult, error) {
	claims, err := s.provider.VerifyToken(token)
	if err != nil {
		return nil, ErrBadCredentials
	}
	user, err := s.users.Get(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return &AuthResult{Token: token, User: user}, nil
}
