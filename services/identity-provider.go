package services

import (
	"context"
	"errors"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/logging"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Errors the login flow distinguishes so the handler can word the response.
var (
	ErrNoAccount      = errors.New("no account with this email")
	ErrBadCredentials = errors.New("invalid credentials")
)

// IdentityProvider is the credential authority. The rest of the system
// treats it as an opaque service: accounts in, tokens out.
type IdentityProvider interface {
	CreateAccount(ctx context.Context, email, password, displayName string) (*models.Account, error)
	DeleteAccount(ctx context.Context, accountID string) error
	VerifyPassword(ctx context.Context, email, password string) (*models.Account, error)
	IssueToken(userID, email, role string) (string, error)
	VerifyToken(token string) (*TokenClaims, error)
}

// LocalIdentityProvider keeps credential records in their own collection,
// separate from user profiles, and signs its own tokens.
type LocalIdentityProvider struct {
	accounts AccountStore
	jwt      *JWTService
}

func NewLocalIdentityProvider(accounts AccountStore, jwt *JWTService) *LocalIdentityProvider {
	return &LocalIdentityProvider{accounts: accounts, jwt: jwt}
}

func (p *LocalIdentityProvider) CreateAccount(ctx context.Context, email, password, displayName string) (*models.Account, error) {
	existing, err := p.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	acc := &models.Account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		CreatedAt:    nowISO(),
	}
	if err := p.accounts.Insert(ctx, acc); err != nil {
		return nil, err
	}
	logging.Logger.Infof("Event ID: ACCOUNT_CREATED, Description: Identity account %s created", acc.ID)
	return acc, nil
}

func (p *LocalIdentityProvider) DeleteAccount(ctx context.Context, accountID string) error {
	return p.accounts.Delete(ctx, accountID)
}

func (p *LocalIdentityProvider) VerifyPassword(ctx context.Context, email, password string) (*models.Account, error) {
	acc, err := p.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrNoAccount
	}
	if acc.Disabled {
		return nil, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}
	return acc, nil
}

func (p *LocalIdentityProvider) IssueToken(userID, email, role string) (string, error) {
	return p.jwt.GenerateToken(userID, email, role)
}

func (p *LocalIdentityProvider) VerifyToken(token string) (*TokenClaims, error) {
	return p.jwt.VerifyToken(token)
}
