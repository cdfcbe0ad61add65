package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/rahulmenon/labtrack-backend/pkg/auth"
	"github.com/rahulmenon/labtrack-backend/pkg/config"
	pkgerrors "github.com/rahulmenon/labtrack-backend/pkg/errors"
)

// LoginInput carries the admin console credentials.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenDTO is the wire shape of a minted console session.
type TokenDTO struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	Email       string    `json:"email"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// SessionManager is the slice of the redis session store the service needs.
type SessionManager interface {
	Create(ctx context.Context, accessID, email string) error
	Has(ctx context.Context, accessID string) (bool, error)
	Revoke(ctx context.Context, accessID string) error
}

// ServiceParams groups dependencies for the admin auth service.
type ServiceParams struct {
	Admin    config.AdminConfig
	JWT      config.JWTConfig
	Sessions SessionManager
	Now      func() time.Time
}

// Service handles the demo admin credential check for the console. It only
// gates the console login itself; the inventory endpoints stay open.
type Service interface {
	Login(ctx context.Context, input LoginInput) (TokenDTO, error)
	Logout(ctx context.Context, tokenString string) error
}

type service struct {
	admin    config.AdminConfig
	jwt      config.JWTConfig
	sessions SessionManager
	now      func() time.Time
}

// NewService builds an admin auth service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Admin.Email == "" || params.Admin.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "admin credentials are required")
	}
	if params.Sessions == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session manager is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		admin:    params.Admin,
		jwt:      params.JWT,
		sessions: params.Sessions,
		now:      now,
	}, nil
}

// Login checks the configured demo credential and mints a console token with
// a live session behind it. Both comparisons run in constant time.
func (s *service) Login(ctx context.Context, input LoginInput) (TokenDTO, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(input.Email), []byte(s.admin.Email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(input.Password), []byte(s.admin.Password)) == 1
	if !emailOK || !passwordOK {
		return TokenDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	signed, claims, err := auth.MintAdminToken(s.jwt, s.now(), input.Email)
	if err != nil {
		return TokenDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to mint token")
	}
	if err := s.sessions.Create(ctx, claims.ID, input.Email); err != nil {
		return TokenDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to create session")
	}

	return TokenDTO{
		AccessToken: signed,
		TokenType:   "bearer",
		Email:       input.Email,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// Logout revokes the session behind the presented token. An unparsable token
// or one whose session is already gone is treated as unauthorized rather than
// a silent success.
func (s *service) Logout(ctx context.Context, tokenString string) error {
	if tokenString == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "token is required")
	}
	claims, err := auth.ParseAdminToken(s.jwt, tokenString)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token")
	}
	live, err := s.sessions.Has(ctx, claims.ID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to check session")
	}
	if !live {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "session not found")
	}
	if err := s.sessions.Revoke(ctx, claims.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to revoke session")
	}
	return nil
}
