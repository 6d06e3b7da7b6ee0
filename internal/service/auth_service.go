package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kg-3rd/grand-adventure-hub/internal/config"
	"github.com/kg-3rd/grand-adventure-hub/internal/ids"
	"github.com/kg-3rd/grand-adventure-hub/internal/models"
	"github.com/kg-3rd/grand-adventure-hub/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AdminUserStore interface {
	GetByEmail(ctx context.Context, email string) (models.AdminUser, error)
	Create(ctx context.Context, user models.AdminUser) error
}

type AuthService struct {
	admins AdminUserStore
	cfg    *config.AppConfig
	log    zerolog.Logger
}

func NewAuthService(admins AdminUserStore, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		admins: admins,
		cfg:    cfg,
		log:    log,
	}
}

type AuthResult struct {
	AccessToken string
	User        models.AdminUser
}

// Login verifies the password and issues a token carrying the admin role as
// a signed claim. Lookup and verification failures collapse into one error
// so the response does not reveal which part failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := security.GenerateAccessToken(
		s.cfg.Security.JWTSecret,
		user.ID,
		models.RoleAdmin,
		s.cfg.Security.JWTAccessTTL,
	)
	if err != nil {
		return AuthResult{}, err
	}

	s.log.Info().Str("admin_id", user.ID).Msg("admin signed in")
	return AuthResult{AccessToken: token, User: user}, nil
}

// EnsureBootstrapAdmin creates the configured bootstrap admin if missing.
// Called once at startup; a no-op when bootstrap credentials are unset or
// the email already exists.
func (s *AuthService) EnsureBootstrapAdmin(ctx context.Context) error {
	email := strings.ToLower(strings.TrimSpace(s.cfg.Security.BootstrapAdminEmail))
	password := s.cfg.Security.BootstrapAdminPassword
	if email == "" || password == "" {
		return nil
	}

	if _, err := s.admins.GetByEmail(ctx, email); err == nil {
		return nil
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return err
	}

	if err := s.admins.Create(ctx, models.AdminUser{
		ID:           ids.New(),
		Email:        email,
		PasswordHash: hash,
	}); err != nil {
		return err
	}

	s.log.Info().Str("email", email).Msg("bootstrap admin created")
	return nil
}
