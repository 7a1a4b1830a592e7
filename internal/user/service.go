package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/VehicleShare/VehicleShare/internal/common/apperr"
	"github.com/VehicleShare/VehicleShare/internal/common/auth"
	"github.com/VehicleShare/VehicleShare/internal/common/config"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service covers account sign-up, login and profile management.
type Service struct {
	repo    *Repo
	authCfg config.AuthConfig
}

func NewService(repo *Repo, authCfg config.AuthConfig) *Service {
	return &Service{repo: repo, authCfg: authCfg}
}

type SignUpInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	DisplayName     string `json:"display_name"`
	CompanyName     string `json:"company_name"`
	IsBusiness      bool   `json:"is_business"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the result of a successful sign-up or login.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Profile   *Profile  `json:"profile"`
}

func (s *Service) tokenTTL() time.Duration {
	hours := s.authCfg.TokenTTLHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*Session, error) {
	if s == nil || s.repo == nil {
		return nil, apperr.Internal(errors.New("service not initialized"))
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	displayName := strings.TrimSpace(in.DisplayName)
	switch {
	case email == "" || !strings.Contains(email, "@"):
		return nil, apperr.Validation("valid email required")
	case len(in.Password) < 8:
		return nil, apperr.Validation("password must be at least 8 characters")
	case in.Password != in.PasswordConfirm:
		return nil, apperr.Validation("password confirmation does not match")
	case displayName == "":
		return nil, apperr.Validation("display_name required")
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, apperr.Conflict("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	id := uuid.NewString()
	u := &User{ID: id, Email: email, PasswordHash: hash}
	p := &Profile{
		ID:          id,
		DisplayName: displayName,
		CompanyName: strings.TrimSpace(in.CompanyName),
		IsBusiness:  in.IsBusiness,
	}
	if err := s.repo.CreateWithProfile(ctx, u, p); err != nil {
		return nil, apperr.Internal(err)
	}

	return s.newSession(p)
}

func (s *Service) Login(ctx context.Context, in LoginInput) (*Session, error) {
	if s == nil || s.repo == nil {
		return nil, apperr.Internal(errors.New("service not initialized"))
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, apperr.Validation("email and password required")
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// same answer as a bad password, do not reveal which
		return nil, apperr.Unauthenticated("invalid credentials")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !VerifyPassword(in.Password, u.PasswordHash) {
		return nil, apperr.Unauthenticated("invalid credentials")
	}

	p, err := s.repo.FindProfileByID(ctx, u.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return s.newSession(p)
}

func (s *Service) newSession(p *Profile) (*Session, error) {
	token, expiresAt, err := auth.GenerateAccessToken(s.authCfg, p.ID, p.DisplayName, s.tokenTTL())
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &Session{Token: token, ExpiresAt: expiresAt, Profile: p}, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	if s == nil || s.repo == nil {
		return nil, apperr.Internal(errors.New("service not initialized"))
	}
	p, err := s.repo.FindProfileByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("profile")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return p, nil
}

type UpdateProfileInput struct {
	DisplayName string `json:"display_name"`
	CompanyName string `json:"company_name"`
	IsBusiness  bool   `json:"is_business"`
	Phone       string `json:"phone"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url"`
}

// UpdateProfile mutates the caller's own profile only; there is no path to
// another user's row.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*Profile, error) {
	if s == nil || s.repo == nil {
		return nil, apperr.Internal(errors.New("service not initialized"))
	}
	displayName := strings.TrimSpace(in.DisplayName)
	if displayName == "" {
		return nil, apperr.Validation("display_name required")
	}

	p, err := s.repo.FindProfileByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("profile")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	p.DisplayName = displayName
	p.CompanyName = strings.TrimSpace(in.CompanyName)
	p.IsBusiness = in.IsBusiness
	p.Phone = strings.TrimSpace(in.Phone)
	p.Bio = strings.TrimSpace(in.Bio)
	p.AvatarURL = strings.TrimSpace(in.AvatarURL)

	if err := s.repo.UpdateProfile(ctx, p); err != nil {
		return nil, apperr.Internal(err)
	}
	return p, nil
}
