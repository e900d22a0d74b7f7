package auth

import (
	"context"

	"github.com/soprahr/leavedesk-api/internal/application/dto"
	"github.com/soprahr/leavedesk-api/internal/domain"
	"github.com/soprahr/leavedesk-api/internal/domain/repository"
	"github.com/soprahr/leavedesk-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase issues bearer tokens for directory users.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Login resolves the user by email and issues a signed token carrying the
// role claim. When the request carries a password it is verified against the
// stored bcrypt hash; the legacy email-only flow skips the check.
// Returns ErrUserNotFound for an unknown email and ErrInvalidCredentials on a
// password mismatch.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Password != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
			return nil, domain.ErrInvalidCredentials
		}
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), user.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *dto.NewUserResponse(user),
	}, nil
}
