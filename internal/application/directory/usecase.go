// Package directory manages the user directory: onboarding, role and manager
// reassignment, and admin reads. Users are never hard-deleted; offboarding is
// a reassignment concern.
package directory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/soprahr/leavedesk-api/internal/application/dto"
	"github.com/soprahr/leavedesk-api/internal/domain"
	"github.com/soprahr/leavedesk-api/internal/domain/entity"
	"github.com/soprahr/leavedesk-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"
)

// UseCase exposes directory operations.
type UseCase struct {
	users repository.UserRepository
}

// NewUseCase builds the directory use case.
func NewUseCase(users repository.UserRepository) *UseCase {
	return &UseCase{users: users}
}

// List returns directory users with pagination.
func (uc *UseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.users.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *dto.NewUserResponse(u))
	}
	return out, nil
}

// Get returns a single user.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return dto.NewUserResponse(u), nil
}

// Create onboards a user. Names are NFC-normalized (the directory carries
// accented names), passwords bcrypt-hashed, and the reporting-chain invariant
// enforced: a user must not be their own manager.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}
	role := entity.Role(in.Role)
	if !role.Valid() {
		return nil, domain.ErrInvalidInput
	}

	id := uuid.New().String()
	if in.ManagerID != nil && *in.ManagerID == id {
		return nil, domain.ErrSelfReview
	}
	if in.ManagerID != nil {
		manager, err := uc.users.GetByID(ctx, *in.ManagerID)
		if err != nil {
			return nil, err
		}
		if manager == nil {
			return nil, domain.ErrUserNotFound
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	balance, err := parseDecimal(in.LeaveBalance, decimal.NewFromInt(25))
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	total, err := parseDecimal(in.TotalLeaves, decimal.NewFromInt(25))
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	user := &entity.User{
		ID:           id,
		Name:         norm.NFC.String(in.Name),
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Department:   in.Department,
		ManagerID:    in.ManagerID,
		LeaveBalance: balance,
		TotalLeaves:  total,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// Update reassigns role, manager, department or name. The self-manager
// invariant holds across reassignment too.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.Name != nil {
		user.Name = norm.NFC.String(*in.Name)
	}
	if in.Role != nil {
		role := entity.Role(*in.Role)
		if !role.Valid() {
			return nil, domain.ErrInvalidInput
		}
		user.Role = role
	}
	if in.Department != nil {
		user.Department = *in.Department
	}
	if in.ManagerID != nil {
		if *in.ManagerID == user.ID {
			return nil, domain.ErrSelfReview
		}
		if *in.ManagerID == "" {
			user.ManagerID = nil
		} else {
			manager, err := uc.users.GetByID(ctx, *in.ManagerID)
			if err != nil {
				return nil, err
			}
			if manager == nil {
				return nil, domain.ErrUserNotFound
			}
			user.ManagerID = in.ManagerID
		}
	}
	user.UpdatedAt = time.Now()

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

func parseDecimal(s string, def decimal.Decimal) (decimal.Decimal, error) {
	if s == "" {
		return def, nil
	}
	return decimal.NewFromString(s)
}
