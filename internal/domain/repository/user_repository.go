package repository

import (
	"context"

	"github.com/soprahr/leavedesk-api/internal/domain/entity"
)

// UserRepository is the persistence port for the directory.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetManyByID returns the users whose ID is in ids; missing IDs are
	// silently skipped.
	GetManyByID(ctx context.Context, ids []string) ([]*entity.User, error)
	// ListByManager returns the users whose ManagerID equals managerID
	// (one hop down the reporting chain).
	ListByManager(ctx context.Context, managerID string) ([]*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
