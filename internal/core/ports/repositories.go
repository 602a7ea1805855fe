package ports

import (
	"context"

	"github.com/lorrc/backoffice-backend/internal/core/domain"
)

// UserInformationRepository is the persistence port for the full record
// shape backed by the user_information table.
type UserInformationRepository interface {
	Create(ctx context.Context, params domain.UserInformationParams) (*domain.UserInformation, error)
	GetByID(ctx context.Context, id int64) (*domain.UserInformation, error)
	GetByEmail(ctx context.Context, email string) (*domain.UserInformation, error)
	Update(ctx context.Context, id int64, params domain.UserInformationParams) (*domain.UserInformation, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*domain.UserInformation, error)
	Count(ctx context.Context) (int64, error)
}

// UserRepository is the persistence port for the simpler record shape backed
// by the users table.
type UserRepository interface {
	Create(ctx context.Context, params domain.UserParams) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id int64, params domain.UserParams) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
