package ports

import (
	"context"

	"github.com/lorrc/backoffice-backend/internal/core/domain"
)

// ListParams defines the input for paginated listing.
type ListParams struct {
	Limit  int
	Offset int
}

// UserInformationService defines the record-management workflows over the
// user_information table.
type UserInformationService interface {
	Create(ctx context.Context, params domain.UserInformationParams) (*domain.UserInformation, error)
	Get(ctx context.Context, id int64) (*domain.UserInformation, error)
	Update(ctx context.Context, id int64, params domain.UserInformationParams) (*domain.UserInformation, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, params ListParams) ([]*domain.UserInformation, int64, error)
	Shutdown()
}

// UserService defines the same workflows over the users table.
type UserService interface {
	Create(ctx context.Context, params domain.UserParams) (*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, params domain.UserParams) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, params ListParams) ([]*domain.User, int64, error)
	Shutdown()
}

// NotificationParams defines the input for sending an outcome notification.
type NotificationParams struct {
	Action   string // created, updated, deleted
	Resource string // user, user_information
	RecordID int64
	Message  string
}

// Notifier defines the port for delivering short human-readable outcome
// notices after a successful mutation.
type Notifier interface {
	Notify(ctx context.Context, params NotificationParams)
}
