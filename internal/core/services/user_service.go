package services

import (
	"context"
	"errors"
	"sync"

	"github.com/lorrc/backoffice-backend/internal/core/domain"
	apperrors "github.com/lorrc/backoffice-backend/internal/core/errors"
	"github.com/lorrc/backoffice-backend/internal/core/ports"
)

// UserService implements the same record-management workflows as
// UserInformationService for the simpler users table.
type UserService struct {
	repo     ports.UserRepository
	notifier ports.Notifier
	wg       sync.WaitGroup
}

var _ ports.UserService = (*UserService)(nil)

// NewUserService creates a new user service.
func NewUserService(repo ports.UserRepository, notifier ports.Notifier) *UserService {
	return &UserService{
		repo:     repo,
		notifier: notifier,
	}
}

// Create validates the payload and inserts a new user.
func (s *UserService) Create(ctx context.Context, params domain.UserParams) (*domain.User, error) {
	errs := params.Validate()

	if err := s.checkEmailUnique(ctx, params.Email, 0, errs); err != nil {
		return nil, err
	}

	if errs.HasErrors() {
		return nil, errs.WithValues(params.Values())
	}

	user, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	s.notify(user.ID, "created", "User created successfully!")
	return user, nil
}

// Get fetches a single user for the async modal prefill.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Update overwrites the business fields of an existing user.
func (s *UserService) Update(ctx context.Context, id int64, params domain.UserParams) (*domain.User, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	errs := params.Validate()

	if err := s.checkEmailUnique(ctx, params.Email, current.ID, errs); err != nil {
		return nil, err
	}

	if errs.HasErrors() {
		return nil, errs.WithValues(params.Values())
	}

	user, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}

	s.notify(user.ID, "updated", "User updated successfully!")
	return user, nil
}

// Delete removes a user permanently.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.notify(id, "deleted", "User deleted successfully!")
	return nil
}

// List returns one page of users plus the total count.
func (s *UserService) List(ctx context.Context, params ports.ListParams) ([]*domain.User, int64, error) {
	users, err := s.repo.List(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Shutdown waits for in-flight notifications to drain.
func (s *UserService) Shutdown() {
	s.wg.Wait()
}

func (s *UserService) checkEmailUnique(ctx context.Context, email string, selfID int64, errs *apperrors.ValidationErrors) error {
	if email == "" {
		return nil
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil
		}
		return err
	}

	if existing.ID != selfID {
		errs.Add("email", "The email has already been taken.")
	}
	return nil
}

func (s *UserService) notify(id int64, action, message string) {
	if s.notifier == nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.notifier.Notify(context.Background(), ports.NotificationParams{
			Action:   action,
			Resource: "users",
			RecordID: id,
			Message:  message,
		})
	}()
}
