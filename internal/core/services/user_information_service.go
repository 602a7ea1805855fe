package services

import (
	"context"
	"errors"
	"sync"

	"github.com/lorrc/backoffice-backend/internal/core/domain"
	apperrors "github.com/lorrc/backoffice-backend/internal/core/errors"
	"github.com/lorrc/backoffice-backend/internal/core/ports"
)

// UserInformationService implements the record-management workflows for the
// user_information table. Each call runs one request's lifecycle: validate,
// mutate, notify.
type UserInformationService struct {
	repo     ports.UserInformationRepository
	notifier ports.Notifier
	wg       sync.WaitGroup
}

var _ ports.UserInformationService = (*UserInformationService)(nil)

// NewUserInformationService creates a new user information service.
func NewUserInformationService(repo ports.UserInformationRepository, notifier ports.Notifier) *UserInformationService {
	return &UserInformationService{
		repo:     repo,
		notifier: notifier,
	}
}

// Create validates the payload and inserts a new record. All rule violations
// are collected before the request is rejected; no mutation happens on
// rejection.
func (s *UserInformationService) Create(ctx context.Context, params domain.UserInformationParams) (*domain.UserInformation, error) {
	errs := params.Validate()

	if err := s.checkEmailUnique(ctx, params.Email, 0, errs); err != nil {
		return nil, err
	}

	if errs.HasErrors() {
		return nil, errs.WithValues(params.Values())
	}

	record, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	s.notify(record.ID, "created", "User created successfully!")
	return record, nil
}

// Get fetches a single record, used to prefill the edit form.
func (s *UserInformationService) Get(ctx context.Context, id int64) (*domain.UserInformation, error) {
	return s.repo.GetByID(ctx, id)
}

// Update overwrites the four business fields of an existing record. The
// email uniqueness check excludes the record's own id.
func (s *UserInformationService) Update(ctx context.Context, id int64, params domain.UserInformationParams) (*domain.UserInformation, error) {
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

	record, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}

	s.notify(record.ID, "updated", "User updated successfully!")
	return record, nil
}

// Delete removes a record permanently.
func (s *UserInformationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.notify(id, "deleted", "User deleted successfully!")
	return nil
}

// List returns one page of records plus the total count, ordered by id.
func (s *UserInformationService) List(ctx context.Context, params ports.ListParams) ([]*domain.UserInformation, int64, error) {
	records, err := s.repo.List(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// Shutdown waits for in-flight notifications to drain.
func (s *UserInformationService) Shutdown() {
	s.wg.Wait()
}

// checkEmailUnique performs the advisory uniqueness lookup. The storage
// constraint remains the backstop against a race between two creates.
func (s *UserInformationService) checkEmailUnique(ctx context.Context, email string, selfID int64, errs *apperrors.ValidationErrors) error {
	if email == "" {
		return nil
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserInformationNotFound) {
			return nil
		}
		return err
	}

	if existing.ID != selfID {
		errs.Add("email", "The email has already been taken.")
	}
	return nil
}

func (s *UserInformationService) notify(id int64, action, message string) {
	if s.notifier == nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.notifier.Notify(context.Background(), ports.NotificationParams{
			Action:   action,
			Resource: "user_information",
			RecordID: id,
			Message:  message,
		})
	}()
}
