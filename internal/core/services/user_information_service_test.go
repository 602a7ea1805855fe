package services_test

import (
	"context"
	"testing"

	"github.com/lorrc/backoffice-backend/internal/core/domain"
	apperrors "github.com/lorrc/backoffice-backend/internal/core/errors"
	"github.com/lorrc/backoffice-backend/internal/core/mocks"
	"github.com/lorrc/backoffice-backend/internal/core/ports"
	"github.com/lorrc/backoffice-backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validParams() domain.UserInformationParams {
	return domain.UserInformationParams{
		Name:    "Ann Example",
		Email:   "ann@example.com",
		Phone:   "+1-555-0100",
		Address: "1 Main St",
	}
}

func storedRecord(id int64, params domain.UserInformationParams) *domain.UserInformation {
	return &domain.UserInformation{
		ID:      id,
		Name:    params.Name,
		Email:   params.Email,
		Phone:   params.Phone,
		Address: params.Address,
	}
}

func TestUserInformationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := mocks.NewMockUserInformationRepository()
		mockNotifier := mocks.NewMockNotifier()
		svc := services.NewUserInformationService(mockRepo, mockNotifier)

		params := validParams()
		mockRepo.On("GetByEmail", ctx, params.Email).
			Return(nil, apperrors.ErrUserInformationNotFound)
		mockRepo.On("Create", ctx, params).Return(storedRecord(1, params), nil)
		mockNotifier.On("Notify", mock.Anything, ports.NotificationParams{
			Action:   "created",
			Resource: "user_information",
			RecordID: 1,
			Message:  "User created successfully!",
		}).Return()

		record, err := svc.Create(ctx, params)

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, int64(1), record.ID)
		assert.Equal(t, params.Email, record.Email)

		svc.Shutdown()
		mockRepo.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("collects field violations without touching the store", func(t *testing.T) {
		mockRepo := mocks.NewMockUserInformationRepository()
		mockNotifier := mocks.NewMockNotifier()
		svc := services.NewUserInformationService(mockRepo, mockNotifier)

		record, err := svc.Create(ctx, domain.UserInformationParams{})

		assert.Nil(t, record)
		require.Error(t, err)

		var validationErr *apperrors.ValidationErrors
		require.ErrorAs(t, err, &validationErr)
		assert.Len(t, validationErr.Errors, 4)
		mockRepo.AssertNotCalled(t, "Create")
		mockNotifier.AssertNotCalled(t, "Notify")
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		mockRepo := mocks.NewMockUserInformationRepository()
		mockNotifier := mocks.NewMockNotifier()
		svc := services.NewUserInformationService(mockRepo, mockNotifier)

		params := validParams()
		mockRepo.On("GetByEmail", ctx, params.Email).
			Return(storedRecord(7, params), nil)

		record, err := svc.Create(ctx, params)

		assert.Nil(t, record)

		var validationErr *apperrors.ValidationErrors
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Errors["email"], "The email has already been taken.")
		// The rejected payload is echoed back for redisplay.
		assert.Equal(t, params.Values(), validationErr.Values)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("duplicate reported alongside other field violations", func(t *testing.T) {
		mockRepo := mocks.NewMockUserInformationRepository()
		mockNotifier := mocks.NewMockNotifier()
		svc := services.NewUserInformationService(mockRepo, mockNotifier)

		params := validParams()
		params.Phone = ""
		mockRepo.On("GetByEmail", ctx, params.Email).
			Return(storedRecord(7, params), nil)

		record, err := svc.Create(ctx, params)

		assert.Nil(t, record)

		var validationErr *apperrors.ValidationErrors
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Errors, "phone")
		assert.Contains(t, validationErr.Errors["email"], "The email has already been taken.")
	})

	t.Run("constraint violation from a create race surfaces as conflict", func(t *testing.T) {
		mockRepo := mocks.NewMockUserInformationRepository()
		mockNotifier := mocks.NewMockNotifier()
		svc := services.NewUserInformationService(mockRepo, mockNotifier)

		params := validParams()
		mockRepo.On("GetByEmail", ctx, params.Email).
			Return(nil, apperrors.ErrUserInformationNotFound)
		mockRepo.On("Create", ctx, params).Return(nil, apperrors.ErrEmailTaken)

		record, err := svc.Create(ctx, params)

		assert.Nil(t, record)
		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
		mockNotifier.AssertNotCalled(t, "Notify")
	})
}

func TestUserInformationService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mockRepo := mocks.NewMockUserInformationRepository()
		svc := services.NewUserInformationService(mockRepo, mocks.NewMockNotifier())

		want := storedRecord(3, validParams())
		mockRepo.On("GetByID", ctx, int64(3)).Return(want, nil)

		record, err := svc.Get(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, want, record)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := mocks.NewMockUserInformationRepository()
		svc := services.NewUserInformationService(mockRepo, mocks.NewMockNotifier())

		mockRepo.On("GetByID", ctx, int64(99)).
			Return(nil, apperrors.ErrUserInformationNotFound)

		record, err := svc.Get(ctx, 99)

		assert.Nil(t, record)
		assert.ErrorIs(t, err, apperrors.ErrUserInformationNotFound)
	})
}

func TestUserInformationService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success keeping own email", func(t *testing.T) {
		mockRepo := mocks.NewMockUserInformationRepository()
		mockNotifier := mocks.NewMockNotifier()
		svc := services.NewUserInformationService(mockRepo, mockNotifier)

		params := validParams()
		params.Name = "Ann Renamed"
		current := storedRecord(5, validParams())

		mockRepo.On("GetByID", ctx, int64(5)).Return(current, nil)
		// The email lookup finds the record itself; that must not count as taken.
		mockRepo.On("GetByEmail", ctx, params.Email).Return(current, nil)
		mockRepo.On("Update", ctx, int64(5), params).Return(storedRecord(5, params), nil)
		mockNotifier.On("Notify", mock.Anything, ports.NotificationParams{
			Action:   "updated",
			Resource: "user_information",
			RecordID: 5,
			Message:  "User updated successfully!",
		}).Return()

		record, err := svc.Update(ctx, 5, params)

		require.NoError(t, err)
		assert.Equal(t, "Ann Renamed", record.Name)

		svc.Shutdown()
		mockRepo.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("rejects an email held by another record", func(t *testing.T) {
		mockRepo := mocks.NewMockUserInformationRepository()
		mockNotifier := mocks.NewMockNotifier()
		svc := services.NewUserInformationService(mockRepo, mockNotifier)

		params := validParams()
		params.Email = "taken@example.com"
		current := storedRecord(5, validParams())
		other := storedRecord(6, params)

		mockRepo.On("GetByID", ctx, int64(5)).Return(current, nil)
		mockRepo.On("GetByEmail", ctx, params.Email).Return(other, nil)

		record, err := svc.Update(ctx, 5, params)

		assert.Nil(t, record)

		var validationErr *apperrors.ValidationErrors
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Errors["email"], "The email has already been taken.")
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("missing record", func(t *testing.T) {
		mockRepo := mocks.NewMockUserInformationRepository()
		mockNotifier := mocks.NewMockNotifier()
		svc := services.NewUserInformationService(mockRepo, mockNotifier)

		mockRepo.On("GetByID", ctx, int64(99)).
			Return(nil, apperrors.ErrUserInformationNotFound)

		record, err := svc.Update(ctx, 99, validParams())

		assert.Nil(t, record)
		assert.ErrorIs(t, err, apperrors.ErrUserInformationNotFound)
		mockRepo.AssertNotCalled(t, "Update")
		mockNotifier.AssertNotCalled(t, "Notify")
	})
}

func TestUserInformationService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := mocks.NewMockUserInformationRepository()
		mockNotifier := mocks.NewMockNotifier()
		svc := services.NewUserInformationService(mockRepo, mockNotifier)

		mockRepo.On("Delete", ctx, int64(4)).Return(nil)
		mockNotifier.On("Notify", mock.Anything, ports.NotificationParams{
			Action:   "deleted",
			Resource: "user_information",
			RecordID: 4,
			Message:  "User deleted successfully!",
		}).Return()

		err := svc.Delete(ctx, 4)

		require.NoError(t, err)
		svc.Shutdown()
		mockNotifier.AssertExpectations(t)
	})

	t.Run("missing record", func(t *testing.T) {
		mockRepo := mocks.NewMockUserInformationRepository()
		mockNotifier := mocks.NewMockNotifier()
		svc := services.NewUserInformationService(mockRepo, mockNotifier)

		mockRepo.On("Delete", ctx, int64(99)).
			Return(apperrors.ErrUserInformationNotFound)

		err := svc.Delete(ctx, 99)

		assert.ErrorIs(t, err, apperrors.ErrUserInformationNotFound)
		mockNotifier.AssertNotCalled(t, "Notify")
	})
}

func TestUserInformationService_List(t *testing.T) {
	ctx := context.Background()

	mockRepo := mocks.NewMockUserInformationRepository()
	svc := services.NewUserInformationService(mockRepo, mocks.NewMockNotifier())

	page := []*domain.UserInformation{
		storedRecord(1, validParams()),
		storedRecord(2, validParams()),
	}
	mockRepo.On("List", ctx, 10, 0).Return(page, nil)
	mockRepo.On("Count", ctx).Return(int64(12), nil)

	records, total, err := svc.List(ctx, ports.ListParams{Limit: 10, Offset: 0})

	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, int64(12), total)
}

// The full lifecycle from the admin screens: create, reject a duplicate,
// rename keeping the same email, delete, then observe the record is gone.
func TestUserInformationService_Lifecycle(t *testing.T) {
	ctx := context.Background()

	mockRepo := mocks.NewMockUserInformationRepository()
	mockNotifier := mocks.NewMockNotifier()
	svc := services.NewUserInformationService(mockRepo, mockNotifier)

	ann := validParams()
	stored := storedRecord(1, ann)

	mockNotifier.On("Notify", mock.Anything, mock.Anything).Return()

	// Create Ann.
	mockRepo.On("GetByEmail", ctx, ann.Email).
		Return(nil, apperrors.ErrUserInformationNotFound).Once()
	mockRepo.On("Create", ctx, ann).Return(stored, nil).Once()

	created, err := svc.Create(ctx, ann)
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)

	// A second create with the same email is rejected before any insert.
	mockRepo.On("GetByEmail", ctx, ann.Email).Return(stored, nil).Once()

	_, err = svc.Create(ctx, ann)
	var validationErr *apperrors.ValidationErrors
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Errors["email"], "The email has already been taken.")

	// Renaming Ann while keeping her email succeeds.
	renamed := ann
	renamed.Name = "Ann Renamed"
	mockRepo.On("GetByID", ctx, int64(1)).Return(stored, nil).Once()
	mockRepo.On("GetByEmail", ctx, ann.Email).Return(stored, nil).Once()
	mockRepo.On("Update", ctx, int64(1), renamed).
		Return(storedRecord(1, renamed), nil).Once()

	updated, err := svc.Update(ctx, 1, renamed)
	require.NoError(t, err)
	assert.Equal(t, "Ann Renamed", updated.Name)

	// Delete, then the record is gone.
	mockRepo.On("Delete", ctx, int64(1)).Return(nil).Once()
	require.NoError(t, svc.Delete(ctx, 1))

	mockRepo.On("GetByID", ctx, int64(1)).
		Return(nil, apperrors.ErrUserInformationNotFound).Once()

	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrUserInformationNotFound)

	svc.Shutdown()
	mockRepo.AssertExpectations(t)
}
