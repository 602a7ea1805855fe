package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lorrc/backoffice-backend/internal/core/domain"
	apperrors "github.com/lorrc/backoffice-backend/internal/core/errors"
	"github.com/lorrc/backoffice-backend/internal/core/ports"
)

// UserInformationRepository is the secondary adapter persisting
// user_information records.
type UserInformationRepository struct {
	pool *pgxpool.Pool
}

var _ ports.UserInformationRepository = (*UserInformationRepository)(nil)

// NewUserInformationRepository creates a new user information repository.
func NewUserInformationRepository(pool *pgxpool.Pool) *UserInformationRepository {
	return &UserInformationRepository{pool: pool}
}

func scanUserInformation(row pgx.Row) (*domain.UserInformation, error) {
	var record domain.UserInformation
	err := row.Scan(
		&record.ID,
		&record.Name,
		&record.Email,
		&record.Phone,
		&record.Address,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Create inserts a new record and returns the stored snapshot with the
// assigned id and timestamps.
func (r *UserInformationRepository) Create(ctx context.Context, params domain.UserInformationParams) (*domain.UserInformation, error) {
	const query = `
		INSERT INTO user_information (name, email, phone, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, phone, address, created_at, updated_at`

	record, err := scanUserInformation(r.pool.QueryRow(ctx, query,
		params.Name, params.Email, params.Phone, params.Address))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, err
	}
	return record, nil
}

// GetByID retrieves a single record by its id.
func (r *UserInformationRepository) GetByID(ctx context.Context, id int64) (*domain.UserInformation, error) {
	const query = `
		SELECT id, name, email, phone, address, created_at, updated_at
		FROM user_information
		WHERE id = $1`

	record, err := scanUserInformation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserInformationNotFound
		}
		return nil, err
	}
	return record, nil
}

// GetByEmail retrieves a single record by email, used by the advisory
// uniqueness check.
func (r *UserInformationRepository) GetByEmail(ctx context.Context, email string) (*domain.UserInformation, error) {
	const query = `
		SELECT id, name, email, phone, address, created_at, updated_at
		FROM user_information
		WHERE email = $1`

	record, err := scanUserInformation(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserInformationNotFound
		}
		return nil, err
	}
	return record, nil
}

// Update overwrites all business fields of an existing record and refreshes
// updated_at.
func (r *UserInformationRepository) Update(ctx context.Context, id int64, params domain.UserInformationParams) (*domain.UserInformation, error) {
	const query = `
		UPDATE user_information
		SET name = $2, email = $3, phone = $4, address = $5, updated_at = now()
		WHERE id = $1
		RETURNING id, name, email, phone, address, created_at, updated_at`

	record, err := scanUserInformation(r.pool.QueryRow(ctx, query,
		id, params.Name, params.Email, params.Phone, params.Address))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserInformationNotFound
		}
		if isUniqueViolation(err) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, err
	}
	return record, nil
}

// Delete removes a record permanently. There is no tombstone; subsequent
// lookups of the id fail with not found.
func (r *UserInformationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM user_information WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserInformationNotFound
	}
	return nil
}

// List returns one page of records in stable id order.
func (r *UserInformationRepository) List(ctx context.Context, limit, offset int) ([]*domain.UserInformation, error) {
	const query = `
		SELECT id, name, email, phone, address, created_at, updated_at
		FROM user_information
		ORDER BY id ASC
		LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.UserInformation, 0)
	for rows.Next() {
		record, err := scanUserInformation(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Count returns the total number of records.
func (r *UserInformationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM user_information`).Scan(&count)
	return count, err
}
