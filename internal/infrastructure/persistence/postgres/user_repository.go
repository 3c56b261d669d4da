package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/domain"
	domerrors "github.com/BRAITOU555/my-ride-sharing-app/internal/domain/errors"
)

const (
	insertUserSQL = `INSERT INTO users (name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	selectUserByEmailSQL = `SELECT id, name, email, password_hash, created_at, updated_at
		FROM users WHERE email = $1`
	selectUserByIDSQL = `SELECT id, name, email, password_hash, created_at, updated_at
		FROM users WHERE id = $1`
	// COALESCE keeps any omitted field at its stored value, matching the
	// original UPDATE ... SET col = COALESCE(?, col).
	updateProfileSQL = `UPDATE users SET
		name = COALESCE($1, name),
		email = COALESCE($2, email),
		password_hash = COALESCE($3, password_hash),
		updated_at = NOW()
		WHERE id = $4`
)

// UserRepository is the pgx-backed account store. Email uniqueness is the
// users_email_key constraint; violations come back as ErrEmailTaken.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, insertUserSQL,
		user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isPgErr(err, codeUniqueViolation) {
			return 0, domerrors.ErrEmailTaken
		}
		return 0, err
	}
	return id, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, selectUserByEmailSQL, email)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, selectUserByIDSQL, id)
}

func (r *UserRepository) getOne(ctx context.Context, sql string, arg interface{}) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, sql, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, patch ports.ProfilePatch) error {
	tag, err := r.pool.Exec(ctx, updateProfileSQL,
		patch.Name, patch.Email, patch.PasswordHash, userID,
	)
	if err != nil {
		if isPgErr(err, codeUniqueViolation) {
			return domerrors.ErrEmailTaken
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrUserNotFound
	}
	return nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
