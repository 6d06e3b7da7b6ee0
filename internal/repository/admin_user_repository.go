package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kg-3rd/grand-adventure-hub/internal/models"
)

var ErrAdminNotFound = errors.New("admin user not found")

type AdminUserRepository struct {
	pool *pgxpool.Pool
}

func NewAdminUserRepository(pool *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{pool: pool}
}

func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (models.AdminUser, error) {
	const query = `
		SELECT id, email, password_hash, created_at
		FROM admin_users
		WHERE email = $1
	`
	row := r.pool.QueryRow(ctx, query, email)

	var user models.AdminUser
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.AdminUser{}, ErrAdminNotFound
		}
		return models.AdminUser{}, err
	}
	return user, nil
}

func (r *AdminUserRepository) Create(ctx context.Context, user models.AdminUser) error {
	const query = `
		INSERT INTO admin_users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (email) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query, user.ID, user.Email, user.PasswordHash)
	return err
}
