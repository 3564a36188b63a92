package repository

import (
	"context"

	"dealer-portal/internal/infra"
	"dealer-portal/internal/pkg/pgconv"
	"dealer-portal/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const findUserByEmailSQL = `
SELECT id, email, password_hash, role, dealer_id, is_active
FROM users
WHERE email = $1`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view     queries.AuthorizedUserView
		hash     string
		dealerID pgtype.UUID
	)
	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(
		&view.ID, &view.Email, &hash, &view.Role, &dealerID, &view.IsActive,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	view.DealerID = pgconv.UUIDPtrFromPgtype(dealerID)
	return &view, hash, nil
}

const findUserByIDSQL = `
SELECT id, email, role, dealer_id, is_active
FROM users
WHERE id = $1`

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		view     queries.AuthorizedUserView
		dealerID pgtype.UUID
	)
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(
		&view.ID, &view.Email, &view.Role, &dealerID, &view.IsActive,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	view.DealerID = pgconv.UUIDPtrFromPgtype(dealerID)
	return &view, nil
}

const updateLastLoginSQL = `
UPDATE users SET last_login = now(), updated_at = now()
WHERE id = $1`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, updateLastLoginSQL, id); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
