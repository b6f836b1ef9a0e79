package readstore

import (
	"context"

	"fitroom-backend/internal/infra"
	"fitroom-backend/internal/pkg/pgconv"
	"fitroom-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userReadStoreImpl struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) queries.UserReadStore {
	return &userReadStoreImpl{pool: pool}
}

func (s *userReadStoreImpl) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, display_name, role, is_active
		FROM users
		WHERE id = $1`

	var (
		userID      pgtype.UUID
		email       string
		displayName string
		role        string
		isActive    bool
	)

	err := s.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&userID, &email, &displayName, &role, &isActive,
	)
	if err != nil {
		return nil, infra.WrapPgErr("failed to find user", err)
	}

	return &queries.AuthorizedUserView{
		ID:          uuid.UUID(userID.Bytes),
		Email:       email,
		DisplayName: displayName,
		Role:        role,
		IsActive:    isActive,
	}, nil
}

func (s *userReadStoreImpl) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, display_name, role, is_active, password_hash
		FROM users
		WHERE email = $1`

	var (
		userID       pgtype.UUID
		userEmail    string
		displayName  string
		role         string
		isActive     bool
		passwordHash string
	)

	err := s.pool.QueryRow(ctx, query, email).Scan(
		&userID, &userEmail, &displayName, &role, &isActive, &passwordHash,
	)
	if err != nil {
		return nil, "", infra.WrapPgErr("failed to find user by email", err)
	}

	return &queries.AuthorizedUserView{
		ID:          uuid.UUID(userID.Bytes),
		Email:       userEmail,
		DisplayName: displayName,
		Role:        role,
		IsActive:    isActive,
	}, passwordHash, nil
}
