package repository

import (
	"context"

	"fitroom-backend/internal/infra"
	"fitroom-backend/internal/pkg/pgconv"
	"fitroom-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) commands.UserRepository {
	return &userRepositoryImpl{pool: pool}
}

func (r *userRepositoryImpl) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	const query = `UPDATE users SET last_login_at = NOW(), updated_at = NOW() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return infra.WrapPgErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
