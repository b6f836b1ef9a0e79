package commands

import (
	"context"
	"log/slog"

	"fitroom-backend/internal/domain/user"
	"fitroom-backend/internal/infra"
	"fitroom-backend/internal/pkg/errs"
	"fitroom-backend/internal/pkg/jwt"
	"fitroom-backend/internal/pkg/password"
	"fitroom-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid email or password")
	ErrUserInactive         = errs.New("user account is inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrInvalidRefreshToken  = errs.New("invalid refresh token")
)

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, credentials user.Credentials) (*TokenPair, *queries.AuthorizedUserView, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	users      UserRepository
	userViews  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(users UserRepository, userViews queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		userViews:  userViews,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (*TokenPair, *queries.AuthorizedUserView, error) {
	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, nil, ErrAuthenticationFailed
	}

	pair, err := a.issueTokens(view.ID, role)
	if err != nil {
		return nil, nil, err
	}

	if err := a.users.UpdateLastLogin(ctx, view.ID); err != nil {
		// Login still succeeds; last_login is bookkeeping.
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err)
	}

	return pair, view, nil
}

func (a *authCommandsImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrInvalidRefreshToken
	}

	view, err := a.userViews.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return a.issueTokens(view.ID, role)
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.userViews.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
