//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"fitroom-backend/internal/handler/api"
	resdto "fitroom-backend/internal/handler/dto/response"
	"fitroom-backend/internal/pkg/config"
	"fitroom-backend/internal/pkg/jwt"
	"fitroom-backend/internal/usecase/commands"
	"fitroom-backend/internal/usecase/queries"
	"fitroom-backend/tests/common/builder"
	"fitroom-backend/tests/common/httptest"
	"fitroom-backend/tests/common/testutil"
	commandsmock "fitroom-backend/tests/mock/commands"
	queriesmock "fitroom-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 720*time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, config.NewTestConfig().Cookie)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// 認証ミドルウェアの代わりにユーザコンテキストを直接設定する
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildDTO()
	returnUser := builder.NewUserBuilder().BuildReadModel()
	tokenPair := &commands.TokenPair{AccessToken: "test-jwt-token", RefreshToken: "test-refresh-token"}

	s.Run("success: returns 200 OK for valid credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(tokenPair, returnUser, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body struct {
			Success bool                 `json:"success"`
			Data    resdto.LoginResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal(returnUser.Email, body.Data.User.Email)

		cookies := httptest.ExtractCookies(rec)
		s.NotNil(httptest.ExtractCookie(rec, "access_token"))
		s.NotNil(httptest.ExtractCookie(rec, "refresh_token"))
		s.NotEmpty(cookies)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseAuth{
			{name: "email boundary OK (valid email)", mutate: testutil.Field("email", "valid@example.com"), expectCode: http.StatusOK},
			{name: "email boundary invalid (invalid email)", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "password boundary OK (8 chars)", mutate: testutil.Field("password", "password"), expectCode: http.StatusOK},
			{name: "password boundary invalid (7 chars)", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
		}

		missing := []testCaseAuth{
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
		}

		for _, tc := range append(bound, missing...) {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusOK {
					s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
						Return(tokenPair, returnUser, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "inactive account",
				commandsError:  commands.ErrUserInactive,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Account is inactive",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(nil, nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"

	s.Run("error: 401 Unauthorized without refresh token cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("success: rotates tokens for a valid cookie", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), "old-refresh-token").
			Return(&commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil).Times(1)

		cookies := []*http.Cookie{{Name: "refresh_token", Value: "old-refresh-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, cookies, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		refreshed := httptest.ExtractCookie(rec, "refresh_token")
		s.Require().NotNil(refreshed)
		s.Equal("new-refresh", refreshed.Value)
	})

	s.Run("error: 401 Unauthorized for an invalid refresh token", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), "bad-token").
			Return(nil, commands.ErrInvalidRefreshToken).Times(1)

		cookies := []*http.Cookie{{Name: "refresh_token", Value: "bad-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, cookies, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired refresh token")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: clears token cookies", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		accessCookie := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(accessCookie)
		s.Negative(accessCookie.MaxAge)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns current user", func() {
		returnUser := builder.NewUserBuilder().BuildReadModel()
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body struct {
			Success bool                `json:"success"`
			Data    resdto.UserResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnUser.Email, body.Data.Email)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: 404 Not Found when user vanished", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
