//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"fitroom-backend/internal/domain/fittingroom"
	"fitroom-backend/internal/domain/user"
	"fitroom-backend/internal/handler/api"
	"fitroom-backend/internal/handler/dto/request"
	resdto "fitroom-backend/internal/handler/dto/response"
	"fitroom-backend/internal/usecase/commands"
	"fitroom-backend/tests/common/builder"
	"fitroom-backend/tests/common/httptest"
	commandsmock "fitroom-backend/tests/mock/commands"
	queriesmock "fitroom-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FittingRoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockFittingRoomCommands
	mockQueries  *queriesmock.MockFittingRoomQueries
	handler      *api.FittingRoomHandler

	authedUserID uuid.UUID
	authedRole   user.Role
}

func (s *FittingRoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockFittingRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockFittingRoomQueries(s.mockCtrl)
	s.handler = api.NewFittingRoomHandler(s.mockCommands, s.mockQueries)

	s.authedUserID = uuid.New()
	s.authedRole = user.RoleCustomer

	// 認証ミドルウェアの代わりにユーザコンテキストを直接設定する
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			return
		}
		c.Set("user_id", s.authedUserID)
		c.Set("user_role", s.authedRole)
		c.Next()
	}

	s.router.POST("/fitting-room-requests", authMiddleware, s.handler.Create)
	s.router.GET("/fitting-room-requests/mine", authMiddleware, s.handler.ListMine)
	s.router.GET("/fitting-room-requests/:id", authMiddleware, s.handler.GetByID)
	s.router.PUT("/fitting-room-requests/:id/cancel", authMiddleware, s.handler.CancelOwn)
	s.router.GET("/staff/fitting-room-requests", authMiddleware, s.handler.ListAll)
	s.router.POST("/staff/fitting-room-requests/:id/complete", authMiddleware, s.handler.Complete)
	s.router.POST("/staff/fitting-room-requests/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.DELETE("/staff/fitting-room-requests/:id", authMiddleware, s.handler.Delete)
}

func (s *FittingRoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFittingRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(FittingRoomHandlerTestSuite))
}

func (s *FittingRoomHandlerTestSuite) TestCreate() {
	url := "/fitting-room-requests"

	itemID := uuid.New()
	reqBody := request.CreateFittingRoomRequest{ItemID: itemID}
	returnView := builder.NewFittingRoomRequestBuilder().WithItemID(itemID).BuildView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.authedUserID, itemID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body struct {
			Success bool                              `json:"success"`
			Data    resdto.FittingRoomRequestResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.Success)
		s.Equal(returnView.ID, body.Data.ID)
		s.Equal(fittingroom.MessagePending, body.Data.StaffMessage)
	})

	s.Run("error: 400 Bad Request on missing item id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown item",
				commandsError:  commands.ErrItemNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Item not found",
			},
			{
				name:           "duplicate unresolved request",
				commandsError:  commands.ErrDuplicateRequest,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "unresolved request",
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
				s.mockCommands.EXPECT().Create(gomock.Any(), s.authedUserID, itemID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *FittingRoomHandlerTestSuite) TestGetByID() {
	s.Run("success: owner can fetch own request", func() {
		returnView := builder.NewFittingRoomRequestBuilder().WithUserID(s.authedUserID).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/fitting-room-requests/"+returnView.ID.String(), nil, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: customer gets 404 for another user's request", func() {
		returnView := builder.NewFittingRoomRequestBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/fitting-room-requests/"+returnView.ID.String(), nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("success: staff can fetch any request", func() {
		s.authedRole = user.RoleTeamMember
		defer func() { s.authedRole = user.RoleCustomer }()

		returnView := builder.NewFittingRoomRequestBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/fitting-room-requests/"+returnView.ID.String(), nil, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/fitting-room-requests/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request ID")
	})
}

func (s *FittingRoomHandlerTestSuite) TestCancelOwn() {
	requestID := uuid.New()
	url := "/fitting-room-requests/" + requestID.String() + "/cancel"

	s.Run("success: cancels own pending request", func() {
		returnView := builder.NewFittingRoomRequestBuilder().
			WithUserID(s.authedUserID).WithStatus("cancelled").BuildView()
		s.mockCommands.EXPECT().CancelOwn(gomock.Any(), requestID, s.authedUserID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "not the owner", commandsError: commands.ErrNotRequestOwner, expectedStatus: http.StatusForbidden},
			{name: "already handled", commandsError: commands.ErrRequestAlreadyHandled, expectedStatus: http.StatusBadRequest},
			{name: "not found", commandsError: commands.ErrRequestNotFound, expectedStatus: http.StatusNotFound},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelOwn(gomock.Any(), requestID, s.authedUserID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *FittingRoomHandlerTestSuite) TestStaffOperations() {
	requestID := uuid.New()

	s.Run("success: complete resolves the request", func() {
		returnView := builder.NewFittingRoomRequestBuilder().WithStatus("completed").BuildView()
		s.mockCommands.EXPECT().Complete(gomock.Any(), requestID, s.authedUserID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/staff/fitting-room-requests/"+requestID.String()+"/complete", nil, "bearer-token")

		var body struct {
			Data resdto.FittingRoomRequestResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("completed", body.Data.Status)
	})

	s.Run("error: complete on handled request returns 400", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), requestID, s.authedUserID).
			Return(nil, commands.ErrRequestAlreadyHandled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/staff/fitting-room-requests/"+requestID.String()+"/complete", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already been handled")
	})

	s.Run("success: staff cancel resolves the request", func() {
		returnView := builder.NewFittingRoomRequestBuilder().WithStatus("cancelled").BuildView()
		s.mockCommands.EXPECT().CancelByStaff(gomock.Any(), requestID, s.authedUserID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/staff/fitting-room-requests/"+requestID.String()+"/cancel", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: delete hides the request", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), requestID, s.authedUserID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/staff/fitting-room-requests/"+requestID.String(), nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: delete on deleted request returns 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), requestID, s.authedUserID).
			Return(commands.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/staff/fitting-room-requests/"+requestID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

func (s *FittingRoomHandlerTestSuite) TestListAll() {
	url := "/staff/fitting-room-requests"

	s.Run("success: lists everything without a filter", func() {
		items := builder.NewFittingRoomRequestBuilder().BuildListItems(2)
		s.mockQueries.EXPECT().ListAll(gomock.Any()).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body struct {
			Data []resdto.FittingRoomRequestListResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Data, 2)
	})

	s.Run("success: filters by status", func() {
		items := builder.NewFittingRoomRequestBuilder().WithStatus("completed").BuildListItems(1)
		s.mockQueries.EXPECT().ListByStatus(gomock.Any(), fittingroom.StatusCompleted).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=completed", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=bogus", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status filter")
	})
}
