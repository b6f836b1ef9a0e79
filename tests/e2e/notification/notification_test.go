//go:build e2e

package notification_test

import (
	"context"
	"net/http"
	"testing"

	"fitroom-backend/internal/handler/dto/request"
	"fitroom-backend/internal/handler/dto/response"
	"fitroom-backend/tests/common/authtest"
	"fitroom-backend/tests/common/dbtest"
	"fitroom-backend/tests/common/httptest"
	"fitroom-backend/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const notificationsURL = "/api/notifications"

type listEnvelope struct {
	Success bool                            `json:"success"`
	Message string                          `json:"message"`
	Data    []response.NotificationResponse `json:"data"`
}

type notificationSuite struct {
	e2e.SharedSuite

	customerToken string
	itemID        uuid.UUID
}

func TestNotificationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(notificationSuite))
}

func (s *notificationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	s.customerToken = authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", "customer")
	s.itemID = dbtest.CreateTestItem(t, s.DB, "Silk Scarf", "SKU-SILK-004", 3900)
}

// 試着リクエストを作成して利用者宛の通知を1件作る
func (s *notificationSuite) createRequestNotification() response.NotificationResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/fitting-room-requests",
		request.CreateFittingRoomRequest{ItemID: s.itemID}, s.customerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	notifications := s.listNotifications(s.customerToken)
	require.Len(t, notifications, 1)
	return notifications[0]
}

func (s *notificationSuite) listNotifications(token string) []response.NotificationResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, notificationsURL, nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body listEnvelope
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	require.True(t, body.Success)
	return body.Data
}

func (s *notificationSuite) TestListMine() {
	s.Run("自分宛の通知だけが返ること", func() {
		t := s.T()
		created := s.createRequestNotification()

		require.Equal(t, "fitting_room_request_received", created.Event)
		require.Equal(t, "ready in about 2 minutes", created.Message)
		require.NotNil(t, created.RequestID)

		// 他の利用者には見えないこと
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", "customer")
		require.Empty(t, s.listNotifications(otherToken))
	})

	s.Run("未認証では401になること", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, notificationsURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})
}

func (s *notificationSuite) TestRespond() {
	respondURL := func(id uuid.UUID) string {
		return notificationsURL + "/" + id.String() + "/respond"
	}
	reqBody := request.RespondToNotificationRequest{Response: "On my way"}

	s.Run("通知に返信できること", func() {
		t := s.T()
		created := s.createRequestNotification()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, respondURL(created.ID), reqBody, s.customerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body struct {
			Data response.NotificationResponse `json:"data"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.NotNil(t, body.Data.Response)
		require.Equal(t, "On my way", *body.Data.Response)
		require.NotNil(t, body.Data.RespondedAt)

		// 返信はスタッフグループ宛の通知として転送されること
		var staffCopies int
		err := s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*) FROM notifications WHERE group_name = 'staff' AND event = 'staff_response'").Scan(&staffCopies)
		require.NoError(t, err)
		require.Equal(t, 1, staffCopies)
	})

	s.Run("同じ通知に二度返信できないこと", func() {
		t := s.T()
		created := s.createRequestNotification()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, respondURL(created.ID), reqBody, s.customerToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, respondURL(created.ID), reqBody, s.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already has a response")
	})

	s.Run("他人の通知には返信できないこと", func() {
		t := s.T()
		created := s.createRequestNotification()
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", "customer")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, respondURL(created.ID), reqBody, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "your own notifications")
	})

	s.Run("存在しない通知では404になること", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, respondURL(uuid.New()), reqBody, s.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Notification not found")
	})
}
