//go:build e2e

package fittingroom_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"fitroom-backend/internal/handler/dto/request"
	"fitroom-backend/internal/handler/dto/response"
	"fitroom-backend/tests/common/authtest"
	"fitroom-backend/tests/common/dbtest"
	"fitroom-backend/tests/common/httptest"
	"fitroom-backend/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	requestsURL      = "/api/fitting-room-requests"
	staffRequestsURL = "/api/staff/fitting-room-requests"
)

type requestEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		ID           uuid.UUID `json:"id"`
		UserID       uuid.UUID `json:"user_id"`
		ItemID       uuid.UUID `json:"item_id"`
		ItemName     string    `json:"item_name"`
		Status       string    `json:"status"`
		StaffMessage string    `json:"staff_message"`
	} `json:"data"`
}

type listEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    []struct {
		ID     uuid.UUID `json:"id"`
		Status string    `json:"status"`
	} `json:"data"`
}

type fittingRoomSuite struct {
	e2e.SharedSuite

	customerToken string
	staffToken    string
	itemID        uuid.UUID
}

func TestFittingRoomSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(fittingRoomSuite))
}

func (s *fittingRoomSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	s.customerToken = authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", "customer")
	s.staffToken = authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", "team_member")
	s.itemID = dbtest.CreateTestItem(t, s.DB, "Wool Coat", "SKU-WOOL-003", 15900)
}

func (s *fittingRoomSuite) createRequest(token string) requestEnvelope {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL,
		request.CreateFittingRoomRequest{ItemID: s.itemID}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body requestEnvelope
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	return body
}

func (s *fittingRoomSuite) TestCreate() {
	s.Run("試着リクエストを作成できること", func() {
		t := s.T()
		body := s.createRequest(s.customerToken)

		require.True(t, body.Success)
		require.Equal(t, "new_request", body.Data.Status)
		require.Equal(t, "ready in about 2 minutes", body.Data.StaffMessage)
		require.Equal(t, s.itemID, body.Data.ItemID)
		require.Equal(t, "Wool Coat", body.Data.ItemName)

		// 利用者とスタッフグループの両方に通知が永続化されること
		var notificationCount int
		err := s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*) FROM notifications WHERE request_id = $1", body.Data.ID).Scan(&notificationCount)
		require.NoError(t, err)
		require.Equal(t, 2, notificationCount)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			requestsURL+"/"+body.Data.ID.String(), nil, s.customerToken)
		require.Equal(t, http.StatusOK, w.Code)

		var detail struct {
			Data response.FittingRoomRequestResponse `json:"data"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &detail))

		expected := response.FittingRoomRequestResponse{
			UserEmail:    "customer@example.com",
			ItemName:     "Wool Coat",
			Status:       "new_request",
			StaffMessage: "ready in about 2 minutes",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.FittingRoomRequestResponse{},
				"ID", "UserID", "ItemID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, detail.Data, opts...); diff != "" {
			t.Errorf("request detail mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("同じ商品への未解決リクエストが重複できないこと", func() {
		t := s.T()
		s.createRequest(s.customerToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL,
			request.CreateFittingRoomRequest{ItemID: s.itemID}, s.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "unresolved request")
	})

	s.Run("解決済みなら同じ商品を再度リクエストできること", func() {
		t := s.T()
		first := s.createRequest(s.customerToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			staffRequestsURL+"/"+first.Data.ID.String()+"/complete", nil, s.staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		second := s.createRequest(s.customerToken)
		require.NotEqual(t, first.Data.ID, second.Data.ID)
	})

	s.Run("存在しない商品では404になること", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL,
			request.CreateFittingRoomRequest{ItemID: uuid.New()}, s.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Item not found")
	})
}

func (s *fittingRoomSuite) TestStaffComplete() {
	s.Run("スタッフがリクエストを完了できること", func() {
		t := s.T()
		created := s.createRequest(s.customerToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			staffRequestsURL+"/"+created.Data.ID.String()+"/complete", nil, s.staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body requestEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Equal(t, "completed", body.Data.Status)
		require.Equal(t, "completed by staff", body.Data.StaffMessage)
	})

	s.Run("処理済みリクエストは再度完了できないこと", func() {
		t := s.T()
		created := s.createRequest(s.customerToken)
		url := staffRequestsURL + "/" + created.Data.ID.String() + "/complete"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, s.staffToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, s.staffToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "already been handled")
	})

	s.Run("顧客はスタッフ操作を実行できないこと", func() {
		t := s.T()
		created := s.createRequest(s.customerToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			staffRequestsURL+"/"+created.Data.ID.String()+"/complete", nil, s.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Staff access required")
	})
}

func (s *fittingRoomSuite) TestCancel() {
	s.Run("スタッフがリクエストをキャンセルできること", func() {
		t := s.T()
		created := s.createRequest(s.customerToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			staffRequestsURL+"/"+created.Data.ID.String()+"/cancel", nil, s.staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body requestEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Equal(t, "cancelled", body.Data.Status)
		require.Equal(t, "cancelled by staff", body.Data.StaffMessage)
	})

	s.Run("本人が自分のリクエストをキャンセルできること", func() {
		t := s.T()
		created := s.createRequest(s.customerToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			requestsURL+"/"+created.Data.ID.String()+"/cancel", nil, s.customerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body requestEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Equal(t, "cancelled", body.Data.Status)
		require.Equal(t, "cancelled by user", body.Data.StaffMessage)
	})

	s.Run("他人のリクエストはキャンセルできないこと", func() {
		t := s.T()
		created := s.createRequest(s.customerToken)
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", "customer")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			requestsURL+"/"+created.Data.ID.String()+"/cancel", nil, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "your own requests")
	})
}

func (s *fittingRoomSuite) TestDelete() {
	s.Run("削除したリクエストは一覧と取得から消えること", func() {
		t := s.T()
		created := s.createRequest(s.customerToken)
		id := created.Data.ID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			staffRequestsURL+"/"+id, nil, s.staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/"+id, nil, s.staffToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "not found")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, staffRequestsURL, nil, s.staffToken)
		require.Equal(t, http.StatusOK, w.Code)
		var list listEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
		require.Empty(t, list.Data)

		// 状態はDB上では削除前のまま残ること
		var status string
		var isDeleted bool
		err := s.DB.QueryRow(context.Background(),
			"SELECT status, is_deleted FROM fitting_room_requests WHERE id = $1", created.Data.ID).Scan(&status, &isDeleted)
		require.NoError(t, err)
		require.Equal(t, "new_request", status)
		require.True(t, isDeleted)
	})
}

func (s *fittingRoomSuite) TestAutoComplete() {
	s.Run("タイマー経過で自動完了すること", func() {
		t := s.T()
		created := s.createRequest(s.customerToken)
		url := requestsURL + "/" + created.Data.ID.String()

		// テスト設定では3秒で自動完了する
		require.Eventually(t, func() bool {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.customerToken)
			if w.Code != http.StatusOK {
				return false
			}
			var body requestEnvelope
			if err := httptest.DecodeResponseBody(t, w.Body, &body); err != nil {
				return false
			}
			return body.Data.Status == "completed"
		}, 10*time.Second, 200*time.Millisecond)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.customerToken)
		var body requestEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Equal(t, "ready now", body.Data.StaffMessage)

		// 自動完了には担当スタッフがいないこと
		var handledBy *uuid.UUID
		err := s.DB.QueryRow(context.Background(),
			"SELECT handled_by_staff_id FROM fitting_room_requests WHERE id = $1", created.Data.ID).Scan(&handledBy)
		require.NoError(t, err)
		require.Nil(t, handledBy)
	})

	s.Run("スタッフが先に完了した場合タイマーは何もしないこと", func() {
		t := s.T()
		created := s.createRequest(s.customerToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			staffRequestsURL+"/"+created.Data.ID.String()+"/complete", nil, s.staffToken)
		require.Equal(t, http.StatusOK, w.Code)

		// タイマー発火を待っても状態が上書きされないこと
		time.Sleep(4 * time.Second)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			requestsURL+"/"+created.Data.ID.String(), nil, s.staffToken)
		require.Equal(t, http.StatusOK, w.Code)
		var body requestEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Equal(t, "completed", body.Data.Status)
		require.Equal(t, "completed by staff", body.Data.StaffMessage)
	})
}

func (s *fittingRoomSuite) TestListing() {
	s.Run("ステータスで絞り込めること", func() {
		t := s.T()
		created := s.createRequest(s.customerToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			staffRequestsURL+"/"+created.Data.ID.String()+"/complete", nil, s.staffToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			staffRequestsURL+"?status=completed", nil, s.staffToken)
		require.Equal(t, http.StatusOK, w.Code)
		var completed listEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &completed))
		require.Len(t, completed.Data, 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			staffRequestsURL+"?status=new_request", nil, s.staffToken)
		require.Equal(t, http.StatusOK, w.Code)
		var pending listEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &pending))
		require.Empty(t, pending.Data)
	})

	s.Run("不正なステータスは400になること", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			staffRequestsURL+"?status=bogus", nil, s.staffToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid status")
	})

	s.Run("自分のリクエスト一覧を取得できること", func() {
		t := s.T()
		s.createRequest(s.customerToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/mine", nil, s.customerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var mine listEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &mine))
		require.Len(t, mine.Data, 1)
	})
}
