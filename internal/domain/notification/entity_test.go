//go:build unit

package notification_test

import (
	"testing"
	"time"

	"fitroom-backend/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotification(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	t.Run("user notification", func(t *testing.T) {
		userID := uuid.New()
		itemID := uuid.New()
		requestID := uuid.New()

		actual, err := notification.NewUserNotification(
			userID,
			notification.EventRequestReceived,
			"Fitting room request received",
			"ready in about 2 minutes",
			notification.Refs{ItemID: &itemID, RequestID: &requestID},
			now,
		)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		require.NotNil(t, actual.UserID())
		assert.Equal(t, userID, *actual.UserID())
		assert.Empty(t, actual.Group())
		assert.Equal(t, notification.EventRequestReceived, actual.Event())
		require.NotNil(t, actual.ItemID())
		assert.Equal(t, itemID, *actual.ItemID())
		require.NotNil(t, actual.RequestID())
		assert.Equal(t, requestID, *actual.RequestID())
		assert.Nil(t, actual.Response())
	})

	t.Run("user notification rejects empty message", func(t *testing.T) {
		_, err := notification.NewUserNotification(
			uuid.New(), notification.EventRequestReceived, "Title", "   ", notification.Refs{}, now)

		require.ErrorIs(t, err, notification.ErrEmptyMessage)
	})

	t.Run("group notification", func(t *testing.T) {
		actual, err := notification.NewGroupNotification(
			"staff", notification.EventRequestReceived, "New fitting room request", "New request", notification.Refs{}, now)
		require.NoError(t, err)

		assert.Nil(t, actual.UserID())
		assert.Equal(t, "staff", actual.Group())
	})

	t.Run("group notification rejects empty group", func(t *testing.T) {
		_, err := notification.NewGroupNotification(
			"  ", notification.EventRequestReceived, "Title", "Message", notification.Refs{}, now)

		require.ErrorIs(t, err, notification.ErrNoRecipient)
	})

	t.Run("respond", func(t *testing.T) {
		newNotification := func(t *testing.T) *notification.Notification {
			t.Helper()
			n, err := notification.NewUserNotification(
				uuid.New(), notification.EventRequestReady, "Your item is ready", "ready now", notification.Refs{}, now)
			require.NoError(t, err)
			return n
		}

		t.Run("records response once", func(t *testing.T) {
			actual := newNotification(t)
			respondedAt := now.Add(30 * time.Second)

			require.NoError(t, actual.Respond("On my way", respondedAt))

			require.NotNil(t, actual.Response())
			assert.Equal(t, "On my way", *actual.Response())
			require.NotNil(t, actual.RespondedAt())
			assert.Equal(t, respondedAt, *actual.RespondedAt())
		})

		t.Run("rejects empty response", func(t *testing.T) {
			actual := newNotification(t)

			err := actual.Respond("  ", now)

			require.ErrorIs(t, err, notification.ErrEmptyResponse)
			assert.Nil(t, actual.Response())
		})

		t.Run("rejects second response", func(t *testing.T) {
			actual := newNotification(t)
			require.NoError(t, actual.Respond("First", now))

			err := actual.Respond("Second", now)

			require.ErrorIs(t, err, notification.ErrAlreadyResponded)
			assert.Equal(t, "First", *actual.Response())
		})
	})
}
