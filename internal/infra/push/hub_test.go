//go:build unit

package push_test

import (
	"testing"

	"fitroom-backend/internal/infra/push"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PushToUser(t *testing.T) {
	t.Run("delivers to a subscribed user", func(t *testing.T) {
		hub := push.NewHub()
		userID := uuid.New()

		ch, cancel := hub.SubscribeUser(userID)
		defer cancel()

		require.NoError(t, hub.PushToUser(userID, "hello"))
		assert.Equal(t, "hello", <-ch)
	})

	t.Run("returns ErrNoActiveConnection without subscribers", func(t *testing.T) {
		hub := push.NewHub()

		err := hub.PushToUser(uuid.New(), "hello")
		assert.ErrorIs(t, err, push.ErrNoActiveConnection)
	})

	t.Run("does not deliver to other users", func(t *testing.T) {
		hub := push.NewHub()
		target := uuid.New()
		other := uuid.New()

		targetCh, cancelTarget := hub.SubscribeUser(target)
		defer cancelTarget()
		otherCh, cancelOther := hub.SubscribeUser(other)
		defer cancelOther()

		require.NoError(t, hub.PushToUser(target, "for target"))

		assert.Equal(t, "for target", <-targetCh)
		assert.Empty(t, otherCh)
	})

	t.Run("fans out to every connection of the same user", func(t *testing.T) {
		hub := push.NewHub()
		userID := uuid.New()

		first, cancelFirst := hub.SubscribeUser(userID)
		defer cancelFirst()
		second, cancelSecond := hub.SubscribeUser(userID)
		defer cancelSecond()

		require.NoError(t, hub.PushToUser(userID, "both"))

		assert.Equal(t, "both", <-first)
		assert.Equal(t, "both", <-second)
	})

	t.Run("unsubscribed user no longer receives", func(t *testing.T) {
		hub := push.NewHub()
		userID := uuid.New()

		_, cancel := hub.SubscribeUser(userID)
		cancel()

		err := hub.PushToUser(userID, "gone")
		assert.ErrorIs(t, err, push.ErrNoActiveConnection)
	})

	t.Run("slow consumer drops instead of blocking", func(t *testing.T) {
		hub := push.NewHub()
		userID := uuid.New()

		ch, cancel := hub.SubscribeUser(userID)
		defer cancel()

		// Overrun the buffer; publish must not block.
		for i := 0; i < 100; i++ {
			require.NoError(t, hub.PushToUser(userID, i))
		}
		assert.Equal(t, 0, <-ch)
	})
}

func TestHub_PushToGroup(t *testing.T) {
	t.Run("delivers to every group subscriber", func(t *testing.T) {
		hub := push.NewHub()

		first, cancelFirst := hub.SubscribeGroup("staff")
		defer cancelFirst()
		second, cancelSecond := hub.SubscribeGroup("staff")
		defer cancelSecond()

		require.NoError(t, hub.PushToGroup("staff", "heads up"))

		assert.Equal(t, "heads up", <-first)
		assert.Equal(t, "heads up", <-second)
	})

	t.Run("returns ErrNoActiveConnection for an empty group", func(t *testing.T) {
		hub := push.NewHub()

		err := hub.PushToGroup("staff", "nobody home")
		assert.ErrorIs(t, err, push.ErrNoActiveConnection)
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		hub := push.NewHub()

		_, cancel := hub.SubscribeGroup("staff")
		cancel()
		cancel()

		err := hub.PushToGroup("staff", "x")
		assert.ErrorIs(t, err, push.ErrNoActiveConnection)
	})
}
