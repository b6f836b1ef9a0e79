//go:build unit

package item_test

import (
	"strings"
	"testing"

	"fitroom-backend/internal/domain/item"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := item.NewItem(uuid.New(), "Denim Jacket", "SKU-DENIM-001", 8900, true, false)
		require.NoError(t, err)

		assert.Equal(t, "Denim Jacket", actual.Name())
		assert.Equal(t, "SKU-DENIM-001", actual.SKU())
		assert.Equal(t, int64(8900), actual.PriceCents())
		assert.True(t, actual.IsRequestable())
	})

	t.Run("name validation", func(t *testing.T) {
		cases := []struct {
			name     string
			itemName string
			errIs    error
		}{
			{name: "maximum length name", itemName: strings.Repeat("a", item.MaxItemNameLength)},
			{name: "surrounding whitespace is trimmed", itemName: "  Linen Shirt  "},
			{name: "empty name", itemName: "", errIs: item.ErrEmptyItemName},
			{name: "whitespace only name", itemName: "   ", errIs: item.ErrEmptyItemName},
			{name: "name exceeds maximum length", itemName: strings.Repeat("a", item.MaxItemNameLength+1), errIs: item.ErrItemNameTooLong},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := item.NewItem(uuid.New(), c.itemName, "SKU-TEST-001", 1000, true, false)
				if c.errIs == nil {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("price validation", func(t *testing.T) {
		_, err := item.NewItem(uuid.New(), "Free Sample", "SKU-FREE-001", 0, true, false)
		require.NoError(t, err)

		_, err = item.NewItem(uuid.New(), "Broken", "SKU-NEG-001", -1, true, false)
		require.ErrorIs(t, err, item.ErrNegativePrice)
	})

	t.Run("requestability", func(t *testing.T) {
		active, err := item.NewItem(uuid.New(), "Active", "SKU-A-001", 100, true, false)
		require.NoError(t, err)
		assert.True(t, active.IsRequestable())

		inactive, err := item.NewItem(uuid.New(), "Inactive", "SKU-I-001", 100, false, false)
		require.NoError(t, err)
		assert.False(t, inactive.IsRequestable())

		deleted, err := item.NewItem(uuid.New(), "Deleted", "SKU-D-001", 100, true, true)
		require.NoError(t, err)
		assert.False(t, deleted.IsRequestable())
	})
}
