//go:build unit

package fittingroom_test

import (
	"testing"
	"time"

	"fitroom-backend/internal/domain/fittingroom"
	"fitroom-backend/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transitionCase struct {
	name     string
	mutate   func(*builder.FittingRoomRequestBuilder)
	apply    func(*fittingroom.Request, time.Time) error
	errIs    error
	expected fittingroom.Status
}

func TestRequest(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	staffID := uuid.New()

	t.Run("new request starts unresolved", func(t *testing.T) {
		userID := uuid.New()
		itemID := uuid.New()

		actual := fittingroom.NewRequest(userID, itemID, now)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, userID, actual.UserID())
		assert.Equal(t, itemID, actual.ItemID())
		assert.Equal(t, fittingroom.StatusNew, actual.Status())
		assert.Equal(t, fittingroom.MessagePending, actual.StaffMessage())
		assert.True(t, actual.IsUnresolved())
		assert.Nil(t, actual.HandledByStaffID())
		assert.Nil(t, actual.HandledAt())
		assert.False(t, actual.IsDeleted())
	})

	t.Run("staff complete", func(t *testing.T) {
		runTransitionCases(t, now, []transitionCase{
			{
				name:     "pending request completes",
				apply:    func(r *fittingroom.Request, at time.Time) error { return r.Complete(staffID, at) },
				expected: fittingroom.StatusCompleted,
			},
			{
				name:   "completed request stays completed",
				mutate: func(b *builder.FittingRoomRequestBuilder) { b.WithStatus("completed") },
				apply:  func(r *fittingroom.Request, at time.Time) error { return r.Complete(staffID, at) },
				errIs:  fittingroom.ErrAlreadyHandled,
			},
			{
				name:   "cancelled request cannot complete",
				mutate: func(b *builder.FittingRoomRequestBuilder) { b.WithStatus("cancelled") },
				apply:  func(r *fittingroom.Request, at time.Time) error { return r.Complete(staffID, at) },
				errIs:  fittingroom.ErrAlreadyHandled,
			},
			{
				name:   "deleted request cannot complete",
				mutate: func(b *builder.FittingRoomRequestBuilder) { b.AsDeleted() },
				apply:  func(r *fittingroom.Request, at time.Time) error { return r.Complete(staffID, at) },
				errIs:  fittingroom.ErrDeleted,
			},
		})
	})

	t.Run("complete records the handling staff member", func(t *testing.T) {
		actual, err := builder.NewFittingRoomRequestBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, actual.Complete(staffID, now))

		assert.Equal(t, fittingroom.MessageCompletedByStaff, actual.StaffMessage())
		require.NotNil(t, actual.HandledByStaffID())
		assert.Equal(t, staffID, *actual.HandledByStaffID())
		require.NotNil(t, actual.HandledAt())
		assert.Equal(t, now, *actual.HandledAt())
		assert.False(t, actual.IsUnresolved())
	})

	t.Run("auto complete", func(t *testing.T) {
		runTransitionCases(t, now, []transitionCase{
			{
				name:     "pending request auto completes",
				apply:    func(r *fittingroom.Request, at time.Time) error { return r.AutoComplete(at) },
				expected: fittingroom.StatusCompleted,
			},
			{
				name:   "handled request rejects auto complete",
				mutate: func(b *builder.FittingRoomRequestBuilder) { b.WithStatus("completed") },
				apply:  func(r *fittingroom.Request, at time.Time) error { return r.AutoComplete(at) },
				errIs:  fittingroom.ErrAlreadyHandled,
			},
		})
	})

	t.Run("auto complete has no handling staff member", func(t *testing.T) {
		actual, err := builder.NewFittingRoomRequestBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, actual.AutoComplete(now))

		assert.Equal(t, fittingroom.MessageReadyNow, actual.StaffMessage())
		assert.Nil(t, actual.HandledByStaffID())
		require.NotNil(t, actual.HandledAt())
		assert.Equal(t, now, *actual.HandledAt())
	})

	t.Run("staff cancel", func(t *testing.T) {
		runTransitionCases(t, now, []transitionCase{
			{
				name:     "pending request cancels",
				apply:    func(r *fittingroom.Request, at time.Time) error { return r.CancelByStaff(staffID, at) },
				expected: fittingroom.StatusCancelled,
			},
			{
				name:   "completed request cannot cancel",
				mutate: func(b *builder.FittingRoomRequestBuilder) { b.WithStatus("completed") },
				apply:  func(r *fittingroom.Request, at time.Time) error { return r.CancelByStaff(staffID, at) },
				errIs:  fittingroom.ErrAlreadyHandled,
			},
		})
	})

	t.Run("owner cancel", func(t *testing.T) {
		ownerID := uuid.New()

		t.Run("owner can cancel own request", func(t *testing.T) {
			actual, err := builder.NewFittingRoomRequestBuilder().WithUserID(ownerID).BuildDomain()
			require.NoError(t, err)

			require.NoError(t, actual.CancelByOwner(ownerID, now))

			assert.Equal(t, fittingroom.StatusCancelled, actual.Status())
			assert.Equal(t, fittingroom.MessageCancelledByUser, actual.StaffMessage())
			assert.Nil(t, actual.HandledByStaffID())
		})

		t.Run("other user cannot cancel", func(t *testing.T) {
			actual, err := builder.NewFittingRoomRequestBuilder().WithUserID(ownerID).BuildDomain()
			require.NoError(t, err)

			err = actual.CancelByOwner(uuid.New(), now)

			require.ErrorIs(t, err, fittingroom.ErrNotOwner)
			assert.Equal(t, fittingroom.StatusNew, actual.Status())
		})
	})

	t.Run("soft delete", func(t *testing.T) {
		t.Run("keeps current status", func(t *testing.T) {
			actual, err := builder.NewFittingRoomRequestBuilder().WithStatus("completed").BuildDomain()
			require.NoError(t, err)

			require.NoError(t, actual.SoftDelete(staffID, now))

			assert.True(t, actual.IsDeleted())
			assert.Equal(t, fittingroom.StatusCompleted, actual.Status())
			require.NotNil(t, actual.DeletedByStaffID())
			assert.Equal(t, staffID, *actual.DeletedByStaffID())
		})

		t.Run("cannot delete twice", func(t *testing.T) {
			actual, err := builder.NewFittingRoomRequestBuilder().AsDeleted().BuildDomain()
			require.NoError(t, err)

			err = actual.SoftDelete(staffID, now)

			require.ErrorIs(t, err, fittingroom.ErrAlreadyDeleted)
		})

		t.Run("deleted pending request is not unresolved", func(t *testing.T) {
			actual, err := builder.NewFittingRoomRequestBuilder().AsDeleted().BuildDomain()
			require.NoError(t, err)

			assert.False(t, actual.IsUnresolved())
		})
	})
}

func TestStatus(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		for _, v := range []string{"new_request", "completed", "cancelled"} {
			status, err := fittingroom.NewStatus(v)
			require.NoError(t, err)
			assert.Equal(t, v, status.String())
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := fittingroom.NewStatus("pending")
		require.ErrorIs(t, err, fittingroom.ErrInvalidStatus)
	})

	t.Run("terminal statuses", func(t *testing.T) {
		assert.False(t, fittingroom.StatusNew.IsTerminal())
		assert.True(t, fittingroom.StatusCompleted.IsTerminal())
		assert.True(t, fittingroom.StatusCancelled.IsTerminal())
	})
}

func runTransitionCases(t *testing.T, now time.Time, cases []transitionCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewFittingRoomRequestBuilder()
			if c.mutate != nil {
				c.mutate(b)
			}
			actual, err := b.BuildDomain()
			require.NoError(t, err)

			err = c.apply(actual, now)

			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.expected, actual.Status())
				assert.Equal(t, now, actual.UpdatedAt())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
