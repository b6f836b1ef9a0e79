//go:build unit

package user_test

import (
	"testing"

	"fitroom-backend/internal/domain/user"
	"fitroom-backend/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "test@example.com", actual.Email().Value())
		assert.Equal(t, user.RoleCustomer, actual.Role())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("email validation", func(t *testing.T) {
		cases := []struct {
			name  string
			email string
			errIs error
		}{
			{name: "valid email", email: "someone@example.com"},
			{name: "email with subdomain", email: "someone@mail.example.co.jp"},
			{name: "surrounding whitespace is trimmed", email: "  someone@example.com  "},
			{name: "missing at sign", email: "someoneexample.com", errIs: user.ErrInvalidEmail},
			{name: "missing domain", email: "someone@", errIs: user.ErrInvalidEmail},
			{name: "missing tld", email: "someone@example", errIs: user.ErrInvalidEmail},
			{name: "empty", email: "", errIs: user.ErrInvalidEmail},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := user.NewEmail(c.email)
				if c.errIs == nil {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("password validation", func(t *testing.T) {
		_, err := user.NewPassword("password123")
		require.NoError(t, err)

		_, err = user.NewPassword("short")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})

	t.Run("credentials", func(t *testing.T) {
		creds, err := user.NewCredentials("someone@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "someone@example.com", creds.Email().Value())
		assert.Equal(t, "password123", creds.Password().Value())

		_, err = user.NewCredentials("not-an-email", "password123")
		require.ErrorIs(t, err, user.ErrInvalidEmail)

		_, err = user.NewCredentials("someone@example.com", "short")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestRole(t *testing.T) {
	t.Run("valid roles", func(t *testing.T) {
		for _, v := range []string{"customer", "team_member", "manager"} {
			role, err := user.NewRole(v)
			require.NoError(t, err)
			assert.Equal(t, v, role.String())
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := user.NewRole("admin")
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("staff roles", func(t *testing.T) {
		assert.False(t, user.RoleCustomer.IsStaff())
		assert.True(t, user.RoleTeamMember.IsStaff())
		assert.True(t, user.RoleManager.IsStaff())
	})
}
