package user_test

import (
	"testing"

	"logistics/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
)

func TestRestoreUser(t *testing.T) {
	u := user.RestoreUser(7, "Ada", "  Ada@Example.COM ", user.RoleCustomer)

	assert.Equal(t, int64(7), u.ID())
	assert.Equal(t, "Ada", u.Name())
	assert.Equal(t, "ada@example.com", u.Email())
	assert.Equal(t, user.RoleCustomer, u.Role())
	assert.True(t, u.HasEmail())

	assert.False(t, user.RestoreUser(8, "No Mail", "", user.RoleOperator).HasEmail())
}
