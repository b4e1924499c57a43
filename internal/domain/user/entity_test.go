package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleSalesperson, RoleClient, RoleDeliverer} {
		assert.True(t, r.Valid(), "%s", r)
	}
	assert.False(t, Role("gerente").Valid())
	assert.False(t, Role("").Valid())
}

func TestRoleHelpers(t *testing.T) {
	u := &User{Role: RoleDeliverer}
	assert.True(t, u.IsDeliverer())
	assert.False(t, u.IsAdmin())
	assert.False(t, u.IsSalesperson())
	assert.False(t, u.IsClient())

	u.Role = RoleAdmin
	assert.True(t, u.IsAdmin())
	assert.False(t, u.IsDeliverer())
}

func TestGetFullName(t *testing.T) {
	u := &User{FirstName: "María", LastName: "González"}
	assert.Equal(t, "María González", u.GetFullName())
}
