package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invorya/stockroom-api/internal/domain/entity"
)

// El orden user < admin < superadmin es total: cada rol alcanza su propio
// nivel y los inferiores, nunca los superiores.
func TestRole_AtLeast_OrdenTotal(t *testing.T) {
	assert.True(t, entity.RoleUser.AtLeast(entity.RoleUser))
	assert.False(t, entity.RoleUser.AtLeast(entity.RoleAdmin))
	assert.False(t, entity.RoleUser.AtLeast(entity.RoleSuperadmin))

	assert.True(t, entity.RoleAdmin.AtLeast(entity.RoleUser))
	assert.True(t, entity.RoleAdmin.AtLeast(entity.RoleAdmin))
	assert.False(t, entity.RoleAdmin.AtLeast(entity.RoleSuperadmin))

	assert.True(t, entity.RoleSuperadmin.AtLeast(entity.RoleUser))
	assert.True(t, entity.RoleSuperadmin.AtLeast(entity.RoleAdmin))
	assert.True(t, entity.RoleSuperadmin.AtLeast(entity.RoleSuperadmin))
}

func TestRole_DesconocidoNuncaPasa(t *testing.T) {
	assert.False(t, entity.Role("root").AtLeast(entity.RoleUser))
	assert.False(t, entity.Role("").AtLeast(entity.RoleUser))
	assert.False(t, entity.Role("root").Valid())
	assert.True(t, entity.RoleSuperadmin.Valid())
}
