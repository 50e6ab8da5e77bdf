package entity

// Role es el rol de un usuario. El orden user < admin < superadmin es total y
// todas las decisiones de autorización se toman comparando contra un rol
// mínimo, nunca con listas sueltas por ruta.
type Role string

// Roles válidos para User.
const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// roleRank orden total de los roles.
var roleRank = map[Role]int{
	RoleUser:       1,
	RoleAdmin:      2,
	RoleSuperadmin: 3,
}

// Valid indica si el rol existe en la jerarquía.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast es la única función de comparación de roles: true si r encabeza o
// iguala a min en la jerarquía. Un rol desconocido nunca pasa.
func (r Role) AtLeast(min Role) bool {
	rr, ok := roleRank[r]
	if !ok {
		return false
	}
	mr, ok := roleRank[min]
	if !ok {
		return false
	}
	return rr >= mr
}
