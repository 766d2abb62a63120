package types

import "github.com/google/uuid"

// Role is the already-resolved role supplied by the authentication layer.
// Anything other than admin or manager is treated as a regular member.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleMember  Role = "MEMBER"
)

// Actor is the resolved caller identity attached to every request by the
// authentication collaborator. The engine never authenticates by itself.
type Actor struct {
	ID          uuid.UUID
	Role        Role
	CompanyCode string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) IsManager() bool {
	return a.Role == RoleManager
}
