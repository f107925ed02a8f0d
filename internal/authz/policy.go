// Package authz holds the role → permitted-action policy. It is a pure,
// stateless mapping injected wherever a mutation is attempted, so it can be
// tested without a database and must be consulted before any entity is
// touched.
package authz

import "github.com/google/uuid"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource kinds as they appear in error payloads.
type Resource string

const (
	ResourceProduct            Resource = "product"
	ResourceSupermarket        Resource = "supermarket"
	ResourceSupermarketProduct Resource = "supermarketProduct"
	ResourceUser               Resource = "user"
)

// Principal is the authenticated actor attached to every request.
type Principal struct {
	ID   uuid.UUID
	Name string
	Role Role
}

// Permit is total over the finite (role × action) space: admin may do
// everything, user may only read. There are no resource-instance exceptions
// in this domain, so the resource argument exists only for call-site clarity.
func Permit(role Role, action Action, _ Resource) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleUser:
		return action == ActionRead
	default:
		return false
	}
}

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	return Role(s) == RoleUser || Role(s) == RoleAdmin
}
