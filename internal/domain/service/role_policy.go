package service

import "storefront/internal/domain/entity"

// RolePolicy decides the role of an account at creation time.
type RolePolicy interface {
	// AssignRole returns the role for a newly registered email.
	AssignRole(email string) entity.Role
}
