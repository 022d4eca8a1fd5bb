package auth

import (
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"go.uber.org/fx"
)

// emailRolePolicy grants the admin role to a configured set of addresses.
type emailRolePolicy struct {
	admins map[string]struct{}
}

// RolePolicyParams holds dependencies for the role policy.
type RolePolicyParams struct {
	fx.In

	Config *config.Config
}

// NewEmailRolePolicy builds the policy from auth.adminEmails.
func NewEmailRolePolicy(params RolePolicyParams) service.RolePolicy {
	var emails []string
	if params.Config != nil && params.Config.Auth != nil {
		emails = params.Config.Auth.AdminEmails
	}

	return NewEmailRolePolicyFromList(emails)
}

// NewEmailRolePolicyFromList builds the policy from an explicit list of admin emails.
func NewEmailRolePolicyFromList(emails []string) service.RolePolicy {
	admins := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		if normalized := normalizeEmail(email); normalized != "" {
			admins[normalized] = struct{}{}
		}
	}

	return &emailRolePolicy{admins: admins}
}

// AssignRole returns RoleAdmin for configured addresses and RoleCustomer otherwise.
func (p *emailRolePolicy) AssignRole(email string) entity.Role {
	if _, ok := p.admins[normalizeEmail(email)]; ok {
		return entity.RoleAdmin
	}

	return entity.RoleCustomer
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
