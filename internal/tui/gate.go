package tui

import (
	"github.com/smartshop/shopdeck/internal/session"
	"github.com/smartshop/shopdeck/pkg/domain"
)

// decision is the access gate's verdict for a guarded view.
type decision int

const (
	// gatePending means session restore is still in flight; render a
	// neutral placeholder and make no redirect decision yet.
	gatePending decision = iota
	// gateLogin means no authenticated user is present.
	gateLogin
	// gateForbidden means the user's role is not in the allow-list.
	gateForbidden
	gateGranted
)

// evaluateGate decides whether the current session may see a view guarded
// by the optional role allow-list. An empty allow-list admits any
// authenticated user.
func evaluateGate(st session.State, allowed []domain.Role) decision {
	if st.Status == session.StatusLoading {
		return gatePending
	}
	if !st.Authenticated() {
		return gateLogin
	}
	if len(allowed) == 0 {
		return gateGranted
	}
	for _, r := range allowed {
		if st.User.Role == r {
			return gateGranted
		}
	}
	return gateForbidden
}

// landingFor maps a role to its post-login dashboard variant.
func landingFor(r domain.Role) dashboardKind {
	switch r {
	case domain.RoleAdmin:
		return dashAdmin
	case domain.RoleShopOwner:
		return dashShopOwner
	case domain.RoleCustomer:
		return dashCustomer
	}
	return dashCustomer
}

// allowedRolesFor returns the role allow-list guarding a view. A nil
// list means any authenticated user.
func allowedRolesFor(v view) []domain.Role {
	if v == viewMedia {
		return []domain.Role{domain.RoleAdmin, domain.RoleShopOwner}
	}
	return nil
}
