package domain

import "time"

// Dashboard identifies one of the four role-specific dashboard variants the
// client renders after sign-in.
type Dashboard string

const (
	DashboardAdmin     Dashboard = "admin"
	DashboardManager   Dashboard = "manager"
	DashboardCaregiver Dashboard = "caregiver"
	DashboardParent    Dashboard = "parent"
)

// Identity is the request-scoped result of verifying a token.
type Identity struct {
	AccountID string
	Role      Role
	TokenID   string
	ExpiresAt time.Time
}

// DashboardFor maps a role to its dashboard variant. The switch is exhaustive
// over the Role enumeration; an out-of-enum role falls through to the parent
// dashboard, the least privileged variant.
func DashboardFor(role Role) Dashboard {
	switch role {
	case RoleAdmin:
		return DashboardAdmin
	case RoleManager:
		return DashboardManager
	case RoleCaregiver:
		return DashboardCaregiver
	case RoleParent:
		return DashboardParent
	default:
		return DashboardParent
	}
}

// LandingPath returns the client route a freshly authenticated identity is
// sent to.
func LandingPath(role Role) string {
	return "/dashboard/" + string(DashboardFor(role))
}

// ViewDecision is the outcome of resolving a navigation attempt.
type ViewDecision struct {
	// Redirect is non-empty when the client must navigate away:
	// "/signin" without a valid identity, "/unauthorized" on a role miss.
	Redirect  string
	Dashboard Dashboard
}

// ResolveView decides what a navigation to a route restricted to allowed
// roles should display. Pure: it is re-evaluated on every navigation and
// caches nothing across identity changes.
func ResolveView(identity *Identity, allowed ...Role) ViewDecision {
	if identity == nil || !identity.Role.Valid() {
		return ViewDecision{Redirect: "/signin"}
	}
	for _, r := range allowed {
		if identity.Role == r {
			return ViewDecision{Dashboard: DashboardFor(identity.Role)}
		}
	}
	return ViewDecision{Redirect: "/unauthorized"}
}
