package domain

import "testing"

func TestDashboardFor_CoversEveryRole(t *testing.T) {
	want := map[Role]Dashboard{
		RoleAdmin:     DashboardAdmin,
		RoleManager:   DashboardManager,
		RoleCaregiver: DashboardCaregiver,
		RoleParent:    DashboardParent,
	}
	for _, role := range Roles() {
		if got := DashboardFor(role); got != want[role] {
			t.Fatalf("DashboardFor(%s) = %s, want %s", role, got, want[role])
		}
	}
}

func TestResolveView_NoIdentityRedirectsToSignIn(t *testing.T) {
	decision := ResolveView(nil, RoleAdmin, RoleManager)
	if decision.Redirect != "/signin" {
		t.Fatalf("expected /signin redirect, got %+v", decision)
	}
}

func TestResolveView_InvalidRoleRedirectsToSignIn(t *testing.T) {
	decision := ResolveView(&Identity{AccountID: "acc-1", Role: "intruder"}, RoleAdmin)
	if decision.Redirect != "/signin" {
		t.Fatalf("expected /signin redirect, got %+v", decision)
	}
}

func TestResolveView_RoleNotAllowed(t *testing.T) {
	decision := ResolveView(&Identity{AccountID: "acc-1", Role: RoleParent}, RoleAdmin, RoleManager)
	if decision.Redirect != "/unauthorized" {
		t.Fatalf("expected /unauthorized redirect, got %+v", decision)
	}
}

func TestResolveView_AllowedRoleGetsDashboard(t *testing.T) {
	decision := ResolveView(&Identity{AccountID: "acc-1", Role: RoleManager}, RoleAdmin, RoleManager)
	if decision.Redirect != "" || decision.Dashboard != DashboardManager {
		t.Fatalf("expected manager dashboard, got %+v", decision)
	}
}

func TestLandingPath(t *testing.T) {
	if got := LandingPath(RoleCaregiver); got != "/dashboard/caregiver" {
		t.Fatalf("unexpected landing path: %s", got)
	}
}
