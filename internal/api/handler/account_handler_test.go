package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/kidsync/childcare-api/internal/core/domain"
	"github.com/kidsync/childcare-api/internal/core/ports"
)

func accountsPage(n int) []*domain.Account {
	page := make([]*domain.Account, 0, n)
	for i := 0; i < n; i++ {
		a := parentAccount()
		a.ID = "acc-" + strconv.Itoa(i+1)
		a.Email = "user" + strconv.Itoa(i+1) + "@example.com"
		page = append(page, a)
	}
	return page
}

func decodeList(t *testing.T, body []byte) listAccountsResponse {
	t.Helper()
	var resp listAccountsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestAccountHandler_List_DefaultLimitMetadata(t *testing.T) {
	// 30 active accounts, page 2 without a limit param: the default page
	// size applies, so page 2 holds the last 10 rows and is the final page
	svc := &stubAccountService{listAccounts: accountsPage(10), listTotal: 30}
	h := NewAccountHandler(svc)

	c, rec := newHandlerContext(http.MethodGet, "/users?page=2", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if svc.lastFilter.Limit != ports.DefaultPageSize || svc.lastFilter.Page != 2 {
		t.Fatalf("service saw a different page than requested: %+v", svc.lastFilter)
	}

	resp := decodeList(t, rec.Body.Bytes())
	if resp.Pagination.Limit != ports.DefaultPageSize {
		t.Fatalf("reported limit %d, want the default %d", resp.Pagination.Limit, ports.DefaultPageSize)
	}
	if resp.Pagination.TotalPages != 2 {
		t.Fatalf("reported %d total pages for 30 rows at %d per page, want 2",
			resp.Pagination.TotalPages, ports.DefaultPageSize)
	}
	if resp.Pagination.Page != 2 || resp.Pagination.Total != 30 {
		t.Fatalf("unexpected pagination: %+v", resp.Pagination)
	}
}

func TestAccountHandler_List_CapsRequestedLimit(t *testing.T) {
	svc := &stubAccountService{listAccounts: accountsPage(100), listTotal: 250}
	h := NewAccountHandler(svc)

	c, rec := newHandlerContext(http.MethodGet, "/users?limit=500", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if svc.lastFilter.Limit != ports.MaxPageSize {
		t.Fatalf("service saw limit %d, want the cap %d", svc.lastFilter.Limit, ports.MaxPageSize)
	}

	resp := decodeList(t, rec.Body.Bytes())
	if resp.Pagination.Limit != ports.MaxPageSize {
		t.Fatalf("reported limit %d, want the cap %d", resp.Pagination.Limit, ports.MaxPageSize)
	}
	if resp.Pagination.TotalPages != 3 {
		t.Fatalf("reported %d total pages for 250 rows at %d per page, want 3",
			resp.Pagination.TotalPages, ports.MaxPageSize)
	}
}

func TestAccountHandler_List_PassesFiltersThrough(t *testing.T) {
	svc := &stubAccountService{listAccounts: []*domain.Account{}, listTotal: 0}
	h := NewAccountHandler(svc)

	c, _ := newHandlerContext(http.MethodGet, "/users?role=caregiver&search=marie", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if svc.lastFilter.Role != domain.RoleCaregiver || svc.lastFilter.Search != "marie" {
		t.Fatalf("query filters not passed through: %+v", svc.lastFilter)
	}
}
