package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rigforge/internal/constants"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	return svc
}

func TestBuiltinRolesGuardAdminRoutes(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}
	// 重复初始化保持幂等
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles twice failed: %v", err)
	}

	cases := []struct {
		role   string
		path   string
		method string
		want   bool
	}{
		{constants.RoleAdmin, "/api/v1/admin/products/42", "patch", true},
		{constants.RoleAdmin, "/api/v1/admin/dashboard/overview", "GET", true},
		{constants.RoleCustomer, "/api/v1/admin/products/low-stock", "GET", false},
		{"", "/api/v1/admin/orders", "GET", false},
	}
	for _, tc := range cases {
		got, err := svc.EnforceRole(tc.role, tc.path, tc.method)
		if err != nil {
			t.Fatalf("enforce %s %s failed: %v", tc.role, tc.path, err)
		}
		if got != tc.want {
			t.Errorf("role=%q %s %s allow=%v want %v", tc.role, tc.method, tc.path, got, tc.want)
		}
	}

	roles, err := svc.ListRoles()
	if err != nil {
		t.Fatalf("list roles failed: %v", err)
	}
	if strings.Join(roles, ",") != "role:admin,role:customer" {
		t.Fatalf("unexpected roles %v", roles)
	}
}

func TestGrantAndRevokeRolePolicy(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy(constants.RoleCustomer, "/admin/products/low-stock", "GET"); err != nil {
		t.Fatalf("grant policy failed: %v", err)
	}
	allow, err := svc.EnforceRole(constants.RoleCustomer, "/api/v1/admin/products/low-stock", "GET")
	if err != nil || !allow {
		t.Fatalf("expected allow after grant, allow=%v err=%v", allow, err)
	}

	policies, err := svc.GetRolePolicies(constants.RoleCustomer)
	if err != nil || len(policies) != 1 {
		t.Fatalf("unexpected policies %v err=%v", policies, err)
	}

	if err := svc.RevokeRolePolicy(constants.RoleCustomer, "/admin/products/low-stock", "GET"); err != nil {
		t.Fatalf("revoke policy failed: %v", err)
	}
	allow, err = svc.EnforceRole(constants.RoleCustomer, "/api/v1/admin/products/low-stock", "GET")
	if err != nil || allow {
		t.Fatalf("expected deny after revoke, allow=%v err=%v", allow, err)
	}
}

func TestNormalizeObject(t *testing.T) {
	cases := map[string]string{
		"":                     "/",
		"admin/orders":         "/admin/orders",
		"/api/v1":              "/",
		"/api/v1/admin/orders": "/admin/orders",
		"/admin/products/:id":  "/admin/products/:id",
	}
	for in, want := range cases {
		if got := NormalizeObject(in); got != want {
			t.Errorf("NormalizeObject(%q) = %q, want %q", in, got, want)
		}
	}
}
