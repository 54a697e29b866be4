package service

import (
	"context"
	"testing"

	"github.com/nayamama/hr-project/internal/apperror"
	"github.com/nayamama/hr-project/internal/models"
	"github.com/nayamama/hr-project/internal/store"
)

func seedRoles(t *testing.T, stores store.Stores) (reserved, plain models.Role) {
	t.Helper()
	ctx := context.Background()

	reserved = models.Role{Name: models.ReservedRoleName, Description: "System administrator", IsReserved: true}
	if err := stores.Roles.Create(ctx, &reserved); err != nil {
		t.Fatalf("seed reserved role: %v", err)
	}
	plain = models.Role{Name: "Moderator", Description: "Chat moderation"}
	if err := stores.Roles.Create(ctx, &plain); err != nil {
		t.Fatalf("seed role: %v", err)
	}
	return reserved, plain
}

func TestListAssignableExcludesReservedRole(t *testing.T) {
	stores := store.NewMemoryStores()
	svc := NewRoleService(stores.Roles)
	_, plain := seedRoles(t, stores)

	roles, err := svc.ListAssignable(context.Background(), admin)
	if err != nil {
		t.Fatalf("list assignable: %v", err)
	}
	if len(roles) != 1 || roles[0].ID != plain.ID {
		t.Fatalf("expected only the plain role, got %+v", roles)
	}

	all, err := svc.List(context.Background(), admin)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("full listing must keep the reserved role, got %d", len(all))
	}
}

func TestDeleteReservedRoleRefused(t *testing.T) {
	stores := store.NewMemoryStores()
	svc := NewRoleService(stores.Roles)
	reserved, _ := seedRoles(t, stores)

	if err := svc.Delete(context.Background(), reserved.ID, admin); !apperror.Is(err, apperror.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestDeleteRoleRestrictedWhileReferenced(t *testing.T) {
	stores := store.NewMemoryStores()
	svc := NewRoleService(stores.Roles)
	_, plain := seedRoles(t, stores)
	ctx := context.Background()

	employee := models.Employee{Email: "jo@example.com", Username: "jo", RoleID: &plain.ID}
	if err := stores.Employees.Create(ctx, &employee); err != nil {
		t.Fatalf("seed employee: %v", err)
	}

	if err := svc.Delete(ctx, plain.ID, admin); !apperror.Is(err, apperror.CodeConflict) {
		t.Fatalf("expected conflict while referenced, got %v", err)
	}
}

func TestRoleDuplicateName(t *testing.T) {
	stores := store.NewMemoryStores()
	svc := NewRoleService(stores.Roles)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateRoleInput{Name: "Moderator", Description: "A"}, admin); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, CreateRoleInput{Name: "Moderator", Description: "B"}, admin); !apperror.Is(err, apperror.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}
