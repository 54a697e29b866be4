package store

import (
	"context"
	"testing"

	"github.com/nayamama/hr-project/internal/apperror"
	"github.com/nayamama/hr-project/internal/models"
)

func TestMemoryAnchorNameUniqueness(t *testing.T) {
	stores := NewMemoryStores()
	ctx := context.Background()

	first := models.Anchor{Name: "Alice"}
	if err := stores.Anchors.Create(ctx, &first); err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected an allocated id")
	}

	duplicate := models.Anchor{Name: "Alice"}
	if err := stores.Anchors.Create(ctx, &duplicate); !apperror.Is(err, apperror.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	// Renaming onto an existing name loses at commit time too.
	second := models.Anchor{Name: "Bob"}
	if err := stores.Anchors.Create(ctx, &second); err != nil {
		t.Fatalf("create: %v", err)
	}
	second.Name = "Alice"
	if err := stores.Anchors.Update(ctx, &second); !apperror.Is(err, apperror.CodeConflict) {
		t.Fatalf("expected conflict on rename, got %v", err)
	}
}

func TestMemoryGetByIDNotFound(t *testing.T) {
	stores := NewMemoryStores()

	if _, err := stores.Departments.GetByID(context.Background(), 99); !apperror.Is(err, apperror.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemoryCountEmployees(t *testing.T) {
	stores := NewMemoryStores()
	ctx := context.Background()

	department := models.Department{Name: "Streaming", Description: "Live"}
	if err := stores.Departments.Create(ctx, &department); err != nil {
		t.Fatalf("create department: %v", err)
	}
	employee := models.Employee{Email: "jo@example.com", Username: "jo", DepartmentID: &department.ID}
	if err := stores.Employees.Create(ctx, &employee); err != nil {
		t.Fatalf("create employee: %v", err)
	}

	count, err := stores.Departments.CountEmployees(ctx, department.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 referencing employee, got %d", count)
	}
}
