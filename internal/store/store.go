// Package store is the entity store: durable CRUD over the four record
// kinds with name-uniqueness arbitration at commit time. Two backends
// implement the same contract, one on GORM/Postgres and one in memory.
package store

import (
	"context"

	"github.com/nayamama/hr-project/internal/models"
)

type Departments interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id uint) (models.Department, error)
	List(ctx context.Context) ([]models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id uint) error
	// CountEmployees reports how many employees still reference the
	// department; deletion is restricted while it is non-zero.
	CountEmployees(ctx context.Context, id uint) (int64, error)
}

type Roles interface {
	Create(ctx context.Context, role *models.Role) error
	GetByID(ctx context.Context, id uint) (models.Role, error)
	List(ctx context.Context) ([]models.Role, error)
	ListAssignable(ctx context.Context) ([]models.Role, error)
	Update(ctx context.Context, role *models.Role) error
	Delete(ctx context.Context, id uint) error
	CountEmployees(ctx context.Context, id uint) (int64, error)
}

type Employees interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id uint) (models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
	Update(ctx context.Context, employee *models.Employee) error
}

type Anchors interface {
	Create(ctx context.Context, anchor *models.Anchor) error
	GetByID(ctx context.Context, id uint) (models.Anchor, error)
	GetByName(ctx context.Context, name string) (models.Anchor, error)
	List(ctx context.Context) ([]models.Anchor, error)
	Update(ctx context.Context, anchor *models.Anchor) error
	Delete(ctx context.Context, id uint) error
}

// Stores bundles the per-kind stores a backend provides.
type Stores struct {
	Departments Departments
	Roles       Roles
	Employees   Employees
	Anchors     Anchors
}
