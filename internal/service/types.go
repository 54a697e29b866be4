package service

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nayamama/hr-project/internal/models"
)

// Actor is the authenticated caller. The request layer resolves it; the
// services only care about the admin capability.
type Actor struct {
	IsAdmin bool
}

type CreateDepartmentInput struct {
	Name        string
	Description string
}

type UpdateDepartmentInput struct {
	Name        string
	Description string
}

type CreateRoleInput struct {
	Name        string
	Description string
}

type UpdateRoleInput struct {
	Name        string
	Description string
}

type CreateSalariedAnchorInput struct {
	Name        string
	EntryTime   *time.Time
	BasicSalary decimal.Decimal
}

type CreateCommissionAnchorInput struct {
	Name       string
	EntryTime  *time.Time
	Percentage decimal.Decimal
}

// Attachment is an uploaded photo. Content is consumed once.
type Attachment struct {
	Filename string
	Content  io.Reader
}

// EditAnchorInput carries the full field set; Edit overwrites every field
// unconditionally. Suppressing the compensation field that does not match
// BasicSalaryOrNot is the caller's responsibility, since the edit path may
// switch modes.
type EditAnchorInput struct {
	Name             string
	EntryTime        *time.Time
	Address          string
	MomoNumber       string
	MobileNumber     string
	IDNumber         string
	BasicSalaryOrNot bool
	BasicSalary      decimal.Decimal
	Percentage       decimal.Decimal
	LiveTime         decimal.Decimal
	LiveSession      models.LiveSession
	AceAnchorOrNot   bool
	Agent            string
	TotalPaid        decimal.Decimal
	OwnedSalary      decimal.Decimal
	Photo            *Attachment
}

// DeleteAction is the closed two-value state of the anchor deletion
// protocol. Anything else is rejected at parse time.
type DeleteAction string

const (
	DeleteActionRequest DeleteAction = "request"
	DeleteActionConfirm DeleteAction = "confirm"
)

// DeleteConfirmation is the transient token returned by the request phase.
// It is never persisted; it lives for one round trip to the actor.
type DeleteConfirmation struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SearchResult reports an exact-name lookup. An empty result is a normal
// outcome, not an error.
type SearchResult struct {
	Found  bool       `json:"found"`
	Anchor *AnchorDTO `json:"anchor,omitempty"`
}

type DepartmentDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type RoleDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsReserved  bool      `json:"is_reserved"`
	CreatedAt   time.Time `json:"created_at"`
}

type EmployeeDTO struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	IsAdmin      bool      `json:"is_admin"`
	DepartmentID *uint     `json:"department_id"`
	RoleID       *uint     `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type AnchorDTO struct {
	ID               uint               `json:"id"`
	Name             string             `json:"name"`
	EntryTime        *string            `json:"entry_time,omitempty"`
	Address          string             `json:"address"`
	MomoNumber       string             `json:"momo_number"`
	MobileNumber     string             `json:"mobile_number"`
	IDNumber         string             `json:"id_number"`
	BasicSalaryOrNot bool               `json:"basic_salary_or_not"`
	BasicSalary      decimal.Decimal    `json:"basic_salary"`
	Percentage       decimal.Decimal    `json:"percentage"`
	LiveTime         decimal.Decimal    `json:"live_time"`
	LiveSession      models.LiveSession `json:"live_session,omitempty"`
	AceAnchorOrNot   bool               `json:"ace_anchor_or_not"`
	Agent            string             `json:"agent"`
	TotalPaid        decimal.Decimal    `json:"total_paid"`
	OwnedSalary      decimal.Decimal    `json:"owned_salary"`
	Photo            string             `json:"photo,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}

type DepartmentManager interface {
	List(ctx context.Context, actor Actor) ([]DepartmentDTO, error)
	Create(ctx context.Context, input CreateDepartmentInput, actor Actor) (DepartmentDTO, error)
	Update(ctx context.Context, departmentID uint, input UpdateDepartmentInput, actor Actor) (DepartmentDTO, error)
	Delete(ctx context.Context, departmentID uint, actor Actor) error
}

type RoleManager interface {
	List(ctx context.Context, actor Actor) ([]RoleDTO, error)
	ListAssignable(ctx context.Context, actor Actor) ([]RoleDTO, error)
	Create(ctx context.Context, input CreateRoleInput, actor Actor) (RoleDTO, error)
	Update(ctx context.Context, roleID uint, input UpdateRoleInput, actor Actor) (RoleDTO, error)
	Delete(ctx context.Context, roleID uint, actor Actor) error
}

type EmployeeManager interface {
	List(ctx context.Context, actor Actor) ([]EmployeeDTO, error)
	Assign(ctx context.Context, employeeID, departmentID, roleID uint, actor Actor) (EmployeeDTO, error)
}

type AnchorManager interface {
	List(ctx context.Context, actor Actor) ([]AnchorDTO, error)
	CreateSalaried(ctx context.Context, input CreateSalariedAnchorInput, actor Actor) (AnchorDTO, error)
	CreateCommission(ctx context.Context, input CreateCommissionAnchorInput, actor Actor) (AnchorDTO, error)
	Edit(ctx context.Context, anchorID uint, input EditAnchorInput, actor Actor) (AnchorDTO, error)
	RequestDelete(ctx context.Context, anchorID uint, name string, actor Actor) (DeleteConfirmation, error)
	ConfirmDelete(ctx context.Context, anchorID uint, actor Actor) error
	SearchByName(ctx context.Context, name string, actor Actor) (SearchResult, error)
}
