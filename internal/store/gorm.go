package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/nayamama/hr-project/internal/apperror"
	"github.com/nayamama/hr-project/internal/models"
)

// NewGormStores builds the Postgres-backed stores on a shared connection.
func NewGormStores(db *gorm.DB) Stores {
	return Stores{
		Departments: gormDepartments{db: db},
		Roles:       gormRoles{db: db},
		Employees:   gormEmployees{db: db},
		Anchors:     gormAnchors{db: db},
	}
}

type gormDepartments struct {
	db *gorm.DB
}

func (s gormDepartments) Create(ctx context.Context, department *models.Department) error {
	if err := s.db.WithContext(ctx).Create(department).Error; err != nil {
		return mapDatabaseError(err)
	}
	return nil
}

func (s gormDepartments) GetByID(ctx context.Context, id uint) (models.Department, error) {
	var department models.Department
	if err := s.db.WithContext(ctx).First(&department, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Department{}, apperror.New(apperror.CodeNotFound, "department not found")
		}
		return models.Department{}, fmt.Errorf("load department: %w", err)
	}
	return department, nil
}

func (s gormDepartments) List(ctx context.Context) ([]models.Department, error) {
	var departments []models.Department
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&departments).Error; err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return departments, nil
}

func (s gormDepartments) Update(ctx context.Context, department *models.Department) error {
	if err := s.db.WithContext(ctx).Save(department).Error; err != nil {
		return mapDatabaseError(err)
	}
	return nil
}

func (s gormDepartments) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Department{}, id)
	if result.Error != nil {
		return mapDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.New(apperror.CodeNotFound, "department not found")
	}
	return nil
}

func (s gormDepartments) CountEmployees(ctx context.Context, id uint) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Employee{}).
		Where("department_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count department employees: %w", err)
	}
	return count, nil
}

type gormRoles struct {
	db *gorm.DB
}

func (s gormRoles) Create(ctx context.Context, role *models.Role) error {
	if err := s.db.WithContext(ctx).Create(role).Error; err != nil {
		return mapDatabaseError(err)
	}
	return nil
}

func (s gormRoles) GetByID(ctx context.Context, id uint) (models.Role, error) {
	var role models.Role
	if err := s.db.WithContext(ctx).First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Role{}, apperror.New(apperror.CodeNotFound, "role not found")
		}
		return models.Role{}, fmt.Errorf("load role: %w", err)
	}
	return role, nil
}

func (s gormRoles) List(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (s gormRoles) ListAssignable(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if err := s.db.WithContext(ctx).
		Where("is_reserved = ?", false).
		Order("name ASC").
		Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("list assignable roles: %w", err)
	}
	return roles, nil
}

func (s gormRoles) Update(ctx context.Context, role *models.Role) error {
	if err := s.db.WithContext(ctx).Save(role).Error; err != nil {
		return mapDatabaseError(err)
	}
	return nil
}

func (s gormRoles) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Role{}, id)
	if result.Error != nil {
		return mapDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.New(apperror.CodeNotFound, "role not found")
	}
	return nil
}

func (s gormRoles) CountEmployees(ctx context.Context, id uint) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Employee{}).
		Where("role_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count role employees: %w", err)
	}
	return count, nil
}

type gormEmployees struct {
	db *gorm.DB
}

func (s gormEmployees) Create(ctx context.Context, employee *models.Employee) error {
	if err := s.db.WithContext(ctx).Create(employee).Error; err != nil {
		return mapDatabaseError(err)
	}
	return nil
}

func (s gormEmployees) GetByID(ctx context.Context, id uint) (models.Employee, error) {
	var employee models.Employee
	if err := s.db.WithContext(ctx).First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Employee{}, apperror.New(apperror.CodeNotFound, "employee not found")
		}
		return models.Employee{}, fmt.Errorf("load employee: %w", err)
	}
	return employee, nil
}

func (s gormEmployees) List(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.WithContext(ctx).Order("username ASC").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func (s gormEmployees) Update(ctx context.Context, employee *models.Employee) error {
	if err := s.db.WithContext(ctx).Save(employee).Error; err != nil {
		return mapDatabaseError(err)
	}
	return nil
}

type gormAnchors struct {
	db *gorm.DB
}

func (s gormAnchors) Create(ctx context.Context, anchor *models.Anchor) error {
	if err := s.db.WithContext(ctx).Create(anchor).Error; err != nil {
		return mapDatabaseError(err)
	}
	return nil
}

func (s gormAnchors) GetByID(ctx context.Context, id uint) (models.Anchor, error) {
	var anchor models.Anchor
	if err := s.db.WithContext(ctx).First(&anchor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Anchor{}, apperror.New(apperror.CodeNotFound, "anchor not found")
		}
		return models.Anchor{}, fmt.Errorf("load anchor: %w", err)
	}
	return anchor, nil
}

func (s gormAnchors) GetByName(ctx context.Context, name string) (models.Anchor, error) {
	var anchor models.Anchor
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&anchor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Anchor{}, apperror.New(apperror.CodeNotFound, "anchor not found")
		}
		return models.Anchor{}, fmt.Errorf("load anchor by name: %w", err)
	}
	return anchor, nil
}

func (s gormAnchors) List(ctx context.Context) ([]models.Anchor, error) {
	var anchors []models.Anchor
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&anchors).Error; err != nil {
		return nil, fmt.Errorf("list anchors: %w", err)
	}
	return anchors, nil
}

func (s gormAnchors) Update(ctx context.Context, anchor *models.Anchor) error {
	if err := s.db.WithContext(ctx).Save(anchor).Error; err != nil {
		return mapDatabaseError(err)
	}
	return nil
}

func (s gormAnchors) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Anchor{}, id)
	if result.Error != nil {
		return mapDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.New(apperror.CodeNotFound, "anchor not found")
	}
	return nil
}

func mapDatabaseError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return apperror.New(apperror.CodeConflict, "resource with the same unique attributes already exists")
		}
		if pgErr.Code == "23503" {
			return apperror.New(apperror.CodeValidation, "invalid foreign key reference")
		}
	}
	return err
}
