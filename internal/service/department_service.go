package service

import (
	"context"

	"github.com/nayamama/hr-project/internal/apperror"
	"github.com/nayamama/hr-project/internal/models"
	"github.com/nayamama/hr-project/internal/store"
)

type DepartmentService struct {
	departments store.Departments
}

func NewDepartmentService(departments store.Departments) *DepartmentService {
	return &DepartmentService{departments: departments}
}

func (s *DepartmentService) List(ctx context.Context, actor Actor) ([]DepartmentDTO, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]DepartmentDTO, 0, len(departments))
	for _, department := range departments {
		dtos = append(dtos, departmentToDTO(department))
	}
	return dtos, nil
}

func (s *DepartmentService) Create(ctx context.Context, input CreateDepartmentInput, actor Actor) (DepartmentDTO, error) {
	if err := requireAdmin(actor); err != nil {
		return DepartmentDTO{}, err
	}

	name, err := normalizeRequiredString(input.Name, "name")
	if err != nil {
		return DepartmentDTO{}, err
	}
	description, err := normalizeRequiredString(input.Description, "description")
	if err != nil {
		return DepartmentDTO{}, err
	}

	department := models.Department{
		Name:        name,
		Description: description,
	}
	if err := s.departments.Create(ctx, &department); err != nil {
		return DepartmentDTO{}, err
	}
	return departmentToDTO(department), nil
}

func (s *DepartmentService) Update(ctx context.Context, departmentID uint, input UpdateDepartmentInput, actor Actor) (DepartmentDTO, error) {
	if err := requireAdmin(actor); err != nil {
		return DepartmentDTO{}, err
	}

	name, err := normalizeRequiredString(input.Name, "name")
	if err != nil {
		return DepartmentDTO{}, err
	}
	description, err := normalizeRequiredString(input.Description, "description")
	if err != nil {
		return DepartmentDTO{}, err
	}

	department, err := s.departments.GetByID(ctx, departmentID)
	if err != nil {
		return DepartmentDTO{}, err
	}

	department.Name = name
	department.Description = description
	if err := s.departments.Update(ctx, &department); err != nil {
		return DepartmentDTO{}, err
	}
	return departmentToDTO(department), nil
}

func (s *DepartmentService) Delete(ctx context.Context, departmentID uint, actor Actor) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	if _, err := s.departments.GetByID(ctx, departmentID); err != nil {
		return err
	}

	count, err := s.departments.CountEmployees(ctx, departmentID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.New(apperror.CodeConflict, "department still has assigned employees")
	}

	return s.departments.Delete(ctx, departmentID)
}

func departmentToDTO(department models.Department) DepartmentDTO {
	return DepartmentDTO{
		ID:          department.ID,
		Name:        department.Name,
		Description: department.Description,
		CreatedAt:   department.CreatedAt,
	}
}
