package service

import (
	"context"

	"github.com/nayamama/hr-project/internal/apperror"
	"github.com/nayamama/hr-project/internal/models"
	"github.com/nayamama/hr-project/internal/store"
)

type EmployeeService struct {
	employees   store.Employees
	departments store.Departments
	roles       store.Roles
}

func NewEmployeeService(employees store.Employees, departments store.Departments, roles store.Roles) *EmployeeService {
	return &EmployeeService{
		employees:   employees,
		departments: departments,
		roles:       roles,
	}
}

func (s *EmployeeService) List(ctx context.Context, actor Actor) ([]EmployeeDTO, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]EmployeeDTO, 0, len(employees))
	for _, employee := range employees {
		dtos = append(dtos, employeeToDTO(employee))
	}
	return dtos, nil
}

// Assign binds an employee to exactly one department and one role.
// Administrator accounts may never be assigned either.
func (s *EmployeeService) Assign(ctx context.Context, employeeID, departmentID, roleID uint, actor Actor) (EmployeeDTO, error) {
	if err := requireAdmin(actor); err != nil {
		return EmployeeDTO{}, err
	}

	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return EmployeeDTO{}, err
	}
	if employee.IsAdmin {
		return EmployeeDTO{}, apperror.New(apperror.CodePermission, "administrator account cannot be assigned a department or role")
	}

	if _, err := s.departments.GetByID(ctx, departmentID); err != nil {
		return EmployeeDTO{}, err
	}
	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return EmployeeDTO{}, err
	}
	if role.IsReserved {
		return EmployeeDTO{}, apperror.New(apperror.CodeValidation, "reserved role cannot be assigned")
	}

	employee.DepartmentID = &departmentID
	employee.RoleID = &roleID
	if err := s.employees.Update(ctx, &employee); err != nil {
		return EmployeeDTO{}, err
	}
	return employeeToDTO(employee), nil
}

func employeeToDTO(employee models.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:           employee.ID,
		Email:        employee.Email,
		Username:     employee.Username,
		IsAdmin:      employee.IsAdmin,
		DepartmentID: employee.DepartmentID,
		RoleID:       employee.RoleID,
		CreatedAt:    employee.CreatedAt,
	}
}
