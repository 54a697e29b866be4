package store

import (
	"context"
	"sort"
	"sync"

	"github.com/nayamama/hr-project/internal/apperror"
	"github.com/nayamama/hr-project/internal/models"
)

// Memory is an in-process store backend. It enforces the same uniqueness
// arbitration as the Postgres backend, so the services behave identically
// against either. Service tests run on it.
type Memory struct {
	mu sync.Mutex

	departments map[uint]models.Department
	roles       map[uint]models.Role
	employees   map[uint]models.Employee
	anchors     map[uint]models.Anchor

	nextID uint
}

func NewMemory() *Memory {
	return &Memory{
		departments: map[uint]models.Department{},
		roles:       map[uint]models.Role{},
		employees:   map[uint]models.Employee{},
		anchors:     map[uint]models.Anchor{},
	}
}

// NewMemoryStores wraps a single Memory backend in the Stores bundle.
func NewMemoryStores() Stores {
	m := NewMemory()
	return Stores{
		Departments: memDepartments{m: m},
		Roles:       memRoles{m: m},
		Employees:   memEmployees{m: m},
		Anchors:     memAnchors{m: m},
	}
}

func (m *Memory) allocateID() uint {
	m.nextID++
	return m.nextID
}

type memDepartments struct {
	m *Memory
}

func (s memDepartments) Create(_ context.Context, department *models.Department) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for _, existing := range s.m.departments {
		if existing.Name == department.Name {
			return apperror.New(apperror.CodeConflict, "resource with the same unique attributes already exists")
		}
	}
	if department.ID == 0 {
		department.ID = s.m.allocateID()
	}
	s.m.departments[department.ID] = *department
	return nil
}

func (s memDepartments) GetByID(_ context.Context, id uint) (models.Department, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	department, ok := s.m.departments[id]
	if !ok {
		return models.Department{}, apperror.New(apperror.CodeNotFound, "department not found")
	}
	return department, nil
}

func (s memDepartments) List(_ context.Context) ([]models.Department, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	departments := make([]models.Department, 0, len(s.m.departments))
	for _, department := range s.m.departments {
		departments = append(departments, department)
	}
	sort.Slice(departments, func(i, j int) bool { return departments[i].Name < departments[j].Name })
	return departments, nil
}

func (s memDepartments) Update(_ context.Context, department *models.Department) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.departments[department.ID]; !ok {
		return apperror.New(apperror.CodeNotFound, "department not found")
	}
	for id, existing := range s.m.departments {
		if id != department.ID && existing.Name == department.Name {
			return apperror.New(apperror.CodeConflict, "resource with the same unique attributes already exists")
		}
	}
	s.m.departments[department.ID] = *department
	return nil
}

func (s memDepartments) Delete(_ context.Context, id uint) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.departments[id]; !ok {
		return apperror.New(apperror.CodeNotFound, "department not found")
	}
	delete(s.m.departments, id)
	return nil
}

func (s memDepartments) CountEmployees(_ context.Context, id uint) (int64, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	var count int64
	for _, employee := range s.m.employees {
		if employee.DepartmentID != nil && *employee.DepartmentID == id {
			count++
		}
	}
	return count, nil
}

type memRoles struct {
	m *Memory
}

func (s memRoles) Create(_ context.Context, role *models.Role) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for _, existing := range s.m.roles {
		if existing.Name == role.Name {
			return apperror.New(apperror.CodeConflict, "resource with the same unique attributes already exists")
		}
	}
	if role.ID == 0 {
		role.ID = s.m.allocateID()
	}
	s.m.roles[role.ID] = *role
	return nil
}

func (s memRoles) GetByID(_ context.Context, id uint) (models.Role, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	role, ok := s.m.roles[id]
	if !ok {
		return models.Role{}, apperror.New(apperror.CodeNotFound, "role not found")
	}
	return role, nil
}

func (s memRoles) List(_ context.Context) ([]models.Role, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	roles := make([]models.Role, 0, len(s.m.roles))
	for _, role := range s.m.roles {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })
	return roles, nil
}

func (s memRoles) ListAssignable(_ context.Context) ([]models.Role, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	roles := make([]models.Role, 0, len(s.m.roles))
	for _, role := range s.m.roles {
		if role.IsReserved {
			continue
		}
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })
	return roles, nil
}

func (s memRoles) Update(_ context.Context, role *models.Role) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.roles[role.ID]; !ok {
		return apperror.New(apperror.CodeNotFound, "role not found")
	}
	for id, existing := range s.m.roles {
		if id != role.ID && existing.Name == role.Name {
			return apperror.New(apperror.CodeConflict, "resource with the same unique attributes already exists")
		}
	}
	s.m.roles[role.ID] = *role
	return nil
}

func (s memRoles) Delete(_ context.Context, id uint) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.roles[id]; !ok {
		return apperror.New(apperror.CodeNotFound, "role not found")
	}
	delete(s.m.roles, id)
	return nil
}

func (s memRoles) CountEmployees(_ context.Context, id uint) (int64, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	var count int64
	for _, employee := range s.m.employees {
		if employee.RoleID != nil && *employee.RoleID == id {
			count++
		}
	}
	return count, nil
}

type memEmployees struct {
	m *Memory
}

func (s memEmployees) Create(_ context.Context, employee *models.Employee) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for _, existing := range s.m.employees {
		if existing.Email == employee.Email {
			return apperror.New(apperror.CodeConflict, "resource with the same unique attributes already exists")
		}
	}
	if employee.ID == 0 {
		employee.ID = s.m.allocateID()
	}
	s.m.employees[employee.ID] = *employee
	return nil
}

func (s memEmployees) GetByID(_ context.Context, id uint) (models.Employee, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	employee, ok := s.m.employees[id]
	if !ok {
		return models.Employee{}, apperror.New(apperror.CodeNotFound, "employee not found")
	}
	return employee, nil
}

func (s memEmployees) List(_ context.Context) ([]models.Employee, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	employees := make([]models.Employee, 0, len(s.m.employees))
	for _, employee := range s.m.employees {
		employees = append(employees, employee)
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].Username < employees[j].Username })
	return employees, nil
}

func (s memEmployees) Update(_ context.Context, employee *models.Employee) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.employees[employee.ID]; !ok {
		return apperror.New(apperror.CodeNotFound, "employee not found")
	}
	s.m.employees[employee.ID] = *employee
	return nil
}

type memAnchors struct {
	m *Memory
}

func (s memAnchors) Create(_ context.Context, anchor *models.Anchor) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for _, existing := range s.m.anchors {
		if existing.Name == anchor.Name {
			return apperror.New(apperror.CodeConflict, "resource with the same unique attributes already exists")
		}
	}
	if anchor.ID == 0 {
		anchor.ID = s.m.allocateID()
	}
	s.m.anchors[anchor.ID] = *anchor
	return nil
}

func (s memAnchors) GetByID(_ context.Context, id uint) (models.Anchor, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	anchor, ok := s.m.anchors[id]
	if !ok {
		return models.Anchor{}, apperror.New(apperror.CodeNotFound, "anchor not found")
	}
	return anchor, nil
}

func (s memAnchors) GetByName(_ context.Context, name string) (models.Anchor, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for _, anchor := range s.m.anchors {
		if anchor.Name == name {
			return anchor, nil
		}
	}
	return models.Anchor{}, apperror.New(apperror.CodeNotFound, "anchor not found")
}

func (s memAnchors) List(_ context.Context) ([]models.Anchor, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	anchors := make([]models.Anchor, 0, len(s.m.anchors))
	for _, anchor := range s.m.anchors {
		anchors = append(anchors, anchor)
	}
	sort.Slice(anchors, func(i, j int) bool { return anchors[i].Name < anchors[j].Name })
	return anchors, nil
}

func (s memAnchors) Update(_ context.Context, anchor *models.Anchor) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.anchors[anchor.ID]; !ok {
		return apperror.New(apperror.CodeNotFound, "anchor not found")
	}
	for id, existing := range s.m.anchors {
		if id != anchor.ID && existing.Name == anchor.Name {
			return apperror.New(apperror.CodeConflict, "resource with the same unique attributes already exists")
		}
	}
	s.m.anchors[anchor.ID] = *anchor
	return nil
}

func (s memAnchors) Delete(_ context.Context, id uint) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.anchors[id]; !ok {
		return apperror.New(apperror.CodeNotFound, "anchor not found")
	}
	delete(s.m.anchors, id)
	return nil
}
