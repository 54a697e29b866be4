package service

import (
	"context"

	"github.com/nayamama/hr-project/internal/apperror"
	"github.com/nayamama/hr-project/internal/models"
	"github.com/nayamama/hr-project/internal/store"
)

type RoleService struct {
	roles store.Roles
}

func NewRoleService(roles store.Roles) *RoleService {
	return &RoleService{roles: roles}
}

func (s *RoleService) List(ctx context.Context, actor Actor) ([]RoleDTO, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	return rolesToDTOs(roles), nil
}

// ListAssignable is the role set offered by the assignment workflow. The
// reserved administrator role never appears in it.
func (s *RoleService) ListAssignable(ctx context.Context, actor Actor) ([]RoleDTO, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	roles, err := s.roles.ListAssignable(ctx)
	if err != nil {
		return nil, err
	}
	return rolesToDTOs(roles), nil
}

func (s *RoleService) Create(ctx context.Context, input CreateRoleInput, actor Actor) (RoleDTO, error) {
	if err := requireAdmin(actor); err != nil {
		return RoleDTO{}, err
	}

	name, err := normalizeRequiredString(input.Name, "name")
	if err != nil {
		return RoleDTO{}, err
	}
	description, err := normalizeRequiredString(input.Description, "description")
	if err != nil {
		return RoleDTO{}, err
	}

	role := models.Role{
		Name:        name,
		Description: description,
	}
	if err := s.roles.Create(ctx, &role); err != nil {
		return RoleDTO{}, err
	}
	return roleToDTO(role), nil
}

func (s *RoleService) Update(ctx context.Context, roleID uint, input UpdateRoleInput, actor Actor) (RoleDTO, error) {
	if err := requireAdmin(actor); err != nil {
		return RoleDTO{}, err
	}

	name, err := normalizeRequiredString(input.Name, "name")
	if err != nil {
		return RoleDTO{}, err
	}
	description, err := normalizeRequiredString(input.Description, "description")
	if err != nil {
		return RoleDTO{}, err
	}

	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return RoleDTO{}, err
	}

	role.Name = name
	role.Description = description
	if err := s.roles.Update(ctx, &role); err != nil {
		return RoleDTO{}, err
	}
	return roleToDTO(role), nil
}

func (s *RoleService) Delete(ctx context.Context, roleID uint, actor Actor) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return err
	}
	if role.IsReserved {
		return apperror.New(apperror.CodeConflict, "reserved role cannot be deleted")
	}

	count, err := s.roles.CountEmployees(ctx, roleID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.New(apperror.CodeConflict, "role still has assigned employees")
	}

	return s.roles.Delete(ctx, roleID)
}

func roleToDTO(role models.Role) RoleDTO {
	return RoleDTO{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		IsReserved:  role.IsReserved,
		CreatedAt:   role.CreatedAt,
	}
}

func rolesToDTOs(roles []models.Role) []RoleDTO {
	dtos := make([]RoleDTO, 0, len(roles))
	for _, role := range roles {
		dtos = append(dtos, roleToDTO(role))
	}
	return dtos
}
