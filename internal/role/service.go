package role

import (
	"log/slog"

	apperrors "github.com/medikacare/terapis-management/internal"
)

// Repository defines the data access methods for roles.
type Repository interface {
	GetAll(search string, limit, offset int) ([]*Role, int64, error)
	GetByID(id string) (*Role, error)
	GetByName(name string) (*Role, error)
	Create(role *Role) error
	Update(role *Role) error
	Delete(id string) error
	CountUsers(roleID string) (int64, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(search string, page, limit int) ([]*Role, int64, error) {
	offset := (page - 1) * limit
	roles, total, err := s.repo.GetAll(search, limit, offset)
	if err != nil {
		s.logger.Error("failed to list roles", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list roles", err)
	}
	return roles, total, nil
}

func (s *Service) GetByID(id string) (*Role, error) {
	r, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get role", err)
	}
	if r == nil {
		return nil, apperrors.ErrRoleNotFound
	}
	return r, nil
}

func (s *Service) Create(dto CreateRoleDTO) (*Role, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(dto.Name)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to check role name", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateRoleName
	}

	permissions := dto.Permissions
	if permissions == nil {
		permissions = PermissionMap{}
	}

	r := &Role{
		Name:        dto.Name,
		Description: dto.Description,
		Permissions: permissions,
	}

	if err := s.repo.Create(r); err != nil {
		s.logger.Error("failed to create role", "error", err, "name", dto.Name)
		return nil, apperrors.NewInternalError("failed to create role", err)
	}

	s.logger.Info("role created", "role_id", r.ID, "name", r.Name)
	return r, nil
}

// Update applies a partial update. System roles are immutable regardless of
// caller privilege.
func (s *Service) Update(id string, dto UpdateRoleDTO) (*Role, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	r, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get role", err)
	}
	if r == nil {
		return nil, apperrors.ErrRoleNotFound
	}
	if r.IsSystem {
		return nil, apperrors.ErrSystemRole
	}

	if dto.Name != nil && *dto.Name != r.Name {
		existing, err := s.repo.GetByName(*dto.Name)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to check role name", err)
		}
		if existing != nil {
			return nil, apperrors.ErrDuplicateRoleName
		}
		r.Name = *dto.Name
	}
	if dto.Description != nil {
		r.Description = *dto.Description
	}
	if dto.Permissions != nil {
		r.Permissions = *dto.Permissions
	}

	if err := s.repo.Update(r); err != nil {
		s.logger.Error("failed to update role", "error", err, "role_id", id)
		return nil, apperrors.NewInternalError("failed to update role", err)
	}

	s.logger.Info("role updated", "role_id", r.ID, "name", r.Name)
	return r, nil
}

func (s *Service) Delete(id string) (*Role, error) {
	r, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get role", err)
	}
	if r == nil {
		return nil, apperrors.ErrRoleNotFound
	}
	if r.IsSystem {
		return nil, apperrors.ErrSystemRole
	}

	users, err := s.repo.CountUsers(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to count role users", err)
	}
	if users > 0 {
		return nil, apperrors.ErrRoleInUse
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete role", "error", err, "role_id", id)
		return nil, apperrors.NewInternalError("failed to delete role", err)
	}

	s.logger.Info("role deleted", "role_id", id, "name", r.Name)
	return r, nil
}
