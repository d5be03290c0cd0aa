package user

import (
	"log/slog"

	apperrors "github.com/medikacare/terapis-management/internal"
)

// Repository defines the data access methods for user accounts.
type Repository interface {
	GetAll(search string, limit, offset int) ([]*User, int64, error)
	GetByID(id string) (*User, error)
	RoleExists(roleID string) (bool, error)
	Update(u *User, fields map[string]interface{}) error
	Delete(id string) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(search string, page, limit int) ([]*User, int64, error) {
	offset := (page - 1) * limit
	users, total, err := s.repo.GetAll(search, limit, offset)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list users", err)
	}
	return users, total, nil
}

func (s *Service) GetByID(id string) (*User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user", err)
	}
	if u == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

// Update applies a partial update: only the fields present in the request
// are written, omitted fields stay untouched.
func (s *Service) Update(id string, dto UpdateUserDTO, actorID string) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user", err)
	}
	if u == nil {
		return nil, apperrors.ErrUserNotFound
	}

	fields := map[string]interface{}{}
	if dto.Email != nil {
		fields["email"] = *dto.Email
	}
	if dto.FullName != nil {
		fields["full_name"] = *dto.FullName
	}
	if dto.RoleID != nil {
		exists, err := s.repo.RoleExists(*dto.RoleID)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to check role", err)
		}
		if !exists {
			return nil, apperrors.ErrRoleNotFound
		}
		fields["role_id"] = *dto.RoleID
	}
	if dto.IsActive != nil {
		fields["is_active"] = *dto.IsActive
	}
	fields["updated_by"] = actorID

	if err := s.repo.Update(u, fields); err != nil {
		s.logger.Error("failed to update user", "error", err, "user_id", id)
		return nil, apperrors.NewInternalError("failed to update user", err)
	}

	updated, err := s.repo.GetByID(id)
	if err != nil || updated == nil {
		return nil, apperrors.NewInternalError("failed to reload user", err)
	}

	s.logger.Info("user updated", "user_id", id, "updated_by", actorID)
	return updated, nil
}

// Delete hard-deletes an account. A user may not delete its own account.
func (s *Service) Delete(id, actorID string) (*User, error) {
	if id == actorID {
		return nil, apperrors.ErrSelfDelete
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user", err)
	}
	if u == nil {
		return nil, apperrors.ErrUserNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete user", "error", err, "user_id", id)
		return nil, apperrors.NewInternalError("failed to delete user", err)
	}

	s.logger.Info("user deleted", "user_id", id, "deleted_by", actorID)
	return u, nil
}
