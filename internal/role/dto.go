package role

import (
	errors "github.com/medikacare/terapis-management/internal"
	"github.com/medikacare/terapis-management/internal/core/common/validation"
)

type CreateRoleDTO struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Permissions PermissionMap `json:"permissions"`
}

func (dto CreateRoleDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MinLength(2).MaxLength(100)
	v.Field("description", dto.Description).MaxLength(255)
	if err := v.Validate(); err != nil {
		return err
	}
	return validatePermissions(dto.Permissions)
}

// UpdateRoleDTO carries partial updates; nil fields are left untouched.
type UpdateRoleDTO struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Permissions *PermissionMap `json:"permissions,omitempty"`
}

func (dto UpdateRoleDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	if dto.Name != nil {
		v.Field("name", *dto.Name).Required().MinLength(2).MaxLength(100)
	}
	if dto.Description != nil {
		v.Field("description", *dto.Description).MaxLength(255)
	}
	if err := v.Validate(); err != nil {
		return err
	}
	if dto.Permissions != nil {
		return validatePermissions(*dto.Permissions)
	}
	return nil
}

// validatePermissions checks the map at the boundary instead of trusting it
// as opaque JSON throughout.
func validatePermissions(m PermissionMap) *errors.AppError {
	for key := range m {
		if key == "" {
			return errors.NewValidationFieldError("permissions", "permission names must be non-empty", errors.ErrCodeValidationFailed)
		}
	}
	return nil
}
