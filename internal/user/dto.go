package user

import (
	errors "github.com/medikacare/terapis-management/internal"
	"github.com/medikacare/terapis-management/internal/core/common/validation"
)

// UpdateUserDTO carries partial updates; nil fields are left untouched.
type UpdateUserDTO struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"fullName,omitempty"`
	RoleID   *string `json:"roleId,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

func (dto UpdateUserDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	if dto.Email != nil {
		v.Field("email", *dto.Email).MaxLength(255)
	}
	if dto.FullName != nil {
		v.Field("fullName", *dto.FullName).MaxLength(255)
	}
	if dto.RoleID != nil {
		v.Field("roleId", *dto.RoleID).Required()
	}
	return v.Validate()
}
