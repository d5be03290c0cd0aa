package auth

import (
	errors "github.com/medikacare/terapis-management/internal"
	"github.com/medikacare/terapis-management/internal/core/common/validation"
)

type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (dto LoginDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("username", dto.Username).Required()
	v.Field("password", dto.Password).Required()
	return v.Validate()
}

type RegisterDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"fullName,omitempty"`
	RoleID   string `json:"roleId"`
}

func (dto RegisterDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("username", dto.Username).Required().MinLength(3).MaxLength(50)
	v.Field("password", dto.Password).Required().MinLength(6)
	v.Field("roleId", dto.RoleID).Required()
	v.Field("email", dto.Email).MaxLength(255)
	v.Field("fullName", dto.FullName).MaxLength(255)
	return v.Validate()
}

type ChangePasswordDTO struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (dto ChangePasswordDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("oldPassword", dto.OldPassword).Required()
	v.Field("newPassword", dto.NewPassword).Required().MinLength(6)
	return v.Validate()
}

// LoginResponse carries the minted token plus the resolved user.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
