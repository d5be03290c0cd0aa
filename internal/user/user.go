package user

import (
	"time"

	"github.com/medikacare/terapis-management/internal/role"
)

// User is an account in the credential store. Accounts are normally
// deactivated rather than hard-deleted, though a delete endpoint exists.
type User struct {
	ID           string     `json:"id" gorm:"primaryKey;column:id"`
	Username     string     `json:"username" gorm:"column:username;uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"column:password_hash;not null"`
	Email        *string    `json:"email,omitempty" gorm:"column:email"`
	FullName     *string    `json:"fullName,omitempty" gorm:"column:full_name"`
	RoleID       string     `json:"roleId" gorm:"column:role_id;not null"`
	IsActive     bool       `json:"isActive" gorm:"column:is_active;default:true"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" gorm:"column:last_login_at"`
	CreatedBy    *string    `json:"createdBy,omitempty" gorm:"column:created_by"`
	UpdatedBy    *string    `json:"updatedBy,omitempty" gorm:"column:updated_by"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" gorm:"column:updated_at"`

	Role *role.Role `json:"role,omitempty" gorm:"foreignKey:RoleID"`
}

func (User) TableName() string {
	return "users"
}
