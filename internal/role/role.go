package role

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// PermissionAll is the reserved permission key granting every permission.
const PermissionAll = "all"

// AdminRoleName is the role name that bypasses permission checks entirely.
// The comparison is case-sensitive and exact.
const AdminRoleName = "admin"

// PermissionMap is a typed mapping from permission name to granted flag,
// stored as a JSON column.
type PermissionMap map[string]bool

// Has reports whether the map grants the named permission, honoring the
// reserved "all" key.
func (m PermissionMap) Has(name string) bool {
	if m == nil {
		return false
	}
	if m[PermissionAll] {
		return true
	}
	return m[name]
}

func (m PermissionMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *PermissionMap) Scan(value interface{}) error {
	if value == nil {
		*m = PermissionMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for PermissionMap")
	}
	if len(data) == 0 {
		*m = PermissionMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// Role is a named permission bundle assignable to users.
type Role struct {
	ID          string        `json:"id" gorm:"primaryKey;column:id"`
	Name        string        `json:"name" gorm:"column:name;uniqueIndex;not null"`
	Description string        `json:"description" gorm:"column:description"`
	Permissions PermissionMap `json:"permissions" gorm:"column:permissions;type:jsonb"`
	// IsSystem marks built-in roles that can never be modified or deleted.
	IsSystem  bool      `json:"isSystem" gorm:"column:is_system;default:false"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Role) TableName() string {
	return "roles"
}
