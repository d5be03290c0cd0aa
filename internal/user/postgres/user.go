package postgres

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/medikacare/terapis-management/internal/role"
	"github.com/medikacare/terapis-management/internal/user"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetAll(search string, limit, offset int) ([]*user.User, int64, error) {
	query := r.db.Model(&user.User{})
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(username) LIKE ? OR LOWER(COALESCE(email, '')) LIKE ? OR LOWER(COALESCE(full_name, '')) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []*user.User
	err := query.Preload("Role").Order("username ASC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}

func (r *UserRepository) GetByID(id string) (*user.User, error) {
	var u user.User
	err := r.db.Preload("Role").Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) RoleExists(roleID string) (bool, error) {
	var count int64
	err := r.db.Model(&role.Role{}).Where("id = ?", roleID).Count(&count).Error
	return count > 0, err
}

// Update writes only the given fields so omitted request fields stay
// untouched.
func (r *UserRepository) Update(u *user.User, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	return r.db.Model(&user.User{}).Where("id = ?", u.ID).Updates(fields).Error
}

func (r *UserRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&user.User{}).Error
}
