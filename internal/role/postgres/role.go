package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medikacare/terapis-management/internal/role"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) role.Repository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) GetAll(search string, limit, offset int) ([]*role.Role, int64, error) {
	query := r.db.Model(&role.Role{})
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ?", pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var roles []*role.Role
	err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&roles).Error
	return roles, total, err
}

func (r *RoleRepository) GetByID(id string) (*role.Role, error) {
	var rec role.Role
	err := r.db.Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *RoleRepository) GetByName(name string) (*role.Role, error) {
	var rec role.Role
	err := r.db.Where("name = ?", name).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *RoleRepository) Create(rec *role.Role) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	return r.db.Create(rec).Error
}

func (r *RoleRepository) Update(rec *role.Role) error {
	rec.UpdatedAt = time.Now()
	return r.db.Save(rec).Error
}

func (r *RoleRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&role.Role{}).Error
}

func (r *RoleRepository) CountUsers(roleID string) (int64, error) {
	var count int64
	err := r.db.Table("users").Where("role_id = ?", roleID).Count(&count).Error
	return count, err
}
