package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medikacare/terapis-management/internal/terapis"
)

type TerapisRepository struct {
	db *gorm.DB
}

func NewTerapisRepository(db *gorm.DB) terapis.Repository {
	return &TerapisRepository{db: db}
}

func (r *TerapisRepository) GetAll(search, cabang string, limit, offset int) ([]*terapis.Terapis, int64, error) {
	query := r.db.Model(&terapis.Terapis{})
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(nama) LIKE ? OR LOWER(cabang) LIKE ? OR LOWER(lulusan) LIKE ?", pattern, pattern, pattern)
	}
	if cabang != "" {
		query = query.Where("cabang = ?", cabang)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []*terapis.Terapis
	err := query.Order("nama ASC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *TerapisRepository) GetByID(id string) (*terapis.Terapis, error) {
	var rec terapis.Terapis
	err := r.db.Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *TerapisRepository) Create(rec *terapis.Terapis) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	return r.db.Create(rec).Error
}

func (r *TerapisRepository) Update(id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	return r.db.Model(&terapis.Terapis{}).Where("id = ?", id).Updates(fields).Error
}

func (r *TerapisRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&terapis.Terapis{}).Error
}
