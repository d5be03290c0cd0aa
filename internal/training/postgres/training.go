package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/medikacare/terapis-management/internal/training"
)

type ModuleRepository struct {
	db *gorm.DB
}

func NewModuleRepository(db *gorm.DB) training.Repository {
	return &ModuleRepository{db: db}
}

func (r *ModuleRepository) GetAll(search, kategori string, limit, offset int) ([]*training.Module, int64, error) {
	query := r.db.Model(&training.Module{})
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(nama) LIKE ? OR LOWER(trainer) LIKE ?", pattern, pattern)
	}
	if kategori != "" {
		query = query.Where("kategori = ?", kategori)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []*training.Module
	err := query.Preload("Weeks", func(db *gorm.DB) *gorm.DB {
		return db.Order("week ASC")
	}).
		Order("kategori ASC, nama ASC").Limit(limit).Offset(offset).
		Find(&items).Error
	return items, total, err
}

func (r *ModuleRepository) GetByID(id string) (*training.Module, error) {
	var rec training.Module
	err := r.db.Preload("Weeks", func(db *gorm.DB) *gorm.DB {
		return db.Order("week ASC")
	}).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *ModuleRepository) Create(m *training.Module) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return err
		}
		for i := range m.Weeks {
			wk := &m.Weeks[i]
			wk.ID = uuid.NewString()
			wk.ModuleID = m.ID
			if err := tx.Create(wk).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update writes header fields and, when weeks is non-nil, replaces the whole
// schedule. A nil weeks slice leaves the existing schedule untouched.
func (r *ModuleRepository) Update(id string, fields map[string]interface{}, weeks []int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		fields["updated_at"] = time.Now()
		if err := tx.Model(&training.Module{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return err
		}

		if weeks == nil {
			return nil
		}

		if err := tx.Where("module_id = ?", id).Delete(&training.ScheduleWeek{}).Error; err != nil {
			return err
		}
		for _, wk := range weeks {
			row := &training.ScheduleWeek{
				ID:       uuid.NewString(),
				ModuleID: id,
				Week:     wk,
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ModuleRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("module_id = ?", id).Delete(&training.ScheduleWeek{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&training.Module{}).Error
	})
}
