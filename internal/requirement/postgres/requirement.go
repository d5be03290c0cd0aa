package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medikacare/terapis-management/internal/requirement"
	"github.com/medikacare/terapis-management/internal/terapis"
)

type RequirementRepository struct {
	db *gorm.DB
}

func NewRequirementRepository(db *gorm.DB) requirement.Repository {
	return &RequirementRepository{db: db}
}

func (r *RequirementRepository) GetAll(search string, limit, offset int) ([]*requirement.Requirement, int64, error) {
	query := r.db.Model(&requirement.Requirement{})
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(nama) LIKE ? OR LOWER(lulusan) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []*requirement.Requirement
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *RequirementRepository) GetByID(id string) (*requirement.Requirement, error) {
	var rec requirement.Requirement
	err := r.db.Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *RequirementRepository) Create(rec *requirement.Requirement) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	return r.db.Create(rec).Error
}

func (r *RequirementRepository) Update(id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	return r.db.Model(&requirement.Requirement{}).Where("id = ?", id).Updates(fields).Error
}

func (r *RequirementRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&requirement.Requirement{}).Error
}

// Accept inserts the therapist and removes the requisition in one
// transaction; a failure on either side rolls back both.
func (r *RequirementRepository) Accept(req *requirement.Requirement, t *terapis.Terapis) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", req.ID).Delete(&requirement.Requirement{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
