package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/medikacare/terapis-management/internal/tna"
)

type TNARepository struct {
	db *gorm.DB
}

func NewTNARepository(db *gorm.DB) tna.Repository {
	return &TNARepository{db: db}
}

func (r *TNARepository) GetAll(search string, limit, offset int) ([]*tna.TNA, int64, error) {
	query := r.db.Model(&tna.TNA{}).
		Joins("JOIN terapis ON terapis.id = tna.terapis_id")
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(terapis.nama) LIKE ? OR LOWER(tna.no_dokumen) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []*tna.TNA
	err := query.Preload("Terapis").
		Preload("TrainingRows", func(db *gorm.DB) *gorm.DB {
			return db.Order("urutan ASC")
		}).
		Preload("Approval").
		Order("tna.created_at DESC").Limit(limit).Offset(offset).
		Find(&items).Error
	return items, total, err
}

func (r *TNARepository) GetByID(id string) (*tna.TNA, error) {
	return r.getOne("id = ?", id)
}

func (r *TNARepository) GetByTerapisID(terapisID string) (*tna.TNA, error) {
	return r.getOne("terapis_id = ?", terapisID)
}

func (r *TNARepository) getOne(cond string, arg interface{}) (*tna.TNA, error) {
	var rec tna.TNA
	err := r.db.Preload("Terapis").
		Preload("TrainingRows", func(db *gorm.DB) *gorm.DB {
			return db.Order("urutan ASC")
		}).
		Preload("Approval").
		Where(cond, arg).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Save upserts the header keyed on terapis_id, then replaces every child row
// with the submitted set. Any failure rolls the whole document back.
func (r *TNARepository) Save(doc *tna.TNA) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing tna.TNA
		err := tx.Where("terapis_id = ?", doc.TerapisID).First(&existing).Error
		switch {
		case err == nil:
			doc.ID = existing.ID
			doc.CreatedAt = existing.CreatedAt
			doc.UpdatedAt = time.Now()
			if err := tx.Model(&tna.TNA{}).Where("id = ?", doc.ID).Updates(map[string]interface{}{
				"no_dokumen":      doc.NoDokumen,
				"revisi":          doc.Revisi,
				"tanggal_berlaku": doc.TanggalBerlaku,
				"unit":            doc.Unit,
				"departemen":      doc.Departemen,
				"updated_at":      doc.UpdatedAt,
			}).Error; err != nil {
				return err
			}
			if err := tx.Where("tna_id = ?", doc.ID).Delete(&tna.TrainingRow{}).Error; err != nil {
				return err
			}
			if err := tx.Where("tna_id = ?", doc.ID).Delete(&tna.Approval{}).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			doc.ID = uuid.NewString()
			doc.CreatedAt = time.Now()
			doc.UpdatedAt = doc.CreatedAt
			if err := tx.Omit(clause.Associations).Create(doc).Error; err != nil {
				return err
			}
		default:
			return err
		}

		for i := range doc.TrainingRows {
			row := &doc.TrainingRows[i]
			row.ID = uuid.NewString()
			row.TNAID = doc.ID
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}

		if doc.Approval != nil {
			doc.Approval.ID = uuid.NewString()
			doc.Approval.TNAID = doc.ID
			if err := tx.Create(doc.Approval).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *TNARepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tna_id = ?", id).Delete(&tna.TrainingRow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tna_id = ?", id).Delete(&tna.Approval{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&tna.TNA{}).Error
	})
}
