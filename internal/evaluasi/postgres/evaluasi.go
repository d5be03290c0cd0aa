package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/medikacare/terapis-management/internal/evaluasi"
)

type EvaluasiRepository struct {
	db *gorm.DB
}

func NewEvaluasiRepository(db *gorm.DB) evaluasi.Repository {
	return &EvaluasiRepository{db: db}
}

func (r *EvaluasiRepository) GetAll(search string, limit, offset int) ([]*evaluasi.Evaluasi, int64, error) {
	query := r.db.Model(&evaluasi.Evaluasi{}).
		Joins("JOIN terapis ON terapis.id = evaluasi.terapis_id")
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(terapis.nama) LIKE ? OR LOWER(evaluasi.no_dokumen) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []*evaluasi.Evaluasi
	err := r.withChildren(query).
		Order("evaluasi.created_at DESC").Limit(limit).Offset(offset).
		Find(&items).Error
	return items, total, err
}

func (r *EvaluasiRepository) GetByID(id string) (*evaluasi.Evaluasi, error) {
	return r.getOne("id = ?", id)
}

func (r *EvaluasiRepository) GetByTerapisID(terapisID string) (*evaluasi.Evaluasi, error) {
	return r.getOne("terapis_id = ?", terapisID)
}

func (r *EvaluasiRepository) getOne(cond string, arg interface{}) (*evaluasi.Evaluasi, error) {
	var rec evaluasi.Evaluasi
	err := r.withChildren(r.db).Where(cond, arg).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *EvaluasiRepository) withChildren(db *gorm.DB) *gorm.DB {
	ordered := func(db *gorm.DB) *gorm.DB {
		return db.Order("urutan ASC")
	}
	return db.Preload("Terapis").
		Preload("Objectives", ordered).
		Preload("Skills", ordered).
		Preload("Feedback", ordered)
}

// Save upserts the header keyed on terapis_id, then replaces all three child
// collections with the submitted sets. Any failure rolls the document back.
func (r *EvaluasiRepository) Save(doc *evaluasi.Evaluasi) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing evaluasi.Evaluasi
		err := tx.Where("terapis_id = ?", doc.TerapisID).First(&existing).Error
		switch {
		case err == nil:
			doc.ID = existing.ID
			doc.CreatedAt = existing.CreatedAt
			doc.UpdatedAt = time.Now()
			if err := tx.Model(&evaluasi.Evaluasi{}).Where("id = ?", doc.ID).Updates(map[string]interface{}{
				"no_dokumen":          doc.NoDokumen,
				"revisi":              doc.Revisi,
				"tanggal_berlaku":     doc.TanggalBerlaku,
				"nama_training":       doc.NamaTraining,
				"tanggal_pelaksanaan": doc.TanggalPelaksanaan,
				"updated_at":          doc.UpdatedAt,
			}).Error; err != nil {
				return err
			}
			if err := deleteChildren(tx, doc.ID); err != nil {
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

		for i := range doc.Objectives {
			o := &doc.Objectives[i]
			o.ID = uuid.NewString()
			o.EvaluasiID = doc.ID
			if err := tx.Create(o).Error; err != nil {
				return err
			}
		}
		for i := range doc.Skills {
			sk := &doc.Skills[i]
			sk.ID = uuid.NewString()
			sk.EvaluasiID = doc.ID
			if err := tx.Create(sk).Error; err != nil {
				return err
			}
		}
		for i := range doc.Feedback {
			f := &doc.Feedback[i]
			f.ID = uuid.NewString()
			f.EvaluasiID = doc.ID
			if err := tx.Create(f).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *EvaluasiRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteChildren(tx, id); err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&evaluasi.Evaluasi{}).Error
	})
}

func deleteChildren(tx *gorm.DB, evaluasiID string) error {
	if err := tx.Where("evaluasi_id = ?", evaluasiID).Delete(&evaluasi.Objective{}).Error; err != nil {
		return err
	}
	if err := tx.Where("evaluasi_id = ?", evaluasiID).Delete(&evaluasi.SkillRow{}).Error; err != nil {
		return err
	}
	return tx.Where("evaluasi_id = ?", evaluasiID).Delete(&evaluasi.FeedbackRow{}).Error
}
