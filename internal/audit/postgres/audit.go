package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medikacare/terapis-management/internal/audit"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) audit.Repository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(entry *audit.Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	return r.db.Create(entry).Error
}

func (r *AuditRepository) GetAll(filters audit.Filters, limit, offset int) ([]*audit.Entry, int64, error) {
	query := r.db.Model(&audit.Entry{})

	if filters.TableName != "" {
		query = query.Where("table_name = ?", filters.TableName)
	}
	if filters.Action != "" {
		query = query.Where("action = ?", filters.Action)
	}
	if filters.UserID != "" {
		query = query.Where("user_id = ?", filters.UserID)
	}
	if filters.StartDate != nil {
		query = query.Where("created_at >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("created_at <= ?", *filters.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []*audit.Entry
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}

func (r *AuditRepository) GetByRecord(tableName, recordID string) ([]*audit.Entry, error) {
	var entries []*audit.Entry
	err := r.db.Where("table_name = ? AND record_id = ?", tableName, recordID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *AuditRepository) DistinctActions() ([]string, error) {
	var actions []string
	err := r.db.Model(&audit.Entry{}).Distinct("action").Order("action ASC").Pluck("action", &actions).Error
	return actions, err
}
