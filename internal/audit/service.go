package audit

import (
	"encoding/json"
	"log/slog"
	"time"

	apperrors "github.com/medikacare/terapis-management/internal"
)

// Repository defines the data access methods for audit records.
type Repository interface {
	Create(entry *Entry) error
	GetAll(filters Filters, limit, offset int) ([]*Entry, int64, error)
	GetByRecord(tableName, recordID string) ([]*Entry, error)
	DistinctActions() ([]string, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Record persists one audit entry. Failures are reported to the operational
// log only; they never reach the original request.
func (s *Service) Record(entry *Entry) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if err := s.repo.Create(entry); err != nil {
		s.logger.Error("failed to persist audit entry",
			"error", err,
			"table", entry.Table,
			"record_id", entry.RecordID,
			"action", entry.Action)
	}
}

// Log is the manual helper for handlers that hold both snapshots, e.g. an
// update that captured the pre-image before writing.
func (s *Service) Log(tableName, recordID string, action Action, userID, username string, oldData, newData interface{}, ip, userAgent string) {
	entry := &Entry{
		Table:     tableName,
		RecordID:  recordID,
		Action:    action,
		UserID:    userID,
		Username:  username,
		IPAddress: ip,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}

	if oldData != nil {
		if b, err := json.Marshal(oldData); err == nil {
			entry.OldData = b
		}
	}
	if newData != nil {
		if b, err := json.Marshal(newData); err == nil {
			entry.NewData = b
		}
	}

	s.Record(entry)
}

func (s *Service) List(filters Filters, page, limit int) ([]*Entry, int64, error) {
	offset := (page - 1) * limit
	entries, total, err := s.repo.GetAll(filters, limit, offset)
	if err != nil {
		s.logger.Error("failed to list audit entries", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list audit entries", err)
	}
	return entries, total, nil
}

func (s *Service) RecordHistory(tableName, recordID string) ([]*Entry, error) {
	entries, err := s.repo.GetByRecord(tableName, recordID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load record history", err)
	}
	return entries, nil
}

func (s *Service) Actions() ([]string, error) {
	actions, err := s.repo.DistinctActions()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load audit actions", err)
	}
	return actions, nil
}
