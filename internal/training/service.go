package training

import (
	"log/slog"

	apperrors "github.com/medikacare/terapis-management/internal"
)

// Repository defines the data access methods for training modules.
type Repository interface {
	GetAll(search, kategori string, limit, offset int) ([]*Module, int64, error)
	GetByID(id string) (*Module, error)
	Create(m *Module) error
	// Update writes the header fields and, when weeks is non-nil, replaces
	// the schedule transactionally.
	Update(id string, fields map[string]interface{}, weeks []int) error
	Delete(id string) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(search, kategori string, page, limit int) ([]*Module, int64, error) {
	offset := (page - 1) * limit
	items, total, err := s.repo.GetAll(search, kategori, limit, offset)
	if err != nil {
		s.logger.Error("failed to list training modules", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list training modules", err)
	}
	return items, total, nil
}

func (s *Service) GetByID(id string) (*Module, error) {
	m, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get training module", err)
	}
	if m == nil {
		return nil, apperrors.ErrModuleNotFound
	}
	return m, nil
}

func (s *Service) Create(dto CreateModuleDTO) (*Module, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	m := &Module{
		Kategori:      dto.Kategori,
		Nama:          dto.Nama,
		Durasi:        dto.Durasi,
		KelasLapangan: dto.KelasLapangan,
		Trainer:       dto.Trainer,
		TargetPeserta: dto.TargetPeserta,
		Tahun:         dto.Tahun,
	}
	for _, wk := range FilterWeeks(dto.Weeks) {
		m.Weeks = append(m.Weeks, ScheduleWeek{Week: wk})
	}

	if err := s.repo.Create(m); err != nil {
		s.logger.Error("failed to create training module", "error", err)
		return nil, apperrors.NewInternalError("failed to create training module", err)
	}

	s.logger.Info("training module created", "module_id", m.ID, "nama", m.Nama, "kategori", m.Kategori)
	return m, nil
}

func (s *Service) Update(id string, dto UpdateModuleDTO) (*Module, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get training module", err)
	}
	if existing == nil {
		return nil, apperrors.ErrModuleNotFound
	}

	var weeks []int
	if dto.Weeks != nil {
		weeks = FilterWeeks(*dto.Weeks)
	}

	fields := dto.Fields()
	if len(fields) > 0 || dto.Weeks != nil {
		if err := s.repo.Update(id, fields, weeks); err != nil {
			s.logger.Error("failed to update training module", "error", err, "module_id", id)
			return nil, apperrors.NewInternalError("failed to update training module", err)
		}
	}

	updated, err := s.repo.GetByID(id)
	if err != nil || updated == nil {
		return nil, apperrors.NewInternalError("failed to reload training module", err)
	}

	s.logger.Info("training module updated", "module_id", id)
	return updated, nil
}

func (s *Service) Delete(id string) (*Module, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get training module", err)
	}
	if existing == nil {
		return nil, apperrors.ErrModuleNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete training module", "error", err, "module_id", id)
		return nil, apperrors.NewInternalError("failed to delete training module", err)
	}

	s.logger.Info("training module deleted", "module_id", id, "nama", existing.Nama)
	return existing, nil
}
