package terapis

import (
	"log/slog"

	apperrors "github.com/medikacare/terapis-management/internal"
)

// Repository defines the data access methods for therapists.
type Repository interface {
	GetAll(search, cabang string, limit, offset int) ([]*Terapis, int64, error)
	GetByID(id string) (*Terapis, error)
	Create(t *Terapis) error
	Update(id string, fields map[string]interface{}) error
	Delete(id string) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(search, cabang string, page, limit int) ([]*Terapis, int64, error) {
	offset := (page - 1) * limit
	items, total, err := s.repo.GetAll(search, cabang, limit, offset)
	if err != nil {
		s.logger.Error("failed to list terapis", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list terapis", err)
	}
	return items, total, nil
}

func (s *Service) GetByID(id string) (*Terapis, error) {
	t, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get terapis", err)
	}
	if t == nil {
		return nil, apperrors.ErrTerapisNotFound
	}
	return t, nil
}

func (s *Service) Create(dto CreateTerapisDTO) (*Terapis, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	t := &Terapis{
		Nama:                  dto.Nama,
		Lulusan:               dto.Lulusan,
		Jurusan:               dto.Jurusan,
		Cabang:                dto.Cabang,
		TanggalMulaiKontrak:   dto.TanggalMulaiKontrak,
		TanggalSelesaiKontrak: dto.TanggalSelesaiKontrak,
		NoTelepon:             dto.NoTelepon,
		Email:                 dto.Email,
		Alamat:                dto.Alamat,
	}

	if err := s.repo.Create(t); err != nil {
		s.logger.Error("failed to create terapis", "error", err)
		return nil, apperrors.NewInternalError("failed to create terapis", err)
	}

	s.logger.Info("terapis created", "terapis_id", t.ID, "nama", t.Nama)
	return t, nil
}

func (s *Service) Update(id string, dto UpdateTerapisDTO) (*Terapis, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get terapis", err)
	}
	if existing == nil {
		return nil, apperrors.ErrTerapisNotFound
	}

	fields := dto.Fields()
	if len(fields) > 0 {
		if err := s.repo.Update(id, fields); err != nil {
			s.logger.Error("failed to update terapis", "error", err, "terapis_id", id)
			return nil, apperrors.NewInternalError("failed to update terapis", err)
		}
	}

	updated, err := s.repo.GetByID(id)
	if err != nil || updated == nil {
		return nil, apperrors.NewInternalError("failed to reload terapis", err)
	}

	s.logger.Info("terapis updated", "terapis_id", id)
	return updated, nil
}

// Delete removes the therapist; TNA and Evaluasi documents cascade at the
// storage layer so no orphaned child rows remain.
func (s *Service) Delete(id string) (*Terapis, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get terapis", err)
	}
	if existing == nil {
		return nil, apperrors.ErrTerapisNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete terapis", "error", err, "terapis_id", id)
		return nil, apperrors.NewInternalError("failed to delete terapis", err)
	}

	s.logger.Info("terapis deleted", "terapis_id", id, "nama", existing.Nama)
	return existing, nil
}
