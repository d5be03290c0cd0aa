package requirement

import (
	"log/slog"

	apperrors "github.com/medikacare/terapis-management/internal"
	"github.com/medikacare/terapis-management/internal/terapis"
)

// Repository defines the data access methods for hiring requisitions.
type Repository interface {
	GetAll(search string, limit, offset int) ([]*Requirement, int64, error)
	GetByID(id string) (*Requirement, error)
	Create(req *Requirement) error
	Update(id string, fields map[string]interface{}) error
	Delete(id string) error
	// Accept creates the therapist and deletes the requisition atomically.
	Accept(req *Requirement, t *terapis.Terapis) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(search string, page, limit int) ([]*Requirement, int64, error) {
	offset := (page - 1) * limit
	items, total, err := s.repo.GetAll(search, limit, offset)
	if err != nil {
		s.logger.Error("failed to list requirements", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list requirements", err)
	}
	return items, total, nil
}

func (s *Service) GetByID(id string) (*Requirement, error) {
	req, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get requirement", err)
	}
	if req == nil {
		return nil, apperrors.ErrRequirementNotFound
	}
	return req, nil
}

func (s *Service) Create(dto CreateRequirementDTO) (*Requirement, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	req := &Requirement{
		Nama:               dto.Nama,
		Lulusan:            dto.Lulusan,
		Jurusan:            dto.Jurusan,
		TanggalRequirement: dto.TanggalRequirement,
	}

	if err := s.repo.Create(req); err != nil {
		s.logger.Error("failed to create requirement", "error", err)
		return nil, apperrors.NewInternalError("failed to create requirement", err)
	}

	s.logger.Info("requirement created", "requirement_id", req.ID, "nama", req.Nama)
	return req, nil
}

func (s *Service) Update(id string, dto UpdateRequirementDTO) (*Requirement, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get requirement", err)
	}
	if existing == nil {
		return nil, apperrors.ErrRequirementNotFound
	}

	fields := dto.Fields()
	if len(fields) > 0 {
		if err := s.repo.Update(id, fields); err != nil {
			s.logger.Error("failed to update requirement", "error", err, "requirement_id", id)
			return nil, apperrors.NewInternalError("failed to update requirement", err)
		}
	}

	updated, err := s.repo.GetByID(id)
	if err != nil || updated == nil {
		return nil, apperrors.NewInternalError("failed to reload requirement", err)
	}
	return updated, nil
}

// Accept promotes the requisition into a therapist record. The copy and the
// delete commit together or not at all. The consumed requisition is returned
// alongside the therapist so callers can audit its final state.
func (s *Service) Accept(id string, dto AcceptRequirementDTO) (*terapis.Terapis, *Requirement, error) {
	if err := dto.Validate(); err != nil {
		return nil, nil, err
	}

	req, err := s.repo.GetByID(id)
	if err != nil {
		return nil, nil, apperrors.NewInternalError("failed to get requirement", err)
	}
	if req == nil {
		return nil, nil, apperrors.ErrRequirementNotFound
	}

	t := &terapis.Terapis{
		Nama:                req.Nama,
		Lulusan:             req.Lulusan,
		Jurusan:             req.Jurusan,
		TanggalMulaiKontrak: dto.TanggalMulaiKontrak,
	}
	if t.TanggalMulaiKontrak == nil {
		t.TanggalMulaiKontrak = req.TanggalRequirement
	}
	if dto.Cabang != nil {
		t.Cabang = *dto.Cabang
	}

	if err := s.repo.Accept(req, t); err != nil {
		s.logger.Error("failed to accept requirement", "error", err, "requirement_id", id)
		return nil, nil, apperrors.NewInternalError("failed to accept requirement", err)
	}

	s.logger.Info("requirement accepted", "requirement_id", id, "terapis_id", t.ID)
	return t, req, nil
}

// Reject removes the requisition and returns the deleted row.
func (s *Service) Reject(id string) (*Requirement, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get requirement", err)
	}
	if existing == nil {
		return nil, apperrors.ErrRequirementNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete requirement", "error", err, "requirement_id", id)
		return nil, apperrors.NewInternalError("failed to delete requirement", err)
	}

	s.logger.Info("requirement rejected", "requirement_id", id, "nama", existing.Nama)
	return existing, nil
}
