package evaluasi

import (
	"log/slog"

	apperrors "github.com/medikacare/terapis-management/internal"
	"github.com/medikacare/terapis-management/internal/terapis"
)

// Repository defines the data access methods for evaluation documents.
type Repository interface {
	GetAll(search string, limit, offset int) ([]*Evaluasi, int64, error)
	GetByID(id string) (*Evaluasi, error)
	GetByTerapisID(terapisID string) (*Evaluasi, error)
	// Save upserts the header for doc.TerapisID and replaces all children.
	Save(doc *Evaluasi) error
	Delete(id string) error
}

// TerapisChecker verifies the owning therapist exists before a save.
type TerapisChecker interface {
	GetByID(id string) (*terapis.Terapis, error)
}

type Service struct {
	repo        Repository
	terapisRepo TerapisChecker
	logger      *slog.Logger
}

func NewService(repo Repository, terapisRepo TerapisChecker, logger *slog.Logger) *Service {
	return &Service{repo: repo, terapisRepo: terapisRepo, logger: logger}
}

func (s *Service) List(search string, page, limit int) ([]*Evaluasi, int64, error) {
	offset := (page - 1) * limit
	items, total, err := s.repo.GetAll(search, limit, offset)
	if err != nil {
		s.logger.Error("failed to list evaluasi documents", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list evaluasi documents", err)
	}
	return items, total, nil
}

func (s *Service) GetByID(id string) (*Evaluasi, error) {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get evaluasi", err)
	}
	if doc == nil {
		return nil, apperrors.ErrEvaluasiNotFound
	}
	return doc, nil
}

func (s *Service) GetByTerapisID(terapisID string) (*Evaluasi, error) {
	doc, err := s.repo.GetByTerapisID(terapisID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get evaluasi", err)
	}
	if doc == nil {
		return nil, apperrors.ErrEvaluasiNotFound
	}
	return doc, nil
}

// Save creates or fully replaces the therapist's evaluation. All three child
// collections are deleted and re-inserted in payload order.
func (s *Service) Save(dto SaveEvaluasiDTO) (*Evaluasi, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	owner, err := s.terapisRepo.GetByID(dto.TerapisID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get terapis", err)
	}
	if owner == nil {
		return nil, apperrors.ErrTerapisNotFound
	}

	doc := &Evaluasi{
		TerapisID:          dto.TerapisID,
		NoDokumen:          dto.NoDokumen,
		Revisi:             dto.Revisi,
		TanggalBerlaku:     dto.TanggalBerlaku,
		NamaTraining:       dto.NamaTraining,
		TanggalPelaksanaan: dto.TanggalPelaksanaan,
	}
	for i, o := range dto.Objectives {
		doc.Objectives = append(doc.Objectives, Objective{
			TujuanTraining: o.TujuanTraining,
			Urutan:         i + 1,
		})
	}
	for i, sk := range dto.Skills {
		doc.Skills = append(doc.Skills, SkillRow{
			Kemampuan:    sk.Kemampuan,
			NilaiSebelum: sk.NilaiSebelum,
			NilaiSesudah: sk.NilaiSesudah,
			Urutan:       i + 1,
		})
	}
	for i, f := range dto.Feedback {
		doc.Feedback = append(doc.Feedback, FeedbackRow{
			Komentar: f.Komentar,
			Urutan:   i + 1,
		})
	}

	if err := s.repo.Save(doc); err != nil {
		s.logger.Error("failed to save evaluasi", "error", err, "terapis_id", dto.TerapisID)
		return nil, apperrors.NewInternalError("failed to save evaluasi", err)
	}

	saved, err := s.repo.GetByID(doc.ID)
	if err != nil || saved == nil {
		return nil, apperrors.NewInternalError("failed to reload evaluasi", err)
	}

	s.logger.Info("evaluasi saved", "evaluasi_id", doc.ID, "terapis_id", dto.TerapisID)
	return saved, nil
}

func (s *Service) Delete(id string) (*Evaluasi, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get evaluasi", err)
	}
	if existing == nil {
		return nil, apperrors.ErrEvaluasiNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete evaluasi", "error", err, "evaluasi_id", id)
		return nil, apperrors.NewInternalError("failed to delete evaluasi", err)
	}

	s.logger.Info("evaluasi deleted", "evaluasi_id", id)
	return existing, nil
}
