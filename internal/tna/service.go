package tna

import (
	"log/slog"

	apperrors "github.com/medikacare/terapis-management/internal"
	"github.com/medikacare/terapis-management/internal/terapis"
)

// Repository defines the data access methods for TNA documents.
type Repository interface {
	GetAll(search string, limit, offset int) ([]*TNA, int64, error)
	GetByID(id string) (*TNA, error)
	GetByTerapisID(terapisID string) (*TNA, error)
	// Save upserts the header for doc.TerapisID and replaces all children.
	Save(doc *TNA) error
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

func (s *Service) List(search string, page, limit int) ([]*TNA, int64, error) {
	offset := (page - 1) * limit
	items, total, err := s.repo.GetAll(search, limit, offset)
	if err != nil {
		s.logger.Error("failed to list tna documents", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list tna documents", err)
	}
	return items, total, nil
}

func (s *Service) GetByID(id string) (*TNA, error) {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get tna", err)
	}
	if doc == nil {
		return nil, apperrors.ErrTNANotFound
	}
	return doc, nil
}

func (s *Service) GetByTerapisID(terapisID string) (*TNA, error) {
	doc, err := s.repo.GetByTerapisID(terapisID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get tna", err)
	}
	if doc == nil {
		return nil, apperrors.ErrTNANotFound
	}
	return doc, nil
}

// Save creates or fully replaces the therapist's document. The header is
// updated in place when it exists; children are always deleted and
// re-inserted in payload order.
func (s *Service) Save(dto SaveTNADTO) (*TNA, error) {
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

	doc := &TNA{
		TerapisID:      dto.TerapisID,
		NoDokumen:      dto.NoDokumen,
		Revisi:         dto.Revisi,
		TanggalBerlaku: dto.TanggalBerlaku,
		Unit:           dto.Unit,
		Departemen:     dto.Departemen,
	}
	for i, row := range dto.TrainingRows {
		doc.TrainingRows = append(doc.TrainingRows, TrainingRow{
			Topik:         row.Topik,
			Alasan:        row.Alasan,
			Peserta:       row.Peserta,
			RencanaJadwal: row.RencanaJadwal,
			Biaya:         row.Biaya,
			Urutan:        i + 1,
		})
	}
	if dto.Approval != nil {
		doc.Approval = &Approval{
			DibuatOleh:    dto.Approval.DibuatOleh,
			DiperiksaOleh: dto.Approval.DiperiksaOleh,
			DisetujuiOleh: dto.Approval.DisetujuiOleh,
			DiketahuiOleh: dto.Approval.DiketahuiOleh,
		}
	}

	if err := s.repo.Save(doc); err != nil {
		s.logger.Error("failed to save tna", "error", err, "terapis_id", dto.TerapisID)
		return nil, apperrors.NewInternalError("failed to save tna", err)
	}

	saved, err := s.repo.GetByID(doc.ID)
	if err != nil || saved == nil {
		return nil, apperrors.NewInternalError("failed to reload tna", err)
	}

	s.logger.Info("tna saved", "tna_id", doc.ID, "terapis_id", dto.TerapisID, "rows", len(dto.TrainingRows))
	return saved, nil
}

func (s *Service) Delete(id string) (*TNA, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get tna", err)
	}
	if existing == nil {
		return nil, apperrors.ErrTNANotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete tna", "error", err, "tna_id", id)
		return nil, apperrors.NewInternalError("failed to delete tna", err)
	}

	s.logger.Info("tna deleted", "tna_id", id)
	return existing, nil
}
