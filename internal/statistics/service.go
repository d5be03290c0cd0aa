package statistics

import (
	"log/slog"

	apperrors "github.com/medikacare/terapis-management/internal"
)

// Repository defines the aggregate queries behind the dashboard.
type Repository interface {
	Totals() (Totals, error)
	TerapisPerCabang() ([]CabangCount, error)
	NewTerapisByMonth(months int) ([]MonthCount, error)
	TNACoverage() (Coverage, error)
	EvaluasiCoverage() (Coverage, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Dashboard() (*Dashboard, error) {
	totals, err := s.repo.Totals()
	if err != nil {
		s.logger.Error("failed to load dashboard totals", "error", err)
		return nil, apperrors.NewInternalError("failed to load statistics", err)
	}

	perCabang, err := s.repo.TerapisPerCabang()
	if err != nil {
		s.logger.Error("failed to load cabang breakdown", "error", err)
		return nil, apperrors.NewInternalError("failed to load statistics", err)
	}

	byMonth, err := s.repo.NewTerapisByMonth(12)
	if err != nil {
		s.logger.Error("failed to load hiring time series", "error", err)
		return nil, apperrors.NewInternalError("failed to load statistics", err)
	}

	tnaCov, err := s.repo.TNACoverage()
	if err != nil {
		s.logger.Error("failed to load tna coverage", "error", err)
		return nil, apperrors.NewInternalError("failed to load statistics", err)
	}

	evalCov, err := s.repo.EvaluasiCoverage()
	if err != nil {
		s.logger.Error("failed to load evaluasi coverage", "error", err)
		return nil, apperrors.NewInternalError("failed to load statistics", err)
	}

	return &Dashboard{
		Totals:            totals,
		TerapisPerCabang:  perCabang,
		NewTerapisByMonth: byMonth,
		TNACoverage:       tnaCov,
		EvaluasiCoverage:  evalCov,
	}, nil
}
