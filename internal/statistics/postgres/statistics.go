package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/medikacare/terapis-management/internal/statistics"
)

type StatisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) statistics.Repository {
	return &StatisticsRepository{db: db}
}

func (r *StatisticsRepository) Totals() (statistics.Totals, error) {
	var t statistics.Totals
	counts := []struct {
		table string
		dest  *int64
	}{
		{"terapis", &t.Terapis},
		{"requirements", &t.Requirements},
		{"tna", &t.TNA},
		{"evaluasi", &t.Evaluasi},
		{"training_modules", &t.TrainingModules},
		{"users", &t.Users},
	}
	for _, c := range counts {
		if err := r.db.Table(c.table).Count(c.dest).Error; err != nil {
			return statistics.Totals{}, fmt.Errorf("count %s: %w", c.table, err)
		}
	}
	return t, nil
}

func (r *StatisticsRepository) TerapisPerCabang() ([]statistics.CabangCount, error) {
	var rows []statistics.CabangCount
	err := r.db.Raw(`
		SELECT COALESCE(NULLIF(cabang, ''), 'unassigned') AS cabang, COUNT(*) AS count
		FROM terapis
		GROUP BY 1
		ORDER BY count DESC, cabang ASC
	`).Scan(&rows).Error
	return rows, err
}

func (r *StatisticsRepository) NewTerapisByMonth(months int) ([]statistics.MonthCount, error) {
	var rows []statistics.MonthCount
	err := r.db.Raw(`
		SELECT to_char(created_at, 'YYYY-MM') AS month, COUNT(*) AS count
		FROM terapis
		WHERE created_at >= date_trunc('month', now()) - (? * interval '1 month')
		GROUP BY 1
		ORDER BY 1 ASC
	`, months-1).Scan(&rows).Error
	return rows, err
}

func (r *StatisticsRepository) TNACoverage() (statistics.Coverage, error) {
	return r.coverage("tna")
}

func (r *StatisticsRepository) EvaluasiCoverage() (statistics.Coverage, error) {
	return r.coverage("evaluasi")
}

func (r *StatisticsRepository) coverage(docTable string) (statistics.Coverage, error) {
	var cov statistics.Coverage
	query := fmt.Sprintf(`
		SELECT
			COUNT(d.terapis_id) AS with_docs,
			COUNT(*) - COUNT(d.terapis_id) AS without_docs
		FROM terapis t
		LEFT JOIN %s d ON d.terapis_id = t.id
	`, docTable)
	err := r.db.Raw(query).Scan(&cov).Error
	return cov, err
}
