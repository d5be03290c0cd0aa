package training

import (
	"time"
)

// Module categories.
const (
	KategoriBasic      = "BASIC"
	KategoriTechnical  = "TECHNICAL"
	KategoriManagerial = "MANAGERIAL"
	KategoriHSE        = "HSE"
)

// Kategoris lists every valid module category.
var Kategoris = []string{KategoriBasic, KategoriTechnical, KategoriManagerial, KategoriHSE}

// Week numbers outside this range are dropped rather than rejected.
const (
	MinWeek = 1
	MaxWeek = 52
)

// Module is one catalog entry in the yearly training calendar. Its scheduled
// weeks are stored as child rows, unique per module.
type Module struct {
	ID            string    `json:"id" gorm:"primaryKey;column:id"`
	Kategori      string    `json:"kategori" gorm:"column:kategori;not null"`
	Nama          string    `json:"nama" gorm:"column:nama;not null"`
	Durasi        *string   `json:"durasi,omitempty" gorm:"column:durasi"`
	KelasLapangan *string   `json:"kelasLapangan,omitempty" gorm:"column:kelas_lapangan"`
	Trainer       *string   `json:"trainer,omitempty" gorm:"column:trainer"`
	TargetPeserta bool      `json:"targetPeserta" gorm:"column:target_peserta"`
	Tahun         int       `json:"tahun" gorm:"column:tahun"`
	CreatedAt     time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"column:updated_at"`

	Weeks []ScheduleWeek `json:"weeks" gorm:"foreignKey:ModuleID"`
}

func (Module) TableName() string {
	return "training_modules"
}

// ScheduleWeek marks one calendar week in which the module runs.
type ScheduleWeek struct {
	ID       string `json:"-" gorm:"primaryKey;column:id"`
	ModuleID string `json:"-" gorm:"column:module_id;not null;uniqueIndex:idx_module_week"`
	Week     int    `json:"week" gorm:"column:week;not null;uniqueIndex:idx_module_week"`
}

func (ScheduleWeek) TableName() string {
	return "training_module_weeks"
}
