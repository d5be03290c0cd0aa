package evaluasi

import (
	"time"

	"github.com/medikacare/terapis-management/internal/terapis"
)

// Evaluasi is a post-training evaluation document. Like TNA it is owned by
// exactly one therapist and replaced wholesale on save, but it carries three
// ordered child collections instead of one.
type Evaluasi struct {
	ID                 string    `json:"id" gorm:"primaryKey;column:id"`
	TerapisID          string    `json:"terapisId" gorm:"column:terapis_id;not null;uniqueIndex"`
	NoDokumen          string    `json:"noDokumen" gorm:"column:no_dokumen"`
	Revisi             *string   `json:"revisi,omitempty" gorm:"column:revisi"`
	TanggalBerlaku     *string   `json:"tanggalBerlaku,omitempty" gorm:"column:tanggal_berlaku"`
	NamaTraining       *string   `json:"namaTraining,omitempty" gorm:"column:nama_training"`
	TanggalPelaksanaan *string   `json:"tanggalPelaksanaan,omitempty" gorm:"column:tanggal_pelaksanaan"`
	CreatedAt          time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt          time.Time `json:"updatedAt" gorm:"column:updated_at"`

	Terapis    *terapis.Terapis `json:"terapis,omitempty" gorm:"foreignKey:TerapisID;constraint:OnDelete:CASCADE"`
	Objectives []Objective      `json:"objectives" gorm:"foreignKey:EvaluasiID;constraint:OnDelete:CASCADE"`
	Skills     []SkillRow       `json:"skills" gorm:"foreignKey:EvaluasiID;constraint:OnDelete:CASCADE"`
	Feedback   []FeedbackRow    `json:"feedback" gorm:"foreignKey:EvaluasiID;constraint:OnDelete:CASCADE"`
}

func (Evaluasi) TableName() string {
	return "evaluasi"
}

// Objective is one training objective being evaluated.
type Objective struct {
	ID             string `json:"id" gorm:"primaryKey;column:id"`
	EvaluasiID     string `json:"-" gorm:"column:evaluasi_id;not null"`
	TujuanTraining string `json:"tujuanTraining" gorm:"column:tujuan_training"`
	Urutan         int    `json:"urutan" gorm:"column:urutan;not null"`
}

func (Objective) TableName() string {
	return "evaluasi_objectives"
}

// SkillRow scores one competency before and after the training.
type SkillRow struct {
	ID           string `json:"id" gorm:"primaryKey;column:id"`
	EvaluasiID   string `json:"-" gorm:"column:evaluasi_id;not null"`
	Kemampuan    string `json:"kemampuan" gorm:"column:kemampuan"`
	NilaiSebelum *int   `json:"nilaiSebelum,omitempty" gorm:"column:nilai_sebelum"`
	NilaiSesudah *int   `json:"nilaiSesudah,omitempty" gorm:"column:nilai_sesudah"`
	Urutan       int    `json:"urutan" gorm:"column:urutan;not null"`
}

func (SkillRow) TableName() string {
	return "evaluasi_skills"
}

// FeedbackRow is one free-text evaluator comment.
type FeedbackRow struct {
	ID         string `json:"id" gorm:"primaryKey;column:id"`
	EvaluasiID string `json:"-" gorm:"column:evaluasi_id;not null"`
	Komentar   string `json:"komentar" gorm:"column:komentar"`
	Urutan     int    `json:"urutan" gorm:"column:urutan;not null"`
}

func (FeedbackRow) TableName() string {
	return "evaluasi_feedback"
}
