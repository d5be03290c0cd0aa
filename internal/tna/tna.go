package tna

import (
	"time"

	"github.com/medikacare/terapis-management/internal/terapis"
)

// TNA is a training-needs-analysis document header. Each therapist owns at
// most one; re-saving replaces the header's children wholesale.
type TNA struct {
	ID             string    `json:"id" gorm:"primaryKey;column:id"`
	TerapisID      string    `json:"terapisId" gorm:"column:terapis_id;not null;uniqueIndex"`
	NoDokumen      string    `json:"noDokumen" gorm:"column:no_dokumen"`
	Revisi         *string   `json:"revisi,omitempty" gorm:"column:revisi"`
	TanggalBerlaku *string   `json:"tanggalBerlaku,omitempty" gorm:"column:tanggal_berlaku"`
	Unit           *string   `json:"unit,omitempty" gorm:"column:unit"`
	Departemen     *string   `json:"departemen,omitempty" gorm:"column:departemen"`
	CreatedAt      time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updatedAt" gorm:"column:updated_at"`

	Terapis      *terapis.Terapis `json:"terapis,omitempty" gorm:"foreignKey:TerapisID;constraint:OnDelete:CASCADE"`
	TrainingRows []TrainingRow    `json:"trainingRows" gorm:"foreignKey:TNAID;constraint:OnDelete:CASCADE"`
	Approval     *Approval        `json:"approval,omitempty" gorm:"foreignKey:TNAID;constraint:OnDelete:CASCADE"`
}

func (TNA) TableName() string {
	return "tna"
}

// TrainingRow is one planned training item; Urutan preserves the submitted
// array order across storage.
type TrainingRow struct {
	ID            string  `json:"id" gorm:"primaryKey;column:id"`
	TNAID         string  `json:"-" gorm:"column:tna_id;not null"`
	Topik         string  `json:"topik" gorm:"column:topik"`
	Alasan        *string `json:"alasan,omitempty" gorm:"column:alasan"`
	Peserta       *string `json:"peserta,omitempty" gorm:"column:peserta"`
	RencanaJadwal *string `json:"rencanaJadwal,omitempty" gorm:"column:rencana_jadwal"`
	Biaya         *string `json:"biaya,omitempty" gorm:"column:biaya"`
	Urutan        int     `json:"urutan" gorm:"column:urutan;not null"`
}

func (TrainingRow) TableName() string {
	return "tna_training_rows"
}

// Approval holds the four sign-off names for a document.
type Approval struct {
	ID            string  `json:"id" gorm:"primaryKey;column:id"`
	TNAID         string  `json:"-" gorm:"column:tna_id;not null;uniqueIndex"`
	DibuatOleh    *string `json:"dibuatOleh,omitempty" gorm:"column:dibuat_oleh"`
	DiperiksaOleh *string `json:"diperiksaOleh,omitempty" gorm:"column:diperiksa_oleh"`
	DisetujuiOleh *string `json:"disetujuiOleh,omitempty" gorm:"column:disetujui_oleh"`
	DiketahuiOleh *string `json:"diketahuiOleh,omitempty" gorm:"column:diketahui_oleh"`
}

func (Approval) TableName() string {
	return "tna_approvals"
}
