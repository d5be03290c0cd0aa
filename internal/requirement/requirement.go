package requirement

import (
	"time"
)

// Requirement is a hiring requisition. Accepting one promotes it into a
// Terapis record and removes the requisition in the same transaction.
type Requirement struct {
	ID                 string    `json:"id" gorm:"primaryKey;column:id"`
	Nama               string    `json:"nama" gorm:"column:nama;not null"`
	Lulusan            string    `json:"lulusan" gorm:"column:lulusan"`
	Jurusan            string    `json:"jurusan" gorm:"column:jurusan"`
	TanggalRequirement *string   `json:"tanggalRequirement,omitempty" gorm:"column:tanggal_requirement"`
	CreatedAt          time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt          time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Requirement) TableName() string {
	return "requirements"
}
