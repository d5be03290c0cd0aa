package terapis

import (
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// Terapis is the core subject entity: a hired therapist assigned to a
// branch, optionally owning one TNA and one Evaluasi document.
type Terapis struct {
	ID                    string    `json:"id" gorm:"primaryKey;column:id"`
	Nama                  string    `json:"nama" gorm:"column:nama;not null"`
	Lulusan               string    `json:"lulusan" gorm:"column:lulusan"`
	Jurusan               string    `json:"jurusan" gorm:"column:jurusan"`
	Cabang                string    `json:"cabang" gorm:"column:cabang"`
	TanggalMulaiKontrak   *string   `json:"tanggalMulaiKontrak,omitempty" gorm:"column:tanggal_mulai_kontrak"`
	TanggalSelesaiKontrak *string   `json:"tanggalSelesaiKontrak,omitempty" gorm:"column:tanggal_selesai_kontrak"`
	NoTelepon             *string   `json:"noTelepon,omitempty" gorm:"column:no_telepon"`
	Email                 *string   `json:"email,omitempty" gorm:"column:email"`
	Alamat                *string   `json:"alamat,omitempty" gorm:"column:alamat"`
	CreatedAt             time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt             time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Terapis) TableName() string {
	return "terapis"
}
