package terapis

import (
	errors "github.com/medikacare/terapis-management/internal"
	"github.com/medikacare/terapis-management/internal/core/common/validation"
)

type CreateTerapisDTO struct {
	Nama                  string  `json:"nama"`
	Lulusan               string  `json:"lulusan"`
	Jurusan               string  `json:"jurusan"`
	Cabang                string  `json:"cabang"`
	TanggalMulaiKontrak   *string `json:"tanggalMulaiKontrak,omitempty"`
	TanggalSelesaiKontrak *string `json:"tanggalSelesaiKontrak,omitempty"`
	NoTelepon             *string `json:"noTelepon,omitempty"`
	Email                 *string `json:"email,omitempty"`
	Alamat                *string `json:"alamat,omitempty"`
}

func (dto CreateTerapisDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("nama", dto.Nama).Required().MaxLength(255)
	v.Field("lulusan", dto.Lulusan).MaxLength(100)
	v.Field("jurusan", dto.Jurusan).MaxLength(255)
	v.Field("cabang", dto.Cabang).MaxLength(100)
	if dto.TanggalMulaiKontrak != nil {
		v.Field("tanggalMulaiKontrak", *dto.TanggalMulaiKontrak).DateFormat(DateLayout)
	}
	if dto.TanggalSelesaiKontrak != nil {
		v.Field("tanggalSelesaiKontrak", *dto.TanggalSelesaiKontrak).DateFormat(DateLayout)
	}
	return v.Validate()
}

// UpdateTerapisDTO carries partial updates; nil fields are left untouched.
type UpdateTerapisDTO struct {
	Nama                  *string `json:"nama,omitempty"`
	Lulusan               *string `json:"lulusan,omitempty"`
	Jurusan               *string `json:"jurusan,omitempty"`
	Cabang                *string `json:"cabang,omitempty"`
	TanggalMulaiKontrak   *string `json:"tanggalMulaiKontrak,omitempty"`
	TanggalSelesaiKontrak *string `json:"tanggalSelesaiKontrak,omitempty"`
	NoTelepon             *string `json:"noTelepon,omitempty"`
	Email                 *string `json:"email,omitempty"`
	Alamat                *string `json:"alamat,omitempty"`
}

func (dto UpdateTerapisDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	if dto.Nama != nil {
		v.Field("nama", *dto.Nama).Required().MaxLength(255)
	}
	if dto.TanggalMulaiKontrak != nil {
		v.Field("tanggalMulaiKontrak", *dto.TanggalMulaiKontrak).DateFormat(DateLayout)
	}
	if dto.TanggalSelesaiKontrak != nil {
		v.Field("tanggalSelesaiKontrak", *dto.TanggalSelesaiKontrak).DateFormat(DateLayout)
	}
	return v.Validate()
}

// Fields reduces the DTO to the column map used for partial updates.
func (dto UpdateTerapisDTO) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if dto.Nama != nil {
		fields["nama"] = *dto.Nama
	}
	if dto.Lulusan != nil {
		fields["lulusan"] = *dto.Lulusan
	}
	if dto.Jurusan != nil {
		fields["jurusan"] = *dto.Jurusan
	}
	if dto.Cabang != nil {
		fields["cabang"] = *dto.Cabang
	}
	if dto.TanggalMulaiKontrak != nil {
		fields["tanggal_mulai_kontrak"] = *dto.TanggalMulaiKontrak
	}
	if dto.TanggalSelesaiKontrak != nil {
		fields["tanggal_selesai_kontrak"] = *dto.TanggalSelesaiKontrak
	}
	if dto.NoTelepon != nil {
		fields["no_telepon"] = *dto.NoTelepon
	}
	if dto.Email != nil {
		fields["email"] = *dto.Email
	}
	if dto.Alamat != nil {
		fields["alamat"] = *dto.Alamat
	}
	return fields
}
