package requirement

import (
	errors "github.com/medikacare/terapis-management/internal"
	"github.com/medikacare/terapis-management/internal/core/common/validation"
	"github.com/medikacare/terapis-management/internal/terapis"
)

type CreateRequirementDTO struct {
	Nama               string  `json:"nama"`
	Lulusan            string  `json:"lulusan"`
	Jurusan            string  `json:"jurusan"`
	TanggalRequirement *string `json:"tanggalRequirement,omitempty"`
}

func (dto CreateRequirementDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("nama", dto.Nama).Required().MaxLength(255)
	v.Field("lulusan", dto.Lulusan).MaxLength(100)
	v.Field("jurusan", dto.Jurusan).MaxLength(255)
	if dto.TanggalRequirement != nil {
		v.Field("tanggalRequirement", *dto.TanggalRequirement).DateFormat(terapis.DateLayout)
	}
	return v.Validate()
}

type UpdateRequirementDTO struct {
	Nama               *string `json:"nama,omitempty"`
	Lulusan            *string `json:"lulusan,omitempty"`
	Jurusan            *string `json:"jurusan,omitempty"`
	TanggalRequirement *string `json:"tanggalRequirement,omitempty"`
}

func (dto UpdateRequirementDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	if dto.Nama != nil {
		v.Field("nama", *dto.Nama).Required().MaxLength(255)
	}
	if dto.TanggalRequirement != nil {
		v.Field("tanggalRequirement", *dto.TanggalRequirement).DateFormat(terapis.DateLayout)
	}
	return v.Validate()
}

func (dto UpdateRequirementDTO) Fields() map[string]interface{} {
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
	if dto.TanggalRequirement != nil {
		fields["tanggal_requirement"] = *dto.TanggalRequirement
	}
	return fields
}

// AcceptRequirementDTO carries the extra hire details supplied when a
// requisition is accepted; everything else is copied from the requisition.
type AcceptRequirementDTO struct {
	Cabang              *string `json:"cabang,omitempty"`
	TanggalMulaiKontrak *string `json:"tanggalMulaiKontrak,omitempty"`
}

func (dto AcceptRequirementDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	if dto.Cabang != nil {
		v.Field("cabang", *dto.Cabang).MaxLength(100)
	}
	if dto.TanggalMulaiKontrak != nil {
		v.Field("tanggalMulaiKontrak", *dto.TanggalMulaiKontrak).DateFormat(terapis.DateLayout)
	}
	return v.Validate()
}
