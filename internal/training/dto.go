package training

import (
	errors "github.com/medikacare/terapis-management/internal"
	"github.com/medikacare/terapis-management/internal/core/common/validation"
)

type CreateModuleDTO struct {
	Kategori      string  `json:"kategori"`
	Nama          string  `json:"nama"`
	Durasi        *string `json:"durasi,omitempty"`
	KelasLapangan *string `json:"kelasLapangan,omitempty"`
	Trainer       *string `json:"trainer,omitempty"`
	TargetPeserta bool    `json:"targetPeserta"`
	Tahun         int     `json:"tahun"`
	Weeks         []int   `json:"weeks"`
}

func (dto CreateModuleDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("kategori", dto.Kategori).Required().OneOf(Kategoris...)
	v.Field("nama", dto.Nama).Required().MaxLength(255)
	v.Field("tahun", dto.Tahun).Required().IntRange(2000, 2100)
	return v.Validate()
}

type UpdateModuleDTO struct {
	Kategori      *string `json:"kategori,omitempty"`
	Nama          *string `json:"nama,omitempty"`
	Durasi        *string `json:"durasi,omitempty"`
	KelasLapangan *string `json:"kelasLapangan,omitempty"`
	Trainer       *string `json:"trainer,omitempty"`
	TargetPeserta *bool   `json:"targetPeserta,omitempty"`
	Tahun         *int    `json:"tahun,omitempty"`
	Weeks         *[]int  `json:"weeks,omitempty"`
}

func (dto UpdateModuleDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	if dto.Kategori != nil {
		v.Field("kategori", *dto.Kategori).Required().OneOf(Kategoris...)
	}
	if dto.Nama != nil {
		v.Field("nama", *dto.Nama).Required().MaxLength(255)
	}
	if dto.Tahun != nil {
		v.Field("tahun", *dto.Tahun).Required().IntRange(2000, 2100)
	}
	return v.Validate()
}

func (dto UpdateModuleDTO) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if dto.Kategori != nil {
		fields["kategori"] = *dto.Kategori
	}
	if dto.Nama != nil {
		fields["nama"] = *dto.Nama
	}
	if dto.Durasi != nil {
		fields["durasi"] = *dto.Durasi
	}
	if dto.KelasLapangan != nil {
		fields["kelas_lapangan"] = *dto.KelasLapangan
	}
	if dto.Trainer != nil {
		fields["trainer"] = *dto.Trainer
	}
	if dto.TargetPeserta != nil {
		fields["target_peserta"] = *dto.TargetPeserta
	}
	if dto.Tahun != nil {
		fields["tahun"] = *dto.Tahun
	}
	return fields
}

// FilterWeeks deduplicates and drops out-of-range week numbers, preserving
// first-seen order. Invalid weeks never fail the request.
func FilterWeeks(weeks []int) []int {
	seen := make(map[int]bool, len(weeks))
	out := make([]int, 0, len(weeks))
	for _, wk := range weeks {
		if wk < MinWeek || wk > MaxWeek || seen[wk] {
			continue
		}
		seen[wk] = true
		out = append(out, wk)
	}
	return out
}
