package evaluasi

import (
	errors "github.com/medikacare/terapis-management/internal"
	"github.com/medikacare/terapis-management/internal/core/common/validation"
	"github.com/medikacare/terapis-management/internal/terapis"
)

// maxRowsPerSection caps each child collection of an evaluation form.
const maxRowsPerSection = 5

type ObjectiveDTO struct {
	TujuanTraining string `json:"tujuanTraining"`
}

type SkillRowDTO struct {
	Kemampuan    string `json:"kemampuan"`
	NilaiSebelum *int   `json:"nilaiSebelum,omitempty"`
	NilaiSesudah *int   `json:"nilaiSesudah,omitempty"`
}

type FeedbackRowDTO struct {
	Komentar string `json:"komentar"`
}

// SaveEvaluasiDTO is the full evaluation payload; saving replaces any
// existing document for the same therapist.
type SaveEvaluasiDTO struct {
	TerapisID          string           `json:"terapisId"`
	NoDokumen          string           `json:"noDokumen"`
	Revisi             *string          `json:"revisi,omitempty"`
	TanggalBerlaku     *string          `json:"tanggalBerlaku,omitempty"`
	NamaTraining       *string          `json:"namaTraining,omitempty"`
	TanggalPelaksanaan *string          `json:"tanggalPelaksanaan,omitempty"`
	Objectives         []ObjectiveDTO   `json:"objectives"`
	Skills             []SkillRowDTO    `json:"skills"`
	Feedback           []FeedbackRowDTO `json:"feedback"`
}

func (dto SaveEvaluasiDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("terapisId", dto.TerapisID).Required()
	v.Field("noDokumen", dto.NoDokumen).MaxLength(100)
	if dto.TanggalBerlaku != nil {
		v.Field("tanggalBerlaku", *dto.TanggalBerlaku).DateFormat(terapis.DateLayout)
	}
	if dto.TanggalPelaksanaan != nil {
		v.Field("tanggalPelaksanaan", *dto.TanggalPelaksanaan).DateFormat(terapis.DateLayout)
	}
	v.MaxItems("objectives", len(dto.Objectives), maxRowsPerSection)
	v.MaxItems("skills", len(dto.Skills), maxRowsPerSection)
	v.MaxItems("feedback", len(dto.Feedback), maxRowsPerSection)
	for _, o := range dto.Objectives {
		v.Field("objectives.tujuanTraining", o.TujuanTraining).Required().MaxLength(255)
	}
	for _, s := range dto.Skills {
		v.Field("skills.kemampuan", s.Kemampuan).Required().MaxLength(255)
		if s.NilaiSebelum != nil {
			v.Field("skills.nilaiSebelum", *s.NilaiSebelum).IntRange(0, 100)
		}
		if s.NilaiSesudah != nil {
			v.Field("skills.nilaiSesudah", *s.NilaiSesudah).IntRange(0, 100)
		}
	}
	return v.Validate()
}
