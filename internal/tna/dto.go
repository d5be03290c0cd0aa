package tna

import (
	errors "github.com/medikacare/terapis-management/internal"
	"github.com/medikacare/terapis-management/internal/core/common/validation"
	"github.com/medikacare/terapis-management/internal/terapis"
)

type TrainingRowDTO struct {
	Topik         string  `json:"topik"`
	Alasan        *string `json:"alasan,omitempty"`
	Peserta       *string `json:"peserta,omitempty"`
	RencanaJadwal *string `json:"rencanaJadwal,omitempty"`
	Biaya         *string `json:"biaya,omitempty"`
}

type ApprovalDTO struct {
	DibuatOleh    *string `json:"dibuatOleh,omitempty"`
	DiperiksaOleh *string `json:"diperiksaOleh,omitempty"`
	DisetujuiOleh *string `json:"disetujuiOleh,omitempty"`
	DiketahuiOleh *string `json:"diketahuiOleh,omitempty"`
}

// SaveTNADTO is the full document payload. Saving replaces any existing
// document for the same therapist; an empty trainingRows array is valid.
type SaveTNADTO struct {
	TerapisID      string           `json:"terapisId"`
	NoDokumen      string           `json:"noDokumen"`
	Revisi         *string          `json:"revisi,omitempty"`
	TanggalBerlaku *string          `json:"tanggalBerlaku,omitempty"`
	Unit           *string          `json:"unit,omitempty"`
	Departemen     *string          `json:"departemen,omitempty"`
	TrainingRows   []TrainingRowDTO `json:"trainingRows"`
	Approval       *ApprovalDTO     `json:"approval,omitempty"`
}

func (dto SaveTNADTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("terapisId", dto.TerapisID).Required()
	v.Field("noDokumen", dto.NoDokumen).MaxLength(100)
	if dto.TanggalBerlaku != nil {
		v.Field("tanggalBerlaku", *dto.TanggalBerlaku).DateFormat(terapis.DateLayout)
	}
	for _, row := range dto.TrainingRows {
		v.Field("trainingRows.topik", row.Topik).Required().MaxLength(255)
	}
	return v.Validate()
}
