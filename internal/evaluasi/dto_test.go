package evaluasi

import (
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	apperrors "github.com/medikacare/terapis-management/internal"
)

func TestEvaluasi(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Evaluasi Module Suite")
}

var _ = ginkgo.Describe("SaveEvaluasiDTO validation", func() {
	intp := func(n int) *int { return &n }

	valid := func() SaveEvaluasiDTO {
		return SaveEvaluasiDTO{
			TerapisID:  "t-1",
			NoDokumen:  "EVL-001",
			Objectives: []ObjectiveDTO{{TujuanTraining: "Menguasai teknik dasar"}},
			Skills: []SkillRowDTO{
				{Kemampuan: "Pijat refleksi", NilaiSebelum: intp(40), NilaiSesudah: intp(85)},
			},
			Feedback: []FeedbackRowDTO{{Komentar: "Perlu latihan lanjutan"}},
		}
	}

	expectValidationError := func(dto SaveEvaluasiDTO) {
		err := dto.Validate()
		gomega.Expect(err).NotTo(gomega.BeNil())
		gomega.Expect(err.Type).To(gomega.Equal(apperrors.ErrorTypeValidation))
	}

	ginkgo.It("accepts a complete form", func() {
		gomega.Expect(valid().Validate()).To(gomega.BeNil())
	})

	ginkgo.It("requires the owning therapist", func() {
		dto := valid()
		dto.TerapisID = ""
		expectValidationError(dto)
	})

	ginkgo.It("caps every section at five rows", func() {
		dto := valid()
		for i := 0; i < 6; i++ {
			dto.Feedback = append(dto.Feedback, FeedbackRowDTO{Komentar: "x"})
		}
		expectValidationError(dto)
	})

	ginkgo.It("accepts exactly five rows per section", func() {
		dto := valid()
		dto.Objectives = nil
		for i := 0; i < 5; i++ {
			dto.Objectives = append(dto.Objectives, ObjectiveDTO{TujuanTraining: "Tujuan"})
		}
		gomega.Expect(dto.Validate()).To(gomega.BeNil())
	})

	ginkgo.It("keeps scores between 0 and 100", func() {
		dto := valid()
		dto.Skills[0].NilaiSesudah = intp(120)
		expectValidationError(dto)
	})

	ginkgo.It("checks the date format of tanggal pelaksanaan", func() {
		dto := valid()
		bad := "30-08-2026"
		dto.TanggalPelaksanaan = &bad
		expectValidationError(dto)
	})

	ginkgo.It("rejects a skill row without a name", func() {
		dto := valid()
		dto.Skills = append(dto.Skills, SkillRowDTO{NilaiSebelum: intp(10)})
		expectValidationError(dto)
	})
})
