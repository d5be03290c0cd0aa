package training

import (
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestTraining(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Training Module Suite")
}

var _ = ginkgo.Describe("FilterWeeks", func() {
	ginkgo.It("keeps valid weeks in first-seen order", func() {
		gomega.Expect(FilterWeeks([]int{24, 3, 52, 1})).To(gomega.Equal([]int{24, 3, 52, 1}))
	})

	ginkgo.It("drops duplicates", func() {
		gomega.Expect(FilterWeeks([]int{5, 5, 12, 5, 12})).To(gomega.Equal([]int{5, 12}))
	})

	ginkgo.It("drops weeks outside the calendar", func() {
		gomega.Expect(FilterWeeks([]int{0, 1, 52, 53, -4, 100})).To(gomega.Equal([]int{1, 52}))
	})

	ginkgo.It("returns an empty slice for empty input", func() {
		gomega.Expect(FilterWeeks(nil)).To(gomega.BeEmpty())
	})
})

var _ = ginkgo.Describe("Module DTO validation", func() {
	ginkgo.It("accepts a complete create payload", func() {
		dto := CreateModuleDTO{Kategori: KategoriBasic, Nama: "Anatomi Dasar", Tahun: 2026}
		gomega.Expect(dto.Validate()).To(gomega.BeNil())
	})

	ginkgo.It("rejects an unknown kategori", func() {
		dto := CreateModuleDTO{Kategori: "SOFTSKILL", Nama: "Anatomi Dasar", Tahun: 2026}
		gomega.Expect(dto.Validate()).NotTo(gomega.BeNil())
	})

	ginkgo.It("rejects an implausible tahun", func() {
		dto := CreateModuleDTO{Kategori: KategoriBasic, Nama: "Anatomi Dasar", Tahun: 1980}
		gomega.Expect(dto.Validate()).NotTo(gomega.BeNil())
	})

	ginkgo.It("only validates the update fields that were sent", func() {
		gomega.Expect(UpdateModuleDTO{}.Validate()).To(gomega.BeNil())

		bad := "SOFTSKILL"
		gomega.Expect(UpdateModuleDTO{Kategori: &bad}.Validate()).NotTo(gomega.BeNil())
	})

	ginkgo.It("maps only the supplied update fields to columns", func() {
		nama := "Anatomi Lanjutan"
		target := true
		fields := UpdateModuleDTO{Nama: &nama, TargetPeserta: &target}.Fields()
		gomega.Expect(fields).To(gomega.HaveLen(2))
		gomega.Expect(fields).To(gomega.HaveKeyWithValue("nama", "Anatomi Lanjutan"))
		gomega.Expect(fields).To(gomega.HaveKeyWithValue("target_peserta", true))
	})
})
