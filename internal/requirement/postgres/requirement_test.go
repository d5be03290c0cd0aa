package postgres_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/medikacare/terapis-management/internal/requirement"
	requirementPostgres "github.com/medikacare/terapis-management/internal/requirement/postgres"
	"github.com/medikacare/terapis-management/internal/terapis"
)

func TestRequirementPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Requirement Postgres Suite")
}

var _ = Describe("Requirement Repository", func() {
	var (
		db   *gorm.DB
		repo requirement.Repository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&requirement.Requirement{}, &terapis.Terapis{})
		Expect(err).NotTo(HaveOccurred())

		repo = requirementPostgres.NewRequirementRepository(db)
	})

	Describe("Accept", func() {
		It("creates the therapist and removes the requisition atomically", func() {
			req := &requirement.Requirement{Nama: "Dewi", Lulusan: "S1", Jurusan: "Fisioterapi"}
			Expect(repo.Create(req)).To(Succeed())

			hire := &terapis.Terapis{
				Nama:    req.Nama,
				Lulusan: req.Lulusan,
				Jurusan: req.Jurusan,
				Cabang:  "Jakarta",
			}
			Expect(repo.Accept(req, hire)).To(Succeed())

			gone, err := repo.GetByID(req.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(gone).To(BeNil())

			var count int64
			Expect(db.Model(&terapis.Terapis{}).Where("nama = ?", "Dewi").Count(&count).Error).To(Succeed())
			Expect(count).To(Equal(int64(1)))
		})

		It("rolls back the therapist when the requisition is already gone", func() {
			req := &requirement.Requirement{Nama: "Dewi"}
			Expect(repo.Create(req)).To(Succeed())
			Expect(repo.Delete(req.ID)).To(Succeed())

			hire := &terapis.Terapis{Nama: req.Nama}
			Expect(repo.Accept(req, hire)).NotTo(Succeed())

			var count int64
			Expect(db.Model(&terapis.Terapis{}).Count(&count).Error).To(Succeed())
			Expect(count).To(BeZero())
		})
	})

	Describe("GetAll", func() {
		It("filters by substring match on name", func() {
			Expect(repo.Create(&requirement.Requirement{Nama: "Dewi Lestari"})).To(Succeed())
			Expect(repo.Create(&requirement.Requirement{Nama: "Budi Santoso"})).To(Succeed())

			items, total, err := repo.GetAll("dewi", 10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
			Expect(items[0].Nama).To(Equal("Dewi Lestari"))
		})
	})
})
