package postgres_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/medikacare/terapis-management/internal/terapis"
	terapisPostgres "github.com/medikacare/terapis-management/internal/terapis/postgres"
)

func TestTerapisPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Terapis Postgres Suite")
}

var _ = Describe("Terapis Repository", func() {
	var (
		db   *gorm.DB
		repo terapis.Repository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.AutoMigrate(&terapis.Terapis{})).To(Succeed())

		repo = terapisPostgres.NewTerapisRepository(db)

		seed := []*terapis.Terapis{
			{Nama: "Sari Wulandari", Cabang: "Bandung", Lulusan: "D3 Fisioterapi"},
			{Nama: "Budi Santoso", Cabang: "Jakarta", Lulusan: "S1 Fisioterapi"},
			{Nama: "Ayu Lestari", Cabang: "Bandung", Lulusan: "SMK Kesehatan"},
		}
		for _, t := range seed {
			Expect(repo.Create(t)).To(Succeed())
		}
	})

	names := func(items []*terapis.Terapis) []string {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.Nama)
		}
		return out
	}

	Describe("GetAll", func() {
		It("returns everyone ordered by name", func() {
			items, total, err := repo.GetAll("", "", 10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(3)))
			Expect(names(items)).To(Equal([]string{"Ayu Lestari", "Budi Santoso", "Sari Wulandari"}))
		})

		It("searches name, branch and education together", func() {
			_, total, err := repo.GetAll("WULANDARI", "", 10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))

			_, total, err = repo.GetAll("jakarta", "", 10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))

			_, total, err = repo.GetAll("fisioterapi", "", 10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(2)))
		})

		It("filters by exact branch", func() {
			items, total, err := repo.GetAll("", "Bandung", 10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(2)))
			Expect(names(items)).To(Equal([]string{"Ayu Lestari", "Sari Wulandari"}))
		})

		It("pages while keeping the full count", func() {
			items, total, err := repo.GetAll("", "", 2, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(3)))
			Expect(names(items)).To(Equal([]string{"Sari Wulandari"}))
		})
	})

	Describe("GetByID", func() {
		It("returns nil without an error for an unknown id", func() {
			rec, err := repo.GetByID("missing")
			Expect(err).NotTo(HaveOccurred())
			Expect(rec).To(BeNil())
		})
	})

	Describe("Update", func() {
		It("writes only the supplied columns and bumps updated_at", func() {
			items, _, err := repo.GetAll("", "Jakarta", 1, 0)
			Expect(err).NotTo(HaveOccurred())
			budi := items[0]

			err = repo.Update(budi.ID, map[string]interface{}{"cabang": "Surabaya"})
			Expect(err).NotTo(HaveOccurred())

			saved, err := repo.GetByID(budi.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(saved.Cabang).To(Equal("Surabaya"))
			Expect(saved.Nama).To(Equal("Budi Santoso"))
			Expect(saved.UpdatedAt.Before(saved.CreatedAt)).To(BeFalse())
		})
	})

	Describe("Delete", func() {
		It("removes the row", func() {
			items, _, err := repo.GetAll("", "Jakarta", 1, 0)
			Expect(err).NotTo(HaveOccurred())

			Expect(repo.Delete(items[0].ID)).To(Succeed())

			rec, err := repo.GetByID(items[0].ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec).To(BeNil())

			_, total, err := repo.GetAll("", "", 10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(2)))
		})
	})
})
