package postgres_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/medikacare/terapis-management/internal/evaluasi"
	"github.com/medikacare/terapis-management/internal/terapis"
	terapisPostgres "github.com/medikacare/terapis-management/internal/terapis/postgres"
	"github.com/medikacare/terapis-management/internal/tna"
)

var _ = Describe("Terapis delete cascade", func() {
	var (
		db    *gorm.DB
		repo  terapis.Repository
		owner *terapis.Terapis
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&terapis.Terapis{},
			&tna.TNA{}, &tna.TrainingRow{}, &tna.Approval{},
			&evaluasi.Evaluasi{}, &evaluasi.Objective{}, &evaluasi.SkillRow{}, &evaluasi.FeedbackRow{},
		)
		Expect(err).NotTo(HaveOccurred())

		repo = terapisPostgres.NewTerapisRepository(db)

		owner = &terapis.Terapis{Nama: "Sari Wulandari", Cabang: "Bandung"}
		Expect(repo.Create(owner)).To(Succeed())

		Expect(db.Create(&tna.TNA{
			ID:        "tna-1",
			TerapisID: owner.ID,
			NoDokumen: "TNA-001",
			TrainingRows: []tna.TrainingRow{
				{ID: "row-1", TNAID: "tna-1", Topik: "Anatomi", Urutan: 1},
			},
			Approval: &tna.Approval{ID: "apv-1", TNAID: "tna-1", DibuatOleh: strp("HRD")},
		}).Error).To(Succeed())

		Expect(db.Create(&evaluasi.Evaluasi{
			ID:        "evl-1",
			TerapisID: owner.ID,
			NoDokumen: "EVL-001",
			Objectives: []evaluasi.Objective{
				{ID: "obj-1", EvaluasiID: "evl-1", TujuanTraining: "Teknik dasar", Urutan: 1},
			},
		}).Error).To(Succeed())
	})

	It("removes both documents and their child rows with the therapist", func() {
		Expect(repo.Delete(owner.ID)).To(Succeed())

		for _, model := range []interface{}{
			&tna.TNA{}, &tna.TrainingRow{}, &tna.Approval{},
			&evaluasi.Evaluasi{}, &evaluasi.Objective{},
		} {
			var count int64
			Expect(db.Model(model).Count(&count).Error).To(Succeed())
			Expect(count).To(BeZero())
		}
	})

	It("leaves documents of other therapists alone", func() {
		other := &terapis.Terapis{Nama: "Budi Santoso", Cabang: "Jakarta"}
		Expect(repo.Create(other)).To(Succeed())
		Expect(db.Create(&tna.TNA{ID: "tna-2", TerapisID: other.ID, NoDokumen: "TNA-002"}).Error).To(Succeed())

		Expect(repo.Delete(owner.ID)).To(Succeed())

		var count int64
		Expect(db.Model(&tna.TNA{}).Count(&count).Error).To(Succeed())
		Expect(count).To(Equal(int64(1)))
	})
})

func strp(s string) *string { return &s }
