package postgres_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	moduleDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/module"
	modulePostgres "github.com/IgorMello0/auraia-hub/internal/module/postgres"
)

func TestModulePostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Module Postgres Suite")
}

// SQLiteModule is a SQLite-compatible model for testing
type SQLiteModule struct {
	ID        int64     `gorm:"primaryKey"`
	Code      string    `gorm:"column:code;uniqueIndex;not null"`
	Name      string    `gorm:"column:name;not null"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (SQLiteModule) TableName() string {
	return "modules"
}

var _ = Describe("Module PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo *modulePostgres.Repository
		ctx  context.Context
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteModule{})
		Expect(err).NotTo(HaveOccurred())

		repo = modulePostgres.NewRepository(db)
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("should create a module", func() {
			m := &moduleDatamodel.Module{Code: "agendamentos", Name: "Agendamentos", IsActive: true}

			err := repo.Create(ctx, m)
			Expect(err).NotTo(HaveOccurred())
			Expect(m.ID).To(BeNumerically(">", 0))
		})

		It("should enforce the unique index on code", func() {
			m1 := &moduleDatamodel.Module{Code: "agendamentos", Name: "Agendamentos", IsActive: true}
			Expect(repo.Create(ctx, m1)).To(Succeed())

			m2 := &moduleDatamodel.Module{Code: "agendamentos", Name: "Outro", IsActive: true}
			Expect(repo.Create(ctx, m2)).To(HaveOccurred())
		})
	})

	Describe("GetByCode", func() {
		BeforeEach(func() {
			m := &moduleDatamodel.Module{Code: "pagamentos", Name: "Pagamentos", IsActive: true}
			Expect(repo.Create(ctx, m)).To(Succeed())
		})

		It("should retrieve a module by its code", func() {
			m, err := repo.GetByCode(ctx, "pagamentos")
			Expect(err).NotTo(HaveOccurred())
			Expect(m).NotTo(BeNil())
			Expect(m.Name).To(Equal("Pagamentos"))
		})

		It("should return nil without error for an unknown code", func() {
			m, err := repo.GetByCode(ctx, "nonexistent")
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(BeNil())
		})
	})

	Describe("GetAllActive", func() {
		BeforeEach(func() {
			active := &moduleDatamodel.Module{Code: "clientes", Name: "Clientes", IsActive: true}
			Expect(repo.Create(ctx, active)).To(Succeed())

			inactive := &moduleDatamodel.Module{Code: "formularios", Name: "Formulários", IsActive: true}
			Expect(repo.Create(ctx, inactive)).To(Succeed())
			inactive.IsActive = false
			Expect(repo.Update(ctx, inactive)).To(Succeed())
		})

		It("should omit inactive modules", func() {
			modules, err := repo.GetAllActive(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(modules).To(HaveLen(1))
			Expect(modules[0].Code).To(Equal("clientes"))
		})

		It("should include everything in GetAll ordered by code", func() {
			modules, err := repo.GetAll(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(modules).To(HaveLen(2))
			Expect(modules[0].Code).To(Equal("clientes"))
			Expect(modules[1].Code).To(Equal("formularios"))
		})
	})
})
