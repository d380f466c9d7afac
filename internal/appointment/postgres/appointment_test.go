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

	"github.com/IgorMello0/auraia-hub/internal/appointment"
	appointmentPostgres "github.com/IgorMello0/auraia-hub/internal/appointment/postgres"
	appointmentDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/appointment"
)

func TestAppointmentPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Appointment Postgres Suite")
}

// SQLiteAppointment is a SQLite-compatible model for testing
type SQLiteAppointment struct {
	ID             int64      `gorm:"primaryKey"`
	CompanyID      int64      `gorm:"column:company_id;not null;index"`
	ProfessionalID int64      `gorm:"column:professional_id;not null;index"`
	ClientID       int64      `gorm:"column:client_id;not null;index"`
	CatalogItemID  *int64     `gorm:"column:catalog_item_id"`
	StartsAt       time.Time  `gorm:"column:starts_at;not null;index"`
	EndsAt         time.Time  `gorm:"column:ends_at;not null"`
	Status         string     `gorm:"column:status;default:'pending'"`
	Notes          string     `gorm:"column:notes"`
	CancelledAt    *time.Time `gorm:"column:cancelled_at"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (SQLiteAppointment) TableName() string {
	return "appointments"
}

var _ = Describe("Appointment PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo *appointmentPostgres.Repository
		ctx  context.Context
		base time.Time
	)

	seed := func(companyID, clientID int64, startsAt, endsAt time.Time, status string) *appointmentDatamodel.Appointment {
		appt := &appointmentDatamodel.Appointment{
			CompanyID:      companyID,
			ProfessionalID: 1,
			ClientID:       clientID,
			StartsAt:       startsAt,
			EndsAt:         endsAt,
			Status:         status,
		}
		Expect(repo.Create(ctx, appt)).To(Succeed())
		return appt
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteAppointment{})
		Expect(err).NotTo(HaveOccurred())

		repo = appointmentPostgres.NewRepository(db)
		ctx = context.Background()
		base = time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	})

	Describe("GetByID", func() {
		It("should retrieve an appointment scoped to its company", func() {
			created := seed(1, 7, base, base.Add(time.Hour), appointmentDatamodel.StatusPending)

			appt, err := repo.GetByID(ctx, 1, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(appt).NotTo(BeNil())
			Expect(appt.ClientID).To(Equal(int64(7)))
		})

		It("should return nil for another company's appointment", func() {
			created := seed(1, 7, base, base.Add(time.Hour), appointmentDatamodel.StatusPending)

			appt, err := repo.GetByID(ctx, 2, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(appt).To(BeNil())
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			seed(1, 7, base, base.Add(time.Hour), appointmentDatamodel.StatusPending)
			seed(1, 7, base.Add(2*time.Hour), base.Add(3*time.Hour), appointmentDatamodel.StatusConfirmed)
			seed(1, 8, base.Add(-2*time.Hour), base.Add(-time.Hour), appointmentDatamodel.StatusCancelled)
			seed(2, 7, base, base.Add(time.Hour), appointmentDatamodel.StatusPending)
		})

		It("should list a company's appointments ordered by start time", func() {
			appts, err := repo.List(ctx, 1, appointment.ListAppointmentsQuery{Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(appts).To(HaveLen(3))
			Expect(appts[0].ClientID).To(Equal(int64(8)))
			Expect(appts[1].StartsAt.Before(appts[2].StartsAt)).To(BeTrue())
		})

		It("should filter by client", func() {
			clientID := int64(8)
			appts, err := repo.List(ctx, 1, appointment.ListAppointmentsQuery{ClientID: &clientID, Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(appts).To(HaveLen(1))
			Expect(appts[0].Status).To(Equal(appointmentDatamodel.StatusCancelled))
		})

		It("should filter by status", func() {
			appts, err := repo.List(ctx, 1, appointment.ListAppointmentsQuery{Status: appointmentDatamodel.StatusConfirmed, Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(appts).To(HaveLen(1))
		})

		It("should filter by time window", func() {
			from := base
			to := base.Add(time.Hour)
			appts, err := repo.List(ctx, 1, appointment.ListAppointmentsQuery{From: &from, To: &to, Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(appts).To(HaveLen(1))
			Expect(appts[0].StartsAt).To(BeTemporally("==", base))
		})

		It("should apply limit and offset", func() {
			appts, err := repo.List(ctx, 1, appointment.ListAppointmentsQuery{Limit: 1, Offset: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(appts).To(HaveLen(1))
			Expect(appts[0].StartsAt).To(BeTemporally("==", base))
		})
	})

	Describe("CountOverlapping", func() {
		It("should count pending and confirmed bookings intersecting the window", func() {
			seed(1, 7, base, base.Add(time.Hour), appointmentDatamodel.StatusPending)
			seed(1, 8, base.Add(30*time.Minute), base.Add(90*time.Minute), appointmentDatamodel.StatusConfirmed)

			count, err := repo.CountOverlapping(ctx, 1, base.Add(45*time.Minute), base.Add(2*time.Hour), 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(2)))
		})

		It("should ignore cancelled and done appointments", func() {
			seed(1, 7, base, base.Add(time.Hour), appointmentDatamodel.StatusCancelled)
			seed(1, 8, base, base.Add(time.Hour), appointmentDatamodel.StatusDone)

			count, err := repo.CountOverlapping(ctx, 1, base, base.Add(time.Hour), 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})

		It("should not count an adjacent slot", func() {
			seed(1, 7, base, base.Add(time.Hour), appointmentDatamodel.StatusConfirmed)

			count, err := repo.CountOverlapping(ctx, 1, base.Add(time.Hour), base.Add(2*time.Hour), 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})

		It("should exclude the appointment being rescheduled", func() {
			own := seed(1, 7, base, base.Add(time.Hour), appointmentDatamodel.StatusConfirmed)

			count, err := repo.CountOverlapping(ctx, 1, base, base.Add(time.Hour), own.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})

		It("should not count other companies' bookings", func() {
			seed(2, 7, base, base.Add(time.Hour), appointmentDatamodel.StatusConfirmed)

			count, err := repo.CountOverlapping(ctx, 1, base, base.Add(time.Hour), 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})
	})
})
