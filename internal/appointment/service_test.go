package appointment_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/IgorMello0/auraia-hub/internal"
	"github.com/IgorMello0/auraia-hub/internal/appointment"
	appointmentDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/appointment"
	"github.com/IgorMello0/auraia-hub/internal/core/events"
)

func TestAppointment(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Appointment Suite")
}

type mockRepository struct {
	appointments []*appointmentDatamodel.Appointment
	nextID       int64
	overlapCount int64
	createErr    error
	getErr       error
	updateErr    error
	overlapErr   error
}

func newMockRepository() *mockRepository {
	return &mockRepository{nextID: 1}
}

func (m *mockRepository) Create(ctx context.Context, appt *appointmentDatamodel.Appointment) error {
	if m.createErr != nil {
		return m.createErr
	}
	appt.ID = m.nextID
	m.nextID++
	m.appointments = append(m.appointments, appt)
	return nil
}

func (m *mockRepository) GetByID(ctx context.Context, companyID, id int64) (*appointmentDatamodel.Appointment, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, appt := range m.appointments {
		if appt.ID == id && appt.CompanyID == companyID {
			return appt, nil
		}
	}
	return nil, nil
}

func (m *mockRepository) List(ctx context.Context, companyID int64, query appointment.ListAppointmentsQuery) ([]*appointmentDatamodel.Appointment, error) {
	var result []*appointmentDatamodel.Appointment
	for _, appt := range m.appointments {
		if appt.CompanyID == companyID {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (m *mockRepository) Update(ctx context.Context, appt *appointmentDatamodel.Appointment) error {
	return m.updateErr
}

func (m *mockRepository) CountOverlapping(ctx context.Context, companyID int64, startsAt, endsAt time.Time, excludeID int64) (int64, error) {
	if m.overlapErr != nil {
		return 0, m.overlapErr
	}
	return m.overlapCount, nil
}

type mockClientChecker struct {
	exists   bool
	checkErr error
}

func (m *mockClientChecker) Exists(ctx context.Context, companyID, clientID int64) (bool, error) {
	if m.checkErr != nil {
		return false, m.checkErr
	}
	return m.exists, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

var _ = Describe("Appointment Service", func() {
	var (
		repo    *mockRepository
		clients *mockClientChecker
		bus     *events.EventBus
		service *appointment.Service
		ctx     context.Context
	)

	const companyID = int64(1)
	starts := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	ends := starts.Add(time.Hour)

	validDTO := func() appointment.CreateAppointmentDTO {
		return appointment.CreateAppointmentDTO{
			ClientID: 7,
			StartsAt: starts,
			EndsAt:   ends,
			Notes:    "corte e barba",
		}
	}

	BeforeEach(func() {
		repo = newMockRepository()
		clients = &mockClientChecker{exists: true}
		bus = events.NewEventBus(testLogger())
		service = appointment.NewService(repo, clients, bus, testLogger())
		ctx = context.Background()
	})

	Describe("CreateAppointment", func() {
		It("should create a pending appointment", func() {
			appt, err := service.CreateAppointment(ctx, companyID, validDTO())
			Expect(err).NotTo(HaveOccurred())
			Expect(appt.ID).To(Equal(int64(1)))
			Expect(appt.Status).To(Equal(appointmentDatamodel.StatusPending))
			Expect(appt.CompanyID).To(Equal(companyID))
			Expect(appt.ClientID).To(Equal(int64(7)))
		})

		It("should reject an unknown client", func() {
			clients.exists = false

			_, err := service.CreateAppointment(ctx, companyID, validDTO())
			Expect(err).To(Equal(internal.ErrClientNotFound))
		})

		It("should reject an overlapping time slot", func() {
			repo.overlapCount = 1

			_, err := service.CreateAppointment(ctx, companyID, validDTO())
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(409))
		})

		It("should reject a window that ends before it starts", func() {
			dto := validDTO()
			dto.EndsAt = dto.StartsAt.Add(-time.Hour)

			_, err := service.CreateAppointment(ctx, companyID, dto)
			Expect(err).To(HaveOccurred())
		})

		It("should require a client id", func() {
			dto := validDTO()
			dto.ClientID = 0

			_, err := service.CreateAppointment(ctx, companyID, dto)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("status transitions", func() {
		var appt *appointmentDatamodel.Appointment

		BeforeEach(func() {
			var err error
			appt, err = service.CreateAppointment(ctx, companyID, validDTO())
			Expect(err).NotTo(HaveOccurred())
		})

		It("should confirm a pending appointment", func() {
			confirmed, err := service.ConfirmAppointment(ctx, companyID, appt.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(confirmed.Status).To(Equal(appointmentDatamodel.StatusConfirmed))
		})

		It("should not confirm twice", func() {
			_, err := service.ConfirmAppointment(ctx, companyID, appt.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ConfirmAppointment(ctx, companyID, appt.ID)
			Expect(err).To(Equal(internal.ErrCannotModifyAppointment))
		})

		It("should complete only a confirmed appointment", func() {
			_, err := service.CompleteAppointment(ctx, companyID, appt.ID)
			Expect(err).To(Equal(internal.ErrCannotModifyAppointment))

			_, err = service.ConfirmAppointment(ctx, companyID, appt.ID)
			Expect(err).NotTo(HaveOccurred())

			done, err := service.CompleteAppointment(ctx, companyID, appt.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(done.Status).To(Equal(appointmentDatamodel.StatusDone))
		})

		It("should cancel from pending and record the timestamp", func() {
			cancelled, err := service.CancelAppointment(ctx, companyID, appt.ID, "cliente desistiu")
			Expect(err).NotTo(HaveOccurred())
			Expect(cancelled.Status).To(Equal(appointmentDatamodel.StatusCancelled))
			Expect(cancelled.CancelledAt).NotTo(BeNil())
		})

		It("should cancel from confirmed", func() {
			_, err := service.ConfirmAppointment(ctx, companyID, appt.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CancelAppointment(ctx, companyID, appt.ID, "")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should refuse to cancel a finished appointment", func() {
			_, err := service.ConfirmAppointment(ctx, companyID, appt.ID)
			Expect(err).NotTo(HaveOccurred())
			_, err = service.CompleteAppointment(ctx, companyID, appt.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CancelAppointment(ctx, companyID, appt.ID, "")
			Expect(err).To(Equal(internal.ErrCannotModifyAppointment))
		})

		It("should refuse to cancel twice", func() {
			_, err := service.CancelAppointment(ctx, companyID, appt.ID, "")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CancelAppointment(ctx, companyID, appt.ID, "")
			Expect(err).To(Equal(internal.ErrCannotModifyAppointment))
		})

		It("should publish an event on confirmation", func() {
			received := make(chan events.Event, 1)
			bus.Subscribe(events.EventTypeAppointmentConfirmed, func(ctx context.Context, e events.Event) error {
				received <- e
				return nil
			})

			_, err := service.ConfirmAppointment(ctx, companyID, appt.ID)
			Expect(err).NotTo(HaveOccurred())

			var event events.Event
			Eventually(received).Should(Receive(&event))
			confirmed, ok := event.(*events.AppointmentConfirmedEvent)
			Expect(ok).To(BeTrue())
			Expect(confirmed.AppointmentID).To(Equal(appt.ID))
			Expect(confirmed.ClientID).To(Equal(int64(7)))
		})

		It("should publish an event on cancellation", func() {
			received := make(chan events.Event, 1)
			bus.Subscribe(events.EventTypeAppointmentCancelled, func(ctx context.Context, e events.Event) error {
				received <- e
				return nil
			})

			_, err := service.CancelAppointment(ctx, companyID, appt.ID, "imprevisto")
			Expect(err).NotTo(HaveOccurred())

			var event events.Event
			Eventually(received).Should(Receive(&event))
			cancelled, ok := event.(*events.AppointmentCancelledEvent)
			Expect(ok).To(BeTrue())
			Expect(cancelled.Reason).To(Equal("imprevisto"))
		})
	})

	Describe("UpdateAppointment", func() {
		var appt *appointmentDatamodel.Appointment

		BeforeEach(func() {
			var err error
			appt, err = service.CreateAppointment(ctx, companyID, validDTO())
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reschedule when both ends of the window are given", func() {
			newStart := starts.Add(24 * time.Hour)
			newEnd := newStart.Add(time.Hour)

			updated, err := service.UpdateAppointment(ctx, companyID, appt.ID, appointment.UpdateAppointmentDTO{
				StartsAt: &newStart,
				EndsAt:   &newEnd,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.StartsAt).To(Equal(newStart))
		})

		It("should reject rescheduling only one end of the window", func() {
			newStart := starts.Add(24 * time.Hour)

			_, err := service.UpdateAppointment(ctx, companyID, appt.ID, appointment.UpdateAppointmentDTO{
				StartsAt: &newStart,
			})
			Expect(err).To(HaveOccurred())
		})

		It("should reject rescheduling into an occupied slot", func() {
			repo.overlapCount = 1
			newStart := starts.Add(24 * time.Hour)
			newEnd := newStart.Add(time.Hour)

			_, err := service.UpdateAppointment(ctx, companyID, appt.ID, appointment.UpdateAppointmentDTO{
				StartsAt: &newStart,
				EndsAt:   &newEnd,
			})
			Expect(err).To(HaveOccurred())
		})

		It("should refuse updates on a cancelled appointment", func() {
			_, err := service.CancelAppointment(ctx, companyID, appt.ID, "")
			Expect(err).NotTo(HaveOccurred())

			notes := "novo horário"
			_, err = service.UpdateAppointment(ctx, companyID, appt.ID, appointment.UpdateAppointmentDTO{Notes: &notes})
			Expect(err).To(Equal(internal.ErrCannotModifyAppointment))
		})
	})

	Describe("tenant scoping", func() {
		It("should not expose another company's appointment", func() {
			appt, err := service.CreateAppointment(ctx, companyID, validDTO())
			Expect(err).NotTo(HaveOccurred())

			_, err = service.GetAppointment(ctx, int64(2), appt.ID)
			Expect(err).To(Equal(internal.ErrAppointmentNotFound))
		})
	})

	Describe("Exists", func() {
		It("should report membership by company", func() {
			appt, err := service.CreateAppointment(ctx, companyID, validDTO())
			Expect(err).NotTo(HaveOccurred())

			ok, err := service.Exists(ctx, companyID, appt.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			ok, err = service.Exists(ctx, int64(2), appt.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})

		It("should propagate lookup failures", func() {
			repo.getErr = errors.New("connection refused")

			_, err := service.Exists(ctx, companyID, 1)
			Expect(err).To(HaveOccurred())
		})
	})
})
