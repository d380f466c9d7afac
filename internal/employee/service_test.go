package employee_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/IgorMello0/auraia-hub/internal"
	"github.com/IgorMello0/auraia-hub/internal/auth"
	accountDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/account"
	"github.com/IgorMello0/auraia-hub/internal/employee"
)

func TestEmployee(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Suite")
}

type mockRepository struct {
	employees []*accountDatamodel.Employee
	nextID    int64
	createErr error
	getErr    error
}

func newMockRepository() *mockRepository {
	return &mockRepository{nextID: 1}
}

func (m *mockRepository) Create(ctx context.Context, e *accountDatamodel.Employee) error {
	if m.createErr != nil {
		return m.createErr
	}
	e.ID = m.nextID
	m.nextID++
	m.employees = append(m.employees, e)
	return nil
}

func (m *mockRepository) GetByID(ctx context.Context, professionalID, id int64) (*accountDatamodel.Employee, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, e := range m.employees {
		if e.ID == id && e.ProfessionalID == professionalID {
			return e, nil
		}
	}
	return nil, nil
}

func (m *mockRepository) GetByEmail(ctx context.Context, email string) (*accountDatamodel.Employee, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, e := range m.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, nil
}

func (m *mockRepository) List(ctx context.Context, professionalID int64, limit, offset int) ([]*accountDatamodel.Employee, error) {
	var result []*accountDatamodel.Employee
	for _, e := range m.employees {
		if e.ProfessionalID == professionalID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockRepository) Update(ctx context.Context, e *accountDatamodel.Employee) error {
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

var _ = Describe("Employee Service", func() {
	var (
		repo    *mockRepository
		service *employee.Service
		ctx     context.Context
	)

	const professionalID = int64(1)

	validDTO := func() employee.CreateEmployeeDTO {
		return employee.CreateEmployeeDTO{
			Name:     "Ana Souza",
			Email:    "ana@example.com",
			Password: "segredo-forte",
			Role:     "admin",
		}
	}

	BeforeEach(func() {
		repo = newMockRepository()
		service = employee.NewService(repo, 4, testLogger())
		ctx = context.Background()
	})

	Describe("CreateEmployee", func() {
		It("should create an active employee without exposing the hash", func() {
			resp, err := service.CreateEmployee(ctx, professionalID, validDTO())
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.ID).To(Equal(int64(1)))
			Expect(resp.ProfessionalID).To(Equal(professionalID))
			Expect(resp.IsActive).To(BeTrue())
			Expect(resp.Role).To(Equal("admin"))
		})

		It("should store a bcrypt hash, never the plain password", func() {
			_, err := service.CreateEmployee(ctx, professionalID, validDTO())
			Expect(err).NotTo(HaveOccurred())

			stored := repo.employees[0]
			Expect(stored.PasswordHash).NotTo(Equal("segredo-forte"))
			Expect(auth.VerifyPassword(stored.PasswordHash, "segredo-forte")).To(Succeed())
		})

		It("should default the role to atendente", func() {
			dto := validDTO()
			dto.Role = ""

			resp, err := service.CreateEmployee(ctx, professionalID, dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Role).To(Equal("atendente"))
		})

		It("should normalize the email to lowercase", func() {
			dto := validDTO()
			dto.Email = " Ana@Example.com "

			resp, err := service.CreateEmployee(ctx, professionalID, dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Email).To(Equal("ana@example.com"))
		})

		It("should reject a duplicate email", func() {
			_, err := service.CreateEmployee(ctx, professionalID, validDTO())
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateEmployee(ctx, professionalID, validDTO())
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(409))
		})

		It("should map a unique-index violation from a concurrent insert", func() {
			repo.createErr = errors.New(`duplicate key value violates unique constraint "idx_employees_email"`)

			_, err := service.CreateEmployee(ctx, professionalID, validDTO())
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(409))
		})

		It("should reject a short password", func() {
			dto := validDTO()
			dto.Password = "curto"

			_, err := service.CreateEmployee(ctx, professionalID, dto)
			Expect(err).To(HaveOccurred())
		})

		It("should reject a malformed email", func() {
			dto := validDTO()
			dto.Email = "not-an-email"

			_, err := service.CreateEmployee(ctx, professionalID, dto)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("UpdateEmployee", func() {
		var created *employee.EmployeeResponse

		BeforeEach(func() {
			var err error
			created, err = service.CreateEmployee(ctx, professionalID, validDTO())
			Expect(err).NotTo(HaveOccurred())
		})

		It("should change the role", func() {
			role := "Atendente"
			resp, err := service.UpdateEmployee(ctx, professionalID, created.ID, employee.UpdateEmployeeDTO{Role: &role})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Role).To(Equal("atendente"))
		})

		It("should reject an unknown employee", func() {
			name := "x"
			_, err := service.UpdateEmployee(ctx, professionalID, 999, employee.UpdateEmployeeDTO{Name: &name})
			Expect(err).To(Equal(internal.ErrEmployeeNotFound))
		})

		It("should scope lookups to the owning professional", func() {
			name := "x"
			_, err := service.UpdateEmployee(ctx, int64(2), created.ID, employee.UpdateEmployeeDTO{Name: &name})
			Expect(err).To(Equal(internal.ErrEmployeeNotFound))
		})
	})

	Describe("DeactivateEmployee", func() {
		It("should revoke login without deleting the record", func() {
			created, err := service.CreateEmployee(ctx, professionalID, validDTO())
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeactivateEmployee(ctx, professionalID, created.ID)).To(Succeed())

			Expect(repo.employees).To(HaveLen(1))
			Expect(repo.employees[0].IsActive).To(BeFalse())
		})
	})
})
