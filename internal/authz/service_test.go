package authz_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/IgorMello0/auraia-hub/internal"
	"github.com/IgorMello0/auraia-hub/internal/authz"
)

type mockEmployeeDirectory struct {
	employers map[int64]int64
	lookupErr error
}

func newMockEmployeeDirectory() *mockEmployeeDirectory {
	return &mockEmployeeDirectory{employers: make(map[int64]int64)}
}

func (m *mockEmployeeDirectory) GetEmployeeProfessionalID(ctx context.Context, employeeID int64) (int64, error) {
	if m.lookupErr != nil {
		return 0, m.lookupErr
	}
	profID, ok := m.employers[employeeID]
	if !ok {
		return 0, internal.ErrEmployeeNotFound
	}
	return profID, nil
}

var _ = Describe("Permission administration service", func() {
	var (
		registry  *mockModuleRegistry
		grants    *mockGrantStore
		directory *mockEmployeeDirectory
		service   *authz.Service
		ctx       context.Context
	)

	companyID := int64(1)
	otherCompanyID := int64(2)
	professional := &internal.Principal{ID: 1, AccountType: internal.AccountTypeProfessional}
	adminEmployee := &internal.Principal{ID: 11, AccountType: internal.AccountTypeEmployee, Role: "admin", CompanyID: &companyID}
	regularEmployee := &internal.Principal{ID: 10, AccountType: internal.AccountTypeEmployee, Role: "atendente", CompanyID: &companyID}
	foreignAdmin := &internal.Principal{ID: 21, AccountType: internal.AccountTypeEmployee, Role: "admin", CompanyID: &otherCompanyID}

	BeforeEach(func() {
		registry = newMockModuleRegistry()
		grants = newMockGrantStore()
		directory = newMockEmployeeDirectory()
		service = authz.NewService(registry, grants, directory, testLogger())
		ctx = context.Background()

		registry.add(1, "agendamentos")
		registry.add(2, "pagamentos")
		inactive := registry.add(3, "formularios")
		inactive.IsActive = false

		// employees 10 and 11 work for professional 1
		directory.employers[10] = 1
		directory.employers[11] = 1
	})

	Describe("GetPermissions", func() {
		It("synthesizes defaults for a professional with no stored rows", func() {
			perms, err := service.GetPermissions(ctx, professional, internal.AccountTypeProfessional, professional.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(perms).To(HaveLen(2))
			for _, p := range perms {
				Expect(p.HasAccess).To(BeTrue())
				Expect(p.Explicit).To(BeFalse())
			}
		})

		It("synthesizes defaults for an employee with no stored rows", func() {
			perms, err := service.GetPermissions(ctx, professional, internal.AccountTypeEmployee, 10)
			Expect(err).ToNot(HaveOccurred())
			Expect(perms).To(HaveLen(2))
			for _, p := range perms {
				Expect(p.HasAccess).To(BeFalse())
				Expect(p.Explicit).To(BeFalse())
			}
		})

		It("overlays stored rows and flags them as explicit", func() {
			grants.set(internal.AccountTypeEmployee, 10, 1, true)

			perms, err := service.GetPermissions(ctx, professional, internal.AccountTypeEmployee, 10)
			Expect(err).ToNot(HaveOccurred())

			byCode := make(map[string]authz.EffectivePermission, len(perms))
			for _, p := range perms {
				byCode[p.ModuleCode] = p
			}
			Expect(byCode["agendamentos"].HasAccess).To(BeTrue())
			Expect(byCode["agendamentos"].Explicit).To(BeTrue())
			Expect(byCode["pagamentos"].HasAccess).To(BeFalse())
			Expect(byCode["pagamentos"].Explicit).To(BeFalse())
		})

		It("omits inactive modules", func() {
			perms, err := service.GetPermissions(ctx, professional, internal.AccountTypeProfessional, professional.ID)
			Expect(err).ToNot(HaveOccurred())
			for _, p := range perms {
				Expect(p.ModuleCode).ToNot(Equal("formularios"))
			}
		})
	})

	Describe("SetPermission", func() {
		It("stores a deny row for the professional's own account", func() {
			perm, err := service.SetPermission(ctx, professional, internal.AccountTypeProfessional, professional.ID, 1, false)
			Expect(err).ToNot(HaveOccurred())
			Expect(perm.HasAccess).To(BeFalse())
			Expect(perm.Explicit).To(BeTrue())
			Expect(perm.ModuleCode).To(Equal("agendamentos"))
		})

		It("is idempotent when repeated with the same value", func() {
			_, err := service.SetPermission(ctx, professional, internal.AccountTypeEmployee, 10, 1, true)
			Expect(err).ToNot(HaveOccurred())

			perm, err := service.SetPermission(ctx, professional, internal.AccountTypeEmployee, 10, 1, true)
			Expect(err).ToNot(HaveOccurred())
			Expect(perm.HasAccess).To(BeTrue())
		})

		It("flips an existing row instead of inserting a second one", func() {
			_, err := service.SetPermission(ctx, professional, internal.AccountTypeEmployee, 10, 1, true)
			Expect(err).ToNot(HaveOccurred())

			perm, err := service.SetPermission(ctx, professional, internal.AccountTypeEmployee, 10, 1, false)
			Expect(err).ToNot(HaveOccurred())
			Expect(perm.HasAccess).To(BeFalse())

			stored, err := grants.FindGrantsForPrincipal(ctx, internal.AccountTypeEmployee, 10)
			Expect(err).ToNot(HaveOccurred())
			Expect(stored).To(HaveLen(1))
		})

		It("rejects unknown module ids", func() {
			_, err := service.SetPermission(ctx, professional, internal.AccountTypeEmployee, 10, 999, true)
			Expect(err).To(Equal(internal.ErrModuleNotFound))
		})
	})

	Describe("caller authorization", func() {
		It("refuses an unauthenticated caller", func() {
			_, err := service.GetPermissions(ctx, nil, internal.AccountTypeEmployee, 10)
			Expect(err).To(Equal(internal.ErrUnauthenticated))
		})

		It("refuses a client target", func() {
			_, err := service.GetPermissions(ctx, professional, internal.AccountTypeClient, 100)
			Expect(err).To(Equal(internal.ErrInvalidAccountType))
		})

		It("refuses a professional managing another professional", func() {
			_, err := service.GetPermissions(ctx, professional, internal.AccountTypeProfessional, int64(2))
			Expect(err).To(Equal(internal.ErrForbidden))
		})

		It("refuses a professional managing someone else's employee", func() {
			directory.employers[30] = 2

			_, err := service.SetPermission(ctx, professional, internal.AccountTypeEmployee, 30, 1, true)
			Expect(err).To(Equal(internal.ErrForbidden))
		})

		It("reports an unknown employee target", func() {
			_, err := service.SetPermission(ctx, professional, internal.AccountTypeEmployee, 999, 1, true)
			Expect(err).To(Equal(internal.ErrEmployeeNotFound))
		})

		It("lets an admin employee manage a colleague of the same company", func() {
			_, err := service.SetPermission(ctx, adminEmployee, internal.AccountTypeEmployee, 10, 1, true)
			Expect(err).ToNot(HaveOccurred())
		})

		It("lets an admin employee manage the owning professional", func() {
			_, err := service.GetPermissions(ctx, adminEmployee, internal.AccountTypeProfessional, companyID)
			Expect(err).ToNot(HaveOccurred())
		})

		It("refuses an admin employee reaching into another company", func() {
			_, err := service.SetPermission(ctx, foreignAdmin, internal.AccountTypeEmployee, 10, 1, true)
			Expect(err).To(Equal(internal.ErrForbidden))
		})

		It("refuses a regular employee entirely", func() {
			_, err := service.GetPermissions(ctx, regularEmployee, internal.AccountTypeEmployee, regularEmployee.ID)
			Expect(err).To(Equal(internal.ErrForbidden))
		})
	})
})
