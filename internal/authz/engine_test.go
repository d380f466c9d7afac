package authz_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/IgorMello0/auraia-hub/internal"
	"github.com/IgorMello0/auraia-hub/internal/authz"
	moduleDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/module"
)

func TestAuthz(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Authz Suite")
}

type mockModuleRegistry struct {
	modules  map[string]*moduleDatamodel.Module
	getError error
}

func newMockModuleRegistry() *mockModuleRegistry {
	return &mockModuleRegistry{modules: make(map[string]*moduleDatamodel.Module)}
}

func (m *mockModuleRegistry) add(id int64, code string) *moduleDatamodel.Module {
	mod := &moduleDatamodel.Module{ID: id, Code: code, Name: code, IsActive: true}
	m.modules[code] = mod
	return mod
}

func (m *mockModuleRegistry) GetByCode(ctx context.Context, code string) (*moduleDatamodel.Module, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	return m.modules[code], nil
}

func (m *mockModuleRegistry) GetByID(ctx context.Context, id int64) (*moduleDatamodel.Module, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	for _, mod := range m.modules {
		if mod.ID == id {
			return mod, nil
		}
	}
	return nil, nil
}

func (m *mockModuleRegistry) GetAllActive(ctx context.Context) ([]*moduleDatamodel.Module, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	var active []*moduleDatamodel.Module
	for _, mod := range m.modules {
		if mod.IsActive {
			active = append(active, mod)
		}
	}
	return active, nil
}

type grantKey struct {
	accountType internal.AccountType
	principalID int64
	moduleID    int64
}

type mockGrantStore struct {
	grants    map[grantKey]*authz.Grant
	findError error
}

func newMockGrantStore() *mockGrantStore {
	return &mockGrantStore{grants: make(map[grantKey]*authz.Grant)}
}

func (m *mockGrantStore) set(accountType internal.AccountType, principalID, moduleID int64, hasAccess bool) {
	key := grantKey{accountType, principalID, moduleID}
	m.grants[key] = &authz.Grant{PrincipalID: principalID, ModuleID: moduleID, HasAccess: hasAccess}
}

func (m *mockGrantStore) FindGrant(ctx context.Context, accountType internal.AccountType, principalID, moduleID int64) (*authz.Grant, error) {
	if m.findError != nil {
		return nil, m.findError
	}
	return m.grants[grantKey{accountType, principalID, moduleID}], nil
}

func (m *mockGrantStore) UpsertGrant(ctx context.Context, accountType internal.AccountType, principalID, moduleID int64, hasAccess bool) (*authz.Grant, error) {
	m.set(accountType, principalID, moduleID, hasAccess)
	return m.grants[grantKey{accountType, principalID, moduleID}], nil
}

func (m *mockGrantStore) FindGrantsForPrincipal(ctx context.Context, accountType internal.AccountType, principalID int64) ([]*authz.Grant, error) {
	if m.findError != nil {
		return nil, m.findError
	}
	var result []*authz.Grant
	for key, g := range m.grants {
		if key.accountType == accountType && key.principalID == principalID {
			result = append(result, g)
		}
	}
	return result, nil
}

var errSimulated = errors.New("simulated failure")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

var _ = Describe("Engine", func() {
	var (
		registry *mockModuleRegistry
		grants   *mockGrantStore
		engine   *authz.Engine
		ctx      context.Context
	)

	companyID := int64(1)
	professional := &internal.Principal{ID: 1, AccountType: internal.AccountTypeProfessional}
	employee := &internal.Principal{ID: 10, AccountType: internal.AccountTypeEmployee, Role: "atendente", CompanyID: &companyID}
	adminEmployee := &internal.Principal{ID: 11, AccountType: internal.AccountTypeEmployee, Role: "admin", CompanyID: &companyID}
	client := &internal.Principal{ID: 100, AccountType: internal.AccountTypeClient, CompanyID: &companyID}

	BeforeEach(func() {
		registry = newMockModuleRegistry()
		grants = newMockGrantStore()
		engine = authz.NewEngine(registry, grants, testLogger())
		ctx = context.Background()
		registry.add(1, "agendamentos")
		registry.add(2, "pagamentos")
	})

	Describe("admin employees", func() {
		It("bypasses every check", func() {
			decision, err := engine.Decide(ctx, adminEmployee, "agendamentos")
			Expect(err).ToNot(HaveOccurred())
			Expect(decision.Allowed).To(BeTrue())
			Expect(decision.Reason).To(Equal(authz.ReasonAdminBypass))
		})

		It("wins over an explicit deny row", func() {
			grants.set(internal.AccountTypeEmployee, adminEmployee.ID, 1, false)

			decision, err := engine.Decide(ctx, adminEmployee, "agendamentos")
			Expect(err).ToNot(HaveOccurred())
			Expect(decision.Allowed).To(BeTrue())
			Expect(decision.Reason).To(Equal(authz.ReasonAdminBypass))
		})

		It("is allowed even for module codes missing from the registry", func() {
			decision, err := engine.Decide(ctx, adminEmployee, "nonexistent")
			Expect(err).ToNot(HaveOccurred())
			Expect(decision.Allowed).To(BeTrue())
		})
	})

	Describe("professionals", func() {
		It("defaults open when no grant row exists", func() {
			decision, err := engine.Decide(ctx, professional, "agendamentos")
			Expect(err).ToNot(HaveOccurred())
			Expect(decision.Allowed).To(BeTrue())
			Expect(decision.Reason).To(Equal(authz.ReasonDefaultOpen))
		})

		It("is denied by an explicit deny row", func() {
			grants.set(internal.AccountTypeProfessional, professional.ID, 1, false)

			decision, err := engine.Decide(ctx, professional, "agendamentos")
			Expect(err).ToNot(HaveOccurred())
			Expect(decision.Allowed).To(BeFalse())
			Expect(decision.Reason).To(Equal(authz.ReasonExplicitDeny))
		})

		It("is allowed by an explicit grant row", func() {
			grants.set(internal.AccountTypeProfessional, professional.ID, 1, true)

			decision, err := engine.Decide(ctx, professional, "agendamentos")
			Expect(err).ToNot(HaveOccurred())
			Expect(decision.Allowed).To(BeTrue())
			Expect(decision.Reason).To(Equal(authz.ReasonExplicitGrant))
		})
	})

	Describe("regular employees", func() {
		It("defaults closed when no grant row exists", func() {
			decision, err := engine.Decide(ctx, employee, "agendamentos")
			Expect(err).ToNot(HaveOccurred())
			Expect(decision.Allowed).To(BeFalse())
			Expect(decision.Reason).To(Equal(authz.ReasonDefaultClosed))
		})

		It("is allowed by an explicit grant row", func() {
			grants.set(internal.AccountTypeEmployee, employee.ID, 1, true)

			decision, err := engine.Decide(ctx, employee, "agendamentos")
			Expect(err).ToNot(HaveOccurred())
			Expect(decision.Allowed).To(BeTrue())
			Expect(decision.Reason).To(Equal(authz.ReasonExplicitGrant))
		})

		It("is denied by an explicit deny row", func() {
			grants.set(internal.AccountTypeEmployee, employee.ID, 1, false)

			decision, err := engine.Decide(ctx, employee, "agendamentos")
			Expect(err).ToNot(HaveOccurred())
			Expect(decision.Allowed).To(BeFalse())
			Expect(decision.Reason).To(Equal(authz.ReasonExplicitDeny))
		})

		It("keeps grants scoped per module", func() {
			grants.set(internal.AccountTypeEmployee, employee.ID, 1, true)

			decision, err := engine.Decide(ctx, employee, "pagamentos")
			Expect(err).ToNot(HaveOccurred())
			Expect(decision.Allowed).To(BeFalse())
			Expect(decision.Reason).To(Equal(authz.ReasonDefaultClosed))
		})

		It("never inherits grants from another employee", func() {
			grants.set(internal.AccountTypeEmployee, int64(99), 1, true)

			decision, err := engine.Decide(ctx, employee, "agendamentos")
			Expect(err).ToNot(HaveOccurred())
			Expect(decision.Allowed).To(BeFalse())
		})
	})

	Describe("clients", func() {
		It("is denied with invalid_account_type", func() {
			decision, err := engine.Decide(ctx, client, "agendamentos")
			Expect(err).ToNot(HaveOccurred())
			Expect(decision.Allowed).To(BeFalse())
			Expect(decision.Reason).To(Equal(authz.ReasonInvalidAccountType))
		})
	})

	Describe("registry problems", func() {
		It("reports unknown module codes as module_not_configured", func() {
			decision, err := engine.Decide(ctx, professional, "nonexistent")
			Expect(err).ToNot(HaveOccurred())
			Expect(decision.Allowed).To(BeFalse())
			Expect(decision.Reason).To(Equal(authz.ReasonModuleNotConfigured))
		})

		It("propagates registry lookup failures as errors", func() {
			registry.getError = errors.New("connection refused")

			_, err := engine.Decide(ctx, professional, "agendamentos")
			Expect(err).To(HaveOccurred())
		})

		It("propagates grant lookup failures as errors", func() {
			grants.findError = errors.New("connection refused")

			_, err := engine.Decide(ctx, professional, "agendamentos")
			Expect(err).To(HaveOccurred())
		})
	})
})
