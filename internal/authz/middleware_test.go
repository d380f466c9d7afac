package authz_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/IgorMello0/auraia-hub/internal"
	"github.com/IgorMello0/auraia-hub/internal/authz"
)

type errorEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeErrorEnvelope(rec *httptest.ResponseRecorder) errorEnvelope {
	var env errorEnvelope
	Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(Succeed())
	return env
}

var _ = Describe("Authorization middleware", func() {
	var (
		registry      *mockModuleRegistry
		grants        *mockGrantStore
		authorization *authz.Authorization
		nextCalled    bool
		next          http.Handler
	)

	companyID := int64(1)
	professional := &internal.Principal{ID: 1, AccountType: internal.AccountTypeProfessional}
	employee := &internal.Principal{ID: 10, AccountType: internal.AccountTypeEmployee, Role: "atendente", CompanyID: &companyID}
	adminEmployee := &internal.Principal{ID: 11, AccountType: internal.AccountTypeEmployee, Role: "admin", CompanyID: &companyID}

	BeforeEach(func() {
		registry = newMockModuleRegistry()
		grants = newMockGrantStore()
		registry.add(1, "agendamentos")
		engine := authz.NewEngine(registry, grants, testLogger())
		authorization = authz.NewAuthorization(engine, testLogger())

		nextCalled = false
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			w.WriteHeader(http.StatusOK)
		})
	})

	request := func(principal *internal.Principal) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
		if principal != nil {
			req = req.WithContext(internal.ContextWithPrincipal(req.Context(), principal))
		}
		return req
	}

	Describe("RequireModule", func() {
		It("returns 401 with the error envelope when no principal is attached", func() {
			rec := httptest.NewRecorder()
			authorization.RequireModule("agendamentos")(next).ServeHTTP(rec, request(nil))

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(nextCalled).To(BeFalse())

			env := decodeErrorEnvelope(rec)
			Expect(env.Success).To(BeFalse())
			Expect(env.Error.Code).To(Equal(http.StatusUnauthorized))
			Expect(env.Error.Message).To(Equal("authentication required"))
		})

		It("lets an allowed principal through unchanged", func() {
			rec := httptest.NewRecorder()
			authorization.RequireModule("agendamentos")(next).ServeHTTP(rec, request(professional))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(nextCalled).To(BeTrue())
		})

		It("returns 403 when the engine denies", func() {
			rec := httptest.NewRecorder()
			authorization.RequireModule("agendamentos")(next).ServeHTTP(rec, request(employee))

			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(nextCalled).To(BeFalse())

			env := decodeErrorEnvelope(rec)
			Expect(env.Error.Message).To(Equal("access to this module is denied"))
		})

		It("returns 500 when the module is missing from the registry", func() {
			rec := httptest.NewRecorder()
			authorization.RequireModule("nonexistent")(next).ServeHTTP(rec, request(professional))

			Expect(rec.Code).To(Equal(http.StatusInternalServerError))
			Expect(nextCalled).To(BeFalse())

			env := decodeErrorEnvelope(rec)
			Expect(env.Error.Message).To(Equal("module is not configured"))
		})

		It("returns 500 when the decision itself fails", func() {
			grants.findError = errSimulated

			rec := httptest.NewRecorder()
			authorization.RequireModule("agendamentos")(next).ServeHTTP(rec, request(professional))

			Expect(rec.Code).To(Equal(http.StatusInternalServerError))
			Expect(nextCalled).To(BeFalse())
		})

		It("lets an admin employee through without any grant rows", func() {
			rec := httptest.NewRecorder()
			authorization.RequireModule("agendamentos")(next).ServeHTTP(rec, request(adminEmployee))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(nextCalled).To(BeTrue())
		})
	})

	Describe("RequireAdministrator", func() {
		It("returns 401 when no principal is attached", func() {
			rec := httptest.NewRecorder()
			authorization.RequireAdministrator()(next).ServeHTTP(rec, request(nil))

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(nextCalled).To(BeFalse())
		})

		It("lets a professional through", func() {
			rec := httptest.NewRecorder()
			authorization.RequireAdministrator()(next).ServeHTTP(rec, request(professional))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(nextCalled).To(BeTrue())
		})

		It("lets an admin employee through", func() {
			rec := httptest.NewRecorder()
			authorization.RequireAdministrator()(next).ServeHTTP(rec, request(adminEmployee))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(nextCalled).To(BeTrue())
		})

		It("refuses a regular employee", func() {
			rec := httptest.NewRecorder()
			authorization.RequireAdministrator()(next).ServeHTTP(rec, request(employee))

			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(nextCalled).To(BeFalse())

			env := decodeErrorEnvelope(rec)
			Expect(env.Error.Message).To(Equal("administrator rights required"))
		})
	})
})
