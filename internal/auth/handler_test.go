package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/IgorMello0/auraia-hub/internal"
	"github.com/IgorMello0/auraia-hub/internal/auth"
)

type mockAuthService struct {
	claims      *auth.Claims
	validateErr error
}

func (m *mockAuthService) Authenticate(dto auth.LoginDTO) (auth.AuthTokens, error) {
	return auth.AuthTokens{}, auth.ErrInvalidCredentials
}

func (m *mockAuthService) RefreshTokens(refreshToken string) (auth.AuthTokens, error) {
	return auth.AuthTokens{}, auth.ErrInvalidToken
}

func (m *mockAuthService) ValidateAccessToken(tokenString string) (*auth.Claims, error) {
	if m.validateErr != nil {
		return nil, m.validateErr
	}
	return m.claims, nil
}

var _ = Describe("Auth Middleware", func() {
	var (
		svc     *mockAuthService
		handler *auth.Handler

		capturedPrincipal *internal.Principal
		principalPresent  bool
		nextCalled        bool
		next              http.Handler
	)

	BeforeEach(func() {
		svc = &mockAuthService{
			claims: &auth.Claims{
				UserID:      "1",
				Email:       "igor@example.com",
				AccountType: string(internal.AccountTypeProfessional),
			},
		}
		handler = auth.NewHandler(svc)

		capturedPrincipal = nil
		principalPresent = false
		nextCalled = false
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			capturedPrincipal, principalPresent = internal.PrincipalFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})
	})

	serve := func(requirement auth.AuthRequirement, authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		rec := httptest.NewRecorder()
		handler.Middleware(requirement)(next).ServeHTTP(rec, req)
		return rec
	}

	Context("on a required route", func() {
		It("should reject a request without a token", func() {
			rec := serve(auth.AuthRequired, "")

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(nextCalled).To(BeFalse())

			var envelope struct {
				Success bool `json:"success"`
				Error   struct {
					Code    int    `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			Expect(json.NewDecoder(rec.Body).Decode(&envelope)).To(Succeed())
			Expect(envelope.Success).To(BeFalse())
			Expect(envelope.Error.Message).To(Equal("authentication required"))
		})

		It("should reject an invalid token", func() {
			svc.validateErr = auth.ErrInvalidToken

			rec := serve(auth.AuthRequired, "Bearer bad-token")

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(nextCalled).To(BeFalse())
		})

		It("should attach the principal from verified claims", func() {
			rec := serve(auth.AuthRequired, "Bearer good-token")

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(nextCalled).To(BeTrue())
			Expect(principalPresent).To(BeTrue())
			Expect(capturedPrincipal.ID).To(Equal(int64(1)))
			Expect(capturedPrincipal.AccountType).To(Equal(internal.AccountTypeProfessional))
		})

		It("should reject claims that do not rebuild into a principal", func() {
			svc.claims = &auth.Claims{UserID: "not-a-number", AccountType: string(internal.AccountTypeProfessional)}

			rec := serve(auth.AuthRequired, "Bearer good-token")

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(nextCalled).To(BeFalse())
		})
	})

	Context("on an optional route", func() {
		It("should let an anonymous request through without a principal", func() {
			rec := serve(auth.AuthOptional, "")

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(nextCalled).To(BeTrue())
			Expect(principalPresent).To(BeFalse())
		})

		It("should still reject a token that is present but invalid", func() {
			svc.validateErr = auth.ErrTokenExpired

			rec := serve(auth.AuthOptional, "Bearer stale-token")

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(nextCalled).To(BeFalse())
		})

		It("should attach the principal when a valid token is sent", func() {
			rec := serve(auth.AuthOptional, "Bearer good-token")

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(principalPresent).To(BeTrue())
		})
	})

	Context("on a public route", func() {
		It("should never inspect the token", func() {
			svc.validateErr = auth.ErrInvalidToken

			rec := serve(auth.AuthPublic, "Bearer whatever")

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(nextCalled).To(BeTrue())
		})
	})
})
