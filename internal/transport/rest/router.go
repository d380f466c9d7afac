package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/IgorMello0/auraia-hub/internal/appointment"
	"github.com/IgorMello0/auraia-hub/internal/auth"
	"github.com/IgorMello0/auraia-hub/internal/authz"
	"github.com/IgorMello0/auraia-hub/internal/catalog"
	"github.com/IgorMello0/auraia-hub/internal/client"
	"github.com/IgorMello0/auraia-hub/internal/conversation"
	moduleDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/module"
	"github.com/IgorMello0/auraia-hub/internal/employee"
	"github.com/IgorMello0/auraia-hub/internal/formtemplate"
	"github.com/IgorMello0/auraia-hub/internal/module"
	"github.com/IgorMello0/auraia-hub/internal/payment"
	"github.com/IgorMello0/auraia-hub/internal/professional"
	"github.com/IgorMello0/auraia-hub/internal/transport/middleware"
	"github.com/IgorMello0/auraia-hub/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// Handlers bundles everything the router mounts. Nil entries are skipped
// so partial wiring (tests, tooling) stays possible.
type Handlers struct {
	Auth         *auth.Handler
	Authz        *authz.Handler
	Module       *module.Handler
	Professional *professional.Handler
	Employee     *employee.Handler
	Client       *client.Handler
	Catalog      *catalog.Handler
	Appointment  *appointment.Handler
	Payment      *payment.Handler
	Conversation *conversation.Handler
	FormTemplate *formtemplate.Handler
}

// RegisterAllRoutes wires the full HTTP surface: public auth and health
// routes, then the authenticated area where each feature group sits behind
// its module gate, and last the administration surface.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, handlers Handlers, authorization *authz.Authorization, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if handlers.Auth != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", handlers.Auth.Login)
				sr.Post("/refresh", handlers.Auth.RefreshToken)
				sr.Post("/logout", handlers.Auth.Logout)
			})
		}

		if handlers.Auth == nil || authorization == nil {
			return
		}

		r.Group(func(pr chi.Router) {
			pr.Use(handlers.Auth.Middleware(auth.AuthRequired))

			if handlers.Professional != nil {
				pr.Get("/me", handlers.Professional.GetProfile)
				pr.Patch("/me", handlers.Professional.UpdateProfile)
			}

			if handlers.Appointment != nil {
				pr.Route("/appointments", func(ar chi.Router) {
					ar.Use(authorization.RequireModule(moduleDatamodel.CodeAgendamentos))
					ar.Post("/", handlers.Appointment.CreateAppointment)
					ar.Get("/", handlers.Appointment.ListAppointments)
					ar.Get("/{id}", handlers.Appointment.GetAppointment)
					ar.Patch("/{id}", handlers.Appointment.UpdateAppointment)
					ar.Patch("/{id}/confirm", handlers.Appointment.ConfirmAppointment)
					ar.Patch("/{id}/cancel", handlers.Appointment.CancelAppointment)
					ar.Patch("/{id}/complete", handlers.Appointment.CompleteAppointment)
				})
			}

			if handlers.Client != nil {
				pr.Route("/clients", func(cr chi.Router) {
					cr.Use(authorization.RequireModule(moduleDatamodel.CodeClientes))
					cr.Post("/", handlers.Client.CreateClient)
					cr.Get("/", handlers.Client.ListClients)
					cr.Get("/{id}", handlers.Client.GetClient)
					cr.Patch("/{id}", handlers.Client.UpdateClient)
					cr.Delete("/{id}", handlers.Client.ArchiveClient)
				})
			}

			if handlers.Catalog != nil {
				pr.Route("/services", func(sr chi.Router) {
					sr.Use(authorization.RequireModule(moduleDatamodel.CodeServicos))
					sr.Post("/", handlers.Catalog.CreateItem)
					sr.Get("/", handlers.Catalog.ListItems)
					sr.Get("/{id}", handlers.Catalog.GetItem)
					sr.Patch("/{id}", handlers.Catalog.UpdateItem)
					sr.Delete("/{id}", handlers.Catalog.DeactivateItem)
				})
			}

			if handlers.Payment != nil {
				pr.Route("/payments", func(pmr chi.Router) {
					pmr.Use(authorization.RequireModule(moduleDatamodel.CodePagamentos))
					pmr.Post("/", handlers.Payment.CreatePayment)
					pmr.Get("/", handlers.Payment.ListPayments)
					pmr.Get("/{id}", handlers.Payment.GetPayment)
					pmr.Patch("/{id}/pay", handlers.Payment.MarkPaid)
					pmr.Patch("/{id}/refund", handlers.Payment.RefundPayment)
				})
			}

			if handlers.Conversation != nil {
				pr.Route("/conversations", func(vr chi.Router) {
					vr.Use(authorization.RequireModule(moduleDatamodel.CodeConversas))
					vr.Post("/", handlers.Conversation.StartConversation)
					vr.Get("/", handlers.Conversation.ListConversations)
					vr.Get("/{id}", handlers.Conversation.GetConversation)
					vr.Post("/{id}/messages", handlers.Conversation.PostMessage)
					vr.Patch("/{id}/close", handlers.Conversation.CloseConversation)
				})
			}

			if handlers.FormTemplate != nil {
				pr.Route("/form-templates", func(fr chi.Router) {
					fr.Use(authorization.RequireModule(moduleDatamodel.CodeFormularios))
					fr.Post("/", handlers.FormTemplate.CreateTemplate)
					fr.Get("/", handlers.FormTemplate.ListTemplates)
					fr.Get("/{id}", handlers.FormTemplate.GetTemplate)
					fr.Patch("/{id}", handlers.FormTemplate.UpdateTemplate)
					fr.Delete("/{id}", handlers.FormTemplate.DeactivateTemplate)
				})
			}

			if handlers.Employee != nil {
				pr.Route("/employees", func(er chi.Router) {
					er.Use(authorization.RequireModule(moduleDatamodel.CodeEquipe))
					er.Post("/", handlers.Employee.CreateEmployee)
					er.Get("/", handlers.Employee.ListEmployees)
					er.Get("/{id}", handlers.Employee.GetEmployee)
					er.Patch("/{id}", handlers.Employee.UpdateEmployee)
					er.Delete("/{id}", handlers.Employee.DeactivateEmployee)
				})
			}

			// Administration surface: permission grants and the module
			// registry. Gated by role, not by module.
			pr.Group(func(ad chi.Router) {
				ad.Use(authorization.RequireAdministrator())

				if handlers.Authz != nil {
					ad.Get("/permissions/{accountType}/{principalID}", handlers.Authz.GetPermissions)
					ad.Put("/permissions/{accountType}/{principalID}", handlers.Authz.SetPermission)
				}

				if handlers.Module != nil {
					ad.Route("/modules", func(mr chi.Router) {
						mr.Get("/", handlers.Module.ListModules)
						mr.Post("/", handlers.Module.CreateModule)
						mr.Get("/{id}", handlers.Module.GetModule)
						mr.Patch("/{id}", handlers.Module.UpdateModule)
					})
				}
			})
		})
	})
}
