package httpserver

import (
	"net/http"
	"time"

	"event-manager-go/internal/config"
	"event-manager-go/internal/transport/httpserver/handler"
	authmw "event-manager-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, session *authmw.SessionAuth) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.CORSOrigins))

	r.Get("/health", handlers.Health)

	r.Post("/auth/register", handlers.Register)
	r.Post("/auth/login", handlers.Login)
	r.Post("/auth/logout", handlers.Logout)
	r.Group(func(r chi.Router) {
		r.Use(session.Middleware)
		r.Get("/auth/me", handlers.Me)
	})

	r.Post("/clients/new", handlers.CreateClient)
	r.Get("/clients", handlers.ListClients)
	r.Get("/clients/count", handlers.CountClients)
	r.Get("/clients/{clientId}", handlers.GetClient)
	r.Patch("/clients/{clientId}", handlers.UpdateClient)
	r.Delete("/clients/{clientId}", handlers.DeleteClient)

	r.Post("/events/create", handlers.CreateEvent)
	r.Get("/events", handlers.ListEvents)
	r.Post("/events/participants", handlers.AddParticipant)
	r.Get("/events/{eventId}", handlers.GetEvent)
	r.Get("/events/{eventId}/participants", handlers.ListParticipants)

	r.Put("/events/{eventId}/collections", handlers.UpsertCollection)
	r.Get("/events/{eventId}/collections", handlers.ListCollections)

	r.Post("/events/{eventId}/event_payment_months", handlers.CreatePaymentMonths)
	r.Get("/events/{eventId}/event_payment_months", handlers.ListPaymentMonths)

	r.Post("/events/{eventId}/checklist", handlers.CreateChecklistItem)
	r.Get("/events/{eventId}/checklist", handlers.ListChecklist)
	r.Patch("/events/{eventId}/checklist/{itemId}/done", handlers.ToggleChecklistItem)
	r.Delete("/events/{eventId}/checklist/{itemId}", handlers.DeleteChecklistItem)

	r.Post("/events/{eventId}/group", handlers.CreateGroupItem)
	r.Get("/events/{eventId}/group", handlers.ListGroupItems)
	r.Delete("/events/{eventId}/group/{itemId}", handlers.DeleteGroupItem)

	r.Post("/financial-category", handlers.CreateCategory)
	r.Get("/financial-category", handlers.ListCategories)
	r.Get("/financial-category/count", handlers.CountCategories)
	r.Get("/financial-category/{categoryId}", handlers.GetCategory)
	r.Patch("/financial-category/{categoryId}", handlers.UpdateCategory)
	r.Delete("/financial-category/{categoryId}", handlers.DeleteCategory)

	r.Post("/financial/{eventId}", handlers.CreateTransaction)
	r.Get("/financial/{eventId}", handlers.ListTransactions)
	r.Get("/financial/{eventId}/cashflow", handlers.Cashflow)

	return r
}
