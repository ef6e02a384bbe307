package handlers

import (
	"net/http"

	_ "github.com/splittr/splittr/docs"
	authhandlers "github.com/splittr/splittr/internal/handlers/auth"
	friendhandlers "github.com/splittr/splittr/internal/handlers/friends"
	ledgerhandlers "github.com/splittr/splittr/internal/handlers/ledger"
	"github.com/splittr/splittr/internal/service"
	"github.com/splittr/splittr/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type FriendHandler interface {
	SearchUsers(w http.ResponseWriter, r *http.Request)
	ListFriends(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	SendRequest(w http.ResponseWriter, r *http.Request)
	AcceptRequest(w http.ResponseWriter, r *http.Request)
	DeclineRequest(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	CreateExpense(w http.ResponseWriter, r *http.Request)
	GetPaidExpenses(w http.ResponseWriter, r *http.Request)
	GetOwedDebts(w http.ResponseWriter, r *http.Request)
	GetBalances(w http.ResponseWriter, r *http.Request)
	RecordPayment(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	FriendHandler FriendHandler
	LedgerHandler LedgerHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		FriendHandler: friendhandlers.New(s.FriendService),
		LedgerHandler: ledgerhandlers.New(s.LedgerService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/users/search", h.FriendHandler.SearchUsers)
			r.Route("/friends", func(r chi.Router) {
				r.Get("/", h.FriendHandler.ListFriends)
				r.Route("/requests", func(r chi.Router) {
					r.Get("/", h.FriendHandler.ListRequests)
					r.Post("/{userID}", h.FriendHandler.SendRequest)
					r.Post("/{requestID}/accept", h.FriendHandler.AcceptRequest)
					r.Post("/{requestID}/decline", h.FriendHandler.DeclineRequest)
				})
			})
			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", h.LedgerHandler.CreateExpense)
				r.Get("/paid", h.LedgerHandler.GetPaidExpenses)
				r.Get("/owed", h.LedgerHandler.GetOwedDebts)
			})
			r.Get("/balances", h.LedgerHandler.GetBalances)
			r.Post("/settlements", h.LedgerHandler.RecordPayment)
		})
	})

	return r
}
