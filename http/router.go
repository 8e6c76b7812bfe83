package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handlers struct {
	Loan    *LoanHandler
	Term    *TermRecommendationHandler
	Debts   *DebtPayoffHandler
	History *HistoryHandler
}

// NewRouter wires the calculation endpoints. limiter may be nil.
func NewRouter(h Handlers, limiter *RateLimiter, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/history", h.History.List)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		if limiter != nil {
			r.Use(RateLimitMiddleware(limiter))
		}

		r.Route("/loan", func(r chi.Router) {
			r.Post("/payment", h.Loan.CalculateLoan)
			r.Post("/amortization", h.Loan.Amortization)
			r.Post("/remaining-balance", h.Loan.RemainingBalance)
			r.Post("/recommend-term", h.Term.RecommendTerm)
		})
		r.Route("/debts", func(r chi.Router) {
			r.Post("/payoff", h.Debts.CalculateDebtPayoff)
			r.Post("/compare", h.Debts.CompareStrategies)
		})
		r.Post("/credit-card/payoff", h.Debts.CreditCardPayoff)
	})

	return r
}
