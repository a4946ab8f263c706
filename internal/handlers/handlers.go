package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/adrewards/backend/docs"
	"github.com/adrewards/backend/internal/domain"
	adminhandlers "github.com/adrewards/backend/internal/handlers/admin"
	rewardshandlers "github.com/adrewards/backend/internal/handlers/rewards"
	sessionshandlers "github.com/adrewards/backend/internal/handlers/sessions"
	wallethandlers "github.com/adrewards/backend/internal/handlers/wallet"
	"github.com/adrewards/backend/internal/service"
	"github.com/adrewards/backend/pkg/auth"
	"github.com/adrewards/backend/pkg/utils"
)

type RewardsHandler interface {
	RewardAdView(w http.ResponseWriter, r *http.Request)
	RecordInterstitial(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type SessionsHandler interface {
	StartSession(w http.ResponseWriter, r *http.Request)
	RecordAdCompletion(w http.ResponseWriter, r *http.Request)
	RecordGameResult(w http.ResponseWriter, r *http.Request)
	RecordRetryAd(w http.ResponseWriter, r *http.Request)
	FinishSession(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ProcessLocationPools(w http.ResponseWriter, r *http.Request)
	ProcessGlobalPool(w http.ResponseWriter, r *http.Request)
	Sweep(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

// WalletProvisioner creates the wallet on first authenticated access.
type WalletProvisioner interface {
	EnsureWallet(ctx context.Context, userID string) (*domain.Wallet, bool, error)
}

type Handlers struct {
	RewardsHandler  RewardsHandler
	WalletHandler   WalletHandler
	SessionsHandler SessionsHandler
	AdminHandler    AdminHandler

	provisioner WalletProvisioner
	jwtService  auth.JWTServiceInterface
	adminToken  string
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, adminToken string, conversionTimeout time.Duration) *Handlers {
	return &Handlers{
		RewardsHandler:  rewardshandlers.New(s.RewardService),
		WalletHandler:   wallethandlers.New(s.WalletService, s.WithdrawService),
		SessionsHandler: sessionshandlers.New(s.SessionService),
		AdminHandler:    adminhandlers.New(s.ConversionService, s.SweepService, s.LedgerService, conversionTimeout),
		provisioner:     s.WalletService,
		jwtService:      jwtService,
		adminToken:      adminToken,
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
	r.Route("/api/user", func(r chi.Router) {
		r.Use(auth.Middleware(h.jwtService))
		r.Use(h.provisionWallet)

		r.Post("/adviews", h.RewardsHandler.RewardAdView)
		r.Post("/interstitials", h.RewardsHandler.RecordInterstitial)

		r.Route("/balance", func(r chi.Router) {
			r.Get("/", h.WalletHandler.GetBalance)
			r.Post("/withdraw", h.WalletHandler.Withdraw)
		})
		r.Get("/transactions", h.WalletHandler.GetTransactions)
		r.Get("/withdrawals", h.WalletHandler.GetWithdrawals)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.SessionsHandler.StartSession)
			r.Post("/{id}/ad", h.SessionsHandler.RecordAdCompletion)
			r.Post("/{id}/game", h.SessionsHandler.RecordGameResult)
			r.Post("/{id}/retry-ad", h.SessionsHandler.RecordRetryAd)
			r.Post("/{id}/finish", h.SessionsHandler.FinishSession)
		})
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AdminMiddleware(h.adminToken))

		r.Post("/conversions/location", h.AdminHandler.ProcessLocationPools)
		r.Post("/conversions/global", h.AdminHandler.ProcessGlobalPool)
		r.Post("/sweep", h.AdminHandler.Sweep)
		r.Get("/users/{id}/reconcile", h.AdminHandler.Reconcile)
	})

	return r
}

// provisionWallet runs after auth so every user endpoint can assume the
// wallet row exists.
func (h *Handlers) provisionWallet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(auth.UserIDKey).(string)
		if _, _, err := h.provisioner.EnsureWallet(r.Context(), userID); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		next.ServeHTTP(w, r)
	})
}
