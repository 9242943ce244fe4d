package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/medlaunch/checkout.api.medlaunch.health/config"
	"github.com/medlaunch/checkout.api.medlaunch.health/dao"
	"github.com/medlaunch/checkout.api.medlaunch.health/interceptors"
	"github.com/medlaunch/checkout.api.medlaunch.health/service"
)

var checkoutService *service.CheckoutService
var submissionService *service.SubmissionService
var payPalService *service.PayPalService

// Register defines the route mappings for the main router and its subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {
	m := dao.NewMongoService(&cfg)
	store := dao.NewRedisSessionStore(&cfg)

	checkoutService = &service.CheckoutService{
		DAO:     m,
		Store:   store,
		Coupons: service.CouponService{Config: cfg},
		Config:  cfg,
	}

	payPalClient, err := service.GetPayPalClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating paypal client")
	}
	payPalService = &service.PayPalService{
		Client: payPalClient,
		DAO:    m,
		Config: cfg,
	}

	submissionService = &service.SubmissionService{
		CheckoutService: checkoutService,
		FileStore:       &service.FileStoreService{Config: cfg},
		PayPal:          payPalService,
		Config:          cfg,
	}

	registerRoutes(mainRouter, cfg, store)
}

// registerRoutes wires the route table and per-subrouter middleware. Split
// from Register so the table can be exercised without backing stores.
func registerRoutes(mainRouter *mux.Router, cfg config.Config, store dao.SessionStore) {
	userAuthInterceptor := &interceptors.UserAuthenticationInterceptor{Config: cfg}
	checkoutAuthInterceptor := &interceptors.CheckoutAuthenticationInterceptor{Store: store}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// Subrouters carry their own middleware chains. Session-scoped routes
	// need both user auth and the checkout session interceptor, the root
	// routes need user auth only, and the callback route neither.

	resourcesRouter := mainRouter.PathPrefix("/checkout-resources").Subrouter()
	resourcesRouter.HandleFunc("", HandleGetCheckoutResources).Methods("GET").Name("get-checkout-resources")

	rootCheckoutRouter := mainRouter.PathPrefix("/checkouts").Subrouter()
	rootCheckoutRouter.HandleFunc("", HandleCreateCheckoutSession).Methods("POST").Name("create-checkout")

	sessionRouter := rootCheckoutRouter.PathPrefix("/{checkout_id}").Subrouter()
	sessionRouter.HandleFunc("", HandleGetCheckoutSession).Methods("GET").Name("get-checkout")
	sessionRouter.HandleFunc("/package", HandleSelectPackage).Methods("PUT").Name("select-package")
	sessionRouter.HandleFunc("/advance", HandleAdvanceStep).Methods("POST").Name("advance-step")
	sessionRouter.HandleFunc("/back", HandleBackStep).Methods("POST").Name("back-step")
	sessionRouter.HandleFunc("/coupon", HandleApplyCoupon).Methods("POST").Name("apply-coupon")
	sessionRouter.HandleFunc("/coupon", HandleRemoveCoupon).Methods("DELETE").Name("remove-coupon")
	sessionRouter.HandleFunc("/proof", HandleValidateProof).Methods("POST").Name("validate-proof")
	sessionRouter.HandleFunc("/submit", HandleSubmitPayment).Methods("POST").Name("submit-checkout")

	callbackRouter := mainRouter.PathPrefix("/callback").Subrouter()
	callbackRouter.HandleFunc("/payments/paypal/{payment_id}", HandlePayPalReturn).Methods("GET").Name("handle-paypal-return")

	resourcesRouter.Use(logHandler, userAuthInterceptor.UserAuthenticationIntercept)
	rootCheckoutRouter.Use(logHandler, userAuthInterceptor.UserAuthenticationIntercept)
	sessionRouter.Use(checkoutAuthInterceptor.CheckoutAuthenticationIntercept)
	callbackRouter.Use(logHandler)
}

// logHandler attaches the service logger to the request context and logs
// each request on completion
func logHandler(next http.Handler) http.Handler {
	access := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Dur("duration", duration).
			Msg("request handled")
	})
	return hlog.NewHandler(log.Logger)(access(next))
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
