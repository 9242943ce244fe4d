package interceptors

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/medlaunch/checkout.api.medlaunch.health/dao"
	"github.com/medlaunch/checkout.api.medlaunch.health/helpers"
	"github.com/medlaunch/checkout.api.medlaunch.health/models"
)

// CheckoutAuthenticationInterceptor loads the checkout session named in the
// URL and checks it belongs to the authenticated user
type CheckoutAuthenticationInterceptor struct {
	Store dao.SessionStore
}

// CheckoutAuthenticationIntercept loads the session for checkout_id and
// stores it in the request context for the handler. 404 when the session has
// expired or never existed, 403 when it belongs to another user.
func (cai CheckoutAuthenticationInterceptor) CheckoutAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		id := vars["checkout_id"]
		if id == "" {
			log.Ctx(r.Context()).Error().Msg("CheckoutAuthenticationInterceptor error: no checkout id")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		userDetails, ok := r.Context().Value(helpers.ContextKeyUserDetails).(models.AuthUserDetails)
		if !ok {
			log.Ctx(r.Context()).Error().Msg("CheckoutAuthenticationInterceptor error: invalid AuthUserDetails from UserAuthenticationInterceptor")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		session, err := cai.Store.Load(r.Context(), id)
		if err != nil {
			log.Ctx(r.Context()).Error().Err(err).Msg("CheckoutAuthenticationInterceptor error when loading checkout session")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if session == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if session.UserID != userDetails.ID {
			log.Ctx(r.Context()).Error().Str("checkout_id", id).Msg("CheckoutAuthenticationInterceptor unauthorised: session belongs to another user")
			w.WriteHeader(http.StatusForbidden)
			return
		}

		ctx := helpers.WithCheckoutSession(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
