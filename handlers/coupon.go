package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/medlaunch/checkout.api.medlaunch.health/models"
	"github.com/medlaunch/checkout.api.medlaunch.health/service"
	"github.com/medlaunch/checkout.api.medlaunch.health/utils"
)

// HandleApplyCoupon validates a coupon code against the coupon API and
// stores the outcome on the session. A rejected code is a 200: the rejection
// reason travels in the session's coupon state.
func HandleApplyCoupon(w http.ResponseWriter, req *http.Request) {
	session, ok := sessionFromContext(w, req)
	if !ok {
		return
	}

	var couponRequest models.ApplyCouponRequest
	if err := json.NewDecoder(req.Body).Decode(&couponRequest); err != nil {
		log.Ctx(req.Context()).Error().Err(err).Msg("request body invalid")
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validator.New().Struct(couponRequest); err != nil {
		log.Ctx(req.Context()).Error().Err(err).Msg("invalid request to apply coupon")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	checkoutSession, responseType, err := checkoutService.ApplyCoupon(req.Context(), session, couponRequest.Code)
	if err != nil {
		if responseType == service.Error {
			// A failed coupon RPC is retryable; the client waits out the
			// cooldown before offering another attempt
			w.Header().Set("Retry-After", strconv.Itoa(checkoutService.Config.RetryCooldownSeconds))
		}
		handleErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSON(w, req, checkoutSession)
}

// HandleRemoveCoupon clears any coupon state from the session. Removing when
// nothing is applied is a no-op, not an error.
func HandleRemoveCoupon(w http.ResponseWriter, req *http.Request) {
	session, ok := sessionFromContext(w, req)
	if !ok {
		return
	}

	checkoutSession, responseType, err := checkoutService.RemoveCoupon(req.Context(), session)
	if err != nil {
		handleErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSON(w, req, checkoutSession)
}
