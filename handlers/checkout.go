package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/medlaunch/checkout.api.medlaunch.health/helpers"
	"github.com/medlaunch/checkout.api.medlaunch.health/models"
	"github.com/medlaunch/checkout.api.medlaunch.health/service"
	"github.com/medlaunch/checkout.api.medlaunch.health/utils"
)

// handleErrorResponse maps a service ResponseType onto an HTTP status
func handleErrorResponse(w http.ResponseWriter, req *http.Request, responseType service.ResponseType, err error) {
	log.Ctx(req.Context()).Error().Err(err).Str("service_response_type", responseType.String()).Msg("checkout request failed")
	switch responseType {
	case service.InvalidData, service.MissingProof:
		w.WriteHeader(http.StatusBadRequest)
	case service.Forbidden:
		w.WriteHeader(http.StatusForbidden)
	case service.NotFound:
		w.WriteHeader(http.StatusNotFound)
	case service.NotAuthenticated:
		w.WriteHeader(http.StatusUnauthorized)
	case service.UploadFailed:
		// Retryable gateway failure; the client waits out the cooldown
		// before offering another attempt.
		w.Header().Set("Retry-After", strconv.Itoa(checkoutService.Config.RetryCooldownSeconds))
		w.WriteHeader(http.StatusBadGateway)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// sessionFromContext fetches the session stored by the checkout
// authentication interceptor, writing a 500 when it is missing
func sessionFromContext(w http.ResponseWriter, req *http.Request) (*models.CheckoutSessionDB, bool) {
	session, ok := helpers.CheckoutSessionFromContext(req.Context())
	if !ok {
		log.Ctx(req.Context()).Error().Msg("invalid CheckoutSessionDB in request context")
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}
	return session, true
}

// mergeCheckoutQueryParams fills fields the body left empty from the query
// string, so marketing links can start a checkout without a JSON payload.
// Body values take precedence
func mergeCheckoutQueryParams(req *http.Request, incoming *models.IncomingCheckoutRequest) {
	query := req.URL.Query()
	if incoming.PackageID == "" {
		incoming.PackageID = query.Get("package")
	}
	if incoming.Promotion == "" {
		incoming.Promotion = query.Get("promotion")
	}
	if incoming.MilestoneStepID == "" {
		incoming.MilestoneStepID = query.Get("step_id")
	}
	if incoming.AppointmentSlotID == "" {
		incoming.AppointmentSlotID = query.Get("appointment_slot_id")
	}
	if incoming.VoucherSlotID == "" {
		incoming.VoucherSlotID = query.Get("voucher_slot_id")
	}
	if incoming.CaseID == "" {
		incoming.CaseID = query.Get("case_id")
	}
}

// HandleCreateCheckoutSession creates a checkout session and returns it with
// a journey URL for the calling app to redirect to
func HandleCreateCheckoutSession(w http.ResponseWriter, req *http.Request) {
	var incoming models.IncomingCheckoutRequest
	if req.Body != nil {
		// An empty body is a valid plain package-first checkout
		err := json.NewDecoder(req.Body).Decode(&incoming)
		if err != nil && err.Error() != "EOF" {
			log.Ctx(req.Context()).Error().Err(err).Msg("request body invalid")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}
	mergeCheckoutQueryParams(req, &incoming)

	checkoutSession, responseType, err := checkoutService.CreateCheckoutSession(req, incoming)
	if err != nil {
		handleErrorResponse(w, req, responseType, err)
		return
	}

	w.Header().Set("Location", checkoutSession.Links.Journey)
	utils.WriteJSONWithStatus(w, req, checkoutSession, http.StatusCreated)

	log.Ctx(req.Context()).Info().Str("checkout_id", checkoutSession.MetaData.ID).Msg("created checkout session")
}

// HandleGetCheckoutSession returns the checkout session loaded by the
// interceptor, re-resolving its selections against the current catalog
func HandleGetCheckoutSession(w http.ResponseWriter, req *http.Request) {
	session, ok := sessionFromContext(w, req)
	if !ok {
		return
	}

	checkoutSession, responseType, err := checkoutService.GetCheckoutSession(req.Context(), session.ID)
	if err != nil {
		handleErrorResponse(w, req, responseType, err)
		return
	}
	if checkoutSession == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, req, checkoutSession)
}

// HandleSelectPackage sets the selected package on the session and advances
// it to the payment details step
func HandleSelectPackage(w http.ResponseWriter, req *http.Request) {
	session, ok := sessionFromContext(w, req)
	if !ok {
		return
	}

	var selectRequest models.SelectPackageRequest
	if err := json.NewDecoder(req.Body).Decode(&selectRequest); err != nil {
		log.Ctx(req.Context()).Error().Err(err).Msg("request body invalid")
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validator.New().Struct(selectRequest); err != nil {
		log.Ctx(req.Context()).Error().Err(err).Msg("invalid request to select package")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	checkoutSession, responseType, err := checkoutService.SelectPackageForSession(req.Context(), session, selectRequest.PackageID)
	if err != nil {
		handleErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSON(w, req, checkoutSession)
}

// HandleAdvanceStep moves the session forward one step
func HandleAdvanceStep(w http.ResponseWriter, req *http.Request) {
	session, ok := sessionFromContext(w, req)
	if !ok {
		return
	}

	checkoutSession, responseType, err := checkoutService.AdvanceStep(req.Context(), session)
	if err != nil {
		handleErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSON(w, req, checkoutSession)
}

// HandleBackStep moves the session back one step
func HandleBackStep(w http.ResponseWriter, req *http.Request) {
	session, ok := sessionFromContext(w, req)
	if !ok {
		return
	}

	checkoutSession, responseType, err := checkoutService.BackStep(req.Context(), session)
	if err != nil {
		handleErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSON(w, req, checkoutSession)
}

// HandleGetCheckoutResources serves the package catalog together with the
// currently available appointment and voucher slots
func HandleGetCheckoutResources(w http.ResponseWriter, req *http.Request) {
	resources, responseType, err := checkoutService.GetCheckoutResources(req.Context())
	if err != nil {
		handleErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSON(w, req, resources)
}
