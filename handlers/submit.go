package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/medlaunch/checkout.api.medlaunch.health/models"
	"github.com/medlaunch/checkout.api.medlaunch.health/utils"
)

// HandleSubmitPayment runs the submission chain for a checkout session. The
// request is multipart: the proof of payment travels in the "file" part,
// payment_method and idempotency_key in form fields.
func HandleSubmitPayment(w http.ResponseWriter, req *http.Request) {
	session, ok := sessionFromContext(w, req)
	if !ok {
		return
	}

	proof, err := proofFromRequest(w, req, checkoutService.Config.MaxProofSizeBytes)
	if err != nil {
		log.Ctx(req.Context()).Error().Err(err).Msg("invalid submission request")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	submitRequest := models.SubmitPaymentRequest{
		PaymentMethod:  req.FormValue("payment_method"),
		IdempotencyKey: req.FormValue("idempotency_key"),
	}
	if err := validator.New().Struct(submitRequest); err != nil {
		log.Ctx(req.Context()).Error().Err(err).Msg("invalid request to submit payment")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	payment, responseType, err := submissionService.SubmitPayment(req, session, proof, submitRequest)
	if err != nil {
		handleErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, payment, http.StatusCreated)

	log.Ctx(req.Context()).Info().
		Str("checkout_id", session.ID).
		Str("payment_id", payment.MetaData.ID).
		Msg("checkout submitted")
}
