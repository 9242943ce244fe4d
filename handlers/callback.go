package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/medlaunch/checkout.api.medlaunch.health/service"
)

// HandlePayPalReturn is hit when the payer is redirected back from PayPal
// approval. It captures the order, marks the payment paid and redirects the
// browser to the thank-you page.
func HandlePayPalReturn(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id := vars["payment_id"]
	if id == "" {
		log.Ctx(req.Context()).Error().Msg("no payment id in paypal return")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	payment, err := payPalService.DAO.GetPaymentResource(req.Context(), id)
	if err != nil {
		log.Ctx(req.Context()).Error().Err(err).Msg("error getting payment record for paypal return")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if payment == nil || payment.ExternalPaymentStatusID == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	responseType, err := payPalService.CapturePaymentAndMarkPaid(req.Context(), payment)
	if err != nil {
		log.Ctx(req.Context()).Error().Err(err).Str("service_response_type", responseType.String()).Msg("error capturing paypal payment")
		switch responseType {
		case service.Forbidden:
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	thankYouURL := fmt.Sprintf("%s/checkout/thank-you", payPalService.Config.CheckoutWebURL)
	http.Redirect(w, req, thankYouURL, http.StatusSeeOther)

	log.Ctx(req.Context()).Info().Str("payment_id", payment.ID).Msg("paypal payment captured")
}
