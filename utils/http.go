package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// WriteJSON writes the interface as a json string with status of 200 to the
// provided ResponseWriter
func WriteJSON(w http.ResponseWriter, req *http.Request, payload interface{}) {
	WriteJSONWithStatus(w, req, payload, http.StatusOK)
}

// WriteJSONWithStatus writes the interface as a json string with the
// provided status to the ResponseWriter
func WriteJSONWithStatus(w http.ResponseWriter, req *http.Request, payload interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		log.Ctx(req.Context()).Error().Err(err).Msg("error writing response")
		http.Error(w, "error writing response", http.StatusInternalServerError)
	}
}
