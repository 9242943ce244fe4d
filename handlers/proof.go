package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/medlaunch/checkout.api.medlaunch.health/models"
	"github.com/medlaunch/checkout.api.medlaunch.health/service"
	"github.com/medlaunch/checkout.api.medlaunch.health/utils"
)

// multipartOverheadBytes allows for the non-file form fields and part
// boundaries on top of the proof size limit
const multipartOverheadBytes = 1 << 20

// proofFromRequest extracts the proof of payment file from the "file" part
// of a multipart request. The request body is capped before parsing so an
// oversized upload is cut off rather than read fully into memory. Returns
// nil with no error when no file part is present.
func proofFromRequest(w http.ResponseWriter, req *http.Request, maxSizeBytes int64) (*models.UploadedProof, error) {
	req.Body = http.MaxBytesReader(w, req.Body, maxSizeBytes+multipartOverheadBytes)
	if err := req.ParseMultipartForm(maxSizeBytes + multipartOverheadBytes); err != nil {
		return nil, fmt.Errorf("error parsing multipart form: [%v]", err)
	}

	file, header, err := req.FormFile("file")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading file part: [%v]", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("error reading file contents: [%v]", err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = contentTypeFromExtension(header.Filename)
	}

	return &models.UploadedProof{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

func contentTypeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".heic":
		return "image/heic"
	case ".heif":
		return "image/heif"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// HandleValidateProof checks an uploaded proof file against the type and
// size rules and marks the session accordingly. The file is not persisted by
// this endpoint; the client sends it again with the submission.
func HandleValidateProof(w http.ResponseWriter, req *http.Request) {
	session, ok := sessionFromContext(w, req)
	if !ok {
		return
	}

	proof, err := proofFromRequest(w, req, checkoutService.Config.MaxProofSizeBytes)
	if err != nil {
		log.Ctx(req.Context()).Error().Err(err).Msg("invalid proof upload request")
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if proof == nil {
		log.Ctx(req.Context()).Error().Msg("no proof file in request")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if responseType, err := service.ValidateProof(proof, checkoutService.Config.MaxProofSizeBytes); err != nil {
		handleErrorResponse(w, req, responseType, err)
		return
	}

	checkoutSession, responseType, err := checkoutService.MarkProofValidated(req.Context(), session)
	if err != nil {
		handleErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSON(w, req, checkoutSession)
}
