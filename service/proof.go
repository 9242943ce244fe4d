package service

import (
	"fmt"
	"strings"

	"github.com/medlaunch/checkout.api.medlaunch.health/models"
)

// Explicitly accepted payment proof content types. Anything else under
// image/* is also accepted as a fallback for camera uploads.
var allowedProofContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/heic":      true,
	"image/heif":      true,
	"application/pdf": true,
}

// ValidateProof checks an uploaded payment proof against the content-type
// allow-list and the configured size limit. The limit is inclusive: a file of
// exactly the maximum size passes.
func ValidateProof(proof *models.UploadedProof, maxSizeBytes int64) (ResponseType, error) {
	if proof == nil || proof.Size == 0 {
		return MissingProof, fmt.Errorf("a proof of payment file is required")
	}

	if !allowedProofContentTypes[proof.ContentType] && !strings.HasPrefix(proof.ContentType, "image/") {
		return InvalidData, fmt.Errorf("file type [%s] is not accepted; upload an image or PDF", proof.ContentType)
	}

	if proof.Size > maxSizeBytes {
		return InvalidData, fmt.Errorf("file size %d exceeds the maximum of %d bytes", proof.Size, maxSizeBytes)
	}

	return Success, nil
}
