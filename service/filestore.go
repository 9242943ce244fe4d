package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/medlaunch/checkout.api.medlaunch.health/config"
	"github.com/medlaunch/checkout.api.medlaunch.health/models"
)

// FileStoreService uploads payment proof files to the remote object store
type FileStoreService struct {
	Config config.Config
}

// UploadProof writes the proof under a per-user, timestamp-qualified path in
// the proofs bucket and returns the public URL of the stored object
func (service *FileStoreService) UploadProof(ctx context.Context, userID string, proof *models.UploadedProof) (string, error) {
	path := fmt.Sprintf("%s/%d-%s", userID, time.Now().Unix(), proof.Filename)

	uploadURL := fmt.Sprintf("%s/object/%s/%s", service.Config.FileStoreURL, service.Config.FileStoreBucket, path)
	request, err := http.NewRequestWithContext(ctx, "PUT", uploadURL, bytes.NewReader(proof.Data))
	if err != nil {
		return "", fmt.Errorf("error generating request for file store: [%v]", err)
	}

	request.Header.Add("authorization", "Bearer "+service.Config.FileStoreBearerToken)
	request.Header.Add("content-type", proof.ContentType)

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("error sending request to file store: [%v]", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("error status [%v] back from file store", resp.StatusCode)
	}

	return fmt.Sprintf("%s/object/public/%s/%s", service.Config.FileStoreURL, service.Config.FileStoreBucket, path), nil
}
