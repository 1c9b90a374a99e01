package services

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path"

	"github.com/google/uuid"

	"github.com/shelterdesk/portal/internal/api"
	"github.com/shelterdesk/portal/internal/models"
)

// FileService uploads files through the file service: it asks for a
// presigned PUT URL and then sends the raw bytes straight to the storage
// host, never routing them through the main API.
type FileService interface {
	Upload(ctx context.Context, name string, data []byte) (models.StoredFile, error)
}

type presignRequest struct {
	Key         string `json:"key"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
}

type fileService struct {
	client   *api.Client
	uploader *http.Client
}

// NewFileService constructs a FileService. client must be bound to the file
// service origin; uploader is used for the direct PUT (nil for a default).
func NewFileService(client *api.Client, uploader *http.Client) FileService {
	if uploader == nil {
		uploader = &http.Client{}
	}
	return &fileService{client: client, uploader: uploader}
}

func (s *fileService) Upload(ctx context.Context, name string, data []byte) (models.StoredFile, error) {
	key := uuid.NewString() + path.Ext(name)

	grant, err := api.Post[models.PresignedUpload](ctx, s.client, "/api/files/presign", presignRequest{
		Key:         key,
		FileName:    name,
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return models.StoredFile{}, fmt.Errorf("requesting upload url: %w", err)
	}

	if err := uploadToPresignedURL(ctx, s.uploader, grant.URL, data); err != nil {
		return models.StoredFile{}, err
	}

	return models.StoredFile{Key: grant.Key, Name: name}, nil
}

// uploadToPresignedURL PUTs file bytes directly to a presigned URL. The URL
// itself carries the authorization, so no bearer token is attached.
func uploadToPresignedURL(ctx context.Context, client *http.Client, url string, file []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(file))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upload failed: %s", resp.Status)
	}
	return nil
}
