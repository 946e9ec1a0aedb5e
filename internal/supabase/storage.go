package supabase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	storage "github.com/supabase-community/storage-go"
)

// ArtifactMetadata is stored as a sidecar object next to each artifact.
// The storage API carries no per-object custom metadata of its own.
type ArtifactMetadata struct {
	UploadedAt  time.Time `json:"uploadedAt"`
	SenderEmail string    `json:"senderEmail"`
}

type StorageClient struct {
	client *storage.Client
	bucket string
}

func NewStorageClient(supabaseURL, serviceKey, bucket string) (*StorageClient, error) {
	baseURL := supabaseURL
	if len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	client := storage.NewClient(baseURL+"/storage/v1", serviceKey, nil)

	return &StorageClient{
		client: client,
		bucket: bucket,
	}, nil
}

func artifactKey(id string) string {
	return fmt.Sprintf("merged/%s.pdf", id)
}

func metadataKey(id string) string {
	return fmt.Sprintf("merged/%s.json", id)
}

// Put stores the merged artifact under its opaque id plus a metadata sidecar.
// Upsert is off: ids are freshly generated per finalize call, a collision
// would mean a bug, not a retry.
func (s *StorageClient) Put(id string, data []byte, meta ArtifactMetadata) error {
	contentType := "application/pdf"
	upsert := false
	_, err := s.client.UploadFile(s.bucket, artifactKey(id), bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("failed to upload artifact: %w", err)
	}

	metaBytes, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact metadata: %w", err)
	}
	metaContentType := "application/json"
	_, err = s.client.UploadFile(s.bucket, metadataKey(id), bytes.NewReader(metaBytes), storage.FileOptions{
		ContentType: &metaContentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("failed to upload artifact metadata: %w", err)
	}

	return nil
}

// Get fetches the artifact bytes for an id. The caller treats any error as
// not-found; "never existed" and "deleted" are deliberately the same answer.
func (s *StorageClient) Get(id string) ([]byte, error) {
	data, err := s.client.DownloadFile(s.bucket, artifactKey(id))
	if err != nil {
		return nil, fmt.Errorf("failed to download artifact: %w", err)
	}
	return data, nil
}

func (s *StorageClient) GetMetadata(id string) (*ArtifactMetadata, error) {
	data, err := s.client.DownloadFile(s.bucket, metadataKey(id))
	if err != nil {
		return nil, fmt.Errorf("failed to download artifact metadata: %w", err)
	}
	var meta ArtifactMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse artifact metadata: %w", err)
	}
	return &meta, nil
}

func (s *StorageClient) Delete(id string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{artifactKey(id), metadataKey(id)})
	return err
}
