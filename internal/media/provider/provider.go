package mediaprovider

import (
	"context"
	"io"
)

// UploadResult represents the result of storing a media file
type UploadResult struct {
	// Key is the object path inside the bucket: <owner>/<unix>-<rand>.<ext>
	Key string
	// URL is the public URL the file is served from
	URL string
	// ProviderAssetID is the provider-specific identifier (e.g. Cloudflare image id)
	ProviderAssetID string
	ContentType     string
}

// Provider defines the interface for media storage providers
//
//go:generate mockgen -source=provider.go -destination=../../mocks/media_provider.go -package=mocks -mock_names=Provider=MockMediaProvider
type Provider interface {
	// Upload stores the content under key and returns its public URL
	// Parameters:
	//   - reader: the file content
	//   - key: the object path inside the bucket
	//   - contentType: the detected MIME type (e.g., "image/png")
	//   - metadata: additional metadata to attach to the upload
	Upload(ctx context.Context, reader io.Reader, key, contentType string, metadata map[string]interface{}) (*UploadResult, error)

	// Name returns the provider name
	Name() string
}
