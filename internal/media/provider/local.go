package mediaprovider

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/logger"
)

const LOCAL_PROVIDER_NAME = "local"

// LocalConfig holds configuration for the local disk provider
type LocalConfig struct {
	// Dir is the root directory buckets are created under
	Dir    string
	Bucket string
	// PublicBaseURL is the URL Dir is served from
	PublicBaseURL string
}

type localProvider struct {
	fs     adapter.FileSystem
	config LocalConfig
}

// NewLocalProvider creates a provider that writes files under Dir/Bucket
func NewLocalProvider(fs adapter.FileSystem, config LocalConfig) Provider {
	return &localProvider{fs: fs, config: config}
}

// Upload writes the content to disk and returns its public URL
func (p *localProvider) Upload(ctx context.Context, reader io.Reader, key, contentType string, _ map[string]interface{}) (*UploadResult, error) {
	clean := path.Clean("/" + key)[1:]
	if clean == "" || strings.HasPrefix(clean, "..") {
		return nil, fmt.Errorf("invalid media key %q", key)
	}

	target := filepath.Join(p.config.Dir, p.config.Bucket, filepath.FromSlash(clean))
	if err := p.fs.MkdirAll(filepath.Dir(target)); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}

	file, err := p.fs.Create(target)
	if err != nil {
		return nil, fmt.Errorf("failed to create media file: %w", err)
	}

	if _, err := io.Copy(file, reader); err != nil {
		_ = file.Close()
		_ = p.fs.Remove(target)
		return nil, fmt.Errorf("failed to write media file: %w", err)
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("failed to close media file: %w", err)
	}

	publicURL, err := url.JoinPath(p.config.PublicBaseURL, p.config.Bucket, clean)
	if err != nil {
		return nil, fmt.Errorf("failed to build public url: %w", err)
	}

	logger.InfoCtx(ctx, "Stored media file", zap.String("path", target), zap.String("url", publicURL))

	return &UploadResult{
		Key:             clean,
		URL:             publicURL,
		ProviderAssetID: clean,
		ContentType:     contentType,
	}, nil
}

// Name returns the provider name
func (p *localProvider) Name() string {
	return LOCAL_PROVIDER_NAME
}
