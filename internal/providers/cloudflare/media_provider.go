package cloudflare

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudflare/cloudflare-go"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/logger"
	mediaprovider "github.com/feral-file/ff-market/internal/media/provider"
)

const (
	CLOUDFLARE_PROVIDER_NAME = "cloudflare"
	DEFAULT_IMAGE_VARIANT    = "public"
)

// Config holds configuration for Cloudflare Images
type Config struct {
	// AccountID is the Cloudflare account ID for Images
	AccountID string
	// Variant is the delivery variant whose URL is returned, "public" when empty
	Variant string
}

// mediaProvider implements the media provider interface for Cloudflare Images
type mediaProvider struct {
	cfClient adapter.CloudflareClient
	config   Config
	rc       *cloudflare.ResourceContainer
}

// NewMediaProvider creates a new Cloudflare Images provider
func NewMediaProvider(cfClient adapter.CloudflareClient, config Config) mediaprovider.Provider {
	if config.Variant == "" {
		config.Variant = DEFAULT_IMAGE_VARIANT
	}
	return &mediaProvider{
		cfClient: cfClient,
		config:   config,
		rc: &cloudflare.ResourceContainer{
			Level:      cloudflare.AccountRouteLevel,
			Identifier: config.AccountID,
		},
	}
}

// Upload streams the content to Cloudflare Images. Only images are accepted.
func (p *mediaProvider) Upload(ctx context.Context, reader io.Reader, key, contentType string, metadata map[string]interface{}) (*mediaprovider.UploadResult, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("cloudflare images does not accept %s", contentType)
	}

	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	metadata["key"] = key

	logger.InfoCtx(ctx, "Uploading to Cloudflare Images", zap.String("key", key), zap.String("contentType", contentType))

	image, err := p.cfClient.UploadImage(ctx, p.rc, cloudflare.UploadImageParams{
		File:     io.NopCloser(reader),
		Name:     path.Base(key),
		Metadata: metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	url := selectVariant(image.Variants, p.config.Variant)
	if url == "" {
		return nil, fmt.Errorf("uploaded image %s has no delivery variant", image.ID)
	}

	logger.InfoCtx(ctx, "Successfully uploaded to Cloudflare Images",
		zap.String("imageID", image.ID),
		zap.String("url", url))

	return &mediaprovider.UploadResult{
		Key:             key,
		URL:             url,
		ProviderAssetID: image.ID,
		ContentType:     contentType,
	}, nil
}

// Name returns the provider name
func (p *mediaProvider) Name() string {
	return CLOUDFLARE_PROVIDER_NAME
}

// selectVariant returns the variant URL named variant, falling back to the first one.
// Format: https://imagedelivery.net/{account_hash}/{image_id}/{variant_name}
func selectVariant(variants []string, variant string) string {
	for _, variantURL := range variants {
		if path.Base(variantURL) == variant {
			return variantURL
		}
	}
	if len(variants) > 0 {
		return variants[0]
	}
	return ""
}
