package media

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
	mediaprovider "github.com/feral-file/ff-market/internal/media/provider"
)

const DEFAULT_MAX_MEDIA_SIZE = 20 * 1024 * 1024

// Config holds configuration for the uploader
type Config struct {
	// MaxSize is the largest accepted file in bytes
	MaxSize int64
	// MaxElapsedTime bounds upload retries
	MaxElapsedTime time.Duration
}

// Uploader validates media files and stores them under <owner>/<unix>-<rand>.<ext>
//
//go:generate mockgen -source=uploader.go -destination=../mocks/media_uploader.go -package=mocks -mock_names=Uploader=MockUploader
type Uploader interface {
	// Upload detects the file type from its content and stores it for owner
	Upload(ctx context.Context, owner string, content []byte) (*mediaprovider.UploadResult, error)
}

type uploader struct {
	provider mediaprovider.Provider
	clock    adapter.Clock
	config   Config
}

// NewUploader creates a new media uploader
func NewUploader(provider mediaprovider.Provider, clock adapter.Clock, config Config) Uploader {
	if config.MaxSize <= 0 {
		config.MaxSize = DEFAULT_MAX_MEDIA_SIZE
	}
	if config.MaxElapsedTime <= 0 {
		config.MaxElapsedTime = 30 * time.Second
	}
	return &uploader{provider: provider, clock: clock, config: config}
}

// Upload detects the file type from its content and stores it for owner
func (u *uploader) Upload(ctx context.Context, owner string, content []byte) (*mediaprovider.UploadResult, error) {
	if !domain.IsValidAddress(owner) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, owner)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: empty file", domain.ErrInvalidMedia)
	}
	if int64(len(content)) > u.config.MaxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", domain.ErrInvalidMedia, len(content), u.config.MaxSize)
	}

	mtype := mimetype.Detect(content)
	contentType := mtype.String()
	if !isSupportedMedia(contentType) {
		return nil, fmt.Errorf("%w: unsupported type %s", domain.ErrInvalidMedia, contentType)
	}

	key, err := u.objectKey(owner, mtype.Extension())
	if err != nil {
		return nil, err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxElapsedTime = u.config.MaxElapsedTime

	var result *mediaprovider.UploadResult
	operation := func() error {
		var err error
		result, err = u.provider.Upload(ctx, bytes.NewReader(content), key, contentType, map[string]interface{}{
			"owner": strings.ToLower(owner),
		})
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return backoff.Permanent(err)
			}
			logger.WarnCtx(ctx, "Media upload failed, retrying", zap.String("key", key), zap.Error(err))
			return err
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("failed to upload media to %s: %w", u.provider.Name(), err)
	}

	logger.InfoCtx(ctx, "Uploaded media",
		zap.String("provider", u.provider.Name()),
		zap.String("key", result.Key),
		zap.String("contentType", contentType))

	return result, nil
}

// objectKey builds <owner>/<unix>-<rand><ext> with the owner lower-cased
func (u *uploader) objectKey(owner, ext string) (string, error) {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("failed to generate media key: %w", err)
	}
	return fmt.Sprintf("%s/%d-%s%s", strings.ToLower(owner), u.clock.Now().Unix(), hex.EncodeToString(suffix), ext), nil
}

func isSupportedMedia(contentType string) bool {
	mainType := strings.TrimSpace(strings.Split(contentType, ";")[0])
	return strings.HasPrefix(mainType, "image/") || strings.HasPrefix(mainType, "video/")
}
