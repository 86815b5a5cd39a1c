package mediaprovider_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-market/internal/adapter"
	mediaprovider "github.com/feral-file/ff-market/internal/media/provider"
)

func TestLocalProvider_Upload(t *testing.T) {
	dir := t.TempDir()
	provider := mediaprovider.NewLocalProvider(adapter.NewFileSystem(), mediaprovider.LocalConfig{
		Dir:           dir,
		Bucket:        "nft-images",
		PublicBaseURL: "http://localhost:8080/media",
	})

	result, err := provider.Upload(context.Background(), bytes.NewReader([]byte("png-bytes")),
		"0xabc/1700000000-deadbeef.png", "image/png", nil)
	require.NoError(t, err)

	assert.Equal(t, "0xabc/1700000000-deadbeef.png", result.Key)
	assert.Equal(t, "http://localhost:8080/media/nft-images/0xabc/1700000000-deadbeef.png", result.URL)
	assert.Equal(t, "local", provider.Name())

	written, err := os.ReadFile(filepath.Join(dir, "nft-images", "0xabc", "1700000000-deadbeef.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(written))
}

func TestLocalProvider_KeyStaysInsideBucket(t *testing.T) {
	dir := t.TempDir()
	provider := mediaprovider.NewLocalProvider(adapter.NewFileSystem(), mediaprovider.LocalConfig{
		Dir:           dir,
		Bucket:        "nft-images",
		PublicBaseURL: "http://localhost:8080/media",
	})

	result, err := provider.Upload(context.Background(), bytes.NewReader([]byte("x")), "../../escape.png", "image/png", nil)
	require.NoError(t, err)
	assert.Equal(t, "escape.png", result.Key)
	assert.FileExists(t, filepath.Join(dir, "nft-images", "escape.png"))

	_, err = provider.Upload(context.Background(), bytes.NewReader([]byte("x")), "", "image/png", nil)
	require.Error(t, err)
}
