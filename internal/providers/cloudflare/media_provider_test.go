package cloudflare

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/cloudflare/cloudflare-go"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-market/internal/mocks"
)

func TestMediaProvider_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockCloudflareClient(ctrl)
	provider := NewMediaProvider(client, Config{AccountID: "acct"})

	client.EXPECT().
		UploadImage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rc *cloudflare.ResourceContainer, params cloudflare.UploadImageParams) (cloudflare.Image, error) {
			assert.Equal(t, "acct", rc.Identifier)
			assert.Equal(t, "1700000000-deadbeef.png", params.Name)
			assert.Equal(t, "0xabc/1700000000-deadbeef.png", params.Metadata["key"])
			body, err := io.ReadAll(params.File)
			require.NoError(t, err)
			assert.Equal(t, "png-bytes", string(body))
			return cloudflare.Image{
				ID: "img-1",
				Variants: []string{
					"https://imagedelivery.net/hash/img-1/thumbnail",
					"https://imagedelivery.net/hash/img-1/public",
				},
			}, nil
		})

	result, err := provider.Upload(context.Background(), strings.NewReader("png-bytes"), "0xabc/1700000000-deadbeef.png", "image/png", nil)
	require.NoError(t, err)
	assert.Equal(t, "img-1", result.ProviderAssetID)
	assert.Equal(t, "https://imagedelivery.net/hash/img-1/public", result.URL)
}

func TestMediaProvider_RejectsNonImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := NewMediaProvider(mocks.NewMockCloudflareClient(ctrl), Config{AccountID: "acct"})
	_, err := provider.Upload(context.Background(), strings.NewReader("x"), "a/b.mp4", "video/mp4", nil)
	require.Error(t, err)
}

func TestMediaProvider_UploadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockCloudflareClient(ctrl)
	client.EXPECT().UploadImage(gomock.Any(), gomock.Any(), gomock.Any()).Return(cloudflare.Image{}, errors.New("quota exceeded"))

	provider := NewMediaProvider(client, Config{AccountID: "acct"})
	_, err := provider.Upload(context.Background(), strings.NewReader("x"), "a/b.png", "image/png", nil)
	require.ErrorContains(t, err, "quota exceeded")
}

func TestSelectVariant(t *testing.T) {
	variants := []string{"https://imagedelivery.net/h/i/small", "https://imagedelivery.net/h/i/public"}
	assert.Equal(t, "https://imagedelivery.net/h/i/public", selectVariant(variants, "public"))
	assert.Equal(t, "https://imagedelivery.net/h/i/small", selectVariant(variants, "missing"))
	assert.Empty(t, selectVariant(nil, "public"))
}
