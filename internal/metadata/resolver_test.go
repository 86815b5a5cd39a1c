package metadata_test

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/metadata"
	"github.com/feral-file/ff-market/internal/mocks"
	"github.com/feral-file/ff-market/internal/uri"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const cid = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"

// testResolverMocks contains all the mocks needed for testing the resolver
type testResolverMocks struct {
	ctrl       *gomock.Controller
	httpClient *mocks.MockHTTPClient
	resolver   metadata.Resolver
}

func setupTestResolver(t *testing.T) *testResolverMocks {
	ctrl := gomock.NewController(t)
	httpClient := mocks.NewMockHTTPClient(ctrl)

	uriResolver := uri.NewResolver(httpClient, uri.Config{
		IPFSGateways:    []string{"https://ipfs.io", "https://dweb.link"},
		ArweaveGateways: []string{"https://arweave.net"},
	})

	return &testResolverMocks{
		ctrl:       ctrl,
		httpClient: httpClient,
		resolver:   metadata.NewResolver(uriResolver, httpClient, adapter.NewJSON()),
	}
}

// returnDoc fills the Get result with doc
func returnDoc(doc map[string]interface{}) func(context.Context, string, interface{}) error {
	return func(_ context.Context, _ string, result interface{}) error {
		*(result.(*map[string]interface{})) = doc
		return nil
	}
}

func TestResolve_HTTPDocument(t *testing.T) {
	tm := setupTestResolver(t)

	tm.httpClient.EXPECT().
		Get(gomock.Any(), "https://media.example/9.json", gomock.Any()).
		DoAndReturn(returnDoc(map[string]interface{}{
			"name":        " Dawn ",
			"description": "first light",
			"image":       "ipfs://" + cid + "/dawn.png",
			"attributes": []interface{}{
				map[string]interface{}{"trait_type": "Palette", "value": "warm"},
				map[string]interface{}{"trait_type": "Artist", "value": "Ana"},
			},
		}))

	md, err := tm.resolver.Resolve(context.Background(), "https://media.example/9.json")
	require.NoError(t, err)
	assert.Equal(t, &metadata.TokenMetadata{
		Name:        "Dawn",
		Description: "first light",
		Image:       "https://ipfs.io/ipfs/" + cid + "/dawn.png",
		Artist:      "Ana",
	}, md)
	assert.Equal(t, md.Image, md.MediaURI())
}

func TestResolve_IPFSFallsBackAcrossGateways(t *testing.T) {
	tm := setupTestResolver(t)

	tm.httpClient.EXPECT().
		Get(gomock.Any(), "https://ipfs.io/ipfs/"+cid, gomock.Any()).
		Return(errors.New("gateway timeout"))
	tm.httpClient.EXPECT().
		Get(gomock.Any(), "https://dweb.link/ipfs/"+cid, gomock.Any()).
		DoAndReturn(returnDoc(map[string]interface{}{
			"name":          "Loop",
			"animation_url": "ar://clip",
		}))

	md, err := tm.resolver.Resolve(context.Background(), "ipfs://"+cid)
	require.NoError(t, err)
	assert.Equal(t, "Loop", md.Name)
	assert.Empty(t, md.Image)
	assert.Equal(t, "https://arweave.net/clip", md.Animation)
	assert.Equal(t, "https://arweave.net/clip", md.MediaURI())
}

func TestResolve_URIPointsAtMedia(t *testing.T) {
	tm := setupTestResolver(t)

	tm.httpClient.EXPECT().
		Get(gomock.Any(), "https://media.example/9.png", gomock.Any()).
		Return(fmt.Errorf("request failed after retries: %w", adapter.ErrNotJSON))

	md, err := tm.resolver.Resolve(context.Background(), "https://media.example/9.png")
	require.NoError(t, err)
	assert.Equal(t, &metadata.TokenMetadata{Image: "https://media.example/9.png"}, md)
}

func TestResolve_DataURIs(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte(`{"name":"On-chain","created_by":"Ben"}`))
	svg := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte("<svg/>"))

	tests := []struct {
		name     string
		uri      string
		expected *metadata.TokenMetadata
	}{
		{
			name:     "base64 json",
			uri:      "data:application/json;base64," + encoded,
			expected: &metadata.TokenMetadata{Name: "On-chain", Artist: "Ben"},
		},
		{
			name:     "percent-encoded json",
			uri:      "data:application/json,%7B%22name%22%3A%22Plain%22%7D",
			expected: &metadata.TokenMetadata{Name: "Plain"},
		},
		{
			name:     "image data uri",
			uri:      svg,
			expected: &metadata.TokenMetadata{Image: svg},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestResolver(t)
			md, err := tm.resolver.Resolve(context.Background(), tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, md)
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	t.Run("empty uri", func(t *testing.T) {
		tm := setupTestResolver(t)
		_, err := tm.resolver.Resolve(context.Background(), "  ")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("malformed data uri", func(t *testing.T) {
		tm := setupTestResolver(t)
		_, err := tm.resolver.Resolve(context.Background(), "data:application/json;base64")
		assert.Error(t, err)
	})

	t.Run("host unreachable", func(t *testing.T) {
		tm := setupTestResolver(t)
		tm.httpClient.EXPECT().
			Get(gomock.Any(), "https://media.example/9.json", gomock.Any()).
			Return(errors.New("connection refused"))

		_, err := tm.resolver.Resolve(context.Background(), "https://media.example/9.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestResolve_ArtistFields(t *testing.T) {
	tests := []struct {
		name     string
		doc      map[string]interface{}
		expected string
	}{
		{"artist field", map[string]interface{}{"artist": "Ana"}, "Ana"},
		{"collection name", map[string]interface{}{"collection_name": "Dawn by Ben"}, "Ben"},
		{"creator field", map[string]interface{}{"creator": "Cleo"}, "Cleo"},
		{"none", map[string]interface{}{"name": "x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestResolver(t)
			tm.httpClient.EXPECT().
				Get(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(returnDoc(tt.doc))

			md, err := tm.resolver.Resolve(context.Background(), "https://media.example/doc.json")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, md.Artist)
		})
	}
}
