package uri_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-market/internal/logger"
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

func response(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(nil)),
	}
}

func testConfig() uri.Config {
	return uri.Config{
		IPFSGateways:    []string{"https://ipfs.io/", "https://gateway.pinata.cloud"},
		ArweaveGateways: []string{"https://arweave.net"},
	}
}

func TestResolver_Candidates(t *testing.T) {
	r := uri.NewResolver(nil, testConfig())

	tests := []struct {
		name     string
		uri      string
		expected []string
	}{
		{
			name:     "plain https",
			uri:      "https://media.example/9.json",
			expected: []string{"https://media.example/9.json"},
		},
		{
			name: "ipfs scheme",
			uri:  "ipfs://" + cid + "/1.json",
			expected: []string{
				"https://ipfs.io/ipfs/" + cid + "/1.json",
				"https://gateway.pinata.cloud/ipfs/" + cid + "/1.json",
			},
		},
		{
			name: "legacy ipfs://ipfs/ prefix",
			uri:  "ipfs://ipfs/" + cid,
			expected: []string{
				"https://ipfs.io/ipfs/" + cid,
				"https://gateway.pinata.cloud/ipfs/" + cid,
			},
		},
		{
			name: "private gateway url",
			uri:  "https://private.mypinata.cloud/ipfs/" + cid,
			expected: []string{
				"https://ipfs.io/ipfs/" + cid,
				"https://gateway.pinata.cloud/ipfs/" + cid,
			},
		},
		{
			name:     "arweave",
			uri:      "ar://abc123",
			expected: []string{"https://arweave.net/abc123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Candidates(tt.uri))
		})
	}
}

func TestResolver_Gateway(t *testing.T) {
	r := uri.NewResolver(nil, testConfig())

	assert.Equal(t, "https://ipfs.io/ipfs/"+cid, r.Gateway("ipfs://"+cid))
	assert.Equal(t, "data:image/png;base64,AAAA", r.Gateway("data:image/png;base64,AAAA"))

	empty := uri.NewResolver(nil, uri.Config{})
	assert.Equal(t, "ar://abc123", empty.Gateway("ar://abc123"))
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		uri         string
		config      uri.Config
		setupMocks  func(*mocks.MockHTTPClient)
		expected    string
		expectedErr string
	}{
		{
			name:     "plain URL is not checked",
			uri:      "https://media.example/9.png",
			config:   testConfig(),
			expected: "https://media.example/9.png",
		},
		{
			name:   "first working ipfs gateway",
			uri:    "ipfs://" + cid,
			config: testConfig(),
			setupMocks: func(m *mocks.MockHTTPClient) {
				m.EXPECT().Head(gomock.Any(), "https://ipfs.io/ipfs/"+cid).Return(response(http.StatusNotFound), nil)
				m.EXPECT().Head(gomock.Any(), "https://gateway.pinata.cloud/ipfs/"+cid).Return(response(http.StatusOK), nil)
			},
			expected: "https://gateway.pinata.cloud/ipfs/" + cid,
		},
		{
			name:   "arweave",
			uri:    "ar://abc123",
			config: testConfig(),
			setupMocks: func(m *mocks.MockHTTPClient) {
				m.EXPECT().Head(gomock.Any(), "https://arweave.net/abc123").Return(response(http.StatusOK), nil)
			},
			expected: "https://arweave.net/abc123",
		},
		{
			name:   "all gateways fail",
			uri:    "ipfs://" + cid,
			config: testConfig(),
			setupMocks: func(m *mocks.MockHTTPClient) {
				m.EXPECT().Head(gomock.Any(), "https://ipfs.io/ipfs/"+cid).Return(nil, errors.New("timeout"))
				m.EXPECT().Head(gomock.Any(), "https://gateway.pinata.cloud/ipfs/"+cid).Return(response(http.StatusBadGateway), nil)
			},
			expectedErr: "no working gateway found",
		},
		{
			name:        "no gateways configured",
			uri:         "ar://abc123",
			config:      uri.Config{},
			expectedErr: "no gateways configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			httpClient := mocks.NewMockHTTPClient(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(httpClient)
			}

			r := uri.NewResolver(httpClient, tt.config)
			got, err := r.Resolve(context.Background(), tt.uri)
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFirstOK_CancelsLosers(t *testing.T) {
	canceled := make(chan struct{}, 1)
	url, err := uri.FirstOK(context.Background(), []string{"fast", "slow"}, func(ctx context.Context, url string) error {
		if url == "fast" {
			return nil
		}
		<-ctx.Done()
		canceled <- struct{}{}
		return ctx.Err()
	})

	require.NoError(t, err)
	assert.Equal(t, "fast", url)
	// FirstOK waits for the cancelled attempt before returning
	assert.Len(t, canceled, 1)
}

func TestFirstOK_Empty(t *testing.T) {
	_, err := uri.FirstOK(context.Background(), nil, func(context.Context, string) error { return nil })
	assert.Error(t, err)
}
