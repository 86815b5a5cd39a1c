package adapter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/logger"
)

func newTestHTTPClient(t *testing.T) adapter.HTTPClient {
	t.Helper()
	_ = logger.Initialize(logger.Config{Debug: false})
	return adapter.NewHTTPClient(5*time.Second, 5*time.Second)
}

func TestHTTPClient_Get(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/doc.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"name":"Dawn"}`))
		case "/busy.json":
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			_, _ = w.Write([]byte(`{"name":"Later"}`))
		case "/art.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
		case "/page":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html></html>"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := newTestHTTPClient(t)
	ctx := context.Background()

	t.Run("json document", func(t *testing.T) {
		var doc map[string]interface{}
		require.NoError(t, client.Get(ctx, srv.URL+"/doc.json", &doc))
		assert.Equal(t, "Dawn", doc["name"])
	})

	t.Run("retries rate limited requests", func(t *testing.T) {
		var doc map[string]interface{}
		require.NoError(t, client.Get(ctx, srv.URL+"/busy.json", &doc))
		assert.Equal(t, "Later", doc["name"])
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("media content type", func(t *testing.T) {
		var doc map[string]interface{}
		err := client.Get(ctx, srv.URL+"/art.png", &doc)
		assert.ErrorIs(t, err, adapter.ErrNotJSON)
	})

	t.Run("non json body", func(t *testing.T) {
		var doc map[string]interface{}
		err := client.Get(ctx, srv.URL+"/page", &doc)
		assert.ErrorIs(t, err, adapter.ErrNotJSON)
	})

	t.Run("not found is permanent", func(t *testing.T) {
		var doc map[string]interface{}
		err := client.Get(ctx, srv.URL+"/missing", &doc)
		require.Error(t, err)
		assert.NotErrorIs(t, err, adapter.ErrNotJSON)
		assert.Contains(t, err.Error(), "404")
	})
}

func TestHTTPClient_Head(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := newTestHTTPClient(t).Head(context.Background(), srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
