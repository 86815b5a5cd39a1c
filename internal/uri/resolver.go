package uri

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/logger"
)

// Config holds configuration for the URI resolver
type Config struct {
	// IPFSGateways is the list of IPFS gateways to try, in preference order
	IPFSGateways []string
	// ArweaveGateways is the list of Arweave gateways to try, in preference order
	ArweaveGateways []string
}

// Resolver maps content-addressed token URIs to HTTP URLs
//
//go:generate mockgen -source=resolver.go -destination=../mocks/uri_resolver.go -package=mocks -mock_names=Resolver=MockURIResolver
type Resolver interface {
	// Resolve returns the first gateway URL that answers a HEAD request with 200.
	// ipfs://, ar:// and IPFS gateway URLs are checked; other URIs are returned unchanged.
	Resolve(ctx context.Context, uri string) (string, error)

	// Candidates lists every gateway URL that may serve uri, in preference order.
	// A plain URL is its own single candidate.
	Candidates(uri string) []string

	// Gateway rewrites uri onto the preferred gateway without probing
	Gateway(uri string) string
}

type resolver struct {
	httpClient adapter.HTTPClient
	config     Config
}

func NewResolver(httpClient adapter.HTTPClient, config Config) Resolver {
	return &resolver{
		httpClient: httpClient,
		config: Config{
			IPFSGateways:    trimGateways(config.IPFSGateways),
			ArweaveGateways: trimGateways(config.ArweaveGateways),
		},
	}
}

func trimGateways(gateways []string) []string {
	trimmed := make([]string, 0, len(gateways))
	for _, gw := range gateways {
		if gw = strings.TrimSuffix(strings.TrimSpace(gw), "/"); gw != "" {
			trimmed = append(trimmed, gw)
		}
	}
	return trimmed
}

type scheme int

const (
	schemePlain scheme = iota
	schemeIPFS
	schemeArweave
)

// parse splits uri into its storage scheme and the gateway-relative path
func parse(uri string) (scheme, string) {
	if path, ok := strings.CutPrefix(uri, "ipfs://"); ok {
		// ipfs://ipfs/<cid> shows up in older mints
		return schemeIPFS, strings.TrimPrefix(path, "ipfs/")
	}
	if path, ok := strings.CutPrefix(uri, "ar://"); ok {
		return schemeArweave, path
	}
	if strings.HasPrefix(uri, "http") {
		// Route gateway URLs through the configured gateways to avoid private ones
		if _, path, ok := strings.Cut(uri, "/ipfs/"); ok && path != "" {
			return schemeIPFS, path
		}
	}
	return schemePlain, uri
}

func (r *resolver) Candidates(uri string) []string {
	kind, path := parse(uri)

	var gateways []string
	switch kind {
	case schemeIPFS:
		for _, gw := range r.config.IPFSGateways {
			gateways = append(gateways, fmt.Sprintf("%s/ipfs/%s", gw, path))
		}
	case schemeArweave:
		for _, gw := range r.config.ArweaveGateways {
			gateways = append(gateways, fmt.Sprintf("%s/%s", gw, path))
		}
	default:
		return []string{uri}
	}
	return gateways
}

func (r *resolver) Gateway(uri string) string {
	if candidates := r.Candidates(uri); len(candidates) > 0 {
		return candidates[0]
	}
	return uri
}

func (r *resolver) Resolve(ctx context.Context, uri string) (string, error) {
	kind, _ := parse(uri)
	if kind == schemePlain {
		return uri, nil
	}

	candidates := r.Candidates(uri)
	if len(candidates) == 0 {
		return "", fmt.Errorf("no gateways configured for %s", uri)
	}

	url, err := FirstOK(ctx, candidates, r.check)
	if err != nil {
		return "", fmt.Errorf("no working gateway found for %s: %w", uri, err)
	}

	logger.DebugCtx(ctx, "Resolved token URI", zap.String("uri", uri), zap.String("url", url))
	return url, nil
}

func (r *resolver) check(ctx context.Context, url string) error {
	resp, err := r.httpClient.Head(ctx, url)
	if err != nil {
		return err
	}
	if err := resp.Body.Close(); err != nil {
		logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", url))
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}
	return nil
}

// FirstOK runs try against every url in parallel and returns the first url that succeeds.
// The remaining attempts are cancelled and awaited before it returns.
func FirstOK(ctx context.Context, urls []string, try func(ctx context.Context, url string) error) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		url string
		err error
	}

	resultCh := make(chan result, len(urls))
	var wg sync.WaitGroup
	for _, url := range urls {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()
			resultCh <- result{url: url, err: try(ctx, url)}
		}(url)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	var winner string
	var lastErr error
	for res := range resultCh {
		if res.err != nil {
			lastErr = res.err
			continue
		}
		if winner == "" {
			winner = res.url
			cancel()
		}
	}

	if winner == "" {
		if lastErr == nil {
			lastErr = fmt.Errorf("no urls to try")
		}
		return "", lastErr
	}
	return winner, nil
}
