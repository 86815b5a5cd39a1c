package metadata

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/uri"
)

// TokenMetadata is the token metadata document normalized onto the asset fields
type TokenMetadata struct {
	Name        string
	Description string
	// Image and Animation are HTTP URLs on the preferred gateway
	Image     string
	Animation string
	Artist    string
}

// MediaURI is the URI the asset should display
func (m *TokenMetadata) MediaURI() string {
	if m.Image != "" {
		return m.Image
	}
	return m.Animation
}

// Resolver fetches and normalizes the metadata behind a tokenURI
//
//go:generate mockgen -source=resolver.go -destination=../mocks/metadata_resolver.go -package=mocks -mock_names=Resolver=MockMetadataResolver
type Resolver interface {
	// Resolve reads the document at tokenURI. A tokenURI that points straight at media
	// yields metadata with only Image set.
	Resolve(ctx context.Context, tokenURI string) (*TokenMetadata, error)
}

type resolver struct {
	uriResolver uri.Resolver
	httpClient  adapter.HTTPClient
	json        adapter.JSON
}

func NewResolver(uriResolver uri.Resolver, httpClient adapter.HTTPClient, json adapter.JSON) Resolver {
	return &resolver{
		uriResolver: uriResolver,
		httpClient:  httpClient,
		json:        json,
	}
}

func (r *resolver) Resolve(ctx context.Context, tokenURI string) (*TokenMetadata, error) {
	tokenURI = strings.TrimSpace(tokenURI)
	if tokenURI == "" {
		return nil, fmt.Errorf("%w: empty token URI", domain.ErrInvalidInput)
	}

	var doc map[string]interface{}
	var err error
	if strings.HasPrefix(tokenURI, "data:") {
		doc, err = r.parseDataURI(tokenURI)
	} else {
		doc, err = r.fetch(ctx, tokenURI)
	}

	if errors.Is(err, adapter.ErrNotJSON) {
		logger.DebugCtx(ctx, "Token URI points at media", zap.String("uri", tokenURI))
		return &TokenMetadata{Image: r.uriResolver.Gateway(tokenURI)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata from %s: %w", tokenURI, err)
	}

	return r.normalize(doc), nil
}

// fetch tries every gateway candidate in parallel and keeps the first document
func (r *resolver) fetch(ctx context.Context, tokenURI string) (map[string]interface{}, error) {
	candidates := r.uriResolver.Candidates(tokenURI)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no gateways configured")
	}

	var mu sync.Mutex
	docs := make(map[string]map[string]interface{}, len(candidates))
	var notJSON atomic.Bool

	winner, err := uri.FirstOK(ctx, candidates, func(ctx context.Context, url string) error {
		var doc map[string]interface{}
		if err := r.httpClient.Get(ctx, url, &doc); err != nil {
			if errors.Is(err, adapter.ErrNotJSON) {
				notJSON.Store(true)
			}
			return err
		}
		mu.Lock()
		docs[url] = doc
		mu.Unlock()
		return nil
	})
	if err != nil {
		if notJSON.Load() {
			return nil, adapter.ErrNotJSON
		}
		return nil, err
	}

	return docs[winner], nil
}

// parseDataURI decodes data:application/json[;base64],<payload>
func (r *resolver) parseDataURI(dataURI string) (map[string]interface{}, error) {
	mediaType, data, ok := strings.Cut(strings.TrimPrefix(dataURI, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("invalid data URI format")
	}

	if mediaType != "" && !strings.Contains(mediaType, "json") && !strings.HasPrefix(mediaType, "text/plain") {
		return nil, adapter.ErrNotJSON
	}

	var raw []byte
	if strings.HasSuffix(mediaType, ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64: %w", err)
		}
		raw = decoded
	} else {
		unescaped, err := url.PathUnescape(data)
		if err != nil {
			return nil, fmt.Errorf("failed to unescape data URI: %w", err)
		}
		raw = []byte(unescaped)
	}

	var doc map[string]interface{}
	if err := r.json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", adapter.ErrNotJSON, err)
	}
	return doc, nil
}

// normalize follows the OpenSea metadata standard
// https://docs.opensea.io/docs/metadata-standards
func (r *resolver) normalize(doc map[string]interface{}) *TokenMetadata {
	md := &TokenMetadata{
		Name:        stringField(doc, "name"),
		Description: stringField(doc, "description"),
		Artist:      resolveArtist(doc),
	}

	image := stringField(doc, "image")
	if image == "" {
		image = stringField(doc, "image_url")
	}
	animation := stringField(doc, "animation_url")
	if g := stringField(doc, "generator_url"); g != "" {
		animation = g
	}

	if image != "" {
		md.Image = r.uriResolver.Gateway(image)
	}
	if animation != "" {
		md.Animation = r.uriResolver.Gateway(animation)
	}
	return md
}

func stringField(doc map[string]interface{}, key string) string {
	v, _ := doc[key].(string)
	return strings.TrimSpace(v)
}

// resolveArtist looks through the fields marketplaces commonly use for the creator
func resolveArtist(doc map[string]interface{}) string {
	if artist := stringField(doc, "artist"); artist != "" {
		return artist
	}

	if traits, ok := doc["attributes"].([]interface{}); ok {
		for _, trait := range traits {
			traitMap, ok := trait.(map[string]interface{})
			if !ok {
				continue
			}
			traitType, _ := traitMap["trait_type"].(string)
			switch strings.ToLower(traitType) {
			case "artist", "creator":
				if artist, ok := traitMap["value"].(string); ok {
					return artist
				}
			}
		}
	}

	if collectionName := stringField(doc, "collection_name"); collectionName != "" {
		if _, artist, ok := strings.Cut(collectionName, " by "); ok {
			return artist
		}
	}

	for _, key := range []string{"created_by", "createdBy", "creator"} {
		if artist := stringField(doc, key); artist != "" {
			return artist
		}
	}

	return ""
}
