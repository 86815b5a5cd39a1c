package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/gowebpki/jcs"
)

// JSON defines an interface for JSON operations to enable mocking
//
//go:generate mockgen -source=encoding.go -destination=../mocks/encoding.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// RealJSON implements JSON using the standard encoding/json package
type RealJSON struct{}

// NewJSON creates a new real JSON implementation
func NewJSON() JSON {
	return &RealJSON{}
}

func (j *RealJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (j *RealJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// CanonicalHasher derives stable digests from JSON documents (RFC 8785 canonical form)
//
//go:generate mockgen -source=encoding.go -destination=../mocks/encoding.go -package=mocks -mock_names=CanonicalHasher=MockCanonicalHasher
type CanonicalHasher interface {
	// Canonicalize transforms a JSON document into its canonical byte form
	Canonicalize(data []byte) ([]byte, error)

	// Digest returns the hex SHA-256 of the canonical form of v marshalled as JSON
	Digest(v interface{}) (string, error)
}

// RealCanonicalHasher implements CanonicalHasher using gowebpki/jcs
type RealCanonicalHasher struct{}

// NewCanonicalHasher creates a new canonical hasher
func NewCanonicalHasher() CanonicalHasher {
	return &RealCanonicalHasher{}
}

func (h *RealCanonicalHasher) Canonicalize(data []byte) ([]byte, error) {
	return jcs.Transform(data)
}

func (h *RealCanonicalHasher) Digest(v interface{}) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
