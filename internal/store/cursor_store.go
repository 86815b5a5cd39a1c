package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/feral-file/ff-market/internal/domain"
)

// CursorStore persists the last block the event emitter has published for a chain
//
//go:generate mockgen -source=cursor_store.go -destination=../mocks/cursor_store.go -package=mocks -mock_names=CursorStore=MockCursorStore
type CursorStore interface {
	// GetBlockCursor returns the saved block, 0 when none was saved
	GetBlockCursor(ctx context.Context, chain domain.Chain) (uint64, error)
	// SetBlockCursor saves the block
	SetBlockCursor(ctx context.Context, chain domain.Chain, blockNumber uint64) error
}

type kvCursorStore struct {
	store Store
}

// NewCursorStore creates a cursor store backed by the key-value table
func NewCursorStore(store Store) CursorStore {
	return &kvCursorStore{store: store}
}

func cursorKey(chain domain.Chain) string {
	return fmt.Sprintf("block_cursor:%s", chain)
}

// GetBlockCursor returns the saved block, 0 when none was saved
func (s *kvCursorStore) GetBlockCursor(ctx context.Context, chain domain.Chain) (uint64, error) {
	value, err := s.store.GetKeyValue(ctx, cursorKey(chain))
	if err != nil {
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}
	if value == "" {
		return 0, nil
	}

	blockNumber, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse block cursor %q: %w", value, err)
	}

	return blockNumber, nil
}

// SetBlockCursor saves the block
func (s *kvCursorStore) SetBlockCursor(ctx context.Context, chain domain.Chain, blockNumber uint64) error {
	if err := s.store.SetKeyValue(ctx, cursorKey(chain), strconv.FormatUint(blockNumber, 10)); err != nil {
		return fmt.Errorf("failed to set block cursor: %w", err)
	}
	return nil
}
