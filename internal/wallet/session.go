package wallet

import (
	"sync"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/providers/ethereum"
)

// SessionState is the observable state of the wallet session
type SessionState struct {
	Connected  bool              `json:"connected"`
	Address    string            `json:"address,omitempty"`
	ChainID    uint64            `json:"chain_id,omitempty"`
	WalletKind domain.WalletKind `json:"wallet_kind,omitempty"`
}

// Session is the process-wide wallet session. Every change is published to all subscribers.
type Session struct {
	mu     sync.RWMutex
	state  SessionState
	signer ethereum.Signer

	subMu  sync.Mutex
	subs   map[uint64]func(SessionState)
	nextID uint64
}

// NewSession creates a disconnected session
func NewSession() *Session {
	return &Session{subs: make(map[uint64]func(SessionState))}
}

// Current returns a snapshot of the session state
func (s *Session) Current() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Signer returns the connected signer with the state it was connected under
func (s *Session) Signer() (ethereum.Signer, SessionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.state.Connected || s.signer == nil {
		return nil, s.state, domain.ErrNotConnected
	}
	return s.signer, s.state, nil
}

// connect replaces the session with a connected state
func (s *Session) connect(signer ethereum.Signer, chainID uint64, kind domain.WalletKind) SessionState {
	state := SessionState{
		Connected:  true,
		Address:    signer.Address().Hex(),
		ChainID:    chainID,
		WalletKind: kind,
	}

	s.mu.Lock()
	s.state = state
	s.signer = signer
	s.mu.Unlock()

	s.publish(state)
	return state
}

// Disconnect clears the session
func (s *Session) Disconnect() {
	s.mu.Lock()
	wasConnected := s.state.Connected
	s.state = SessionState{}
	s.signer = nil
	s.mu.Unlock()

	if wasConnected {
		s.publish(SessionState{})
	}
}

// Subscribe registers fn for session changes and returns the function that removes it
func (s *Session) Subscribe(fn func(SessionState)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *Session) publish(state SessionState) {
	s.subMu.Lock()
	fns := make([]func(SessionState), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}
