package wallet

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/providers/ethereum"
)

// SignerFactory builds a signer from its configuration
type SignerFactory func(cfg config.SignerConfig) (ethereum.Signer, error)

// Connector connects a wallet kind to its signer backend and brings the provider onto
// the marketplace network.
//
// Switching only moves the wallet provider's own connection. Transactions are signed
// here but sent through the chain client, which is dialed from chain.rpc_url at startup
// and never follows a switch; Connect succeeding means the signer is usable with it
// because both are bound to the marketplace chain id.
type Connector struct {
	wallets   config.WalletsConfig
	network   domain.Network
	provider  Provider
	session   *Session
	newSigner SignerFactory
}

// NewConnector creates a connector. newSigner defaults to NewSigner when nil.
func NewConnector(wallets config.WalletsConfig, network domain.Network, provider Provider, session *Session, newSigner SignerFactory) *Connector {
	if newSigner == nil {
		newSigner = NewSigner
	}
	return &Connector{
		wallets:   wallets,
		network:   network,
		provider:  provider,
		session:   session,
		newSigner: newSigner,
	}
}

// Connect resolves the signer for the wallet kind, ensures the provider is on the
// marketplace network and initialises the session
func (c *Connector) Connect(ctx context.Context, kind domain.WalletKind) (SessionState, error) {
	if !domain.IsValidWalletKind(kind) {
		return SessionState{}, fmt.Errorf("%w: %s", domain.ErrNoProviderFound, kind)
	}

	signerCfg, ok := c.wallets.Signer(kind)
	if !ok {
		return SessionState{}, fmt.Errorf("%w: %s", domain.ErrNoProviderFound, kind)
	}

	signer, err := c.newSigner(signerCfg)
	if err != nil {
		return SessionState{}, fmt.Errorf("failed to create %s signer: %w", kind, err)
	}

	if err := c.ensureNetwork(ctx); err != nil {
		return SessionState{}, err
	}

	state := c.session.connect(signer, c.network.ChainID, kind)
	logger.InfoCtx(ctx, "Wallet connected",
		zap.String("walletKind", string(kind)),
		zap.String("address", state.Address),
		zap.Uint64("chainId", state.ChainID))

	return state, nil
}

// Disconnect clears the session
func (c *Connector) Disconnect() {
	c.session.Disconnect()
}

// Current returns the session state
func (c *Connector) Current() SessionState {
	return c.session.Current()
}

// ensureNetwork switches to the marketplace chain, registering it first when the
// provider does not know it
func (c *Connector) ensureNetwork(ctx context.Context) error {
	current, err := c.provider.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNetworkMismatch, err)
	}
	if current == c.network.ChainID {
		return nil
	}

	logger.InfoCtx(ctx, "Provider on a different network, switching",
		zap.Uint64("current", current),
		zap.Uint64("expected", c.network.ChainID))

	err = c.provider.SwitchChain(ctx, c.network.ChainID)
	if errors.Is(err, domain.ErrUnrecognizedChain) {
		if addErr := c.provider.AddChain(ctx, c.network); addErr != nil {
			return fmt.Errorf("%w: failed to add %s: %v", domain.ErrNetworkMismatch, c.network.Name, addErr)
		}
		err = c.provider.SwitchChain(ctx, c.network.ChainID)
	}
	if err != nil {
		return fmt.Errorf("%w: failed to switch to %s: %v", domain.ErrNetworkMismatch, c.network.Name, err)
	}

	return nil
}
