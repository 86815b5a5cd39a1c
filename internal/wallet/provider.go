package wallet

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
)

// Provider is the network side of a wallet: it reports the active chain, switches
// between registered chains and registers new ones.
//
//go:generate mockgen -source=provider.go -destination=../mocks/wallet_provider.go -package=mocks -mock_names=Provider=MockProvider
type Provider interface {
	// ChainID returns the chain id of the active network
	ChainID(ctx context.Context) (uint64, error)

	// SwitchChain activates a registered network.
	// Returns *domain.ProviderError with code 4902 when the chain was never registered.
	SwitchChain(ctx context.Context, chainID uint64) error

	// AddChain registers a network descriptor after verifying its RPC endpoint serves that chain
	AddChain(ctx context.Context, network domain.Network) error

	// Close releases the active connection
	Close()
}

type rpcProvider struct {
	dialer adapter.EthClientDialer

	mu       sync.Mutex
	networks map[uint64]domain.Network
	client   adapter.EthClient
}

// NewRPCProvider dials the default RPC endpoint and treats whichever chain it serves as
// the initially active network
func NewRPCProvider(ctx context.Context, dialer adapter.EthClientDialer, defaultRPCURL string) (Provider, error) {
	client, err := dialer.Dial(ctx, defaultRPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", defaultRPCURL, err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to read chain id: %w", err)
	}

	return &rpcProvider{
		dialer: dialer,
		networks: map[uint64]domain.Network{
			chainID.Uint64(): {ChainID: chainID.Uint64(), RPCURL: defaultRPCURL},
		},
		client: client,
	}, nil
}

func (p *rpcProvider) ChainID(ctx context.Context) (uint64, error) {
	p.mu.Lock()
	client := p.client
	p.mu.Unlock()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read chain id: %w", err)
	}
	return chainID.Uint64(), nil
}

func (p *rpcProvider) SwitchChain(ctx context.Context, chainID uint64) error {
	p.mu.Lock()
	network, ok := p.networks[chainID]
	p.mu.Unlock()

	if !ok {
		return &domain.ProviderError{
			Code:    domain.ProviderErrorUnrecognizedChain,
			Message: fmt.Sprintf("unrecognized chain id %d", chainID),
		}
	}

	client, err := p.dialVerified(ctx, network)
	if err != nil {
		return err
	}

	p.mu.Lock()
	previous := p.client
	p.client = client
	p.mu.Unlock()

	if previous != nil {
		previous.Close()
	}

	logger.InfoCtx(ctx, "Switched network", zap.Uint64("chainId", chainID), zap.String("name", network.Name))
	return nil
}

func (p *rpcProvider) AddChain(ctx context.Context, network domain.Network) error {
	if network.ChainID == 0 || network.RPCURL == "" {
		return fmt.Errorf("invalid network descriptor for chain %d", network.ChainID)
	}

	client, err := p.dialVerified(ctx, network)
	if err != nil {
		return err
	}
	client.Close()

	p.mu.Lock()
	p.networks[network.ChainID] = network
	p.mu.Unlock()

	logger.InfoCtx(ctx, "Registered network",
		zap.Uint64("chainId", network.ChainID),
		zap.String("name", network.Name),
		zap.String("symbol", network.NativeSymbol))
	return nil
}

// dialVerified dials the network RPC and requires it to report the expected chain id
func (p *rpcProvider) dialVerified(ctx context.Context, network domain.Network) (adapter.EthClient, error) {
	client, err := p.dialer.Dial(ctx, network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", network.RPCURL, err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to read chain id from %s: %w", network.RPCURL, err)
	}
	if chainID.Uint64() != network.ChainID {
		client.Close()
		return nil, fmt.Errorf("rpc %s serves chain %d, expected %d", network.RPCURL, chainID.Uint64(), network.ChainID)
	}

	return client, nil
}

func (p *rpcProvider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		p.client.Close()
		p.client = nil
	}
}
