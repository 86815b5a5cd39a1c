package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/providers/ethereum"
)

// keySigner signs with an ECDSA key held in memory
type keySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewSigner builds the signer backend described by the configuration.
// A raw private key takes precedence over a keystore file.
func NewSigner(cfg config.SignerConfig) (ethereum.Signer, error) {
	switch {
	case cfg.PrivateKey != "":
		return NewPrivateKeySigner(cfg.PrivateKey)
	case cfg.KeystorePath != "":
		return NewKeystoreSigner(cfg.KeystorePath, cfg.KeystorePassphrase)
	default:
		return nil, domain.ErrNoProviderFound
	}
}

// NewPrivateKeySigner creates a signer from a hex encoded private key
func NewPrivateKeySigner(hexKey string) (ethereum.Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return &keySigner{key: key, address: crypto.PubkeyToAddress(key.PublicKey)}, nil
}

// NewKeystoreSigner decrypts a keystore v3 file with the passphrase.
// A wrong passphrase is reported as a rejected request.
func NewKeystoreSigner(path, passphrase string) (ethereum.Signer, error) {
	raw, err := os.ReadFile(path) //nolint:gosec,G304 // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore: %w", err)
	}

	key, err := keystore.DecryptKey(raw, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUserRejected, err)
	}

	return &keySigner{key: key.PrivateKey, address: key.Address}, nil
}

func (s *keySigner) Address() common.Address {
	return s.address
}

func (s *keySigner) TransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(s.key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}
