package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
)

// Signer produces transaction options for the account it controls
//
//go:generate mockgen -source=transact.go -destination=../../mocks/signer.go -package=mocks -mock_names=Signer=MockSigner
type Signer interface {
	// Address returns the account the signer signs for
	Address() common.Address

	// TransactOpts returns fresh transact options bound to the chain id
	TransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error)
}

func (c *ethereumClient) transact(
	ctx context.Context,
	signer Signer,
	contract common.Address,
	contractABI abi.ABI,
	value *big.Int,
	gasLimit uint64,
	method string,
	args ...interface{},
) (*types.Transaction, error) {
	if signer == nil {
		return nil, domain.ErrNotConnected
	}

	opts, err := signer.TransactOpts(ctx, new(big.Int).SetUint64(c.cfg.ChainID))
	if err != nil {
		return nil, classifyError(err)
	}
	opts.Context = ctx
	if value != nil {
		opts.Value = value
	}
	if gasLimit > 0 {
		opts.GasLimit = gasLimit
	}

	bound := bind.NewBoundContract(contract, contractABI, c.client, c.client, c.client)
	tx, err := bound.Transact(opts, method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to submit %s: %w", method, classifyError(err))
	}

	logger.InfoCtx(ctx, "Transaction submitted",
		zap.String("method", method),
		zap.String("from", opts.From.Hex()),
		zap.String("txHash", tx.Hash().Hex()))

	return tx, nil
}

func parseAddress(address string) (common.Address, error) {
	if !common.IsHexAddress(address) {
		return common.Address{}, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, address)
	}
	return common.HexToAddress(address), nil
}

// Mint submits mintNFT(to, uri) on the collection
func (c *ethereumClient) Mint(ctx context.Context, signer Signer, to string, tokenURI string) (*types.Transaction, error) {
	toAddr, err := parseAddress(to)
	if err != nil {
		return nil, err
	}
	return c.transact(ctx, signer, c.cfg.Contracts.Collection, collectionABI, nil, 0, "mintNFT", toAddr, tokenURI)
}

// Approve submits approve(operator, tokenId) on the collection
func (c *ethereumClient) Approve(ctx context.Context, signer Signer, operator string, tokenID *big.Int) (*types.Transaction, error) {
	operatorAddr, err := parseAddress(operator)
	if err != nil {
		return nil, err
	}
	return c.transact(ctx, signer, c.cfg.Contracts.Collection, collectionABI, nil, 0, "approve", operatorAddr, tokenID)
}

// List submits listNFT(nft, tokenId, price) on the marketplace
func (c *ethereumClient) List(ctx context.Context, signer Signer, nft string, tokenID, price *big.Int) (*types.Transaction, error) {
	nftAddr, err := parseAddress(nft)
	if err != nil {
		return nil, err
	}
	return c.transact(ctx, signer, c.cfg.Contracts.Marketplace, marketplaceABI, nil, 0, "listNFT", nftAddr, tokenID, price)
}

// Buy submits buyNFT(listingId) on the marketplace carrying value and a fixed gas limit
func (c *ethereumClient) Buy(ctx context.Context, signer Signer, listingID, value *big.Int, gasLimit uint64) (*types.Transaction, error) {
	return c.transact(ctx, signer, c.cfg.Contracts.Marketplace, marketplaceABI, value, gasLimit, "buyNFT", listingID)
}

// MakeOffer submits makeOffer(nft, tokenId) on the offer book carrying the offered amount
func (c *ethereumClient) MakeOffer(ctx context.Context, signer Signer, nft string, tokenID, amount *big.Int) (*types.Transaction, error) {
	nftAddr, err := parseAddress(nft)
	if err != nil {
		return nil, err
	}
	return c.transact(ctx, signer, c.cfg.Contracts.OfferBook, offerBookABI, amount, 0, "makeOffer", nftAddr, tokenID)
}

// AcceptOffer submits acceptOffer(offerId) on the offer book
func (c *ethereumClient) AcceptOffer(ctx context.Context, signer Signer, offerID *big.Int) (*types.Transaction, error) {
	return c.transact(ctx, signer, c.cfg.Contracts.OfferBook, offerBookABI, nil, 0, "acceptOffer", offerID)
}

// CancelOffer submits cancelOffer(offerId) on the offer book
func (c *ethereumClient) CancelOffer(ctx context.Context, signer Signer, offerID *big.Int) (*types.Transaction, error) {
	return c.transact(ctx, signer, c.cfg.Contracts.OfferBook, offerBookABI, nil, 0, "cancelOffer", offerID)
}

// TransferFrom submits transferFrom(from, to, tokenId) on the collection
func (c *ethereumClient) TransferFrom(ctx context.Context, signer Signer, from, to string, tokenID *big.Int) (*types.Transaction, error) {
	fromAddr, err := parseAddress(from)
	if err != nil {
		return nil, err
	}
	toAddr, err := parseAddress(to)
	if err != nil {
		return nil, err
	}
	return c.transact(ctx, signer, c.cfg.Contracts.Collection, collectionABI, nil, 0, "transferFrom", fromAddr, toAddr, tokenID)
}

// SetFee submits setFee(bps) on the marketplace
func (c *ethereumClient) SetFee(ctx context.Context, signer Signer, feeBasisPoints uint64) (*types.Transaction, error) {
	if feeBasisPoints > domain.MAX_FEE_BASIS_POINTS {
		return nil, fmt.Errorf("%w: %d basis points", domain.ErrInvalidFee, feeBasisPoints)
	}
	return c.transact(ctx, signer, c.cfg.Contracts.Marketplace, marketplaceABI, nil, 0, "setFee", new(big.Int).SetUint64(feeBasisPoints))
}

// SetFeeRecipient submits setFeeRecipient(recipient) on the marketplace
func (c *ethereumClient) SetFeeRecipient(ctx context.Context, signer Signer, recipient string) (*types.Transaction, error) {
	recipientAddr, err := parseAddress(recipient)
	if err != nil {
		return nil, err
	}
	return c.transact(ctx, signer, c.cfg.Contracts.Marketplace, marketplaceABI, nil, 0, "setFeeRecipient", recipientAddr)
}

// WaitForReceipt waits for the transaction to be mined and requires a successful status
func (c *ethereumClient) WaitForReceipt(ctx context.Context, from common.Address, tx *types.Transaction) (*types.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, c.cfg.ConfirmationTimeout)
	defer cancel()

	receipt, err := bind.WaitMined(waitCtx, c.client, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for transaction %s: %w", tx.Hash().Hex(), err)
	}

	if receipt.Status == types.ReceiptStatusSuccessful {
		return receipt, nil
	}

	return nil, &domain.RevertError{
		TxHash: tx.Hash().Hex(),
		Reason: c.replayRevertReason(ctx, from, tx, receipt.BlockNumber),
	}
}

// replayRevertReason re-executes a failed transaction as a call at its block to recover
// the revert reason. Returns an empty string when no reason can be recovered.
func (c *ethereumClient) replayRevertReason(ctx context.Context, from common.Address, tx *types.Transaction, blockNumber *big.Int) string {
	_, err := c.client.CallContract(ctx, ethereum.CallMsg{
		From:  from,
		To:    tx.To(),
		Gas:   tx.Gas(),
		Value: tx.Value(),
		Data:  tx.Data(),
	}, blockNumber)
	if err == nil {
		return ""
	}

	if reason, ok := revertReason(err); ok {
		return reason
	}

	logger.WarnCtx(ctx, "Could not decode revert reason",
		zap.String("txHash", tx.Hash().Hex()),
		zap.Error(err))
	return ""
}

// revertReason extracts the Error(string) payload carried by a JSON-RPC error
func revertReason(err error) (string, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return "", false
	}

	raw, ok := dataErr.ErrorData().(string)
	if !ok {
		return "", false
	}

	data, decodeErr := hexutil.Decode(raw)
	if decodeErr != nil {
		return "", false
	}

	reason, unpackErr := abi.UnpackRevert(data)
	if unpackErr != nil {
		return "", false
	}
	return reason, true
}

// classifyError maps node and signer failures onto domain errors
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var revertErr *domain.RevertError
	var providerErr *domain.ProviderError
	if errors.As(err, &revertErr) || errors.As(err, &providerErr) ||
		errors.Is(err, domain.ErrUserRejected) || errors.Is(err, domain.ErrInsufficientFunds) {
		return err
	}

	if errors.Is(err, keystore.ErrLocked) || errors.Is(err, keystore.ErrDecrypt) {
		return fmt.Errorf("%w: %v", domain.ErrUserRejected, err)
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "insufficient funds") {
		return fmt.Errorf("%w: %v", domain.ErrInsufficientFunds, err)
	}

	if reason, ok := revertReason(err); ok {
		return &domain.RevertError{Reason: reason}
	}

	if idx := strings.Index(msg, "execution reverted"); idx >= 0 {
		reason := strings.TrimSpace(strings.TrimPrefix(err.Error()[idx+len("execution reverted"):], ":"))
		return &domain.RevertError{Reason: reason}
	}

	return err
}
