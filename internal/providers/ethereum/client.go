package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/block"
	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
)

// Contracts holds the addresses of the three marketplace contracts
type Contracts struct {
	Marketplace common.Address
	Collection  common.Address
	OfferBook   common.Address
}

// Addresses returns the contract addresses in a stable order
func (c Contracts) Addresses() []common.Address {
	return []common.Address{c.Collection, c.Marketplace, c.OfferBook}
}

// ClientConfig holds the configuration of the chain gateway
type ClientConfig struct {
	Chain               domain.Chain
	ChainID             uint64
	Contracts           Contracts
	ConfirmationTimeout time.Duration
	Blocks              block.Config
}

// NewClientConfig builds the client configuration from the chain section of a service config
func NewClientConfig(cfg config.ChainConfig) ClientConfig {
	return ClientConfig{
		Chain:   cfg.ChainID,
		ChainID: cfg.Network.ChainID,
		Contracts: Contracts{
			Marketplace: common.HexToAddress(cfg.Contracts.Marketplace),
			Collection:  common.HexToAddress(cfg.Contracts.Collection),
			OfferBook:   common.HexToAddress(cfg.Contracts.OfferBook),
		},
		ConfirmationTimeout: cfg.ConfirmationTimeout,
		Blocks: block.Config{
			HeadTTL:            cfg.BlockCache.HeadTTL,
			StaleWindow:        cfg.BlockCache.StaleWindow,
			TimestampCacheSize: cfg.BlockCache.TimestampCacheSize,
		},
	}
}

// EthereumClient is the chain gateway: typed reads and writes against the collection,
// marketplace and offer book contracts plus event decoding.
//
//go:generate mockgen -source=client.go -destination=../../mocks/ethereum_client.go -package=mocks -mock_names=EthereumClient=MockEthereumClient
type EthereumClient interface {
	// ChainID returns the numeric chain id the client is configured for
	ChainID() uint64

	// Contracts returns the configured contract addresses
	Contracts() Contracts

	// ParseEventLog parses a contract log into a marketplace event.
	// Returns nil without error for logs that are not marketplace events.
	ParseEventLog(ctx context.Context, vLog types.Log) (*domain.MarketplaceEvent, error)

	// SubscribeFilterLogs subscribes to filter logs
	SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)

	// LatestBlock returns the chain head, served from a short-lived cache
	LatestBlock(ctx context.Context) (uint64, error)

	// GetMarketplaceEvents returns the decoded marketplace events in the block range
	GetMarketplaceEvents(ctx context.Context, fromBlock, toBlock uint64) ([]domain.MarketplaceEvent, error)

	// GetTransactionEvents returns the marketplace events emitted by a mined transaction,
	// in log order and without block timestamps
	GetTransactionEvents(ctx context.Context, txHash string) ([]domain.MarketplaceEvent, error)

	// TransactionStatus reports whether a transaction is pending, succeeded or reverted
	TransactionStatus(ctx context.Context, txHash string) (domain.TxStatus, error)

	// GetListing reads a listing from the marketplace contract
	GetListing(ctx context.Context, listingID *big.Int) (*domain.ChainListing, error)

	// GetOffer reads an offer from the offer book contract
	GetOffer(ctx context.Context, offerID *big.Int) (*domain.ChainOffer, error)

	// ListingCount returns the number of listings ever created
	ListingCount(ctx context.Context) (*big.Int, error)

	// OfferCount returns the number of offers ever created
	OfferCount(ctx context.Context) (*big.Int, error)

	// OwnerOf returns the current owner of a collection token
	OwnerOf(ctx context.Context, tokenID *big.Int) (string, error)

	// TokenURI returns the metadata URI of a collection token
	TokenURI(ctx context.Context, tokenID *big.Int) (string, error)

	// GetApproved returns the address approved to transfer a collection token
	GetApproved(ctx context.Context, tokenID *big.Int) (string, error)

	// TotalMinted returns the number of tokens minted by the collection
	TotalMinted(ctx context.Context) (*big.Int, error)

	// BalanceAt returns the native balance of an address
	BalanceAt(ctx context.Context, address string) (*big.Int, error)

	// MarketplaceSettings reads the fee, fee recipient and owner of the marketplace
	MarketplaceSettings(ctx context.Context) (*domain.MarketplaceSettings, error)

	// Mint submits mintNFT(to, uri) on the collection
	Mint(ctx context.Context, signer Signer, to string, tokenURI string) (*types.Transaction, error)

	// Approve submits approve(operator, tokenId) on the collection
	Approve(ctx context.Context, signer Signer, operator string, tokenID *big.Int) (*types.Transaction, error)

	// List submits listNFT(nft, tokenId, price) on the marketplace
	List(ctx context.Context, signer Signer, nft string, tokenID, price *big.Int) (*types.Transaction, error)

	// Buy submits buyNFT(listingId) on the marketplace carrying value and a fixed gas limit
	Buy(ctx context.Context, signer Signer, listingID, value *big.Int, gasLimit uint64) (*types.Transaction, error)

	// MakeOffer submits makeOffer(nft, tokenId) on the offer book carrying the offered amount
	MakeOffer(ctx context.Context, signer Signer, nft string, tokenID, amount *big.Int) (*types.Transaction, error)

	// AcceptOffer submits acceptOffer(offerId) on the offer book
	AcceptOffer(ctx context.Context, signer Signer, offerID *big.Int) (*types.Transaction, error)

	// CancelOffer submits cancelOffer(offerId) on the offer book
	CancelOffer(ctx context.Context, signer Signer, offerID *big.Int) (*types.Transaction, error)

	// TransferFrom submits transferFrom(from, to, tokenId) on the collection
	TransferFrom(ctx context.Context, signer Signer, from, to string, tokenID *big.Int) (*types.Transaction, error)

	// SetFee submits setFee(bps) on the marketplace
	SetFee(ctx context.Context, signer Signer, feeBasisPoints uint64) (*types.Transaction, error)

	// SetFeeRecipient submits setFeeRecipient(recipient) on the marketplace
	SetFeeRecipient(ctx context.Context, signer Signer, recipient string) (*types.Transaction, error)

	// WaitForReceipt waits for the transaction to be mined and requires a successful status.
	// A failed receipt is returned as *domain.RevertError carrying the decoded reason.
	WaitForReceipt(ctx context.Context, from common.Address, tx *types.Transaction) (*types.Receipt, error)

	// Close closes the connection
	Close()
}

type ethereumClient struct {
	cfg    ClientConfig
	client adapter.EthClient
	clock  adapter.Clock
	blocks block.Provider
}

func NewClient(cfg ClientConfig, client adapter.EthClient, clock adapter.Clock) (EthereumClient, error) {
	if cfg.ConfirmationTimeout <= 0 {
		cfg.ConfirmationTimeout = 3 * time.Minute
	}

	c := &ethereumClient{cfg: cfg, client: client, clock: clock}
	blocks, err := block.NewProvider(c, cfg.Blocks, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to create block provider: %w", err)
	}
	c.blocks = blocks

	return c, nil
}

func (c *ethereumClient) ChainID() uint64 {
	return c.cfg.ChainID
}

func (c *ethereumClient) Contracts() Contracts {
	return c.cfg.Contracts
}

// SubscribeFilterLogs subscribes to filter logs
func (c *ethereumClient) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return c.client.SubscribeFilterLogs(ctx, query, ch)
}

func (c *ethereumClient) LatestBlock(ctx context.Context) (uint64, error) {
	return c.blocks.GetLatestBlock(ctx)
}

// FetchLatestBlock reads the head from the node, bypassing the cache
func (c *ethereumClient) FetchLatestBlock(ctx context.Context) (uint64, error) {
	header, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, err
	}
	return header.Number.Uint64(), nil
}

// FetchBlockTimestamp reads the timestamp of a block from the node, bypassing the cache
func (c *ethereumClient) FetchBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error) {
	header, err := c.client.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(header.Time), 0).UTC(), nil //nolint:gosec,G115 // header time is a unix timestamp
}

// GetMarketplaceEvents returns the decoded marketplace events in the block range
func (c *ethereumClient) GetMarketplaceEvents(ctx context.Context, fromBlock, toBlock uint64) ([]domain.MarketplaceEvent, error) {
	logs, err := c.filterLogsWithPagination(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: c.cfg.Contracts.Addresses(),
		Topics:    [][]common.Hash{eventSignatures()},
	})
	if err != nil {
		return nil, err
	}

	events := make([]domain.MarketplaceEvent, 0, len(logs))
	for _, vLog := range logs {
		event, err := c.ParseEventLog(ctx, vLog)
		if err != nil {
			return nil, fmt.Errorf("failed to parse log %s:%d: %w", vLog.TxHash.Hex(), vLog.Index, err)
		}
		if event == nil {
			continue
		}
		events = append(events, *event)
	}

	return events, nil
}

// filterLogsWithPagination splits the block range into chunks so providers with a
// result cap still answer
func (c *ethereumClient) filterLogsWithPagination(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if query.BlockHash != nil {
		return c.client.FilterLogs(timeoutCtx, query)
	}

	fromBlock := big.NewInt(0)
	if query.FromBlock != nil {
		fromBlock = query.FromBlock
	}

	toBlock := query.ToBlock
	if toBlock == nil {
		latest, err := c.blocks.GetLatestBlock(timeoutCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to get latest block: %w", err)
		}
		toBlock = new(big.Int).SetUint64(latest)
	}

	rangeQuery := query
	rangeQuery.FromBlock = new(big.Int).Set(fromBlock)
	rangeQuery.ToBlock = new(big.Int).Set(toBlock)

	return c.getLogsWithRetry(timeoutCtx, rangeQuery, 10_000)
}

// getLogsWithRetry walks the range in chunks and halves the chunk size when the
// provider reports too many results
func (c *ethereumClient) getLogsWithRetry(ctx context.Context, query ethereum.FilterQuery, stepSize uint64) ([]types.Log, error) {
	currentStepSize := stepSize

	var allLogs []types.Log
	currentFrom := new(big.Int).Set(query.FromBlock)

	for currentFrom.Cmp(query.ToBlock) <= 0 {
		currentTo := new(big.Int).Add(currentFrom, new(big.Int).SetUint64(currentStepSize-1))
		if currentTo.Cmp(query.ToBlock) > 0 {
			currentTo.Set(query.ToBlock)
		}

		chunk := query
		chunk.FromBlock = new(big.Int).Set(currentFrom)
		chunk.ToBlock = new(big.Int).Set(currentTo)

		logs, err := c.client.FilterLogs(ctx, chunk)
		if err == nil {
			allLogs = append(allLogs, logs...)
			currentFrom.SetUint64(currentTo.Uint64() + 1)
			continue
		}

		if !isTooManyResultsError(err) || currentStepSize == 1 {
			return nil, err
		}

		currentStepSize = currentStepSize / 2
		logger.WarnCtx(ctx, "Too many results, reducing step size",
			zap.Uint64("oldStepSize", currentStepSize*2),
			zap.Uint64("newStepSize", currentStepSize),
			zap.Uint64("fromBlock", currentFrom.Uint64()),
			zap.Uint64("toBlock", currentTo.Uint64()))
	}

	return allLogs, nil
}

// isTooManyResultsError checks if the error is related to too many results
func isTooManyResultsError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "query returned more than 10000 results") ||
		strings.Contains(errStr, "query timeout exceeded") ||
		strings.Contains(errStr, "too many results") ||
		strings.Contains(errStr, "exceeded maximum")
}

// call packs method arguments, runs eth_call against the contract and unpacks the outputs
func (c *ethereumClient) call(ctx context.Context, contract common.Address, contractABI abi.ABI, method string, args ...interface{}) ([]interface{}, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	result, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &contract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, classifyError(err))
	}

	out, err := contractABI.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", method, err)
	}
	return out, nil
}

// GetListing reads a listing from the marketplace contract
func (c *ethereumClient) GetListing(ctx context.Context, listingID *big.Int) (*domain.ChainListing, error) {
	out, err := c.call(ctx, c.cfg.Contracts.Marketplace, marketplaceABI, "listings", listingID)
	if err != nil {
		return nil, err
	}
	if len(out) != 5 {
		return nil, fmt.Errorf("unexpected listings output length: %d", len(out))
	}

	seller := abi.ConvertType(out[0], new(common.Address)).(*common.Address)
	nft := abi.ConvertType(out[1], new(common.Address)).(*common.Address)
	tokenID := abi.ConvertType(out[2], new(big.Int)).(*big.Int)
	listingPrice := abi.ConvertType(out[3], new(big.Int)).(*big.Int)
	active := *abi.ConvertType(out[4], new(bool)).(*bool)

	return &domain.ChainListing{
		ListingID: new(big.Int).Set(listingID),
		Seller:    seller.Hex(),
		NFT:       nft.Hex(),
		TokenID:   tokenID,
		Price:     listingPrice,
		Active:    active,
	}, nil
}

// GetOffer reads an offer from the offer book contract
func (c *ethereumClient) GetOffer(ctx context.Context, offerID *big.Int) (*domain.ChainOffer, error) {
	out, err := c.call(ctx, c.cfg.Contracts.OfferBook, offerBookABI, "offers", offerID)
	if err != nil {
		return nil, err
	}
	if len(out) != 5 {
		return nil, fmt.Errorf("unexpected offers output length: %d", len(out))
	}

	offeror := abi.ConvertType(out[0], new(common.Address)).(*common.Address)
	nft := abi.ConvertType(out[1], new(common.Address)).(*common.Address)
	tokenID := abi.ConvertType(out[2], new(big.Int)).(*big.Int)
	amount := abi.ConvertType(out[3], new(big.Int)).(*big.Int)
	active := *abi.ConvertType(out[4], new(bool)).(*bool)

	return &domain.ChainOffer{
		OfferID: new(big.Int).Set(offerID),
		Offeror: offeror.Hex(),
		NFT:     nft.Hex(),
		TokenID: tokenID,
		Amount:  amount,
		Active:  active,
	}, nil
}

func (c *ethereumClient) callUint(ctx context.Context, contract common.Address, contractABI abi.ABI, method string, args ...interface{}) (*big.Int, error) {
	out, err := c.call(ctx, contract, contractABI, method, args...)
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("unexpected %s output length: %d", method, len(out))
	}
	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

func (c *ethereumClient) callAddress(ctx context.Context, contract common.Address, contractABI abi.ABI, method string, args ...interface{}) (string, error) {
	out, err := c.call(ctx, contract, contractABI, method, args...)
	if err != nil {
		return "", err
	}
	if len(out) != 1 {
		return "", fmt.Errorf("unexpected %s output length: %d", method, len(out))
	}
	return abi.ConvertType(out[0], new(common.Address)).(*common.Address).Hex(), nil
}

// ListingCount returns the number of listings ever created
func (c *ethereumClient) ListingCount(ctx context.Context) (*big.Int, error) {
	return c.callUint(ctx, c.cfg.Contracts.Marketplace, marketplaceABI, "listingCount")
}

// OfferCount returns the number of offers ever created
func (c *ethereumClient) OfferCount(ctx context.Context) (*big.Int, error) {
	return c.callUint(ctx, c.cfg.Contracts.OfferBook, offerBookABI, "offerCount")
}

// OwnerOf returns the current owner of a collection token
func (c *ethereumClient) OwnerOf(ctx context.Context, tokenID *big.Int) (string, error) {
	return c.callAddress(ctx, c.cfg.Contracts.Collection, collectionABI, "ownerOf", tokenID)
}

// GetApproved returns the address approved to transfer a collection token
func (c *ethereumClient) GetApproved(ctx context.Context, tokenID *big.Int) (string, error) {
	return c.callAddress(ctx, c.cfg.Contracts.Collection, collectionABI, "getApproved", tokenID)
}

// TokenURI returns the metadata URI of a collection token
func (c *ethereumClient) TokenURI(ctx context.Context, tokenID *big.Int) (string, error) {
	out, err := c.call(ctx, c.cfg.Contracts.Collection, collectionABI, "tokenURI", tokenID)
	if err != nil {
		return "", err
	}
	if len(out) != 1 {
		return "", fmt.Errorf("unexpected tokenURI output length: %d", len(out))
	}
	uri, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("unexpected tokenURI output type %T", out[0])
	}
	return uri, nil
}

// TotalMinted returns the number of tokens minted by the collection
func (c *ethereumClient) TotalMinted(ctx context.Context) (*big.Int, error) {
	return c.callUint(ctx, c.cfg.Contracts.Collection, collectionABI, "totalMinted")
}

// BalanceAt returns the native balance of an address
func (c *ethereumClient) BalanceAt(ctx context.Context, address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, address)
	}
	balance, err := c.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// MarketplaceSettings reads the fee, fee recipient and owner of the marketplace
func (c *ethereumClient) MarketplaceSettings(ctx context.Context) (*domain.MarketplaceSettings, error) {
	fee, err := c.callUint(ctx, c.cfg.Contracts.Marketplace, marketplaceABI, "marketplaceFee")
	if err != nil {
		return nil, err
	}
	recipient, err := c.callAddress(ctx, c.cfg.Contracts.Marketplace, marketplaceABI, "feeRecipient")
	if err != nil {
		return nil, err
	}
	owner, err := c.callAddress(ctx, c.cfg.Contracts.Marketplace, marketplaceABI, "owner")
	if err != nil {
		return nil, err
	}

	return &domain.MarketplaceSettings{
		FeeBasisPoints: fee.Uint64(),
		FeeRecipient:   recipient,
		Owner:          owner,
	}, nil
}

// Close closes the connection
func (c *ethereumClient) Close() {
	c.client.Close()
}
