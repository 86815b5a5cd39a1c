package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/feral-file/ff-market/internal/domain"
)

func eventSignatures() []common.Hash {
	return []common.Hash{
		mintedEventSignature,
		transferEventSignature,
		listedEventSignature,
		soldEventSignature,
		offerMadeEventSignature,
		offerAcceptedEventSignature,
		offerCancelledEventSignature,
	}
}

// ParseEventLog parses a contract log into a marketplace event stamped with its block time
func (c *ethereumClient) ParseEventLog(ctx context.Context, vLog types.Log) (*domain.MarketplaceEvent, error) {
	event, err := decodeLog(c.cfg.Chain, vLog)
	if err != nil || event == nil {
		return event, err
	}

	timestamp, err := c.blocks.GetBlockTimestamp(ctx, vLog.BlockNumber)
	if err != nil {
		return nil, err
	}
	event.Timestamp = timestamp

	return event, nil
}

// GetTransactionEvents returns the marketplace events emitted by a mined transaction
func (c *ethereumClient) GetTransactionEvents(ctx context.Context, txHash string) ([]domain.MarketplaceEvent, error) {
	receipt, err := c.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt %s: %w", txHash, err)
	}

	var events []domain.MarketplaceEvent
	for _, vLog := range receipt.Logs {
		if vLog == nil {
			continue
		}
		event, err := decodeLog(c.cfg.Chain, *vLog)
		if err != nil {
			return nil, err
		}
		if event != nil {
			events = append(events, *event)
		}
	}
	return events, nil
}

// TransactionStatus reports whether a transaction is still pending, succeeded or reverted
func (c *ethereumClient) TransactionStatus(ctx context.Context, txHash string) (domain.TxStatus, error) {
	receipt, err := c.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return domain.TxStatusPending, nil
		}
		return "", fmt.Errorf("failed to get receipt %s: %w", txHash, err)
	}
	if receipt.Status == types.ReceiptStatusSuccessful {
		return domain.TxStatusSucceeded, nil
	}
	return domain.TxStatusReverted, nil
}

// FindReceiptEvent returns the first event of the given type emitted by the receipt's
// transaction. The event carries no block timestamp.
func FindReceiptEvent(chain domain.Chain, receipt *types.Receipt, eventType domain.EventType) (*domain.MarketplaceEvent, error) {
	for _, vLog := range receipt.Logs {
		if vLog == nil {
			continue
		}
		event, err := decodeLog(chain, *vLog)
		if err != nil {
			return nil, err
		}
		if event != nil && event.EventType == eventType {
			return event, nil
		}
	}
	return nil, fmt.Errorf("%w: %s in %s", domain.ErrEventNotFound, eventType, receipt.TxHash.Hex())
}

func topicAddress(h common.Hash) *string {
	address := common.BytesToAddress(h.Bytes()).Hex()
	return &address
}

func topicUint(h common.Hash) string {
	return new(big.Int).SetBytes(h.Bytes()).String()
}

// decodeLog decodes the log by its first topic. Unknown topics return nil, nil.
func decodeLog(chain domain.Chain, vLog types.Log) (*domain.MarketplaceEvent, error) {
	if len(vLog.Topics) == 0 || vLog.Removed {
		return nil, nil
	}

	blockHash := vLog.BlockHash.Hex()
	event := &domain.MarketplaceEvent{
		Chain:           chain,
		ContractAddress: vLog.Address.Hex(),
		TxHash:          vLog.TxHash.Hex(),
		LogIndex:        vLog.Index,
		BlockNumber:     vLog.BlockNumber,
		BlockHash:       &blockHash,
		TxIndex:         uint64(vLog.TxIndex),
	}

	switch vLog.Topics[0] {
	case mintedEventSignature:
		// Minted(address indexed to, uint256 indexed tokenId, string tokenURI)
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid Minted event: expected 3 topics, got %d", len(vLog.Topics))
		}
		out, err := collectionABI.Unpack("Minted", vLog.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack Minted event: %w", err)
		}
		uri, _ := out[0].(string)

		event.EventType = domain.EventTypeMinted
		event.NFTAddress = vLog.Address.Hex()
		event.ToAddress = topicAddress(vLog.Topics[1])
		event.TokenID = topicUint(vLog.Topics[2])
		event.TokenURI = uri

	case transferEventSignature:
		// Transfer(address indexed from, address indexed to, uint256 indexed tokenId)
		if len(vLog.Topics) != 4 {
			return nil, fmt.Errorf("invalid Transfer event: expected 4 topics, got %d", len(vLog.Topics))
		}
		event.EventType = domain.EventTypeTransfer
		event.NFTAddress = vLog.Address.Hex()
		event.FromAddress = topicAddress(vLog.Topics[1])
		event.ToAddress = topicAddress(vLog.Topics[2])
		event.TokenID = topicUint(vLog.Topics[3])

	case listedEventSignature:
		// Listed(uint256 indexed listingId, address indexed seller, address nft, uint256 tokenId, uint256 price)
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid Listed event: expected 3 topics, got %d", len(vLog.Topics))
		}
		nft, tokenID, amount, err := unpackAssetAmount("Listed", vLog.Data)
		if err != nil {
			return nil, err
		}
		event.EventType = domain.EventTypeListed
		event.ListingID = topicUint(vLog.Topics[1])
		event.FromAddress = topicAddress(vLog.Topics[2])
		event.NFTAddress = nft
		event.TokenID = tokenID
		event.Price = amount

	case soldEventSignature:
		// Sold(uint256 indexed listingId, address indexed buyer, uint256 price)
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid Sold event: expected 3 topics, got %d", len(vLog.Topics))
		}
		out, err := marketplaceABI.Unpack("Sold", vLog.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack Sold event: %w", err)
		}
		soldPrice, ok := out[0].(*big.Int)
		if !ok {
			return nil, fmt.Errorf("invalid Sold event price type %T", out[0])
		}
		event.EventType = domain.EventTypeSold
		event.ListingID = topicUint(vLog.Topics[1])
		event.ToAddress = topicAddress(vLog.Topics[2])
		event.Price = soldPrice.String()

	case offerMadeEventSignature, offerAcceptedEventSignature:
		// OfferMade(uint256 indexed offerId, address indexed offeror, address nft, uint256 tokenId, uint256 amount)
		// OfferAccepted(uint256 indexed offerId, address indexed seller, address nft, uint256 tokenId, uint256 amount)
		name, eventType := "OfferMade", domain.EventTypeOfferMade
		if vLog.Topics[0] == offerAcceptedEventSignature {
			name, eventType = "OfferAccepted", domain.EventTypeOfferAccepted
		}
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid %s event: expected 3 topics, got %d", name, len(vLog.Topics))
		}
		nft, tokenID, amount, err := unpackAssetAmount(name, vLog.Data)
		if err != nil {
			return nil, err
		}
		event.EventType = eventType
		event.OfferID = topicUint(vLog.Topics[1])
		event.FromAddress = topicAddress(vLog.Topics[2])
		event.NFTAddress = nft
		event.TokenID = tokenID
		event.Price = amount

	case offerCancelledEventSignature:
		// OfferCancelled(uint256 indexed offerId, address indexed offeror)
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid OfferCancelled event: expected 3 topics, got %d", len(vLog.Topics))
		}
		event.EventType = domain.EventTypeOfferCancelled
		event.OfferID = topicUint(vLog.Topics[1])
		event.FromAddress = topicAddress(vLog.Topics[2])

	default:
		return nil, nil
	}

	return event, nil
}

// unpackAssetAmount decodes the (address nft, uint256 tokenId, uint256 amount) payload
// shared by Listed, OfferMade and OfferAccepted
func unpackAssetAmount(name string, data []byte) (nft string, tokenID string, amount string, err error) {
	contractABI := offerBookABI
	if name == "Listed" {
		contractABI = marketplaceABI
	}

	out, err := contractABI.Unpack(name, data)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to unpack %s event: %w", name, err)
	}
	if len(out) != 3 {
		return "", "", "", fmt.Errorf("invalid %s event: expected 3 values, got %d", name, len(out))
	}

	nftAddr, ok1 := out[0].(common.Address)
	id, ok2 := out[1].(*big.Int)
	value, ok3 := out[2].(*big.Int)
	if !ok1 || !ok2 || !ok3 {
		return "", "", "", fmt.Errorf("invalid %s event payload types", name)
	}

	return nftAddr.Hex(), id.String(), value.String(), nil
}
