package domain

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainHeliosTestnet Chain = "eip155:42000"
	ChainEthereumLocal Chain = "eip155:1337"
)

// IsValidChain checks if a chain is valid
func IsValidChain(chain Chain) bool {
	return chain == ChainHeliosTestnet || chain == ChainEthereumLocal
}

// ChainFromID builds the CAIP-2 identifier for an EVM chain id
func ChainFromID(chainID uint64) Chain {
	return Chain(fmt.Sprintf("eip155:%d", chainID))
}

// WalletKind identifies the wallet a user connects with
type WalletKind string

const (
	WalletKindMetaMask WalletKind = "metamask"
	WalletKindOKX      WalletKind = "okx"
	WalletKindBitget   WalletKind = "bitget"
)

// IsValidWalletKind checks if a wallet kind is supported
func IsValidWalletKind(kind WalletKind) bool {
	return kind == WalletKindMetaMask || kind == WalletKindOKX || kind == WalletKindBitget
}

// Network describes a chain for wallet network registration and switching
type Network struct {
	ChainID        uint64 `json:"chain_id"`
	Name           string `json:"name"`
	RPCURL         string `json:"rpc_url"`
	NativeName     string `json:"native_name"`
	NativeSymbol   string `json:"native_symbol"`
	NativeDecimals int    `json:"native_decimals"`
	ExplorerURL    string `json:"explorer_url"`
}

// Chain returns the CAIP-2 identifier of the network
func (n Network) Chain() Chain {
	return ChainFromID(n.ChainID)
}

// TxURL returns the explorer link for a transaction hash
func (n Network) TxURL(txHash string) string {
	return strings.TrimSuffix(n.ExplorerURL, "/") + "/tx/" + txHash
}

// EventType represents the type of marketplace contract event
type EventType string

const (
	EventTypeMinted         EventType = "minted"
	EventTypeTransfer       EventType = "transfer"
	EventTypeListed         EventType = "listed"
	EventTypeSold           EventType = "sold"
	EventTypeOfferMade      EventType = "offer_made"
	EventTypeOfferAccepted  EventType = "offer_accepted"
	EventTypeOfferCancelled EventType = "offer_cancelled"
)

// MarketplaceEvent is a decoded contract event in the format published to NATS.
//
// Field usage per event type:
//   - minted: ToAddress, TokenID, TokenURI
//   - transfer: FromAddress, ToAddress, TokenID
//   - listed: ListingID, FromAddress (seller), NFTAddress, TokenID, Price
//   - sold: ListingID, ToAddress (buyer), Price
//   - offer_made: OfferID, FromAddress (offeror), NFTAddress, TokenID, Price
//   - offer_accepted: OfferID, FromAddress (seller), NFTAddress, TokenID, Price
//   - offer_cancelled: OfferID, FromAddress (offeror)
type MarketplaceEvent struct {
	Chain           Chain     `json:"chain"`
	EventType       EventType `json:"event_type"`
	ContractAddress string    `json:"contract_address"` // emitting contract
	NFTAddress      string    `json:"nft_address"`      // collection the event refers to
	TokenID         string    `json:"token_id,omitempty"`
	ListingID       string    `json:"listing_id,omitempty"`
	OfferID         string    `json:"offer_id,omitempty"`
	FromAddress     *string   `json:"from_address"`
	ToAddress       *string   `json:"to_address"`
	Price           string    `json:"price,omitempty"` // wei
	TokenURI        string    `json:"token_uri,omitempty"`
	TxHash          string    `json:"tx_hash"`
	LogIndex        uint      `json:"log_index"`
	BlockNumber     uint64    `json:"block_number"`
	BlockHash       *string   `json:"block_hash,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
	TxIndex         uint64    `json:"tx_index"`
}

// ID returns the chain identity of the event: chain, transaction hash and log index
func (e *MarketplaceEvent) ID() string {
	return fmt.Sprintf("%s:%s:%d", e.Chain, e.TxHash, e.LogIndex)
}

// Valid reports whether the event carries the fields its type requires
func (e *MarketplaceEvent) Valid() bool {
	if !IsValidChain(e.Chain) || e.TxHash == "" {
		return false
	}
	if !common.IsHexAddress(e.ContractAddress) {
		return false
	}

	switch e.EventType {
	case EventTypeMinted:
		return validUint(e.TokenID) && nonZeroAddress(e.ToAddress)
	case EventTypeTransfer:
		return validUint(e.TokenID) && e.FromAddress != nil && nonZeroAddress(e.ToAddress)
	case EventTypeListed:
		return validUint(e.ListingID) && validUint(e.TokenID) && validUint(e.Price) &&
			nonZeroAddress(e.FromAddress) && common.IsHexAddress(e.NFTAddress)
	case EventTypeSold:
		return validUint(e.ListingID) && validUint(e.Price) && nonZeroAddress(e.ToAddress)
	case EventTypeOfferMade, EventTypeOfferAccepted:
		return validUint(e.OfferID) && validUint(e.TokenID) && validUint(e.Price) &&
			nonZeroAddress(e.FromAddress) && common.IsHexAddress(e.NFTAddress)
	case EventTypeOfferCancelled:
		return validUint(e.OfferID) && nonZeroAddress(e.FromAddress)
	default:
		return false
	}
}

// TxStatus is the mining state of a submitted transaction
type TxStatus string

const (
	TxStatusPending   TxStatus = "pending"
	TxStatusSucceeded TxStatus = "succeeded"
	TxStatusReverted  TxStatus = "reverted"
)

// ChainListing is the marketplace contract's view of a listing
type ChainListing struct {
	ListingID *big.Int
	Seller    string
	NFT       string
	TokenID   *big.Int
	Price     *big.Int
	Active    bool
}

// ChainOffer is the offer book contract's view of an offer
type ChainOffer struct {
	OfferID *big.Int
	Offeror string
	NFT     string
	TokenID *big.Int
	Amount  *big.Int
	Active  bool
}

// MarketplaceSettings holds the fee configuration read from the marketplace contract
type MarketplaceSettings struct {
	FeeBasisPoints uint64 `json:"fee_basis_points"`
	FeeRecipient   string `json:"fee_recipient"`
	Owner          string `json:"owner"`
}

// NormalizeAddress normalizes an address to its checksummed form
func NormalizeAddress(address string) string {
	if strings.HasPrefix(address, "0x") || strings.HasPrefix(address, "0X") {
		return common.HexToAddress(address).String()
	}
	return address
}

// IsValidAddress reports whether address is a 0x-prefixed 20-byte hex address
func IsValidAddress(address string) bool {
	return (strings.HasPrefix(address, "0x") || strings.HasPrefix(address, "0X")) && common.IsHexAddress(address)
}

// SameAddress compares two addresses case-insensitively
func SameAddress(a, b string) bool {
	return strings.EqualFold(a, b)
}

// IsZeroAddress reports whether the address is empty or the zero address
func IsZeroAddress(address string) bool {
	return address == "" || SameAddress(address, ETHEREUM_ZERO_ADDRESS)
}

func nonZeroAddress(address *string) bool {
	return address != nil && common.IsHexAddress(*address) && !IsZeroAddress(*address)
}

func validUint(s string) bool {
	if s == "" {
		return false
	}
	v, ok := new(big.Int).SetString(s, 10)
	return ok && v.Sign() >= 0
}
