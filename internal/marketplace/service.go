package marketplace

import (
	"context"

	"github.com/google/uuid"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/media"
	"github.com/feral-file/ff-market/internal/providers/ethereum"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/store/schema"
	"github.com/feral-file/ff-market/internal/wallet"
)

// Config holds configuration for the reconciliation workflows
type Config struct {
	Chain domain.Chain
	// BuyGasLimit is the gas ceiling sent with buyNFT
	BuyGasLimit uint64
	// AdminAddress gates fee settings updates
	AdminAddress string
}

// SessionProvider exposes the connected signer of the wallet session
type SessionProvider interface {
	Signer() (ethereum.Signer, wallet.SessionState, error)
}

// Outcome is the common result of a workflow that reached the chain
type Outcome struct {
	IntentID string `json:"intent_id"`
	TxHash   string `json:"tx_hash,omitempty"`
	// MirrorSynced is false when a mirror write failed after the chain call succeeded.
	// The event pipeline repairs the mirror in that case.
	MirrorSynced bool `json:"mirror_synced"`
}

// MintInput holds the arguments of the mint workflow
type MintInput struct {
	Name        string
	Description string
	Media       []byte
	RequestID   string
}

// MintResult is returned by Mint
type MintResult struct {
	Outcome
	TokenID  string        `json:"token_id,omitempty"`
	MediaURL string        `json:"media_url"`
	Asset    *schema.Asset `json:"asset,omitempty"`
}

// ListInput holds the arguments of the list workflow. Price is in human units.
type ListInput struct {
	AssetID   uuid.UUID
	Price     string
	RequestID string
}

// ListResult is returned by List
type ListResult struct {
	Outcome
	ChainListingID string          `json:"chain_listing_id,omitempty"`
	Listing        *schema.Listing `json:"listing,omitempty"`
}

// BuyInput holds the arguments of the buy workflow
type BuyInput struct {
	ListingID uuid.UUID
	RequestID string
}

// BuyResult is returned by Buy
type BuyResult struct {
	Outcome
	AssetID         uuid.UUID `json:"asset_id"`
	PriceMinorUnits string    `json:"price_wei"`
}

// MakeOfferInput holds the arguments of the make-offer workflow. Price is in human units.
type MakeOfferInput struct {
	AssetID   uuid.UUID
	Price     string
	RequestID string
}

// OfferResult is returned by MakeOffer
type OfferResult struct {
	Outcome
	ChainOfferID string        `json:"chain_offer_id,omitempty"`
	Offer        *schema.Offer `json:"offer,omitempty"`
}

// AcceptOfferInput holds the arguments of the accept-offer workflow
type AcceptOfferInput struct {
	OfferID   uuid.UUID
	RequestID string
}

// CancelOfferInput holds the arguments of the cancel-offer workflow
type CancelOfferInput struct {
	OfferID   uuid.UUID
	RequestID string
}

// CancelOfferResult is returned by CancelOffer
type CancelOfferResult struct {
	Outcome
	// AlreadyInactive is true when nothing was sent because the offer was already inactive
	AlreadyInactive bool `json:"already_inactive"`
}

// TransferInput holds the arguments of the transfer workflow
type TransferInput struct {
	AssetID   uuid.UUID
	To        string
	RequestID string
}

// FeeSettingsInput holds the admin fee update. At least one field must be set.
type FeeSettingsInput struct {
	FeeBasisPoints *uint64
	FeeRecipient   *string
	RequestID      string
}

// FeeSettingsResult is returned by UpdateFeeSettings
type FeeSettingsResult struct {
	IntentID string                      `json:"intent_id"`
	TxHashes []string                    `json:"tx_hashes"`
	Settings *domain.MarketplaceSettings `json:"settings,omitempty"`
}

// Service runs the reconciliation workflows: every workflow records an intent, performs its
// chain steps and then writes the mirror on a best-effort basis.
//
//go:generate mockgen -source=service.go -destination=../mocks/marketplace_service.go -package=mocks -mock_names=Service=MockMarketplaceService
type Service interface {
	// Mint uploads media, mints a token pointing at it and mirrors the new asset
	Mint(ctx context.Context, input MintInput) (*MintResult, error)

	// List approves the marketplace if needed and lists the asset
	List(ctx context.Context, input ListInput) (*ListResult, error)

	// Buy re-validates the listing against the contract and pays its chain price
	Buy(ctx context.Context, input BuyInput) (*BuyResult, error)

	// MakeOffer escrows an offer on the asset
	MakeOffer(ctx context.Context, input MakeOfferInput) (*OfferResult, error)

	// AcceptOffer accepts an offer on an asset the caller owns
	AcceptOffer(ctx context.Context, input AcceptOfferInput) (*Outcome, error)

	// CancelOffer withdraws an offer. Cancelling an inactive offer is a no-op.
	CancelOffer(ctx context.Context, input CancelOfferInput) (*CancelOfferResult, error)

	// Transfer sends the asset to another address
	Transfer(ctx context.Context, input TransferInput) (*Outcome, error)

	// UpdateFeeSettings changes the marketplace fee and/or fee recipient
	UpdateFeeSettings(ctx context.Context, input FeeSettingsInput) (*FeeSettingsResult, error)

	// GetSettings reads the marketplace fee settings, falling back to the last cached copy
	GetSettings(ctx context.Context) (*domain.MarketplaceSettings, error)
}

type service struct {
	cfg      Config
	chain    ethereum.EthereumClient
	store    store.Store
	session  SessionProvider
	uploader media.Uploader
	hasher   adapter.CanonicalHasher
	json     adapter.JSON
	clock    adapter.Clock
	reporter StatusReporter
}

// NewService creates the reconciliation workflow service
func NewService(
	cfg Config,
	chain ethereum.EthereumClient,
	st store.Store,
	session SessionProvider,
	uploader media.Uploader,
	hasher adapter.CanonicalHasher,
	json adapter.JSON,
	clock adapter.Clock,
	reporter StatusReporter,
) Service {
	if reporter == nil {
		reporter = NewLogReporter()
	}
	return &service{
		cfg:      cfg,
		chain:    chain,
		store:    st,
		session:  session,
		uploader: uploader,
		hasher:   hasher,
		json:     json,
		clock:    clock,
		reporter: reporter,
	}
}

// signer returns the connected signer and its address
func (s *service) signer() (ethereum.Signer, string, error) {
	signer, state, err := s.session.Signer()
	if err != nil {
		return nil, "", err
	}
	return signer, state.Address, nil
}

// loadAsset returns the mirrored asset or ErrAssetNotFound
func (s *service) loadAsset(ctx context.Context, id uuid.UUID) (*schema.Asset, error) {
	asset, err := s.store.GetAssetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrAssetNotFound
	}
	return asset, nil
}

// loadOffer returns the mirrored offer or ErrOfferNotFound
func (s *service) loadOffer(ctx context.Context, id uuid.UUID) (*schema.Offer, error) {
	offer, err := s.store.GetOfferByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrOfferNotFound
	}
	return offer, nil
}
