package types

import (
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/store/schema"
)

// AssetSort enumerates the asset orderings exposed by the API
type AssetSort string

const (
	AssetSortNewest    AssetSort = "newest"
	AssetSortOldest    AssetSort = "oldest"
	AssetSortPriceAsc  AssetSort = "price_asc"
	AssetSortPriceDesc AssetSort = "price_desc"
)

// Valid checks if a sort is supported
func (s AssetSort) Valid() bool {
	return s == AssetSortNewest ||
		s == AssetSortOldest ||
		s == AssetSortPriceAsc ||
		s == AssetSortPriceDesc
}

// ToStoreAssetSort converts an API sort to the store ordering
func ToStoreAssetSort(s AssetSort) store.AssetSort {
	switch s {
	case AssetSortOldest:
		return store.AssetSortOldest
	case AssetSortPriceAsc:
		return store.AssetSortPriceAsc
	case AssetSortPriceDesc:
		return store.AssetSortPriceDesc
	default:
		return store.AssetSortNewest
	}
}

// IsValidTransactionKind checks a transaction kind filter value
func IsValidTransactionKind(kind string) bool {
	switch schema.TransactionKind(kind) {
	case schema.TransactionKindMint,
		schema.TransactionKindSale,
		schema.TransactionKindTransfer,
		schema.TransactionKindOffer,
		schema.TransactionKindOfferAccepted,
		schema.TransactionKindOfferCancelled,
		schema.TransactionKindListing:
		return true
	}
	return false
}
