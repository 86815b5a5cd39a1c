package dto

import (
	"time"

	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/store/schema"
)

// TransactionResponse is a transaction row as shown in history views and on the live feed
type TransactionResponse struct {
	ID          string                 `json:"id"`
	Seq         int64                  `json:"seq"`
	AssetID     *string                `json:"asset_id,omitempty"`
	Kind        schema.TransactionKind `json:"kind"`
	FromAddress string                 `json:"from_address"`
	ToAddress   string                 `json:"to_address"`
	PriceWei    *string                `json:"price_wei,omitempty"`
	Price       *string                `json:"price,omitempty"`
	ChainTxHash *string                `json:"chain_tx_hash,omitempty"`
	LogIndex    *int64                 `json:"log_index,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`

	AssetName     *string `json:"asset_name,omitempty"`
	AssetMediaURI *string `json:"asset_media_uri,omitempty"`
	AssetTokenID  *string `json:"asset_token_id,omitempty"`
}

// MapTransaction maps a transaction joined with its asset
func MapTransaction(item store.TransactionFeedItem) TransactionResponse {
	resp := TransactionResponse{
		ID:            item.ID.String(),
		Seq:           item.Seq,
		Kind:          item.Kind,
		FromAddress:   item.FromAddress,
		ToAddress:     item.ToAddress,
		PriceWei:      item.PriceMinorUnits,
		Price:         humanPricePtr(item.PriceMinorUnits),
		ChainTxHash:   item.ChainTxHash,
		LogIndex:      item.LogIndex,
		CreatedAt:     item.CreatedAt,
		AssetName:     item.AssetName,
		AssetMediaURI: item.AssetMediaURI,
		AssetTokenID:  item.AssetTokenID,
	}
	if item.AssetID != nil {
		id := item.AssetID.String()
		resp.AssetID = &id
	}
	return resp
}

// MapTransactions maps a page of transactions
func MapTransactions(items []store.TransactionFeedItem) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(items))
	for _, item := range items {
		out = append(out, MapTransaction(item))
	}
	return out
}
