package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/feral-file/ff-market/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-market/internal/api/shared/errors"
	"github.com/feral-file/ff-market/internal/api/shared/executor"
	"github.com/feral-file/ff-market/internal/api/shared/types"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/price"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/store/schema"
)

// Resolver answers the root query fields through the shared executor
type Resolver struct {
	executor executor.Executor
}

// NewResolver creates a new resolver
func NewResolver(exec executor.Executor) *Resolver {
	return &Resolver{executor: exec}
}

// args holds the coerced arguments of one field
type args map[string]interface{}

func (a args) stringArg(name string) (string, bool) {
	v, ok := a[name].(string)
	return v, ok && v != ""
}

func (a args) boolArg(name string) bool {
	v, _ := a[name].(bool)
	return v
}

func (a args) intArg(name string) int64 {
	switch v := a[name].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	}
	return 0
}

func (a args) addressArg(name string) (*string, error) {
	v, ok := a.stringArg(name)
	if !ok {
		return nil, nil
	}
	if !domain.IsValidAddress(v) {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid %s: %s", name, v))
	}
	address := domain.NormalizeAddress(v)
	return &address, nil
}

func (a args) uuidArg(name string) (*uuid.UUID, error) {
	v, ok := a.stringArg(name)
	if !ok {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid %s: %s", name, v))
	}
	return &id, nil
}

func (a args) priceArg(name string) (*string, error) {
	v, ok := a.stringArg(name)
	if !ok {
		return nil, nil
	}
	minor, err := price.ParseHuman(v)
	if err != nil {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid %s: %s", name, err.Error()))
	}
	s := minor.String()
	return &s, nil
}

// page reads limit and offset, capping the limit at the maximum page size
func (a args) page() (int, uint64, error) {
	limit, offset := a.intArg("limit"), a.intArg("offset")
	if limit < 0 || offset < 0 {
		return 0, 0, apierrors.NewValidationError("limit and offset must not be negative")
	}
	if limit > constants.MAX_PAGE_SIZE {
		limit = constants.MAX_PAGE_SIZE
	}
	return int(limit), uint64(offset), nil //nolint:gosec,G115
}

// resolve answers one root field
func (r *Resolver) resolve(ctx context.Context, field string, a args) (interface{}, error) {
	switch field {
	case "assets":
		return r.assets(ctx, a)
	case "asset":
		return r.asset(ctx, a)
	case "listings":
		return r.listings(ctx, a)
	case "offers":
		return r.offers(ctx, a)
	case "transactions":
		return r.transactions(ctx, a)
	case "collections":
		return r.collections(ctx, a)
	case "stats":
		return r.executor.GetStats(ctx)
	case "trending":
		return r.executor.GetTrending(ctx, int(a.intArg("limit")))
	case "favorites":
		return r.favorites(ctx, a)
	}
	return nil, apierrors.NewBadRequestError(fmt.Sprintf("unsupported field: %s", field))
}

func (r *Resolver) assets(ctx context.Context, a args) (interface{}, error) {
	limit, offset, err := a.page()
	if err != nil {
		return nil, err
	}

	sort := types.AssetSortNewest
	if v, ok := a.stringArg("sort"); ok {
		sort = types.AssetSort(strings.ToLower(v))
	}
	if !sort.Valid() {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid sort: %s", sort))
	}

	query := executor.AssetQuery{
		ListedOnly: a.boolArg("listed"),
		HasOffers:  a.boolArg("hasOffers"),
		Sort:       types.ToStoreAssetSort(sort),
		Limit:      limit,
		Offset:     offset,
	}
	if query.Owner, err = a.addressArg("owner"); err != nil {
		return nil, err
	}
	if search, ok := a.stringArg("search"); ok {
		query.Search = &search
	}
	if query.MinPrice, err = a.priceArg("minPrice"); err != nil {
		return nil, err
	}
	if query.MaxPrice, err = a.priceArg("maxPrice"); err != nil {
		return nil, err
	}

	return r.executor.ListAssets(ctx, query)
}

func (r *Resolver) asset(ctx context.Context, a args) (interface{}, error) {
	id, err := a.uuidArg("id")
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, apierrors.NewValidationError("id is required")
	}
	return r.executor.GetAsset(ctx, *id)
}

func (r *Resolver) listings(ctx context.Context, a args) (interface{}, error) {
	limit, offset, err := a.page()
	if err != nil {
		return nil, err
	}
	filter := store.ListingFilter{Limit: limit, Offset: offset}
	if filter.Seller, err = a.addressArg("seller"); err != nil {
		return nil, err
	}
	return r.executor.ListListings(ctx, filter)
}

func (r *Resolver) offers(ctx context.Context, a args) (interface{}, error) {
	assetID, err := a.uuidArg("assetId")
	if err != nil {
		return nil, err
	}
	if assetID != nil {
		return r.executor.ListAssetOffers(ctx, *assetID, a.boolArg("active"))
	}

	limit, offset, err := a.page()
	if err != nil {
		return nil, err
	}
	filter := store.OfferFilter{ActiveOnly: a.boolArg("active"), Limit: limit, Offset: offset}
	if filter.Owner, err = a.addressArg("owner"); err != nil {
		return nil, err
	}
	if filter.Offerer, err = a.addressArg("offerer"); err != nil {
		return nil, err
	}
	return r.executor.ListOffers(ctx, filter)
}

func (r *Resolver) transactions(ctx context.Context, a args) (interface{}, error) {
	limit, offset, err := a.page()
	if err != nil {
		return nil, err
	}
	filter := store.TransactionFilter{Limit: limit, Offset: offset}
	if filter.AssetID, err = a.uuidArg("assetId"); err != nil {
		return nil, err
	}
	if filter.Address, err = a.addressArg("address"); err != nil {
		return nil, err
	}
	kinds, _ := a["kinds"].([]interface{})
	for _, k := range kinds {
		kind, _ := k.(string)
		if !types.IsValidTransactionKind(kind) {
			return nil, apierrors.NewValidationError(fmt.Sprintf("invalid kind: %s", kind))
		}
		filter.Kinds = append(filter.Kinds, schema.TransactionKind(kind))
	}
	return r.executor.ListTransactions(ctx, filter)
}

func (r *Resolver) collections(ctx context.Context, a args) (interface{}, error) {
	limit, offset, err := a.page()
	if err != nil {
		return nil, err
	}
	filter := store.CollectionFilter{Limit: limit, Offset: offset}
	if search, ok := a.stringArg("search"); ok {
		filter.Search = &search
	}
	return r.executor.ListCollections(ctx, filter)
}

func (r *Resolver) favorites(ctx context.Context, a args) (interface{}, error) {
	address, err := a.addressArg("address")
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, apierrors.NewValidationError("address is required")
	}
	return r.executor.ListFavorites(ctx, *address)
}
