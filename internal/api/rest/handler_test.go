package rest_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-market/internal/api/rest"
	"github.com/feral-file/ff-market/internal/api/shared/dto"
	"github.com/feral-file/ff-market/internal/api/shared/executor"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/marketplace"
	"github.com/feral-file/ff-market/internal/mocks"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/store/schema"
	"github.com/feral-file/ff-market/internal/wallet"
)

const owner = "0x1111111111111111111111111111111111111111"

type testHandlerMocks struct {
	ctrl     *gomock.Controller
	executor *mocks.MockAPIExecutor
	router   *gin.Engine
}

func setupTestHandler(t *testing.T) *testHandlerMocks {
	_ = logger.Initialize(logger.Config{Debug: false})
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	tm := &testHandlerMocks{
		ctrl:     ctrl,
		executor: mocks.NewMockAPIExecutor(ctrl),
		router:   gin.New(),
	}
	rest.SetupRoutes(tm.router, rest.NewHandler(tm.executor, 1024), nil)
	return tm
}

func (tm *testHandlerMocks) do(method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	tm := setupTestHandler(t)
	w := tm.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestListAssets_ParsesFilters(t *testing.T) {
	tm := setupTestHandler(t)

	tm.executor.EXPECT().ListAssets(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, q executor.AssetQuery) (*dto.AssetListResponse, error) {
			require.NotNil(t, q.Owner)
			assert.Equal(t, domain.NormalizeAddress(owner), *q.Owner)
			require.NotNil(t, q.MinPrice)
			assert.Equal(t, "1500000000000000000", *q.MinPrice)
			assert.Nil(t, q.MaxPrice)
			assert.True(t, q.ListedOnly)
			assert.Equal(t, store.AssetSortPriceAsc, q.Sort)
			assert.Equal(t, 100, q.Limit)
			assert.Equal(t, uint64(5), q.Offset)
			return &dto.AssetListResponse{Assets: []dto.AssetResponse{}, Total: 0, Limit: q.Limit}, nil
		})

	w := tm.do(http.MethodGet, "/api/v1/assets?owner="+owner+"&min_price=1.5&listed=true&sort=price_asc&limit=500&offset=5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListAssets_InvalidQuery(t *testing.T) {
	tm := setupTestHandler(t)

	for _, q := range []string{"sort=cheapest", "min_price=abc", "owner=nope", "limit=-1"} {
		w := tm.do(http.MethodGet, "/api/v1/assets?"+q, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, q)
		assert.Equal(t, "validation_failed", decodeError(t, w).Error.Code, q)
	}
}

func TestGetAsset(t *testing.T) {
	tm := setupTestHandler(t)
	id := uuid.New()

	tm.executor.EXPECT().GetAsset(gomock.Any(), id).Return(&dto.AssetResponse{ID: id.String(), Name: "Dawn"}, nil)
	w := tm.do(http.MethodGet, "/api/v1/assets/"+id.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Dawn"`)

	missing := uuid.New()
	tm.executor.EXPECT().GetAsset(gomock.Any(), missing).Return(nil, nil)
	w = tm.do(http.MethodGet, "/api/v1/assets/"+missing.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = tm.do(http.MethodGet, "/api/v1/assets/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAssetTransactions_UsesPathAsset(t *testing.T) {
	tm := setupTestHandler(t)
	id := uuid.New()

	tm.executor.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, f store.TransactionFilter) (*dto.TransactionListResponse, error) {
			require.NotNil(t, f.AssetID)
			assert.Equal(t, id, *f.AssetID)
			assert.Equal(t, []schema.TransactionKind{schema.TransactionKindSale}, f.Kinds)
			return &dto.TransactionListResponse{}, nil
		})

	w := tm.do(http.MethodGet, "/api/v1/assets/"+id.String()+"/transactions?kind=sale", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = tm.do(http.MethodGet, "/api/v1/transactions?kind=refund", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListListings_SellerFilter(t *testing.T) {
	tm := setupTestHandler(t)

	tm.executor.EXPECT().ListListings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, f store.ListingFilter) (*dto.ListingListResponse, error) {
			require.NotNil(t, f.Seller)
			assert.Equal(t, domain.NormalizeAddress(owner), *f.Seller)
			assert.Equal(t, 10, f.Limit)
			return &dto.ListingListResponse{Listings: []dto.ListingResponse{}, Limit: f.Limit}, nil
		})
	w := tm.do(http.MethodGet, "/api/v1/listings?seller="+owner+"&limit=10", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	tm.executor.EXPECT().ListListings(gomock.Any(), store.ListingFilter{Limit: 20}).
		Return(&dto.ListingListResponse{Listings: []dto.ListingResponse{}}, nil)
	w = tm.do(http.MethodGet, "/api/v1/listings", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = tm.do(http.MethodGet, "/api/v1/listings?seller=nope", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListOffers_ReceivedAndMade(t *testing.T) {
	tm := setupTestHandler(t)

	tm.executor.EXPECT().ListOffers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, f store.OfferFilter) (*dto.OfferListResponse, error) {
			require.NotNil(t, f.Owner)
			assert.Equal(t, domain.NormalizeAddress(owner), *f.Owner)
			assert.Nil(t, f.Offerer)
			assert.True(t, f.ActiveOnly)
			return &dto.OfferListResponse{Offers: []dto.OfferResponse{{ChainOfferID: "3"}}}, nil
		})
	w := tm.do(http.MethodGet, "/api/v1/offers?owner="+owner, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"chain_offer_id":"3"`)

	tm.executor.EXPECT().ListOffers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, f store.OfferFilter) (*dto.OfferListResponse, error) {
			assert.Nil(t, f.Owner)
			require.NotNil(t, f.Offerer)
			assert.False(t, f.ActiveOnly)
			assert.Equal(t, uint64(20), f.Offset)
			return &dto.OfferListResponse{Offers: []dto.OfferResponse{}}, nil
		})
	w = tm.do(http.MethodGet, "/api/v1/offers?offerer="+owner+"&active=false&offset=20", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListOffers_InvalidQuery(t *testing.T) {
	tm := setupTestHandler(t)

	for _, q := range []string{"", "active=true", "owner=nope", "offerer=0x12", "owner=" + owner + "&limit=-1"} {
		w := tm.do(http.MethodGet, "/api/v1/offers?"+q, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, q)
		assert.Equal(t, "validation_failed", decodeError(t, w).Error.Code, q)
	}
}

func TestListCollections(t *testing.T) {
	tm := setupTestHandler(t)

	tm.executor.EXPECT().ListCollections(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, f store.CollectionFilter) (*dto.CollectionListResponse, error) {
			require.NotNil(t, f.Search)
			assert.Equal(t, "0x11", *f.Search)
			return &dto.CollectionListResponse{Collections: []dto.CollectionResponse{
				{OwnerAddress: owner, NFTCount: 2, ListedCount: 1, ListedValueWei: "1000000000000000000", ListedValue: "1"},
			}, Limit: f.Limit}, nil
		})

	w := tm.do(http.MethodGet, "/api/v1/collections?search=0x11", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"nft_count":2`)
	assert.Contains(t, w.Body.String(), `"listed_count":1`)
}

func TestBuyListing_MapsDomainErrors(t *testing.T) {
	tm := setupTestHandler(t)
	id := uuid.New()

	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrSelfPurchase, http.StatusConflict, "conflict"},
		{fmt.Errorf("%w: %s", domain.ErrListingInactive, id), http.StatusConflict, "conflict"},
		{domain.ErrNotConnected, http.StatusUnauthorized, "unauthorized"},
		{domain.ErrInsufficientFunds, http.StatusBadRequest, "insufficient_funds"},
		{&domain.RevertError{Reason: "sold"}, http.StatusBadGateway, "chain_error"},
	}

	for _, tt := range tests {
		tm.executor.EXPECT().Buy(gomock.Any(), marketplace.BuyInput{ListingID: id, RequestID: "req-1"}).Return(nil, tt.err)
		w := tm.do(http.MethodPost, "/api/v1/listings/"+id.String()+"/buy", nil, "Idempotency-Key", "req-1")
		assert.Equal(t, tt.status, w.Code, tt.err.Error())
		assert.Equal(t, tt.code, decodeError(t, w).Error.Code)
	}
}

func TestBuyListing_Success(t *testing.T) {
	tm := setupTestHandler(t)
	id := uuid.New()

	tm.executor.EXPECT().Buy(gomock.Any(), marketplace.BuyInput{ListingID: id}).Return(&marketplace.BuyResult{
		Outcome:         marketplace.Outcome{IntentID: "01J", TxHash: "0xabc", MirrorSynced: true},
		PriceMinorUnits: "2500000000000000000",
	}, nil)

	w := tm.do(http.MethodPost, "/api/v1/listings/"+id.String()+"/buy", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tx_hash":"0xabc"`)
}

func TestListAsset_ValidatesPrice(t *testing.T) {
	tm := setupTestHandler(t)
	id := uuid.New()

	for _, body := range []map[string]string{{}, {"price": "0"}, {"price": "-1"}, {"price": "0.0000000000000000001"}} {
		w := tm.do(http.MethodPost, "/api/v1/assets/"+id.String()+"/list", body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, body)
	}

	tm.executor.EXPECT().List(gomock.Any(), marketplace.ListInput{AssetID: id, Price: "2.5"}).
		Return(&marketplace.ListResult{ChainListingID: "7"}, nil)
	w := tm.do(http.MethodPost, "/api/v1/assets/"+id.String()+"/list", map[string]string{"price": "2.5"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestMintAsset_Multipart(t *testing.T) {
	tm := setupTestHandler(t)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("name", " Dawn "))
	require.NoError(t, form.WriteField("description", "first light"))
	part, err := form.CreateFormFile("media", "dawn.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("\x89PNG\r\n\x1a\nrest"))
	require.NoError(t, form.Close())

	tm.executor.EXPECT().Mint(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, in marketplace.MintInput) (*marketplace.MintResult, error) {
			assert.Equal(t, "Dawn", in.Name)
			assert.Equal(t, "first light", in.Description)
			assert.Equal(t, []byte("\x89PNG\r\n\x1a\nrest"), in.Media)
			return &marketplace.MintResult{TokenID: "1"}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/mint", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestMintAsset_RequiresMedia(t *testing.T) {
	tm := setupTestHandler(t)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("name", "Dawn"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/mint", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestFavorites(t *testing.T) {
	tm := setupTestHandler(t)
	assetID := uuid.New()

	tm.executor.EXPECT().AddFavorite(gomock.Any(), owner, assetID).Return(nil)
	w := tm.do(http.MethodPost, "/api/v1/favorites", map[string]string{"user_address": owner, "asset_id": assetID.String()})
	assert.Equal(t, http.StatusNoContent, w.Code)

	tm.executor.EXPECT().RemoveFavorite(gomock.Any(), owner, assetID).Return(nil)
	w = tm.do(http.MethodDelete, "/api/v1/favorites", map[string]string{"user_address": owner, "asset_id": assetID.String()})
	assert.Equal(t, http.StatusNoContent, w.Code)

	tm.executor.EXPECT().ListFavorites(gomock.Any(), owner).Return(&dto.FavoriteListResponse{UserAddress: owner}, nil)
	w = tm.do(http.MethodGet, "/api/v1/favorites/"+owner, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = tm.do(http.MethodPost, "/api/v1/favorites", map[string]string{"user_address": "bad", "asset_id": assetID.String()})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestConnectSession(t *testing.T) {
	tm := setupTestHandler(t)

	tm.executor.EXPECT().ConnectSession(gomock.Any(), domain.WalletKindMetaMask).Return(&dto.SessionResponse{
		SessionState: wallet.SessionState{Connected: true, Address: owner, ChainID: 42000, WalletKind: domain.WalletKindMetaMask},
		Network:      domain.HeliosTestnet,
	}, nil)
	w := tm.do(http.MethodPost, "/api/v1/session/connect", map[string]string{"wallet_kind": "metamask"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"connected":true`)

	tm.executor.EXPECT().ConnectSession(gomock.Any(), domain.WalletKindOKX).Return(nil, domain.ErrNoProviderFound)
	w = tm.do(http.MethodPost, "/api/v1/session/connect", map[string]string{"wallet_kind": "okx"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "wallet_error", decodeError(t, w).Error.Code)

	w = tm.do(http.MethodPost, "/api/v1/session/connect", map[string]string{"wallet_kind": "phantom"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateFeeSettings(t *testing.T) {
	tm := setupTestHandler(t)

	w := tm.do(http.MethodPut, "/api/v1/settings/fee", map[string]interface{}{})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = tm.do(http.MethodPut, "/api/v1/settings/fee", map[string]interface{}{"fee_basis_points": 10001})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	tm.executor.EXPECT().UpdateFeeSettings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, in marketplace.FeeSettingsInput) (*marketplace.FeeSettingsResult, error) {
			require.NotNil(t, in.FeeBasisPoints)
			assert.Equal(t, uint64(250), *in.FeeBasisPoints)
			assert.Nil(t, in.FeeRecipient)
			return nil, domain.ErrNotAdmin
		})
	w = tm.do(http.MethodPut, "/api/v1/settings/fee", map[string]interface{}{"fee_basis_points": 250})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGuardProtectsWorkflowRoutes(t *testing.T) {
	_ = logger.Initialize(logger.Config{Debug: false})
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)

	router := gin.New()
	guard := func(c *gin.Context) {
		c.AbortWithStatus(http.StatusUnauthorized)
	}
	rest.SetupRoutes(router, rest.NewHandler(exec, 0), guard)

	exec.EXPECT().GetStats(gomock.Any()).Return(&dto.StatsResponse{}, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/listings/"+uuid.NewString()+"/buy", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
