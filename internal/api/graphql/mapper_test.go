package graphql

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONName(t *testing.T) {
	tests := map[string]string{
		"id":             "id",
		"chainTokenId":   "chain_token_id",
		"assetMediaUri":  "asset_media_uri",
		"nftCount":       "nft_count",
		"listedValueWei": "listed_value_wei",
	}
	for field, want := range tests {
		assert.Equal(t, want, jsonName(field), field)
	}
}

func TestObject_KeepsInsertionOrder(t *testing.T) {
	obj := newObject()
	obj.set("zeta", 1)
	obj.set("alpha", "a")
	obj.set("zeta", 2)

	raw, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":2,"alpha":"a"}`, string(raw))
}

func TestToJSONValue_KeepsLargeNumbersExact(t *testing.T) {
	v, err := toJSONValue(map[string]uint64{"total": 18446744073709551615})
	require.NoError(t, err)

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"total":18446744073709551615}`, string(raw))
}
