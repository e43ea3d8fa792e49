package rest

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_List(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	for _, q := range []int{5, 6, 7} {
		rec := api.do(t, http.MethodPost, "/products/1/stock", map[string]any{"quantity": q, "type": "purchase"})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := api.do(t, http.MethodGet, "/transactions?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var txs []transactionResponse
	resp := decodeEnvelope(t, rec, &txs)
	require.Len(t, txs, 2)
	assert.Equal(t, 2, *resp.Count)
	assert.Equal(t, 7, txs[0].Quantity, "newest first")
	assert.Equal(t, "API_USER", txs[0].UserID)

	rec = api.do(t, http.MethodGet, "/transactions?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodGet, "/transactions?limit=5000", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
