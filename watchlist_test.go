package tradedeck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWatchlistPageUnmarshalJSON(t *testing.T) {
	t.Run("wrapped object", func(t *testing.T) {
		page := WatchlistPage{}
		err := json.Unmarshal(
			[]byte(`{
				"items": [{"id":"w-1","exchangeSymbol":"NSE:SBIN"}],
				"page": 2,
				"totalPages": 5,
				"totalItems": 42
			}`),
			&page,
		)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		require.Equal(t, 2, page.Page)
		require.Equal(t, 5, page.TotalPages)
		require.Equal(t, 42, page.TotalItems)
	})

	t.Run("bare array", func(t *testing.T) {
		page := WatchlistPage{}
		err := json.Unmarshal(
			[]byte(`[{"id":"w-1"},{"id":"w-2"}]`),
			&page,
		)
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		require.Equal(t, 2, page.TotalItems)
	})
}

func TestWatchlistItemKey(t *testing.T) {
	item := WatchlistItem{AltID: "alt-1"}
	require.Equal(t, "alt-1", item.Key())
	item.ID = "w-1"
	require.Equal(t, "w-1", item.Key())
}

func TestWatchlistItemQuantity(t *testing.T) {
	// A zero multiplier counts as one.
	item := WatchlistItem{LotSize: 50}
	require.Equal(t, 50, item.Quantity())
	item.QtyMultiplier = 3
	require.Equal(t, 150, item.Quantity())
}

func TestExecuteOrderRequestValidate(t *testing.T) {
	require.NoError(
		t,
		ExecuteOrderRequest{Action: "BUY", BrokerName: "zerodha"}.Validate(),
	)
	require.NoError(
		t,
		ExecuteOrderRequest{Action: "SELL", BrokerName: "zerodha"}.Validate(),
	)

	err := ExecuteOrderRequest{Action: "HOLD"}.Validate()
	require.Error(t, err)
	fieldErrs, ok := err.(FieldErrors)
	require.True(t, ok)
	require.Contains(t, fieldErrs, "action")
	require.Contains(t, fieldErrs, "brokerName")
}
