package gateway

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futures-order-bot/order"
)

func TestMockClientMarketOrder(t *testing.T) {
	cli := NewMockClient()
	require.True(t, cli.TestConnection())

	raw, err := cli.PlaceOrder(order.Request{
		Symbol: "BTCUSDT", Side: order.SideBuy, Type: order.TypeMarket, Quantity: "0.01",
	})
	require.NoError(t, err)
	assert.Equal(t, "FILLED", raw.Status)
	assert.Equal(t, "0.01", raw.ExecutedQty)
	assert.Equal(t, "43250.50", raw.AvgPrice)
	assert.Equal(t, "0.00", raw.Price)
	assert.Equal(t, "BTCUSDT", raw.Symbol)
	assert.Equal(t, "BUY", raw.Side)
}

func TestMockClientLimitOrder(t *testing.T) {
	cli := NewMockClient()

	raw, err := cli.PlaceOrder(order.Request{
		Symbol: "BTCUSDT", Side: order.SideSell, Type: order.TypeLimit, Quantity: "0.01", Price: "50000",
	})
	require.NoError(t, err)
	assert.Equal(t, "NEW", raw.Status)
	assert.Equal(t, "0.000", raw.ExecutedQty)
	assert.Equal(t, "0.0000", raw.AvgPrice)
	assert.Equal(t, "50000.00", raw.Price)
	assert.Equal(t, "GTC", raw.TimeInForce)
}

// TestMockClientMonotonicIDs 同一进程内多次下单的订单号必须单调递增。
func TestMockClientMonotonicIDs(t *testing.T) {
	cli := NewMockClient()
	var last int64
	for i := 0; i < 5; i++ {
		raw, err := cli.PlaceOrder(order.Request{
			Symbol: "BTCUSDT", Side: order.SideBuy, Type: order.TypeMarket, Quantity: "0.01",
		})
		require.NoError(t, err)
		assert.Greater(t, raw.OrderID, last)
		assert.Equal(t, "demo_"+strconv.FormatInt(raw.OrderID, 10), raw.ClientOrderID)
		last = raw.OrderID
	}
}

func TestMockClientCancel(t *testing.T) {
	cli := NewMockClient()
	raw, err := cli.PlaceOrder(order.Request{
		Symbol: "BTCUSDT", Side: order.SideSell, Type: order.TypeLimit, Quantity: "0.01", Price: "50000",
	})
	require.NoError(t, err)

	canceled, err := cli.CancelOrder("BTCUSDT", strconv.FormatInt(raw.OrderID, 10))
	require.NoError(t, err)
	assert.Equal(t, "CANCELED", canceled.Status)

	_, err = cli.CancelOrder("BTCUSDT", "42")
	assert.Error(t, err)
	_, err = cli.CancelOrder("ETHUSDT", strconv.FormatInt(raw.OrderID, 10))
	assert.Error(t, err)
}
