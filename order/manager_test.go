package order

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futures-order-bot/infrastructure/logger"
)

type stubGateway struct {
	raw *RawOrder
	err error
}

func (g *stubGateway) PlaceOrder(req Request) (*RawOrder, error) { return g.raw, g.err }
func (g *stubGateway) TestConnection() bool                      { return g.err == nil }

func TestManagerPlaceOrderSuccess(t *testing.T) {
	gw := &stubGateway{raw: &RawOrder{
		OrderID:     123456790,
		Symbol:      "BTCUSDT",
		Status:      "FILLED",
		Price:       "0.00",
		AvgPrice:    "43250.50",
		OrigQty:     "0.01",
		ExecutedQty: "0.01",
		Type:        "MARKET",
		Side:        "BUY",
		Time:        1234567890000,
	}}
	mgr := NewManager(gw, logger.NewNop())

	res := mgr.PlaceOrder(Request{Symbol: "BTCUSDT", Side: SideBuy, Type: TypeMarket, Quantity: "0.01"})
	require.True(t, res.Success)
	assert.Equal(t, int64(123456790), res.OrderID)
	assert.Equal(t, "FILLED", res.Status)
	assert.Equal(t, "0.01", res.ExecutedQuantity)
	assert.Equal(t, "43250.50", res.AveragePrice)
	assert.Equal(t, int64(1234567890000), res.CreatedTime)
	assert.Empty(t, res.Error)
	assert.Same(t, gw.raw, res.Raw)
}

// TestManagerPlaceOrderMissingFields 响应缺字段时填占位符而不是留空。
func TestManagerPlaceOrderMissingFields(t *testing.T) {
	gw := &stubGateway{raw: &RawOrder{OrderID: 1, Symbol: "BTCUSDT", Status: "NEW"}}
	mgr := NewManager(gw, nil)

	res := mgr.PlaceOrder(Request{Symbol: "BTCUSDT", Side: SideSell, Type: TypeLimit, Quantity: "0.01", Price: "50000"})
	require.True(t, res.Success)
	assert.Equal(t, "N/A", res.AveragePrice)
	assert.Equal(t, "N/A", res.ExecutedQuantity)
	assert.Equal(t, "N/A", res.Price)
}

func TestManagerPlaceOrderFailure(t *testing.T) {
	gw := &stubGateway{err: errors.New("POST /fapi/v1/order failed: status 401: invalid key")}
	mgr := NewManager(gw, logger.NewNop())

	res := mgr.PlaceOrder(Request{Symbol: "BTCUSDT", Side: SideBuy, Type: TypeMarket, Quantity: "0.01"})
	require.False(t, res.Success)
	assert.Contains(t, res.Error, "status 401")
	assert.Nil(t, res.Raw)
	assert.Zero(t, res.OrderID)
}
