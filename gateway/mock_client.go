package gateway

import (
	"fmt"
	"strconv"
	"sync"

	"futures-order-bot/order"
)

// mockMarketPrice 模拟市场价，MARKET 单以此价成交。
const mockMarketPrice = 43250.50

// MockClient 不发起任何网络调用的 demo 实现：MARKET 单立即 FILLED，
// LIMIT 单保持 NEW。订单号在进程生命周期内单调递增，不持久化。
type MockClient struct {
	mu      sync.Mutex
	counter int64
	placed  map[int64]*order.RawOrder
}

func NewMockClient() *MockClient {
	return &MockClient{
		counter: 123456789,
		placed:  make(map[int64]*order.RawOrder),
	}
}

// TestConnection demo 模式下恒为 true。
func (m *MockClient) TestConnection() bool { return true }

// PlaceOrder 合成一份与真实接口同形的响应。
func (m *MockClient) PlaceOrder(req order.Request) (*order.RawOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counter++
	now := timeNowMillis()

	raw := &order.RawOrder{
		OrderID:       m.counter,
		Symbol:        req.Symbol,
		ClientOrderID: fmt.Sprintf("demo_%d", m.counter),
		OrigQty:       req.Quantity,
		TimeInForce:   "GTC",
		Type:          string(req.Type),
		Side:          string(req.Side),
		Time:          now,
		UpdateTime:    now,
	}

	if req.Type == order.TypeMarket {
		qty, _ := strconv.ParseFloat(req.Quantity, 64)
		raw.Status = string(order.StatusFilled)
		raw.Price = "0.00"
		raw.AvgPrice = fmt.Sprintf("%.2f", mockMarketPrice)
		raw.ExecutedQty = req.Quantity
		raw.CumQuote = fmt.Sprintf("%.4f", qty*mockMarketPrice)
	} else {
		price, _ := strconv.ParseFloat(req.Price, 64)
		raw.Status = string(order.StatusNew)
		raw.Price = fmt.Sprintf("%.2f", price)
		raw.AvgPrice = "0.0000"
		raw.ExecutedQty = "0.000"
		raw.CumQuote = "0.0000"
	}

	m.placed[m.counter] = raw
	return raw, nil
}

// CancelOrder 只能撤销本进程内下过的单。
func (m *MockClient) CancelOrder(symbol, orderID string) (*order.RawOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, err := strconv.ParseInt(orderID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid order id %q", orderID)
	}
	raw, ok := m.placed[id]
	if !ok || raw.Symbol != symbol {
		return nil, fmt.Errorf("unknown order %s for %s", orderID, symbol)
	}
	canceled := *raw
	canceled.Status = string(order.StatusCanceled)
	canceled.UpdateTime = timeNowMillis()
	m.placed[id] = &canceled
	return &canceled, nil
}
