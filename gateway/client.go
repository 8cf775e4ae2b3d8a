package gateway

import "futures-order-bot/order"

// Client 抽象下单通道；真实 REST 客户端与 demo 模式下的 Mock 实现同一接口，
// 启动时按 -demo 标志二选一。
type Client interface {
	PlaceOrder(req order.Request) (*order.RawOrder, error)
	CancelOrder(symbol, orderID string) (*order.RawOrder, error)
	TestConnection() bool
}

var (
	_ Client = (*BinanceRESTClient)(nil)
	_ Client = (*MockClient)(nil)
)
