package order

import (
	"strconv"

	"futures-order-bot/infrastructure/logger"
	"futures-order-bot/metrics"
)

// Gateway 提供基础下单抽象；由 gateway 包的真实/Mock 客户端实现。
type Gateway interface {
	PlaceOrder(req Request) (*RawOrder, error)
	TestConnection() bool
}

// placeholder 用于补齐响应中缺失的字符串字段，避免下游看到空值。
const placeholder = "N/A"

// Manager 串联 下单请求 → Gateway → 归一化结果，是网络层与展示层之间
// 唯一的错误边界：失败不重试，调用方只会看到二态的 Result。
type Manager struct {
	gw  Gateway
	log *logger.Logger
}

func NewManager(gw Gateway, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.NewNop()
	}
	return &Manager{gw: gw, log: log}
}

// PlaceOrder 提交一笔订单并返回归一化结果。
func (m *Manager) PlaceOrder(req Request) *Result {
	fields := map[string]interface{}{
		"symbol":   req.Symbol,
		"side":     string(req.Side),
		"type":     string(req.Type),
		"quantity": req.Quantity,
	}
	if req.Price != "" {
		fields["price"] = req.Price
	}
	m.log.LogOrder("order_request", fields)

	raw, err := m.gw.PlaceOrder(req)
	if err != nil {
		metrics.OrdersFailed.Inc()
		m.log.LogOrder("order_failed", map[string]interface{}{
			"symbol": req.Symbol,
			"error":  err.Error(),
		})
		return &Result{Success: false, Error: err.Error()}
	}

	metrics.OrdersPlaced.Inc()
	res := normalize(raw)
	m.log.LogOrder("order_result", map[string]interface{}{
		"symbol":      res.Symbol,
		"status":      res.Status,
		"orderId":     strconv.FormatInt(res.OrderID, 10),
		"executedQty": res.ExecutedQuantity,
	})
	return res
}

// normalize 把原始响应压成 Result；缺失字段填占位符而不是留空。
func normalize(raw *RawOrder) *Result {
	return &Result{
		Success:          true,
		OrderID:          raw.OrderID,
		Symbol:           orPlaceholder(raw.Symbol),
		Side:             orPlaceholder(raw.Side),
		Type:             orPlaceholder(raw.Type),
		Status:           orPlaceholder(raw.Status),
		Quantity:         orPlaceholder(raw.OrigQty),
		ExecutedQuantity: orPlaceholder(raw.ExecutedQty),
		AveragePrice:     orPlaceholder(raw.AvgPrice),
		Price:            orPlaceholder(raw.Price),
		CreatedTime:      raw.Time,
		Raw:              raw,
	}
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
