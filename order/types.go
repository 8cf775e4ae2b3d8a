package order

// Side represents order direction.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Type represents the order type accepted by the futures API.
type Type string

const (
	TypeMarket Type = "MARKET"
	TypeLimit  Type = "LIMIT"
)

// Status represents order lifecycle as reported by the exchange.
type Status string

const (
	StatusNew             Status = "NEW"
	StatusPartiallyFilled Status = "PARTIALLY_FILLED"
	StatusFilled          Status = "FILLED"
	StatusCanceled        Status = "CANCELED"
	StatusRejected        Status = "REJECTED"
	StatusExpired         Status = "EXPIRED"
)

// Request 保存一次下单的全部参数；经 NewRequest 校验后不可变。
// 数量/价格保持十进制字符串，与交易所的 query string 约定一致。
type Request struct {
	Symbol        string
	Side          Side
	Type          Type
	Quantity      string
	Price         string // LIMIT 专用，MARKET 时为空
	ClientOrderID string
}

// RawOrder mirrors the JSON body returned by POST /fapi/v1/order.
type RawOrder struct {
	OrderID       int64  `json:"orderId"`
	Symbol        string `json:"symbol"`
	Status        string `json:"status"`
	ClientOrderID string `json:"clientOrderId"`
	Price         string `json:"price"`
	AvgPrice      string `json:"avgPrice"`
	OrigQty       string `json:"origQty"`
	ExecutedQty   string `json:"executedQty"`
	CumQuote      string `json:"cumQuote"`
	TimeInForce   string `json:"timeInForce"`
	Type          string `json:"type"`
	Side          string `json:"side"`
	Time          int64  `json:"time"`
	UpdateTime    int64  `json:"updateTime"`
}

// Result 是 Manager 输出的归一化结果，成功/失败二选一。
// 下游（CLI 展示与日志）只依赖该结构，不接触原始响应或错误类型。
type Result struct {
	Success          bool
	OrderID          int64
	Symbol           string
	Side             string
	Type             string
	Status           string
	Quantity         string
	ExecutedQuantity string
	AveragePrice     string
	Price            string
	CreatedTime      int64
	Raw              *RawOrder

	Error string
}
