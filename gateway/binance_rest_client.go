package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"futures-order-bot/metrics"
	"futures-order-bot/order"
)

// DefaultBaseURL 指向 USDT-M 期货测试网。
const DefaultBaseURL = "https://testnet.binancefuture.com"

const (
	endpointOrder   = "/fapi/v1/order"
	endpointAccount = "/fapi/v1/account"
)

// RequestError 表示一次失败的 REST 调用（非 2xx 或传输层错误）。
type RequestError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %v", e.Method, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("%s %s failed: status %d: %s", e.Method, e.Endpoint, e.StatusCode, e.Body)
}

func (e *RequestError) Unwrap() error { return e.Err }

// BinanceRESTClient 一个可签名的期货下单客户端；HTTPClient 可注入 httptest。
type BinanceRESTClient struct {
	BaseURL      string
	APIKey       string
	Secret       string
	HTTPClient   *http.Client
	RecvWindowMs int
}

// PlaceOrder 调用 POST /fapi/v1/order 下单。
// 参数顺序固定：symbol, side, type, quantity[, price, timeInForce]；
// 签名对字节序敏感，不能改动。
func (c *BinanceRESTClient) PlaceOrder(req order.Request) (*order.RawOrder, error) {
	params := NewParams().
		Add("symbol", req.Symbol).
		Add("side", string(req.Side)).
		Add("type", string(req.Type)).
		Add("quantity", req.Quantity)
	if req.Type == order.TypeLimit {
		params.Add("price", req.Price)
		params.Add("timeInForce", "GTC")
	}
	if req.ClientOrderID != "" {
		params.Add("newClientOrderId", req.ClientOrderID)
	}

	body, err := c.doSigned(http.MethodPost, endpointOrder, params)
	if err != nil {
		return nil, err
	}
	var raw order.RawOrder
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &RequestError{Method: http.MethodPost, Endpoint: endpointOrder, Err: err}
	}
	return &raw, nil
}

// CancelOrder 调用 DELETE /fapi/v1/order 撤单。CLI 主流程不会用到，
// 但属于客户端的契约面。
func (c *BinanceRESTClient) CancelOrder(symbol, orderID string) (*order.RawOrder, error) {
	params := NewParams().
		Add("symbol", symbol).
		Add("orderId", orderID)
	body, err := c.doSigned(http.MethodDelete, endpointOrder, params)
	if err != nil {
		return nil, err
	}
	var raw order.RawOrder
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &RequestError{Method: http.MethodDelete, Endpoint: endpointOrder, Err: err}
	}
	return &raw, nil
}

// TestConnection 用 GET /fapi/v1/account 验证凭证。任何错误都只返回 false，
// 不向上传播：它只是一个就绪探测。
func (c *BinanceRESTClient) TestConnection() bool {
	_, err := c.doSigned(http.MethodGet, endpointAccount, NewParams())
	return err == nil
}

// doSigned 为参数集追加 recvWindow/timestamp、签名并发起请求。
func (c *BinanceRESTClient) doSigned(method, endpoint string, params *Params) ([]byte, error) {
	if c.RecvWindowMs > 0 {
		params.Add("recvWindow", strconv.Itoa(c.RecvWindowMs))
	}
	query := SignedQuery(params, c.Secret)

	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	req, err := http.NewRequest(method, base+endpoint+"?"+query, nil)
	if err != nil {
		return nil, &RequestError{Method: method, Endpoint: endpoint, Err: err}
	}
	req.Header.Set("X-MBX-APIKEY", c.APIKey)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = NewDefaultHTTPClient()
	}

	metrics.RESTRequests.WithLabelValues(endpoint, method).Inc()
	start := time.Now()
	resp, err := httpClient.Do(req)
	metrics.RESTLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RESTErrors.WithLabelValues(endpoint).Inc()
		return nil, &RequestError{Method: method, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RESTErrors.WithLabelValues(endpoint).Inc()
		return nil, &RequestError{Method: method, Endpoint: endpoint, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RESTErrors.WithLabelValues(endpoint).Inc()
		return nil, &RequestError{Method: method, Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// NewDefaultHTTPClient 提供一个带超时的 http.Client。
func NewDefaultHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}
