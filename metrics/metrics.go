// Package metrics provides Prometheus metrics for the order CLI
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 订单与 REST 层指标；一次性 CLI 通常只累加一次，
// 但在自动化批量调用（配合 -metricsAddr）时可被采集。
var (
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orderbot_orders_placed_total",
		Help: "成功提交到交易所的订单数",
	})
	OrdersFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orderbot_orders_failed_total",
		Help: "提交失败的订单数（网络/HTTP 错误）",
	})
	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orderbot_validation_failures_total",
		Help: "参数校验失败数，按失败类别统计",
	}, []string{"kind"})
	RESTRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orderbot_rest_requests_total",
		Help: "REST 请求数，按 endpoint/method 统计",
	}, []string{"endpoint", "method"})
	RESTErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orderbot_rest_errors_total",
		Help: "REST 请求失败数，按 endpoint 统计",
	}, []string{"endpoint"})
	RESTLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "orderbot_rest_latency_seconds",
		Help:    "REST 请求耗时",
		Buckets: prometheus.DefBuckets,
	})
)

// StartMetricsServer 启动Prometheus指标服务器
func StartMetricsServer(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		_ = http.ListenAndServe(addr, nil)
	}()
}
