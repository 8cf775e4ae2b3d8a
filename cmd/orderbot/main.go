package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"futures-order-bot/config"
	"futures-order-bot/gateway"
	"futures-order-bot/infrastructure/logger"
	"futures-order-bot/metrics"
	"futures-order-bot/order"
)

func main() {
	cfgPath := flag.String("config", "configs/config.yaml", "配置文件路径（可不存在，凭证走环境变量）")
	symbol := flag.String("symbol", "", "交易对（例如 BTCUSDT）")
	side := flag.String("side", "", "方向：BUY 或 SELL")
	orderType := flag.String("type", "", "订单类型：MARKET 或 LIMIT")
	quantity := flag.String("quantity", "", "数量（例如 0.01）")
	price := flag.String("price", "", "价格（LIMIT 必填）")
	demo := flag.Bool("demo", false, "demo 模式：不发起真实 API 调用")
	autoYes := flag.Bool("yes", false, "跳过下单确认，便于脚本调用")
	metricsAddr := flag.String("metricsAddr", "", "Prometheus metrics 监听地址，留空则关闭")
	flag.Parse()

	cfg, err := config.LoadWithEnvOverrides(*cfgPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer lg.Close()

	if *metricsAddr != "" {
		metrics.StartMetricsServer(*metricsAddr)
	}

	lg.Info("orderbot starting")
	if *demo {
		fmt.Println("Running in DEMO mode: no real orders will be placed.")
	}

	req, err := order.NewRequest(*symbol, *side, *orderType, *quantity, *price)
	if err != nil {
		var verr *order.ValidationError
		if errors.As(err, &verr) {
			metrics.ValidationFailures.WithLabelValues(string(verr.Kind)).Inc()
			lg.LogOrder("validation_failed", map[string]interface{}{
				"kind":   string(verr.Kind),
				"reason": verr.Message,
			})
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		lg.Close()
		os.Exit(1)
	}

	printSummary(req)

	if !*autoYes && !confirm() {
		fmt.Println("Order cancelled by user.")
		lg.Info("order cancelled by user")
		return
	}

	client, err := buildClient(cfg, *demo, lg)
	if err != nil {
		lg.LogError(err, map[string]interface{}{"stage": "init"})
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		lg.Close()
		os.Exit(1)
	}

	fmt.Println("\nPlacing order...")
	mgr := order.NewManager(client, lg)
	res := mgr.PlaceOrder(req)

	printResult(res)

	if !res.Success {
		lg.Close()
		os.Exit(1)
	}
	if *demo {
		fmt.Println("\nThis was a DEMO order. No real transaction occurred.")
	}
}

// buildClient 根据 -demo 选择 Mock 或真实 REST 客户端；
// 真实模式下缺少凭证或连通性探测失败都视为致命错误。
func buildClient(cfg config.AppConfig, demo bool, lg *logger.Logger) (gateway.Client, error) {
	if demo {
		lg.Info("using mock client (demo mode)")
		return gateway.NewMockClient(), nil
	}

	if cfg.Gateway.APIKey == "" || cfg.Gateway.APISecret == "" {
		return nil, errors.New("API credentials not found: set BINANCE_API_KEY / BINANCE_API_SECRET (or use -demo)")
	}

	client := &gateway.BinanceRESTClient{
		BaseURL:      cfg.Gateway.BaseURL,
		APIKey:       cfg.Gateway.APIKey,
		Secret:       cfg.Gateway.APISecret,
		HTTPClient:   &http.Client{Timeout: time.Duration(cfg.Gateway.TimeoutMs) * time.Millisecond},
		RecvWindowMs: cfg.Gateway.RecvWindowMs,
	}
	lg.Info("using Binance REST client")

	fmt.Println("\nTesting API connection...")
	if !client.TestConnection() {
		return nil, errors.New("could not connect to Binance API, check your credentials")
	}
	fmt.Println("API connection successful")
	return client, nil
}

func confirm() bool {
	fmt.Print("\nDo you want to place this order? (yes/no): ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func printSummary(req order.Request) {
	fmt.Println("\n" + strings.Repeat("-", 50))
	fmt.Println("ORDER SUMMARY")
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("Symbol:   %s\n", req.Symbol)
	fmt.Printf("Side:     %s\n", req.Side)
	fmt.Printf("Type:     %s\n", req.Type)
	fmt.Printf("Quantity: %s\n", req.Quantity)
	if req.Price != "" {
		fmt.Printf("Price:    %s\n", req.Price)
	}
	fmt.Println(strings.Repeat("-", 50))
}

func printResult(res *order.Result) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("ORDER RESULT")
	fmt.Println(strings.Repeat("=", 50))
	if res.Success {
		fmt.Println("Status: SUCCESS")
		fmt.Printf("Order ID:     %d\n", res.OrderID)
		fmt.Printf("Symbol:       %s\n", res.Symbol)
		fmt.Printf("Side:         %s\n", res.Side)
		fmt.Printf("Type:         %s\n", res.Type)
		fmt.Printf("Quantity:     %s\n", res.Quantity)
		if res.Type == string(order.TypeLimit) {
			fmt.Printf("Limit Price:  %s\n", res.Price)
		}
		fmt.Printf("Executed Qty: %s\n", res.ExecutedQuantity)
		if res.AveragePrice != "0.0000" && res.AveragePrice != "N/A" {
			fmt.Printf("Avg Price:    %s\n", res.AveragePrice)
		}
		fmt.Printf("Order Status: %s\n", res.Status)
	} else {
		fmt.Println("Status: FAILED")
		fmt.Printf("Error: %s\n", res.Error)
	}
	fmt.Println(strings.Repeat("=", 50))
}
