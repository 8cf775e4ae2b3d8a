package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"futures-order-bot/infrastructure/logger"
)

// AppConfig holds the main runtime configuration.
type AppConfig struct {
	Env     string        `yaml:"env"`
	Gateway GatewayConfig `yaml:"gateway"`
	Log     logger.Config `yaml:"log"`
}

type GatewayConfig struct {
	APIKey       string `yaml:"apiKey"`
	APISecret    string `yaml:"apiSecret"`
	BaseURL      string `yaml:"baseURL"`
	TimeoutMs    int    `yaml:"timeoutMs"`
	RecvWindowMs int    `yaml:"recvWindowMs"`
}

// Default 返回不依赖配置文件即可工作的默认值（测试网）。
func Default() AppConfig {
	return AppConfig{
		Env: "testnet",
		Gateway: GatewayConfig{
			BaseURL:      "https://testnet.binancefuture.com",
			TimeoutMs:    10000,
			RecvWindowMs: 5000,
		},
		Log: logger.DefaultConfig(),
	}
}

// Load reads YAML config from path and applies basic validation.
// 配置文件可以不存在：此时直接使用默认值，凭证完全来自环境变量。
func Load(path string) (AppConfig, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadWithEnvOverrides loads config then overrides credentials from
// the environment. 先加载 .env（不存在则忽略），与原始部署习惯保持一致。
func LoadWithEnvOverrides(path string) (AppConfig, error) {
	_ = godotenv.Load()
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	if v := os.Getenv("BINANCE_API_KEY"); v != "" {
		cfg.Gateway.APIKey = v
	}
	if v := os.Getenv("BINANCE_API_SECRET"); v != "" {
		cfg.Gateway.APISecret = v
	}
	return cfg, Validate(cfg)
}
