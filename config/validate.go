package config

import "errors"

// Validate ensures required fields are present. 凭证不在这里强制：
// demo 模式不需要 API key，真实模式由入口在建客户端前检查。
func Validate(cfg AppConfig) error {
	if cfg.Env == "" {
		return errors.New("env is required")
	}
	if cfg.Gateway.BaseURL == "" {
		return errors.New("gateway.baseURL is required")
	}
	if cfg.Gateway.TimeoutMs < 0 {
		return errors.New("gateway.timeoutMs must be >= 0")
	}
	if cfg.Gateway.RecvWindowMs < 0 {
		return errors.New("gateway.recvWindowMs must be >= 0")
	}
	return nil
}
