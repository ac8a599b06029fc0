package config

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	GatewayAddr                 string
	PaymentServiceAddr          string
	RedisAddr                   string
	LocalStorePath              string
	LogLevel                    string
	TokenSecretKey              string
	ContextTimeoutSec           int
	CancelWindowSec             int
	SupplierCacheTTLSec         int
	PaymentMaxRequestsPerMinute int
	PaymentRequestTimeoutSec    int
}

func ParseFlags() AppConfig {
	// Define defaults
	const (
		defaultGatewayAddr              = "https://gateway.aquago.in"
		defaultPaymentServiceAddr       = "http://localhost:3000"
		defaultRedisAddr                = "localhost:6379"
		defaultLocalStorePath           = "aquago.db"
		defaultLogLevel                 = "info"
		defaultContextTimeoutSec        = 5
		defaultCancelWindowSec          = 60
		defaultSupplierCacheTTLSec      = 30
		defaultPaymentMaxRequestsPerMin = 30
		defaultPaymentRequestTimeoutSec = 10
	)

	// A .env next to the binary overrides nothing, it only fills gaps.
	_ = godotenv.Load()

	config := AppConfig{
		GatewayAddr:                 defaultGatewayAddr,
		PaymentServiceAddr:          defaultPaymentServiceAddr,
		RedisAddr:                   defaultRedisAddr,
		LocalStorePath:              defaultLocalStorePath,
		LogLevel:                    defaultLogLevel,
		ContextTimeoutSec:           defaultContextTimeoutSec,
		CancelWindowSec:             defaultCancelWindowSec,
		SupplierCacheTTLSec:         defaultSupplierCacheTTLSec,
		PaymentMaxRequestsPerMinute: defaultPaymentMaxRequestsPerMin,
		PaymentRequestTimeoutSec:    defaultPaymentRequestTimeoutSec,
	}

	// Set flags
	flag.StringVar(&config.GatewayAddr, "g", config.GatewayAddr, "backend gateway base URL")
	flag.StringVar(&config.PaymentServiceAddr, "p", config.PaymentServiceAddr, "payment-link service base URL")
	flag.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address for the change feed")
	flag.StringVar(&config.LocalStorePath, "s", config.LocalStorePath, "local store sqlite path")
	flag.StringVar(&config.LogLevel, "ll", config.LogLevel, "logging level")
	flag.IntVar(&config.CancelWindowSec, "cw", config.CancelWindowSec, "order cancellation window in seconds")
	flag.Parse()

	// Override with environment variables if they exist
	if envVal := os.Getenv("GATEWAY_ADDRESS"); envVal != "" {
		config.GatewayAddr = envVal
	}
	if envVal := os.Getenv("PAYMENT_SERVICE_ADDRESS"); envVal != "" {
		config.PaymentServiceAddr = envVal
	}
	if envVal := os.Getenv("REDIS_ADDRESS"); envVal != "" {
		config.RedisAddr = envVal
	}
	if envVal := os.Getenv("LOCAL_STORE_PATH"); envVal != "" {
		config.LocalStorePath = envVal
	}
	if envVal := os.Getenv("LOG_LEVEL"); envVal != "" {
		config.LogLevel = envVal
	}
	if envVal := os.Getenv("TOKEN_SECRET_KEY"); envVal != "" {
		config.TokenSecretKey = envVal
	}
	if envVal := os.Getenv("CANCEL_WINDOW_SEC"); envVal != "" {
		if sec, err := strconv.Atoi(envVal); err == nil {
			config.CancelWindowSec = sec
		}
	}

	return config
}
