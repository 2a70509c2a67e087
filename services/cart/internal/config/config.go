package config

import (
	"os"

	"github.com/shopspring/decimal"

	pkgconfig "github.com/sweetloaf/bakeshop/pkg/config"
	"github.com/sweetloaf/bakeshop/services/cart/internal/pricing"
)

type Config struct {
	ServiceName string
	ServerPort  int

	DatabaseURL string

	JWTSecret []byte
	AuthURL   string

	KafkaBrokers []string

	OrderPhone string

	Rules pricing.Rules
}

func Load() Config {
	defaults := pricing.DefaultRules()

	cfg := Config{
		ServiceName: pkgconfig.EnvDefault("SERVICE_NAME", "cart"),
		ServerPort:  pkgconfig.EnvIntDefault("SERVER_PORT", 8080),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret: []byte(os.Getenv("JWT_SECRET")),
		AuthURL:   os.Getenv("AUTH_URL"),

		KafkaBrokers: pkgconfig.CSV(os.Getenv("KAFKA_BROKERS")),

		OrderPhone: pkgconfig.EnvDefault("ORDER_PHONE", "+91 97147 05616"),

		Rules: pricing.Rules{
			FreeDeliveryOver: decimalEnv("FREE_DELIVERY_OVER", defaults.FreeDeliveryOver),
			DeliveryFee:      decimalEnv("DELIVERY_FEE", defaults.DeliveryFee),
			TaxRate:          decimalEnv("TAX_RATE", defaults.TaxRate),
		},
	}

	pkgconfig.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	pkgconfig.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	return cfg
}

func decimalEnv(key string, def decimal.Decimal) decimal.Decimal {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return def
	}
	return d
}
