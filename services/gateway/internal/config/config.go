package config

import (
	"os"

	pkgconfig "github.com/sweetloaf/bakeshop/pkg/config"
)

type Config struct {
	ListenAddr string

	AuthURL     string
	CatalogURL  string
	CartURL     string
	FeedbackURL string

	JWTSecret []byte
}

func Load() *Config {
	cfg := &Config{
		ListenAddr: pkgconfig.EnvDefault("GATEWAY_ADDR", ":8080"),

		AuthURL:     os.Getenv("AUTH_URL"),
		CatalogURL:  os.Getenv("CATALOG_URL"),
		CartURL:     os.Getenv("CART_URL"),
		FeedbackURL: os.Getenv("FEEDBACK_URL"),

		JWTSecret: []byte(os.Getenv("JWT_SECRET")),
	}

	pkgconfig.MustNonEmpty(cfg.AuthURL, "AUTH_URL")
	pkgconfig.MustNonEmpty(cfg.CatalogURL, "CATALOG_URL")
	pkgconfig.MustNonEmpty(cfg.CartURL, "CART_URL")
	pkgconfig.MustNonEmpty(cfg.FeedbackURL, "FEEDBACK_URL")
	pkgconfig.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	return cfg
}
