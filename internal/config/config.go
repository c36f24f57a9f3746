package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string        `envconfig:"PORT" default:"8080"`
	DBDSN       string        `envconfig:"DB_DSN" default:"price.db"`
	StaticDir   string        `envconfig:"STATIC_DIR" default:"./web/static"`
	TemplateDir string        `envconfig:"TEMPLATE_DIR" default:"./web/templates"`
	LogFile     string        `envconfig:"LOG_FILE" default:""`
	SessionTTL  time.Duration `envconfig:"SESSION_TTL" default:"1800s"`

	// Two observed variants of the price lookup exist: one requires a
	// session and filters inactive products, one does neither. Both are
	// deployment choices, not code paths to hardcode.
	PriceRequireSession bool `envconfig:"PRICE_REQUIRE_SESSION" default:"true"`
	PriceActiveOnly     bool `envconfig:"PRICE_ACTIVE_ONLY" default:"true"`

	CORSOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	log.Printf("[config] PORT=%s DB_DSN=%s SESSION_TTL=%s PRICE_REQUIRE_SESSION=%t PRICE_ACTIVE_ONLY=%t",
		cfg.Port, cfg.DBDSN, cfg.SessionTTL, cfg.PriceRequireSession, cfg.PriceActiveOnly)
	return cfg, nil
}
