package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	Host                 string        `env:"HOST,default=localhost"`
	Port                 int           `env:"PORT,default=8080"`
	JWTSecret            string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration    time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
	AllowedOrigins       string        `env:"ALLOWED_ORIGINS"`
	ReadTimeout          time.Duration `env:"WS_READ_TIMEOUT,default=10m"`
	WriteTimeout         time.Duration `env:"WS_WRITE_TIMEOUT,default=10s"`
	SendBuffer           int           `env:"WS_SEND_BUFFER,default=256"`
	HeartbeatInterval    time.Duration `env:"HEARTBEAT_INTERVAL,default=15s"`
	ReportInterval       time.Duration `env:"REPORT_INTERVAL,default=1m"`
	ConfigReloadInterval time.Duration `env:"CONFIG_RELOAD_INTERVAL,default=1m"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

func (c Config) CharacterRune() (rune, error) {
	r := []rune(c.CharReplacement)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			c.CharReplacement,
		)
	}
	return r[0], nil
}

// OriginPatterns splits ALLOWED_ORIGINS on commas, an empty value accepts any origin.
func (c Config) OriginPatterns() []string {
	parts := lo.Map(strings.Split(c.AllowedOrigins, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
	return lo.Compact(parts)
}
