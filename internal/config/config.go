package config

import (
	"os"
)

type Config struct {
	Port          string
	Env           string
	SessionCookie string
	CookieSecure  bool
	StaticDir     string
	DemoEmail     string
	DemoPassword  string
}

func Load() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		SessionCookie: getEnv("SESSION_COOKIE", "sid"),
		// Off by default for local plain-HTTP development; must be enabled
		// behind TLS.
		CookieSecure: getEnv("COOKIE_SECURE", "false") == "true",
		StaticDir:    getEnv("STATIC_DIR", ""),
		DemoEmail:    getEnv("DEMO_EMAIL", "demo@sma.local"),
		DemoPassword: getEnv("DEMO_PASSWORD", "demo123"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
