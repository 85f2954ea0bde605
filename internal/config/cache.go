package config

import "time"

// CacheConfig defines settings for the slot response cache. When Enabled
// is false or no Redis client could be reached, the slots endpoint hits
// the calendar provider on every request.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set. The TTL is deliberately
// short: slots disappear as soon as someone books them elsewhere.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      getenv("CACHE_ENABLED", "true") == "true",
		TTL:          parseDur(getenv("CACHE_TTL", "30s")),
		Prefix:       getenv("CACHE_PREFIX", "slots"),
		MaxBodyBytes: int(getint64("CACHE_MAX_BODY_BYTES", 1048576)),
	}
}
