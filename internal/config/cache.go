package config

import (
    "os"
    "time"
)

// CacheConfig defines settings for the all-users response cache.  When
// Enabled is false or no Redis client is configured, caching is disabled and
// every request hits the document store.
type CacheConfig struct {
    Enabled bool          // master switch
    TTL     time.Duration // lifetime of cached listing bodies
    Prefix  string        // redis key namespace
}

// LoadCache reads environment variables to build a CacheConfig.  Defaults
// cache the listing for 30 seconds.
func LoadCache() CacheConfig {
    return CacheConfig{
        Enabled: getenv("CACHE_ENABLED", "true") == "true",
        TTL:     firstDuration(os.Getenv("CACHE_TTL"), 30*time.Second),
        Prefix:  getenv("CACHE_PREFIX", "cache"),
    }
}
