package config

import (
    "os"
    "time"
)

// RateLimitConfig defines settings for the login rate limiter.  The limiter
// uses a fixed window per client IP; when Enabled is false or no Redis client
// is available the middleware is a pass-through.
type RateLimitConfig struct {
    Enabled bool          // master switch
    Limit   int           // requests allowed per window
    Window  time.Duration // window length
    Prefix  string        // redis key namespace
}

// LoadRateLimit reads environment variables to build a RateLimitConfig.
// Defaults allow 10 login attempts per minute.
func LoadRateLimit() RateLimitConfig {
    return RateLimitConfig{
        Enabled: getenv("RATE_LIMIT_ENABLED", "true") == "true",
        Limit:   firstPositive(atoi(os.Getenv("RATE_LIMIT_MAX")), 10),
        Window:  firstDuration(os.Getenv("RATE_LIMIT_WINDOW"), time.Minute),
        Prefix:  getenv("RATE_LIMIT_PREFIX", "ratelimit"),
    }
}

func firstPositive(n, def int) int {
    if n > 0 {
        return n
    }
    return def
}

func firstDuration(s string, def time.Duration) time.Duration {
    if d, err := time.ParseDuration(s); err == nil && d > 0 {
        return d
    }
    return def
}
