package config // package config loads application configuration from environment variables

import (
    "log"      // log is used to report configuration errors and halt execution
    "os"       // os provides access to environment variables
    "strconv"  // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The struct is built once at process start and
// passed by reference into the gateway, service and handler constructors;
// nothing reads the environment after startup.
type Config struct {
    Env          string // application environment (e.g. "dev", "prod")
    Port         string // HTTP port to listen on
    DBUser       string // document store username
    DBPass       string // document store password (optional)
    DBHost       string // document store host address (host or host:port)
    DBAuthDB     string // database to authenticate against (usually "admin")
    DBName       string // database holding the users collection
    DBCollection string // collection holding account documents
    JWTSecret    string // secret used to sign auth tokens
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
    return Config{
        Env:          must("APP_ENV"),           // environment (dev/test/prod)
        Port:         must("APP_PORT"),          // port to bind the HTTP server
        DBUser:       must("DB_USER"),           // store user
        DBPass:       os.Getenv("DB_PASS"),      // store password (empty allowed)
        DBHost:       must("DB_HOST"),           // store host
        DBAuthDB:     getenv("DB_AUTH_DB", "admin"),   // authentication database
        DBName:       must("DB_NAME"),           // database name
        DBCollection: getenv("DB_COLLECTION", "users"), // collection name
        JWTSecret:    must("JWT_SECRET"),        // secret used for signing tokens
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// getenv returns the value of an optional environment variable, or the
// provided default when it is unset or empty.
func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

// atoi converts a string to an int, falling back to 0 on malformed input.
// Sub-config loaders use it for optional numeric variables.
func atoi(s string) int {
    n, err := strconv.Atoi(s)
    if err != nil {
        return 0
    }
    return n
}
