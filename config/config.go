package config

import (
	"log"
	"os"
	"time"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// UpstreamBaseURL is the commerce backend this gateway fronts.
func UpstreamBaseURL() string {
	url := os.Getenv("UPSTREAM_BASE_URL")
	if url == "" {
		url = "https://api.martpe.in"
		log.Println("⚠️ UPSTREAM_BASE_URL not set, using", url)
	}
	return url
}

// UpstreamTimeout bounds every upstream round trip. A timed-out call is
// reported as a retryable network error.
func UpstreamTimeout() time.Duration {
	raw := getEnv("UPSTREAM_TIMEOUT", "15s")
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("⚠️ invalid UPSTREAM_TIMEOUT %q, using 15s", raw)
		return 15 * time.Second
	}
	return d
}

// StorageBackend selects where cart snapshots are persisted: "redis"
// (default), "postgres" or "memory".
func StorageBackend() string {
	return getEnv("STORAGE_BACKEND", "redis")
}

// Port the gateway listens on.
func Port() string {
	return getEnv("PORT", "8082")
}
