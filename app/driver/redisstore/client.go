// Package redisstore implements the session store and notice email cache
// on Redis.
package redisstore

import (
	"crypto/tls"
	"fmt"

	"github.com/redis/go-redis/v9"

	"pagopa-proxy/app/config"
)

// NewClient creates the Redis client from configuration. Cluster mode uses a
// TLS connection with the host as server name, matching the managed-cache
// deployment; otherwise a simple client is built from the Redis URL.
func NewClient(cfg *config.Config) (redis.UniversalClient, error) {
	if cfg.RedisClusterEnabled {
		return redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:    []string{cfg.RedisHost + ":" + cfg.RedisPort},
			Password: cfg.RedisPassword,
			TLSConfig: &tls.Config{
				ServerName: cfg.RedisHost,
				MinVersion: tls.VersionTLS12,
			},
		}), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	return redis.NewClient(opts), nil
}
