package config

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds the Redis client backing the rate limiter from
// REDIS_* environment variables and verifies the connection with a short
// ping.  Rate limiting is the only Redis consumer in the catalog, so a
// failed ping returns nil and the server runs unlimited instead of refusing
// to start.
//
//	REDIS_ADDR               host:port (default localhost:6379)
//	REDIS_HOST / REDIS_PORT  split form, wins over REDIS_ADDR when both set
//	REDIS_PASSWORD           optional
//	REDIS_DB                 database number (default 0)
//	REDIS_TLS                enable TLS when truthy
func NewRedisClient() *redis.Client {
	var tlsConf *tls.Config
	if envBool("REDIS_TLS", false) {
		tlsConf = &tls.Config{InsecureSkipVerify: true}
	}
	client := redis.NewClient(&redis.Options{
		Addr:      redisAddr(),
		Password:  envStr("REDIS_PASSWORD", ""),
		DB:        envInt("REDIS_DB", 0),
		TLSConfig: tlsConf,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}

// redisAddr resolves the server address, preferring the split host/port
// form over REDIS_ADDR.
func redisAddr() string {
	host := envStr("REDIS_HOST", "")
	port := envStr("REDIS_PORT", "")
	if host != "" && port != "" {
		return host + ":" + port
	}
	return envStr("REDIS_ADDR", "localhost:6379")
}
