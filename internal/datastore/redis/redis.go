package redisClient

import "github.com/go-redis/redis"

type RedisClient struct {
	Client *redis.Client
}

func NewRedis(redisClient *redis.Client) *RedisClient {
	return &RedisClient{Client: redisClient}
}

// Connect opens a client against the given host:port and verifies it with a ping.
func Connect(host, port string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: host + ":" + port,
	})

	if err := client.Ping().Err(); err != nil {
		return nil, err
	}

	return client, nil
}
