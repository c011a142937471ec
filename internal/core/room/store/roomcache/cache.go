package roomcache

import (
	"time"

	"github.com/gowvp/bbbrooms/internal/core/room"
	"github.com/redis/go-redis/v9"
)

var _ room.Storer = &Cache{}

const defaultTTL = 10 * time.Minute

// Cache 会议室读缓存，查询会议室时优先读取 redis，写操作后失效
type Cache struct {
	room.Storer
	cli *redis.Client
	ttl time.Duration
}

// NewCache 包装持久化存储，cli 为 nil 时直接返回原存储
func NewCache(store room.Storer, cli *redis.Client, ttl time.Duration) room.Storer {
	if cli == nil {
		return store
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{Storer: store, cli: cli, ttl: ttl}
}

// Room implements room.Storer.
func (c *Cache) Room() room.RoomStorer {
	return (*Room)(c)
}

func roomKey(id string) string {
	return "bbbrooms:room:" + id
}
