package roomcache

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"log/slog"

	"github.com/gowvp/bbbrooms/internal/core/room"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/redis/go-redis/v9"
)

var _ room.RoomStorer = &Room{}

type Room Cache

// Find implements room.RoomStorer.
func (c *Room) Find(ctx context.Context, out *[]*room.Room, pager orm.Pager, key string) (int64, error) {
	return c.Storer.Room().Find(ctx, out, pager, key)
}

// Get implements room.RoomStorer.
// 缓存读取失败时回源，不影响查询结果
func (c *Room) Get(ctx context.Context, out *room.Room, id string) error {
	data, err := c.cli.Get(ctx, roomKey(id)).Bytes()
	if err == nil {
		*out = room.Room{}
		if err := gob.NewDecoder(bytes.NewReader(data)).Decode(out); err == nil {
			return nil
		}
	} else if !errors.Is(err, redis.Nil) {
		slog.WarnContext(ctx, "room cache get", "id", id, "err", err)
	}

	if err := c.Storer.Room().Get(ctx, out, id); err != nil {
		return err
	}
	c.set(ctx, out)
	return nil
}

// Add implements room.RoomStorer.
func (c *Room) Add(ctx context.Context, r *room.Room) error {
	return c.Storer.Room().Add(ctx, r)
}

// Edit implements room.RoomStorer.
func (c *Room) Edit(ctx context.Context, out *room.Room, id string, changeFn func(*room.Room)) error {
	if err := c.Storer.Room().Edit(ctx, out, id, changeFn); err != nil {
		return err
	}
	c.del(ctx, id)
	return nil
}

// Del implements room.RoomStorer.
func (c *Room) Del(ctx context.Context, out *room.Room, id string) error {
	if err := c.Storer.Room().Del(ctx, out, id); err != nil {
		return err
	}
	c.del(ctx, id)
	return nil
}

func (c *Room) set(ctx context.Context, r *room.Room) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(r); err != nil {
		return
	}
	if err := c.cli.Set(ctx, roomKey(r.ID), buf.Bytes(), c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "room cache set", "id", r.ID, "err", err)
	}
}

func (c *Room) del(ctx context.Context, id string) {
	if err := c.cli.Del(ctx, roomKey(id)).Err(); err != nil {
		slog.WarnContext(ctx, "room cache del", "id", id, "err", err)
	}
}
