package room

import (
	"context"

	"github.com/ixugo/goddd/pkg/orm"
)

// Storer data persistence
type Storer interface {
	Room() RoomStorer
}

// RoomStorer Instantiation interface
type RoomStorer interface {
	Find(ctx context.Context, out *[]*Room, pager orm.Pager, key string) (int64, error)
	Get(ctx context.Context, out *Room, id string) error
	Add(ctx context.Context, r *Room) error
	Edit(ctx context.Context, out *Room, id string, changeFn func(*Room)) error
	Del(ctx context.Context, out *Room, id string) error
}

// Core business domain
type Core struct {
	store Storer
}

// NewCore create business domain
func NewCore(store Storer) Core {
	return Core{store: store}
}
