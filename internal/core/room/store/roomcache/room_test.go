package roomcache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gowvp/bbbrooms/internal/core/room"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type memStore struct {
	rooms map[string]room.Room
	gets  int
}

func (m *memStore) Room() room.RoomStorer { return m }

func (m *memStore) Find(_ context.Context, out *[]*room.Room, _ orm.Pager, _ string) (int64, error) {
	for _, r := range m.rooms {
		*out = append(*out, &r)
	}
	return int64(len(m.rooms)), nil
}

func (m *memStore) Get(_ context.Context, out *room.Room, id string) error {
	m.gets++
	r, ok := m.rooms[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	*out = r
	return nil
}

func (m *memStore) Add(_ context.Context, r *room.Room) error {
	m.rooms[r.ID] = *r
	return nil
}

func (m *memStore) Edit(_ context.Context, out *room.Room, id string, changeFn func(*room.Room)) error {
	r, ok := m.rooms[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	changeFn(&r)
	m.rooms[id] = r
	*out = r
	return nil
}

func (m *memStore) Del(_ context.Context, out *room.Room, id string) error {
	*out = m.rooms[id]
	delete(m.rooms, id)
	return nil
}

func setupCache(t *testing.T) (*miniredis.Miniredis, *memStore, room.Storer) {
	t.Helper()
	mr := miniredis.RunT(t)
	cli := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = cli.Close() })

	store := &memStore{rooms: map[string]room.Room{
		"r1": {ID: "r1", Name: "Daily", MeetingID: "m1"},
	}}
	return mr, store, NewCache(store, cli, time.Minute)
}

func TestNewCacheWithoutClient(t *testing.T) {
	store := &memStore{rooms: map[string]room.Room{}}
	if got := NewCache(store, nil, 0); got != room.Storer(store) {
		t.Fatal("expected the underlying store when redis is disabled")
	}
}

func TestRoomGetReadThrough(t *testing.T) {
	mr, store, cache := setupCache(t)
	ctx := context.Background()

	for range 3 {
		var out room.Room
		if err := cache.Room().Get(ctx, &out, "r1"); err != nil {
			t.Fatal(err)
		}
		if out.MeetingID != "m1" {
			t.Fatalf("MeetingID = %s, want m1", out.MeetingID)
		}
	}
	if store.gets != 1 {
		t.Fatalf("store gets = %d, want 1", store.gets)
	}
	if !mr.Exists(roomKey("r1")) {
		t.Fatal("expected room to be cached")
	}
	if ttl := mr.TTL(roomKey("r1")); ttl != time.Minute {
		t.Fatalf("ttl = %v, want 1m", ttl)
	}
}

func TestRoomGetNotFound(t *testing.T) {
	mr, _, cache := setupCache(t)

	var out room.Room
	if err := cache.Room().Get(context.Background(), &out, "missing"); err != gorm.ErrRecordNotFound {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
	if mr.Exists(roomKey("missing")) {
		t.Fatal("missing room must not be cached")
	}
}

func TestRoomEditInvalidates(t *testing.T) {
	mr, store, cache := setupCache(t)
	ctx := context.Background()

	var out room.Room
	if err := cache.Room().Get(ctx, &out, "r1"); err != nil {
		t.Fatal(err)
	}
	if err := cache.Room().Edit(ctx, &out, "r1", func(r *room.Room) { r.MeetingID = "m2" }); err != nil {
		t.Fatal(err)
	}
	if mr.Exists(roomKey("r1")) {
		t.Fatal("expected cache entry to be removed after edit")
	}

	if err := cache.Room().Get(ctx, &out, "r1"); err != nil {
		t.Fatal(err)
	}
	if out.MeetingID != "m2" || store.gets != 2 {
		t.Fatalf("MeetingID = %s, gets = %d, want m2, 2", out.MeetingID, store.gets)
	}
}

func TestRoomDelInvalidates(t *testing.T) {
	mr, _, cache := setupCache(t)
	ctx := context.Background()

	var out room.Room
	if err := cache.Room().Get(ctx, &out, "r1"); err != nil {
		t.Fatal(err)
	}
	if err := cache.Room().Del(ctx, &out, "r1"); err != nil {
		t.Fatal(err)
	}
	if mr.Exists(roomKey("r1")) {
		t.Fatal("expected cache entry to be removed after delete")
	}
	if err := cache.Room().Get(ctx, &out, "r1"); err != gorm.ErrRecordNotFound {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}
