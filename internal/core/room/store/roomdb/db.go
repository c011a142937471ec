package roomdb

import (
	"github.com/gowvp/bbbrooms/internal/core/room"
	"gorm.io/gorm"
)

var _ room.Storer = DB{}

// DB Related business namespaces
type DB struct {
	db *gorm.DB
}

// NewDB instance object
func NewDB(db *gorm.DB) DB {
	return DB{db: db}
}

// Room Get business instance
func (d DB) Room() room.RoomStorer {
	return (Room)(d)
}

// AutoMigrate sync database
func (d DB) AutoMigrate(ok bool) DB {
	if !ok {
		return d
	}
	if err := d.db.AutoMigrate(
		new(room.Room),
	); err != nil {
		panic(err)
	}
	return d
}
