package roomdb

import (
	"context"

	"github.com/gowvp/bbbrooms/internal/core/room"
	"github.com/ixugo/goddd/pkg/orm"
	"gorm.io/gorm"
)

var _ room.RoomStorer = Room{}

// Room Related business namespaces
type Room DB

// NewRoom instance object
func NewRoom(db *gorm.DB) Room {
	return Room{db: db}
}

// Find implements room.RoomStorer.
func (d Room) Find(ctx context.Context, out *[]*room.Room, pager orm.Pager, key string) (int64, error) {
	query := d.db.WithContext(ctx).Model(new(room.Room))
	if key != "" {
		query = query.Where("name LIKE ?", "%"+key+"%")
	}
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil || total <= 0 {
		return 0, err
	}
	err := query.Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(pager.Limit()).
		Offset(pager.Offset()).
		Find(out).Error
	return total, err
}

// Get implements room.RoomStorer.
func (d Room) Get(ctx context.Context, out *room.Room, id string) error {
	return d.db.WithContext(ctx).Where("id=?", id).First(out).Error
}

// Add implements room.RoomStorer.
func (d Room) Add(ctx context.Context, r *room.Room) error {
	return d.db.WithContext(ctx).Create(r).Error
}

// Edit implements room.RoomStorer.
func (d Room) Edit(ctx context.Context, out *room.Room, id string, changeFn func(*room.Room)) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id=?", id).First(out).Error; err != nil {
			return err
		}
		changeFn(out)
		return tx.Save(out).Error
	})
}

// Del implements room.RoomStorer.
// 记录不存在时返回 gorm.ErrRecordNotFound
func (d Room) Del(ctx context.Context, out *room.Room, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id=?", id).First(out).Error; err != nil {
			return err
		}
		return tx.Where("id=?", id).Delete(new(room.Room)).Error
	})
}
