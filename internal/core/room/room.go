package room

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/reason"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// FindRooms 分页查询会议室
func (c Core) FindRooms(ctx context.Context, in *FindRoomInput) ([]*Room, int64, error) {
	items := make([]*Room, 0, in.Limit())
	total, err := c.store.Room().Find(ctx, &items, in, in.Key)
	if err != nil {
		return nil, 0, reason.ErrDB.Withf(`Find in[%+v] err[%s]`, in, err.Error())
	}
	return items, total, nil
}

// GetRoom Query a single object
func (c Core) GetRoom(ctx context.Context, id string) (*Room, error) {
	var out Room
	if err := c.store.Room().Get(ctx, &out, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reason.ErrNotFound.Withf(`Get id[%s] err[%s]`, id, err.Error())
		}
		return nil, reason.ErrDB.Withf(`Get id[%s] err[%s]`, id, err.Error())
	}
	return &out, nil
}

// AddRoom Insert into database
// 未指定 MeetingID 时生成随机 ID
func (c Core) AddRoom(ctx context.Context, in *AddRoomInput) (*Room, error) {
	var out Room
	if err := copier.Copy(&out, in); err != nil {
		slog.ErrorContext(ctx, "Copy", "err", err)
	}
	out.ID = uuid.NewString()
	if out.MeetingID == "" {
		out.MeetingID = uuid.NewString()
	}
	out.CreatedAt = orm.Now()
	out.UpdatedAt = out.CreatedAt

	if err := c.store.Room().Add(ctx, &out); err != nil {
		return nil, reason.ErrDB.Withf(`Add err[%s]`, err.Error())
	}
	return &out, nil
}

// EditRoom Update object information
func (c Core) EditRoom(ctx context.Context, in *EditRoomInput, id string) (*Room, error) {
	var out Room
	if err := c.store.Room().Edit(ctx, &out, id, func(b *Room) {
		if err := copier.Copy(b, in); err != nil {
			slog.ErrorContext(ctx, "Copy", "err", err)
		}
		b.UpdatedAt = orm.Now()
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reason.ErrNotFound.Withf(`Edit id[%s] err[%s]`, id, err.Error())
		}
		return nil, reason.ErrDB.Withf(`Edit id[%s] err[%s]`, id, err.Error())
	}
	return &out, nil
}

// DelRoom Delete object
func (c Core) DelRoom(ctx context.Context, id string) (*Room, error) {
	var out Room
	if err := c.store.Room().Del(ctx, &out, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reason.ErrNotFound.Withf(`Del id[%s] err[%s]`, id, err.Error())
		}
		return nil, reason.ErrDB.Withf(`Del id[%s] err[%s]`, id, err.Error())
	}
	return &out, nil
}
