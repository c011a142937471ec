package api

import (
	"github.com/gin-gonic/gin"
	"github.com/gowvp/bbbrooms/internal/conf"
	"github.com/gowvp/bbbrooms/internal/core/room"
	"github.com/gowvp/bbbrooms/internal/core/room/store/roomcache"
	"github.com/gowvp/bbbrooms/internal/core/room/store/roomdb"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/web"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type RoomAPI struct {
	roomCore room.Core
}

// NewRoomStore 会议室存储，配置了 redis 时启用读缓存
func NewRoomStore(db *gorm.DB, cli *redis.Client, cfg *conf.Bootstrap) room.Storer {
	return roomcache.NewCache(
		roomdb.NewDB(db).AutoMigrate(orm.GetEnabledAutoMigrate()),
		cli,
		cfg.Data.Redis.TTL.Duration(),
	)
}

func NewRoomCore(store room.Storer) room.Core {
	return room.NewCore(store)
}

func NewRoomAPI(core room.Core) RoomAPI {
	return RoomAPI{roomCore: core}
}

func RegisterRoom(g gin.IRouter, api RoomAPI, handler ...gin.HandlerFunc) {
	group := g.Group("/rooms", handler...)
	group.GET("", web.WrapH(api.findRooms))
	group.POST("", web.WrapH(api.addRoom))
	group.GET("/:id", web.WrapH(api.getRoom))
	group.PUT("/:id", web.WrapH(api.editRoom))
	group.DELETE("/:id", web.WrapH(api.delRoom))
}

func (a RoomAPI) findRooms(c *gin.Context, in *room.FindRoomInput) (any, error) {
	items, total, err := a.roomCore.FindRooms(c.Request.Context(), in)
	return gin.H{"items": items, "total": total}, err
}

func (a RoomAPI) getRoom(c *gin.Context, _ *struct{}) (*room.Room, error) {
	return a.roomCore.GetRoom(c.Request.Context(), c.Param("id"))
}

func (a RoomAPI) addRoom(c *gin.Context, in *room.AddRoomInput) (*room.Room, error) {
	return a.roomCore.AddRoom(c.Request.Context(), in)
}

func (a RoomAPI) editRoom(c *gin.Context, in *room.EditRoomInput) (*room.Room, error) {
	return a.roomCore.EditRoom(c.Request.Context(), in, c.Param("id"))
}

func (a RoomAPI) delRoom(c *gin.Context, _ *struct{}) (*room.Room, error) {
	return a.roomCore.DelRoom(c.Request.Context(), c.Param("id"))
}
