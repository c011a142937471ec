package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/gowvp/bbbrooms/internal/conf"
	"github.com/gowvp/bbbrooms/internal/core/recording"
	"github.com/gowvp/bbbrooms/internal/core/recording/adapter"
	"github.com/gowvp/bbbrooms/internal/core/room"
	"github.com/gowvp/bbbrooms/pkg/bbb"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/web"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(Usecase), "*"),
	NewHTTPHandler,
	NewBBBEngine,
	NewRoomStore, NewRoomCore, NewRoomAPI,
	NewRecordingSource, NewRecordingCore, NewRecordingAPI,
	NewUserAPI,
)

type Usecase struct {
	Conf         *conf.Bootstrap
	RoomAPI      RoomAPI
	RecordingAPI RecordingAPI
	UserAPI      UserAPI
}

// NewHTTPHandler 生成Gin框架路由内容
func NewHTTPHandler(uc *Usecase) http.Handler {
	cfg := uc.Conf.Server
	if cfg.HTTP.JwtSecret == "" {
		uc.Conf.Server.HTTP.JwtSecret = orm.GenerateRandomString(32)
	}
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	g := gin.New()
	// 如果启用了 Pprof，设置 Pprof 监控
	if cfg.HTTP.PProf.Enabled {
		web.SetupPProf(g, &cfg.HTTP.PProf.AccessIps)
	}

	setupRouter(g, uc)
	return g
}

// NewBBBEngine 创建 BBB 接口客户端
func NewBBBEngine(cfg *conf.Bootstrap) *bbb.Engine {
	e := bbb.NewEngine().SetConfig(bbb.Config{
		URL:      cfg.BBB.URL,
		Secret:   cfg.BBB.Secret,
		Checksum: cfg.BBB.Checksum,
	}).SetTimeout(cfg.BBB.Timeout.Duration())
	return &e
}

// NewRecordingSource 通过会议室找到 BBB 会议再拉取录像
func NewRecordingSource(rooms room.Core, engine *bbb.Engine) recording.Source {
	return adapter.NewBBBSource(rooms, engine)
}
