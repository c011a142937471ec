package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gowvp/bbbrooms/internal/core/recording"
	"github.com/gowvp/bbbrooms/pkg/bbb"
	"github.com/ixugo/goddd/pkg/reason"
	"github.com/ixugo/goddd/pkg/web"
)

// RecordingAPI 为 http 提供业务方法
type RecordingAPI struct {
	recordingCore recording.Core
}

// NewRecordingCore 创建录像核心服务，权限来自请求上下文中的登录令牌
func NewRecordingCore(source recording.Source) recording.Core {
	return recording.NewCore(source,
		recording.WithCapability(recording.CapabilityFunc(CanManageRecordings)),
	)
}

func NewRecordingAPI(core recording.Core) RecordingAPI {
	return RecordingAPI{recordingCore: core}
}

// RegisterRecording 录像接口允许匿名访问，handler 负责解析可选的登录令牌
func RegisterRecording(g gin.IRouter, api RecordingAPI, handler ...gin.HandlerFunc) {
	group := g.Group("/rooms/:id/recordings", handler...)
	group.GET("", web.WrapH(api.findRecordings))
	group.GET("/index.m3u8", api.playlist)
}

type findRecordingsOutput struct {
	Items []*recording.Recording `json:"items"`
	Total int                    `json:"total"`
}

// findRecordings 查询会议室录像
func (a RecordingAPI) findRecordings(c *gin.Context, in *recording.FindRecordingInput) (*findRecordingsOutput, error) {
	in.RoomID = c.Param("id")
	items, err := a.recordingCore.FindRecordings(c.Request.Context(), in)
	if err != nil {
		return nil, upstreamErr(err)
	}
	recording.Localize(items, recording.MatchLanguage(c.GetHeader("Accept-Language")))
	return &findRecordingsOutput{Items: items, Total: len(items)}, nil
}

// playlist 将调用者可见的录像按请求顺序拼接为 HLS 播放列表
// 路径: /rooms/:id/recordings/index.m3u8?order=asc&orderby=date&token=xxx
func (a RecordingAPI) playlist(c *gin.Context) {
	var in recording.FindRecordingInput
	if err := c.ShouldBindQuery(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 1, "msg": err.Error()})
		return
	}
	in.RoomID = c.Param("id")

	items, err := a.recordingCore.FindRecordings(c.Request.Context(), &in)
	if err != nil {
		web.Fail(c, upstreamErr(err))
		return
	}
	body, err := recording.BuildPlaylist(items)
	if err != nil {
		web.Fail(c, err)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "application/vnd.apple.mpegurl", []byte(body))
}

// upstreamErr BBB 返回 FAILED 时按服务端错误响应，其它错误保持原样
func upstreamErr(err error) error {
	var bbbErr *bbb.Error
	if errors.As(err, &bbbErr) {
		return reason.ErrServer.SetMsg(bbbErr.Error())
	}
	return err
}
