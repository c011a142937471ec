package adapter

import (
	"context"
	"strings"

	"github.com/gowvp/bbbrooms/internal/core/recording"
	"github.com/gowvp/bbbrooms/internal/core/room"
	"github.com/gowvp/bbbrooms/internal/metrics"
	"github.com/gowvp/bbbrooms/pkg/bbb"
)

var _ recording.Source = (*BBBSource)(nil)

// RoomGetter 查询会议室
type RoomGetter interface {
	GetRoom(ctx context.Context, id string) (*room.Room, error)
}

// RecordingGetter BBB 录像查询能力
type RecordingGetter interface {
	GetRecordings(ctx context.Context, req bbb.GetRecordingsRequest) (*bbb.GetRecordingsResponse, error)
}

// BBBSource 实现 recording.Source 接口
// 通过会议室找到 BBB 会议 ID，再调用 getRecordings 拉取录像
type BBBSource struct {
	rooms  RoomGetter
	engine RecordingGetter
}

// NewBBBSource 创建 BBB 录像源，返回 recording.Source 接口
// Wire 通过此函数自动绑定 room.Core + bbb.Engine -> recording.Source
func NewBBBSource(rooms RoomGetter, engine RecordingGetter) recording.Source {
	return &BBBSource{rooms: rooms, engine: engine}
}

// GetRecordings 拉取会议室录像，错误原样返回
func (s *BBBSource) GetRecordings(ctx context.Context, roomID string, scope recording.StatusScope) ([]*recording.Recording, error) {
	r, err := s.rooms.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	resp, err := s.engine.GetRecordings(ctx, bbb.GetRecordingsRequest{
		MeetingID: r.MeetingID,
		State:     strings.Split(string(scope), ","),
	})
	metrics.IncBBBRequest("getRecordings", err)
	if err != nil {
		return nil, err
	}

	out := make([]*recording.Recording, 0, len(resp.Recordings))
	for _, v := range resp.Recordings {
		out = append(out, toRecording(v))
	}
	return out, nil
}

func toRecording(v bbb.Recording) *recording.Recording {
	playbacks := make([]recording.Playback, 0, len(v.Playback))
	for _, f := range v.Playback {
		playbacks = append(playbacks, recording.Playback{Type: f.Type, URL: f.URL, Length: f.Length})
	}
	return &recording.Recording{
		ID:           v.RecordID,
		MeetingID:    v.MeetingID,
		Name:         v.Name,
		StartTime:    v.StartTime,
		EndTime:      v.EndTime,
		Participants: v.Participants,
		Published:    recording.ParseFlag(v.Published),
		Protected:    recording.ParseFlag(v.Protected),
		Metadata:     recording.Metadata(v.Metadata),
		Playbacks:    playbacks,
	}
}
