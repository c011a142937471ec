package recording

import (
	"net/url"
	"path"
	"strings"

	"github.com/grafov/m3u8"
	"github.com/ixugo/goddd/pkg/reason"
)

// PlaybackVideo BBB 视频回放格式
const PlaybackVideo = "video"

// videoFile BBB video 格式发布的媒体文件名
const videoFile = "video-0.m4v"

var mediaExts = []string{".mp4", ".m4v", ".webm", ".m3u8"}

// BuildPlaylist 根据已过滤排序的录像列表生成 VOD m3u8 播放列表
// 只包含存在 video 回放格式的录像，顺序与输入一致
// 片段地址由 MediaURL 得出
func BuildPlaylist(items []*Recording) (string, error) {
	type segment struct {
		uri      string
		duration float64
		title    string
	}
	segments := make([]segment, 0, len(items))
	for _, r := range items {
		for _, p := range r.Playbacks {
			if p.Type != PlaybackVideo {
				continue
			}
			uri := MediaURL(r.ID, p.URL)
			if uri == "" {
				continue
			}
			title, _ := r.Metadata.Lookup(MetaName)
			segments = append(segments, segment{uri: uri, duration: float64(p.Length * 60), title: title})
			break
		}
	}
	if len(segments) == 0 {
		return "", reason.ErrNotFound.Withf("no video playback found")
	}

	// winSize=0 表示 VOD，不使用滑动窗口
	pl, err := m3u8.NewMediaPlaylist(0, uint(len(segments)))
	if err != nil {
		return "", reason.ErrServer.SetMsg(err.Error())
	}
	pl.MediaType = m3u8.VOD

	// SetDiscontinuity 作用于最近追加的片段，标签输出在该片段之前
	for i, s := range segments {
		if err := pl.Append(s.uri, s.duration, s.title); err != nil {
			return "", reason.ErrServer.SetMsg(err.Error())
		}
		if i > 0 {
			_ = pl.SetDiscontinuity()
		}
	}
	pl.Close()
	return pl.String(), nil
}

// MediaURL 返回 video 回放的媒体文件地址
// BBB 返回的 url 通常是播放页面（/playback/video/{recordID}/），媒体文件位于同主机的
// /video/{recordID}/video-0.m4v；url 已指向媒体文件时原样返回，无法解析时返回空串
func MediaURL(recordID, playbackURL string) string {
	if playbackURL == "" {
		return ""
	}
	u, err := url.Parse(playbackURL)
	if err != nil || u.Host == "" {
		return ""
	}
	ext := strings.ToLower(path.Ext(u.Path))
	for _, v := range mediaExts {
		if ext == v {
			return playbackURL
		}
	}
	if recordID == "" {
		return ""
	}
	u.Path = path.Join("/video", recordID, videoFile)
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
