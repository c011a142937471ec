package bbb

import (
	"context"
	"encoding/xml"
	"net/url"
	"strings"
)

const getRecordingsCall = "getRecordings"

// GetRecordingsRequest 查询录像请求参数
type GetRecordingsRequest struct {
	MeetingID string   // 会议 ID，多个以逗号分隔
	RecordID  string   // 录像 ID，可选
	State     []string // published / unpublished / processing ...
}

// GetRecordingsResponse 查询录像响应
type GetRecordingsResponse struct {
	XMLName xml.Name `xml:"response"`
	FixedHeader
	Recordings []Recording `xml:"recordings>recording"`
}

// Recording BBB 录像
type Recording struct {
	RecordID     string   `xml:"recordID"`
	MeetingID    string   `xml:"meetingID"`
	Name         string   `xml:"name"`
	Published    string   `xml:"published"` // "true" / "false"
	Protected    string   `xml:"protected"` // "true" / "false"，旧版本可能缺失
	State        string   `xml:"state"`
	StartTime    string   `xml:"startTime"` // 毫秒时间戳
	EndTime      string   `xml:"endTime"`
	Participants int      `xml:"participants"`
	Metadata     Metadata `xml:"metadata"`
	Playback     []Format `xml:"playback>format"`
}

// Format 回放格式
type Format struct {
	Type   string `xml:"type"`
	URL    string `xml:"url"`
	Length int    `xml:"length"` // 分钟
}

// Metadata 录像元数据，子元素名为键
// 未出现的元素不会写入，区分缺失与空值
type Metadata map[string]string

// UnmarshalXML implements xml.Unmarshaler.
func (m *Metadata) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	out := make(Metadata)
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var v string
			if err := d.DecodeElement(&v, &t); err != nil {
				return err
			}
			out[t.Name.Local] = strings.TrimSpace(v)
		case xml.EndElement:
			*m = out
			return nil
		}
	}
}

// GetRecordings 查询会议录像
func (e *Engine) GetRecordings(ctx context.Context, req GetRecordingsRequest) (*GetRecordingsResponse, error) {
	params := url.Values{}
	if req.MeetingID != "" {
		params.Set("meetingID", req.MeetingID)
	}
	if req.RecordID != "" {
		params.Set("recordID", req.RecordID)
	}
	if len(req.State) > 0 {
		params.Set("state", strings.Join(req.State, ","))
	}

	var resp GetRecordingsResponse
	if err := e.get(ctx, getRecordingsCall, params, &resp); err != nil {
		return nil, err
	}
	if err := resp.ErrHandle(); err != nil {
		return nil, err
	}
	return &resp, nil
}
