package recording

import "encoding/json"

// Metadata 键
const (
	MetaName        = "recording-name"
	MetaDescription = "recording-description"
)

// Flag 录像状态的三态值，源数据以 "true"/"false" 文本表示
type Flag int8

const (
	FlagUnknown Flag = iota
	FlagTrue
	FlagFalse
)

// ParseFlag 解析文本布尔值，无法识别的值返回 FlagUnknown
func ParseFlag(s string) Flag {
	switch s {
	case "true":
		return FlagTrue
	case "false":
		return FlagFalse
	default:
		return FlagUnknown
	}
}

func (f Flag) String() string {
	switch f {
	case FlagTrue:
		return "true"
	case FlagFalse:
		return "false"
	default:
		return "unknown"
	}
}

// MarshalJSON 未知值编码为 null
func (f Flag) MarshalJSON() ([]byte, error) {
	switch f {
	case FlagTrue:
		return []byte("true"), nil
	case FlagFalse:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON 兼容布尔值与文本布尔值
func (f *Flag) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case bool:
		*f = FlagFalse
		if x {
			*f = FlagTrue
		}
	case string:
		*f = ParseFlag(x)
	default:
		*f = FlagUnknown
	}
	return nil
}

// Metadata 录像元数据，键可能不存在
type Metadata map[string]string

// Lookup 查询元数据，ok 表示该键是否已设置
func (m Metadata) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Playback 录像回放格式
type Playback struct {
	Type   string `json:"type"`   // presentation / video / podcast
	URL    string `json:"url"`    // 回放地址
	Length int    `json:"length"` // 时长（分钟）
}

// Annotation 图标样式与标题，nil 表示未设置
type Annotation struct {
	IconClasses string `json:"icon_classes"`
	IconTitle   string `json:"icon_title"`
}

// Recording 会议室的一条录像
type Recording struct {
	ID            string      `json:"id"`                       // recordID
	MeetingID     string      `json:"meeting_id"`               // 会议 ID
	Name          string      `json:"name"`                     // 会议名称
	StartTime     string      `json:"start_time"`               // 开始时间（毫秒时间戳文本）
	EndTime       string      `json:"end_time"`                 // 结束时间
	Participants  int         `json:"participants"`             // 参会人数
	Published     Flag        `json:"published"`                // 是否发布
	Protected     Flag        `json:"protected"`                // 是否受保护
	Metadata      Metadata    `json:"metadata"`                 // 元数据
	Playbacks     []Playback  `json:"playbacks"`                // 回放格式
	ProtectedIcon *Annotation `json:"protected_icon,omitempty"` // 保护状态图标（仅管理视图）
	PublishedIcon *Annotation `json:"published_icon,omitempty"` // 发布状态图标（仅管理视图）
}

// StatusScope 向录像源请求的发布状态范围
type StatusScope string

const (
	ScopePublished StatusScope = "published"
	ScopeAll       StatusScope = "published,unpublished"
)
