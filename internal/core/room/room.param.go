package room

import "github.com/ixugo/goddd/pkg/web"

type FindRoomInput struct {
	web.PagerFilter
	Key string `form:"key"` // 名称模糊搜索
}

type EditRoomInput struct {
	Name        string `json:"name"`        // 名称
	Description string `json:"description"` // 描述
}

type AddRoomInput struct {
	Name        string `json:"name" binding:"required"` // 名称
	MeetingID   string `json:"meeting_id"`              // BBB 会议 ID，为空时自动生成
	Description string `json:"description"`             // 描述
}
