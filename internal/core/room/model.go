package room

import "github.com/ixugo/goddd/pkg/orm"

// Room 会议室，对应 BBB 上的一个会议
type Room struct {
	ID          string   `gorm:"primaryKey;column:id" json:"id"`                           // 会议室 ID
	Name        string   `gorm:"column:name;notNull;default:''" json:"name"`               // 名称
	MeetingID   string   `gorm:"column:meeting_id;uniqueIndex;notNull" json:"meeting_id"`  // BBB 会议 ID
	Description string   `gorm:"column:description;notNull;default:''" json:"description"` // 描述
	CreatedAt   orm.Time `gorm:"column:created_at;notNull" json:"created_at"`              // 创建时间
	UpdatedAt   orm.Time `gorm:"column:updated_at;notNull" json:"updated_at"`              // 更新时间
}

// TableName database table name
func (*Room) TableName() string {
	return "rooms"
}
