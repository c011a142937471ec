package recording

// 排序方向
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// 排序字段
const (
	OrderByName        = "name"
	OrderByDescription = "description"
	OrderByDate        = "date"
)

type FindRecordingInput struct {
	RoomID  string `form:"-"`       // 会议室 ID（由 API 层填充）
	Order   string `form:"order"`   // 排序方向 asc/desc，为空不排序
	OrderBy string `form:"orderby"` // 排序字段 name/description/date，为空不排序
}
