package recording

import (
	"context"
	"log/slog"
	"slices"

	"github.com/gowvp/bbbrooms/internal/metrics"
	"github.com/ixugo/goddd/pkg/reason"
)

// 图标样式
const (
	protectedIconClasses   = "fa fa-lock fa-icon bbb-icon bbb_protected_recording is_protected"
	unprotectedIconClasses = "fa fa-unlock fa-icon bbb-icon bbb_protected_recording not_protected"
	publishedIconClasses   = "fa fa-eye fa-icon bbb-icon bbb_published_recording is_published"
	unpublishedIconClasses = "fa fa-eye-slash fa-icon bbb-icon bbb_published_recording not_published"
)

// 图标标题，输出前由 Localize 翻译
const (
	TitleProtected   = "Protected"
	TitleUnprotected = "Unprotected"
	TitlePublished   = "Published"
	TitleUnpublished = "Unpublished"
)

// FindRecordings 查询会议室录像，按调用者权限过滤、标注并排序
// 权限只查询一次，随后显式传递给各阶段
func (c Core) FindRecordings(ctx context.Context, in *FindRecordingInput) ([]*Recording, error) {
	if in.RoomID == "" {
		return nil, reason.ErrBadRequest.Withf("room id is required")
	}

	canManage := c.CanManage(ctx)
	items, err := c.Fetch(ctx, in.RoomID, canManage)
	if err != nil {
		return nil, err
	}
	total := len(items)

	items = Filter(items, canManage)
	Order(items, in.Order, in.OrderBy)

	metrics.ObserveRecordingView(canManage, total, len(items))
	slog.DebugContext(ctx, "find recordings",
		"room_id", in.RoomID,
		"can_manage", canManage,
		"fetched", total,
		"visible", len(items),
	)
	return items, nil
}

// Run 等同于 FindRecordings
func (c Core) Run(ctx context.Context, roomID, order, orderBy string) ([]*Recording, error) {
	return c.FindRecordings(ctx, &FindRecordingInput{RoomID: roomID, Order: order, OrderBy: orderBy})
}

// Fetch 从录像源拉取会议室录像
// 有管理权限时请求已发布与未发布的录像，否则只请求已发布的录像
// 数据源错误原样返回，不做重试
func (c Core) Fetch(ctx context.Context, roomID string, canManage bool) ([]*Recording, error) {
	scope := ScopePublished
	if canManage {
		scope = ScopeAll
	}
	return c.source.GetRecordings(ctx, roomID, scope)
}

// Filter 按权限过滤录像并补全展示字段，保持输入顺序
//
// 所有录像都会补全 recording-name（默认会议名称）与 recording-description（默认空串）。
// 只补全缺失的键，已存在但为空的 recording-name 保持原值。
// 有管理权限时保留全部录像，并设置保护状态与发布状态图标；
// 无管理权限时只保留已发布的录像，且不设置任何图标。
// 保护状态既非 true 也非 false 时，保护状态图标保持未设置。
func Filter(items []*Recording, canManage bool) []*Recording {
	out := make([]*Recording, 0, len(items))
	for _, r := range items {
		if r.Metadata == nil {
			r.Metadata = make(Metadata, 2)
		}
		if _, ok := r.Metadata.Lookup(MetaName); !ok {
			r.Metadata[MetaName] = r.Name
		}
		if _, ok := r.Metadata.Lookup(MetaDescription); !ok {
			r.Metadata[MetaDescription] = ""
		}

		if canManage {
			annotate(r)
			out = append(out, r)
		} else if r.Published == FlagTrue {
			out = append(out, r)
		}
	}
	return out
}

// annotate 根据保护与发布状态设置图标
func annotate(r *Recording) {
	switch r.Protected {
	case FlagTrue:
		r.ProtectedIcon = &Annotation{IconClasses: protectedIconClasses, IconTitle: TitleProtected}
	case FlagFalse:
		r.ProtectedIcon = &Annotation{IconClasses: unprotectedIconClasses, IconTitle: TitleUnprotected}
	}

	if r.Published == FlagTrue {
		r.PublishedIcon = &Annotation{IconClasses: publishedIconClasses, IconTitle: TitlePublished}
	} else {
		r.PublishedIcon = &Annotation{IconClasses: unpublishedIconClasses, IconTitle: TitleUnpublished}
	}
}

// Order 按字段排序，仅忽略 ASCII 字母大小写，其余字节按原值比较
// direction 或 field 为空时不排序；direction 为 asc 时升序，其它非空值降序
// 不保证相等元素的相对顺序
func Order(items []*Recording, direction, field string) {
	if direction == "" || field == "" {
		return
	}
	asc := direction == OrderAsc
	slices.SortFunc(items, func(a, b *Recording) int {
		n := CompareFold(FieldValue(a, field), FieldValue(b, field))
		if asc {
			return n
		}
		return -n
	})
}

// CompareFold 逐字节比较，'A'-'Z' 视为对应小写字母
// 非 ASCII 字节与无效 UTF-8 不做转换
func CompareFold(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		ca, cb := lowerASCII(a[i]), lowerASCII(b[i])
		if ca != cb {
			return int(ca) - int(cb)
		}
	}
	return len(a) - len(b)
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// FieldValue 获取排序字段的文本值，未知字段返回空串
func FieldValue(r *Recording, field string) string {
	switch field {
	case OrderByName:
		v, _ := r.Metadata.Lookup(MetaName)
		return v
	case OrderByDescription:
		v, _ := r.Metadata.Lookup(MetaDescription)
		return v
	case OrderByDate:
		return r.StartTime
	default:
		return ""
	}
}
