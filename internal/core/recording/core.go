package recording

import "context"

// Source 录像数据源，解耦录像领域与 BBB 接口
type Source interface {
	GetRecordings(ctx context.Context, roomID string, scope StatusScope) ([]*Recording, error)
}

// Capability 权限查询，判断当前调用者能否管理录像
type Capability interface {
	CanManageRecordings(ctx context.Context) bool
}

// CapabilityFunc 函数适配 Capability
type CapabilityFunc func(ctx context.Context) bool

// CanManageRecordings implements Capability.
func (f CapabilityFunc) CanManageRecordings(ctx context.Context) bool {
	return f(ctx)
}

// Core business domain
type Core struct {
	source     Source
	capability Capability
}

type Option func(*Core)

// WithCapability 注入权限查询，未注入时所有调用者视为无管理权限
func WithCapability(capability Capability) Option {
	return func(c *Core) {
		c.capability = capability
	}
}

// NewCore create business domain
func NewCore(source Source, opts ...Option) Core {
	c := Core{source: source}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// CanManage 查询一次调用者权限
func (c Core) CanManage(ctx context.Context) bool {
	return c.capability != nil && c.capability.CanManageRecordings(ctx)
}
