package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CapManageRecordings 管理会议室录像的权限，可查看未发布录像及状态图标
const CapManageRecordings = "manage_bbb_room_recordings"

// CapManageRooms 管理会议室
const CapManageRooms = "manage_bbb_rooms"

const tokenIssuer = "bbbrooms"

// Claims 登录令牌
type Claims struct {
	Username     string   `json:"username"`
	Capabilities []string `json:"capabilities,omitempty"`
	jwt.RegisteredClaims
}

// Has 是否拥有权限
func (c *Claims) Has(capability string) bool {
	return c != nil && slices.Contains(c.Capabilities, capability)
}

// NewToken 签发 HS256 令牌
func NewToken(secret, username string, capabilities []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Username:     username,
		Capabilities: capabilities,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken 校验签名与有效期
func ParseToken(secret, token string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	return &claims, nil
}

type claimsKey struct{}

// ClaimsFrom 获取请求上下文中的令牌，匿名请求返回 nil
func ClaimsFrom(ctx context.Context) *Claims {
	v, _ := ctx.Value(claimsKey{}).(*Claims)
	return v
}

// CanManageRecordings 判断调用者是否拥有录像管理权限
func CanManageRecordings(ctx context.Context) bool {
	return ClaimsFrom(ctx).Has(CapManageRecordings)
}

// bearerToken 读取 Authorization 头，播放列表等无法设置请求头的场景使用 token 参数
func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	return c.Query("token")
}

// authMiddleware 解析可选的登录令牌
// 未携带令牌按匿名处理；携带了无效令牌返回 401
func authMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}
		claims, err := ParseToken(secret, token)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "token expired"
			}
			slog.DebugContext(c.Request.Context(), "parse token", "err", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 1, "msg": msg})
			return
		}
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), claimsKey{}, claims))
		c.Next()
	}
}

// requireCapability 要求调用者拥有指定权限
func requireCapability(capability string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFrom(c.Request.Context())
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 1, "msg": "login required"})
			return
		}
		if !claims.Has(capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"code": 1, "msg": "permission denied"})
			return
		}
		c.Next()
	}
}
