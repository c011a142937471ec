package bbb

import (
	"context"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"hash"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// 校验和算法
const (
	ChecksumSHA1   = "sha1"
	ChecksumSHA256 = "sha256"
)

type Config struct {
	URL      string // BBB 服务地址，例如 https://bbb.example.com/bigbluebutton
	Secret   string // 共享密钥
	Checksum string // 校验和算法，默认 sha1
}

type Engine struct {
	cfg Config
	cli *http.Client
}

func NewEngine() Engine {
	return Engine{
		cli: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        30,
				MaxIdleConnsPerHost: 30,
				MaxConnsPerHost:     100,
			},
		},
	}
}

func (e Engine) SetConfig(cfg Config) Engine {
	e.cfg = cfg
	return e
}

// SetTimeout 设置请求超时，小于等于 0 时忽略
func (e Engine) SetTimeout(timeout time.Duration) Engine {
	if timeout > 0 {
		cli := *e.cli
		cli.Timeout = timeout
		e.cli = &cli
	}
	return e
}

// Checksum 计算接口校验和：hash(call + query + secret)
func (e Engine) Checksum(call, query string) string {
	var h hash.Hash
	switch e.cfg.Checksum {
	case ChecksumSHA256:
		h = sha256.New()
	default:
		h = sha1.New()
	}
	h.Write([]byte(call + query + e.cfg.Secret))
	return hex.EncodeToString(h.Sum(nil))
}

// apiURL 构建带校验和的接口地址
func (e Engine) apiURL(call string, params url.Values) string {
	query := params.Encode()
	checksum := e.Checksum(call, query)
	if query != "" {
		query += "&"
	}
	return fmt.Sprintf("%s/api/%s?%schecksum=%s", strings.TrimSuffix(e.cfg.URL, "/"), call, query, checksum)
}

// get 发送 GET 请求到 BBB API 并解析 XML 响应
// 用法示例：e.get(ctx, "getRecordings", url.Values{"meetingID": {"abc"}}, &response)
func (e *Engine) get(ctx context.Context, call string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.apiURL(call, params), nil)
	if err != nil {
		return err
	}
	resp, err := e.cli.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bbb %s: unexpected status %d", call, resp.StatusCode)
	}
	if err := xml.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("bbb %s: decode response: %w", call, err)
	}
	return nil
}
