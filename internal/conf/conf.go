package conf

import (
	"fmt"
	"time"
)

type Bootstrap struct {
	Server     Server `comment:"服务配置"`
	Data       Data   `comment:"数据配置"`
	BBB        BBB    `comment:"BigBlueButton 配置"`
	Log        Log    `comment:"日志配置"`
	Debug      bool   `toml:"-"`
	ConfigPath string `toml:"-"`

	BuildVersion string `toml:"-"`
}

type Server struct {
	Debug    bool   `comment:"调试模式"`
	Username string `comment:"管理员账号"`
	Password string `comment:"管理员密码"`
	HTTP     ServerHTTP
}

type ServerHTTP struct {
	Port      int      `comment:"http 端口"`
	Timeout   Duration `comment:"请求超时"`
	JwtSecret string   `comment:"jwt 密钥，为空时启动随机生成"`
	PProf     ServerPPROF
}

type ServerPPROF struct {
	Enabled   bool     `comment:"是否启用 pprof"`
	AccessIps []string `comment:"访问白名单"`
}

type Data struct {
	Database Database
	Redis    Redis
}

type Database struct {
	Dsn             string   `comment:"数据库连接，sqlite 填写文件名；postgres://... 或 mysql://..."`
	MaxIdleConns    int32    `comment:"最大空闲连接"`
	MaxOpenConns    int32    `comment:"最大连接数"`
	ConnMaxLifetime Duration `comment:"连接最大存活时间"`
	SlowThreshold   Duration `comment:"慢查询阈值"`
}

type Redis struct {
	Addr     string   `comment:"redis 地址，为空时不启用会议室缓存"`
	Password string   `comment:"redis 密码"`
	DB       int      `comment:"redis 库"`
	TTL      Duration `comment:"会议室缓存时长"`
}

type BBB struct {
	URL      string   `comment:"BBB 服务地址，例如 https://bbb.example.com/bigbluebutton"`
	Secret   string   `comment:"BBB 共享密钥"`
	Checksum string   `comment:"校验和算法 sha1/sha256"`
	Timeout  Duration `comment:"请求超时"`
}

type Log struct {
	Dir          string   `comment:"日志目录"`
	Level        string   `comment:"日志级别 debug/info/warn/error"`
	MaxAge       Duration `comment:"保留时长"`
	RotationSize int64    `comment:"单个日志文件大小（MB）"`
}

// Duration 配置中的时长，以 "10s"、"1h" 等文本表示
type Duration time.Duration

// Duration 转为 time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", b, err)
	}
	*d = Duration(v)
	return nil
}
