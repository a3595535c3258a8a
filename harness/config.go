package harness

import (
	"errors"
	"fmt"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// DefaultThreads 对应 ThreadRange(1, 16)
var DefaultThreads = []int{1, 2, 4, 8, 16}

var (
	ErrBadThreads   = errors.New("thread count must be positive")
	ErrBadOps       = errors.New("ops per thread must be positive")
	ErrBadRounds    = errors.New("rounds must be positive")
	ErrBadReadEvery = errors.New("read-every must be positive")
	ErrBadPrepop    = errors.New("prepopulate must not be negative")
	ErrBadFormat    = errors.New("format must be table or json")
)

// Config 压测配置，字段标签遵循 go-zero conf 的约定
type Config struct {
	Variants     []string     `json:",optional"`
	Workloads    []string     `json:",optional"`
	Threads      []int        `json:",optional"`
	OpsPerThread int          `json:",default=1000000"`
	Rounds       int          `json:",default=3"`
	Prepopulate  int          `json:",default=1000"`
	ReadEvery    int          `json:",default=10"`
	AllowRacy    bool         `json:",optional"`
	Format       string       `json:",default=table,options=table|json"`
	Log          logx.LogConf `json:",optional"`
}

// DefaultConfig 返回只包含默认值的配置
func DefaultConfig() Config {
	var c Config
	// 空对象只会填充 default 标签
	if err := conf.LoadFromJsonBytes([]byte("{}"), &c); err != nil {
		panic(err)
	}
	c.normalize()
	return c
}

// LoadConfig 从 yaml/json 文件加载配置并补全缺省项
func LoadConfig(path string) (Config, error) {
	var c Config
	if err := conf.Load(path, &c); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	c.normalize()
	return c, nil
}

func (c *Config) normalize() {
	if len(c.Variants) == 0 {
		for _, v := range Variants() {
			c.Variants = append(c.Variants, v.Name)
		}
	}
	if len(c.Workloads) == 0 {
		for _, w := range Workloads() {
			c.Workloads = append(c.Workloads, w.String())
		}
	}
	if len(c.Threads) == 0 {
		c.Threads = append([]int(nil), DefaultThreads...)
	}
	if c.Format == "" {
		c.Format = FormatTable
	}
}

// Validate 检查配置是否合法
func (c Config) Validate() error {
	for _, t := range c.Threads {
		if t < 1 {
			return fmt.Errorf("%w: %d", ErrBadThreads, t)
		}
	}
	switch {
	case c.OpsPerThread < 1:
		return ErrBadOps
	case c.Rounds < 1:
		return ErrBadRounds
	case c.ReadEvery < 1:
		return ErrBadReadEvery
	case c.Prepopulate < 0:
		return ErrBadPrepop
	}
	// options 标签只在加载文件时生效，命令行覆盖的 format 要在压测开始前拦下
	if c.Format != FormatTable && c.Format != FormatJSON {
		return fmt.Errorf("%w: %q", ErrBadFormat, c.Format)
	}
	for _, name := range c.Variants {
		if _, err := LookupVariant(name); err != nil {
			return err
		}
	}
	for _, name := range c.Workloads {
		if _, err := ParseWorkload(name); err != nil {
			return err
		}
	}
	return nil
}
