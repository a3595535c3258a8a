package harness

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate stringer -type=Workload -linecomment

// Workload 压测场景
type Workload int

const (
	Write Workload = iota // write
	Read                  // read
	Mixed                 // mixed
)

// ErrUnknownWorkload 无法识别的场景名
var ErrUnknownWorkload = errors.New("unknown workload")

// Workloads 全部场景，按报告输出顺序排列
func Workloads() []Workload {
	return []Workload{Write, Read, Mixed}
}

// ParseWorkload 按名称（不区分大小写）解析场景
func ParseWorkload(name string) (Workload, error) {
	for _, w := range Workloads() {
		if strings.EqualFold(strings.TrimSpace(name), w.String()) {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWorkload, name)
}

// plan 单个 worker 在一个场景下的操作序列
type plan struct {
	workload  Workload
	readEvery int
}

// run 线程 tid 对 target 执行 ops 次操作，返回最后一次 Get 的结果，防止读操作被优化掉
func (p plan) run(target Target, tid, ops int) int64 {
	var last int64
	switch p.workload {
	case Write:
		for i := 0; i < ops; i++ {
			target.Increment(tid)
		}
	case Read:
		for i := 0; i < ops; i++ {
			last = target.Get()
		}
	case Mixed:
		for i := 1; i <= ops; i++ {
			if i%p.readEvery == 0 {
				last = target.Get()
			} else {
				target.Increment(tid)
			}
		}
	}
	return last
}

// increments 该计划下单个线程执行 ops 次操作产生的写入次数
func (p plan) increments(ops int) int64 {
	switch p.workload {
	case Write:
		return int64(ops)
	case Mixed:
		return int64(ops - ops/p.readEvery)
	default:
		return 0
	}
}
