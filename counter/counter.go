// Package counter 对比几种并发计数器的实现：
//
//   - Naive：无任何同步，只在单goroutine下正确，用作性能与正确性的下限对照
//   - Locked：互斥锁保护，所有操作全序（线性一致）
//   - Atomic：单个共享的原子计数器
//   - Distributed：按线程分片、每个分片独占一个 cache line 的原子计数器
//
// 基准测试见 counter_bench_test.go，多场景压测见 harness 包。
package counter

import (
	"sync"
	"sync/atomic"
)

// Counter 所有基准计数器共享的最小契约
type Counter interface {
	Increment()
	Get() int64
}

var (
	_ Counter = (*Naive)(nil)
	_ Counter = (*Locked)(nil)
	_ Counter = (*Atomic)(nil)
)

// Naive 无同步的计数器。
// 并发使用时存在数据竞争，结果不确定，这正是它作为对照组的意义，不要"修复"它。
type Naive struct {
	n int64
}

// NewNaive 创建无同步的计数器
func NewNaive() *Naive { return &Naive{} }

// Increment 直接自增，并发调用会丢失更新
func (c *Naive) Increment() { c.n++ }

// Get 直接读取当前值
func (c *Naive) Get() int64 { return c.n }

// Locked 互斥锁保护的计数器，任意时刻最多只有一个 Increment 或 Get 在执行。
// 不可复制：锁和计数值必须待在一起。
type Locked struct {
	mu sync.Mutex
	n  int64
}

// NewLocked 创建互斥锁保护的计数器
func NewLocked() *Locked { return &Locked{} }

// Increment 加锁后自增
func (c *Locked) Increment() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
}

// Get 加锁读取当前值
func (c *Locked) Get() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// Atomic 单个共享原子变量的计数器。
// Go 的 sync/atomic 只提供顺序一致的原子操作，这已经是能用的最弱内存序。
type Atomic struct {
	n atomic.Int64
}

// NewAtomic 创建基于单个原子变量的计数器
func NewAtomic() *Atomic { return &Atomic{} }

// Increment 原子加一
func (c *Atomic) Increment() { c.n.Add(1) }

// Get 原子读取当前值
func (c *Atomic) Get() int64 { return c.n.Load() }
