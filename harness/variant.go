package harness

import (
	"errors"
	"fmt"

	"counter-lab/counter"
)

//go:generate mockgen -source=variant.go -destination=mock_target_test.go -package=harness

// Target worker 实际驱动的对象。
// threadID 由 harness 按 worker 下标分配，范围 [0, threads)，基准计数器会忽略它。
type Target interface {
	Increment(threadID int)
	Get() int64
}

// Variant 一种计数器实现
type Variant struct {
	Name string
	// Racy 为 true 表示并发使用存在数据竞争，默认只在单线程下压测
	Racy bool
	New  func(threads int) (Target, error)
}

var (
	ErrUnknownVariant  = errors.New("unknown variant")
	ErrTooManyThreads  = errors.New("too many threads for variant")
	ErrNegativeThreads = errors.New("negative thread count")
)

// shared 把所有线程共享同一个计数器的基准实现适配成 Target
type shared struct {
	c counter.Counter
}

func (s shared) Increment(int) { s.c.Increment() }

func (s shared) Get() int64 { return s.c.Get() }

func baseline(name string, racy bool, newCounter func() counter.Counter) Variant {
	return Variant{
		Name: name,
		Racy: racy,
		New: func(int) (Target, error) {
			return shared{c: newCounter()}, nil
		},
	}
}

func newDistributed(threads int) (Target, error) {
	switch {
	case threads < 0:
		return nil, ErrNegativeThreads
	case threads > counter.MaxThreads:
		return nil, fmt.Errorf("%w: distributed supports at most %d, got %d",
			ErrTooManyThreads, counter.MaxThreads, threads)
	}
	return counter.NewDistributed(threads), nil
}

// Variants 全部计数器实现，按报告输出顺序排列
func Variants() []Variant {
	return []Variant{
		baseline("naive", true, func() counter.Counter { return counter.NewNaive() }),
		baseline("locked", false, func() counter.Counter { return counter.NewLocked() }),
		baseline("atomic", false, func() counter.Counter { return counter.NewAtomic() }),
		{Name: "distributed", New: newDistributed},
	}
}

// LookupVariant 按名称查找实现
func LookupVariant(name string) (Variant, error) {
	for _, v := range Variants() {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}
