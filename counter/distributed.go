package counter

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// MaxThreads Distributed 能容纳的最大线程数（分片数上限）
const MaxThreads = 64

// CacheLineSize 当前架构的 cache line 大小，取自 x/sys/cpu：
// amd64 为 64，arm64/ppc64 为 128，s390x 为 256
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

// shard 单个线程独占的累加单元，补齐到恰好一个 cache line，
// 避免相邻分片落在同一 cache line 上产生 false sharing
type shard struct {
	n atomic.Int64
	_ [CacheLineSize - 8]byte
}

// 编译期检查：shard 必须恰好占一个 cache line
var _ [CacheLineSize - unsafe.Sizeof(shard{})]byte
var _ [unsafe.Sizeof(shard{}) - CacheLineSize]byte

// Distributed 按线程分片的计数器。
//
// 每个线程只写自己的分片，Increment 的开销与并发写入的线程数无关；
// Get 逐个读取所有分片求和。
//
// 注意 Get 不是线性一致的快照：读取各分片的过程中其他线程可能还在写别的分片，
// 返回值不一定对应任何一个全局时间点。只有在没有并发写入时，结果才是精确的。
// 这是写端可扩展性的代价，Get 不加锁。
//
// 线程号由调用方分配（例如取自 worker 池下标），必须在 [0, Threads()) 内，
// 且在计数器生命周期内稳定、唯一。Distributed 不可复制。
type Distributed struct {
	_       cpu.CacheLinePad
	table   [MaxThreads]shard
	shards  []shard // table[:threads]，越界的线程号直接触发下标越界 panic
	threads int
}

// NewDistributed 创建能容纳 numThreads 个线程的分片计数器。分片表按 MaxThreads 定长分配并清零，之后不再扩容。
// numThreads 超过 MaxThreads 属于调用方的编程错误，直接 panic，不会静默截断。
func NewDistributed(numThreads int) *Distributed {
	if numThreads < 0 || numThreads > MaxThreads {
		panic(fmt.Sprintf("counter: numThreads %d out of range [0, %d]", numThreads, MaxThreads))
	}
	c := &Distributed{threads: numThreads}
	c.shards = c.table[:numThreads]
	return c
}

// Increment 对 threadID 对应的分片原子加一，不与其他分片产生竞争。
func (c *Distributed) Increment(threadID int) {
	c.shards[threadID].n.Add(1)
}

// Get 汇总所有分片的当前值。
func (c *Distributed) Get() int64 {
	var total int64
	for i := range c.shards {
		total += c.shards[i].n.Load()
	}
	return total
}

// Threads 构造时指定的线程数
func (c *Distributed) Threads() int { return c.threads }
