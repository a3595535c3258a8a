package harness

import "time"

// Result 一个 (实现, 场景, 线程数) 组合的压测结果，多轮时取最快的一轮
type Result struct {
	Variant      string        `json:"variant"`
	Workload     string        `json:"workload"`
	Threads      int           `json:"threads"`
	OpsPerThread int           `json:"opsPerThread"`
	Elapsed      time.Duration `json:"elapsedNs"`
	// NsPerOp 单线程视角下每次操作的墙钟耗时
	NsPerOp   float64 `json:"nsPerOp"`
	OpsPerSec float64 `json:"opsPerSec"`
	// Expected 所有 Increment 完成后计数器应有的值（含预写入）
	Expected int64 `json:"expected"`
	Final    int64 `json:"final"`
	// Lost 丢失的更新数，只有存在数据竞争的实现才可能非零
	Lost int64 `json:"lost"`
}

func newResult(v Variant, w Workload, threads, ops int, elapsed time.Duration, expected, final int64) Result {
	r := Result{
		Variant:      v.Name,
		Workload:     w.String(),
		Threads:      threads,
		OpsPerThread: ops,
		Elapsed:      elapsed,
		Expected:     expected,
		Final:        final,
		Lost:         expected - final,
	}
	if elapsed > 0 {
		r.NsPerOp = float64(elapsed.Nanoseconds()) / float64(ops)
		r.OpsPerSec = float64(threads) * float64(ops) / elapsed.Seconds()
	}
	return r
}
