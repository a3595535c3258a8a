// Package harness 在不同线程数、不同读写比例下压测各种计数器实现。
//
// 每个组合都会新建计数器，启动 threads 个绑定 OS 线程的 worker，
// 所有 worker 就绪后同时放行并计时，结束后校验最终计数是否丢失更新。
package harness

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/syncx"
	"github.com/zeromicro/go-zero/core/timex"
	"golang.org/x/sync/errgroup"
)

// readSink 保存读操作的结果，防止 Get 被当成无用代码
var readSink atomic.Int64

// Runner 按配置遍历 实现 × 场景 × 线程数
type Runner struct {
	cfg       Config
	variants  []Variant
	workloads []Workload
}

// NewRunner 校验配置并解析实现与场景
func NewRunner(cfg Config) (*Runner, error) {
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{cfg: cfg}
	maxThreads := slices.Max(cfg.Threads)
	for _, name := range cfg.Variants {
		v, err := LookupVariant(name)
		if err != nil {
			return nil, err
		}
		// 提前发现超出分片上限的线程数，而不是在压测中途 panic
		if _, err := v.New(maxThreads); err != nil {
			return nil, err
		}
		r.variants = append(r.variants, v)
	}
	for _, name := range cfg.Workloads {
		w, err := ParseWorkload(name)
		if err != nil {
			return nil, err
		}
		r.workloads = append(r.workloads, w)
	}
	return r, nil
}

// Run 执行全部组合。ctx 取消后在组合之间停止，已完成的结果仍会返回。
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	var results []Result
	for _, v := range r.variants {
		for _, w := range r.workloads {
			for _, threads := range r.cfg.Threads {
				if v.Racy && threads > 1 && !r.cfg.AllowRacy {
					logx.Infof("skip %s/%s threads=%d: racy variant", v.Name, w, threads)
					continue
				}

				best, err := r.runBest(ctx, v, w, threads)
				if err != nil {
					return results, err
				}
				logx.Infow("cell done",
					logx.Field("variant", best.Variant),
					logx.Field("workload", best.Workload),
					logx.Field("threads", best.Threads),
					logx.Field("nsPerOp", best.NsPerOp),
					logx.Field("lost", best.Lost))
				results = append(results, best)
			}
		}
	}
	return results, nil
}

func (r *Runner) runBest(ctx context.Context, v Variant, w Workload, threads int) (Result, error) {
	var best Result
	for round := 0; round < r.cfg.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		res, err := r.runCell(ctx, v, w, threads)
		if err != nil {
			return Result{}, fmt.Errorf("%s/%s threads=%d: %w", v.Name, w, threads, err)
		}
		if round == 0 || res.Elapsed < best.Elapsed {
			best = res
		}
	}
	return best, nil
}

func (r *Runner) runCell(ctx context.Context, v Variant, w Workload, threads int) (Result, error) {
	target, err := v.New(threads)
	if err != nil {
		return Result{}, err
	}

	p := plan{workload: w, readEvery: r.cfg.ReadEvery}
	ops := r.cfg.OpsPerThread
	var expected int64
	if w == Read {
		// 由 0 号线程在计时前预先写入
		for i := 0; i < r.cfg.Prepopulate; i++ {
			target.Increment(0)
		}
		expected = int64(r.cfg.Prepopulate)
	}
	expected += int64(threads) * p.increments(ops)

	var ready sync.WaitGroup
	gate := syncx.NewDoneChan()
	g, ctx := errgroup.WithContext(ctx)
	ready.Add(threads)
	for tid := 0; tid < threads; tid++ {
		g.Go(func() error {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			ready.Done()
			select {
			case <-gate.Done():
			case <-ctx.Done():
				return ctx.Err()
			}
			readSink.Store(p.run(target, tid, ops))
			return nil
		})
	}

	ready.Wait()
	start := timex.Now()
	gate.Close()
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	elapsed := timex.Since(start)

	return newResult(v, w, threads, ops, elapsed, expected, target.Get()), nil
}
