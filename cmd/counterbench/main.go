// counterbench 在不同线程数、不同读写比例下压测各种计数器实现。
//
// 使用方式：
//
//	go run ./cmd/counterbench -f etc/counterbench.yaml
//	go run ./cmd/counterbench -variants atomic,distributed -threads 1,4,16 -format json
//	go run ./cmd/counterbench -gops   # 运行中可用 gops stack/memstats 观察进程
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/gops/agent"
	"github.com/zeromicro/go-zero/core/logx"

	"counter-lab/harness"
)

var (
	configFile = flag.String("f", "", "the config file")
	variants   = flag.String("variants", "", "comma separated variants, e.g. atomic,distributed")
	workloads  = flag.String("workloads", "", "comma separated workloads: write,read,mixed")
	threads    = flag.String("threads", "", "comma separated thread counts, e.g. 1,2,4,8,16")
	ops        = flag.Int("ops", 0, "operations per thread")
	rounds     = flag.Int("rounds", 0, "rounds per cell, the fastest one is reported")
	format     = flag.String("format", "", "output format: table or json")
	racy       = flag.Bool("racy", false, "also run racy variants with more than one thread")
	withGops   = flag.Bool("gops", false, "start a gops agent for diagnostics")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		logx.Errorf("counterbench: %v", err)
		logx.Close()
		os.Exit(1)
	}
}

func run() error {
	c, err := loadConfig(*configFile)
	if err != nil {
		return err
	}
	if err := applyFlags(&c, flagValues{
		variants:  *variants,
		workloads: *workloads,
		threads:   *threads,
		ops:       *ops,
		rounds:    *rounds,
		format:    *format,
		racy:      *racy,
		set:       visited(flag.CommandLine),
	}); err != nil {
		return err
	}

	logx.MustSetup(c.Log)
	// 报告写 stdout，日志统一写 stderr，避免污染 JSON 输出
	logx.SetWriter(logx.NewWriter(os.Stderr))
	defer logx.Close()

	if *withGops {
		if err := agent.Listen(agent.Options{}); err != nil {
			logx.Errorf("start gops agent: %v", err)
		} else {
			defer agent.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner, err := harness.NewRunner(c)
	if err != nil {
		return err
	}

	logx.Infof("running %v x %v with threads %v, %d ops per thread",
		c.Variants, c.Workloads, c.Threads, c.OpsPerThread)
	results, err := runner.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		logx.Info("interrupted, reporting finished cells only")
	}

	return harness.WriteReport(os.Stdout, c.Format, results)
}

func loadConfig(path string) (harness.Config, error) {
	if path == "" {
		return harness.DefaultConfig(), nil
	}
	return harness.LoadConfig(path)
}
