package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"counter-lab/harness"
)

// flagValues 命令行上给出的覆盖项。
// 数值类参数按 set 判断是否出现过，显式给出的非法值（如 -ops -5）交给 Validate 报错，不会被静默忽略
type flagValues struct {
	variants  string
	workloads string
	threads   string
	ops       int
	rounds    int
	format    string
	racy      bool
	set       map[string]bool
}

// visited 返回命令行上实际出现过的参数名
func visited(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

func applyFlags(c *harness.Config, f flagValues) error {
	if f.variants != "" {
		c.Variants = splitList(f.variants)
	}
	if f.workloads != "" {
		c.Workloads = splitList(f.workloads)
	}
	if f.threads != "" {
		ts, err := parseInts(f.threads)
		if err != nil {
			return fmt.Errorf("parse -threads: %w", err)
		}
		c.Threads = ts
	}
	if f.set["ops"] {
		c.OpsPerThread = f.ops
	}
	if f.set["rounds"] {
		c.Rounds = f.rounds
	}
	if f.set["format"] || f.format != "" {
		c.Format = f.format
	}
	if f.racy {
		c.AllowRacy = true
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, item := range splitList(s) {
		n, err := strconv.Atoi(item)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
