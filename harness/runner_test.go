package harness

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"counter-lab/counter"
)

func mockVariant(target Target) Variant {
	return Variant{
		Name: "mock",
		New:  func(int) (Target, error) { return target, nil },
	}
}

// 单线程 10 次混合操作：9 次写 1 次读，最后再读一次校验总数
func TestRunCell_MixedIssuesNineWritesPerRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMockTarget(ctrl)
	m.EXPECT().Increment(0).Times(9)
	m.EXPECT().Get().Return(int64(9)).Times(2)

	cfg := smallConfig()
	cfg.OpsPerThread = 10
	r := &Runner{cfg: cfg}

	res, err := r.runCell(context.Background(), mockVariant(m), Mixed, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(9), res.Expected)
	assert.Equal(t, int64(9), res.Final)
	assert.Zero(t, res.Lost)
	assert.Equal(t, "mixed", res.Workload)
}

// 纯读场景在计时前由 0 号线程预写入
func TestRunCell_ReadPrepopulatesFromThreadZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMockTarget(ctrl)
	cfg := smallConfig()
	cfg.OpsPerThread = 5
	cfg.Prepopulate = 3

	prepop := m.EXPECT().Increment(0).Times(3)
	m.EXPECT().Get().Return(int64(3)).Times(2*5 + 1).After(prepop)

	r := &Runner{cfg: cfg}
	res, err := r.runCell(context.Background(), mockVariant(m), Read, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Expected)
	assert.Zero(t, res.Lost)
}

func TestRunCell_WriteRoutesByThreadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMockTarget(ctrl)
	for tid := 0; tid < 3; tid++ {
		m.EXPECT().Increment(tid).Times(4)
	}
	m.EXPECT().Get().Return(int64(12))

	cfg := smallConfig()
	cfg.OpsPerThread = 4
	r := &Runner{cfg: cfg}

	res, err := r.runCell(context.Background(), mockVariant(m), Write, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(12), res.Expected)
	assert.Equal(t, 3, res.Threads)
}

func TestRunner_Run(t *testing.T) {
	r, err := NewRunner(smallConfig())
	require.NoError(t, err)

	results, err := r.Run(context.Background())
	require.NoError(t, err)

	// naive 只跑单线程：3 个场景；其余 3 种实现 × 3 场景 × 3 种线程数
	require.Len(t, results, 3+3*3*3)
	for _, res := range results {
		assert.Zero(t, res.Lost, "%s/%s threads=%d", res.Variant, res.Workload, res.Threads)
		assert.Equal(t, res.Expected, res.Final)
		assert.Positive(t, res.Elapsed)
		assert.Positive(t, res.OpsPerSec)
		if res.Variant == "naive" {
			assert.Equal(t, 1, res.Threads)
		}
	}

	first := results[0]
	assert.Equal(t, "naive", first.Variant)
	assert.Equal(t, "write", first.Workload)
	assert.Equal(t, int64(2000), first.Final)
}

func TestRunner_RacyVariantWhenAllowed(t *testing.T) {
	if raceEnabled {
		t.Skip("naive counter races by design")
	}
	cfg := smallConfig()
	cfg.Variants = []string{"naive"}
	cfg.Workloads = []string{"write"}
	cfg.Threads = []int{4}
	cfg.AllowRacy = true

	r, err := NewRunner(cfg)
	require.NoError(t, err)
	results, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(4*2000), results[0].Expected)
	assert.GreaterOrEqual(t, results[0].Lost, int64(0))
}

func TestNewRunner_RejectsThreadsBeyondShardCapacity(t *testing.T) {
	cfg := smallConfig()
	cfg.Variants = []string{"distributed"}
	cfg.Threads = []int{1, counter.MaxThreads + 1}

	_, err := NewRunner(cfg)
	assert.ErrorIs(t, err, ErrTooManyThreads)
}

func TestNewRunner_InvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.OpsPerThread = 0
	_, err := NewRunner(cfg)
	assert.ErrorIs(t, err, ErrBadOps)
}

func TestNewRunner_RejectsUnknownFormatBeforeRunning(t *testing.T) {
	cfg := smallConfig()
	cfg.Format = "xml"
	r, err := NewRunner(cfg)
	assert.ErrorIs(t, err, ErrBadFormat)
	assert.Nil(t, r)
}

func TestRunner_StopsWhenContextCancelled(t *testing.T) {
	r, err := NewRunner(smallConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}
