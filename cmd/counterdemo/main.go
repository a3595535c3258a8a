package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"counter-lab/counter"
)

const increments = 5

func main() {
	run(os.Stdout)
}

func run(w io.Writer) {
	naive := counter.NewNaive()
	locked := counter.NewLocked()
	lockFree := counter.NewAtomic()
	for i := 0; i < increments; i++ {
		naive.Increment()
		locked.Increment()
		lockFree.Increment()
	}

	fmt.Fprintf(w, "naive counter: %d\n", naive.Get())
	fmt.Fprintf(w, "locked counter: %d\n", locked.Get())
	fmt.Fprintf(w, "lock free counter: %d\n", lockFree.Get())

	// 分片计数器：每个 goroutine 使用自己的线程号
	const threads = 2
	distributed := counter.NewDistributed(threads)
	var wg sync.WaitGroup
	for tid := 0; tid < threads; tid++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < increments; i++ {
				distributed.Increment(tid)
			}
		}()
	}
	wg.Wait()
	fmt.Fprintf(w, "distributed counter: %d\n", distributed.Get())
}
