package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}

	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateZeroWorkers(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	expected := runtime.GOMAXPROCS(0)
	if pool.Workers() != expected {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), expected)
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	numTasks := 100

	work := make([]func(), numTasks)
	for i := range work {
		work[i] = func() {
			counter.Add(1)
		}
	}

	pool.ExecuteAll(work)

	if counter.Load() != int64(numTasks) {
		t.Errorf("counter = %d, want %d", counter.Load(), numTasks)
	}
}

func TestWorkerPool_ExecuteAll_CapturedResults(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	results := make([]int, 20)
	work := make([]func(), len(results))
	for i := range work {
		i := i
		work[i] = func() {
			results[i] = i * i
		}
	}

	pool.ExecuteAll(work)

	for i, got := range results {
		if got != i*i {
			t.Errorf("results[%d] = %d, want %d", i, got, i*i)
		}
	}
}

func TestWorkerPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	// Must not hang or panic.
	pool.ExecuteAll(nil)
	pool.ExecuteAll([]func(){})
}

func TestWorkerPool_ExecuteAll_UnevenLoad(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// A few heavy jobs among many light ones exercises stealing.
	var mu sync.Mutex
	done := make(map[int]bool)

	work := make([]func(), 32)
	for i := range work {
		i := i
		work[i] = func() {
			if i%8 == 0 {
				spin := 0
				for j := 0; j < 100000; j++ {
					spin += j
				}
				_ = spin
			}
			mu.Lock()
			done[i] = true
			mu.Unlock()
		}
	}

	pool.ExecuteAll(work)

	for i := range work {
		if !done[i] {
			t.Errorf("job %d never ran", i)
		}
	}
}

func TestWorkerPool_ExecuteAll_AfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}

	var counter atomic.Int64
	pool.ExecuteAll([]func(){func() { counter.Add(1) }})

	if counter.Load() != 0 {
		t.Errorf("work ran on closed pool: counter = %d", counter.Load())
	}
}

func TestWorkerPool_CloseTwice(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close() // must not panic
}
