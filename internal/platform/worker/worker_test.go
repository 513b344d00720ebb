package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRun_ConsumesAllItems(t *testing.T) {
	queue := make(chan int, 10)
	for i := 0; i < 10; i++ {
		queue <- i
	}
	close(queue)

	var (
		mu   sync.Mutex
		seen []int
	)

	Run(context.Background(), queue, Config[int]{
		Name:    "test",
		Workers: 3,
		Process: func(_ context.Context, item int) {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, item)
		},
	})

	assert.Len(t, seen, 10)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	queue := make(chan int)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})

	go func() {
		Run(ctx, queue, Config[int]{Name: "test", Workers: 2, Process: func(context.Context, int) {}})
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pool did not stop after cancel")
	}
}

func TestRun_RecoversFromPanic(t *testing.T) {
	queue := make(chan int, 2)
	queue <- 1
	queue <- 2
	close(queue)

	var processed int

	Run(context.Background(), queue, Config[int]{
		Name:    "test",
		Workers: 1,
		Process: func(_ context.Context, item int) {
			if item == 1 {
				panic("boom")
			}
			processed++
		},
	})

	assert.Equal(t, 1, processed)
}
