package gobatch

import (
	"context"
	"runtime/debug"

	"github.com/panjf2000/ants/v2"
)

type taskPool struct {
	pool *ants.Pool
}

func newTaskPool(size int) *taskPool {
	pool, _ := ants.NewPool(size,
		ants.WithNonblocking(true),
		ants.WithPanicHandler(func(err interface{}) {
			logger.Error(context.Background(), "panic in batch loop, err:%v, stack:%v", err, string(debug.Stack()))
		}),
	)
	return &taskPool{
		pool: pool,
	}
}

// Submit schedule task on the pool, it fails immediately when the pool is full or released
func (pool *taskPool) Submit(task func()) error {
	return pool.pool.Submit(task)
}

func (pool *taskPool) Release() {
	pool.pool.Release()
}

func (pool *taskPool) SetMaxSize(size int) {
	pool.pool.Tune(size)
}
