package gobatch

import (
	"testing"
	"time"

	"github.com/bmizerany/assert"
	"github.com/panjf2000/ants/v2"
)

func TestTaskPool_Submit(t *testing.T) {
	pool := newTaskPool(1)
	defer pool.Release()

	release := make(chan struct{})
	started := make(chan struct{})
	err := pool.Submit(func() {
		close(started)
		<-release
	})
	assert.Equal(t, nil, err)
	<-started

	err = pool.Submit(func() {})
	assert.Equal(t, ants.ErrPoolOverload, err)
	close(release)

	done := make(chan struct{})
	for i := 0; i < 100; i++ {
		if err = pool.Submit(func() { close(done) }); err == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, nil, err)
	<-done
}

func TestTaskPool_Panic(t *testing.T) {
	pool := newTaskPool(2)
	defer pool.Release()

	done := make(chan struct{})
	err := pool.Submit(func() {
		defer close(done)
		var m []string
		_ = m[0]
	})
	assert.Equal(t, nil, err)
	<-done

	ok := make(chan struct{})
	assert.Equal(t, nil, pool.Submit(func() { close(ok) }))
	<-ok
}

func TestTaskPool_Release(t *testing.T) {
	pool := newTaskPool(2)
	pool.Release()
	err := pool.Submit(func() {})
	assert.Equal(t, ants.ErrPoolClosed, err)
}
