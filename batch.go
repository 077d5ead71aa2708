package gobatch

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/auracore/gobatch/status"
)

// closedDone is returned by Done before the first run
var closedDone = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// Host the component owning a batch. Once IsValid reports false every pending resume of the batch is dropped.
type Host interface {
	IsValid() bool
}

type alwaysValid struct{}

func (alwaysValid) IsValid() bool {
	return true
}

// Batch drives one chunked iteration at a time through its start, execute, finish and fail handlers.
// Status is the only externally visible state of a run.
type Batch struct {
	name            string
	host            Host
	statusListeners []StatusListener
	phaseListeners  []PhaseListener
	pool            *taskPool

	mu      sync.Mutex
	status  atomic.Value
	current *runState
}

func newBatch(name string, host Host, statusListeners []StatusListener, phaseListeners []PhaseListener) *Batch {
	b := &Batch{
		name:            name,
		host:            host,
		statusListeners: statusListeners,
		phaseListeners:  phaseListeners,
		pool:            batchPool,
	}
	b.status.Store(status.IDLE)
	return b
}

func (b *Batch) Name() string {
	return b.name
}

// Run start a new run with config. It returns false when config is nil or the batch is preparing or processing.
func (b *Batch) Run(ctx context.Context, config *Config) bool {
	return b.RunE(ctx, config) == nil
}

// RunE like Run, but reports why a run was rejected
func (b *Batch) RunE(ctx context.Context, config *Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if config == nil {
		logger.Warn(ctx, "batch run rejected, batchName:%v, err:%v", b.name, ErrEmptyConfig)
		return ErrEmptyConfig
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if s := b.Status(); s.IsRunning() {
		logger.Warn(ctx, "batch run rejected, batchName:%v, status:%v, err:%v", b.name, s, ErrBusy)
		return ErrBusy
	}
	if !b.host.IsValid() {
		logger.Warn(ctx, "batch run rejected, batchName:%v, err:%v", b.name, ErrHostInvalid)
		return ErrHostInvalid
	}
	if err := ctx.Err(); err != nil {
		logger.Warn(ctx, "batch run rejected, batchName:%v, err:%v", b.name, err)
		return NewBatchError(ErrCodeRejected, ErrContextDone.Message(), err)
	}
	rs := newRunState(ctx, config.normalize())
	if err := b.pool.Submit(func() { b.loop(rs) }); err != nil {
		logger.Error(ctx, "batch run rejected, batchName:%v, err:%v", b.name, err)
		return NewBatchError(ErrCodeRejected, ErrPoolUnavailable.Message(), err)
	}
	b.current = rs
	b.setStatusLocked(rs, status.PREPARING)
	logger.Info(ctx, "batch run start, batchName:%v, runId:%v, chunk:%v", b.name, rs.id, rs.config.Chunk)
	return nil
}

// Abort stop the current run. A handler in flight is not interrupted, its resume is discarded.
func (b *Batch) Abort() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.Status().IsRunning() {
		return false
	}
	rs := b.current
	rs.abort()
	b.setStatusLocked(rs, status.ABORTED)
	logger.Info(rs.ctx, "batch run aborted, batchName:%v, runId:%v", b.name, rs.id)
	return true
}

func (b *Batch) Status() status.BatchStatus {
	return b.status.Load().(status.BatchStatus)
}

// RunID id of the current or last run
func (b *Batch) RunID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return ""
	}
	return b.current.id
}

// Done returns a channel closed once the loop of the current run has exited
func (b *Batch) Done() <-chan struct{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return closedDone
	}
	return b.current.done
}

// Wait block until the current run has exited or ctx is done, and returns the batch status
func (b *Batch) Wait(ctx context.Context) (status.BatchStatus, error) {
	select {
	case <-b.Done():
		return b.Status(), nil
	case <-ctx.Done():
		return b.Status(), ctx.Err()
	}
}

func (b *Batch) loop(rs *runState) {
	defer close(rs.done)
	if !b.start(rs) {
		return
	}
	for {
		select {
		case out := <-rs.outcomes:
			if !b.resume(rs, out) {
				return
			}
		case <-rs.aborted:
			return
		case <-rs.ctx.Done():
			logger.Warn(rs.ctx, "batch context done, pending resume dropped, batchName:%v, runId:%v, err:%v", b.name, rs.id, rs.ctx.Err())
			return
		}
	}
}

// resume handle one outcome, it returns false when the run has nothing left to wait for
func (b *Batch) resume(rs *runState, out *outcome) bool {
	if !b.alive(rs) {
		logger.Warn(rs.ctx, "batch host is no longer valid, outcome dropped, batchName:%v, runId:%v, entry:%v", b.name, rs.id, out.entry)
		return false
	}
	if rs.isAborted() {
		return false
	}
	if out.err != nil {
		b.fail(rs, out.entry, out.err)
		return false
	}
	switch rs.apply(out) {
	case nextExecute:
		b.afterPhase(rs, out)
		return b.execute(rs)
	case nextStart:
		b.afterPhase(rs, out)
		return b.start(rs)
	case nextFinish:
		b.afterPhase(rs, out)
		b.finish(rs)
	}
	return false
}

// superseded report whether another run has replaced rs
func (b *Batch) superseded(rs *runState) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current != rs
}

func (b *Batch) alive(rs *runState) bool {
	return rs.ctx.Err() == nil && b.host.IsValid()
}

// transition store a status for rs unless rs was superseded, aborted or its host torn down
func (b *Batch) transition(rs *runState, to status.BatchStatus) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current != rs || rs.isAborted() || !b.alive(rs) {
		return false
	}
	return b.setStatusLocked(rs, to)
}

func (b *Batch) setStatusLocked(rs *runState, to status.BatchStatus) bool {
	from := b.Status()
	if from == to {
		return true
	}
	if !from.CanTransit(to) {
		logger.Error(rs.ctx, "illegal batch status change, batchName:%v, runId:%v, from:%v, to:%v", b.name, rs.id, from, to)
		return false
	}
	event := StatusEvent{BatchName: b.name, RunID: rs.id, From: from, To: to}
	for _, listener := range b.statusListeners {
		b.notify(rs, func() { listener.BeforeChange(event) })
	}
	b.status.Store(to)
	for _, listener := range b.statusListeners {
		b.notify(rs, func() { listener.AfterChange(event) })
	}
	logger.Debug(rs.ctx, "batch status changed, batchName:%v, runId:%v, from:%v, to:%v", b.name, rs.id, from, to)
	return true
}

func (b *Batch) notify(rs *runState, fn func()) {
	defer func() {
		if er := recover(); er != nil {
			logger.Error(rs.ctx, "panic in batch listener, batchName:%v, runId:%v, err:%v", b.name, rs.id, er)
		}
	}()
	fn()
}
