package gobatch

import (
	"runtime/debug"

	"github.com/auracore/gobatch/status"
)

// start run the start handler of a new cycle, it returns false when no handler was invoked
func (b *Batch) start(rs *runState) bool {
	if !b.transition(rs, status.PREPARING) {
		return false
	}
	b.beforePhase(rs, EntryStart)
	resume := rs.resumer(EntryStart, 0)
	b.invoke(rs, EntryStart, resume, func() {
		rs.config.Starter.Start(rs.ctx, rs.scope, resume)
	})
	return true
}

// execute run the execute handler for the item at rs.counter
func (b *Batch) execute(rs *runState) bool {
	if !b.transition(rs, status.PROCESSING) {
		return false
	}
	b.beforePhase(rs, EntryExecute)
	index := rs.counter
	resume := rs.resumer(EntryExecute, index)
	b.invoke(rs, EntryExecute, resume, func() {
		rs.config.Executor.Execute(rs.ctx, rs.scope, rs.data, index, resume)
	})
	return true
}

// invoke call a suspending handler, a panic before it resumed is reported through resume
func (b *Batch) invoke(rs *runState, entry Entry, resume Resume, fn func()) {
	defer func() {
		if er := recover(); er != nil {
			logger.Error(rs.ctx, "panic in batch handler, batchName:%v, runId:%v, entry:%v, err:%v, stack:%v", b.name, rs.id, entry, er, string(debug.Stack()))
			resume(nil, false, wrapPanic(entry, er))
		}
	}()
	fn()
}

func (b *Batch) finish(rs *runState) {
	if !b.transition(rs, status.COMPLETED) {
		return
	}
	b.beforePhase(rs, EntryFinish)
	if err := b.callFinisher(rs); err != nil {
		b.fail(rs, EntryFinish, err)
		return
	}
	b.afterPhase(rs, &outcome{entry: EntryFinish, eof: true})
	logger.Info(rs.ctx, "batch run completed, batchName:%v, runId:%v, cycles:%v", b.name, rs.id, rs.cycle)
}

func (b *Batch) callFinisher(rs *runState) (err error) {
	defer func() {
		if er := recover(); er != nil {
			logger.Error(rs.ctx, "panic in batch handler, batchName:%v, runId:%v, entry:%v, err:%v, stack:%v", b.name, rs.id, EntryFinish, er, string(debug.Stack()))
			err = wrapPanic(EntryFinish, er)
		}
	}()
	return rs.config.Finisher.Finish(rs.ctx, rs.scope, rs.data)
}

func (b *Batch) fail(rs *runState, entry Entry, err error) {
	if !b.transition(rs, status.FAILED) {
		// a finisher may still be running once the batch was run again, its error belongs to this run only
		if entry != EntryFinish || !b.superseded(rs) {
			return
		}
		logger.Warn(rs.ctx, "batch run superseded before finish failed, status kept, batchName:%v, runId:%v", b.name, rs.id)
	}
	logger.Error(rs.ctx, "batch run failed, batchName:%v, runId:%v, entry:%v, err:%v", b.name, rs.id, entry, err)
	phase := rs.phase(b.name, entry)
	for _, listener := range b.phaseListeners {
		b.notify(rs, func() { listener.OnError(rs.ctx, phase, err) })
	}
	defer func() {
		if er := recover(); er != nil {
			logger.Error(rs.ctx, "fail handler error, batchName:%v, runId:%v, entry:%v, err:%v, handlerErr:%v", b.name, rs.id, entry, err, er)
		}
	}()
	rs.config.Failer.Fail(rs.ctx, entry, err)
}

func (b *Batch) beforePhase(rs *runState, entry Entry) {
	phase := rs.phase(b.name, entry)
	for _, listener := range b.phaseListeners {
		b.notify(rs, func() { listener.BeforePhase(rs.ctx, phase) })
	}
}

func (b *Batch) afterPhase(rs *runState, out *outcome) {
	phase := rs.phase(b.name, out.entry)
	phase.Index = out.index
	phase.EOF = out.eof
	for _, listener := range b.phaseListeners {
		b.notify(rs, func() { listener.AfterPhase(rs.ctx, phase) })
	}
}
