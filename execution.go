package gobatch

import (
	"context"
	"sync"

	"github.com/oklog/ulid/v2"
)

// outcome result of one start or execute handler
type outcome struct {
	entry Entry
	index int
	value interface{}
	eof   bool
	err   error
}

type next int

const (
	nextNone next = iota
	nextStart
	nextExecute
	nextFinish
)

// runState bookkeeping of one batch run, only touched by the run loop except for the abort signal
type runState struct {
	id      string
	ctx     context.Context
	config  Config
	scope   interface{}
	data    interface{}
	counter int
	cycle   int
	eof     bool

	outcomes  chan *outcome
	aborted   chan struct{}
	abortOnce sync.Once
	done      chan struct{}
}

func newRunState(ctx context.Context, config Config) *runState {
	return &runState{
		id:       ulid.Make().String(),
		ctx:      ctx,
		config:   config,
		eof:      true,
		outcomes: make(chan *outcome, 1),
		aborted:  make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// apply fold an accepted outcome into the run and decide which phase comes next
func (rs *runState) apply(out *outcome) next {
	switch out.entry {
	case EntryStart:
		rs.scope = out.value
		rs.eof = out.eof
		rs.counter = 0
		rs.cycle++
		return nextExecute
	case EntryExecute:
		if _, keep := out.value.(unchanged); !keep {
			rs.data = out.value
		}
		rs.counter++
		if rs.counter >= rs.config.Chunk || out.eof {
			rs.counter = 0
			if rs.eof {
				return nextFinish
			}
			return nextStart
		}
		return nextExecute
	}
	return nextNone
}

// resumer create the one-shot Resume handed to a start or execute handler
func (rs *runState) resumer(entry Entry, index int) Resume {
	var once sync.Once
	return func(value interface{}, eof bool, err error) {
		fired := false
		once.Do(func() {
			fired = true
			out := &outcome{entry: entry, index: index, value: value, eof: eof, err: err}
			select {
			case rs.outcomes <- out:
			default:
				logger.Error(rs.ctx, "outcome dropped, pending outcome not consumed, runId:%v, entry:%v, index:%v", rs.id, entry, index)
			}
		})
		if !fired {
			logger.Warn(rs.ctx, "duplicate resume ignored, runId:%v, entry:%v, index:%v", rs.id, entry, index)
		}
	}
}

func (rs *runState) abort() {
	rs.abortOnce.Do(func() {
		close(rs.aborted)
	})
}

func (rs *runState) isAborted() bool {
	select {
	case <-rs.aborted:
		return true
	default:
		return false
	}
}

func (rs *runState) phase(batchName string, entry Entry) PhaseContext {
	return PhaseContext{
		BatchName: batchName,
		RunID:     rs.id,
		Entry:     entry,
		Cycle:     rs.cycle,
		Index:     rs.counter,
		EOF:       rs.eof,
	}
}
