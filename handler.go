package gobatch

import "context"

// Entry name of the phase an outcome or failure comes from
type Entry string

const (
	EntryStart   Entry = "start"
	EntryExecute Entry = "execute"
	EntryFinish  Entry = "finish"
)

// Resume reports the outcome of a start or execute handler. Only the first call of a Resume has effect.
// For start the value is the new scope, for execute it is the new data.
type Resume func(value interface{}, eof bool, err error)

type unchanged struct{}

// Unchanged can be passed as value to an execute Resume to keep the data of the previous execute call
var Unchanged interface{} = unchanged{}

// Starter opens a cycle and produces its scope
type Starter interface {
	Start(ctx context.Context, scope interface{}, resume Resume)
}

// Executor processes one item of a cycle
type Executor interface {
	Execute(ctx context.Context, scope interface{}, data interface{}, index int, resume Resume)
}

// Finisher is called once when the batch completes
type Finisher interface {
	Finish(ctx context.Context, scope interface{}, data interface{}) error
}

// Failer is called once when the batch fails
type Failer interface {
	Fail(ctx context.Context, entry Entry, err error)
}

type StartFunc func(ctx context.Context, scope interface{}, resume Resume)

func (f StartFunc) Start(ctx context.Context, scope interface{}, resume Resume) {
	f(ctx, scope, resume)
}

type ExecuteFunc func(ctx context.Context, scope interface{}, data interface{}, index int, resume Resume)

func (f ExecuteFunc) Execute(ctx context.Context, scope interface{}, data interface{}, index int, resume Resume) {
	f(ctx, scope, data, index, resume)
}

type FinishFunc func(ctx context.Context, scope interface{}, data interface{}) error

func (f FinishFunc) Finish(ctx context.Context, scope interface{}, data interface{}) error {
	return f(ctx, scope, data)
}

type FailFunc func(ctx context.Context, entry Entry, err error)

func (f FailFunc) Fail(ctx context.Context, entry Entry, err error) {
	f(ctx, entry, err)
}

// SyncStartFunc a start handler that completes before returning
type SyncStartFunc func(ctx context.Context, scope interface{}) (interface{}, bool, error)

func (f SyncStartFunc) Start(ctx context.Context, scope interface{}, resume Resume) {
	resume(f(ctx, scope))
}

// SyncExecuteFunc an execute handler that completes before returning
type SyncExecuteFunc func(ctx context.Context, scope interface{}, data interface{}, index int) (interface{}, bool, error)

func (f SyncExecuteFunc) Execute(ctx context.Context, scope interface{}, data interface{}, index int, resume Resume) {
	resume(f(ctx, scope, data, index))
}

type nopStarter struct{}

func (nopStarter) Start(ctx context.Context, scope interface{}, resume Resume) {
	resume(nil, true, nil)
}

type nopExecutor struct{}

func (nopExecutor) Execute(ctx context.Context, scope interface{}, data interface{}, index int, resume Resume) {
	resume(Unchanged, true, nil)
}

type nopFinisher struct{}

func (nopFinisher) Finish(ctx context.Context, scope interface{}, data interface{}) error {
	return nil
}

type logFailer struct{}

func (logFailer) Fail(ctx context.Context, entry Entry, err error) {
	logger.Error(ctx, "batch failed without fail handler, entry:%v, err:%v", entry, err)
}
