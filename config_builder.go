package gobatch

import (
	"context"
	"fmt"
)

type configBuilder struct {
	chunk    int
	starter  Starter
	executor Executor
	finisher Finisher
	failer   Failer
}

//NewConfig initialize a config builder
func NewConfig(handler ...interface{}) *configBuilder {
	builder := &configBuilder{
		chunk: getDefaultChunk(),
	}
	for _, h := range handler {
		builder.Handler(h)
	}
	return builder
}

func (builder *configBuilder) Handler(handler interface{}) *configBuilder {
	valid := false
	switch val := handler.(type) {
	case func(ctx context.Context, scope interface{}, resume Resume):
		builder.Start(StartFunc(val))
		valid = true
	case func(ctx context.Context, scope interface{}) (interface{}, bool, error):
		builder.Start(SyncStartFunc(val))
		valid = true
	case func(ctx context.Context, scope interface{}, data interface{}, index int, resume Resume):
		builder.Execute(ExecuteFunc(val))
		valid = true
	case func(ctx context.Context, scope interface{}, data interface{}, index int) (interface{}, bool, error):
		builder.Execute(SyncExecuteFunc(val))
		valid = true
	case func(ctx context.Context, scope interface{}, data interface{}) error:
		builder.Finish(FinishFunc(val))
		valid = true
	case func(ctx context.Context, scope interface{}, data interface{}):
		builder.Finish(FinishFunc(func(ctx context.Context, scope interface{}, data interface{}) error {
			val(ctx, scope, data)
			return nil
		}))
		valid = true
	case func(ctx context.Context, entry Entry, err error):
		builder.Fail(FailFunc(val))
		valid = true
	default:
		if val2, ok2 := handler.(Starter); ok2 {
			builder.Start(val2)
			valid = true
		}
		if val2, ok2 := handler.(Executor); ok2 {
			builder.Execute(val2)
			valid = true
		}
		if val2, ok2 := handler.(Finisher); ok2 {
			builder.Finish(val2)
			valid = true
		}
		if val2, ok2 := handler.(Failer); ok2 {
			builder.Fail(val2)
			valid = true
		}
	}
	if !valid {
		panic(fmt.Sprintf("invalid handler type:%T", handler))
	}
	return builder
}

// Chunk set the number of items per cycle, a chunk <= 0 falls back to the default chunk when the batch runs
func (builder *configBuilder) Chunk(chunk int) *configBuilder {
	builder.chunk = chunk
	return builder
}

func (builder *configBuilder) Start(starter Starter) *configBuilder {
	builder.starter = starter
	return builder
}

func (builder *configBuilder) Execute(executor Executor) *configBuilder {
	builder.executor = executor
	return builder
}

func (builder *configBuilder) Finish(finisher Finisher) *configBuilder {
	builder.finisher = finisher
	return builder
}

func (builder *configBuilder) Fail(failer Failer) *configBuilder {
	builder.failer = failer
	return builder
}

func (builder *configBuilder) Build() *Config {
	return &Config{
		Chunk:    builder.chunk,
		Starter:  builder.starter,
		Executor: builder.executor,
		Finisher: builder.finisher,
		Failer:   builder.failer,
	}
}
