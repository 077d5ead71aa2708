package gobatch

import (
	"context"
	"testing"

	"github.com/auracore/gobatch/status"
	"github.com/bmizerany/assert"
	"github.com/pkg/errors"
)

func TestBatch_CallMethod(t *testing.T) {
	ctx := context.Background()
	b := NewBatch("call_method").Build()

	st, err := b.CallMethod(ctx, "getStatus")
	assert.Equal(t, nil, err)
	assert.Equal(t, status.IDLE, st)

	ok, err := b.CallMethod(ctx, "abort")
	assert.Equal(t, false, ok)
	assert.Equal(t, ErrNotRunning, err)

	ok, err = b.CallMethod(ctx, "run")
	assert.Equal(t, false, ok)
	assert.Equal(t, ErrEmptyConfig, err)

	ok, err = b.CallMethod(ctx, "run", "not a config")
	assert.Equal(t, false, ok)
	assert.Equal(t, ErrEmptyConfig, err)

	pending := make(chan Resume, 1)
	config := NewConfig(StartFunc(func(ctx context.Context, scope interface{}, resume Resume) {
		pending <- resume
	})).Build()
	ok, err = b.CallMethod(ctx, "run", config)
	assert.Equal(t, true, ok)
	assert.Equal(t, nil, err)
	waitSignal(t, pending)

	ok, err = b.CallMethod(ctx, "abort")
	assert.Equal(t, true, ok)
	assert.Equal(t, nil, err)
	waitDone(t, b)

	st, _ = b.CallMethod(ctx, "getStatus")
	assert.Equal(t, status.ABORTED, st)

	_, err = b.CallMethod(ctx, "pause")
	assert.T(t, errors.Is(err, ErrUnknownMethod))
}
