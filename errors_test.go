package gobatch

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/pkg/errors"
)

func TestBatchErr_Format(t *testing.T) {
	batchErr := NewBatchError(ErrCodeGeneral, "new error")
	assert.Equal(t, "batch err, code:general, message:new error", fmt.Sprintf("%v", batchErr))
	assert.Equal(t, nil, batchErr.Cause())
	assert.T(t, len(batchErr.StackTrace()) > 0)
	assert.T(t, strings.Contains(fmt.Sprintf("%+v", batchErr), "TestBatchErr_Format"))

	err := fmt.Errorf("some error raised from remote call")
	batchErr2 := NewBatchError(ErrCodeGeneral, "wrap error", err)
	assert.Equal(t, "wrap error", batchErr2.Message())
	assert.Equal(t, err, batchErr2.Cause())
	assert.Equal(t, err, errors.Cause(batchErr2))

	batchErr3 := NewBatchError(ErrCodeGeneral, "wrap error:%v", err)
	assert.Equal(t, "wrap error:some error raised from remote call", batchErr3.Message())
	assert.Equal(t, nil, batchErr3.Cause())

	batchErr4 := NewBatchError(ErrCodeGeneral, "execute index:%v failed", 3, err)
	assert.Equal(t, "execute index:3 failed", batchErr4.Message())
	assert.T(t, errors.Is(batchErr4, err))
}

func TestBatchErr_LiteralPercent(t *testing.T) {
	err := fmt.Errorf("quota exceeded")
	be := NewBatchError(ErrCodeGeneral, "progress 100%", err)
	assert.Equal(t, "progress 100%", be.Message())
	assert.Equal(t, err, be.Cause())

	be = NewBatchError(ErrCodeGeneral, "%d%% saved", 40, err)
	assert.Equal(t, "40% saved", be.Message())
	assert.Equal(t, err, be.Cause())

	assert.Equal(t, 0, countVerbs("100%% done"))
	assert.Equal(t, 1, countVerbs("%%%v"))
	assert.Equal(t, 2, countVerbs("index:%-4d name:%+v"))
	assert.Equal(t, 0, countVerbs("trailing %"))
}

func TestWrapPanic(t *testing.T) {
	be := wrapPanic(EntryExecute, "boom")
	assert.Equal(t, ErrCodePanic, be.Code())
	assert.Equal(t, "panic in execute handler: boom", be.Message())

	cause := errors.New("index out of range")
	be = wrapPanic(EntryStart, cause)
	assert.Equal(t, "panic in start handler", be.Message())
	assert.Equal(t, cause, be.Cause())
}
