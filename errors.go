package gobatch

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// BatchError error raised by the batch engine
type BatchError interface {
	Code() string
	Message() string
	Error() string
	Cause() error
	Unwrap() error
	StackTrace() errors.StackTrace
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

type batchErr struct {
	code  string
	msg   string
	cause error
	stack errors.StackTrace
}

func (err *batchErr) Code() string {
	return err.code
}

func (err *batchErr) Message() string {
	return err.msg
}

func (err *batchErr) Error() string {
	if err.cause != nil {
		return fmt.Sprintf("batch err, code:%v, message:%v, cause:%v", err.code, err.msg, err.cause)
	}
	return fmt.Sprintf("batch err, code:%v, message:%v", err.code, err.msg)
}

func (err *batchErr) Cause() error {
	return err.cause
}

func (err *batchErr) Unwrap() error {
	return err.cause
}

func (err *batchErr) StackTrace() errors.StackTrace {
	return err.stack
}

func (err *batchErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, err.Error())
			fmt.Fprintf(s, "%+v", err.stack)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, err.Error())
	case 'q':
		fmt.Fprintf(s, "%q", err.Error())
	}
}

// NewBatchError create a BatchError with code and a formatted message.
// If the last arg is an error that is not consumed by a verb of msg, it is kept as the cause.
// A literal percent followed by text must be written as %%, "100% done" reads as a "% d" verb like it does for fmt.
func NewBatchError(code string, msg string, args ...interface{}) BatchError {
	var cause error
	if n := len(args); n > 0 {
		if e, ok := args[n-1].(error); ok && countVerbs(msg) < n {
			cause = e
			args = args[:n-1]
		}
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &batchErr{
		code:  code,
		msg:   msg,
		cause: cause,
		stack: callers(),
	}
}

// wrapPanic convert a recovered value into a BatchError
func wrapPanic(entry Entry, recovered interface{}) BatchError {
	if e, ok := recovered.(error); ok {
		return NewBatchError(ErrCodePanic, "panic in %v handler", entry, e)
	}
	return NewBatchError(ErrCodePanic, "panic in %v handler: %v", entry, recovered)
}

// countVerbs count the verbs of format the way fmt scans them, %% and a trailing % consume no arg
func countVerbs(format string) int {
	n := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		for i < len(format) && strings.IndexByte("+-# 0123456789.*[]", format[i]) >= 0 {
			i++
		}
		if i >= len(format) {
			break
		}
		if format[i] != '%' {
			n++
		}
	}
	return n
}

func callers() errors.StackTrace {
	// errors.New records the stack of its caller; drop the frames of this package's constructors
	st := errors.New("").(stackTracer).StackTrace()
	if len(st) > 2 {
		return st[2:]
	}
	return st
}

const (
	ErrCodeGeneral  = "general"
	ErrCodePanic    = "panic"
	ErrCodeRejected = "rejected"
)

var (
	ErrEmptyConfig     BatchError = &batchErr{code: ErrCodeRejected, msg: "batch config must not be nil"}
	ErrBusy            BatchError = &batchErr{code: ErrCodeRejected, msg: "batch is preparing or processing"}
	ErrNotRunning      BatchError = &batchErr{code: ErrCodeRejected, msg: "batch is not preparing or processing"}
	ErrHostInvalid     BatchError = &batchErr{code: ErrCodeRejected, msg: "batch host is no longer valid"}
	ErrContextDone     BatchError = &batchErr{code: ErrCodeRejected, msg: "batch run context is already done"}
	ErrPoolUnavailable BatchError = &batchErr{code: ErrCodeRejected, msg: "batch pool can not accept more runs"}
	ErrUnknownMethod   BatchError = &batchErr{code: ErrCodeRejected, msg: "unknown batch method"}
)
