package gobatch

import (
	"context"
)

// CallMethod dispatch a method call from the host by name: "run" with a *Config argument, "abort" and "getStatus"
func (b *Batch) CallMethod(ctx context.Context, name string, args ...interface{}) (interface{}, error) {
	switch name {
	case "run":
		var config *Config
		if len(args) > 0 {
			c, ok := args[0].(*Config)
			if !ok {
				logger.Error(ctx, "invalid run argument, batchName:%v, arg:%T", b.name, args[0])
				return false, ErrEmptyConfig
			}
			config = c
		}
		err := b.RunE(ctx, config)
		return err == nil, err
	case "abort":
		if !b.Abort() {
			return false, ErrNotRunning
		}
		return true, nil
	case "getStatus":
		return b.Status(), nil
	default:
		logger.Error(ctx, "can not find batch method:%v, batchName:%v", name, b.name)
		return nil, NewBatchError(ErrCodeRejected, "unknown batch method:%v", name, ErrUnknownMethod)
	}
}
