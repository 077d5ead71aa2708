package gobatch

import (
	"os"
	"sync/atomic"

	"github.com/auracore/gobatch/internal/logs"
)

//log
var logger logs.Logger = logs.NewLogger(os.Stderr, logs.Info)

//SetLogger set a logger instance for GoBatch
func SetLogger(l logs.Logger) {
	if l == nil {
		panic("logger must not be nil")
	}
	logger = l
}

//task pool
const (
	DefaultBatchPoolSize = 1000
	DefaultChunkSize     = 1
)

var batchPool = newTaskPool(DefaultBatchPoolSize)

//SetMaxRunningBatches set max number of batch runs that may be in flight at the same time
func SetMaxRunningBatches(size int) {
	batchPool.SetMaxSize(size)
}

//Release stop the batch pool, every later run is rejected. Runs already in flight are not interrupted.
func Release() {
	batchPool.Release()
}

//chunk
var defaultChunk int64 = DefaultChunkSize

//SetDefaultChunk set the chunk size used by configs that do not set a positive one
func SetDefaultChunk(size int) {
	if size <= 0 {
		size = DefaultChunkSize
	}
	atomic.StoreInt64(&defaultChunk, int64(size))
}

func getDefaultChunk() int {
	return int(atomic.LoadInt64(&defaultChunk))
}
