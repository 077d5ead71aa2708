// Package gobatch drives a caller supplied, chunked iteration to completion.
//
// A run calls the start handler to open a cycle, then the execute handler up to Chunk times,
// then either starts a new cycle or calls finish, depending on the end of data flag reported by start.
// Start and execute handlers receive a Resume they call once, synchronously or later from any goroutine.
// Any error or panic routes to the fail handler. Abort stops a run without interrupting a handler in flight:
// its resume is discarded when it arrives.
//
//	b := gobatch.NewBatch("accounts").Build()
//	b.Run(ctx, gobatch.NewConfig(starter, executor, finisher).Chunk(10).Build())
//	status, _ := b.Wait(ctx)
package gobatch
