package gobatch

// Config set of handlers and chunk size for one batch run. Nil handlers fall back to defaults:
// the default start and execute handlers report end of data at once, the default finish does nothing
// and the default fail handler logs the error.
type Config struct {
	// Chunk number of execute calls per start cycle, values <= 0 use the default chunk
	Chunk    int
	Starter  Starter
	Executor Executor
	Finisher Finisher
	Failer   Failer
}

func (c *Config) normalize() Config {
	n := *c
	if n.Chunk <= 0 {
		n.Chunk = getDefaultChunk()
	}
	if n.Starter == nil {
		n.Starter = nopStarter{}
	}
	if n.Executor == nil {
		n.Executor = nopExecutor{}
	}
	if n.Finisher == nil {
		n.Finisher = nopFinisher{}
	}
	if n.Failer == nil {
		n.Failer = logFailer{}
	}
	return n
}
