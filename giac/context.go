package giac

// SettingsDefaultContext preserves the engine settings across a scoped
// operation: Enter snapshots the probabilistic epsilon, the thread count and
// the debug level, Exit restores them. Any mutation performed between the
// two calls is invisible to the caller.
type SettingsDefaultContext struct {
	settings *Settings

	probaEpsilon   float64
	threads        int
	debugInfoLevel int
}

// NewSettingsDefaultContext creates a guard for the given settings instance.
func NewSettingsDefaultContext(s *Settings) *SettingsDefaultContext {
	return &SettingsDefaultContext{settings: s}
}

// Enter acquires the settings scope and snapshots the current values. It
// must be the first action of the guarded scope so that nothing mutated
// afterwards escapes the snapshot. The debug level is captured last so the
// snapshot itself runs at the caller's verbosity.
func (c *SettingsDefaultContext) Enter() {
	c.settings.scope.Lock()
	c.probaEpsilon = c.settings.ProbaEpsilon()
	c.threads = c.settings.Threads()
	c.debugInfoLevel = c.settings.DebugInfoLevel()
}

// Exit restores the snapshot and releases the scope. The debug level is
// restored first so the remaining restorations do not run at the scope's
// raised verbosity. Exit must run on every exit path of the scope.
func (c *SettingsDefaultContext) Exit() {
	c.settings.SetDebugInfoLevel(c.debugInfoLevel)
	c.settings.SetProbaEpsilon(c.probaEpsilon)
	c.settings.SetThreads(c.threads)
	c.settings.scope.Unlock()
}

// WithLocalSettings runs fn inside a settings guard: any settings mutation
// performed by fn is reverted before WithLocalSettings returns, on normal
// completion, error and panic alike. The return values of fn pass through
// unchanged.
func WithLocalSettings[T any](s *Settings, fn func() (T, error)) (T, error) {
	c := NewSettingsDefaultContext(s)
	c.Enter()
	defer c.Exit()
	return fn()
}
