package giac

import (
	"sync"
	"sync/atomic"
)

// DefaultProbaEpsilon is the probability-of-error bound applied when no
// explicit epsilon is supplied and the proof policy does not require a
// deterministic computation.
const DefaultProbaEpsilon = 1e-15

// Settings holds the engine's process-wide configuration: the probability
// bound for probabilistic linear-algebra shortcuts, the maximal number of
// worker threads, and the debug verbosity level. Field access is
// mutex-protected; the scope mutex additionally serializes whole guarded
// scopes so that concurrent top-level calls cannot interleave their
// save/restore pairs.
type Settings struct {
	mu    sync.Mutex
	scope sync.Mutex

	probaEpsilon   float64
	threads        int
	debugInfoLevel int
}

// NewSettings returns settings with the engine defaults: the default
// probabilistic epsilon, a single thread and a silent debug level.
func NewSettings() *Settings {
	return &Settings{
		probaEpsilon: DefaultProbaEpsilon,
		threads:      1,
	}
}

// ProbaEpsilon returns the current probability-of-error bound.
func (s *Settings) ProbaEpsilon() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.probaEpsilon
}

// SetProbaEpsilon sets the probability-of-error bound. A value of 0 disables
// probabilistic algorithms entirely.
func (s *Settings) SetProbaEpsilon(eps float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.probaEpsilon = eps
}

// Threads returns the maximal number of threads allowed for the engine.
func (s *Settings) Threads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.threads
}

// SetThreads sets the maximal number of threads allowed for the engine.
func (s *Settings) SetThreads(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads = n
}

// DebugInfoLevel returns the current debug verbosity level.
func (s *Settings) DebugInfoLevel() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.debugInfoLevel
}

// SetDebugInfoLevel sets the debug verbosity level.
func (s *Settings) SetDebugInfoLevel(level int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debugInfoLevel = level
}

// proofPolicy mirrors the host system's "polynomial proof required" flag:
// when set, computations without an explicit epsilon run deterministically.
var proofPolicy atomic.Bool

func init() {
	proofPolicy.Store(true)
}

// SetProofPolicy sets whether polynomial computations must be proven, i.e.
// whether the default epsilon is forced to 0.
func SetProofPolicy(required bool) {
	proofPolicy.Store(required)
}

// ProofPolicy reports whether polynomial computations must be proven.
func ProofPolicy() bool {
	return proofPolicy.Load()
}
