package ignore

import (
	"sync/atomic"
)

// Stats is a snapshot of the engine's query counters. Counters only move
// when the engine was built with TrackStats; they never influence results.
type Stats struct {
	// Calls is the number of Match/Ignores queries evaluated, including
	// queries rejected by path validation.
	Calls uint64

	// LiteralHits counts literal patterns admitted by the basename index.
	LiteralHits uint64

	// GlobChecks counts full matcher runs over non-literal patterns.
	GlobChecks uint64
}

// statCounters are atomic so TrackStats does not break the contract that a
// fully built engine may be shared by concurrent readers.
type statCounters struct {
	calls       atomic.Uint64
	literalHits atomic.Uint64
	globChecks  atomic.Uint64
}

func (s *statCounters) snapshot() Stats {
	return Stats{
		Calls:       s.calls.Load(),
		LiteralHits: s.literalHits.Load(),
		GlobChecks:  s.globChecks.Load(),
	}
}
