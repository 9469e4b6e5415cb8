package hooks

import "time"

// ListStats is a snapshot of a hook list.
type ListStats struct {
	Len        int
	Position   int
	Generation uint32
	Types      []string
}

// CollectStats returns a snapshot of the list.
func (l *List) CollectStats() ListStats {
	stats := ListStats{
		Len:        len(l.entries),
		Position:   l.cursor,
		Generation: l.generation,
		Types:      make([]string, 0, len(l.entries)),
	}
	for _, entry := range l.entries {
		stats.Types = append(stats.Types, entry.Type().String())
	}
	return stats
}

// RuntimeStats provides statistics about all mounted scopes.
type RuntimeStats struct {
	ScopeCount   int
	TotalHooks   int
	TotalRenders int64
	Scopes       []ScopeStats
}

// ScopeStats provides render statistics for a single scope.
type ScopeStats struct {
	ID           ScopeId
	Name         string
	Hooks        ListStats
	RenderCount  int64
	ErrorCount   int64
	MinDuration  time.Duration
	MaxDuration  time.Duration
	AvgDuration  time.Duration
	LastDuration time.Duration
}

type renderStats struct {
	renderCount   int64
	errorCount    int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

func (s *renderStats) record(d time.Duration, failed bool) {
	s.renderCount++
	if failed {
		s.errorCount++
	}
	s.lastDuration = d
	s.totalDuration += d
	if s.renderCount == 1 || d < s.minDuration {
		s.minDuration = d
	}
	if d > s.maxDuration {
		s.maxDuration = d
	}
}

// CollectStats returns render statistics for the scope.
func (s *Scope) CollectStats() ScopeStats {
	avg := time.Duration(0)
	if s.stats.renderCount > 0 {
		avg = s.stats.totalDuration / time.Duration(s.stats.renderCount)
	}
	return ScopeStats{
		ID:           s.id,
		Name:         s.name,
		Hooks:        s.hooks.CollectStats(),
		RenderCount:  s.stats.renderCount,
		ErrorCount:   s.stats.errorCount,
		MinDuration:  s.stats.minDuration,
		MaxDuration:  s.stats.maxDuration,
		AvgDuration:  avg,
		LastDuration: s.stats.lastDuration,
	}
}

// CollectStats returns statistics for every mounted scope in mount order.
func (r *Runtime) CollectStats() RuntimeStats {
	stats := RuntimeStats{
		ScopeCount: len(r.order),
		Scopes:     make([]ScopeStats, 0, len(r.order)),
	}
	for _, id := range r.order {
		scope, ok := r.scopes.Get(id)
		if !ok {
			continue
		}
		s := scope.CollectStats()
		stats.TotalHooks += s.Hooks.Len
		stats.TotalRenders += s.RenderCount
		stats.Scopes = append(stats.Scopes, s)
	}
	return stats
}
