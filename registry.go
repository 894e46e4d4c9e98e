package siltin

import (
	"sync"
	"sync/atomic"
)

type tagEntry struct {
	tag   string
	level Level
}

// levelSnapshot is an immutable view of the registry published for lock-free
// readers (the early path). Order carries no meaning in the snapshot, so it
// is rebuilt only when levels change, never on promotion.
type levelSnapshot struct {
	levels map[string]Level
	def    Level
}

// registry maps tags to runtime verbosity levels. Writes are rare (startup,
// operator commands); reads happen on every enabled log call. Normal-path
// reads take the mutex briefly and promote the matched entry to the front of
// the scan order, so a small working set of hot tags stays cheap. Promotion
// is a cache policy only: query results are identical with a cold order.
type registry struct {
	mu      sync.Mutex
	entries []tagEntry
	def     Level
	snap    atomic.Pointer[levelSnapshot]
}

func (r *registry) init(def Level) {
	r.mu.Lock()
	r.def = def
	r.publishLocked()
	r.mu.Unlock()
}

func (r *registry) setLevel(tag string, level Level) {
	if tag == "" {
		return
	}
	level = clampLevel(level)
	r.mu.Lock()
	if tag == "*" {
		r.def = level
	} else {
		found := false
		for i := range r.entries {
			if r.entries[i].tag == tag {
				r.entries[i].level = level
				found = true
				break
			}
		}
		if !found {
			// New entries go to the front: a tag that was just configured is
			// about to be queried.
			r.entries = append(r.entries, tagEntry{})
			copy(r.entries[1:], r.entries[:len(r.entries)-1])
			r.entries[0] = tagEntry{tag: tag, level: level}
		}
	}
	r.publishLocked()
	r.mu.Unlock()
}

func (r *registry) levelFor(tag string) Level {
	r.mu.Lock()
	level := r.def
	for i := range r.entries {
		if r.entries[i].tag == tag {
			level = r.entries[i].level
			if i > 0 {
				hit := r.entries[i]
				copy(r.entries[1:i+1], r.entries[:i])
				r.entries[0] = hit
			}
			break
		}
	}
	r.mu.Unlock()
	return level
}

// snapshotLevel answers the same query as levelFor without touching the
// write lock. Used by the early path.
func (r *registry) snapshotLevel(tag string) Level {
	snap := r.snap.Load()
	if snap == nil {
		return staticLevel
	}
	if level, ok := snap.levels[tag]; ok {
		return level
	}
	return snap.def
}

func (r *registry) publishLocked() {
	levels := make(map[string]Level, len(r.entries))
	for _, e := range r.entries {
		levels[e.tag] = e.level
	}
	r.snap.Store(&levelSnapshot{levels: levels, def: r.def})
}
