package siltin

import "testing"

func TestSnapshotLevelMatchesLevelFor(t *testing.T) {
	var r registry
	r.init(LevelWarn)
	r.setLevel("wifi", LevelVerbose)
	r.setLevel("dhcpc", LevelNone)
	for _, tag := range []string{"wifi", "dhcpc", "unknown"} {
		if got, want := r.snapshotLevel(tag), r.levelFor(tag); got != want {
			t.Fatalf("snapshot diverged for %q: got %s want %s", tag, LevelString(got), LevelString(want))
		}
	}
}

func TestSnapshotLevelZeroValueRegistry(t *testing.T) {
	var r registry
	if got := r.snapshotLevel("any"); got != staticLevel {
		t.Fatalf("uninitialized registry should answer the compiled-in default, got %s", LevelString(got))
	}
}

func TestSnapshotRebuiltOnWrite(t *testing.T) {
	var r registry
	r.init(LevelInfo)
	before := r.snap.Load()
	r.setLevel("wifi", LevelDebug)
	after := r.snap.Load()
	if before == after {
		t.Fatalf("write must publish a fresh snapshot")
	}
	if after.levels["wifi"] != LevelDebug {
		t.Fatalf("snapshot missing the new entry")
	}
}

func TestPromotionDoesNotRepublish(t *testing.T) {
	var r registry
	r.init(LevelInfo)
	r.setLevel("a", LevelDebug)
	r.setLevel("b", LevelError)
	before := r.snap.Load()
	r.levelFor("a") // promotes a to the front
	if r.snap.Load() != before {
		t.Fatalf("promotion is a cache policy and must not rebuild the snapshot")
	}
}

func TestNewEntriesScanFirst(t *testing.T) {
	var r registry
	r.init(LevelInfo)
	r.setLevel("old", LevelDebug)
	r.setLevel("new", LevelError)
	if r.entries[0].tag != "new" {
		t.Fatalf("freshly configured tag should lead the scan order, got %q", r.entries[0].tag)
	}
	if got := r.levelFor("old"); got != LevelDebug {
		t.Fatalf("reorder lost an entry: got %s", LevelString(got))
	}
}
