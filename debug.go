package bramble

import (
	"time"

	"go.uber.org/zap"
)

// stepStats holds per-step timing and bookkeeping counts.
// Only populated when the engine runs in debug mode.
type stepStats struct {
	watcherTime time.Duration
	pruneTime   time.Duration
	slowest     string
	slowestTime time.Duration
	objects     int
	nodes       int
	pending     int
	active      int
}

// debugLog writes one line of step stats at debug level.
func (w *World) debugLog(stats stepStats) {
	w.log.Debug("step",
		zap.Uint64("frame", w.frame),
		zap.Duration("watchers", stats.watcherTime),
		zap.Duration("prune", stats.pruneTime),
		zap.String("slowest", stats.slowest),
		zap.Duration("slowest_time", stats.slowestTime),
		zap.Int("objects", stats.objects),
		zap.Int("nodes", stats.nodes),
		zap.Int("pending", stats.pending),
		zap.Int("active", stats.active),
	)
}

// debugMaxTreeDepth is the depth past which a warning is logged.
const debugMaxTreeDepth = 32

func (t *SceneTree) debugCheckTreeDepth(id NodeID) {
	if depth := t.Depth(id); depth > debugMaxTreeDepth {
		t.log.Warn("tree depth exceeds threshold",
			zap.Uint32("node", uint32(id)),
			zap.Int("depth", depth),
			zap.Int("threshold", debugMaxTreeDepth))
	}
}

// debugMaxChildCount is the child count past which a warning is logged.
const debugMaxChildCount = 1000

func (t *SceneTree) debugCheckChildCount(id NodeID) {
	if n := len(t.nodes[id].children); n > debugMaxChildCount {
		t.log.Warn("node child count exceeds threshold",
			zap.Uint32("node", uint32(id)),
			zap.Int("children", n),
			zap.Int("threshold", debugMaxChildCount))
	}
}

// SetDebug enables tree shape warnings, logged through log.
func (t *SceneTree) SetDebug(enabled bool, log *zap.Logger) {
	t.debug = enabled
	if log != nil {
		t.log = log
	}
}
