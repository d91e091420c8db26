package bramble

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDebugWarnsOnWideNode(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	tree := NewSceneTree()
	tree.SetDebug(true, zap.New(core))

	parent := tree.NewNode(RootID)
	for i := 0; i <= debugMaxChildCount; i++ {
		tree.NewNode(parent.ID())
	}
	warns := logs.FilterMessage("node child count exceeds threshold").All()
	if len(warns) != 1 {
		t.Fatalf("warnings = %d, want 1", len(warns))
	}
	if got := warns[0].ContextMap()["node"]; got != uint32(parent.ID()) {
		t.Errorf("node = %v, want %d", got, parent.ID())
	}
}

func TestDebugOffIsSilent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tree := NewSceneTree()
	tree.SetDebug(false, zap.New(core))

	id := RootID
	for i := 0; i <= debugMaxTreeDepth; i++ {
		id = tree.NewNode(id).ID()
	}
	if logs.Len() != 0 {
		t.Errorf("logs = %v, want none", logs.All())
	}
}

func TestSetDebugKeepsLoggerOnNil(t *testing.T) {
	tree := NewSceneTree()
	tree.SetDebug(true, nil)
	if tree.log == nil {
		t.Fatal("nil logger replaced the default")
	}
	// Must not panic with the no-op logger.
	id := RootID
	for i := 0; i <= debugMaxTreeDepth; i++ {
		id = tree.NewNode(id).ID()
	}
}
