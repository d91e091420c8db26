package ecs

import (
	"github.com/phanxgames/bramble"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ChangeEventType is the Donburi event type for component attach and detach
// notifications.
var ChangeEventType = events.NewEventType[bramble.ChangeEvent]()

// InputEventType is the Donburi event type for input events.
var InputEventType = events.NewEventType[bramble.InputEvent]()

type donburiListener struct {
	world donburi.World
	keys  map[bramble.TypeKey]struct{} // nil means every type
}

// NewDonburiListener creates a ChangeListener that publishes to
// ChangeEventType in world. With no keys every component type is forwarded;
// otherwise only the listed types are. Events are queued until processed with
// ProcessEvents or events.ProcessAllEvents.
func NewDonburiListener(world donburi.World, keys ...bramble.TypeKey) bramble.ChangeListener {
	l := &donburiListener{world: world}
	if len(keys) > 0 {
		l.keys = make(map[bramble.TypeKey]struct{}, len(keys))
		for _, k := range keys {
			l.keys[k] = struct{}{}
		}
	}
	return l
}

func (l *donburiListener) Matches(key bramble.TypeKey) bool {
	if l.keys == nil {
		return true
	}
	_, ok := l.keys[key]
	return ok
}

func (l *donburiListener) OnChange(kind bramble.ChangeKind, obj *bramble.GameObject, c *bramble.Component) {
	ChangeEventType.Publish(l.world, bramble.ChangeEvent{
		Kind:        kind,
		Object:      obj.ID(),
		Component:   c.ID(),
		ComponentOf: c.Type(),
	})
}

// PublishInput queues the current step's input events on InputEventType.
func PublishInput(world donburi.World, w *bramble.World) {
	for _, e := range w.Events() {
		InputEventType.Publish(world, e)
	}
}
