package bramble

// InputEventType identifies a kind of input event.
type InputEventType uint8

const (
	InputKeyDown     InputEventType = iota // a key was pressed this frame
	InputKeyUp                             // a key was released this frame
	InputPointerDown                       // a mouse button was pressed
	InputPointerUp                         // a mouse button was released
	InputPointerMove                       // the cursor moved
	InputWheel                             // the scroll wheel moved
	InputResize                            // the window was resized
)

// String implements fmt.Stringer.
func (t InputEventType) String() string {
	switch t {
	case InputKeyDown:
		return "key_down"
	case InputKeyUp:
		return "key_up"
	case InputPointerDown:
		return "pointer_down"
	case InputPointerUp:
		return "pointer_up"
	case InputPointerMove:
		return "pointer_move"
	case InputWheel:
		return "wheel"
	case InputResize:
		return "resize"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// InputEvent is one window or input event. Fields not relevant to Type are
// zero.
type InputEvent struct {
	Type      InputEventType
	Key       string // key name, e.g. "Space", "A", "ArrowLeft"
	Button    MouseButton
	Modifiers KeyModifiers
	// X and Y are the cursor position in screen pixels for pointer events and
	// the new size for InputResize.
	X, Y float64
	// DeltaX and DeltaY carry wheel movement or cursor movement since the
	// previous event.
	DeltaX, DeltaY float64
}

// KeyPressed reports whether events contains a key-down for key.
func KeyPressed(events []InputEvent, key string) bool {
	for _, e := range events {
		if e.Type == InputKeyDown && e.Key == key {
			return true
		}
	}
	return false
}
