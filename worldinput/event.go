// Package worldinput translates an opaque input-event stream into pending
// Tasks the compute loop applies to State once per tick. The windowing
// layer that produces InputEvent values, and any GPU/text rendering that
// might consume State afterward, are external collaborators this package
// does not implement.
package worldinput

// MouseButton identifies which button an event refers to.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// KeyCode enumerates the keys this package's handlers react to. The
// windowing layer is responsible for mapping its own key representation
// onto these.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyHome
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

// EventKind discriminates the InputEvent union.
type EventKind int

const (
	EventWheel EventKind = iota
	EventMouseDown
	EventMouseUp
	EventMouseMove
	EventKey
	EventClose
)

// InputEvent is the external contract this package consumes. Exactly one of
// the payload fields is meaningful, selected by Kind — the windowing layer
// emits these; this package never originates one itself except in tests.
type InputEvent struct {
	Kind EventKind

	// EventWheel
	WheelDY float32

	// EventMouseDown / EventMouseUp
	Button MouseButton

	// EventMouseMove
	X, Y int32

	// EventKey
	Key     KeyCode
	Pressed bool
}
