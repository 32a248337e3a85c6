// Package event defines the input values forwarded to application states.
//
// Values here are plain snapshots. They carry no SDL types so that state
// implementations and their tests do not depend on cgo.
package event

import "time"

// Key identifies a physical key by its SDL scancode value.
type Key uint32

// Scancodes used by the host loop and the built-in modes.
const (
	KeyUnknown Key = 0
	KeyA       Key = 4
	KeyReturn  Key = 40
	KeyEscape  Key = 41
	KeySpace   Key = 44
	KeyF1      Key = 58
	KeyRight   Key = 79
	KeyLeft    Key = 80
	KeyDown    Key = 81
	KeyUp      Key = 82
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModGUI
)

// Has reports whether all bits of m2 are set.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// KeyEvent is a single key transition.
type KeyEvent struct {
	Key    Key
	Mods   Modifiers
	Repeat bool
}

// MouseButton identifies a mouse button.
type MouseButton uint8

// Mouse buttons, numbered as SDL numbers them.
const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonX1:
		return "x1"
	case ButtonX2:
		return "x2"
	default:
		return "none"
	}
}

// MouseEvent is a pointer position with the motion since the previous event.
type MouseEvent struct {
	X, Y   int
	DX, DY int
}

// Frame describes one tick of the host loop.
type Frame struct {
	Index   uint64
	Delta   time.Duration
	Elapsed time.Duration
}

// Keyboard is the set of keys held at the start of a frame.
type Keyboard struct {
	held map[Key]struct{}
	Mods Modifiers
}

// NewKeyboard builds a snapshot holding the given keys.
func NewKeyboard(mods Modifiers, keys ...Key) Keyboard {
	kb := Keyboard{Mods: mods}
	if len(keys) > 0 {
		kb.held = make(map[Key]struct{}, len(keys))
		for _, k := range keys {
			kb.held[k] = struct{}{}
		}
	}
	return kb
}

// Down reports whether k was held.
func (kb Keyboard) Down(k Key) bool {
	_, ok := kb.held[k]
	return ok
}

// Len returns the number of held keys.
func (kb Keyboard) Len() int {
	return len(kb.held)
}

// Mouse is the pointer state at the start of a frame.
type Mouse struct {
	X, Y    int
	Buttons uint32 // bit (b-1) set when button b is held
}

// Down reports whether b was held.
func (m Mouse) Down(b MouseButton) bool {
	if b == ButtonNone {
		return false
	}
	return m.Buttons&(1<<(b-1)) != 0
}
