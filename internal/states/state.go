// Package states implements the application state controller.
//
// A Manager owns at most one active State and switches between states on
// request. Requests are recorded immediately and applied at the start of the
// next Update, so a state never sees its own replacement mid-frame.
package states

import (
	"time"

	"github.com/Faultbox/modeswitch/internal/engine/event"
)

// ID names a registered state. The empty ID means "no state".
type ID string

// None is the empty state ID.
const None ID = ""

// State is a mutually exclusive application mode.
//
// Start is called once before any other hook, Stop once after the last one.
// Instances are never restarted.
type State interface {
	// Start is called when the state becomes active.
	Start(m *Manager) error

	// Stop is called when the state is replaced or the manager shuts down.
	Stop() error

	// Update is called once per frame while active.
	Update(dt time.Duration) error

	// HandleFrameInput receives the input snapshot taken at the start of a frame.
	HandleFrameInput(frame event.Frame, keys event.Keyboard, mouse event.Mouse)

	KeyDown(e event.KeyEvent)
	KeyUp(e event.KeyEvent)
	MouseDown(e event.MouseEvent, button event.MouseButton)
	MouseUp(e event.MouseEvent, button event.MouseButton)
	MouseMove(e event.MouseEvent)
}

// Renderer is implemented by states that draw something each frame.
type Renderer interface {
	Render() error
}

// Base implements every State hook as a no-op. Embed it and override the
// hooks a state cares about.
type Base struct{}

func (Base) Start(*Manager) error                                      { return nil }
func (Base) Stop() error                                               { return nil }
func (Base) Update(time.Duration) error                                { return nil }
func (Base) HandleFrameInput(event.Frame, event.Keyboard, event.Mouse) {}
func (Base) KeyDown(event.KeyEvent)                                    {}
func (Base) KeyUp(event.KeyEvent)                                      {}
func (Base) MouseDown(event.MouseEvent, event.MouseButton)             {}
func (Base) MouseUp(event.MouseEvent, event.MouseButton)               {}
func (Base) MouseMove(event.MouseEvent)                                {}
