// Package input turns SDL2 events into engine input events.
package input

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/modeswitch/internal/engine/event"
)

// Kind identifies what an Event carries.
type Kind int

const (
	KindNone Kind = iota
	KindQuit
	KindResize
	KindKeyDown
	KindKeyUp
	KindMouseMove
	KindMouseDown
	KindMouseUp
)

// Event is one translated SDL event.
type Event struct {
	Kind   Kind
	Key    event.KeyEvent
	Mouse  event.MouseEvent
	Button event.MouseButton
	Width  int
	Height int
}

// Pump polls SDL once per frame and keeps the keyboard and mouse snapshots
// that are handed to the active state.
type Pump struct {
	events []Event
	held   map[event.Key]struct{}
	mods   event.Modifiers
	mouse  event.Mouse

	frame   uint64
	elapsed time.Duration
}

// New creates a new input pump.
func New() *Pump {
	return &Pump{
		events: make([]Event, 0, 16),
		held:   make(map[event.Key]struct{}),
	}
}

// Poll drains the SDL event queue.
// Returns true if the window was asked to close.
func (p *Pump) Poll() bool {
	p.events = p.events[:0]

	quit := false
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		e, ok := translate(ev)
		if !ok {
			continue
		}
		if e.Kind == KindQuit {
			quit = true
		}
		p.apply(e)
	}
	return quit
}

// Events returns the events from the last Poll.
func (p *Pump) Events() []Event {
	return p.events
}

// Frame advances the frame counter and returns the frame description.
func (p *Pump) Frame(dt time.Duration) event.Frame {
	p.frame++
	p.elapsed += dt
	return event.Frame{
		Index:   p.frame,
		Delta:   dt,
		Elapsed: p.elapsed,
	}
}

// Keyboard returns a snapshot of the held keys.
func (p *Pump) Keyboard() event.Keyboard {
	keys := make([]event.Key, 0, len(p.held))
	for k := range p.held {
		keys = append(keys, k)
	}
	return event.NewKeyboard(p.mods, keys...)
}

// Mouse returns a snapshot of the pointer.
func (p *Pump) Mouse() event.Mouse {
	return p.mouse
}

// apply records e and updates the snapshots.
func (p *Pump) apply(e Event) {
	switch e.Kind {
	case KindKeyDown:
		p.held[e.Key.Key] = struct{}{}
		p.mods = e.Key.Mods
	case KindKeyUp:
		delete(p.held, e.Key.Key)
		p.mods = e.Key.Mods
	case KindMouseMove:
		p.mouse.X, p.mouse.Y = e.Mouse.X, e.Mouse.Y
	case KindMouseDown:
		p.mouse.X, p.mouse.Y = e.Mouse.X, e.Mouse.Y
		if e.Button != event.ButtonNone {
			p.mouse.Buttons |= 1 << (e.Button - 1)
		}
	case KindMouseUp:
		p.mouse.X, p.mouse.Y = e.Mouse.X, e.Mouse.Y
		if e.Button != event.ButtonNone {
			p.mouse.Buttons &^= 1 << (e.Button - 1)
		}
	}
	p.events = append(p.events, e)
}

// translate converts an SDL event. ok is false for events the engine ignores.
func translate(ev sdl.Event) (e Event, ok bool) {
	switch se := ev.(type) {
	case *sdl.QuitEvent:
		return Event{Kind: KindQuit}, true

	case *sdl.WindowEvent:
		if se.Event == sdl.WINDOWEVENT_RESIZED || se.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{
				Kind:   KindResize,
				Width:  int(se.Data1),
				Height: int(se.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		key := event.KeyEvent{
			Key:    event.Key(se.Keysym.Scancode),
			Mods:   modifiers(uint16(se.Keysym.Mod)),
			Repeat: se.Repeat != 0,
		}
		switch se.Type {
		case sdl.KEYDOWN:
			return Event{Kind: KindKeyDown, Key: key}, true
		case sdl.KEYUP:
			return Event{Kind: KindKeyUp, Key: key}, true
		}

	case *sdl.MouseMotionEvent:
		return Event{
			Kind: KindMouseMove,
			Mouse: event.MouseEvent{
				X: int(se.X), Y: int(se.Y),
				DX: int(se.XRel), DY: int(se.YRel),
			},
		}, true

	case *sdl.MouseButtonEvent:
		mouse := event.MouseEvent{X: int(se.X), Y: int(se.Y)}
		switch se.Type {
		case sdl.MOUSEBUTTONDOWN:
			return Event{Kind: KindMouseDown, Mouse: mouse, Button: button(se.Button)}, true
		case sdl.MOUSEBUTTONUP:
			return Event{Kind: KindMouseUp, Mouse: mouse, Button: button(se.Button)}, true
		}
	}
	return Event{}, false
}

func modifiers(mod uint16) event.Modifiers {
	var m event.Modifiers
	if mod&uint16(sdl.KMOD_SHIFT) != 0 {
		m |= event.ModShift
	}
	if mod&uint16(sdl.KMOD_CTRL) != 0 {
		m |= event.ModCtrl
	}
	if mod&uint16(sdl.KMOD_ALT) != 0 {
		m |= event.ModAlt
	}
	if mod&uint16(sdl.KMOD_GUI) != 0 {
		m |= event.ModGUI
	}
	return m
}

func button(b uint8) event.MouseButton {
	switch b {
	case sdl.BUTTON_LEFT:
		return event.ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return event.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return event.ButtonRight
	case sdl.BUTTON_X1:
		return event.ButtonX1
	case sdl.BUTTON_X2:
		return event.ButtonX2
	default:
		return event.ButtonNone
	}
}
