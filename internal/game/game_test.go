package game

import (
	"slices"
	"testing"

	"github.com/Faultbox/modeswitch/internal/engine/event"
	"github.com/Faultbox/modeswitch/internal/engine/input"
	"github.com/Faultbox/modeswitch/internal/states"
)

// inputLog records the input hooks it receives.
type inputLog struct {
	states.Base
	got []string
}

func (s *inputLog) KeyDown(event.KeyEvent) { s.got = append(s.got, "keydown") }
func (s *inputLog) KeyUp(event.KeyEvent)   { s.got = append(s.got, "keyup") }
func (s *inputLog) MouseDown(_ event.MouseEvent, b event.MouseButton) {
	s.got = append(s.got, "mousedown "+b.String())
}
func (s *inputLog) MouseUp(_ event.MouseEvent, b event.MouseButton) {
	s.got = append(s.got, "mouseup "+b.String())
}
func (s *inputLog) MouseMove(event.MouseEvent) { s.got = append(s.got, "mousemove") }

func TestRoute(t *testing.T) {
	rec := &inputLog{}
	reg := states.NewRegistry()
	reg.MustRegister("rec", func() (states.State, error) { return rec, nil })

	m := states.NewManager(reg, nil)
	if err := m.Startup("rec"); err != nil {
		t.Fatal(err)
	}

	events := []input.Event{
		{Kind: input.KindKeyDown, Key: event.KeyEvent{Key: event.KeyA}},
		{Kind: input.KindKeyUp, Key: event.KeyEvent{Key: event.KeyA}},
		{Kind: input.KindMouseDown, Button: event.ButtonLeft},
		{Kind: input.KindMouseUp, Button: event.ButtonRight},
		{Kind: input.KindMouseMove},
		{Kind: input.KindResize, Width: 10, Height: 10},
		{Kind: input.KindQuit},
	}
	for _, e := range events {
		route(m, e)
	}

	want := []string{"keydown", "keyup", "mousedown left", "mouseup right", "mousemove"}
	if !slices.Equal(rec.got, want) {
		t.Errorf("routed %q, want %q", rec.got, want)
	}
}

func TestStateNames(t *testing.T) {
	reg := states.NewRegistry()
	reg.MustRegister("title", func() (states.State, error) { return states.Base{}, nil })
	reg.MustRegister("splash", func() (states.State, error) { return states.Base{}, nil })

	if got := stateNames(reg); !slices.Equal(got, []string{"splash", "title"}) {
		t.Errorf("stateNames = %v", got)
	}
}

func TestIsFullscreenToggle(t *testing.T) {
	tests := []struct {
		name string
		e    input.Event
		want bool
	}{
		{"alt enter", input.Event{Kind: input.KindKeyDown, Key: event.KeyEvent{Key: event.KeyReturn, Mods: event.ModAlt}}, true},
		{"alt shift enter", input.Event{Kind: input.KindKeyDown, Key: event.KeyEvent{Key: event.KeyReturn, Mods: event.ModAlt | event.ModShift}}, true},
		{"plain enter", input.Event{Kind: input.KindKeyDown, Key: event.KeyEvent{Key: event.KeyReturn}}, false},
		{"repeat", input.Event{Kind: input.KindKeyDown, Key: event.KeyEvent{Key: event.KeyReturn, Mods: event.ModAlt, Repeat: true}}, false},
		{"release", input.Event{Kind: input.KindKeyUp, Key: event.KeyEvent{Key: event.KeyReturn, Mods: event.ModAlt}}, false},
		{"alt other key", input.Event{Kind: input.KindKeyDown, Key: event.KeyEvent{Key: event.KeyA, Mods: event.ModAlt}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isFullscreenToggle(tt.e); got != tt.want {
				t.Errorf("isFullscreenToggle() = %v, want %v", got, tt.want)
			}
		})
	}
}
