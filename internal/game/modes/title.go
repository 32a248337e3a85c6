package modes

import (
	"math"
	"time"

	"github.com/Faultbox/modeswitch/internal/assets"
	"github.com/Faultbox/modeswitch/internal/engine/event"
	"github.com/Faultbox/modeswitch/internal/states"
)

const titleTexture = "title/stripes"

// TitleState is the idle screen. Enter or Space goes back to the splash.
type TitleState struct {
	states.Base

	manager *states.Manager
	tex     *assets.Texture
	elapsed time.Duration
	fast    bool
}

// Start is called when the state becomes active.
func (s *TitleState) Start(m *states.Manager) error {
	s.manager = m

	ctx := m.Engine()
	if ctx != nil && ctx.Window != nil {
		ctx.Window.SetTitle("title")
	}

	tex, err := cachedTexture(ctx, titleTexture, 128, stripes)
	if err != nil {
		return err
	}
	s.tex = tex
	return nil
}

// Update advances the background pulse, four times faster while Shift is held.
func (s *TitleState) Update(dt time.Duration) error {
	if s.fast {
		dt *= 4
	}
	s.elapsed += dt
	return nil
}

// HandleFrameInput samples the modifier state once per frame.
func (s *TitleState) HandleFrameInput(_ event.Frame, keys event.Keyboard, _ event.Mouse) {
	s.fast = keys.Mods.Has(event.ModShift)
}

// KeyDown handles the title screen keys.
func (s *TitleState) KeyDown(e event.KeyEvent) {
	switch e.Key {
	case event.KeyReturn, event.KeySpace:
		_ = s.manager.RequestStateChange(Splash)
	}
}

// Render draws the background.
func (s *TitleState) Render() error {
	ctx := s.manager.Engine()
	if ctx == nil || ctx.Renderer == nil {
		return nil
	}
	pulse := float32(0.5 + 0.5*math.Sin(s.elapsed.Seconds()*2))
	ctx.Renderer.SetClearColor(0.05, 0.05+0.1*pulse, 0.1+0.1*pulse, 1)
	ctx.Renderer.DrawTexture(s.tex)
	return nil
}
