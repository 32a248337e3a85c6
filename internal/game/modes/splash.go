package modes

import (
	"time"

	"github.com/Faultbox/modeswitch/internal/assets"
	"github.com/Faultbox/modeswitch/internal/engine/event"
	"github.com/Faultbox/modeswitch/internal/states"
)

const splashTexture = "splash/gradient"

// SplashState shows a gradient and moves on to the title screen after a
// delay or on any key or button press.
type SplashState struct {
	states.Base

	duration time.Duration
	elapsed  time.Duration
	manager  *states.Manager
	tex      *assets.Texture
	leaving  bool
}

// Start is called when the state becomes active.
func (s *SplashState) Start(m *states.Manager) error {
	s.manager = m
	s.elapsed = 0
	s.leaving = false

	ctx := m.Engine()
	if ctx != nil {
		if ctx.Window != nil {
			ctx.Window.SetTitle("")
		}
		if ctx.Renderer != nil {
			ctx.Renderer.SetClearColor(0, 0, 0, 1)
		}
	}

	tex, err := cachedTexture(ctx, splashTexture, 256, gradient)
	if err != nil {
		return err
	}
	s.tex = tex
	return nil
}

// Update counts down to the title screen.
func (s *SplashState) Update(dt time.Duration) error {
	s.elapsed += dt
	if s.duration > 0 && s.elapsed >= s.duration {
		s.leave()
	}
	return nil
}

// Render draws the splash image.
func (s *SplashState) Render() error {
	if ctx := s.manager.Engine(); ctx != nil && ctx.Renderer != nil {
		ctx.Renderer.DrawTexture(s.tex)
	}
	return nil
}

// KeyDown skips the splash.
func (s *SplashState) KeyDown(e event.KeyEvent) {
	if !e.Repeat {
		s.leave()
	}
}

// MouseDown skips the splash.
func (s *SplashState) MouseDown(event.MouseEvent, event.MouseButton) {
	s.leave()
}

func (s *SplashState) leave() {
	if s.leaving {
		return
	}
	if err := s.manager.RequestStateChange(Title); err == nil {
		s.leaving = true
	}
}
