// Package game implements the host loop that drives the state controller.
package game

import (
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/modeswitch/internal/assets"
	"github.com/Faultbox/modeswitch/internal/config"
	"github.com/Faultbox/modeswitch/internal/engine"
	"github.com/Faultbox/modeswitch/internal/engine/event"
	"github.com/Faultbox/modeswitch/internal/engine/input"
	"github.com/Faultbox/modeswitch/internal/engine/renderer"
	"github.com/Faultbox/modeswitch/internal/engine/window"
	"github.com/Faultbox/modeswitch/internal/logger"
	"github.com/Faultbox/modeswitch/internal/states"
)

// Game owns the platform services and the state controller.
type Game struct {
	config  *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Pump
	assets   *assets.Manager
	states   *states.Manager
}

// New creates the window, renderer, input pump, asset manager and state
// controller. States are built from reg.
func New(cfg *config.Config, reg *states.Registry) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
	}

	g.log.Info("initializing game",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Strings("states", stateNames(reg)),
	)

	// Window first: it creates the OpenGL context.
	var err error
	g.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := g.window.Size()
	g.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()
	g.assets = assets.NewManager(g.renderer.DeleteTexture)

	ctx := &engine.Context{
		Window:   g.window,
		Renderer: g.renderer,
		Textures: g.assets.Textures(),
		Quit:     g.Stop,
	}
	g.states = states.NewManager(reg, ctx, states.WithLogger(logger.Named("states")))

	g.log.Info("game initialized successfully")
	return g, nil
}

// States returns the state controller.
func (g *Game) States() *states.Manager {
	return g.states
}

// Stop ends the loop after the current frame.
func (g *Game) Stop() {
	g.running = false
}

// Run starts the initial state and runs the loop until quit.
func (g *Game) Run() error {
	initial := states.ID(g.config.States.Initial)
	if err := g.states.Startup(initial); err != nil {
		return fmt.Errorf("starting state %q: %w", initial, err)
	}

	g.running = true

	var minFrame time.Duration
	if g.config.Window.FPSLimit > 0 {
		minFrame = time.Second / time.Duration(g.config.Window.FPSLimit)
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	g.log.Info("starting game loop", zap.String("state", string(initial)))

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Input
		if g.input.Poll() {
			g.running = false
			break
		}
		g.states.HandleFrameInput(g.input.Frame(dt), g.input.Keyboard(), g.input.Mouse())
		for _, e := range g.input.Events() {
			if e.Kind == input.KindResize {
				g.renderer.Resize(g.window.Resized())
				continue
			}
			if isFullscreenToggle(e) {
				if err := g.window.ToggleFullscreen(); err != nil {
					g.log.Warn("fullscreen toggle failed", zap.Error(err))
				}
				continue
			}
			if g.config.States.QuitOnEscape && e.Kind == input.KindKeyDown && e.Key.Key == event.KeyEscape {
				g.running = false
			}
			route(g.states, e)
		}

		// 2. Transition and update
		if err := g.states.Update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Render
		g.renderer.Begin()
		if err := g.states.Render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		g.renderer.End()

		// 4. Present
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			id, _ := g.states.CurrentID()
			g.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
				zap.String("state", string(id)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if minFrame > 0 {
			if spent := time.Since(now); spent < minFrame {
				time.Sleep(minFrame - spent)
			}
		}
	}

	return nil
}

// Close stops the active state and releases every resource.
func (g *Game) Close() error {
	g.log.Info("closing game")

	var err error
	if g.states != nil {
		err = multierr.Append(err, g.states.Shutdown())
	}
	if g.assets != nil {
		err = multierr.Append(err, g.assets.Close())
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
	return err
}

// route forwards a discrete input event to the state controller.
func route(m *states.Manager, e input.Event) {
	switch e.Kind {
	case input.KindKeyDown:
		m.KeyDown(e.Key)
	case input.KindKeyUp:
		m.KeyUp(e.Key)
	case input.KindMouseDown:
		m.MouseDown(e.Mouse, e.Button)
	case input.KindMouseUp:
		m.MouseUp(e.Mouse, e.Button)
	case input.KindMouseMove:
		m.MouseMove(e.Mouse)
	}
}

// isFullscreenToggle reports whether e is an Alt+Enter press. The host loop
// consumes it; states never see it.
func isFullscreenToggle(e input.Event) bool {
	return e.Kind == input.KindKeyDown && !e.Key.Repeat &&
		e.Key.Key == event.KeyReturn && e.Key.Mods.Has(event.ModAlt)
}

func stateNames(reg *states.Registry) []string {
	ids := reg.IDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return names
}
