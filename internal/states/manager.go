package states

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/modeswitch/internal/engine"
	"github.com/Faultbox/modeswitch/internal/engine/event"
	"github.com/Faultbox/modeswitch/internal/logger"
)

// slot holds the active state. The zero value is the empty slot.
type slot struct {
	id         ID
	state      State
	activation string // random per activation, for log correlation
}

func (s slot) occupied() bool {
	return s.state != nil
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used by the manager.
func WithLogger(log *zap.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// Manager owns the active state and applies transition requests.
// It must only be used from the goroutine running the frame loop.
type Manager struct {
	registry *Registry
	engine   *engine.Context
	log      *zap.Logger

	current  slot
	pending  ID // None when nothing is pending
	incoming ID // state being switched to, None outside switchTo

	transitionErr error
}

// NewManager creates a manager that builds states from reg and hands ctx to
// them. ctx is not inspected.
func NewManager(reg *Registry, ctx *engine.Context, opts ...Option) *Manager {
	m := &Manager{
		registry: reg,
		engine:   ctx,
		log:      logger.Named("states"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Engine returns the engine context passed to NewManager.
func (m *Manager) Engine() *engine.Context {
	return m.engine
}

// Registry returns the registry states are built from.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Current returns the active state, or nil.
func (m *Manager) Current() State {
	return m.current.state
}

// CurrentID returns the ID of the active state.
func (m *Manager) CurrentID() (ID, bool) {
	return m.current.id, m.current.occupied()
}

// Pending returns the ID of the recorded but not yet applied transition.
func (m *Manager) Pending() (ID, bool) {
	return m.pending, m.pending != None
}

// Running reports whether a state is active.
func (m *Manager) Running() bool {
	return m.current.occupied()
}

// TransitionErr returns why the most recent transition request was dropped
// during Update. It is reset by the next successful transition.
func (m *Manager) TransitionErr() error {
	return m.transitionErr
}

// Startup activates the first state immediately. It fails if a state is
// already active or a transition is pending. On failure the manager is left
// as it was.
func (m *Manager) Startup(id ID) error {
	if m.current.occupied() || m.pending != None {
		return ErrAlreadyStarted
	}
	if err := m.RequestStateChange(id); err != nil {
		return err
	}

	dropped, err := m.applyPending()
	if dropped != nil {
		return dropped
	}
	return err
}

// Shutdown stops the active state, if any, and discards any pending
// transition. The manager may be started again afterwards.
func (m *Manager) Shutdown() error {
	var err error
	if m.current.occupied() {
		err = m.stop()
	}
	m.pending = None
	return err
}

// RequestStateChange records id as the next state. The transition happens on
// the next Update; a later request before then replaces this one.
func (m *Manager) RequestStateChange(id ID) error {
	if id == None || !m.registry.Has(id) {
		m.log.Debug("state request rejected", zap.String("state", string(id)), zap.String("reason", "unknown"))
		return fmt.Errorf("request %q: %w", id, ErrInvalidState)
	}
	if (m.current.occupied() && m.current.id == id) || id == m.incoming {
		m.log.Debug("state request rejected", zap.String("state", string(id)), zap.String("reason", "active"))
		return fmt.Errorf("request %q: %w", id, ErrRedundantState)
	}

	if m.pending != None && m.pending != id {
		m.log.Debug("pending state request replaced",
			zap.String("from", string(m.pending)),
			zap.String("to", string(id)),
		)
	}
	m.pending = id
	return nil
}

// Update applies a pending transition, then updates the active state.
//
// A transition whose state cannot be built is dropped: the active state keeps
// running and the reason is available from TransitionErr.
func (m *Manager) Update(dt time.Duration) error {
	dropped, err := m.applyPending()
	if dropped != nil {
		m.transitionErr = dropped
		m.log.Warn("state transition dropped", zap.Error(dropped))
	}
	if err != nil {
		return err
	}

	if !m.current.occupied() {
		return nil
	}
	if err := m.current.state.Update(dt); err != nil {
		return fmt.Errorf("state %q update: %w", m.current.id, err)
	}
	return nil
}

// Render draws the active state if it implements Renderer.
func (m *Manager) Render() error {
	r, ok := m.current.state.(Renderer)
	if !ok {
		return nil
	}
	if err := r.Render(); err != nil {
		return fmt.Errorf("state %q render: %w", m.current.id, err)
	}
	return nil
}

// HandleFrameInput forwards the frame input snapshot to the active state.
func (m *Manager) HandleFrameInput(frame event.Frame, keys event.Keyboard, mouse event.Mouse) {
	if m.current.occupied() {
		m.current.state.HandleFrameInput(frame, keys, mouse)
	}
}

// KeyDown forwards a key press to the active state.
func (m *Manager) KeyDown(e event.KeyEvent) {
	if m.current.occupied() {
		m.current.state.KeyDown(e)
	}
}

// KeyUp forwards a key release to the active state.
func (m *Manager) KeyUp(e event.KeyEvent) {
	if m.current.occupied() {
		m.current.state.KeyUp(e)
	}
}

// MouseDown forwards a button press to the active state.
func (m *Manager) MouseDown(e event.MouseEvent, button event.MouseButton) {
	if m.current.occupied() {
		m.current.state.MouseDown(e, button)
	}
}

// MouseUp forwards a button release to the active state.
func (m *Manager) MouseUp(e event.MouseEvent, button event.MouseButton) {
	if m.current.occupied() {
		m.current.state.MouseUp(e, button)
	}
}

// MouseMove forwards pointer motion to the active state.
func (m *Manager) MouseMove(e event.MouseEvent) {
	if m.current.occupied() {
		m.current.state.MouseMove(e)
	}
}

// applyPending consumes the pending request. The request is cleared before
// the new state is built, so requests made from Start survive until the next
// Update. Build failures are returned as dropped and leave the active state
// untouched; err reports a failed Start.
func (m *Manager) applyPending() (dropped, err error) {
	id := m.pending
	if id == None {
		return nil, nil
	}
	m.pending = None

	next, buildErr := m.registry.build(id)
	if buildErr != nil {
		return buildErr, nil
	}
	return nil, m.switchTo(id, next)
}

// switchTo stops the active state and starts next in its place.
func (m *Manager) switchTo(id ID, next State) error {
	m.incoming = id
	defer func() { m.incoming = None }()

	from := m.current.id
	if m.current.occupied() {
		if err := m.stop(); err != nil {
			m.log.Warn("state stop failed", zap.Error(err))
		}
	}

	m.current = slot{
		id:         id,
		state:      next,
		activation: uuid.NewString(),
	}
	if err := next.Start(m); err != nil {
		m.current = slot{}
		return fmt.Errorf("state %q start: %w", id, err)
	}

	m.transitionErr = nil
	m.log.Info("state started",
		zap.String("state", string(id)),
		zap.String("from", string(from)),
		zap.String("activation", m.current.activation),
	)
	return nil
}

// stop stops the active state and empties the slot. The state stays in the
// slot while its Stop hook runs.
func (m *Manager) stop() error {
	old := m.current
	err := old.state.Stop()
	m.current = slot{}

	if err != nil {
		return fmt.Errorf("state %q stop: %w", old.id, err)
	}
	m.log.Info("state stopped",
		zap.String("state", string(old.id)),
		zap.String("activation", old.activation),
	)
	return nil
}
