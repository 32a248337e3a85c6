package modes

import (
	"errors"
	"testing"
	"time"

	"github.com/Faultbox/modeswitch/internal/assets"
	"github.com/Faultbox/modeswitch/internal/engine"
	"github.com/Faultbox/modeswitch/internal/engine/event"
	"github.com/Faultbox/modeswitch/internal/states"
)

type fakeWindow struct {
	title  string
	titled int
}

func (w *fakeWindow) Size() (int, int)      { return 640, 480 }
func (w *fakeWindow) SetTitle(title string) { w.title, w.titled = title, w.titled+1 }

type fakeRenderer struct {
	uploads int
	drawn   []string
	failOn  string
}

func (r *fakeRenderer) SetClearColor(float32, float32, float32, float32) {}

func (r *fakeRenderer) UploadRGBA(name string, w, h int, pix []byte) (*assets.Texture, error) {
	if name == r.failOn {
		return nil, errors.New("out of memory")
	}
	if len(pix) != w*h*4 {
		return nil, errors.New("bad pixel buffer")
	}
	r.uploads++
	return &assets.Texture{Name: name, ID: uint32(r.uploads), Width: w, Height: h}, nil
}

func (r *fakeRenderer) DrawTexture(tex *assets.Texture) {
	if tex != nil {
		r.drawn = append(r.drawn, tex.Name)
	}
}

func newTestManager(t *testing.T, opts Options) (*states.Manager, *fakeRenderer, *fakeWindow) {
	t.Helper()
	reg := states.NewRegistry()
	if err := Register(reg, opts); err != nil {
		t.Fatalf("Register: %v", err)
	}
	r := &fakeRenderer{}
	w := &fakeWindow{}
	ctx := &engine.Context{Window: w, Renderer: r, Textures: assets.NewCache()}
	return states.NewManager(reg, ctx), r, w
}

func currentID(m *states.Manager) states.ID {
	id, _ := m.CurrentID()
	return id
}

func TestRegisterTwice(t *testing.T) {
	reg := states.NewRegistry()
	if err := Register(reg, Options{}); err != nil {
		t.Fatal(err)
	}
	if err := Register(reg, Options{}); !errors.Is(err, states.ErrDuplicateState) {
		t.Errorf("second Register = %v, want ErrDuplicateState", err)
	}
}

func TestSplashTimesOut(t *testing.T) {
	m, r, w := newTestManager(t, Options{SplashDuration: 100 * time.Millisecond})
	if err := m.Startup(Splash); err != nil {
		t.Fatal(err)
	}
	if w.titled != 1 || w.title != "" {
		t.Errorf("window title = %q after %d calls, want subtitle cleared once", w.title, w.titled)
	}

	for range 5 {
		if err := m.Update(16 * time.Millisecond); err != nil {
			t.Fatal(err)
		}
	}
	if currentID(m) != Splash {
		t.Fatalf("left splash early, now %q", currentID(m))
	}

	for range 3 {
		if err := m.Update(16 * time.Millisecond); err != nil {
			t.Fatal(err)
		}
	}
	if currentID(m) != Title {
		t.Errorf("state = %q, want title", currentID(m))
	}
	if r.uploads != 2 {
		t.Errorf("uploads = %d, want 2", r.uploads)
	}
}

func TestSplashSkip(t *testing.T) {
	m, _, _ := newTestManager(t, Options{})
	if err := m.Startup(Splash); err != nil {
		t.Fatal(err)
	}

	// Zero duration waits for input.
	if err := m.Update(time.Hour); err != nil {
		t.Fatal(err)
	}
	if currentID(m) != Splash {
		t.Fatalf("state = %q, want splash", currentID(m))
	}

	m.KeyDown(event.KeyEvent{Key: event.KeyA, Repeat: true})
	if _, ok := m.Pending(); ok {
		t.Error("key repeat should not skip the splash")
	}

	m.MouseDown(event.MouseEvent{}, event.ButtonLeft)
	if id, ok := m.Pending(); !ok || id != Title {
		t.Errorf("Pending() = %q, %v; want title", id, ok)
	}
	if err := m.Update(time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if currentID(m) != Title {
		t.Errorf("state = %q, want title", currentID(m))
	}
}

func TestTitleReturnsToSplash(t *testing.T) {
	m, r, w := newTestManager(t, Options{})
	if err := m.Startup(Title); err != nil {
		t.Fatal(err)
	}
	if w.title != "title" {
		t.Errorf("window title = %q", w.title)
	}

	if err := m.Render(); err != nil {
		t.Fatal(err)
	}
	if len(r.drawn) != 1 || r.drawn[0] != titleTexture {
		t.Errorf("drawn = %v", r.drawn)
	}

	m.KeyDown(event.KeyEvent{Key: event.KeyA})
	if _, ok := m.Pending(); ok {
		t.Fatal("unrelated key requested a transition")
	}

	m.KeyDown(event.KeyEvent{Key: event.KeyReturn})
	if err := m.Update(time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if currentID(m) != Splash {
		t.Errorf("state = %q, want splash", currentID(m))
	}
}

func TestTexturesAreCached(t *testing.T) {
	m, r, _ := newTestManager(t, Options{})
	if err := m.Startup(Title); err != nil {
		t.Fatal(err)
	}

	for range 3 {
		m.KeyDown(event.KeyEvent{Key: event.KeySpace})
		if err := m.Update(time.Millisecond); err != nil {
			t.Fatal(err)
		}
		m.KeyDown(event.KeyEvent{Key: event.KeyReturn})
		if err := m.Update(time.Millisecond); err != nil {
			t.Fatal(err)
		}
	}

	if r.uploads != 2 {
		t.Errorf("uploads = %d, want one per texture", r.uploads)
	}
	if n := m.Engine().Textures.Len(); n != 2 {
		t.Errorf("cache holds %d textures, want 2", n)
	}
}

func TestTitlePulseSpeed(t *testing.T) {
	s := &TitleState{}

	s.HandleFrameInput(event.Frame{}, event.NewKeyboard(0), event.Mouse{})
	_ = s.Update(time.Second)
	if s.elapsed != time.Second {
		t.Errorf("elapsed = %v, want 1s", s.elapsed)
	}

	s.HandleFrameInput(event.Frame{}, event.NewKeyboard(event.ModShift), event.Mouse{})
	_ = s.Update(time.Second)
	if s.elapsed != 5*time.Second {
		t.Errorf("elapsed = %v, want 5s", s.elapsed)
	}
}

func TestStartFailsWithoutTexture(t *testing.T) {
	m, r, _ := newTestManager(t, Options{})
	r.failOn = splashTexture

	if err := m.Startup(Splash); err == nil {
		t.Fatal("expected Startup to fail when the texture cannot be uploaded")
	}
	if m.Running() {
		t.Error("failed start left a state active")
	}
}

func TestPixelBuffers(t *testing.T) {
	for name, gen := range map[string]func(int) []byte{"gradient": gradient, "stripes": stripes} {
		pix := gen(32)
		if len(pix) != 32*32*4 {
			t.Errorf("%s: %d bytes, want %d", name, len(pix), 32*32*4)
			continue
		}
		for i := 3; i < len(pix); i += 4 {
			if pix[i] != 255 {
				t.Errorf("%s: pixel %d not opaque", name, i/4)
				break
			}
		}
	}
}

func TestStartRequiresRenderer(t *testing.T) {
	reg := states.NewRegistry()
	if err := Register(reg, Options{}); err != nil {
		t.Fatal(err)
	}

	contexts := map[string]*engine.Context{
		"nil context": nil,
		"no renderer": {Textures: assets.NewCache()},
		"no cache":    {Renderer: &fakeRenderer{}},
	}
	for name, ctx := range contexts {
		for _, id := range []states.ID{Splash, Title} {
			m := states.NewManager(reg, ctx)
			if err := m.Startup(id); !errors.Is(err, ErrNoRenderer) {
				t.Errorf("%s: Startup(%s) = %v, want ErrNoRenderer", name, id, err)
			}
			if m.Running() {
				t.Errorf("%s: %s left active without a texture", name, id)
			}
		}
	}
}
