package assets

import (
	"errors"
	"testing"
)

func TestCacheAdd(t *testing.T) {
	c := NewCache()
	first := &Texture{Name: "a", ID: 1}
	second := &Texture{Name: "a", ID: 2}

	if !c.Add("a", first) {
		t.Fatal("Add of new name returned false")
	}
	if !c.Add("a", second) {
		t.Fatal("Add of existing name returned false")
	}

	got, ok := c.Get("a")
	if !ok {
		t.Fatal("Get(a) not found")
	}
	if got != first {
		t.Errorf("existing entry was overwritten: got ID %d, want 1", got.ID)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheAddInvalid(t *testing.T) {
	c := NewCache()

	if c.Add("", &Texture{}) {
		t.Error("Add with empty name returned true")
	}
	if c.Add("x", nil) {
		t.Error("Add with nil texture returned true")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestCacheTexturesIsCopy(t *testing.T) {
	c := NewCache()
	c.Add("a", &Texture{ID: 1})
	c.Add("b", &Texture{ID: 2})

	all := c.Textures()
	if len(all) != 2 {
		t.Fatalf("Textures() has %d entries, want 2", len(all))
	}

	delete(all, "a")
	if _, ok := c.Get("a"); !ok {
		t.Error("mutating the returned map changed the cache")
	}
}

func TestManagerClose(t *testing.T) {
	var released []uint32
	m := NewManager(func(tex *Texture) {
		released = append(released, tex.ID)
	})

	m.Textures().Add("a", &Texture{ID: 7})
	m.Textures().Add("b", &Texture{ID: 9})
	m.Textures().Add("a", &Texture{ID: 8}) // ignored

	if err := m.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if len(released) != 2 {
		t.Errorf("released %d textures, want 2: %v", len(released), released)
	}
	if m.Textures().Len() != 0 {
		t.Errorf("cache not emptied, Len() = %d", m.Textures().Len())
	}

	if err := m.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close() = %v, want ErrClosed", err)
	}
	if len(released) != 2 {
		t.Errorf("second Close released again: %v", released)
	}
}

func TestManagerCloseNilRelease(t *testing.T) {
	m := NewManager(nil)
	m.Textures().Add("a", &Texture{ID: 1})

	if err := m.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
}
