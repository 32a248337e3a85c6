// Package modes contains the built-in application states.
package modes

import (
	"errors"
	"fmt"
	"time"

	"github.com/Faultbox/modeswitch/internal/assets"
	"github.com/Faultbox/modeswitch/internal/engine"
	"github.com/Faultbox/modeswitch/internal/states"
)

// State IDs.
const (
	Splash states.ID = "splash"
	Title  states.ID = "title"
)

// ErrNoRenderer is returned by Start when the engine context has no renderer
// or texture cache to draw with.
var ErrNoRenderer = errors.New("modes: engine context has no renderer or texture cache")

// Options tunes the built-in states.
type Options struct {
	SplashDuration time.Duration
}

// Register adds the built-in states to reg.
func Register(reg *states.Registry, opts Options) error {
	if err := reg.Register(Splash, func() (states.State, error) {
		return &SplashState{duration: opts.SplashDuration}, nil
	}); err != nil {
		return err
	}
	return reg.Register(Title, func() (states.State, error) {
		return &TitleState{}, nil
	})
}

// cachedTexture returns the texture cached under name, uploading it with
// pixels() first if needed.
func cachedTexture(ctx *engine.Context, name string, size int, pixels func(int) []byte) (*assets.Texture, error) {
	if ctx == nil || ctx.Renderer == nil || ctx.Textures == nil {
		return nil, ErrNoRenderer
	}
	if tex, ok := ctx.Textures.Get(name); ok {
		return tex, nil
	}

	tex, err := ctx.Renderer.UploadRGBA(name, size, size, pixels(size))
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", name, err)
	}
	ctx.Textures.Add(name, tex)
	return tex, nil
}

// gradient returns a size×size RGBA image fading from dark blue at the top
// to orange at the bottom.
func gradient(size int) []byte {
	pix := make([]byte, size*size*4)
	for y := range size {
		t := float32(y) / float32(size-1)
		r := byte(20 + t*(230-20))
		g := byte(30 + t*(120-30))
		b := byte(80 + t*(40-80))
		for x := range size {
			i := (y*size + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, 255
		}
	}
	return pix
}

// stripes returns a size×size RGBA image of diagonal two-tone bands.
func stripes(size int) []byte {
	const band = 16
	pix := make([]byte, size*size*4)
	for y := range size {
		for x := range size {
			i := (y*size + x) * 4
			if ((x+y)/band)%2 == 0 {
				pix[i], pix[i+1], pix[i+2] = 40, 44, 52
			} else {
				pix[i], pix[i+1], pix[i+2] = 60, 66, 80
			}
			pix[i+3] = 255
		}
	}
	return pix
}
