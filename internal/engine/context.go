// Package engine holds the services handed to application states.
package engine

import "github.com/Faultbox/modeswitch/internal/assets"

// Window is the part of the platform window states may touch.
type Window interface {
	Size() (width, height int)
	// SetTitle shows sub after the application title; "" clears it.
	SetTitle(sub string)
}

// Renderer is the part of the renderer states may touch.
type Renderer interface {
	SetClearColor(r, g, b, a float32)
	UploadRGBA(name string, width, height int, pixels []byte) (*assets.Texture, error)
	DrawTexture(tex *assets.Texture)
}

// Context bundles the engine services. The state controller only stores and
// forwards it; states use it to act on the platform.
type Context struct {
	Window   Window
	Renderer Renderer
	Textures *assets.Cache

	// Quit asks the host loop to stop after the current frame.
	Quit func()
}

// RequestQuit calls Quit if set.
func (c *Context) RequestQuit() {
	if c != nil && c.Quit != nil {
		c.Quit()
	}
}
