package engine

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type WindowOptions struct {
	Width, Height int
	Title         string
	VSync         bool
}

type Key int

const (
	KeyEscape = Key(glfw.KeyEscape)
	KeyW      = Key(glfw.KeyW)
	KeyF12    = Key(glfw.KeyF12)
)

type Window struct {
	width, height int
	window        *glfw.Window

	// OnKey is called on key press, escape closes the window regardless
	OnKey func(Key)
}

// NewWindow creates a window with a current opengl 3.3 core context,
// the calling goroutine has to be locked to its thread
func NewWindow(opts WindowOptions) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	win.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("initialize gl: %w", err)
	}

	w := &Window{
		width:  opts.Width,
		height: opts.Height,
		window: win,
	}

	// callbacks
	win.SetFramebufferSizeCallback(w.onResize)
	win.SetKeyCallback(w.onKey)

	// set size
	fw, fh := win.GetFramebufferSize()
	w.onResize(win, fw, fh)

	return w, nil
}

// Version reports the gl version string of the current context
func (w *Window) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (w *Window) IsRunning() bool {
	return !w.window.ShouldClose()
}

// PollEvents processes pending input, Escape sets the close flag here
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *Window) Cleanup() {
	w.window.Destroy()
	glfw.Terminate()
}

func (w *Window) onResize(_ *glfw.Window, width, height int) {
	width, height = clampSize(width, height)

	gl.Viewport(0, 0, int32(width), int32(height))

	w.width = width
	w.height = height
}

// Size of the framebuffer
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

func (w *Window) SetTitle(title string) {
	w.window.SetTitle(title)
}

func (w *Window) Close() {
	w.window.SetShouldClose(true)
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	if Key(key) == KeyEscape {
		w.Close()
	}

	if w.OnKey != nil {
		w.OnKey(Key(key))
	}
}

// minimized windows report a zero framebuffer
func clampSize(width, height int) (int, int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
